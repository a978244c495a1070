package server

import (
	"net/http"
	"time"

	"gravenhold-server/internal/engine"
	"gravenhold-server/pkg/api"
	"gravenhold-server/pkg/logger"
	"gravenhold-server/pkg/utils"

	"github.com/gorilla/websocket"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - посредник между Websocket и GameService
type Client struct {
	Game     *engine.GameService
	Conn     *websocket.Conn
	Send     chan api.ServerResponse
	PlayerID string
}

func NewClient(game *engine.GameService, conn *websocket.Conn) *Client {
	return &Client{
		Game: game,
		Conn: conn,
		Send: make(chan api.ServerResponse, 256),
	}
}

// readPump читает команды от клиента
func (c *Client) readPump() {
	defer func() {
		c.Game.Hub.Unregister(c.PlayerID)
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Warn("failed to close websocket connection")
		}
		// Партия остается жить в памяти, запись уходит в реплей
		c.Game.CloseSession(c.PlayerID)
		logger.Log.WithField("player_id", c.PlayerID).Info("Client disconnected")
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.Log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			logger.Log.WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	// 1. HANDSHAKE (LOGIN)
	var loginCmd api.ClientCommand
	if err := c.Conn.ReadJSON(&loginCmd); err != nil {
		logger.Log.Warn("Handshake failed")
		return
	}

	c.PlayerID = loginCmd.Token
	if c.PlayerID == "" {
		c.PlayerID = utils.GenerateID()
	}

	logger.Log.WithField("player_id", c.PlayerID).Info("Client logged in")

	// 2. ПОДПИСКА НА ОБНОВЛЕНИЯ
	gameUpdates := c.Game.Hub.Register(c.PlayerID)

	// Запускаем пересылку обновлений из Hub в writePump
	go func() {
		for msg := range gameUpdates {
			c.Send <- msg
		}
		close(c.Send)
	}()

	// Отправляем INIT (триггер первой отрисовки; партия создается здесь)
	c.Game.ProcessCommand(api.ClientCommand{Action: "INIT", Token: c.PlayerID})

	// 3. ЦИКЛ ЧТЕНИЯ КОМАНД
	for {
		var cmd api.ClientCommand
		err := c.Conn.ReadJSON(&cmd)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.Errorf("WS Error: %v", err)
			}
			break
		}
		cmd.Token = c.PlayerID
		c.Game.ProcessCommand(cmd)
	}
}

// writePump отправляет данные клиенту + Ping
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Warn("failed to close websocket connection in writePump")
		}
	}()

	for {
		select {
		case message, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					logger.Log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.Conn.WriteJSON(message); err != nil {
				logger.Log.WithError(err).Debug("write json message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logger.Log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
