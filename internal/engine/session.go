package engine

import (
	"encoding/json"
	"errors"
	"time"

	"gravenhold-server/internal/domain"
	"gravenhold-server/internal/engine/handlers"
	"gravenhold-server/internal/engine/handlers/actions"
	"gravenhold-server/internal/infrastructure/storage"
	"gravenhold-server/pkg/api"
	"gravenhold-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Session - одна партия одного игрока. Команды клиента обрабатываются
// строго последовательно: один логический ход владеет состоянием целиком.
type Session struct {
	PlayerID string
	Game     *Game

	handlers map[domain.ActionType]handlers.HandlerFunc
	store    *storage.Store

	// Запись партии для реплея
	recorded []domain.ReplayAction
}

// NewSession создает партию с заданным зерном.
func NewSession(playerID string, seed int64, store *storage.Store) (*Session, error) {
	game, err := NewGame(seed, playerID)
	if err != nil {
		return nil, err
	}

	s := &Session{
		PlayerID: playerID,
		Game:     game,
		store:    store,
		handlers: make(map[domain.ActionType]handlers.HandlerFunc),
	}
	s.registerHandlers()
	return s, nil
}

func (s *Session) registerHandlers() {
	s.handlers[domain.ActionInit] = handlers.WithEmptyPayload(actions.HandleInit)
	s.handlers[domain.ActionMove] = handlers.WithPayload(actions.HandleMove)
	s.handlers[domain.ActionWait] = handlers.WithEmptyPayload(actions.HandleWait)
	s.handlers[domain.ActionPickup] = handlers.WithEmptyPayload(actions.HandlePickup)
	s.handlers[domain.ActionDrop] = handlers.WithPayload(actions.HandleDrop)
	s.handlers[domain.ActionUse] = handlers.WithPayload(actions.HandleUse)
	s.handlers[domain.ActionDescend] = handlers.WithEmptyPayload(actions.HandleDescend)
	s.handlers[domain.ActionLevelUp] = handlers.WithPayload(actions.HandleLevelUp)
}

func (s *Session) buildContext() handlers.Context {
	g := s.Game
	return handlers.Context{
		World:        g.World,
		Entities:     g.Entities,
		Player:       g.Player,
		Log:          g.Log,
		Visible:      g.Visible,
		Dice:         g.Dice,
		MarkFovDirty: func() { g.FovDirty = true },
		RemoveEntity: g.DetachEntity,
		AddEntity:    g.AttachEntity,
		Descend:      g.NextLevel,
		ApplyLevelUp: g.ApplyLevelUpChoice,
	}
}

// Handle выполняет одну команду клиента и возвращает снимок состояния.
func (s *Session) Handle(cmd api.ClientCommand) *api.ServerResponse {
	action := domain.ParseAction(cmd.Action)

	cmdLogger := logger.Log.WithFields(logrus.Fields{
		"component": "session",
		"player_id": s.PlayerID,
		"action":    action.String(),
	})

	if action == domain.ActionUnknown {
		cmdLogger.WithField("raw_action", cmd.Action).Warn("Unknown action received.")
		return s.errorResponse("неизвестное действие")
	}

	// Сохранение и загрузка живут вне игрового цикла
	switch action {
	case domain.ActionSave:
		return s.handleSave(cmd.Payload)
	case domain.ActionLoad:
		return s.handleLoad(cmd.Payload)
	}

	g := s.Game

	// Мертвый игрок больше не действует, но снимок получить может
	if !g.Player.Alive && action != domain.ActionInit {
		g.Log.Add("Вы мертвы.", domain.ColorRed)
		return s.buildResponse(handlers.Result{})
	}

	// Открытый выбор награды блокирует все остальные действия
	if g.LevelUpPending && action != domain.ActionLevelUp && action != domain.ActionInit {
		g.Log.Add("Сначала выберите награду за новый уровень.", domain.ColorYellow)
		return s.buildResponse(handlers.Result{})
	}

	handler, ok := s.handlers[action]
	if !ok {
		return s.errorResponse("действие не поддерживается")
	}

	result, err := handler(s.buildContext(), cmd.Payload)
	if err != nil {
		cmdLogger.WithError(err).Warn("Command rejected.")
		return s.errorResponse(err.Error())
	}

	// Запрос цели: ход не потрачен, состояние не тронуто
	if result.NeedTarget != "" {
		return s.buildResponse(result)
	}

	s.record(action, cmd.Payload)

	// Обработчик решает исход конкретного случая, перечисление действий -
	// верхнюю границу: действие вне тратящего набора ход не тратит никогда
	if result.TookTurn && action.TakesTurn() {
		// Монстры ходят по полю зрения, каким оно было до действия
		g.RunMonsterTurns()
	}
	if g.FovDirty {
		g.RecomputeFOV()
	}
	g.CheckLevelUp()

	return s.buildResponse(result)
}

// record добавляет действие в запись партии.
func (s *Session) record(action domain.ActionType, payload json.RawMessage) {
	switch action {
	case domain.ActionInit:
		return
	}
	s.recorded = append(s.recorded, domain.ReplayAction{
		Tick:    s.Game.Turn,
		Token:   s.PlayerID,
		Action:  action,
		Payload: payload,
	})
}

// ReplaySession отдает накопленную запись партии.
func (s *Session) ReplaySession() *domain.ReplaySession {
	return &domain.ReplaySession{
		Seed:      s.Game.Seed,
		Timestamp: time.Now().Unix(),
		Actions:   s.recorded,
	}
}

func (s *Session) handleSave(payload json.RawMessage) *api.ServerResponse {
	slot := saveSlot(payload)

	state, err := s.Game.Snapshot()
	if err != nil {
		logger.Log.WithError(err).Error("Snapshot failed.")
		return s.errorResponse("не удалось сохранить игру")
	}

	if err := s.store.Save(slot, s.PlayerID, s.Game.Seed, state); err != nil {
		logger.Log.WithError(err).Error("Save failed.")
		return s.errorResponse("не удалось сохранить игру")
	}

	s.Game.Log.Add("Игра сохранена.", domain.ColorLightCyan)
	return s.buildResponse(handlers.Result{})
}

func (s *Session) handleLoad(payload json.RawMessage) *api.ServerResponse {
	slot := saveSlot(payload)

	state, _, err := s.store.Load(slot, s.PlayerID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			s.Game.Log.Add("Сохранение не найдено.", domain.ColorYellow)
		case errors.Is(err, storage.ErrCorrupt):
			s.Game.Log.Add("Сохранение повреждено и не может быть загружено.", domain.ColorRed)
		default:
			logger.Log.WithError(err).Error("Load failed.")
			s.Game.Log.Add("Не удалось загрузить игру.", domain.ColorRed)
		}
		return s.buildResponse(handlers.Result{})
	}

	game, err := RestoreGame(state)
	if err != nil {
		logger.Log.WithError(err).Error("Snapshot restore failed.")
		s.Game.Log.Add("Сохранение повреждено и не может быть загружено.", domain.ColorRed)
		return s.buildResponse(handlers.Result{})
	}

	s.Game = game
	s.recorded = nil
	s.Game.Log.Add("Игра загружена.", domain.ColorLightCyan)
	return s.buildResponse(handlers.Result{})
}

func saveSlot(payload json.RawMessage) string {
	var p api.SavePayload
	if len(payload) > 0 {
		_ = json.Unmarshal(payload, &p)
	}
	if p.Slot == "" {
		return "default"
	}
	return p.Slot
}
