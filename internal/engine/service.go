package engine

import (
	"context"
	"fmt"
	"sync"

	"gravenhold-server/internal/domain"
	"gravenhold-server/internal/infrastructure/storage"
	"gravenhold-server/internal/network"
	"gravenhold-server/pkg/api"
	"gravenhold-server/pkg/logger"
	"gravenhold-server/pkg/telemetry"
	"gravenhold-server/pkg/utils"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// GameService управляет партиями игроков. Каждый игрок играет свою
// независимую партию: зерно мира выводится из мастер-зерна и имени
// игрока, поэтому один и тот же игрок на одном сервере всегда
// попадает в одно и то же подземелье.
type GameService struct {
	Config Config
	Hub    *network.Broadcaster

	store   *storage.Store
	replays *storage.ReplayService
	tracer  trace.Tracer

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewService создает сервис и открывает хранилище сохранений.
func NewService(cfg Config) (*GameService, error) {
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open save store: %w", err)
	}

	tracer := telemetry.NoopTracer()
	if cfg.Telemetry {
		tracer = telemetry.Tracer("engine")
	}

	return &GameService{
		Config:   cfg,
		Hub:      network.NewBroadcaster(),
		store:    store,
		replays:  storage.NewReplayService(cfg.ReplayDir),
		tracer:   tracer,
		sessions: make(map[string]*Session),
	}, nil
}

// playerSeed выводит зерно партии из мастер-зерна и имени игрока.
// И в живой игре, и при реплее того же игрока мир совпадает.
func (s *GameService) playerSeed(playerID string) int64 {
	return s.Config.Seed ^ utils.StringToSeed(playerID)
}

// Session возвращает партию игрока, создавая ее при первом обращении.
func (s *GameService) Session(playerID string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[playerID]; ok {
		return sess, nil
	}

	seed := s.playerSeed(playerID)
	sess, err := NewSession(playerID, seed, s.store)
	if err != nil {
		return nil, err
	}
	s.sessions[playerID] = sess

	logger.Log.WithFields(logrus.Fields{
		"player_id": playerID,
		"seed":      seed,
	}).Info("Session created")
	return sess, nil
}

// ProcessCommand выполняет команду и рассылает результат подписчику.
func (s *GameService) ProcessCommand(cmd api.ClientCommand) {
	_, span := s.tracer.Start(context.Background(), "ProcessCommand",
		trace.WithAttributes(
			attribute.String("game.player_id", cmd.Token),
			attribute.String("game.action", cmd.Action),
		))
	defer span.End()

	sess, err := s.Session(cmd.Token)
	if err != nil {
		logger.Log.WithError(err).WithField("player_id", cmd.Token).
			Error("Failed to create session")
		s.Hub.SendTo(cmd.Token, api.ServerResponse{
			Type:  "ERROR",
			Error: "не удалось создать партию",
		})
		return
	}

	resp := sess.Handle(cmd)
	if resp != nil {
		s.Hub.SendTo(cmd.Token, *resp)
	}
}

// CloseSession завершает партию: запись уходит в файл реплея,
// сама партия остается в памяти и ждет переподключения.
func (s *GameService) CloseSession(playerID string) {
	s.mu.Lock()
	sess, ok := s.sessions[playerID]
	s.mu.Unlock()
	if !ok {
		return
	}

	replay := sess.ReplaySession()
	if len(replay.Actions) == 0 {
		return
	}

	path, err := s.replays.Save(replay)
	if err != nil {
		logger.Log.WithError(err).WithField("player_id", playerID).
			Warn("Failed to write replay")
		return
	}
	logger.Log.WithFields(logrus.Fields{
		"player_id": playerID,
		"actions":   len(replay.Actions),
		"path":      path,
	}).Info("Replay saved")
}

// PlaybackReplay прогоняет записанную партию заново и логирует исход.
// Зерно берется из файла, поэтому мир и броски совпадают с оригиналом.
func (s *GameService) PlaybackReplay(path string) error {
	replay, err := s.replays.Load(path)
	if err != nil {
		return fmt.Errorf("load replay: %w", err)
	}
	if len(replay.Actions) == 0 {
		return fmt.Errorf("replay %s has no actions", path)
	}

	playerID := replay.Actions[0].Token
	sess, err := NewSession(playerID, replay.Seed, s.store)
	if err != nil {
		return fmt.Errorf("rebuild session: %w", err)
	}

	logger.Log.WithFields(logrus.Fields{
		"player_id": playerID,
		"seed":      replay.Seed,
		"actions":   len(replay.Actions),
	}).Info("Playback started")

	for _, act := range replay.Actions {
		cmd := api.ClientCommand{
			Action:  act.Action.String(),
			Token:   act.Token,
			Payload: act.Payload,
		}
		sess.Handle(cmd)
	}

	g := sess.Game
	fields := logrus.Fields{
		"turn":          g.Turn,
		"dungeon_level": g.DungeonLevel,
		"player_alive":  g.Player.Alive,
	}
	if g.Player.Fighter != nil {
		fields["player_hp"] = g.Player.Fighter.HP
		fields["player_xp"] = g.Player.Fighter.XP
	}
	logger.Log.WithFields(fields).Info("Playback finished")
	return nil
}

// SessionSummary - сводка по партии для отладочных ручек.
type SessionSummary struct {
	PlayerID     string                   `json:"player_id"`
	Turn         int                      `json:"turn"`
	DungeonLevel int                      `json:"dungeon_level"`
	EntityCount  int                      `json:"entity_count"`
	PlayerAlive  bool                     `json:"player_alive"`
	Online       bool                     `json:"online"`
	TurnQueue    []map[string]interface{} `json:"turn_queue"`
}

// DebugState собирает сводку по всем активным партиям.
func (s *GameService) DebugState() []SessionSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	summary := make([]SessionSummary, 0, len(s.sessions))
	for id, sess := range s.sessions {
		g := sess.Game
		summary = append(summary, SessionSummary{
			PlayerID:     id,
			Turn:         g.Turn,
			DungeonLevel: g.DungeonLevel,
			EntityCount:  len(g.Entities),
			PlayerAlive:  g.Player.Alive,
			Online:       s.Hub.HasSubscriber(id),
			TurnQueue:    g.Turns.DebugDump(),
		})
	}
	return summary
}

// DebugEntities отдает сущности партии игрока со всеми компонентами.
func (s *GameService) DebugEntities(playerID string) []*domain.Entity {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[playerID]
	if !ok {
		return nil
	}
	return sess.Game.Entities
}

// Close освобождает ресурсы сервиса.
func (s *GameService) Close() error {
	return s.store.Close()
}
