package engine

import (
	"encoding/json"
	"fmt"

	"gravenhold-server/internal/domain"
	"gravenhold-server/pkg/rng"
)

// GameSnapshot - сериализуемое состояние партии.
// Компоненты сущностей (включая цепочку Prev у смятенного ИИ)
// уходят в JSON как есть и восстанавливаются поле в поле.
type GameSnapshot struct {
	Seed             int64              `json:"seed"`
	DungeonLevel     int                `json:"dungeonLevel"`
	Turn             int                `json:"turn"`
	LevelUpPending   bool               `json:"levelUpPending,omitempty"`
	PendingThreshold int                `json:"pendingThreshold,omitempty"`
	PlayerID         string             `json:"playerId"`
	World            *domain.GameWorld  `json:"world"`
	Entities         []*domain.Entity   `json:"entities"`
	Log              *domain.MessageLog `json:"log"`
}

// Snapshot сериализует партию для сохранения.
func (g *Game) Snapshot() ([]byte, error) {
	snap := GameSnapshot{
		Seed:             g.Seed,
		DungeonLevel:     g.DungeonLevel,
		Turn:             g.Turn,
		LevelUpPending:   g.LevelUpPending,
		PendingThreshold: g.PendingThreshold,
		PlayerID:         g.Player.ID,
		World:            g.World,
		Entities:         g.Entities,
		Log:              g.Log,
	}
	return json.Marshal(snap)
}

// RestoreGame восстанавливает партию из снимка.
// Индексы мира и очередь ходов не сериализуются - они
// перестраиваются из списка сущностей. Генератор случайности
// пересеивается от исходного зерна и номера хода: загруженная
// партия детерминирована, но после загрузки идет своей веткой.
func RestoreGame(data []byte) (*Game, error) {
	var snap GameSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if snap.World == nil || len(snap.Entities) == 0 {
		return nil, fmt.Errorf("decode snapshot: empty world")
	}
	if snap.Log == nil {
		snap.Log = domain.NewMessageLog()
	}

	g := &Game{
		Seed:             snap.Seed,
		DungeonLevel:     snap.DungeonLevel,
		Turn:             snap.Turn,
		LevelUpPending:   snap.LevelUpPending,
		PendingThreshold: snap.PendingThreshold,
		World:            snap.World,
		Entities:         snap.Entities,
		Log:              snap.Log,
		Dice:             rng.New(snap.Seed + int64(snap.Turn)),
		Turns:            NewTurnManager(),
	}

	for _, e := range g.Entities {
		if e.ID == snap.PlayerID {
			g.Player = e
			break
		}
	}
	if g.Player == nil {
		return nil, fmt.Errorf("decode snapshot: player %q missing", snap.PlayerID)
	}

	g.World.RebuildIndex(g.Entities)

	for _, e := range g.Entities {
		if e.AI != nil {
			g.Turns.AddEntity(e, g.Turn+1)
		}
	}

	g.RecomputeFOV()
	return g, nil
}
