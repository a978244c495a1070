package engine

import (
	"gravenhold-server/internal/domain"
	"gravenhold-server/internal/engine/handlers"
	"gravenhold-server/pkg/api"
)

// Цвета тайлов на клиенте
const (
	colorFloorLit  = "#C8B432"
	colorFloorDark = "#323296"
	colorWallLit   = "#826E32"
	colorWallDark  = "#000064"
)

// buildResponse создает персональный снимок партии для игрока:
// туман войны, видимые сущности, журнал и лист персонажа.
func (s *Session) buildResponse(result handlers.Result) *api.ServerResponse {
	g := s.Game

	resp := &api.ServerResponse{
		Type:           "UPDATE",
		Turn:           g.Turn,
		MyEntityID:     g.Player.ID,
		DungeonLevel:   g.DungeonLevel,
		Grid:           &api.GridMeta{Width: g.World.Width, Height: g.World.Height},
		Map:            s.buildMap(),
		Entities:       s.buildEntities(),
		Logs:           s.buildLogs(),
		Player:         s.buildPlayer(),
		NeedTarget:     result.NeedTarget,
		NeedTargetItem: result.NeedTargetItem,
		LevelUpPending: g.LevelUpPending,
		GameOver:       !g.Player.Alive,
	}

	return resp
}

func (s *Session) errorResponse(msg string) *api.ServerResponse {
	return &api.ServerResponse{
		Type:  "ERROR",
		Error: msg,
	}
}

// buildMap отдает только разведанные тайлы.
// Видимые сейчас рендерятся ярко, остальные - тускло.
func (s *Session) buildMap() []api.TileView {
	g := s.Game

	var mapDTO []api.TileView
	for y := 0; y < g.World.Height; y++ {
		for x := 0; x < g.World.Width; x++ {
			tile := g.World.Map[y][x]
			if !tile.Explored {
				continue
			}

			isVisible := g.Visible[g.World.GetIndex(x, y)]

			tView := api.TileView{
				X: x, Y: y,
				IsWall:     tile.Blocked,
				IsVisible:  isVisible,
				IsExplored: true,
				Symbol:     ".",
			}
			if tile.Blocked {
				tView.Symbol = "#"
				if isVisible {
					tView.Color = colorWallLit
				} else {
					tView.Color = colorWallDark
				}
			} else {
				if isVisible {
					tView.Color = colorFloorLit
				} else {
					tView.Color = colorFloorDark
				}
			}
			mapDTO = append(mapDTO, tView)
		}
	}
	return mapDTO
}

// buildEntities отдает сущности в поле зрения. Сущности с флагом
// AlwaysVisible (лестница) показываются и на разведанных клетках.
// Неблокирующие идут первыми: клиент рисует их под актерами.
func (s *Session) buildEntities() []api.EntityView {
	g := s.Game

	var ground, actors []api.EntityView
	for _, e := range g.Entities {
		if !s.entityVisible(e) {
			continue
		}

		view := api.EntityView{
			ID:   e.ID,
			Type: e.Type,
			Name: e.Name,
		}
		view.Pos.X = e.Pos.X
		view.Pos.Y = e.Pos.Y

		if e.Render != nil {
			view.Render.Symbol = e.Render.Symbol
			view.Render.Color = e.Render.Color
		} else {
			view.Render.Symbol = "?"
			view.Render.Color = "#FFF"
		}

		if e.Fighter != nil {
			view.HP = e.Fighter.HP
			view.MaxHP = e.FullMaxHP()
		}

		if e.Blocks {
			actors = append(actors, view)
		} else {
			ground = append(ground, view)
		}
	}

	return append(ground, actors...)
}

func (s *Session) entityVisible(e *domain.Entity) bool {
	g := s.Game

	// Себя видим всегда
	if e.ID == g.Player.ID {
		return true
	}
	if g.Visible[g.World.GetIndex(e.Pos.X, e.Pos.Y)] {
		return true
	}
	return e.AlwaysVisible && g.World.Map[e.Pos.Y][e.Pos.X].Explored
}

func (s *Session) buildLogs() []api.LogView {
	entries := s.Game.Log.Entries
	logs := make([]api.LogView, 0, len(entries))
	for _, entry := range entries {
		logs = append(logs, api.LogView{Text: entry.Text, Color: entry.Color})
	}
	return logs
}

// buildPlayer собирает лист персонажа: полные статы и инвентарь.
func (s *Session) buildPlayer() *api.PlayerView {
	g := s.Game
	p := g.Player

	view := &api.PlayerView{
		Power:       p.FullPower(),
		Defense:     p.FullDefense(),
		MaxHP:       p.FullMaxHP(),
		Level:       p.Level,
		NextLevelXP: g.LevelUpThreshold(),
		Alive:       p.Alive,
		Inventory:   make([]api.ItemView, 0),
	}
	if p.Fighter != nil {
		view.HP = p.Fighter.HP
		view.XP = p.Fighter.XP
	}

	if p.Inventory != nil {
		for i, item := range p.Inventory.Items {
			itemView := api.ItemView{
				Index: i,
				ID:    item.ID,
				Name:  item.Name,
			}
			if item.Render != nil {
				itemView.Symbol = item.Render.Symbol
				itemView.Color = item.Render.Color
			}
			if item.Item != nil {
				itemView.Kind = string(item.Item.Kind)
			}
			if item.Equipment != nil {
				itemView.IsEquipped = item.Equipment.IsEquipped
				itemView.Slot = string(item.Equipment.Slot)
			}
			view.Inventory = append(view.Inventory, itemView)
		}
	}

	return view
}
