package actions

import (
	"gravenhold-server/internal/engine/handlers"
	"gravenhold-server/internal/systems"
	"gravenhold-server/pkg/api"
)

// HandleMove обрабатывает шаг игрока. Шаг в занятую бойцом клетку
// превращается в атаку ближнего боя. Шаг в стену тоже тратит ход.
func HandleMove(ctx handlers.Context, p api.DirectionPayload) (handlers.Result, error) {
	player := ctx.Player

	res := systems.CalculateMove(player, p.Dx, p.Dy, ctx.World)

	if res.BlockedBy != nil && res.BlockedBy.Fighter != nil {
		systems.Attack(player, res.BlockedBy, ctx.Log)
		return handlers.Result{TookTurn: true}, nil
	}

	if res.HasMoved {
		ctx.World.UpdateEntityPos(player, res.NewX, res.NewY)
		ctx.MarkFovDirty()
	}

	return handlers.Result{TookTurn: true}, nil
}
