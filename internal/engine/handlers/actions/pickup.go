package actions

import (
	"gravenhold-server/internal/domain"
	"gravenhold-server/internal/engine/handlers"
	"gravenhold-server/internal/systems"
)

// HandlePickup поднимает предмет из-под ног. Ход не тратится.
func HandlePickup(ctx handlers.Context) (handlers.Result, error) {
	item := systems.ItemOnGround(ctx.Player, ctx.World)
	if item == nil {
		ctx.Log.Add("Здесь нечего подбирать.", domain.ColorYellow)
		return handlers.EmptyResult(), nil
	}

	if systems.TryPickup(ctx.Player, item, ctx.World, ctx.Log) {
		// Сущность предмета теперь живет в инвентаре
		ctx.RemoveEntity(item)
	}

	return handlers.EmptyResult(), nil
}
