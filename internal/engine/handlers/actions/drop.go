package actions

import (
	"gravenhold-server/internal/domain"
	"gravenhold-server/internal/engine/handlers"
	"gravenhold-server/internal/systems"
	"gravenhold-server/pkg/api"
)

// HandleDrop выкладывает предмет из инвентаря под ноги.
func HandleDrop(ctx handlers.Context, p api.ItemPayload) (handlers.Result, error) {
	item := ctx.Player.Inventory.ByIndex(p.Index)
	if item == nil {
		ctx.Log.Add("Такого предмета нет в инвентаре.", domain.ColorRed)
		return handlers.EmptyResult(), nil
	}

	systems.TryDrop(ctx.Player, item, ctx.World, ctx.Log)
	ctx.AddEntity(item)

	return handlers.Result{TookTurn: true}, nil
}
