package actions

import (
	"gravenhold-server/internal/domain"
	"gravenhold-server/internal/engine/handlers"
)

// HandleDescend спускает игрока по лестнице, если он стоит на ней.
func HandleDescend(ctx handlers.Context) (handlers.Result, error) {
	stairs := false
	for _, e := range ctx.World.GetEntitiesAt(ctx.Player.Pos.X, ctx.Player.Pos.Y) {
		if e.Type == domain.EntityTypeStairs {
			stairs = true
			break
		}
	}

	if !stairs {
		ctx.Log.Add("Здесь нет лестницы вниз.", domain.ColorYellow)
		return handlers.EmptyResult(), nil
	}

	if err := ctx.Descend(); err != nil {
		return handlers.EmptyResult(), err
	}

	return handlers.Result{Event: domain.EventLevelTransition}, nil
}
