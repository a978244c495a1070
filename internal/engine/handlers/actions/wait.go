package actions

import (
	"gravenhold-server/internal/engine/handlers"
)

// HandleWait - игрок пропускает ход.
func HandleWait(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{TookTurn: true}, nil
}
