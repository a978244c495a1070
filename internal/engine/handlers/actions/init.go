package actions

import (
	"gravenhold-server/internal/engine/handlers"
)

// HandleInit ничего не меняет: клиент просто запрашивает полный
// снимок состояния, который сессия строит после каждой команды.
func HandleInit(ctx handlers.Context) (handlers.Result, error) {
	return handlers.EmptyResult(), nil
}
