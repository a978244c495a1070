package actions

import (
	"gravenhold-server/internal/domain"
	"gravenhold-server/internal/engine/handlers"
	"gravenhold-server/pkg/api"
)

// HandleLevelUp применяет выбор награды за новый уровень.
// Неизвестный вариант отклоняется, и выбор запрашивается снова.
func HandleLevelUp(ctx handlers.Context, p api.LevelUpPayload) (handlers.Result, error) {
	if err := ctx.ApplyLevelUp(p.Choice); err != nil {
		ctx.Log.Add("Выберите награду: здоровье, сила или защита.", domain.ColorYellow)
		return handlers.EmptyResult(), nil
	}
	return handlers.Result{Event: domain.EventLevelUp}, nil
}
