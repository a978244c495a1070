package systems

import (
	"gravenhold-server/internal/domain"
)

// ValidationResult - результат проверки цели
type ValidationResult struct {
	Target  *domain.Entity
	Valid   bool
	Message string // Сообщение об ошибке, если Valid == false
}

// ClosestMonster находит ближайшего живого врага в радиусе maxRange,
// видимого наблюдателю. При равных дистанциях побеждает найденный первым:
// сравнение строгое.
func ClosestMonster(observer *domain.Entity, entities []*domain.Entity, visible map[int]bool, w *domain.GameWorld, maxRange int) *domain.Entity {
	var closest *domain.Entity
	closestDist := float64(maxRange) + 1

	for _, e := range entities {
		if e.ID == observer.ID || e.Fighter == nil {
			continue
		}
		if !visible[w.GetIndex(e.Pos.X, e.Pos.Y)] {
			continue
		}
		dist := observer.Pos.DistanceTo(e.Pos)
		if dist < closestDist {
			closest = e
			closestDist = dist
		}
	}
	return closest
}

// ValidateTileTarget проверяет клетку, выбранную для зональных эффектов:
// в границах карты и в поле зрения игрока.
func ValidateTileTarget(pos domain.Position, visible map[int]bool, w *domain.GameWorld) ValidationResult {
	if !w.InBounds(pos.X, pos.Y) {
		return ValidationResult{Valid: false, Message: "Эта клетка вне карты."}
	}
	if !visible[w.GetIndex(pos.X, pos.Y)] {
		return ValidationResult{Valid: false, Message: "Вы не видите эту клетку."}
	}
	return ValidationResult{Valid: true}
}

// ValidateMonsterTarget проверяет монстра, выбранного для точечных эффектов:
// существует, жив, в поле зрения и не дальше maxRange.
func ValidateMonsterTarget(observer *domain.Entity, targetID string, maxRange int, visible map[int]bool, w *domain.GameWorld) ValidationResult {
	target := w.GetEntity(targetID)
	if target == nil || target.Fighter == nil {
		return ValidationResult{Valid: false, Message: "Цель не найдена."}
	}
	if target.ID == observer.ID {
		return ValidationResult{Valid: false, Message: "Нельзя выбрать себя."}
	}
	if !visible[w.GetIndex(target.Pos.X, target.Pos.Y)] {
		return ValidationResult{Valid: false, Message: "Вы не видите цель."}
	}
	if observer.Pos.DistanceTo(target.Pos) > float64(maxRange) {
		return ValidationResult{Valid: false, Message: "Цель слишком далеко."}
	}
	return ValidationResult{Target: target, Valid: true}
}
