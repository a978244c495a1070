package systems

import (
	"gravenhold-server/internal/domain"
)

// MovementResult - результат вычисления движения
type MovementResult struct {
	NewX, NewY int
	HasMoved   bool
	BlockedBy  *domain.Entity // Если врезались в кого-то (для атаки)
	IsWall     bool           // Если врезались в стену
}

// CalculateMove вычисляет новую позицию. Не меняет состояние мира!
func CalculateMove(e *domain.Entity, dx, dy int, w *domain.GameWorld) MovementResult {
	targetPos := e.Pos.Shift(dx, dy)

	res := MovementResult{NewX: targetPos.X, NewY: targetPos.Y}

	// 1. Проверка границ
	if !w.InBounds(targetPos.X, targetPos.Y) {
		res.IsWall = true
		return res
	}

	// 2. Проверка стен
	if w.Map[targetPos.Y][targetPos.X].Blocked {
		res.IsWall = true
		return res
	}

	// 3. Проверка сущностей: блокирует только сущность с флагом Blocks.
	// Предметы, трупы и лестницы проходимы.
	for _, other := range w.GetEntitiesAt(targetPos.X, targetPos.Y) {
		if other.ID == e.ID {
			continue
		}
		if other.Blocks {
			res.BlockedBy = other
			return res
		}
	}

	res.HasMoved = true
	return res
}
