package domain

import "math"

// DistanceTo - евклидово расстояние до другой позиции.
func (p Position) DistanceTo(other Position) float64 {
	return p.DistanceToPoint(other.X, other.Y)
}

// DistanceToPoint - евклидово расстояние до точки.
func (p Position) DistanceToPoint(x, y int) float64 {
	dx := float64(x - p.X)
	dy := float64(y - p.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// StepToward возвращает шаг на одну клетку в сторону цели:
// вектор к цели нормализуется и округляется покомпонентно.
// Диагональные шаги допустимы.
func (p Position) StepToward(target Position) (dx, dy int) {
	fdx := float64(target.X - p.X)
	fdy := float64(target.Y - p.Y)
	dist := math.Sqrt(fdx*fdx + fdy*fdy)
	if dist == 0 {
		return 0, 0
	}
	return int(math.Round(fdx / dist)), int(math.Round(fdy / dist))
}

// Shift возвращает позицию, сдвинутую на (dx, dy).
func (p Position) Shift(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}
