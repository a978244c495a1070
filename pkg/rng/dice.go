package rng

import "math/rand"

// Dice - явный источник случайности симуляции.
// Прокидывается через генерацию, ИИ и эффекты, чтобы партия
// полностью воспроизводилась по одному сиду (реплеи, тесты).
type Dice struct {
	rand *rand.Rand
	seed int64
}

// New создает Dice с заданным сидом.
func New(seed int64) *Dice {
	return &Dice{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed возвращает сид, с которого начался генератор.
func (d *Dice) Seed() int64 {
	return d.seed
}

// Raw отдает нижележащий *rand.Rand (для utils.GenerateDeterministicID).
func (d *Dice) Raw() *rand.Rand {
	return d.rand
}

// Range возвращает равномерное целое из [min, max] включительно.
func (d *Dice) Range(min, max int) int {
	return d.rand.Intn(max-min+1) + min
}

// Intn возвращает равномерное целое из [0, n).
func (d *Dice) Intn(n int) int {
	return d.rand.Intn(n)
}

// Coin - честная монетка.
func (d *Dice) Coin() bool {
	return d.rand.Intn(2) == 0
}

// WeightedChoice выбирает индекс пропорционально весам.
// Нулевые веса никогда не выпадают. Паникует, если сумма весов нулевая:
// таблицы спавна обязаны содержать хотя бы один ненулевой вес.
func (d *Dice) WeightedChoice(weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		panic("rng: weighted choice over empty table")
	}

	roll := d.rand.Intn(total)
	for i, w := range weights {
		if roll < w {
			return i
		}
		roll -= w
	}
	// Недостижимо при корректной сумме
	return len(weights) - 1
}
