package domain

// FighterComponent - боевые характеристики сущности.
// Base* - собственные значения без учета экипировки; полные значения
// считаются методами Full* на Entity.
type FighterComponent struct {
	BaseMaxHP   int `json:"baseMaxHp"`
	HP          int `json:"hp"`
	BaseDefense int `json:"baseDefense"`
	BasePower   int `json:"basePower"`
	// XP: у монстров - награда за убийство, у игрока - накопленный опыт.
	XP int `json:"xp"`

	Death DeathKind `json:"death"`
}

// TakeDamage наносит урон. Отрицательный и нулевой урон игнорируется.
// Возвращает (умер ли носитель, награда опыта). Награда выдается ровно
// один раз - в момент, когда HP впервые падает до нуля.
func (f *FighterComponent) TakeDamage(damage int) (died bool, xpReward int) {
	if damage <= 0 {
		return false, 0
	}
	wasAlive := f.HP > 0
	f.HP -= damage
	if f.HP <= 0 && wasAlive {
		return true, f.XP
	}
	return false, 0
}

// Heal восстанавливает HP, не превышая собственный максимум.
func (f *FighterComponent) Heal(amount int) {
	f.HP += amount
	if f.HP > f.BaseMaxHP {
		f.HP = f.BaseMaxHP
	}
}
