package domain

// Производные характеристики: база плюс бонусы экипированных предметов
// из собственного инвентаря. У сущностей без инвентаря (монстры)
// полные значения совпадают с базовыми.

// FullPower - полная сила атаки.
func (e *Entity) FullPower() int {
	total := 0
	if e.Fighter != nil {
		total = e.Fighter.BasePower
	}
	for _, eq := range e.equippedComponents() {
		total += eq.PowerBonus
	}
	return total
}

// FullDefense - полная защита.
func (e *Entity) FullDefense() int {
	total := 0
	if e.Fighter != nil {
		total = e.Fighter.BaseDefense
	}
	for _, eq := range e.equippedComponents() {
		total += eq.DefenseBonus
	}
	return total
}

// FullMaxHP - полный максимум здоровья.
func (e *Entity) FullMaxHP() int {
	total := 0
	if e.Fighter != nil {
		total = e.Fighter.BaseMaxHP
	}
	for _, eq := range e.equippedComponents() {
		total += eq.MaxHPBonus
	}
	return total
}

// EquippedInSlot возвращает предмет, занимающий слот, либо nil.
func (e *Entity) EquippedInSlot(slot SlotType) *Entity {
	if e.Inventory == nil {
		return nil
	}
	for _, item := range e.Inventory.Items {
		if item.Equipment != nil && item.Equipment.IsEquipped && item.Equipment.Slot == slot {
			return item
		}
	}
	return nil
}

func (e *Entity) equippedComponents() []*EquipmentComponent {
	if e.Inventory == nil {
		return nil
	}
	var out []*EquipmentComponent
	for _, item := range e.Inventory.Items {
		if item.Equipment != nil && item.Equipment.IsEquipped {
			out = append(out, item.Equipment)
		}
	}
	return out
}
