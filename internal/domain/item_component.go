package domain

import "fmt"

// ItemComponent помечает сущность как предмет, который можно подобрать
// и использовать. Kind определяет эффект.
type ItemComponent struct {
	Kind ItemKind `json:"kind"`
}

// EquipmentComponent - экипируемый предмет. Бонусы действуют на носителя,
// только пока IsEquipped.
type EquipmentComponent struct {
	Slot         SlotType `json:"slot"`
	IsEquipped   bool     `json:"isEquipped"`
	PowerBonus   int      `json:"powerBonus,omitempty"`
	DefenseBonus int      `json:"defenseBonus,omitempty"`
	MaxHPBonus   int      `json:"maxHpBonus,omitempty"`
}

// InventoryComponent - инвентарь носителя. Предметы в инвентаре
// отсутствуют на карте; сущность предмета живет внутри списка.
type InventoryComponent struct {
	Items    []*Entity `json:"items"`
	MaxSlots int       `json:"maxSlots"`
}

// NewInventory создает пустой инвентарь на maxSlots предметов.
func NewInventory(maxSlots int) *InventoryComponent {
	return &InventoryComponent{Items: []*Entity{}, MaxSlots: maxSlots}
}

// IsFull сообщает, заполнен ли инвентарь.
func (inv *InventoryComponent) IsFull() bool {
	return len(inv.Items) >= inv.MaxSlots
}

// Add кладет предмет в инвентарь. Ошибка, если места нет.
func (inv *InventoryComponent) Add(item *Entity) error {
	if inv.IsFull() {
		return fmt.Errorf("inventory full (%d/%d)", len(inv.Items), inv.MaxSlots)
	}
	inv.Items = append(inv.Items, item)
	return nil
}

// ByIndex возвращает предмет по порядковому номеру слота.
func (inv *InventoryComponent) ByIndex(i int) *Entity {
	if i < 0 || i >= len(inv.Items) {
		return nil
	}
	return inv.Items[i]
}

// Remove извлекает предмет из инвентаря по ID. Порядок остальных
// предметов сохраняется - номера слотов у клиента стабильны.
func (inv *InventoryComponent) Remove(id string) *Entity {
	for i, item := range inv.Items {
		if item.ID == id {
			inv.Items = append(inv.Items[:i], inv.Items[i+1:]...)
			return item
		}
	}
	return nil
}
