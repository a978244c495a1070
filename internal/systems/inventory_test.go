package systems

import (
	"testing"

	"gravenhold-server/internal/domain"
)

func newGroundPotion(id string, x, y int) *domain.Entity {
	return &domain.Entity{
		ID:     id,
		Type:   domain.EntityTypeItem,
		Name:   "Лечебное зелье",
		Pos:    domain.Position{X: x, Y: y},
		Render: &domain.RenderComponent{Symbol: "!", Color: domain.ColorViolet},
		Item:   &domain.ItemComponent{Kind: domain.ItemHeal},
	}
}

func TestTryPickup(t *testing.T) {
	w := createTestWorld(10, 10)
	log := domain.NewMessageLog()

	hero := newTestHero(3, 3)
	potion := newGroundPotion("p1", 3, 3)
	w.AddEntity(hero)
	w.AddEntity(potion)

	if !TryPickup(hero, potion, w, log) {
		t.Fatal("Expected pickup to succeed")
	}

	if len(hero.Inventory.Items) != 1 {
		t.Errorf("Expected 1 item in inventory, got %d", len(hero.Inventory.Items))
	}
	if w.GetEntity("p1") != nil {
		t.Error("Picked up item must leave the world index")
	}
}

func TestTryPickup_InventoryFull(t *testing.T) {
	w := createTestWorld(10, 10)
	log := domain.NewMessageLog()

	hero := newTestHero(3, 3)
	hero.Inventory = domain.NewInventory(1)
	if err := hero.Inventory.Add(newGroundPotion("held", 0, 0)); err != nil {
		t.Fatal(err)
	}

	potion := newGroundPotion("p1", 3, 3)
	w.AddEntity(potion)

	if TryPickup(hero, potion, w, log) {
		t.Fatal("Expected pickup to fail on full inventory")
	}
	if w.GetEntity("p1") == nil {
		t.Error("Rejected item must stay on the ground")
	}
}

func TestTryPickup_AutoEquip(t *testing.T) {
	w := createTestWorld(10, 10)
	log := domain.NewMessageLog()

	hero := newTestHero(3, 3)
	sword := &domain.Entity{
		ID:   "sword",
		Type: domain.EntityTypeItem,
		Name: "Меч",
		Pos:  domain.Position{X: 3, Y: 3},
		Item: &domain.ItemComponent{Kind: domain.ItemSword},
		Equipment: &domain.EquipmentComponent{
			Slot:       domain.SlotRightHand,
			PowerBonus: 3,
		},
	}
	w.AddEntity(sword)

	TryPickup(hero, sword, w, log)

	if !sword.Equipment.IsEquipped {
		t.Error("Weapon picked into a free slot should auto-equip")
	}

	// Второй меч в занятый слот не надевается сам
	sword2 := &domain.Entity{
		ID:   "sword2",
		Type: domain.EntityTypeItem,
		Name: "Меч",
		Pos:  domain.Position{X: 3, Y: 3},
		Item: &domain.ItemComponent{Kind: domain.ItemSword},
		Equipment: &domain.EquipmentComponent{
			Slot:       domain.SlotRightHand,
			PowerBonus: 3,
		},
	}
	w.AddEntity(sword2)
	TryPickup(hero, sword2, w, log)

	if sword2.Equipment.IsEquipped {
		t.Error("Second weapon must not auto-equip into occupied slot")
	}
}

func TestTryDrop(t *testing.T) {
	w := createTestWorld(10, 10)
	log := domain.NewMessageLog()

	hero := newTestHero(4, 4)
	sword := &domain.Entity{
		ID:   "sword",
		Type: domain.EntityTypeItem,
		Name: "Меч",
		Item: &domain.ItemComponent{Kind: domain.ItemSword},
		Equipment: &domain.EquipmentComponent{
			Slot:       domain.SlotRightHand,
			IsEquipped: true,
			PowerBonus: 3,
		},
	}
	if err := hero.Inventory.Add(sword); err != nil {
		t.Fatal(err)
	}

	TryDrop(hero, sword, w, log)

	if len(hero.Inventory.Items) != 0 {
		t.Error("Dropped item must leave the inventory")
	}
	if sword.Equipment.IsEquipped {
		t.Error("Dropped item must be dequipped first")
	}
	if sword.Pos != hero.Pos {
		t.Error("Dropped item must land under the actor")
	}
	if w.GetEntity("sword") == nil {
		t.Error("Dropped item must return to the world index")
	}
}

func TestItemOnGround(t *testing.T) {
	w := createTestWorld(10, 10)

	hero := newTestHero(3, 3)
	w.AddEntity(hero)

	if ItemOnGround(hero, w) != nil {
		t.Error("Expected no item underfoot")
	}

	potion := newGroundPotion("p1", 3, 3)
	w.AddEntity(potion)

	found := ItemOnGround(hero, w)
	if found == nil || found.ID != "p1" {
		t.Error("Expected to find the potion underfoot")
	}
}
