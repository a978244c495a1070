package systems

import (
	"testing"

	"gravenhold-server/internal/domain"
)

func TestCastHeal(t *testing.T) {
	log := domain.NewMessageLog()
	hero := newTestHero(1, 1)
	hero.Fighter.HP = 30

	if res := CastHeal(hero, log); res != UsedUp {
		t.Errorf("Expected UsedUp, got %v", res)
	}
	if hero.Fighter.HP != 70 {
		t.Errorf("Expected HP 70 after heal, got %d", hero.Fighter.HP)
	}

	// Лечение на полном здоровье отменяется, предмет цел
	hero.Fighter.HP = hero.FullMaxHP()
	if res := CastHeal(hero, log); res != UseCancelled {
		t.Errorf("Expected UseCancelled at full HP, got %v", res)
	}
	if hero.Fighter.HP != hero.FullMaxHP() {
		t.Errorf("HP should be unchanged, got %d", hero.Fighter.HP)
	}
}

func TestCastHeal_ClampsToMax(t *testing.T) {
	log := domain.NewMessageLog()
	hero := newTestHero(1, 1)
	hero.Fighter.HP = 90

	CastHeal(hero, log)

	if hero.Fighter.HP != 100 {
		t.Errorf("Expected HP clamped to 100, got %d", hero.Fighter.HP)
	}
}

func TestCastLightning(t *testing.T) {
	w := createTestWorld(20, 20)
	log := domain.NewMessageLog()
	hero := newTestHero(5, 5)

	// Ближний орк на дистанции 2, дальний на 4: обе в радиусе молнии
	near := newTestOrc("near", 7, 5)
	far := newTestOrc("far", 9, 5)
	w.AddEntity(near)
	w.AddEntity(far)
	entities := []*domain.Entity{hero, near, far}

	visible := allVisible(w)

	if res := CastLightning(hero, entities, visible, w, log); res != UsedUp {
		t.Errorf("Expected UsedUp, got %v", res)
	}

	if near.Fighter != nil && near.Fighter.HP == 20 {
		t.Error("Expected nearest orc to take the hit")
	}
	if far.Fighter == nil || far.Fighter.HP != 20 {
		t.Error("Far orc should be untouched")
	}

	// Урон молнии убивает орка (40 > 20), опыт уходит заклинателю
	if hero.Fighter.XP != 35 {
		t.Errorf("Expected hero XP 35 for the kill, got %d", hero.Fighter.XP)
	}
}

func TestCastLightning_NoTarget(t *testing.T) {
	w := createTestWorld(20, 20)
	log := domain.NewMessageLog()
	hero := newTestHero(5, 5)

	// Орк за пределами радиуса молнии (dist 10 > 5)
	far := newTestOrc("far", 15, 5)
	w.AddEntity(far)
	entities := []*domain.Entity{hero, far}

	if res := CastLightning(hero, entities, allVisible(w), w, log); res != UseCancelled {
		t.Errorf("Expected UseCancelled without target, got %v", res)
	}
	if far.Fighter.HP != 20 {
		t.Error("Out-of-range orc should be untouched")
	}
}

func TestCastLightning_IgnoresUnseen(t *testing.T) {
	w := createTestWorld(20, 20)
	log := domain.NewMessageLog()
	hero := newTestHero(5, 5)

	orc := newTestOrc("orc1", 7, 5)
	w.AddEntity(orc)
	entities := []*domain.Entity{hero, orc}

	// Монстр рядом, но вне поля зрения
	visible := map[int]bool{}

	if res := CastLightning(hero, entities, visible, w, log); res != UseCancelled {
		t.Errorf("Expected UseCancelled for unseen monster, got %v", res)
	}
}

func TestCastFireball_FriendlyFire(t *testing.T) {
	log := domain.NewMessageLog()
	hero := newTestHero(5, 5)

	inBlast := newTestOrc("inblast", 6, 5)
	outside := newTestOrc("outside", 15, 15)
	entities := []*domain.Entity{hero, inBlast, outside}

	// Взрыв прямо под ногами: задевает и заклинателя
	res := CastFireball(hero, domain.Position{X: 5, Y: 5}, entities, log)

	if res != UsedUp {
		t.Errorf("Expected UsedUp, got %v", res)
	}
	if hero.Fighter.HP != 75 {
		t.Errorf("Caster must take blast damage, expected HP 75, got %d", hero.Fighter.HP)
	}
	if inBlast.Fighter != nil && inBlast.Fighter.HP == 20 {
		t.Error("Orc in blast radius should take damage")
	}
	if outside.Fighter.HP != 20 {
		t.Error("Orc outside radius should be untouched")
	}

	// Орк умер (25 > 20), опыт начислен
	if hero.Fighter.XP != 35 {
		t.Errorf("Expected hero XP 35, got %d", hero.Fighter.XP)
	}
}

func TestCastFireball_NoXPForSelfKill(t *testing.T) {
	log := domain.NewMessageLog()
	hero := newTestHero(5, 5)
	hero.Fighter.HP = 10
	hero.Fighter.XP = 0

	entities := []*domain.Entity{hero}
	CastFireball(hero, domain.Position{X: 5, Y: 5}, entities, log)

	if hero.Alive {
		t.Error("Hero should die in own blast")
	}
	if hero.Fighter.XP != 0 {
		t.Errorf("No XP for own death, got %d", hero.Fighter.XP)
	}
}

func TestCastConfuse(t *testing.T) {
	log := domain.NewMessageLog()
	orc := newTestOrc("orc1", 3, 3)

	if res := CastConfuse(orc, log); res != UsedUp {
		t.Errorf("Expected UsedUp, got %v", res)
	}
	if orc.AI.Mode != domain.AIConfused {
		t.Errorf("Expected confused mode, got %s", orc.AI.Mode)
	}
	if orc.AI.TurnsLeft != domain.ConfuseNumTurns {
		t.Errorf("Expected %d turns, got %d", domain.ConfuseNumTurns, orc.AI.TurnsLeft)
	}

	// Повторное смятение не наращивает цепочку Prev
	orc.AI.TurnsLeft = 2
	CastConfuse(orc, log)
	if orc.AI.TurnsLeft != domain.ConfuseNumTurns {
		t.Errorf("Re-confuse should reset counter, got %d", orc.AI.TurnsLeft)
	}
	if orc.AI.Prev == nil || orc.AI.Prev.Mode != domain.AIBasic {
		t.Error("Prev must stay the basic behavior, not another confusion")
	}
}

func TestToggleEquipment(t *testing.T) {
	log := domain.NewMessageLog()
	hero := newTestHero(1, 1)

	dagger := &domain.Entity{
		ID:   "dagger",
		Name: "Кинжал",
		Item: &domain.ItemComponent{Kind: domain.ItemDagger},
		Equipment: &domain.EquipmentComponent{
			Slot:       domain.SlotRightHand,
			IsEquipped: true,
			PowerBonus: 2,
		},
	}
	sword := &domain.Entity{
		ID:   "sword",
		Name: "Меч",
		Item: &domain.ItemComponent{Kind: domain.ItemSword},
		Equipment: &domain.EquipmentComponent{
			Slot:       domain.SlotRightHand,
			PowerBonus: 3,
		},
	}
	if err := hero.Inventory.Add(dagger); err != nil {
		t.Fatal(err)
	}
	if err := hero.Inventory.Add(sword); err != nil {
		t.Fatal(err)
	}

	// Надеваем меч: кинжал в том же слоте снимается сам
	if res := ToggleEquipment(hero, sword, log); res != UsedAndKept {
		t.Errorf("Expected UsedAndKept, got %v", res)
	}
	if !sword.Equipment.IsEquipped {
		t.Error("Sword should be equipped")
	}
	if dagger.Equipment.IsEquipped {
		t.Error("Dagger should be auto-dequipped from the same slot")
	}
	if hero.FullPower() != 5 {
		t.Errorf("Expected full power 5 (2 base + 3 sword), got %d", hero.FullPower())
	}

	// Повторное использование снимает меч
	ToggleEquipment(hero, sword, log)
	if sword.Equipment.IsEquipped {
		t.Error("Second toggle should dequip the sword")
	}
	if hero.FullPower() != 2 {
		t.Errorf("Expected base power 2, got %d", hero.FullPower())
	}
}
