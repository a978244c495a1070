package systems

import (
	"strings"
	"testing"

	"gravenhold-server/internal/domain"
)

func TestAttack(t *testing.T) {
	t.Run("Deals Power Minus Defense", func(t *testing.T) {
		log := domain.NewMessageLog()
		hero := newTestHero(1, 1)
		hero.Fighter.BasePower = 6
		orc := newTestOrc("orc1", 2, 1)

		Attack(hero, orc, log)

		if orc.Fighter.HP != 14 {
			t.Errorf("Expected orc HP 14 after 6 damage, got %d", orc.Fighter.HP)
		}
		if len(log.Entries) == 0 {
			t.Error("Expected attack log message, got none")
		}
	})

	t.Run("No Effect When Defense Holds", func(t *testing.T) {
		log := domain.NewMessageLog()
		hero := newTestHero(1, 1)
		hero.Fighter.BasePower = 2
		orc := newTestOrc("orc1", 2, 1)
		orc.Fighter.BaseDefense = 5

		Attack(hero, orc, log)

		if orc.Fighter.HP != 20 {
			t.Errorf("Expected orc HP unchanged at 20, got %d", orc.Fighter.HP)
		}
	})

	t.Run("Kill Grants XP And Leaves Corpse", func(t *testing.T) {
		log := domain.NewMessageLog()
		hero := newTestHero(1, 1)
		hero.Fighter.BasePower = 100
		orc := newTestOrc("orc1", 2, 1)

		Attack(hero, orc, log)

		if hero.Fighter.XP != 35 {
			t.Errorf("Expected hero XP 35, got %d", hero.Fighter.XP)
		}
		if orc.Type != domain.EntityTypeCorpse {
			t.Errorf("Expected corpse type, got %s", orc.Type)
		}
		if orc.Blocks {
			t.Error("Corpse should not block the tile")
		}
		if orc.Fighter != nil || orc.AI != nil {
			t.Error("Corpse should lose Fighter and AI components")
		}
		if !strings.HasPrefix(orc.Name, "останки") {
			t.Errorf("Expected corpse name prefix, got %q", orc.Name)
		}
	})

	t.Run("Player Death Sets GameOver State", func(t *testing.T) {
		log := domain.NewMessageLog()
		hero := newTestHero(1, 1)
		hero.Fighter.HP = 3
		orc := newTestOrc("orc1", 2, 1)
		orc.Fighter.BasePower = 10

		Attack(orc, hero, log)

		if hero.Alive {
			t.Error("Expected player Alive=false after lethal hit")
		}
		if hero.Render.Symbol != "%" {
			t.Errorf("Expected corpse glyph, got %q", hero.Render.Symbol)
		}
		// Компоненты игрока сохраняются: лист персонажа рисуется и после смерти
		if hero.Fighter == nil {
			t.Error("Player should keep Fighter component after death")
		}
	})

	t.Run("Equipment Bonuses Apply", func(t *testing.T) {
		log := domain.NewMessageLog()
		hero := newTestHero(1, 1)
		hero.Fighter.BasePower = 2
		sword := &domain.Entity{
			ID:   "sword",
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

		orc := newTestOrc("orc1", 2, 1)
		Attack(hero, orc, log)

		// 2 базовых + 3 от меча = 5 урона
		if orc.Fighter.HP != 15 {
			t.Errorf("Expected orc HP 15 with sword bonus, got %d", orc.Fighter.HP)
		}
	})
}
