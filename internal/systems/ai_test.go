package systems

import (
	"testing"

	"gravenhold-server/internal/domain"
	"gravenhold-server/pkg/rng"
)

func TestTakeMonsterTurn_Basic(t *testing.T) {
	t.Run("Out Of Player Sight Does Nothing", func(t *testing.T) {
		w := createTestWorld(20, 20)
		log := domain.NewMessageLog()
		dice := rng.New(1)

		hero := newTestHero(10, 10)
		orc := newTestOrc("orc1", 2, 2)
		w.AddEntity(hero)
		w.AddEntity(orc)

		// Игрок не видит клетку монстра
		visible := map[int]bool{}

		TakeMonsterTurn(orc, hero, w, visible, dice, log)

		if orc.Pos.X != 2 || orc.Pos.Y != 2 {
			t.Errorf("Unseen monster should hold position, got (%d,%d)", orc.Pos.X, orc.Pos.Y)
		}
		if hero.Fighter.HP != 100 {
			t.Error("Unseen monster should not attack")
		}
	})

	t.Run("Approaches Distant Player", func(t *testing.T) {
		w := createTestWorld(20, 20)
		log := domain.NewMessageLog()
		dice := rng.New(1)

		hero := newTestHero(10, 10)
		orc := newTestOrc("orc1", 6, 6)
		w.AddEntity(hero)
		w.AddEntity(orc)

		TakeMonsterTurn(orc, hero, w, allVisible(w), dice, log)

		// Диагональный шаг к игроку
		if orc.Pos.X != 7 || orc.Pos.Y != 7 {
			t.Errorf("Expected orc at (7,7), got (%d,%d)", orc.Pos.X, orc.Pos.Y)
		}
	})

	t.Run("Attacks Adjacent Player", func(t *testing.T) {
		w := createTestWorld(20, 20)
		log := domain.NewMessageLog()
		dice := rng.New(1)

		hero := newTestHero(10, 10)
		orc := newTestOrc("orc1", 10, 11)
		w.AddEntity(hero)
		w.AddEntity(orc)

		TakeMonsterTurn(orc, hero, w, allVisible(w), dice, log)

		// Сила орка 4, защита героя 1 => 3 урона
		if hero.Fighter.HP != 97 {
			t.Errorf("Expected hero HP 97, got %d", hero.Fighter.HP)
		}
		if orc.Pos.X != 10 || orc.Pos.Y != 11 {
			t.Error("Attacking monster should not move")
		}
	})
}

func TestTakeMonsterTurn_Confused(t *testing.T) {
	w := createTestWorld(20, 20)
	log := domain.NewMessageLog()
	dice := rng.New(7)

	hero := newTestHero(2, 2)
	orc := newTestOrc("orc1", 10, 10)
	w.AddEntity(hero)
	w.AddEntity(orc)

	orc.AI = domain.NewConfusedAI(orc.AI, 2)

	// Два хода блуждания: счетчик тает даже вне поля зрения игрока
	TakeMonsterTurn(orc, hero, w, map[int]bool{}, dice, log)
	if orc.AI.TurnsLeft != 1 {
		t.Errorf("Expected 1 turn left, got %d", orc.AI.TurnsLeft)
	}
	TakeMonsterTurn(orc, hero, w, map[int]bool{}, dice, log)
	if orc.AI.TurnsLeft != 0 {
		t.Errorf("Expected 0 turns left, got %d", orc.AI.TurnsLeft)
	}

	// Третий ход возвращает прежнее поведение и пишет сообщение
	TakeMonsterTurn(orc, hero, w, map[int]bool{}, dice, log)
	if orc.AI.Mode != domain.AIBasic {
		t.Errorf("Expected basic mode restored, got %s", orc.AI.Mode)
	}

	found := false
	for _, entry := range log.Entries {
		if entry.Text == "Орк больше не в смятении!" {
			found = true
		}
	}
	if !found {
		t.Error("Expected confusion wear-off message in log")
	}
}

func TestTakeMonsterTurn_DeadMonsterSkips(t *testing.T) {
	w := createTestWorld(10, 10)
	log := domain.NewMessageLog()
	dice := rng.New(1)

	hero := newTestHero(5, 5)
	corpse := newTestOrc("orc1", 5, 6)
	corpse.Fighter = nil
	corpse.AI = nil

	TakeMonsterTurn(corpse, hero, w, allVisible(w), dice, log)

	if hero.Fighter.HP != 100 {
		t.Error("Corpse must not act")
	}
}
