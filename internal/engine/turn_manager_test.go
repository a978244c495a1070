package engine

import (
	"testing"

	"gravenhold-server/internal/domain"
)

func newAIEntity(id string) *domain.Entity {
	return &domain.Entity{
		ID:      id,
		AI:      domain.NewBasicAI(),
		Fighter: &domain.FighterComponent{HP: 10},
	}
}

func TestTurnManager_PopReady(t *testing.T) {
	tm := NewTurnManager()

	tm.AddEntity(newAIEntity("a"), 1)
	tm.AddEntity(newAIEntity("b"), 1)
	tm.AddEntity(newAIEntity("c"), 2)

	// Ход 1: готовы только a и b, в порядке регистрации
	var got []string
	for {
		e := tm.PopReady(1)
		if e == nil {
			break
		}
		got = append(got, e.ID)
	}
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("Turn 1 order mismatch: %v", got)
	}

	// Ход 2: все трое, каждый ровно один раз
	got = nil
	for {
		e := tm.PopReady(2)
		if e == nil {
			break
		}
		got = append(got, e.ID)
	}
	if len(got) != 3 {
		t.Errorf("Turn 2 expected 3 entities, got %v", got)
	}
}

func TestTurnManager_IgnoresEntitiesWithoutAI(t *testing.T) {
	tm := NewTurnManager()
	tm.AddEntity(&domain.Entity{ID: "item"}, 1)

	if tm.Len() != 0 {
		t.Errorf("Entity without AI must not be queued, len=%d", tm.Len())
	}
}

func TestTurnManager_RemoveAndReset(t *testing.T) {
	tm := NewTurnManager()
	tm.AddEntity(newAIEntity("a"), 1)
	tm.AddEntity(newAIEntity("b"), 1)

	tm.RemoveEntity("a")
	if tm.Len() != 1 {
		t.Errorf("Expected 1 entity after removal, got %d", tm.Len())
	}
	if e := tm.PopReady(1); e == nil || e.ID != "b" {
		t.Error("Expected b to survive removal")
	}

	tm.Reset()
	if tm.Len() != 0 {
		t.Errorf("Expected empty manager after reset, got %d", tm.Len())
	}
	if dump := tm.DebugDump(); len(dump) != 0 {
		t.Errorf("DebugDump after reset must be empty, got %v", dump)
	}
}
