package engine

import (
	"container/heap"

	"gravenhold-server/internal/domain"
	"gravenhold-server/pkg/logger"
)

// TurnManager ведет очередь ходов монстров.
// Каждый монстр действует ровно один раз за мировой ход; внутри хода
// порядок определяется моментом появления монстра в мире.
type TurnManager struct {
	queue     TurnQueue
	itemMap   map[string]*TurnItem
	nextOrder int
}

func NewTurnManager() *TurnManager {
	return &TurnManager{
		queue:   make(TurnQueue, 0),
		itemMap: make(map[string]*TurnItem),
	}
}

// AddEntity регистрирует сущность с ИИ в системе ходов.
// firstTurn - номер мирового хода, начиная с которого сущность действует.
func (tm *TurnManager) AddEntity(e *domain.Entity, firstTurn int) {
	if e.AI == nil {
		return
	}

	item := &TurnItem{
		Value:    e,
		Priority: firstTurn,
		Order:    tm.nextOrder,
	}
	tm.nextOrder++

	heap.Push(&tm.queue, item)
	tm.itemMap[e.ID] = item

	logger.Log.WithField("entity_id", e.ID).Debug("Entity added to TurnManager")
}

// PopReady снимает с очереди следующую сущность, чей ход не позже turn.
// Возвращает nil, когда в этом ходу все уже отыграли.
func (tm *TurnManager) PopReady(turn int) *domain.Entity {
	for tm.queue.Len() > 0 {
		top := tm.queue[0]
		if top.Priority > turn {
			return nil
		}
		// Переносим на следующий мировой ход и отдаем
		tm.queue.Update(top, turn+1)
		return top.Value
	}
	return nil
}

// RemoveEntity убирает сущность из системы ходов (смерть).
func (tm *TurnManager) RemoveEntity(entityID string) {
	if item, ok := tm.itemMap[entityID]; ok {
		heap.Remove(&tm.queue, item.Index)
		delete(tm.itemMap, entityID)
	}
}

// Reset очищает очередь (переход на новый уровень).
func (tm *TurnManager) Reset() {
	tm.queue = make(TurnQueue, 0)
	tm.itemMap = make(map[string]*TurnItem)
	tm.nextOrder = 0
}

func (tm *TurnManager) Len() int {
	return tm.queue.Len()
}

// DebugDump возвращает снимок очереди для отладки
func (tm *TurnManager) DebugDump() []map[string]interface{} {
	// Пустой слайс, а не nil: в JSON это "[]", а не "null"
	result := make([]map[string]interface{}, 0)

	for _, item := range tm.queue {
		result = append(result, map[string]interface{}{
			"id":       item.Value.ID,
			"name":     item.Value.Name,
			"priority": item.Priority,
			"order":    item.Order,
		})
	}
	return result
}
