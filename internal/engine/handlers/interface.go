package handlers

import (
	"encoding/json"

	"gravenhold-server/internal/domain"
	"gravenhold-server/pkg/rng"
)

// Context передает хендлеру состояние партии.
// Мы передаем ссылки, чтобы хендлер мог менять состояние.
// Операции уровня партии (спуск, удаление из мира) приходят колбэками,
// чтобы пакет хендлеров не зависел от движка.
type Context struct {
	World    *domain.GameWorld
	Entities []*domain.Entity
	Player   *domain.Entity
	Log      *domain.MessageLog
	Visible  map[int]bool
	Dice     *rng.Dice

	// MarkFovDirty помечает поле зрения на пересчет (игрок сдвинулся)
	MarkFovDirty func()
	// RemoveEntity убирает сущность из мира и списка (подбор)
	RemoveEntity func(*domain.Entity)
	// AddEntity возвращает сущность в мир (сброс)
	AddEntity func(*domain.Entity)
	// Descend перестраивает подземелье на уровень глубже
	Descend func() error
	// ApplyLevelUp применяет выбранную награду за уровень
	ApplyLevelUp func(choice string) error
}

// Цели, которые хендлер может запросить у клиента
const (
	TargetTile    = "TILE"
	TargetMonster = "MONSTER"
)

// Result - результат выполнения команды.
// Сообщения игроку хендлер пишет в ctx.Log; здесь только управление ходом.
type Result struct {
	// TookTurn - действие потратило ход, монстры получат свои.
	TookTurn bool
	// NeedTarget - эффекту нужна цель; ход не потрачен, предмет цел.
	// Клиент повторяет команду с заполненной целью или молчит (отмена).
	NeedTarget string
	// NeedTargetItem - номер слота предмета, ожидающего цель.
	NeedTargetItem int
	// Event - событие для движка (переход уровня и т.п.)
	Event domain.EventType
}

// HandlerFunc - это контракт для любой команды (MOVE, USE, etc).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - вспомогательная функция для пустого ответа
func EmptyResult() Result {
	return Result{}
}
