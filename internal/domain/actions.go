package domain

import "strings"

// ActionType - внутренний числовой идентификатор действия
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionInit
	ActionMove
	ActionWait
	ActionPickup
	ActionDrop
	ActionUse
	ActionDescend
	ActionLevelUp
	ActionSave
	ActionLoad
)

// Маппинг для конвертации JSON -> Domain
var actionStringToCmd = map[string]ActionType{
	"INIT":     ActionInit,
	"MOVE":     ActionMove,
	"WAIT":     ActionWait,
	"PICKUP":   ActionPickup,
	"DROP":     ActionDrop,
	"USE":      ActionUse,
	"DESCEND":  ActionDescend,
	"LEVEL_UP": ActionLevelUp,
	"SAVE":     ActionSave,
	"LOAD":     ActionLoad,
}

// Маппинг для логов Domain -> String
var actionCmdToString = map[ActionType]string{
	ActionInit:    "INIT",
	ActionMove:    "MOVE",
	ActionWait:    "WAIT",
	ActionPickup:  "PICKUP",
	ActionDrop:    "DROP",
	ActionUse:     "USE",
	ActionDescend: "DESCEND",
	ActionLevelUp: "LEVEL_UP",
	ActionSave:    "SAVE",
	ActionLoad:    "LOAD",
}

// ParseAction конвертирует строку из JSON в ActionType
func ParseAction(s string) ActionType {
	// Нечувствительность к регистру для надежности
	upper := strings.ToUpper(s)
	if val, ok := actionStringToCmd[upper]; ok {
		return val
	}
	return ActionUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}

// TakesTurn сообщает, может ли действие тратить ход игрока.
// Обработчик вправе вернуть бесплатный исход (отмененное использование),
// но действие вне этого набора ход не тратит никогда.
// Подбор предмета хода не тратит.
func (a ActionType) TakesTurn() bool {
	switch a {
	case ActionMove, ActionWait, ActionDrop, ActionUse:
		return true
	default:
		return false
	}
}
