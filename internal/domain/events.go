package domain

import "strings"

// EventType - внутренний числовой идентификатор события
type EventType uint8

const (
	EventUnknown EventType = iota
	EventLevelTransition
	EventLevelUp
	EventPlayerDied
)

// Маппинг для конвертации JSON -> Domain
var eventStringToCmd = map[string]EventType{
	"LEVEL_TRANSITION": EventLevelTransition,
	"LEVEL_UP":         EventLevelUp,
	"PLAYER_DIED":      EventPlayerDied,
}

// Маппинг для логов Domain -> String
var eventCmdToString = map[EventType]string{
	EventLevelTransition: "LEVEL_TRANSITION",
	EventLevelUp:         "LEVEL_UP",
	EventPlayerDied:      "PLAYER_DIED",
}

// ParseEvent конвертирует строку из JSON в EventType
func ParseEvent(s string) EventType {
	upper := strings.ToUpper(s)
	if val, ok := eventStringToCmd[upper]; ok {
		return val
	}
	return EventUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a EventType) String() string {
	if val, ok := eventCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}
