package domain

import "encoding/json"

// ReplayAction - запись одного действия игрока
type ReplayAction struct {
	Tick    int             `json:"tick"`
	Token   string          `json:"token"`   // Кто сделал
	Action  ActionType      `json:"action"`  // Что сделал
	Payload json.RawMessage `json:"payload"` // С какими параметрами
}

// ReplaySession - полная запись партии
type ReplaySession struct {
	Seed      int64          `json:"seed"` // Зерно генерации мира и рандома
	Timestamp int64          `json:"timestamp"`
	Actions   []ReplayAction `json:"actions"`
}
