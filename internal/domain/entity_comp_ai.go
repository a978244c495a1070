package domain

// AIComponent - режим поведения монстра.
// Смятение оборачивает прежний компонент в Prev и возвращает его,
// когда счетчик TurnsLeft доходит до нуля. Вложенность не глубже
// одного уровня: повторное смятение лишь обновляет счетчик.
type AIComponent struct {
	Mode      AIMode       `json:"mode"`
	TurnsLeft int          `json:"turnsLeft,omitempty"`
	Prev      *AIComponent `json:"prev,omitempty"`
}

// NewBasicAI создает обычное поведение преследования.
func NewBasicAI() *AIComponent {
	return &AIComponent{Mode: AIBasic}
}

// NewConfusedAI оборачивает prev в состояние смятения на turns ходов.
// Уже смятенный prev не вкладывается повторно.
func NewConfusedAI(prev *AIComponent, turns int) *AIComponent {
	if prev != nil && prev.Mode == AIConfused {
		prev = prev.Prev
	}
	return &AIComponent{Mode: AIConfused, TurnsLeft: turns, Prev: prev}
}

// Restore возвращает поведение, которое было до смятения.
func (a *AIComponent) Restore() *AIComponent {
	if a.Prev != nil {
		return a.Prev
	}
	return NewBasicAI()
}
