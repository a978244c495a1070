package domain

// LogEntry - одно сообщение журнала с цветом отображения.
type LogEntry struct {
	Text  string `json:"text"`
	Color string `json:"color"`
}

// MessageLog - ограниченный журнал сообщений игры.
// При переполнении самое старое сообщение вытесняется.
type MessageLog struct {
	Entries []LogEntry `json:"entries"`
	Cap     int        `json:"cap"`
}

// NewMessageLog создает журнал стандартной емкости.
func NewMessageLog() *MessageLog {
	return &MessageLog{Entries: []LogEntry{}, Cap: MessageLogCapacity}
}

// Add добавляет сообщение, вытесняя старые при переполнении.
func (l *MessageLog) Add(text, color string) {
	l.Entries = append(l.Entries, LogEntry{Text: text, Color: color})
	if len(l.Entries) > l.Cap {
		l.Entries = l.Entries[len(l.Entries)-l.Cap:]
	}
}
