package network

import (
	"sync"

	"gravenhold-server/pkg/api"
)

// Broadcaster занимается только рассылкой сообщений подписчикам
type Broadcaster struct {
	mu sync.RWMutex
	// Мапа: ID игрока -> Личный канал
	subscribers map[string]chan api.ServerResponse
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan api.ServerResponse),
	}
}

// Register создает личный канал для игрока
func (b *Broadcaster) Register(playerID string) chan api.ServerResponse {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Если канал был, закрываем
	if old, ok := b.subscribers[playerID]; ok {
		close(old)
	}

	ch := make(chan api.ServerResponse, 100)
	b.subscribers[playerID] = ch
	return ch
}

// Unregister удаляет подписчика
func (b *Broadcaster) Unregister(playerID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[playerID]; ok {
		close(ch)
		delete(b.subscribers, playerID)
	}
}

// SendTo отправляет сообщение конкретному игроку (Unicast)
func (b *Broadcaster) SendTo(playerID string, msg api.ServerResponse) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if ch, ok := b.subscribers[playerID]; ok {
		select {
		case ch <- msg:
		default:
		}
	}
}

// Broadcast отправляет всем (нужен для зрителей)
func (b *Broadcaster) Broadcast(msg api.ServerResponse) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subscribers {
		select {
		case ch <- msg:
		default:
		}
	}
}

// HasSubscriber проверяет, подключен ли игрок сейчас
func (b *Broadcaster) HasSubscriber(playerID string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.subscribers[playerID]
	return ok
}

// SubscriberCount возвращает количество активных подписчиков.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
