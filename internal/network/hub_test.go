package network

import (
	"testing"

	"gravenhold-server/pkg/api"
)

func TestBroadcaster_SendTo(t *testing.T) {
	hub := NewBroadcaster()

	ch := hub.Register("alice")
	hub.SendTo("alice", api.ServerResponse{Type: "UPDATE", Turn: 3})
	hub.SendTo("bob", api.ServerResponse{Type: "UPDATE"})

	select {
	case msg := <-ch:
		if msg.Turn != 3 {
			t.Errorf("Expected turn 3, got %d", msg.Turn)
		}
	default:
		t.Fatal("Expected a message in the channel")
	}

	if !hub.HasSubscriber("alice") || hub.HasSubscriber("bob") {
		t.Error("Subscriber bookkeeping broken")
	}
	if hub.SubscriberCount() != 1 {
		t.Errorf("Expected 1 subscriber, got %d", hub.SubscriberCount())
	}
}

func TestBroadcaster_ReregisterClosesOldChannel(t *testing.T) {
	hub := NewBroadcaster()

	old := hub.Register("alice")
	fresh := hub.Register("alice")

	if _, ok := <-old; ok {
		t.Error("Old channel must be closed on re-register")
	}

	hub.SendTo("alice", api.ServerResponse{Type: "UPDATE"})
	select {
	case <-fresh:
	default:
		t.Error("Fresh channel must receive messages")
	}
}

func TestBroadcaster_Unregister(t *testing.T) {
	hub := NewBroadcaster()

	ch := hub.Register("alice")
	hub.Unregister("alice")

	if _, ok := <-ch; ok {
		t.Error("Channel must be closed on unregister")
	}
	if hub.SubscriberCount() != 0 {
		t.Error("Unregistered subscriber must be forgotten")
	}

	// Повторный Unregister безопасен
	hub.Unregister("alice")
}

func TestBroadcaster_Broadcast(t *testing.T) {
	hub := NewBroadcaster()

	a := hub.Register("a")
	b := hub.Register("b")
	hub.Broadcast(api.ServerResponse{Type: "UPDATE"})

	for name, ch := range map[string]chan api.ServerResponse{"a": a, "b": b} {
		select {
		case <-ch:
		default:
			t.Errorf("Subscriber %s missed the broadcast", name)
		}
	}
}

func TestBroadcaster_FullChannelDoesNotBlock(t *testing.T) {
	hub := NewBroadcaster()

	hub.Register("slow")
	// Переполняем буфер: лишние сообщения молча отбрасываются
	for i := 0; i < 150; i++ {
		hub.SendTo("slow", api.ServerResponse{Type: "UPDATE", Turn: i})
	}
}
