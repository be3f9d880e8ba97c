package network

import (
	"testing"

	"github.com/WendellNunes/RogueLibras/pkg/api"
)

func TestBroadcastReachesAllSubscribers(t *testing.T) {
	b := NewBroadcaster()
	ch1 := b.Register("s1")
	ch2 := b.Register("s2")

	b.Broadcast(api.ServerResponse{Type: "update", Banner: "Lojinha"})

	for i, ch := range []chan api.ServerResponse{ch1, ch2} {
		select {
		case msg := <-ch:
			if msg.Banner != "Lojinha" {
				t.Errorf("subscriber %d banner = %q", i, msg.Banner)
			}
		default:
			t.Errorf("subscriber %d got nothing", i)
		}
	}
}

func TestUnregisterClosesChannel(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Register("s1")
	b.Unregister("s1")

	if _, open := <-ch; open {
		t.Error("channel must be closed")
	}
	if b.SubscriberCount() != 0 {
		t.Errorf("count = %d, want 0", b.SubscriberCount())
	}

	// Повторный Unregister не паникует
	b.Unregister("s1")
}

func TestRegisterReplacesExistingSession(t *testing.T) {
	b := NewBroadcaster()
	old := b.Register("s1")
	fresh := b.Register("s1")

	if _, open := <-old; open {
		t.Error("old channel must be closed on re-register")
	}

	b.Broadcast(api.ServerResponse{Type: "update"})
	select {
	case <-fresh:
	default:
		t.Error("fresh channel must receive broadcasts")
	}
	if b.SubscriberCount() != 1 {
		t.Errorf("count = %d, want 1", b.SubscriberCount())
	}
}

func TestSlowSubscriberDoesNotBlockBroadcast(t *testing.T) {
	b := NewBroadcaster()
	b.mu.Lock()
	b.subscribers["slow"] = make(chan api.ServerResponse) // без буфера, никто не читает
	b.mu.Unlock()

	done := make(chan struct{})
	go func() {
		b.Broadcast(api.ServerResponse{Type: "update"})
		close(done)
	}()
	<-done
}
