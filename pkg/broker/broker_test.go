package broker

import (
	"testing"
	"time"

	domain "github.com/AdamAbdallah1/cedarstech-pricelist/internal/core"
)

func snapshotEvent(names ...string) Event {
	services := make([]domain.Service, 0, len(names))
	for _, n := range names {
		services = append(services, domain.Service{ID: n, Name: n})
	}
	return Event{Timestamp: time.Now().Unix(), Services: services}
}

func TestBroker_FanOut(t *testing.T) {
	b := New()

	sub1 := b.Subscribe()
	sub2 := b.Subscribe()

	go b.Publish(snapshotEvent("Netflix"))

	for i, sub := range []*Subscription{sub1, sub2} {
		select {
		case ev := <-sub.C:
			if len(ev.Services) != 1 || ev.Services[0].Name != "Netflix" {
				t.Errorf("subscriber %d got unexpected snapshot %+v", i+1, ev.Services)
			}
		case <-time.After(time.Second):
			t.Errorf("subscriber %d timeout", i+1)
		}
	}
}

func TestBroker_CancelStopsDelivery(t *testing.T) {
	b := New()

	sub := b.Subscribe()
	sub.Cancel()

	if b.Len() != 0 {
		t.Fatalf("expected 0 subscribers after cancel, got %d", b.Len())
	}

	b.Publish(snapshotEvent("Spotify"))

	// A cancelled subscription's channel is closed; it must never carry
	// an event published after the cancel.
	select {
	case ev, ok := <-sub.C:
		if ok {
			t.Errorf("received event after cancel: %+v", ev)
		}
	case <-time.After(100 * time.Millisecond):
		t.Error("channel not closed after cancel")
	}
}

func TestBroker_CancelIsIdempotent(t *testing.T) {
	b := New()

	sub := b.Subscribe()
	sub.Cancel()
	sub.Cancel()
	sub.Cancel()

	if b.Len() != 0 {
		t.Fatalf("expected 0 subscribers, got %d", b.Len())
	}
}

func TestBroker_SlowSubscriberDoesNotBlock(t *testing.T) {
	b := New()

	// Never drained; its buffer will fill up.
	slow := b.Subscribe()
	defer slow.Cancel()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			b.Publish(snapshotEvent("Netflix"))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publisher blocked on a slow subscriber")
	}
}

func TestBroker_CloseCancelsEverything(t *testing.T) {
	b := New()

	sub := b.Subscribe()
	b.Close()
	b.Close() // idempotent

	select {
	case _, ok := <-sub.C:
		if ok {
			t.Error("expected closed channel after broker close")
		}
	case <-time.After(time.Second):
		t.Error("channel not closed after broker close")
	}

	// Cancelling after close must not panic.
	sub.Cancel()

	// Subscribing on a closed broker yields an already-cancelled handle.
	dead := b.Subscribe()
	if _, ok := <-dead.C; ok {
		t.Error("expected closed channel from subscribe-after-close")
	}
}
