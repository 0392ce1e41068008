package broker

import (
	"sync"

	domain "github.com/AdamAbdallah1/cedarstech-pricelist/internal/core"
)

// Event carries one fully materialized catalog snapshot. Subscribers
// must treat it as wholly authoritative and replace any prior copy.
type Event struct {
	Timestamp int64            `json:"timestamp"`
	Services  []domain.Service `json:"services"`
}

// Subscription is one cancellable receiver. Cancel is idempotent and
// guarantees no further delivery once it returns, so a torn-down view
// can never be written to by a stale callback.
type Subscription struct {
	C <-chan Event

	ch     chan Event
	broker *Broker
	once   sync.Once
}

// Cancel detaches the subscription and closes its channel. Safe to call
// any number of times, including after Broker.Close.
func (s *Subscription) Cancel() {
	s.once.Do(func() {
		s.broker.remove(s)
	})
}

// Broker fans catalog snapshots out to any number of subscribers.
// Sends are non-blocking: a subscriber that is not draining its channel
// misses intermediate snapshots rather than stalling the publisher.
type Broker struct {
	mu     sync.RWMutex
	subs   map[*Subscription]struct{}
	closed bool
}

func New() *Broker {
	return &Broker{subs: make(map[*Subscription]struct{})}
}

// Subscribe registers a new receiver. Subscribing on a closed broker
// returns an already-cancelled subscription.
func (b *Broker) Subscribe() *Subscription {
	sub := &Subscription{ch: make(chan Event, 8), broker: b}
	sub.C = sub.ch

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		close(sub.ch)
		return sub
	}
	b.subs[sub] = struct{}{}
	return sub
}

// Publish delivers the event to every live subscriber.
func (b *Broker) Publish(event Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for sub := range b.subs {
		select {
		case sub.ch <- event:
		default:
			// Subscriber not ready, skip; the next snapshot supersedes
			// this one anyway.
		}
	}
}

// Close cancels every subscription. Idempotent.
func (b *Broker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for sub := range b.subs {
		delete(b.subs, sub)
		close(sub.ch)
	}
}

// Len reports the current subscriber count.
func (b *Broker) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

func (b *Broker) remove(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.subs[sub]; !ok {
		// Already detached (broker closed before the cancel).
		return
	}
	delete(b.subs, sub)
	close(sub.ch)
}
