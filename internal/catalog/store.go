package catalog

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	domain "github.com/AdamAbdallah1/cedarstech-pricelist/internal/core"
	"github.com/AdamAbdallah1/cedarstech-pricelist/pkg/broker"

	pbCore "github.com/pocketbase/pocketbase/core"
)

// Store keeps the live, locally materialized copy of the services
// collection. Every change notification from the backing store replaces
// the whole in-memory snapshot with a fresh materialization — never a
// partial merge — and fans it out to subscribers. Writes to the local
// copy happen only inside the change callback, so readers only ever see
// a fully-formed snapshot.
type Store struct {
	app    pbCore.App
	repo   domain.CatalogRepository
	broker *broker.Broker
	logger *slog.Logger

	mu       sync.RWMutex
	snapshot []domain.Service

	startOnce sync.Once
	stopped   atomic.Bool
}

func NewStore(app pbCore.App, repo domain.CatalogRepository, b *broker.Broker) *Store {
	return &Store{
		app:    app,
		repo:   repo,
		broker: b,
		logger: app.Logger(),
	}
}

// Start loads the initial snapshot and binds the services collection's
// record lifecycle hooks so that every insert, update or delete
// re-materializes the snapshot. Calling Start more than once is a no-op.
func (s *Store) Start() {
	s.startOnce.Do(func() {
		s.reload()

		onChange := func(e *pbCore.RecordEvent) error {
			if !s.stopped.Load() {
				s.reload()
			}
			return e.Next()
		}

		s.app.OnRecordAfterCreateSuccess(domain.ServicesCollection).BindFunc(onChange)
		s.app.OnRecordAfterUpdateSuccess(domain.ServicesCollection).BindFunc(onChange)
		s.app.OnRecordAfterDeleteSuccess(domain.ServicesCollection).BindFunc(onChange)
	})
}

// Stop ends snapshot production and cancels every subscription. Safe to
// call repeatedly.
func (s *Store) Stop() {
	s.stopped.Store(true)
	s.broker.Close()
}

// Snapshot returns the latest materialized snapshot. Callers must treat
// it as read-only; derivations copy before filtering or sorting.
func (s *Store) Snapshot() []domain.Service {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Subscribe returns a cancellable handle delivering every future
// snapshot. Cancel after view teardown guarantees no stale delivery.
func (s *Store) Subscribe() *broker.Subscription {
	return s.broker.Subscribe()
}

func (s *Store) reload() {
	services, err := s.repo.ListServices()
	if err != nil {
		// A failed load surfaces as "no data" rather than crashing the
		// consumer; the next successful notification repairs it.
		s.logger.Error("catalog reload failed", "error", err)
		services = []domain.Service{}
	}

	s.mu.Lock()
	s.snapshot = services
	s.mu.Unlock()

	s.broker.Publish(broker.Event{Timestamp: time.Now().Unix(), Services: services})
}
