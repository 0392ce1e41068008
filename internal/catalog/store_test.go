package catalog

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	domain "github.com/AdamAbdallah1/cedarstech-pricelist/internal/core"
	"github.com/AdamAbdallah1/cedarstech-pricelist/pkg/broker"
)

// fakeRepo serves canned snapshots to the store.
type fakeRepo struct {
	services []domain.Service
	err      error
}

func (f *fakeRepo) ListServices() ([]domain.Service, error) { return f.services, f.err }
func (f *fakeRepo) CreateService() (*domain.Service, error) { return nil, nil }
func (f *fakeRepo) DeleteService(string) error { return nil }
func (f *fakeRepo) UpdateServiceField(string, string, any) error { return nil }
func (f *fakeRepo) ReplacePlans(string, []domain.Plan) error { return nil }

func newTestStore(repo domain.CatalogRepository) *Store {
	return &Store{repo: repo, broker: broker.New(), logger: slog.Default()}
}

func TestStore_ReloadReplacesSnapshotWholesale(t *testing.T) {
	repo := &fakeRepo{services: netflixSnapshot()}
	store := newTestStore(repo)

	store.reload()
	if len(store.Snapshot()) != 1 || store.Snapshot()[0].Name != "Netflix" {
		t.Fatalf("unexpected snapshot %+v", store.Snapshot())
	}

	// The next notification replaces, never merges.
	repo.services = []domain.Service{{ID: "b", Name: "Spotify"}}
	store.reload()

	snap := store.Snapshot()
	if len(snap) != 1 || snap[0].Name != "Spotify" {
		t.Fatalf("snapshot was merged instead of replaced: %+v", snap)
	}
}

func TestStore_FailedReloadMeansNoData(t *testing.T) {
	repo := &fakeRepo{services: netflixSnapshot()}
	store := newTestStore(repo)
	store.reload()

	repo.err = errors.New("connection dropped")
	store.reload()

	if len(store.Snapshot()) != 0 {
		t.Errorf("a failed load should surface as an empty snapshot, got %+v", store.Snapshot())
	}
}

func TestStore_SubscribersReceiveEachSnapshot(t *testing.T) {
	repo := &fakeRepo{services: netflixSnapshot()}
	store := newTestStore(repo)

	sub := store.Subscribe()
	defer sub.Cancel()

	store.reload()

	select {
	case ev := <-sub.C:
		if len(ev.Services) != 1 || ev.Services[0].Name != "Netflix" {
			t.Errorf("unexpected event %+v", ev.Services)
		}
	case <-time.After(time.Second):
		t.Fatal("subscriber timeout")
	}
}

func TestStore_StopIsIdempotent(t *testing.T) {
	store := newTestStore(&fakeRepo{})

	sub := store.Subscribe()
	store.Stop()
	store.Stop()

	if _, ok := <-sub.C; ok {
		t.Error("expected subscription channel closed after stop")
	}

	// Cancelling after stop must be harmless too.
	sub.Cancel()
}
