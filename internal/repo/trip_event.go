// Package repo holds the trip events the planner works on.
// Storage is in memory only: events are seeded at startup and lost on exit.
// No business logic lives here, only lookup, ordering and copying.
package repo

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

// TripEventRepo defines the storage operations for trip events.
// The service layer depends on this interface, not the concrete implementation,
// which allows the service to be unit-tested with a mock.
type TripEventRepo interface {
	// GetByID retrieves a single trip event.
	// Returns domain.ErrNotFound if no event with that ID exists.
	GetByID(ctx context.Context, id int) (domain.TripEvent, error)

	// List returns all trip events ordered by DateFrom ascending, then ID.
	List(ctx context.Context) ([]domain.TripEvent, error)

	// Save overwrites the stored event with the same ID.
	// Returns domain.ErrNotFound if no event with that ID exists.
	Save(ctx context.Context, event domain.TripEvent) error

	// Delete removes a trip event by ID. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id int) error
}

// memTripEventRepo is the in-memory implementation of TripEventRepo.
// HTTP handlers run concurrently, so every access goes through mu.
type memTripEventRepo struct {
	mu     sync.RWMutex
	events map[int]domain.TripEvent
}

// NewTripEventRepo constructs a TripEventRepo seeded with events.
// Events are copied in and copied out; callers never share maps with the store.
func NewTripEventRepo(events []domain.TripEvent) TripEventRepo {
	r := &memTripEventRepo{events: make(map[int]domain.TripEvent, len(events))}
	for _, e := range events {
		r.events[e.ID] = e.Clone()
	}
	return r
}

// GetByID returns a copy of the event with the given ID.
func (r *memTripEventRepo) GetByID(_ context.Context, id int) (domain.TripEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.events[id]
	if !ok {
		return domain.TripEvent{}, fmt.Errorf("repo.TripEventRepo.GetByID: %w", domain.ErrNotFound)
	}
	return e.Clone(), nil
}

// List returns copies of all events, earliest first.
func (r *memTripEventRepo) List(_ context.Context) ([]domain.TripEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.TripEvent, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Clone())
	}
	slices.SortFunc(out, func(a, b domain.TripEvent) int {
		if c := a.DateFrom.Compare(b.DateFrom); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out, nil
}

// Save stores a copy of event in place of the event with the same ID.
func (r *memTripEventRepo) Save(_ context.Context, event domain.TripEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.events[event.ID]; !ok {
		return fmt.Errorf("repo.TripEventRepo.Save: %w", domain.ErrNotFound)
	}
	r.events[event.ID] = event.Clone()
	return nil
}

// Delete removes the event with the given ID.
func (r *memTripEventRepo) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.events[id]; !ok {
		return fmt.Errorf("repo.TripEventRepo.Delete: %w", domain.ErrNotFound)
	}
	delete(r.events, id)
	return nil
}
