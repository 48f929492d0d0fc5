// Package service contains the business logic for the Trip Planner.
// Services orchestrate repo calls and resolve catalog references.
// Services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"

	"github.com/pkordes/trip-planner/backend/internal/domain"
	"github.com/pkordes/trip-planner/backend/internal/repo"
)

// TripEventService implements the trip event operations used by the handlers.
type TripEventService struct {
	repo repo.TripEventRepo
}

// NewTripEventService constructs a TripEventService backed by the provided repo.
func NewTripEventService(r repo.TripEventRepo) *TripEventService {
	return &TripEventService{repo: r}
}

// GetByID returns a single trip event by ID.
// Returns domain.ErrNotFound if no event with that ID exists.
func (s *TripEventService) GetByID(ctx context.Context, id int) (domain.TripEvent, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.TripEvent{}, fmt.Errorf("service.TripEventService.GetByID: %w", err)
	}
	return e, nil
}

// ListPaged returns one page of trip events, earliest first, and the total
// number of events. A page past the end yields an empty, non-nil slice.
func (s *TripEventService) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.TripEvent, int, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("service.TripEventService.ListPaged: %w", err)
	}
	start, end := p.Window(len(all))
	page := make([]domain.TripEvent, end-start)
	copy(page, all[start:end])
	return page, len(all), nil
}

// Save stores the edited event over the existing record with the same ID.
// Returns domain.ErrNotFound if the event was deleted in the meantime.
func (s *TripEventService) Save(ctx context.Context, event domain.TripEvent) error {
	if err := s.repo.Save(ctx, event); err != nil {
		return fmt.Errorf("service.TripEventService.Save: %w", err)
	}
	return nil
}

// Delete removes a trip event by ID.
// Returns domain.ErrNotFound if no event with that ID exists.
func (s *TripEventService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TripEventService.Delete: %w", err)
	}
	return nil
}
