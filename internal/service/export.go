package service

import (
	"context"
	"fmt"

	"github.com/pkordes/trip-planner/backend/internal/domain"
	"github.com/pkordes/trip-planner/backend/internal/repo"
)

// Catalog resolves the destination and offer references held by trip events.
type Catalog interface {
	Destination(id int) (domain.Destination, bool)
	Offer(id int) (domain.Offer, bool)
}

// ExportService assembles a flat export of all trip events.
type ExportService struct {
	events  repo.TripEventRepo
	catalog Catalog
}

// NewExportService constructs an ExportService backed by the provided repo and catalog.
func NewExportService(events repo.TripEventRepo, catalog Catalog) *ExportService {
	return &ExportService{events: events, catalog: catalog}
}

// Export returns one ExportRow per trip event, earliest first.
// An event referencing a destination or offer missing from the catalog fails
// the whole export with domain.ErrUnknownDestination or domain.ErrUnknownOffer.
func (s *ExportService) Export(ctx context.Context) ([]domain.ExportRow, error) {
	events, err := s.events.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	rows := make([]domain.ExportRow, 0, len(events))
	for _, e := range events {
		dest, ok := s.catalog.Destination(e.DestinationID)
		if !ok {
			return nil, fmt.Errorf("service.ExportService.Export: event %d: destination %d: %w",
				e.ID, e.DestinationID, domain.ErrUnknownDestination)
		}

		row := domain.ExportRow{
			EventID:     e.ID,
			Type:        e.Type,
			Destination: dest.Name,
			DateFrom:    e.DateFrom,
			DateTo:      e.DateTo,
			BasePrice:   e.BasePrice,
			Offers:      []string{},
		}
		for _, id := range e.Offers.IDs() {
			offer, ok := s.catalog.Offer(id)
			if !ok {
				return nil, fmt.Errorf("service.ExportService.Export: event %d: offer %d: %w",
					e.ID, id, domain.ErrUnknownOffer)
			}
			if e.Offers[id] {
				row.Offers = append(row.Offers, offer.Title)
				row.OffersTotal += offer.Price
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
