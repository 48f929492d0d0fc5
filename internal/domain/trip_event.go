// Package domain contains the core data types for the Trip Planner application.
// This package has no internal dependencies and is imported by every other
// internal package (mock, view, repo, service, handler).
package domain

import (
	"slices"
	"time"
)

// TripEvent is a single travel activity: a time window at a destination,
// with an event type and the add-on offers attached to it.
type TripEvent struct {
	ID            int            `json:"id"`
	BasePrice     *int           `json:"base_price"` // nil when no price has been entered yet
	DateFrom      time.Time      `json:"date_from"`
	DateTo        time.Time      `json:"date_to"`
	DestinationID int            `json:"destination"`
	Type          EventType      `json:"type"`
	Offers        OfferSelection `json:"offers"`
}

// Clone returns a deep copy of e. The copy shares no pointers or maps with e,
// so it can be edited without touching the original record.
func (e TripEvent) Clone() TripEvent {
	c := e
	if e.BasePrice != nil {
		p := *e.BasePrice
		c.BasePrice = &p
	}
	c.Offers = e.Offers.Clone()
	return c
}

// Duration returns the length of the event's time window.
func (e TripEvent) Duration() time.Duration {
	return e.DateTo.Sub(e.DateFrom)
}

// OfferSelection maps an offer ID to whether the offer is selected for an event.
// Offers that are present but false are shown unchecked; absent offers are not shown.
type OfferSelection map[int]bool

// IDs returns the offer IDs in ascending order.
// Map iteration order is random, so anything that renders a selection goes through here.
func (s OfferSelection) IDs() []int {
	ids := make([]int, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Clone returns an independent copy of s. A nil selection clones to an empty one.
func (s OfferSelection) Clone() OfferSelection {
	c := make(OfferSelection, len(s))
	for id, selected := range s {
		c[id] = selected
	}
	return c
}
