package domain

import "time"

// ExportRow is a single row in the full-data export.
// It is a flat, denormalized view: one row per trip event, with the destination
// and offer references resolved to their display values.
//
// Offers holds the titles of the selected offers only, ordered by offer ID.
// Callers that need a joined string (e.g. CSV) should join with "|".
type ExportRow struct {
	EventID     int
	Type        EventType
	Destination string
	DateFrom    time.Time
	DateTo      time.Time
	BasePrice   *int // nil when the event has no price

	Offers      []string
	OffersTotal int // sum of the selected offers' prices
}
