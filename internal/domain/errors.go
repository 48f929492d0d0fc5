package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// trip event does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrUnknownDestination is returned when a trip event references a destination
// ID that the catalog does not know. This is a broken data contract, not a user
// error: callers must guarantee referential integrity.
var ErrUnknownDestination = errors.New("unknown destination")

// ErrUnknownOffer is returned when a trip event's offer selection references an
// offer ID that the catalog does not know.
var ErrUnknownOffer = errors.New("unknown offer")

// ErrUnknownEventType is returned when a trip event's type is not one of EventTypes.
var ErrUnknownEventType = errors.New("unknown event type")
