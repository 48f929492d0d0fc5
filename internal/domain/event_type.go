package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// EventType is the kind of trip event (a transport leg, a stay, an activity).
type EventType string

const (
	EventTypeTaxi        EventType = "taxi"
	EventTypeBus         EventType = "bus"
	EventTypeTrain       EventType = "train"
	EventTypeShip        EventType = "ship"
	EventTypeDrive       EventType = "drive"
	EventTypeFlight      EventType = "flight"
	EventTypeCheckIn     EventType = "check-in"
	EventTypeSightseeing EventType = "sightseeing"
	EventTypeRestaurant  EventType = "restaurant"
)

var eventTypes = []EventType{
	EventTypeTaxi,
	EventTypeBus,
	EventTypeTrain,
	EventTypeShip,
	EventTypeDrive,
	EventTypeFlight,
	EventTypeCheckIn,
	EventTypeSightseeing,
	EventTypeRestaurant,
}

// EventTypes returns every event type in display order.
// The returned slice is a copy; callers may modify it.
func EventTypes() []EventType {
	out := make([]EventType, len(eventTypes))
	copy(out, eventTypes)
	return out
}

// DefaultEventType is the type preselected on a blank form: flight when it is
// a known type, otherwise the first type in display order.
func DefaultEventType() EventType {
	for _, t := range eventTypes {
		if t == EventTypeFlight {
			return t
		}
	}
	return eventTypes[0]
}

// Valid reports whether t is one of the known event types.
func (t EventType) Valid() bool {
	for _, known := range eventTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Label returns the type with its first letter upper-cased, e.g. "check-in" → "Check-in".
func (t EventType) Label() string {
	s := string(t)
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
