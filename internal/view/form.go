// Package view renders the trip event form and routes user interactions on it
// to externally supplied callbacks.
//
// A FormView is a small stateful view: SetState replaces the event being
// edited, the mode (NEW or EDIT) follows from that state, and the HTML is
// regenerated from scratch on the next render. A FormView is owned by a
// single goroutine and does no locking.
package view

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

// Catalog is the reference data the form needs to resolve a trip event's
// destination and offers. The mock provider satisfies it.
type Catalog interface {
	ListDestinations() []domain.Destination
	Destination(id int) (domain.Destination, bool)
	Offer(id int) (domain.Offer, bool)
}

// blankDate is the start and end of the blank event shown on a new form.
var blankDate = time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)

// FormView is the trip event create/edit form.
type FormView struct {
	catalog Catalog
	blank   domain.TripEvent

	event *domain.TripEvent // the stored record, nil on a new form
	data  *domain.TripEvent // the copy being edited; its presence selects EDIT mode

	element string
	fresh   bool

	callbacks [slotCount]func()
}

// NewFormView returns a form in NEW mode backed by catalog.
// The blank event is built here once and only ever read afterwards.
func NewFormView(catalog Catalog) *FormView {
	v := &FormView{
		catalog: catalog,
		blank: domain.TripEvent{
			DateFrom: blankDate,
			DateTo:   blankDate,
			Type:     domain.DefaultEventType(),
		},
	}
	if dests := catalog.ListDestinations(); len(dests) > 0 {
		v.blank.DestinationID = dests[0].ID
	}
	return v
}

// SetState replaces both the stored record and the data being edited, then
// marks the rendered element stale. Both values are copied, so later edits
// by the caller do not leak into the view.
func (v *FormView) SetState(data, event *domain.TripEvent) {
	v.data = clonePtr(data)
	v.event = clonePtr(event)
	v.fresh = false
}

// Mode reports the current form layout. It is derived from the state on
// every call and never stored.
func (v *FormView) Mode() domain.FormMode {
	return domain.ModeFor(v.data)
}

// Data returns a copy of the data being edited, or nil on a new form.
func (v *FormView) Data() *domain.TripEvent {
	return clonePtr(v.data)
}

// Event returns a copy of the stored record, or nil on a new form.
func (v *FormView) Event() *domain.TripEvent {
	return clonePtr(v.event)
}

// Element returns the rendered form, re-rendering it if the state changed
// since the last call.
func (v *FormView) Element() (string, error) {
	if v.fresh {
		return v.element, nil
	}
	html, err := v.Template()
	if err != nil {
		return "", err
	}
	v.element, v.fresh = html, true
	return html, nil
}

// Template renders the form for the current state. It has no side effects
// and returns identical output for identical state.
//
// An event whose type, destination or offers are unknown is a broken data
// contract: Template returns domain.ErrUnknownEventType,
// domain.ErrUnknownDestination or domain.ErrUnknownOffer and renders nothing.
func (v *FormView) Template() (string, error) {
	mode := v.Mode()
	ev := v.blank
	if v.data != nil {
		ev = *v.data
	}

	fd, err := v.buildFormData(ev, mode)
	if err != nil {
		return "", fmt.Errorf("view.FormView.Template: %w", err)
	}

	var buf bytes.Buffer
	if err := formTemplate.Execute(&buf, fd); err != nil {
		return "", fmt.Errorf("view.FormView.Template: %w", err)
	}
	return buf.String(), nil
}

func (v *FormView) buildFormData(ev domain.TripEvent, mode domain.FormMode) (formData, error) {
	if !ev.Type.Valid() {
		return formData{}, fmt.Errorf("type %q: %w", ev.Type, domain.ErrUnknownEventType)
	}
	dest, ok := v.catalog.Destination(ev.DestinationID)
	if !ok {
		return formData{}, fmt.Errorf("destination %d: %w", ev.DestinationID, domain.ErrUnknownDestination)
	}

	fd := formData{
		Edit:        mode == domain.FormModeEdit,
		Type:        ev.Type,
		TypeLabel:   ev.Type.Label(),
		Destination: dest.Name,
		DateFrom:    ev.DateFrom.Format(dateTimeLayout),
		DateTo:      ev.DateTo.Format(dateTimeLayout),
		Price:       formatPrice(ev.BasePrice),
		Description: dest.Description,
		Pictures:    dest.Pictures,
	}

	for _, t := range domain.EventTypes() {
		fd.Types = append(fd.Types, typeOption{Value: t, Label: t.Label(), Checked: t == ev.Type})
	}
	for _, d := range v.catalog.ListDestinations() {
		fd.Destinations = append(fd.Destinations, d.Name)
	}
	for _, id := range ev.Offers.IDs() {
		offer, ok := v.catalog.Offer(id)
		if !ok {
			return formData{}, fmt.Errorf("offer %d: %w", id, domain.ErrUnknownOffer)
		}
		fd.Offers = append(fd.Offers, offerOption{
			ID:      offer.ID,
			Title:   offer.Title,
			Price:   offer.Price,
			Checked: ev.Offers[id],
		})
	}
	return fd, nil
}

// formatPrice renders a nil price as an empty input value.
func formatPrice(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}

func clonePtr(e *domain.TripEvent) *domain.TripEvent {
	if e == nil {
		return nil
	}
	c := e.Clone()
	return &c
}
