package view

import (
	"errors"
	"fmt"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

// ErrTargetNotRendered is returned by Dispatch when the event targets a
// control that the form does not render in its current mode, such as the
// rollup button on a new form.
var ErrTargetNotRendered = errors.New("target not rendered")

// ErrNilEvent is returned by Dispatch when it is given no event.
var ErrNilEvent = errors.New("nil event")

// EventType is the kind of user interaction.
type EventType string

const (
	EventSubmit EventType = "submit"
	EventClick  EventType = "click"
)

// Target is the form control an event was fired on.
type Target string

const (
	TargetForm         Target = "form"
	TargetResetButton  Target = "reset-button"
	TargetRollupButton Target = "rollup-button"
)

// Event is a single user interaction with the form.
// Listeners call PreventDefault to suppress the default action (navigation,
// native form submission) before the registered callback runs.
type Event struct {
	Type   EventType
	Target Target

	defaultPrevented bool
}

// NewEvent returns an event of type typ fired on target.
func NewEvent(typ EventType, target Target) *Event {
	return &Event{Type: typ, Target: target}
}

// PreventDefault marks the event's default action as suppressed.
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether a listener suppressed the default action.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// slot is one listener position on the form. Each slot holds at most one
// callback, so registering again replaces rather than stacks.
type slot int

const (
	slotSubmit slot = iota
	slotCancel
	slotExpand
	slotCount
)

type binding struct {
	typ    EventType
	target Target
}

var slotBindings = [slotCount]binding{
	slotSubmit: {EventSubmit, TargetForm},
	slotCancel: {EventClick, TargetResetButton},
	slotExpand: {EventClick, TargetRollupButton},
}

// RegisterSubmitHandler binds cb to form submission. A nil cb unbinds it.
func (v *FormView) RegisterSubmitHandler(cb func()) {
	v.callbacks[slotSubmit] = cb
}

// RegisterCancelHandler binds cb to the reset button (Cancel on a new form,
// Delete on an edit form). A nil cb unbinds it.
func (v *FormView) RegisterCancelHandler(cb func()) {
	v.callbacks[slotCancel] = cb
}

// RegisterExpandHandler binds cb to the rollup button, which only exists on
// an edit form. A nil cb unbinds it.
func (v *FormView) RegisterExpandHandler(cb func()) {
	v.callbacks[slotExpand] = cb
}

// Dispatch delivers evt to the listener bound to its type and target.
// It reports whether a listener handled the event. A handled event always has
// its default action prevented and its callback invoked exactly once; an
// unhandled event is left untouched. A nil evt returns ErrNilEvent.
func (v *FormView) Dispatch(evt *Event) (bool, error) {
	if evt == nil {
		return false, fmt.Errorf("view.FormView.Dispatch: %w", ErrNilEvent)
	}
	if !rendersTarget(v.Mode(), evt.Target) {
		return false, fmt.Errorf("view.FormView.Dispatch: %s on %s: %w", evt.Type, evt.Target, ErrTargetNotRendered)
	}
	for s, b := range slotBindings {
		if b.typ != evt.Type || b.target != evt.Target {
			continue
		}
		cb := v.callbacks[s]
		if cb == nil {
			return false, nil
		}
		evt.PreventDefault()
		cb()
		return true, nil
	}
	return false, nil
}

// rendersTarget reports whether the form renders target in mode.
func rendersTarget(mode domain.FormMode, target Target) bool {
	switch target {
	case TargetForm, TargetResetButton:
		return true
	case TargetRollupButton:
		return mode == domain.FormModeEdit
	default:
		return false
	}
}
