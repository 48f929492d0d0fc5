package view_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/backend/internal/view"
)

func editView(t *testing.T) *view.FormView {
	t.Helper()
	v := view.NewFormView(catalogFixture())
	ev := eventFixture()
	v.SetState(&ev, &ev)
	return v
}

func TestDispatch_Submit(t *testing.T) {
	v := view.NewFormView(catalogFixture())
	calls := 0
	v.RegisterSubmitHandler(func() { calls++ })

	evt := view.NewEvent(view.EventSubmit, view.TargetForm)
	handled, err := v.Dispatch(evt)

	require.NoError(t, err)
	assert.True(t, handled)
	assert.True(t, evt.DefaultPrevented())
	assert.Equal(t, 1, calls)
}

func TestDispatch_EachSlotRoutesToItsCallback(t *testing.T) {
	v := editView(t)
	var got []string
	v.RegisterSubmitHandler(func() { got = append(got, "submit") })
	v.RegisterCancelHandler(func() { got = append(got, "cancel") })
	v.RegisterExpandHandler(func() { got = append(got, "expand") })

	for _, evt := range []*view.Event{
		view.NewEvent(view.EventClick, view.TargetRollupButton),
		view.NewEvent(view.EventClick, view.TargetResetButton),
		view.NewEvent(view.EventSubmit, view.TargetForm),
	} {
		handled, err := v.Dispatch(evt)
		require.NoError(t, err)
		require.True(t, handled)
	}

	assert.Equal(t, []string{"expand", "cancel", "submit"}, got)
}

// TestDispatch_ReRegisterReplaces verifies that registering twice for the
// same slot yields one invocation per event, of the latest callback only.
func TestDispatch_ReRegisterReplaces(t *testing.T) {
	v := view.NewFormView(catalogFixture())
	first, second := 0, 0
	v.RegisterCancelHandler(func() { first++ })
	v.RegisterCancelHandler(func() { second++ })

	_, err := v.Dispatch(view.NewEvent(view.EventClick, view.TargetResetButton))
	require.NoError(t, err)

	assert.Equal(t, 0, first)
	assert.Equal(t, 1, second)
}

func TestDispatch_SameCallbackTwice_CalledOnce(t *testing.T) {
	v := view.NewFormView(catalogFixture())
	calls := 0
	cb := func() { calls++ }
	v.RegisterSubmitHandler(cb)
	v.RegisterSubmitHandler(cb)

	_, err := v.Dispatch(view.NewEvent(view.EventSubmit, view.TargetForm))
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
}

func TestDispatch_Unbound_DefaultNotPrevented(t *testing.T) {
	v := view.NewFormView(catalogFixture())

	evt := view.NewEvent(view.EventSubmit, view.TargetForm)
	handled, err := v.Dispatch(evt)

	require.NoError(t, err)
	assert.False(t, handled)
	assert.False(t, evt.DefaultPrevented())
}

func TestDispatch_NilUnbinds(t *testing.T) {
	v := view.NewFormView(catalogFixture())
	calls := 0
	v.RegisterSubmitHandler(func() { calls++ })
	v.RegisterSubmitHandler(nil)

	handled, err := v.Dispatch(view.NewEvent(view.EventSubmit, view.TargetForm))

	require.NoError(t, err)
	assert.False(t, handled)
	assert.Zero(t, calls)
}

func TestDispatch_WrongEventTypeForTarget(t *testing.T) {
	v := view.NewFormView(catalogFixture())
	calls := 0
	v.RegisterSubmitHandler(func() { calls++ })

	handled, err := v.Dispatch(view.NewEvent(view.EventClick, view.TargetForm))

	require.NoError(t, err)
	assert.False(t, handled)
	assert.Zero(t, calls)
}

func TestDispatch_RollupOnNewForm(t *testing.T) {
	v := view.NewFormView(catalogFixture())
	calls := 0
	v.RegisterExpandHandler(func() { calls++ })

	_, err := v.Dispatch(view.NewEvent(view.EventClick, view.TargetRollupButton))

	assert.ErrorIs(t, err, view.ErrTargetNotRendered)
	assert.Zero(t, calls)
}

func TestDispatch_BindingsSurviveSetState(t *testing.T) {
	v := view.NewFormView(catalogFixture())
	calls := 0
	v.RegisterExpandHandler(func() { calls++ })

	ev := eventFixture()
	v.SetState(&ev, &ev)
	handled, err := v.Dispatch(view.NewEvent(view.EventClick, view.TargetRollupButton))

	require.NoError(t, err)
	assert.True(t, handled)
	assert.Equal(t, 1, calls)
}

func TestDispatch_UnknownTarget(t *testing.T) {
	v := view.NewFormView(catalogFixture())

	_, err := v.Dispatch(view.NewEvent(view.EventClick, "price-field"))

	assert.ErrorIs(t, err, view.ErrTargetNotRendered)
}

func TestDispatch_NilEvent(t *testing.T) {
	v := view.NewFormView(catalogFixture())
	calls := 0
	v.RegisterSubmitHandler(func() { calls++ })

	handled, err := v.Dispatch(nil)

	assert.ErrorIs(t, err, view.ErrNilEvent)
	assert.False(t, handled)
	assert.Zero(t, calls)
}
