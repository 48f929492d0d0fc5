package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/trip-planner/backend/internal/domain"
	"github.com/pkordes/trip-planner/backend/internal/view"
)

// listPath is where every form action lands once its callback has run.
const listPath = "/events"

// formActions maps the value of the form's "action" button to the user
// interaction it stands for.
var formActions = map[string]struct {
	typ    view.EventType
	target view.Target
}{
	"submit": {view.EventSubmit, view.TargetForm},
	"cancel": {view.EventClick, view.TargetResetButton},
	"expand": {view.EventClick, view.TargetRollupButton},
}

// GetNewForm handles GET /events/new with a blank form in NEW mode.
func (s *Server) GetNewForm(w http.ResponseWriter, r *http.Request) {
	v := view.NewFormView(s.catalog)
	v.SetState(nil, nil)
	s.writeForm(w, r, v)
}

// GetEditForm handles GET /events/{id}/edit with the stored event in EDIT mode.
func (s *Server) GetEditForm(w http.ResponseWriter, r *http.Request) {
	ev, ok := s.loadEvent(w, r)
	if !ok {
		return
	}
	v := view.NewFormView(s.catalog)
	v.SetState(&ev, &ev)
	s.writeForm(w, r, v)
}

// PostNewForm handles POST /events/new. Save and Cancel both return to the list.
func (s *Server) PostNewForm(w http.ResponseWriter, r *http.Request) {
	v := view.NewFormView(s.catalog)
	v.SetState(nil, nil)

	v.RegisterSubmitHandler(func() {})
	v.RegisterCancelHandler(func() {})
	s.dispatchForm(w, r, v, func() error { return nil })
}

// PostEditForm handles POST /events/{id}/edit.
// Save stores the edited data, Delete removes the event and Collapse leaves it
// untouched; all three return to the list.
func (s *Server) PostEditForm(w http.ResponseWriter, r *http.Request) {
	ev, ok := s.loadEvent(w, r)
	if !ok {
		return
	}
	v := view.NewFormView(s.catalog)
	v.SetState(&ev, &ev)

	pending := func() error { return nil }
	v.RegisterSubmitHandler(func() {
		pending = func() error { return s.events.Save(r.Context(), *v.Data()) }
	})
	v.RegisterCancelHandler(func() {
		pending = func() error { return s.events.Delete(r.Context(), v.Event().ID) }
	})
	v.RegisterExpandHandler(func() {})

	s.dispatchForm(w, r, v, func() error { return pending() })
}

// dispatchForm turns the posted action into a view.Event, dispatches it to v,
// runs after and redirects to the list.
func (s *Server) dispatchForm(w http.ResponseWriter, r *http.Request, v *view.FormView, after func() error) {
	action, ok := formActions[r.PostFormValue("action")]
	if !ok {
		writeJSON(w, http.StatusBadRequest, requestBody("action must be one of submit, cancel, expand"))
		return
	}

	handled, err := v.Dispatch(view.NewEvent(action.typ, action.target))
	if err != nil {
		if errors.Is(err, view.ErrTargetNotRendered) {
			writeJSON(w, http.StatusUnprocessableEntity, unprocessableBody("action not available on a "+string(v.Mode())+" form"))
			return
		}
		s.internalError(w, r, err)
		return
	}
	if !handled {
		s.internalError(w, r, errors.New("handler: form action has no listener"))
		return
	}

	if err := after(); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, notFoundBody("trip event not found"))
			return
		}
		s.internalError(w, r, err)
		return
	}
	http.Redirect(w, r, listPath, http.StatusSeeOther)
}

// loadEvent resolves the {id} path parameter to a stored event, writing a
// 404 and returning false when it does not exist.
func (s *Server) loadEvent(w http.ResponseWriter, r *http.Request) (domain.TripEvent, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, notFoundBody("trip event not found"))
		return domain.TripEvent{}, false
	}
	ev, err := s.events.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, notFoundBody("trip event not found"))
			return domain.TripEvent{}, false
		}
		s.internalError(w, r, err)
		return domain.TripEvent{}, false
	}
	return ev, true
}

// writeForm renders v and writes it as an HTML fragment.
func (s *Server) writeForm(w http.ResponseWriter, r *http.Request, v *view.FormView) {
	html, err := v.Element()
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck
	w.Write([]byte(html))
}
