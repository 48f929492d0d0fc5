package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

func getter(ev domain.TripEvent) *mockTripEventServicer {
	return &mockTripEventServicer{
		getByID: func(_ context.Context, id int) (domain.TripEvent, error) {
			if id != ev.ID {
				return domain.TripEvent{}, domain.ErrNotFound
			}
			return ev, nil
		},
	}
}

func postForm(path, action string) *http.Request {
	body := url.Values{"action": {action}}.Encode()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// ---- GET forms -------------------------------------------------------------

func TestGetNewForm_200(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/events/new", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(&mockTripEventServicer{}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, `value="Amsterdam" list="destination-list-1"`)
	assert.Contains(t, body, `>Cancel</button>`)
	assert.NotContains(t, body, `>Delete</button>`)
}

func TestGetEditForm_200(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/events/5/edit", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(getter(eventFixture())).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `>Delete</button>`)
	assert.Contains(t, body, `class="event__rollup-btn"`)
	assert.Contains(t, body, `name="event-price" value="800"`)
	assert.Contains(t, body, `name="event-start-time" value="02/06/25 09:30"`)
	assert.Contains(t, body, `name="event-offer-1" checked>`)
}

func TestGetEditForm_404(t *testing.T) {
	for _, path := range []string{"/events/99/edit", "/events/abc/edit"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()

		newHTTPHandler(getter(eventFixture())).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code, path)
	}
}

func TestGetEditForm_500_UnknownDestination(t *testing.T) {
	ev := eventFixture()
	ev.DestinationID = 42

	req := httptest.NewRequest(http.MethodGet, "/events/5/edit", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(getter(ev)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ---- POST /events/new ------------------------------------------------------

func TestPostNewForm_Redirects(t *testing.T) {
	for _, action := range []string{"submit", "cancel"} {
		rec := httptest.NewRecorder()

		newHTTPHandler(&mockTripEventServicer{}).ServeHTTP(rec, postForm("/events/new", action))

		assert.Equal(t, http.StatusSeeOther, rec.Code, action)
		assert.Equal(t, "/events", rec.Header().Get("Location"), action)
	}
}

func TestPostNewForm_422_ExpandOnNewForm(t *testing.T) {
	rec := httptest.NewRecorder()

	newHTTPHandler(&mockTripEventServicer{}).ServeHTTP(rec, postForm("/events/new", "expand"))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestPostNewForm_400_UnknownAction(t *testing.T) {
	rec := httptest.NewRecorder()

	newHTTPHandler(&mockTripEventServicer{}).ServeHTTP(rec, postForm("/events/new", "launch"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ---- POST /events/{id}/edit ------------------------------------------------

func TestPostEditForm_SubmitSaves(t *testing.T) {
	svc := getter(eventFixture())
	var saved []domain.TripEvent
	svc.save = func(_ context.Context, e domain.TripEvent) error {
		saved = append(saved, e)
		return nil
	}
	svc.delete = func(_ context.Context, _ int) error {
		t.Fatal("submit must not delete")
		return nil
	}
	rec := httptest.NewRecorder()

	newHTTPHandler(svc).ServeHTTP(rec, postForm("/events/5/edit", "submit"))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/events", rec.Header().Get("Location"))
	require.Len(t, saved, 1)
	assert.Equal(t, eventFixture(), saved[0])
}

func TestPostEditForm_SubmitSaveNotFound(t *testing.T) {
	svc := getter(eventFixture())
	svc.save = func(_ context.Context, _ domain.TripEvent) error { return domain.ErrNotFound }
	rec := httptest.NewRecorder()

	newHTTPHandler(svc).ServeHTTP(rec, postForm("/events/5/edit", "submit"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPostEditForm_ExpandLeavesEventAlone(t *testing.T) {
	svc := getter(eventFixture())
	svc.save = func(_ context.Context, _ domain.TripEvent) error {
		t.Fatal("expand must not save")
		return nil
	}
	svc.delete = func(_ context.Context, _ int) error {
		t.Fatal("expand must not delete")
		return nil
	}
	rec := httptest.NewRecorder()

	newHTTPHandler(svc).ServeHTTP(rec, postForm("/events/5/edit", "expand"))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/events", rec.Header().Get("Location"))
}

func TestPostEditForm_CancelDeletes(t *testing.T) {
	svc := getter(eventFixture())
	var deleted []int
	svc.delete = func(_ context.Context, id int) error {
		deleted = append(deleted, id)
		return nil
	}
	rec := httptest.NewRecorder()

	newHTTPHandler(svc).ServeHTTP(rec, postForm("/events/5/edit", "cancel"))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, []int{5}, deleted)
}

func TestPostEditForm_CancelDeleteFails(t *testing.T) {
	svc := getter(eventFixture())
	svc.delete = func(_ context.Context, _ int) error { return errors.New("boom") }
	rec := httptest.NewRecorder()

	newHTTPHandler(svc).ServeHTTP(rec, postForm("/events/5/edit", "cancel"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestPostEditForm_CancelAlreadyDeleted(t *testing.T) {
	svc := getter(eventFixture())
	svc.delete = func(_ context.Context, _ int) error { return domain.ErrNotFound }
	rec := httptest.NewRecorder()

	newHTTPHandler(svc).ServeHTTP(rec, postForm("/events/5/edit", "cancel"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPostEditForm_404(t *testing.T) {
	rec := httptest.NewRecorder()

	newHTTPHandler(getter(eventFixture())).ServeHTTP(rec, postForm("/events/6/edit", "submit"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
