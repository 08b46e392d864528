package event

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(events []Event) *mux.Router {
	handler := NewEventHandler(newTestService(events, feb1))
	r := mux.NewRouter()
	r.HandleFunc("/api/events", handler.ListEvents).Methods("GET")
	r.HandleFunc("/api/events/next", handler.NextEvent).Methods("GET")
	r.HandleFunc("/api/events/facets", handler.GetFacets).Methods("GET")
	r.HandleFunc("/api/events/{eventId}", handler.GetEvent).Methods("GET")
	return r
}

func TestEventHandler_ListEvents(t *testing.T) {
	router := newTestRouter([]Event{
		{Id: "1", Title: "Tech Symposium", Category: "Technology", Date: "2025-10-18"},
		{Id: "2", Title: "Cultural Fest", Category: "Cultural", Date: "2025-03-14"},
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/events?category=Technology", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var response []EventDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Len(t, response, 1)
	assert.Equal(t, "1", response[0].Id)
	assert.Equal(t, "Tech Symposium", response[0].Title)
}

func TestEventHandler_GetEventBySlug(t *testing.T) {
	router := newTestRouter([]Event{
		{Id: "1", Slug: "tech-symposium", Title: "Tech Symposium", Date: "2025-10-18"},
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/events/tech-symposium", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var dto EventDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
	assert.Equal(t, "1", dto.Id)
}

func TestEventHandler_GetEventNotFound(t *testing.T) {
	router := newTestRouter(nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/events/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Event not found")
}

func TestEventHandler_NextEventEmptyCatalog(t *testing.T) {
	router := newTestRouter(nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/events/next", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEventHandler_UpcomingIncludesCountdown(t *testing.T) {
	handler := NewEventHandler(newTestService([]Event{
		{Id: "1", Title: "Tech Symposium", Date: "2025-02-03", StartTime: "12:00"},
	}, feb1))
	r := mux.NewRouter()
	r.HandleFunc("/api/events/upcoming", handler.Upcoming).Methods("GET")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/api/events/upcoming", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var response []EventDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Len(t, response, 1)
	assert.NotEmpty(t, response[0].Countdown)
}
