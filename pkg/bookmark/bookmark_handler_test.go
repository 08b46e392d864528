package bookmark

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aptechtayyab/msgalpha-campusconnect/internal/session"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*mux.Router, string) {
	service, store, _ := setup(t)
	handler := NewBookmarkHandler(service)
	sessionId := store.NewSessionId()

	r := mux.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if id := req.Header.Get("X-Session-Id"); id != "" {
				req = req.WithContext(session.WithId(req.Context(), id))
			}
			next.ServeHTTP(w, req)
		})
	})
	r.HandleFunc("/api/bookmarks", handler.ListBookmarks).Methods("GET")
	r.HandleFunc("/api/bookmarks/{eventId}", handler.AddBookmark).Methods("PUT")
	r.HandleFunc("/api/bookmarks/{eventId}/toggle", handler.ToggleBookmark).Methods("POST")
	return r, sessionId
}

func TestBookmarkHandler_AddAndList(t *testing.T) {
	router, sessionId := newTestRouter(t)

	add := httptest.NewRequest("PUT", "/api/bookmarks/1", nil)
	add.Header.Set("X-Session-Id", sessionId)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, add)
	require.Equal(t, http.StatusNoContent, rec.Code)

	list := httptest.NewRequest("GET", "/api/bookmarks", nil)
	list.Header.Set("X-Session-Id", sessionId)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, list)
	require.Equal(t, http.StatusOK, rec.Code)

	var response BookmarkListDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, []string{"1"}, response.Ids)
	require.Len(t, response.Events, 1)
	assert.Equal(t, "Tech Symposium", response.Events[0].Title)
}

func TestBookmarkHandler_Toggle(t *testing.T) {
	router, sessionId := newTestRouter(t)

	toggle := func() bool {
		req := httptest.NewRequest("POST", "/api/bookmarks/2/toggle", nil)
		req.Header.Set("X-Session-Id", sessionId)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		var response struct {
			Bookmarked bool `json:"bookmarked"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		return response.Bookmarked
	}

	assert.True(t, toggle())
	assert.False(t, toggle())
}

func TestBookmarkHandler_NoSessionIsForbidden(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/bookmarks", nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
