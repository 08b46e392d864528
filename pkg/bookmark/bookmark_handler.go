package bookmark

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aptechtayyab/msgalpha-campusconnect/internal/session"
	"github.com/aptechtayyab/msgalpha-campusconnect/pkg/event"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type BookmarkListDTO struct {
	Ids    []string        `json:"ids"`
	Events []event.EventDTO `json:"events"`
}

type BookmarkHandler struct {
	bookmarkService BookmarkService
}

func NewBookmarkHandler(bookmarkService BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{bookmarkService}
}

func (h *BookmarkHandler) ListBookmarks(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	events, err := h.bookmarkService.List(r.Context())
	if err != nil {
		writeBookmarkError(w, err)
		return
	}

	response := BookmarkListDTO{Ids: make([]string, 0, len(events)), Events: make([]event.EventDTO, 0, len(events))}
	for _, e := range events {
		response.Ids = append(response.Ids, string(e.Id))
		response.Events = append(response.Events, event.ToDTO(e))
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *BookmarkHandler) AddBookmark(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Trace("Adding bookmark")

	eventId := mux.Vars(r)["eventId"]
	if err := h.bookmarkService.Add(r.Context(), eventId); err != nil {
		writeBookmarkError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *BookmarkHandler) RemoveBookmark(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Trace("Removing bookmark")

	eventId := mux.Vars(r)["eventId"]
	if err := h.bookmarkService.Remove(r.Context(), eventId); err != nil {
		writeBookmarkError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *BookmarkHandler) ToggleBookmark(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	eventId := mux.Vars(r)["eventId"]
	bookmarked, err := h.bookmarkService.Toggle(r.Context(), eventId)
	if err != nil {
		writeBookmarkError(w, err)
		return
	}
	response := struct {
		Bookmarked bool `json:"bookmarked"`
	}{bookmarked}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *BookmarkHandler) ClearBookmarks(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := h.bookmarkService.Clear(r.Context()); err != nil {
		writeBookmarkError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeBookmarkError(w http.ResponseWriter, err error) {
	if errors.Is(err, session.ErrNoSession) {
		http.Error(w, "no session", http.StatusForbidden)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
