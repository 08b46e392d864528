package event

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/aptechtayyab/msgalpha-campusconnect/internal/rest"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type EventDTO struct {
	Id               string   `json:"id"`
	Slug             string   `json:"slug,omitempty"`
	Title            string   `json:"title"`
	ShortDescription string   `json:"shortDescription,omitempty"`
	Description      string   `json:"description,omitempty"`
	LongDescription  string   `json:"longDescription,omitempty"`
	Date             string   `json:"date,omitempty"`
	StartTime        string   `json:"startTime,omitempty"`
	EndTime          string   `json:"endTime,omitempty"`
	Category         string   `json:"category,omitempty"`
	Department       string   `json:"department,omitempty"`
	Venue            string   `json:"venue,omitempty"`
	Organizer        string   `json:"organizer,omitempty"`
	Location         string   `json:"location,omitempty"`
	Cover            string   `json:"cover"`
	Images           []string `json:"images,omitempty"`
	When             string   `json:"when,omitempty"`
	DisplayRange     string   `json:"displayRange,omitempty"`
	AcademicYear     int      `json:"academicYear,omitempty"`
	YearLabel        string   `json:"yearLabel,omitempty"`
	Countdown        string   `json:"countdown,omitempty"`
}

type EventHandler struct {
	eventService EventService
}

func NewEventHandler(eventService EventService) *EventHandler {
	return &EventHandler{eventService}
}

// ListEvents serves the filterable, sortable event catalog.
func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Trace("Listing events")

	params := r.URL.Query()
	filter := Filter{
		Query:      params.Get("q"),
		Category:   params.Get("category"),
		Department: params.Get("department"),
		Mode:       Mode(params.Get("mode")),
	}
	if filter.Mode != ModeUpcoming && filter.Mode != ModePast {
		filter.Mode = ModeAll
	}
	key := SortKey(params.Get("sort"))
	if key == "" {
		key = SortDateAsc
	}
	limit := parseLimit(params.Get("limit"))

	events, err := h.eventService.List(r.Context(), filter, key, limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	response := make([]EventDTO, 0, len(events))
	for _, e := range events {
		response = append(response, ToDTO(e))
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// GetEvent resolves a single event by id or slug.
func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	idOrSlug := mux.Vars(r)["eventId"]
	e, err := h.eventService.Get(r.Context(), idOrSlug)
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			w.WriteHeader(http.StatusNotFound)
			if encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error:   "Event not found",
				Details: "We couldn't find details for this event",
			}); encodeErr != nil {
				http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			}
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := json.NewEncoder(w).Encode(ToDTO(e)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// Upcoming serves the upcoming-highlights strip with live countdowns.
func (h *EventHandler) Upcoming(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	params := r.URL.Query()
	key := UpcomingSortKey(params.Get("sort"))
	limit := parseLimit(params.Get("limit"))

	events, err := h.eventService.Upcoming(r.Context(), params.Get("q"), params.Get("department"), key, limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	response := make([]EventDTO, 0, len(events))
	for _, e := range events {
		dto := ToDTO(e)
		dto.Countdown = h.eventService.Countdown(e)
		response = append(response, dto)
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// NextEvent serves the single soonest upcoming event.
func (h *EventHandler) NextEvent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	next, err := h.eventService.Next(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if next == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	dto := ToDTO(*next)
	dto.Countdown = h.eventService.Countdown(*next)
	if err := json.NewEncoder(w).Encode(dto); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// GetFacets serves the category and department filter options.
func (h *EventHandler) GetFacets(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	facets, err := h.eventService.Facets(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := json.NewEncoder(w).Encode(facets); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func parseLimit(raw string) int {
	if raw == "" {
		return 0
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}

func ToDTO(e Enriched) EventDTO {
	var when string
	if e.HasWhen {
		when = e.When.Format(time.RFC3339)
	}
	return EventDTO{
		Id:               string(e.Id),
		Slug:             e.Slug,
		Title:            e.Title,
		ShortDescription: e.ShortDescription,
		Description:      e.Description,
		LongDescription:  e.LongDescription,
		Date:             e.Date,
		StartTime:        e.StartTime,
		EndTime:          e.EndTime,
		Category:         e.Category,
		Department:       e.Department,
		Venue:            e.Venue,
		Organizer:        e.Organizer,
		Location:         e.Location,
		Cover:            e.Cover,
		Images:           e.Images,
		When:             when,
		DisplayRange:     e.DisplayRange,
		AcademicYear:     e.AcademicYear,
		YearLabel:        e.YearLabel,
	}
}
