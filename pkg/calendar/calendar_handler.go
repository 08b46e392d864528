package calendar

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/aptechtayyab/msgalpha-campusconnect/internal/rest"
	"github.com/gorilla/mux"
)

type CalendarHandler struct {
	calendarService CalendarService
}

func NewCalendarHandler(calendarService CalendarService) *CalendarHandler {
	return &CalendarHandler{calendarService}
}

// GetYear serves the month-by-month overview for one year.
func (h *CalendarHandler) GetYear(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	year, ok := parseYear(w, mux.Vars(r)["year"])
	if !ok {
		return
	}
	view, err := h.calendarService.Year(r.Context(), year)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := json.NewEncoder(w).Encode(view); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// GetGrid serves the raw 42-cell grid for one month.
func (h *CalendarHandler) GetGrid(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	vars := mux.Vars(r)
	year, ok := parseYear(w, vars["year"])
	if !ok {
		return
	}
	month, err := strconv.Atoi(vars["month"])
	if err != nil || month < 1 || month > 12 {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid month",
			Details: "Month must be a number between 1 and 12",
		})
		return
	}

	cells := h.calendarService.Grid(year, time.Month(month))
	if err := json.NewEncoder(w).Encode(cells); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// GetTable serves the annual events table.
func (h *CalendarHandler) GetTable(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	table, err := h.calendarService.Table(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := json.NewEncoder(w).Encode(table); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func parseYear(w http.ResponseWriter, raw string) (int, bool) {
	year, err := strconv.Atoi(raw)
	if err != nil || year < 1 {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid year",
			Details: "Year must be a positive number",
		})
		return 0, false
	}
	return year, true
}
