package feedback

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aptechtayyab/msgalpha-campusconnect/internal/rest"
	"github.com/aptechtayyab/msgalpha-campusconnect/pkg/event"
	log "github.com/sirupsen/logrus"
)

type FeedbackHandler struct {
	feedbackService FeedbackService
}

func NewFeedbackHandler(feedbackService FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService}
}

func (h *FeedbackHandler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var request SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	entry, err := h.feedbackService.Submit(r.Context(), request)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_ = json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error:  "Invalid feedback form",
				Fields: verr.Fields,
			})
			return
		}
		log.Errorf("feedback submission failed: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(entry); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// GetRecentEvents lists the events currently open for feedback.
func (h *FeedbackHandler) GetRecentEvents(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	recent, err := h.feedbackService.RecentEvents(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	response := make([]event.EventDTO, 0, len(recent))
	for _, e := range recent {
		response = append(response, event.ToDTO(e))
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
