package contact

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aptechtayyab/msgalpha-campusconnect/internal/rest"
	log "github.com/sirupsen/logrus"
)

type ContactHandler struct {
	contactService ContactService
}

func NewContactHandler(contactService ContactService) *ContactHandler {
	return &ContactHandler{contactService}
}

// SubmitMessage accepts the contact form. Validation failures come back as
// 422 with a per-field map so the form can highlight the offending inputs.
func (h *ContactHandler) SubmitMessage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var request SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	submission, err := h.contactService.Submit(r.Context(), request)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_ = json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error:  "Invalid contact form",
				Fields: verr.Fields,
			})
			return
		}
		log.Errorf("contact submission failed: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(submission); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// GetCategories serves the selectable contact categories.
func (h *ContactHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(h.contactService.Categories()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
