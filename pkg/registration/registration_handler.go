package registration

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aptechtayyab/msgalpha-campusconnect/internal/rest"
	"github.com/aptechtayyab/msgalpha-campusconnect/pkg/event"
	log "github.com/sirupsen/logrus"
)

type RegistrationHandler struct {
	registrationService RegistrationService
}

func NewRegistrationHandler(registrationService RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{registrationService}
}

func (h *RegistrationHandler) SubmitRegistration(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var request SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	registration, err := h.registrationService.Register(r.Context(), request)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_ = json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error:  "Invalid registration form",
				Fields: verr.Fields,
			})
			return
		}
		log.Errorf("registration failed: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(registration); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// GetOpenEvents lists the upcoming events open for registration.
func (h *RegistrationHandler) GetOpenEvents(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	open, err := h.registrationService.OpenEvents(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	response := make([]event.EventDTO, 0, len(open))
	for _, e := range open {
		response = append(response, event.ToDTO(e))
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
