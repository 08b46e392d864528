package profile

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aptechtayyab/msgalpha-campusconnect/internal/rest"
	"github.com/aptechtayyab/msgalpha-campusconnect/internal/session"
	log "github.com/sirupsen/logrus"
)

type UpdateProfileRequest struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

type OnboardingStateDTO struct {
	Shown bool `json:"shown"`
}

type ProfileHandler struct {
	profileService ProfileService
}

func NewProfileHandler(profileService ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService}
}

func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	profile, err := h.profileService.Get(r.Context())
	if err != nil {
		writeProfileError(w, err)
		return
	}
	if err := json.NewEncoder(w).Encode(profile); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var request UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	profile, err := h.profileService.Update(r.Context(), request.Name, request.Role)
	if err != nil {
		writeProfileError(w, err)
		return
	}
	if err := json.NewEncoder(w).Encode(profile); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *ProfileHandler) GetOnboardingState(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	shown, err := h.profileService.OnboardingSeen(r.Context())
	if err != nil {
		writeProfileError(w, err)
		return
	}
	if err := json.NewEncoder(w).Encode(OnboardingStateDTO{Shown: shown}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *ProfileHandler) MarkOnboardingSeen(w http.ResponseWriter, r *http.Request) {
	if err := h.profileService.MarkOnboardingSeen(r.Context()); err != nil {
		w.Header().Set("Content-Type", "application/json")
		writeProfileError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeProfileError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrNoSession):
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "No session"})
	case errors.Is(err, ErrInvalidName):
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid profile",
			Details: "Name must be 2-40 characters, start with a letter and use only letters, spaces, dots, apostrophes or hyphens",
			Fields:  map[string]string{"name": "invalid"},
		})
	case errors.Is(err, ErrInvalidRole):
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid profile",
			Details: "Role must be one of the onboarding roles",
			Fields:  map[string]string{"role": "invalid"},
		})
	default:
		log.Errorf("profile request failed: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
