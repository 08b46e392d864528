package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/aptechtayyab/msgalpha-campusconnect/internal/session"
	"github.com/aptechtayyab/msgalpha-campusconnect/pkg/content"
)

const storageKey = "profile:v1"

var (
	ErrInvalidName = errors.New("invalid display name")
	ErrInvalidRole = errors.New("invalid role")

	nameRe = regexp.MustCompile(`^[A-Za-z][A-Za-z\s.'-]*$`)
)

// Profile is the visitor's session-scoped identity: a display name and a role
// chosen during onboarding. It never outlives the session.
type Profile struct {
	Name            string `json:"name"`
	Role            string `json:"role"`
	OnboardingShown bool   `json:"onboardingShown"`
}

type ProfileService interface {
	Get(ctx context.Context) (Profile, error)
	Update(ctx context.Context, name string, role string) (Profile, error)
	OnboardingSeen(ctx context.Context) (bool, error)
	MarkOnboardingSeen(ctx context.Context) error
}

type ProfileServiceImpl struct {
	store          *session.Store
	contentService content.ContentService
}

func NewProfileService(store *session.Store, contentService content.ContentService) *ProfileServiceImpl {
	return &ProfileServiceImpl{store, contentService}
}

func (s *ProfileServiceImpl) load(ctx context.Context) (string, Profile, error) {
	sessionId, err := session.CurrentId(ctx)
	if err != nil {
		return "", Profile{}, err
	}
	var profile Profile
	if raw, ok := s.store.Get(sessionId, storageKey); ok {
		if err := json.Unmarshal(raw, &profile); err != nil {
			return "", Profile{}, fmt.Errorf("failed to decode stored profile: %w", err)
		}
	}
	return sessionId, profile, nil
}

func (s *ProfileServiceImpl) save(sessionId string, profile Profile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	return s.store.Put(sessionId, storageKey, raw)
}

func (s *ProfileServiceImpl) Get(ctx context.Context) (Profile, error) {
	_, profile, err := s.load(ctx)
	return profile, err
}

// Update validates and normalizes the display name, checks the role against
// the onboarding roles, and stores the result.
func (s *ProfileServiceImpl) Update(ctx context.Context, name string, role string) (Profile, error) {
	sessionId, profile, err := s.load(ctx)
	if err != nil {
		return Profile{}, err
	}

	normalized, ok := NormalizeName(name)
	if !ok {
		return Profile{}, ErrInvalidName
	}
	if !s.validRole(ctx, role) {
		return Profile{}, ErrInvalidRole
	}

	profile.Name = normalized
	profile.Role = role
	if err := s.save(sessionId, profile); err != nil {
		return Profile{}, err
	}
	return profile, nil
}

func (s *ProfileServiceImpl) validRole(ctx context.Context, role string) bool {
	for _, r := range s.contentService.Onboarding(ctx).Roles {
		if r.Id == role {
			return true
		}
	}
	return false
}

func (s *ProfileServiceImpl) OnboardingSeen(ctx context.Context) (bool, error) {
	_, profile, err := s.load(ctx)
	return profile.OnboardingShown, err
}

// MarkOnboardingSeen flips the one-time flag. Marking it again is a no-op.
func (s *ProfileServiceImpl) MarkOnboardingSeen(ctx context.Context) error {
	sessionId, profile, err := s.load(ctx)
	if err != nil {
		return err
	}
	if profile.OnboardingShown {
		return nil
	}
	profile.OnboardingShown = true
	return s.save(sessionId, profile)
}

// NormalizeName collapses runs of whitespace, trims the result, title-cases
// each word and enforces the 2-40 character limit. ok is false when the name
// does not validate.
func NormalizeName(name string) (normalized string, ok bool) {
	words := strings.Fields(name)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	normalized = strings.Join(words, " ")
	if len(normalized) < 2 || len(normalized) > 40 {
		return "", false
	}
	if !nameRe.MatchString(normalized) {
		return "", false
	}
	return normalized, true
}
