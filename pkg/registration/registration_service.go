package registration

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/aptechtayyab/msgalpha-campusconnect/internal/event_bus"
	"github.com/aptechtayyab/msgalpha-campusconnect/internal/utils"
	"github.com/aptechtayyab/msgalpha-campusconnect/pkg/event"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Registration is a stored sign-up for an upcoming event.
type Registration struct {
	Id           string    `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	RollNumber   string    `json:"rollNumber"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	EventId      string    `json:"eventId"`
	RegisteredAt time.Time `json:"registeredAt"`
}

type SubmitRequest struct {
	FirstName  string `json:"firstName" validate:"required,person_name"`
	LastName   string `json:"lastName" validate:"required,person_name"`
	RollNumber string `json:"rollNumber" validate:"required,roll_number"`
	Email      string `json:"email" validate:"required,strict_email"`
	Phone      string `json:"phone" validate:"required,intl_phone"`
	EventId    string `json:"eventId" validate:"required"`
}

// ValidationError maps failing form fields to the rule that rejected them.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
}

var (
	personNameRe = regexp.MustCompile(`^[A-Za-z][A-Za-z .']{1,39}$`)
	rollRe       = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9\-_/]{2,23}$`)
	emailRe      = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}$`)
	intlPhoneRe  = regexp.MustCompile(`^\+[1-9]\d{7,14}$`)
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("person_name", func(fl validator.FieldLevel) bool {
		return personNameRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("roll_number", func(fl validator.FieldLevel) bool {
		return rollRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("strict_email", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		return emailRe.MatchString(value) && !strings.Contains(value, "..")
	})
	_ = v.RegisterValidation("intl_phone", func(fl validator.FieldLevel) bool {
		return intlPhoneRe.MatchString(fl.Field().String())
	})
	return v
}

type RegistrationService interface {
	Register(ctx context.Context, request SubmitRequest) (Registration, error)
	OpenEvents(ctx context.Context) ([]event.Enriched, error)
}

type RegistrationServiceImpl struct {
	eventService event.EventService
	validate     *validator.Validate
	eventBus     *event_bus.EventBus
	clock        utils.Clock

	mu            sync.RWMutex
	registrations []Registration
}

func NewRegistrationService(eventService event.EventService, eventBus *event_bus.EventBus) *RegistrationServiceImpl {
	return &RegistrationServiceImpl{
		eventService: eventService,
		validate:     newValidator(),
		eventBus:     eventBus,
		clock:        utils.SystemClock{},
	}
}

// OpenEvents lists upcoming events in date order. Only these accept
// registrations.
func (s *RegistrationServiceImpl) OpenEvents(ctx context.Context) ([]event.Enriched, error) {
	all, err := s.eventService.List(ctx, event.Filter{}, event.SortDateAsc, 0)
	if err != nil {
		return nil, err
	}
	today := startOfDay(s.clock.Now())
	open := make([]event.Enriched, 0, len(all))
	for _, e := range all {
		if e.HasWhen && !e.When.Before(today) {
			open = append(open, e)
		}
	}
	return open, nil
}

// Register validates the form, checks the event is still upcoming, stores the
// registration and announces it on the bus.
func (s *RegistrationServiceImpl) Register(ctx context.Context, request SubmitRequest) (Registration, error) {
	fields := make(map[string]string)
	if err := s.validate.StructCtx(ctx, request); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return Registration{}, fmt.Errorf("failed to validate registration form: %w", err)
		}
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
	}

	var target event.Enriched
	if request.EventId != "" {
		e, err := s.eventService.Get(ctx, request.EventId)
		switch {
		case errors.Is(err, event.ErrEventNotFound):
			fields["eventId"] = "unknown event"
		case err != nil:
			return Registration{}, err
		default:
			target = e
			today := startOfDay(s.clock.Now())
			if !e.HasWhen || e.When.Before(today) {
				fields["eventId"] = "registration closed"
			}
		}
	}
	if len(fields) > 0 {
		return Registration{}, &ValidationError{Fields: fields}
	}

	registration := Registration{
		Id:           uuid.NewString(),
		FirstName:    request.FirstName,
		LastName:     request.LastName,
		RollNumber:   request.RollNumber,
		Email:        request.Email,
		Phone:        request.Phone,
		EventId:      request.EventId,
		RegisteredAt: s.clock.Now(),
	}
	s.mu.Lock()
	s.registrations = append(s.registrations, registration)
	s.mu.Unlock()

	if err := s.eventBus.Publish(event_bus.NewEvent(ctx, event_bus.RegistrationSubmitted, event_bus.EventRegistration{
		Id:        registration.Id,
		EventId:   registration.EventId,
		EventDate: target.When,
		Email:     registration.Email,
	})); err != nil {
		log.Warnf("registration event delivery failed: %v", err)
	}
	return registration, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
