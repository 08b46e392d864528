package contact

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/aptechtayyab/msgalpha-campusconnect/internal/event_bus"
	"github.com/aptechtayyab/msgalpha-campusconnect/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// SubmitRequest carries the contact form fields. Phone becomes mandatory when
// the visitor asks to be called back.
type SubmitRequest struct {
	Name           string `json:"name" validate:"required,min=3,max=60,contact_name"`
	Email          string `json:"email" validate:"required,strict_email"`
	Phone          string `json:"phone" validate:"required_if=PreferredReply Phone,omitempty,phone_number"`
	Category       string `json:"category" validate:"required,oneof=General Support Admissions Partnerships Events"`
	PreferredReply string `json:"preferredReply" validate:"required,oneof=Email Phone"`
	Subject        string `json:"subject" validate:"required,min=5,max=120"`
	Message        string `json:"message" validate:"required,min=20,max=2000"`
}

// ValidationError maps failing form fields to the rule that rejected them.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
}

var (
	contactNameRe = regexp.MustCompile(`^[A-Za-zÀ-ÖØ-öø-ÿ' -]+$`)
	emailRe       = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}$`)
	e164Re        = regexp.MustCompile(`^\+?[1-9]\d{7,14}$`)
	localPhoneRe  = regexp.MustCompile(`^[+\d]?(?:[\d\s().-]){7,}$`)
	nonDialRe     = regexp.MustCompile(`[^\d+]`)
)

// NewFormValidator builds a validator with the portal's shared custom rules
// registered. Field names in error maps come from the json tags.
func NewFormValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("contact_name", func(fl validator.FieldLevel) bool {
		return contactNameRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("strict_email", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		return emailRe.MatchString(value) && !strings.Contains(value, "..")
	})
	_ = v.RegisterValidation("phone_number", func(fl validator.FieldLevel) bool {
		raw := strings.TrimSpace(fl.Field().String())
		digits := nonDialRe.ReplaceAllString(raw, "")
		return e164Re.MatchString(digits) || localPhoneRe.MatchString(raw)
	})
	return v
}

// FieldErrors flattens validator errors into a field->tag map, or nil when
// err is not a validation failure.
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	return fields
}

type ContactService interface {
	Submit(ctx context.Context, request SubmitRequest) (Submission, error)
	Categories() []string
}

type ContactServiceImpl struct {
	repo     ContactRepository
	validate *validator.Validate
	eventBus *event_bus.EventBus
	clock    utils.Clock
}

func NewContactService(repo ContactRepository, eventBus *event_bus.EventBus) *ContactServiceImpl {
	return &ContactServiceImpl{
		repo:     repo,
		validate: NewFormValidator(),
		eventBus: eventBus,
		clock:    utils.SystemClock{},
	}
}

func (s *ContactServiceImpl) Categories() []string {
	return []string{"General", "Support", "Admissions", "Partnerships", "Events"}
}

// Submit validates the form, stores the message and announces it on the bus.
func (s *ContactServiceImpl) Submit(ctx context.Context, request SubmitRequest) (Submission, error) {
	if err := s.validate.StructCtx(ctx, request); err != nil {
		if fields := FieldErrors(err); fields != nil {
			return Submission{}, &ValidationError{Fields: fields}
		}
		return Submission{}, fmt.Errorf("failed to validate contact form: %w", err)
	}

	submission := Submission{
		Id:             uuid.NewString(),
		Name:           strings.TrimSpace(request.Name),
		Email:          strings.TrimSpace(request.Email),
		Phone:          strings.TrimSpace(request.Phone),
		Category:       request.Category,
		PreferredReply: request.PreferredReply,
		Subject:        strings.TrimSpace(request.Subject),
		Message:        strings.TrimSpace(request.Message),
		SubmittedAt:    s.clock.Now(),
	}
	if err := s.repo.Save(ctx, submission); err != nil {
		return Submission{}, fmt.Errorf("failed to store contact message: %w", err)
	}

	if err := s.eventBus.Publish(event_bus.NewEvent(ctx, event_bus.ContactSubmitted, event_bus.ContactMessage{
		Id:       submission.Id,
		Email:    submission.Email,
		Category: submission.Category,
		Subject:  submission.Subject,
	})); err != nil {
		log.Warnf("contact event delivery failed: %v", err)
	}
	return submission, nil
}
