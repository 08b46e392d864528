package feedback

import (
	"context"
	"fmt"
	"regexp"
	"sync"
	"time"

	"github.com/aptechtayyab/msgalpha-campusconnect/internal/event_bus"
	"github.com/aptechtayyab/msgalpha-campusconnect/internal/utils"
	"github.com/aptechtayyab/msgalpha-campusconnect/pkg/event"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Entry is a stored feedback submission for a recently concluded event.
type Entry struct {
	Id          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	UserType    string    `json:"userType"`
	EventId     string    `json:"eventId"`
	Rating      int       `json:"rating"`
	Comments    string    `json:"comments,omitempty"`
	SubmittedAt time.Time `json:"submittedAt"`
}

type SubmitRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	UserType string `json:"userType"`
	EventId  string `json:"eventId"`
	Rating   int    `json:"rating"`
	Comments string `json:"comments"`
}

// ValidationError maps failing form fields to a short reason.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
}

var (
	nameRe  = regexp.MustCompile(`^[A-Za-z][A-Za-z .']{1,39}$`)
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)
)

// feedbackWindow is how far back an event may lie and still accept feedback.
const feedbackWindow = 30

type FeedbackService interface {
	Submit(ctx context.Context, request SubmitRequest) (Entry, error)
	RecentEvents(ctx context.Context) ([]event.Enriched, error)
}

type FeedbackServiceImpl struct {
	eventService event.EventService
	eventBus     *event_bus.EventBus
	clock        utils.Clock

	mu      sync.RWMutex
	entries []Entry
}

func NewFeedbackService(eventService event.EventService, eventBus *event_bus.EventBus) *FeedbackServiceImpl {
	return &FeedbackServiceImpl{
		eventService: eventService,
		eventBus:     eventBus,
		clock:        utils.SystemClock{},
	}
}

// RecentEvents lists events that concluded within the feedback window, most
// recent first. These are the only events feedback is accepted for.
func (s *FeedbackServiceImpl) RecentEvents(ctx context.Context) ([]event.Enriched, error) {
	all, err := s.eventService.List(ctx, event.Filter{}, event.SortDateDesc, 0)
	if err != nil {
		return nil, err
	}
	today := startOfDay(s.clock.Now())
	cutoff := today.AddDate(0, 0, -feedbackWindow)
	recent := make([]event.Enriched, 0, len(all))
	for _, e := range all {
		if e.HasWhen && e.When.Before(today) && !e.When.Before(cutoff) {
			recent = append(recent, e)
		}
	}
	return recent, nil
}

// Submit validates the form, checks that the event concluded within the
// window, stores the entry and announces it on the bus.
func (s *FeedbackServiceImpl) Submit(ctx context.Context, request SubmitRequest) (Entry, error) {
	fields := make(map[string]string)
	if !nameRe.MatchString(request.Name) {
		fields["name"] = "invalid"
	}
	if !emailRe.MatchString(request.Email) {
		fields["email"] = "invalid"
	}
	if request.UserType == "" {
		fields["userType"] = "required"
	}
	if request.Rating < 1 || request.Rating > 5 {
		fields["rating"] = "out of range"
	}
	if request.Comments != "" && len(request.Comments) < 5 {
		fields["comments"] = "too short"
	}
	if request.EventId == "" {
		fields["eventId"] = "required"
	} else if err := s.checkEvent(ctx, request.EventId, fields); err != nil {
		return Entry{}, err
	}
	if len(fields) > 0 {
		return Entry{}, &ValidationError{Fields: fields}
	}

	entry := Entry{
		Id:          uuid.NewString(),
		Name:        request.Name,
		Email:       request.Email,
		UserType:    request.UserType,
		EventId:     request.EventId,
		Rating:      request.Rating,
		Comments:    request.Comments,
		SubmittedAt: s.clock.Now(),
	}
	s.mu.Lock()
	s.entries = append(s.entries, entry)
	s.mu.Unlock()

	if err := s.eventBus.Publish(event_bus.NewEvent(ctx, event_bus.FeedbackSubmitted, event_bus.FeedbackEntry{
		Id:      entry.Id,
		EventId: entry.EventId,
		Rating:  entry.Rating,
	})); err != nil {
		log.Warnf("feedback event delivery failed: %v", err)
	}
	return entry, nil
}

func (s *FeedbackServiceImpl) checkEvent(ctx context.Context, eventId string, fields map[string]string) error {
	e, err := s.eventService.Get(ctx, eventId)
	if err != nil {
		if err == event.ErrEventNotFound {
			fields["eventId"] = "unknown event"
			return nil
		}
		return err
	}
	today := startOfDay(s.clock.Now())
	cutoff := today.AddDate(0, 0, -feedbackWindow)
	if !e.HasWhen || e.When.Before(cutoff) || !e.When.Before(today) {
		fields["eventId"] = "event not open for feedback"
	}
	return nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
