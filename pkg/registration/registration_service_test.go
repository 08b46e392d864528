package registration

import (
	"context"
	"testing"
	"time"

	"github.com/aptechtayyab/msgalpha-campusconnect/internal/event_bus"
	"github.com/aptechtayyab/msgalpha-campusconnect/internal/utils"
	"github.com/aptechtayyab/msgalpha-campusconnect/pkg/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, time.February, 1, 12, 0, 0, 0, time.Local)

func newTestService() *RegistrationServiceImpl {
	eventService := event.NewEventService(&event.StubEventRepository{Events: []event.Event{
		{Id: "today", Title: "Open Mic Night", Date: "2025-02-01", StartTime: "20:00"},
		{Id: "future", Title: "Tech Symposium", Date: "2025-10-18"},
		{Id: "past", Title: "Career Fair", Date: "2025-01-20"},
		{Id: "undated", Title: "Science Exhibition", Date: "TBA"},
	}}, event.Normalizer{})
	return &RegistrationServiceImpl{
		eventService: eventService,
		validate:     newValidator(),
		eventBus:     event_bus.NewEventBus(),
		clock:        &utils.MockClock{FixedNow: now},
	}
}

func validRequest() SubmitRequest {
	return SubmitRequest{
		FirstName:  "Lina",
		LastName:   "Chen",
		RollNumber: "CS-2023/117",
		Email:      "lina.chen@student.campus.edu",
		Phone:      "+14155550132",
		EventId:    "future",
	}
}

func TestRegistration_Accepted(t *testing.T) {
	service := newTestService()

	registration, err := service.Register(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, registration.Id)
	assert.Equal(t, now, registration.RegisteredAt)
}

func TestRegistration_SameDayEventStillOpen(t *testing.T) {
	service := newTestService()

	request := validRequest()
	request.EventId = "today"
	_, err := service.Register(context.Background(), request)
	assert.NoError(t, err)
}

func TestRegistration_ClosedEvents(t *testing.T) {
	service := newTestService()

	for _, eventId := range []string{"past", "undated"} {
		request := validRequest()
		request.EventId = eventId
		_, err := service.Register(context.Background(), request)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr, "event %s", eventId)
		assert.Equal(t, "registration closed", verr.Fields["eventId"])
	}
}

func TestRegistration_UnknownEvent(t *testing.T) {
	service := newTestService()

	request := validRequest()
	request.EventId = "missing"
	_, err := service.Register(context.Background(), request)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "unknown event", verr.Fields["eventId"])
}

func TestRegistration_RejectsBadFields(t *testing.T) {
	service := newTestService()

	request := SubmitRequest{
		FirstName:  "L",
		LastName:   "Chen9",
		RollNumber: "!!",
		Email:      "lina@@campus",
		Phone:      "0301 5550132",
		EventId:    "future",
	}
	_, err := service.Register(context.Background(), request)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "firstName")
	assert.Contains(t, verr.Fields, "lastName")
	assert.Contains(t, verr.Fields, "rollNumber")
	assert.Contains(t, verr.Fields, "email")
	assert.Contains(t, verr.Fields, "phone")
}

func TestRegistration_OpenEventsAreUpcomingDateAsc(t *testing.T) {
	service := newTestService()

	open, err := service.OpenEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, open, 2)
	assert.Equal(t, event.ID("today"), open[0].Id)
	assert.Equal(t, event.ID("future"), open[1].Id)
}
