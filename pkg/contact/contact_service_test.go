package contact

import (
	"context"
	"testing"

	"github.com/aptechtayyab/msgalpha-campusconnect/internal/event_bus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() SubmitRequest {
	return SubmitRequest{
		Name:           "Ayesha Khan",
		Email:          "ayesha.khan@student.campus.edu",
		Category:       "General",
		PreferredReply: "Email",
		Subject:        "Volunteering at the tech symposium",
		Message:        "I would like to volunteer at the registration desk during the symposium weekend.",
	}
}

func newService() (*ContactServiceImpl, *InMemoryContactRepository) {
	repo := NewContactRepo()
	return NewContactService(repo, event_bus.NewEventBus()), repo
}

func TestContact_SubmitStoresMessage(t *testing.T) {
	service, repo := newService()

	submission, err := service.Submit(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, submission.Id)
	assert.False(t, submission.SubmittedAt.IsZero())

	stored, err := repo.All(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, submission.Id, stored[0].Id)
}

func TestContact_SubmitPublishesEvent(t *testing.T) {
	repo := NewContactRepo()
	bus := event_bus.NewEventBus()
	service := NewContactService(repo, bus)

	var received event_bus.ContactMessage
	bus.Subscribe(event_bus.ContactSubmitted, func(e event_bus.Event) error {
		received = e.Data.(event_bus.ContactMessage)
		return nil
	})

	submission, err := service.Submit(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, submission.Id, received.Id)
	assert.Equal(t, "General", received.Category)
}

func TestContact_SubmitRejectsBadFields(t *testing.T) {
	service, _ := newService()

	request := validRequest()
	request.Name = "x"
	request.Email = "not..an@email"
	request.Subject = "hey"
	request.Message = "too short"
	request.Category = "Random"

	_, err := service.Submit(context.Background(), request)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "name")
	assert.Contains(t, verr.Fields, "email")
	assert.Contains(t, verr.Fields, "subject")
	assert.Contains(t, verr.Fields, "message")
	assert.Contains(t, verr.Fields, "category")
}

func TestContact_PhoneRequiredWhenPreferred(t *testing.T) {
	service, _ := newService()

	request := validRequest()
	request.PreferredReply = "Phone"

	_, err := service.Submit(context.Background(), request)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "phone")

	request.Phone = "+14155550132"
	_, err = service.Submit(context.Background(), request)
	assert.NoError(t, err)
}

func TestContact_PhoneFormats(t *testing.T) {
	service, _ := newService()

	for _, phone := range []string{"+14155550132", "(021) 555-0132", "0301 5550132"} {
		request := validRequest()
		request.Phone = phone
		_, err := service.Submit(context.Background(), request)
		assert.NoError(t, err, "phone %q should validate", phone)
	}

	request := validRequest()
	request.Phone = "12ab"
	_, err := service.Submit(context.Background(), request)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "phone")
}
