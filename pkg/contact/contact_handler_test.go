package contact

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aptechtayyab/msgalpha-campusconnect/internal/event_bus"
	"github.com/aptechtayyab/msgalpha-campusconnect/internal/rest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandler() *ContactHandler {
	service := NewContactService(NewContactRepo(), event_bus.NewEventBus())
	return NewContactHandler(service)
}

func TestContactHandler_SubmitCreated(t *testing.T) {
	body, _ := json.Marshal(validRequest())
	req := httptest.NewRequest("POST", "/api/contact", strings.NewReader(string(body)))
	rec := httptest.NewRecorder()

	newHandler().SubmitMessage(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var submission Submission
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &submission))
	assert.NotEmpty(t, submission.Id)
}

func TestContactHandler_SubmitInvalidReturnsFieldMap(t *testing.T) {
	request := validRequest()
	request.Email = "broken"
	body, _ := json.Marshal(request)
	req := httptest.NewRequest("POST", "/api/contact", strings.NewReader(string(body)))
	rec := httptest.NewRecorder()

	newHandler().SubmitMessage(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var response rest.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Contains(t, response.Fields, "email")
}

func TestContactHandler_SubmitMalformedBody(t *testing.T) {
	req := httptest.NewRequest("POST", "/api/contact", strings.NewReader("{"))
	rec := httptest.NewRecorder()

	newHandler().SubmitMessage(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestContactHandler_Categories(t *testing.T) {
	rec := httptest.NewRecorder()
	newHandler().GetCategories(rec, httptest.NewRequest("GET", "/api/contact/categories", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var categories []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &categories))
	assert.Contains(t, categories, "Partnerships")
}
