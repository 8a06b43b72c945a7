package rsvp_api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"ms-rsvp/internal/locale"
	"ms-rsvp/internal/logger"
	"ms-rsvp/internal/models"
	"ms-rsvp/internal/rsvp/service"
)

type failingDB struct{}

func (failingDB) CreateResponse(context.Context, *models.RsvpResponse) error {
	return errors.New("database is locked")
}
func (failingDB) ListResponses(context.Context) ([]models.RsvpResponse, error) { return nil, nil }
func (failingDB) GetResponseByID(context.Context, int64) (*models.RsvpResponse, error) {
	return nil, service.ErrNotFound
}
func (failingDB) UpdateResponse(context.Context, int64, string, bool) error { return nil }
func (failingDB) DeleteResponse(context.Context, int64) (bool, error) { return false, nil }

func TestSubmitStorageFailure(t *testing.T) {
	h := NewHandler(service.NewRsvpService(failingDB{}, logger.Discard()), locale.For("en"), logger.Discard())

	req := httptest.NewRequest(http.MethodPost, "/api/rsvp", strings.NewReader(`{"full_name": "Jane", "attending": true}`))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"detail": "could not save response"}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "locked")
}

func TestParseSubmissionChecksAttendingFirst(t *testing.T) {
	_, _, err := parseSubmission(map[string]interface{}{"full_name": 5})
	v, ok := service.IsValidation(err)
	assert.True(t, ok)
	assert.Equal(t, "attending is required", v.Detail)

	name, attending, err := parseSubmission(map[string]interface{}{"full_name": " Jane ", "attending": false})
	assert.NoError(t, err)
	assert.Equal(t, " Jane ", name)
	assert.False(t, attending)
}
