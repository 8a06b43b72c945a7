package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"ms-rsvp/internal/logger"
	"ms-rsvp/internal/models"
	"ms-rsvp/internal/rsvp/db"
)

// ErrNotFound is returned for ids that do not exist.
var ErrNotFound = db.ErrNotFound

// ValidationError carries a message that is safe to show to the caller.
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string {
	return e.Detail
}

func invalid(detail string) error {
	return &ValidationError{Detail: detail}
}

// IsValidation reports whether err is a *ValidationError and returns it.
func IsValidation(err error) (*ValidationError, bool) {
	var v *ValidationError
	ok := errors.As(err, &v)
	return v, ok
}

type ResponseDBLayer interface {
	CreateResponse(ctx context.Context, r *models.RsvpResponse) error
	ListResponses(ctx context.Context) ([]models.RsvpResponse, error)
	GetResponseByID(ctx context.Context, id int64) (*models.RsvpResponse, error)
	UpdateResponse(ctx context.Context, id int64, fullName string, attending bool) error
	DeleteResponse(ctx context.Context, id int64) (bool, error)
}

type RsvpService struct {
	DB     ResponseDBLayer
	Logger *logger.Logger
	Now    func() time.Time
}

func NewRsvpService(d ResponseDBLayer, log *logger.Logger) *RsvpService {
	return &RsvpService{DB: d, Logger: log, Now: time.Now}
}

// NormalizeFullName trims surrounding whitespace and enforces 1..200 characters.
func NormalizeFullName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", invalid("full_name is required")
	}
	if utf8.RuneCountInString(name) > models.MaxFullNameLength {
		return "", invalid("full_name is too long")
	}
	return name, nil
}

// ParseAttendingFlag accepts the admin form values "1" and "0".
func ParseAttendingFlag(raw string) (bool, error) {
	switch strings.TrimSpace(raw) {
	case "1":
		return true, nil
	case "0":
		return false, nil
	default:
		return false, invalid("attending must be 1 or 0")
	}
}

// Submit stores a new response from the public form.
func (s *RsvpService) Submit(ctx context.Context, fullName string, attending bool) (*models.RsvpResponse, error) {
	name, err := NormalizeFullName(fullName)
	if err != nil {
		return nil, err
	}

	response := models.NewRsvpResponse(name, attending, s.Now())
	if err := s.DB.CreateResponse(ctx, response); err != nil {
		return nil, fmt.Errorf("failed to save response: %w", err)
	}

	s.Logger.LogRSVP("CREATE", response.ID, fmt.Sprintf("attending=%t", attending))
	return response, nil
}

func (s *RsvpService) ListResponses(ctx context.Context) ([]models.RsvpResponse, error) {
	return s.DB.ListResponses(ctx)
}

func (s *RsvpService) GetResponse(ctx context.Context, id int64) (*models.RsvpResponse, error) {
	response, err := s.DB.GetResponseByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return response, nil
}

// UpdateResponse validates the admin edit. The name is checked before the flag.
func (s *RsvpService) UpdateResponse(ctx context.Context, id int64, fullName, attendingFlag string) error {
	name, err := NormalizeFullName(fullName)
	if err != nil {
		return err
	}
	attending, err := ParseAttendingFlag(attendingFlag)
	if err != nil {
		return err
	}

	if err := s.DB.UpdateResponse(ctx, id, name, attending); err != nil {
		return err
	}

	s.Logger.LogRSVP("UPDATE", id, fmt.Sprintf("attending=%t", attending))
	return nil
}

func (s *RsvpService) DeleteResponse(ctx context.Context, id int64) error {
	deleted, err := s.DB.DeleteResponse(ctx, id)
	if err != nil {
		return err
	}
	if deleted {
		s.Logger.LogRSVP("DELETE", id, "removed")
	} else {
		s.Logger.LogRSVP("DELETE", id, "not present")
	}
	return nil
}
