// Package voter manages voter profiles. Creating a profile seeds an
// UNCHECKED registration status and triggers a welcome login email; the
// registration resolver owns every later status change.
package voter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/google/uuid"

	"votercheck/internal/domain"
	"votercheck/internal/platform/metrics"
	"votercheck/internal/registration"
	dErrors "votercheck/pkg/domain-errors"
	"votercheck/pkg/email"
	"votercheck/pkg/platform/sentinel"
	"votercheck/pkg/requestcontext"
)

// LoginMailer sends login link emails. Implemented by the login service;
// declared here so voter does not import login (the dependency runs the other
// way at wiring time only).
type LoginMailer interface {
	SendLoginLink(ctx context.Context, voter domain.Voter, welcome bool) error
}

// CreateRequest carries the fields for a new voter profile.
type CreateRequest struct {
	Email     string
	FirstName string
	LastName  string
	BirthDate time.Time
	Street    string
	City      string
	State     string
	ZipCode   string
}

// Service implements voter profile management.
type Service struct {
	voters   Store
	statuses registration.StatusStore
	mailer   LoginMailer
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

// NewService wires the voter service. mailer may be nil when the login flow
// is disabled (tests); metrics may be nil.
func NewService(voters Store, statuses registration.StatusStore, mailer LoginMailer, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{
		voters:   voters,
		statuses: statuses,
		mailer:   mailer,
		logger:   logger,
		metrics:  m,
	}
}

// Create registers a new voter profile, seeds its UNCHECKED status, and sends
// the welcome login email. A failed welcome email is logged but does not fail
// the creation; the voter can request another link.
func (s *Service) Create(ctx context.Context, req CreateRequest) (domain.Voter, error) {
	if !govalidator.IsEmail(req.Email) {
		return domain.Voter{}, dErrors.New(dErrors.CodeBadRequest, "a valid email address is required")
	}

	_, err := s.voters.FindByEmail(ctx, req.Email)
	switch {
	case err == nil, errors.Is(err, sentinel.ErrConflict):
		return domain.Voter{}, dErrors.New(dErrors.CodeConflict, "a voter with this email already exists")
	case errors.Is(err, sentinel.ErrNotFound):
		// expected
	default:
		return domain.Voter{}, err
	}

	first, last := req.FirstName, req.LastName
	if first == "" && last == "" {
		first, last = email.DeriveNameFromEmail(req.Email)
	}

	voter := domain.Voter{
		ID:        uuid.NewString(),
		Email:     req.Email,
		FirstName: first,
		LastName:  last,
		BirthDate: req.BirthDate,
		Street:    req.Street,
		City:      req.City,
		State:     req.State,
		ZipCode:   req.ZipCode,
		CreatedAt: requestcontext.Now(ctx),
	}

	if err := s.voters.Save(ctx, voter); err != nil {
		return domain.Voter{}, err
	}
	if _, err := s.statuses.Upsert(ctx, voter.ID, domain.StatusUnchecked, nil, time.Time{}); err != nil {
		return domain.Voter{}, err
	}
	s.metrics.IncVotersCreated()

	if s.mailer != nil {
		if err := s.mailer.SendLoginLink(ctx, voter, true); err != nil {
			s.logger.WarnContext(ctx, "welcome email failed",
				"voter_id", voter.ID,
				"error", err,
			)
		}
	}

	return voter, nil
}

// Get returns a voter by id.
func (s *Service) Get(ctx context.Context, id string) (domain.Voter, error) {
	voter, err := s.voters.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return domain.Voter{}, dErrors.New(dErrors.CodeNotFound, "voter not found")
		}
		return domain.Voter{}, err
	}
	return voter, nil
}
