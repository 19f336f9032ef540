// Package login implements the passwordless login flow: a single-use emailed
// token exchanged for a signed session JWT.
package login

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/google/uuid"

	"votercheck/internal/domain"
	"votercheck/internal/jwttoken"
	"votercheck/internal/platform/metrics"
	dErrors "votercheck/pkg/domain-errors"
	"votercheck/pkg/platform/sentinel"
)

var (
	// ErrSendFailed marks a login email that could not be delivered.
	ErrSendFailed = errors.New("login email delivery failed")

	// ErrAmbiguousRecipient marks an email address shared by more than one
	// voter. No link is sent; the duplicate profiles need manual cleanup
	// first.
	ErrAmbiguousRecipient = errors.New("email matches more than one voter")
)

// Service mints, delivers and redeems single-use login tokens.
type Service struct {
	directory Directory
	tokens    TokenStore
	sender    Sender
	sessions  *jwttoken.Service
	logger    *slog.Logger
	metrics   *metrics.Metrics
	tokenTTL  time.Duration
	linkBase  string
}

func NewService(directory Directory, tokens TokenStore, sender Sender, sessions *jwttoken.Service, logger *slog.Logger, m *metrics.Metrics, tokenTTL time.Duration, linkBase string) *Service {
	return &Service{
		directory: directory,
		tokens:    tokens,
		sender:    sender,
		sessions:  sessions,
		logger:    logger,
		metrics:   m,
		tokenTTL:  tokenTTL,
		linkBase:  linkBase,
	}
}

// RequestLink looks up the voter behind the address and sends a login link.
func (s *Service) RequestLink(ctx context.Context, address string) error {
	if !govalidator.IsEmail(address) {
		return dErrors.New(dErrors.CodeBadRequest, "a valid email address is required")
	}

	voter, err := s.directory.FindByEmail(ctx, address)
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.New(dErrors.CodeNotFound, "no voter with this email address")
	case errors.Is(err, sentinel.ErrConflict):
		return dErrors.Wrap(dErrors.CodeConflict, "email matches more than one voter", ErrAmbiguousRecipient)
	case err != nil:
		return fmt.Errorf("find voter by email: %w", err)
	}

	return s.SendLoginLink(ctx, voter, false)
}

// SendLoginLink mints a token for the voter and emails the login link.
// welcome switches the copy for freshly created profiles.
func (s *Service) SendLoginLink(ctx context.Context, voter domain.Voter, welcome bool) error {
	token := uuid.NewString()
	if err := s.tokens.Save(ctx, token, voter.ID, s.tokenTTL); err != nil {
		return fmt.Errorf("save login token: %w", err)
	}

	if err := s.sender.Send(ctx, s.compose(voter, token, welcome)); err != nil {
		s.metrics.IncLoginEmailFailed()
		s.logger.WarnContext(ctx, "login email failed",
			"voter_id", voter.ID,
			"error", err,
		)
		return dErrors.Wrap(dErrors.CodeUpstream, "could not send the login email", fmt.Errorf("%w: %w", ErrSendFailed, err))
	}

	s.metrics.IncLoginEmailsSent()
	return nil
}

// ConsumeToken redeems a login token and returns a signed session JWT for the
// voter it was issued to.
func (s *Service) ConsumeToken(ctx context.Context, token string) (string, domain.Voter, error) {
	voterID, err := s.tokens.Consume(ctx, token)
	switch {
	case errors.Is(err, sentinel.ErrNotFound), errors.Is(err, sentinel.ErrExpired):
		return "", domain.Voter{}, dErrors.New(dErrors.CodeUnauthorized, "login link is invalid or has expired")
	case err != nil:
		return "", domain.Voter{}, fmt.Errorf("consume login token: %w", err)
	}

	voter, err := s.directory.FindByID(ctx, voterID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			// Profile deleted between link issue and redemption.
			return "", domain.Voter{}, dErrors.New(dErrors.CodeUnauthorized, "login link is invalid or has expired")
		}
		return "", domain.Voter{}, fmt.Errorf("find voter %s: %w", voterID, err)
	}

	session, err := s.sessions.Generate(voter.ID, voter.Email)
	if err != nil {
		return "", domain.Voter{}, fmt.Errorf("sign session token: %w", err)
	}

	s.metrics.IncLoginsCompleted()
	return session, voter, nil
}

func (s *Service) compose(voter domain.Voter, token string, welcome bool) Message {
	link := fmt.Sprintf("%s?token=%s", s.linkBase, token)

	subject := "Your login link"
	greeting := fmt.Sprintf("Hi %s,", voter.FirstName)
	if welcome {
		subject = "Welcome! Confirm your email to log in"
		greeting = fmt.Sprintf("Welcome %s,", voter.FirstName)
	}

	body := fmt.Sprintf("%s\n\nUse the link below to log in. It works once and expires in %s.\n\n%s\n",
		greeting, s.tokenTTL, link)

	return Message{
		To:      voter.Email,
		Subject: subject,
		Body:    body,
	}
}
