package voter_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"votercheck/internal/domain"
	regstore "votercheck/internal/registration/store"
	"votercheck/internal/voter"
	dErrors "votercheck/pkg/domain-errors"
	"votercheck/pkg/requestcontext"
)

type recordingMailer struct {
	mu      sync.Mutex
	sent    []domain.Voter
	welcome []bool
	err     error
}

func (m *recordingMailer) SendLoginLink(_ context.Context, v domain.Voter, welcome bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, v)
	m.welcome = append(m.welcome, welcome)
	return nil
}

func newService(t *testing.T, mailer *recordingMailer) (*voter.Service, *voter.MemoryStore, *regstore.MemoryStatusStore) {
	t.Helper()
	voters := voter.NewMemoryStore()
	statuses := regstore.NewMemoryStatusStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := voter.NewService(voters, statuses, mailer, logger, nil)
	return svc, voters, statuses
}

func validRequest() voter.CreateRequest {
	return voter.CreateRequest{
		Email:     "jane.doe@example.com",
		FirstName: "Jane",
		LastName:  "Doe",
		BirthDate: time.Date(1990, time.March, 14, 0, 0, 0, 0, time.UTC),
		Street:    "12 Elm Street",
		City:      "Springfield",
		State:     "IL",
		ZipCode:   "62701",
	}
}

func TestCreate_SeedsUncheckedStatusAndSendsWelcome(t *testing.T) {
	mailer := &recordingMailer{}
	svc, _, statuses := newService(t, mailer)

	now := time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)
	ctx := requestcontext.WithTime(context.Background(), now)

	created, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, now, created.CreatedAt)

	status, err := statuses.GetCurrent(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusUnchecked, status.Code)
	assert.True(t, status.CheckedAt.IsZero())

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, created.ID, mailer.sent[0].ID)
	assert.True(t, mailer.welcome[0])
}

func TestCreate_RejectsInvalidEmail(t *testing.T) {
	svc, _, _ := newService(t, &recordingMailer{})

	req := validRequest()
	req.Email = "not-an-email"

	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, dErrors.CodeBadRequest, dErrors.CodeOf(err))
}

func TestCreate_RejectsDuplicateEmail(t *testing.T) {
	svc, _, _ := newService(t, &recordingMailer{})

	_, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), validRequest())
	require.Error(t, err)
	assert.Equal(t, dErrors.CodeConflict, dErrors.CodeOf(err))
}

func TestCreate_DerivesNameFromEmailWhenMissing(t *testing.T) {
	svc, _, _ := newService(t, &recordingMailer{})

	req := validRequest()
	req.FirstName = ""
	req.LastName = ""

	created, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Jane", created.FirstName)
	assert.Equal(t, "Doe", created.LastName)
}

func TestCreate_SurvivesWelcomeEmailFailure(t *testing.T) {
	mailer := &recordingMailer{err: errors.New("smtp down")}
	svc, voters, _ := newService(t, mailer)

	created, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	stored, err := voters.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Email, stored.Email)
}

func TestGet_NotFound(t *testing.T) {
	svc, _, _ := newService(t, &recordingMailer{})

	_, err := svc.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, dErrors.CodeNotFound, dErrors.CodeOf(err))
}

func TestGet_ReturnsStoredVoter(t *testing.T) {
	svc, _, _ := newService(t, &recordingMailer{})

	created, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}
