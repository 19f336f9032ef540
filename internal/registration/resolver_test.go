package registration_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"votercheck/internal/domain"
	"votercheck/internal/registration"
	"votercheck/internal/registration/authority"
	"votercheck/internal/registration/mocks"
	"votercheck/internal/registration/store"
	"votercheck/pkg/requestcontext"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fullIdentity() domain.Identity {
	return domain.Identity{
		FirstName: "Jane",
		LastName:  "Doe",
		BirthDate: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		Street:    "123 Main St",
		City:      "Springfield",
		State:     "IL",
		ZipCode:   "62704",
	}
}

func testVoter() domain.Voter {
	return domain.Voter{
		ID:        "voter-1",
		Email:     "jane.doe@example.com",
		FirstName: "Jane",
		LastName:  "Doe",
		BirthDate: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		Street:    "123 Main St",
		City:      "Springfield",
		State:     "IL",
		ZipCode:   "62704",
	}
}

func newMocks(t *testing.T) (*mocks.MockClient, *mocks.MockStatusStore, *registration.Resolver) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	client := mocks.NewMockClient(ctrl)
	statuses := mocks.NewMockStatusStore(ctrl)
	resolver := registration.NewResolver(client, statuses, discardLogger(), nil)
	return client, statuses, resolver
}

func TestResolveAnonymousIncompleteIdentitySkipsAuthority(t *testing.T) {
	_, statuses, resolver := newMocks(t)

	identity := fullIdentity()
	identity.Street = "" // missing a required lookup field

	statuses.EXPECT().NewEphemeral(identity).Return(store.Ephemeral(identity))
	// No Lookup and no Upsert expectations: any such call fails the test.

	status, err := resolver.Resolve(context.Background(), registration.ForIdentity(identity), false)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusLookupFailed, status.Code)
	assert.Equal(t, "incomplete identity", status.Detail[registration.DetailKeyReason])
	assert.False(t, status.CheckedAt.IsZero())
}

func TestResolveUncheckedTriggersExactlyOneLookup(t *testing.T) {
	client, statuses, resolver := newMocks(t)
	voter := testVoter()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ctx := requestcontext.WithTime(context.Background(), now)

	statuses.EXPECT().GetCurrent(gomock.Any(), voter.ID).
		Return(domain.RegistrationStatus{VoterID: voter.ID, Code: domain.StatusUnchecked}, nil)
	client.EXPECT().Lookup(gomock.Any(), voter.Identity()).
		Return(authority.Match(map[string]string{"polling_place": "City Hall"}), nil).
		Times(1)
	statuses.EXPECT().Upsert(gomock.Any(), voter.ID, domain.StatusRegistered,
		map[string]string{"polling_place": "City Hall"}, now).
		DoAndReturn(func(_ context.Context, voterID string, code domain.StatusCode, detail map[string]string, checkedAt time.Time) (domain.RegistrationStatus, error) {
			return domain.RegistrationStatus{ID: "status-1", VoterID: voterID, Code: code, Detail: detail, CheckedAt: checkedAt}, nil
		})

	status, err := resolver.Resolve(ctx, registration.ForVoter(voter), false)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRegistered, status.Code)
	assert.Equal(t, "City Hall", status.Detail["polling_place"])
	assert.True(t, status.CheckedAt.Equal(now))
}

func TestResolveCachedStatusSkipsLookup(t *testing.T) {
	_, statuses, resolver := newMocks(t)
	voter := testVoter()

	stored := domain.RegistrationStatus{
		ID:        "status-1",
		VoterID:   voter.ID,
		Code:      domain.StatusRegistered,
		Detail:    map[string]string{"polling_place": "City Hall"},
		CheckedAt: time.Date(2024, 11, 5, 8, 0, 0, 0, time.UTC), // stale is fine
	}
	statuses.EXPECT().GetCurrent(gomock.Any(), voter.ID).Return(stored, nil)

	status, err := resolver.Resolve(context.Background(), registration.ForVoter(voter), false)
	require.NoError(t, err)
	assert.Equal(t, stored, status, "cached status must be returned unchanged")
}

func TestResolveFailedStatusDoesNotAutoRetry(t *testing.T) {
	// LOOKUP_FAILED and PENDING wait for an explicit force; only UNCHECKED
	// refreshes on plain access.
	for _, code := range []domain.StatusCode{domain.StatusLookupFailed, domain.StatusPending} {
		_, statuses, resolver := newMocks(t)
		voter := testVoter()

		statuses.EXPECT().GetCurrent(gomock.Any(), voter.ID).
			Return(domain.RegistrationStatus{VoterID: voter.ID, Code: code, CheckedAt: time.Now()}, nil)

		status, err := resolver.Resolve(context.Background(), registration.ForVoter(voter), false)
		require.NoError(t, err)
		assert.Equal(t, code, status.Code)
	}
}

func TestResolveForceRefreshAdvancesTimestamp(t *testing.T) {
	client, statuses, resolver := newMocks(t)
	voter := testVoter()
	previous := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ctx := requestcontext.WithTime(context.Background(), now)

	statuses.EXPECT().GetCurrent(gomock.Any(), voter.ID).
		Return(domain.RegistrationStatus{VoterID: voter.ID, Code: domain.StatusRegistered, CheckedAt: previous}, nil)
	client.EXPECT().Lookup(gomock.Any(), voter.Identity()).Return(authority.NoMatch(), nil).Times(1)
	statuses.EXPECT().Upsert(gomock.Any(), voter.ID, domain.StatusNotRegistered, map[string]string{}, now).
		Return(domain.RegistrationStatus{ID: "status-1", VoterID: voter.ID, Code: domain.StatusNotRegistered, CheckedAt: now}, nil)

	status, err := resolver.Resolve(ctx, registration.ForVoter(voter), true)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusNotRegistered, status.Code)
	assert.False(t, status.CheckedAt.Before(previous))
}

func TestResolveAuthorityFaultBecomesLookupFailed(t *testing.T) {
	client, statuses, resolver := newMocks(t)
	voter := testVoter()

	statuses.EXPECT().GetCurrent(gomock.Any(), voter.ID).
		Return(domain.RegistrationStatus{VoterID: voter.ID, Code: domain.StatusUnchecked}, nil)
	client.EXPECT().Lookup(gomock.Any(), gomock.Any()).
		Return(authority.Outcome{}, errors.New("dial tcp: i/o timeout"))
	statuses.EXPECT().Upsert(gomock.Any(), voter.ID, domain.StatusLookupFailed, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, voterID string, code domain.StatusCode, detail map[string]string, checkedAt time.Time) (domain.RegistrationStatus, error) {
			assert.NotEmpty(t, detail[registration.DetailKeyErrorRef])
			assert.NotContains(t, detail[registration.DetailKeyErrorRef], "i/o timeout")
			return domain.RegistrationStatus{VoterID: voterID, Code: code, Detail: detail, CheckedAt: checkedAt}, nil
		})

	status, err := resolver.Resolve(context.Background(), registration.ForVoter(voter), false)
	require.NoError(t, err, "authority faults must not surface as errors")
	assert.Equal(t, domain.StatusLookupFailed, status.Code)
}

func TestResolveStorageErrorsPropagate(t *testing.T) {
	t.Run("read failure", func(t *testing.T) {
		_, statuses, resolver := newMocks(t)
		voter := testVoter()
		statuses.EXPECT().GetCurrent(gomock.Any(), voter.ID).
			Return(domain.RegistrationStatus{}, errors.New("connection pool exhausted"))

		_, err := resolver.Resolve(context.Background(), registration.ForVoter(voter), false)
		assert.Error(t, err)
	})

	t.Run("write failure", func(t *testing.T) {
		client, statuses, resolver := newMocks(t)
		voter := testVoter()
		statuses.EXPECT().GetCurrent(gomock.Any(), voter.ID).
			Return(domain.RegistrationStatus{VoterID: voter.ID, Code: domain.StatusUnchecked}, nil)
		client.EXPECT().Lookup(gomock.Any(), gomock.Any()).Return(authority.NoMatch(), nil)
		statuses.EXPECT().Upsert(gomock.Any(), voter.ID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(domain.RegistrationStatus{}, errors.New("disk full"))

		_, err := resolver.Resolve(context.Background(), registration.ForVoter(voter), false)
		assert.Error(t, err)
	})
}

func TestResolveAnonymousIsNeverPersisted(t *testing.T) {
	client, statuses, resolver := newMocks(t)
	identity := fullIdentity()

	// No GetCurrent and no Upsert expectations across repeated calls.
	statuses.EXPECT().NewEphemeral(identity).Return(store.Ephemeral(identity)).Times(3)
	client.EXPECT().Lookup(gomock.Any(), identity).
		Return(authority.Match(map[string]string{"polling_place": "City Hall"}), nil).
		Times(3)

	for i := 0; i < 3; i++ {
		status, err := resolver.Resolve(context.Background(), registration.ForIdentity(identity), false)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusRegistered, status.Code)
		assert.True(t, status.Ephemeral())
	}
}

// clientFunc adapts a function to the authority.Client interface for tests
// that need concurrency-safe custom behavior.
type clientFunc func(ctx context.Context, identity domain.Identity) (authority.Outcome, error)

func (f clientFunc) Lookup(ctx context.Context, identity domain.Identity) (authority.Outcome, error) {
	return f(ctx, identity)
}

func TestResolveConcurrentForcedRefreshes(t *testing.T) {
	statuses := store.NewMemoryStatusStore()
	var calls atomic.Int64
	client := clientFunc(func(_ context.Context, _ domain.Identity) (authority.Outcome, error) {
		if calls.Add(1)%2 == 0 {
			return authority.Match(map[string]string{"polling_place": "City Hall"}), nil
		}
		return authority.NoMatch(), nil
	})
	resolver := registration.NewResolver(client, statuses, discardLogger(), nil)
	voter := testVoter()

	const callers = 20
	results := make([]domain.RegistrationStatus, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			status, err := resolver.Resolve(context.Background(), registration.ForVoter(voter), true)
			assert.NoError(t, err)
			results[idx] = status
		}(i)
	}
	wg.Wait()

	assert.EqualValues(t, callers, calls.Load(), "every forced resolve performs its own lookup")

	// The store holds exactly one of the two outcomes in full.
	final, err := statuses.GetCurrent(context.Background(), voter.ID)
	require.NoError(t, err)
	switch final.Code {
	case domain.StatusRegistered:
		assert.Equal(t, "City Hall", final.Detail["polling_place"])
	case domain.StatusNotRegistered:
		assert.Empty(t, final.Detail)
	default:
		t.Fatalf("unexpected final code %s", final.Code)
	}

	// Each caller observed its own lookup's result, which is allowed to
	// differ from what persisted last.
	for _, result := range results {
		assert.Contains(t, []domain.StatusCode{domain.StatusRegistered, domain.StatusNotRegistered}, result.Code)
	}
}
