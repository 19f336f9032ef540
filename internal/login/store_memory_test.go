package login

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"votercheck/pkg/platform/sentinel"
)

func TestMemoryTokenStore_SaveConsume(t *testing.T) {
	store := NewMemoryTokenStore()

	require.NoError(t, store.Save(context.Background(), "tok", "voter-1", time.Minute))

	voterID, err := store.Consume(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "voter-1", voterID)

	_, err = store.Consume(context.Background(), "tok")
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestMemoryTokenStore_Expiry(t *testing.T) {
	store := NewMemoryTokenStore()

	current := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }

	require.NoError(t, store.Save(context.Background(), "tok", "voter-1", 15*time.Minute))

	current = current.Add(16 * time.Minute)
	_, err := store.Consume(context.Background(), "tok")
	assert.ErrorIs(t, err, sentinel.ErrExpired)
}
