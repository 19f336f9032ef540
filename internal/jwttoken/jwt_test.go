package jwttoken

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "votercheck/pkg/domain-errors"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := New("test-signing-key", "votercheck", time.Hour)

	token, err := svc.Generate("voter-1", "jane.doe@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "voter-1", claims.VoterID)
	assert.Equal(t, "jane.doe@example.com", claims.Email)
	assert.Equal(t, "votercheck", claims.Issuer)
}

func TestValidateRejectsExpired(t *testing.T) {
	svc := New("test-signing-key", "votercheck", -time.Minute)

	token, err := svc.Generate("voter-1", "jane.doe@example.com")
	require.NoError(t, err)

	_, err = svc.Validate(token)
	require.Error(t, err)
	assert.Equal(t, dErrors.CodeUnauthorized, dErrors.CodeOf(err))
}

func TestValidateRejectsWrongKey(t *testing.T) {
	issuer := New("key-one", "votercheck", time.Hour)
	verifier := New("key-two", "votercheck", time.Hour)

	token, err := issuer.Generate("voter-1", "jane.doe@example.com")
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.Error(t, err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	svc := New("test-signing-key", "votercheck", time.Hour)
	_, err := svc.Validate("not-a-token")
	assert.Error(t, err)
}
