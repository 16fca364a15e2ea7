package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, ttl time.Duration) *Service {
	t.Helper()
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	return NewService("admin", hash, "test-signing-key", ttl)
}

func TestLoginAndVerify(t *testing.T) {
	s := newTestService(t, time.Hour)

	token, err := s.Login("admin", "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := s.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", subject)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	s := newTestService(t, time.Hour)

	_, err := s.Login("admin", "wrong")
	assert.Error(t, err)

	_, err = s.Login("someone", "s3cret")
	assert.Error(t, err)
}

func TestVerifyRejectsGarbageAndForeignTokens(t *testing.T) {
	s := newTestService(t, time.Hour)

	_, err := s.Verify("not-a-token")
	assert.Error(t, err)

	other := newTestService(t, time.Hour)
	other.secret = []byte("different-key")
	foreign, err := other.Login("admin", "s3cret")
	require.NoError(t, err)

	_, err = s.Verify(foreign)
	assert.Error(t, err)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	s := newTestService(t, -time.Minute)

	token, err := s.Login("admin", "s3cret")
	require.NoError(t, err)

	_, err = s.Verify(token)
	assert.Error(t, err)
}
