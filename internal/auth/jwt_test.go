package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTVerifierRoundTrip(t *testing.T) {
	tok, err := SignToken("s3cret", "user-77", time.Now().Add(time.Hour))
	require.NoError(t, err)

	uid, err := NewJWTVerifier("s3cret").Verify(context.Background(), tok)
	require.NoError(t, err)
	assert.Equal(t, "user-77", uid)
}

func TestJWTVerifierWrongSecret(t *testing.T) {
	tok, err := SignToken("s3cret", "user-77", time.Now().Add(time.Hour))
	require.NoError(t, err)

	_, err = NewJWTVerifier("other").Verify(context.Background(), tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTVerifierExpired(t *testing.T) {
	tok, err := SignToken("s3cret", "user-77", time.Now().Add(-time.Minute))
	require.NoError(t, err)

	_, err = NewJWTVerifier("s3cret").Verify(context.Background(), tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTVerifierGarbage(t *testing.T) {
	_, err := NewJWTVerifier("s3cret").Verify(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTVerifierMissingUserID(t *testing.T) {
	tok, err := SignToken("s3cret", "", time.Now().Add(time.Hour))
	require.NoError(t, err)

	_, err = NewJWTVerifier("s3cret").Verify(context.Background(), tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
