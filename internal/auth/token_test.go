package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mvp90terminal/internal/intel"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func TestTokenRoundTrip(t *testing.T) {
	c := &clock{t: time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)}
	tokens, err := NewTokens("s3cret", time.Hour, c.now)
	require.NoError(t, err)

	raw, err := tokens.Issue("session-1", Identity{Username: "ana", Role: intel.RoleAnalyst})
	require.NoError(t, err)

	claims, err := tokens.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, "session-1", claims.SessionID())
	assert.Equal(t, intel.RoleAnalyst, claims.Role)
	assert.Equal(t, "ana", claims.Username)
}

func TestTokenExpires(t *testing.T) {
	c := &clock{t: time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)}
	tokens, err := NewTokens("s3cret", time.Hour, c.now)
	require.NoError(t, err)
	raw, err := tokens.Issue("session-1", DemoLogin())
	require.NoError(t, err)

	c.t = c.t.Add(2 * time.Hour)
	_, err = tokens.Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenRejectsForeignSignatureAndAlg(t *testing.T) {
	mine, err := NewTokens("mine", time.Hour, nil)
	require.NoError(t, err)
	theirs, err := NewTokens("theirs", time.Hour, nil)
	require.NoError(t, err)

	raw, err := theirs.Issue("session-1", DemoLogin())
	require.NoError(t, err)
	_, err = mine.Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "x"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = mine.Verify(unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = mine.Verify("garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewTokensValidates(t *testing.T) {
	_, err := NewTokens("", time.Hour, nil)
	assert.Error(t, err)
	_, err = NewTokens("s", 0, nil)
	assert.Error(t, err)
}
