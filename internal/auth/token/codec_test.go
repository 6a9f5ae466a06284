package token

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	autherror "github.com/Marianaberrio/TendenciasBackend/internal/errors"
)

func signedTestToken(t *testing.T, c *Codec, ttl time.Duration) string {
	t.Helper()

	raw, err := c.Sign(Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "acc-1"},
		Username:         "mariana",
		Purpose:          PurposeAccess,
		MFAEnabled:       true,
		MFAMethod:        "TOTP",
	}, ttl)
	require.NoError(t, err)

	return raw
}

func TestCodec_RoundTrip(t *testing.T) {
	c := NewCodec("test-secret")

	raw := signedTestToken(t, c, time.Minute)

	claims, err := c.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, "acc-1", claims.Subject)
	assert.Equal(t, "mariana", claims.Username)
	assert.Equal(t, PurposeAccess, claims.Purpose)
	assert.True(t, claims.MFAEnabled)
	assert.Equal(t, "TOTP", claims.MFAMethod)
	require.NotNil(t, claims.IssuedAt)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func TestCodec_WireFormat(t *testing.T) {
	c := NewCodec("test-secret")

	raw := signedTestToken(t, c, time.Minute)

	parts := strings.Split(raw, ".")
	require.Len(t, parts, 3)
	assert.NotContains(t, raw, "=")

	header, err := base64.RawURLEncoding.DecodeString(parts[0])
	require.NoError(t, err)
	assert.Contains(t, string(header), `"alg":"HS256"`)
	assert.Contains(t, string(header), `"typ":"TOKEN"`)
}

func TestCodec_TamperedSignature(t *testing.T) {
	c := NewCodec("test-secret")

	raw := signedTestToken(t, c, time.Minute)

	// Flip the last signature character to another base64url character so
	// the segment still decodes.
	flipped := byte('A')
	if raw[len(raw)-1] == 'A' {
		flipped = 'B'
	}
	tampered := raw[:len(raw)-1] + string(flipped)

	_, err := c.Verify(tampered)
	assert.ErrorIs(t, err, autherror.ErrTokenBadSignature)
}

func TestCodec_WrongSecret(t *testing.T) {
	raw := signedTestToken(t, NewCodec("test-secret"), time.Minute)

	_, err := NewCodec("other-secret").Verify(raw)
	assert.ErrorIs(t, err, autherror.ErrTokenBadSignature)
}

func TestCodec_Malformed(t *testing.T) {
	c := NewCodec("test-secret")

	for _, raw := range []string{"", "garbage", "a.b", "!!.!!.!!"} {
		_, err := c.Verify(raw)
		assert.ErrorIs(t, err, autherror.ErrTokenMalformed, "input %q", raw)
	}
}

func TestCodec_Expiry(t *testing.T) {
	c := NewCodec("test-secret")

	raw := signedTestToken(t, c, time.Second)

	_, err := c.Verify(raw)
	require.NoError(t, err, "token should verify right after signing")

	time.Sleep(2 * time.Second)

	_, err = c.Verify(raw)
	assert.ErrorIs(t, err, autherror.ErrTokenExpired)
}

func TestCodec_NoTTL(t *testing.T) {
	c := NewCodec("test-secret")

	raw := signedTestToken(t, c, 0)

	claims, err := c.Verify(raw)
	require.NoError(t, err)
	assert.Nil(t, claims.ExpiresAt)
}

func TestCodec_Decode(t *testing.T) {
	c := NewCodec("test-secret")

	raw := signedTestToken(t, c, time.Minute)

	// Decode ignores the signature entirely.
	claims := NewCodec("other-secret").Decode(raw)
	require.NotNil(t, claims)
	assert.Equal(t, "acc-1", claims.Subject)
	require.NotNil(t, claims.ExpiresAt)

	assert.Nil(t, c.Decode("not a token"))
}
