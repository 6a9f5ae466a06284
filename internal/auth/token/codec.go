// Package token builds and verifies the compact signed tokens used for
// access, refresh and MFA-challenge credentials. The wire format is three
// dot-joined base64url segments (header, payload, HMAC-SHA256 signature)
// with a fixed {"alg":"HS256","typ":"TOKEN"} header.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	autherror "github.com/Marianaberrio/TendenciasBackend/internal/errors"
)

const headerType = "TOKEN"

// Codec signs and verifies tokens against a single HMAC secret. One codec
// is constructed per purpose so the three token families never share a key.
type Codec struct {
	secret []byte
}

func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

// Sign stamps issued-at on the claims, plus expires-at when ttl is
// positive, and returns the encoded token.
func (c *Codec) Sign(claims Claims, ttl time.Duration) (string, error) {
	now := time.Now()
	claims.IssuedAt = jwt.NewNumericDate(now)
	if ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tok.Header["typ"] = headerType

	return tok.SignedString(c.secret)
}

// Verify checks the signature with a constant-time comparison and the
// expiry, and tells the two failures apart: callers need to distinguish a
// tampered token from a merely stale one.
func (c *Codec) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherror.ErrTokenBadSignature
		}
		return c.secret, nil
	})

	switch {
	case err == nil && tok.Valid:
		return claims, nil
	case errors.Is(err, jwt.ErrTokenMalformed):
		return nil, autherror.ErrTokenMalformed
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, autherror.ErrTokenExpired
	default:
		return nil, autherror.ErrTokenBadSignature
	}
}

// Decode reads the payload without checking the signature. It exists for
// local introspection only (e.g. reading a token's own expiry before
// persisting it) and must never gate an authorization decision.
func (c *Codec) Decode(tokenString string) *Claims {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil
	}
	return claims
}
