// Package totp implements RFC 6238 time-based one-time passwords on top of
// RFC 4226 HOTP, plus the base32 secret representation and otpauth
// provisioning URI used for authenticator-app enrollment.
package totp

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha1"
	"encoding/base32"
	"encoding/binary"
	"fmt"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultDigits = 6
	DefaultStep   = 30 * time.Second
	DefaultWindow = 1
)

var b32 = base32.StdEncoding.WithPadding(base32.NoPadding)

// Secret is a freshly generated TOTP secret together with the otpauth URI
// an authenticator app consumes (the QR image itself is rendered elsewhere).
type Secret struct {
	Base32          string
	ProvisioningURI string
}

// GenerateSecret creates a random secret of the given byte length and its
// provisioning URI for the given account label and issuer.
func GenerateSecret(length int, label, issuer string) (*Secret, error) {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("failed to generate totp secret: %w", err)
	}

	encoded := b32.EncodeToString(buf)
	uri := fmt.Sprintf("otpauth://totp/%s?secret=%s&issuer=%s",
		url.PathEscape(label), encoded, url.QueryEscape(issuer))

	return &Secret{Base32: encoded, ProvisioningURI: uri}, nil
}

// Verify checks code against the secret at the current time with default
// step, window and digit count.
func Verify(secretBase32, code string) bool {
	return VerifyAt(secretBase32, code, time.Now(), DefaultWindow, DefaultStep)
}

// VerifyAt accepts the code if it matches any counter within ±window steps
// of the one derived from at, tolerating that much clock skew between the
// server and the authenticator device.
func VerifyAt(secretBase32, code string, at time.Time, window int, step time.Duration) bool {
	key, err := DecodeSecret(secretBase32)
	if err != nil {
		return false
	}

	counter := at.Unix() / int64(step/time.Second)

	// Codes compare as equal-length zero-padded strings.
	padded := strings.TrimSpace(code)
	for len(padded) < DefaultDigits {
		padded = "0" + padded
	}
	for w := -window; w <= window; w++ {
		c := counter + int64(w)
		if c < 0 {
			continue
		}
		if hotp(key, uint64(c), DefaultDigits) == padded {
			return true
		}
	}
	return false
}

// GenerateCode returns the code for the secret at the given time.
func GenerateCode(secretBase32 string, at time.Time) (string, error) {
	key, err := DecodeSecret(secretBase32)
	if err != nil {
		return "", err
	}
	counter := uint64(at.Unix() / int64(DefaultStep/time.Second))
	return hotp(key, counter, DefaultDigits), nil
}

// DecodeSecret decodes a base32 secret, tolerating lowercase input and
// trailing padding.
func DecodeSecret(s string) ([]byte, error) {
	s = strings.TrimRight(strings.ToUpper(strings.TrimSpace(s)), "=")
	return b32.DecodeString(s)
}

// hotp is the RFC 4226 derivation: HMAC-SHA1 over the big-endian counter,
// dynamic truncation to a 31-bit integer, reduced mod 10^digits.
func hotp(key []byte, counter uint64, digits int) string {
	var msg [8]byte
	binary.BigEndian.PutUint64(msg[:], counter)

	mac := hmac.New(sha1.New, key)
	mac.Write(msg[:])
	sum := mac.Sum(nil)

	offset := sum[len(sum)-1] & 0x0f
	code := binary.BigEndian.Uint32(sum[offset:offset+4]) & 0x7fffffff

	mod := uint32(1)
	for i := 0; i < digits; i++ {
		mod *= 10
	}

	return fmt.Sprintf("%0*d", digits, code%mod)
}
