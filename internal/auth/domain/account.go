package domain

import "time"

type Account struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string

	MFAEnabled         bool
	MFAMethod          string
	MFASecret          string // base32
	RecoveryCodeHashes []string
	MFAFailedCount     int

	FailedCount int
	LockedUntil *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RefreshToken is the persisted record of an issued refresh token. Only the
// SHA-256 hash of the raw token is ever stored; the raw value is returned
// to the caller once and is not recoverable afterwards.
type RefreshToken struct {
	ID        string
	AccountID string
	TokenHash string
	UserAgent string
	IPAddress string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// PasswordReset mirrors RefreshToken for single-use reset tokens: hash
// only, with used_at set exactly once on consumption.
type PasswordReset struct {
	ID        string
	AccountID string
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	UsedAt    *time.Time
}
