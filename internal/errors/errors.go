package errors

import (
	"errors"
)

var (
	ErrTokenMalformed      = errors.New("token malformed")
	ErrTokenBadSignature   = errors.New("token signature invalid")
	ErrTokenExpired        = errors.New("token expired")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrAccountLocked       = errors.New("account locked")
	ErrAccountNotFound     = errors.New("account not found")
	ErrUsernameTaken       = errors.New("username already in use")
	ErrMFAChallengeInvalid = errors.New("mfa challenge invalid")
	ErrMFACodeInvalid      = errors.New("mfa code invalid")
	ErrMFANotEnabled       = errors.New("mfa not enabled")
	ErrMFANotConfigured    = errors.New("mfa secret not configured")
	ErrRefreshInvalid      = errors.New("refresh token invalid")
	ErrResetTokenInvalid   = errors.New("reset token invalid")
	ErrVerifyFailed        = errors.New("verification failed")
)
