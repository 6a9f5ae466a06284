package constant

import "time"

const (
	// Lockout policy: consecutive password failures before a timed lock,
	// and how long the lock holds.
	LoginMaxAttempts = 5
	LockDuration     = 15 * time.Minute

	// Recovery codes issued when MFA is enabled.
	RecoveryCodeCount = 8
	RecoveryCodeBytes = 5

	// Raw password-reset token size before hex encoding.
	ResetTokenBytes = 24

	// Raw TOTP secret size before base32 encoding.
	TOTPSecretLength = 20

	DefaultMFAMethod = "TOTP"
)
