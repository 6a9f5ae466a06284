package domain

//go:generate mockgen -destination=../../mocks/mock_account_store.go -package=mocks github.com/Marianaberrio/TendenciasBackend/internal/auth/domain AccountStore
//go:generate mockgen -destination=../../mocks/mock_refresh_token_store.go -package=mocks github.com/Marianaberrio/TendenciasBackend/internal/auth/domain RefreshTokenStore
//go:generate mockgen -destination=../../mocks/mock_password_reset_store.go -package=mocks github.com/Marianaberrio/TendenciasBackend/internal/auth/domain PasswordResetStore

import "context"

// AccountStore is the persistence capability set the auth core needs for
// accounts. Lookups return (nil, nil) when no row matches so callers can
// fold "unknown user" into the generic credentials failure.
type AccountStore interface {
	GetByUsername(ctx context.Context, username string) (*Account, error)
	GetByID(ctx context.Context, id string) (*Account, error)
	Create(ctx context.Context, account *Account) error
	Delete(ctx context.Context, id string) (bool, error)
	UpdatePasswordHash(ctx context.Context, id, hash string) error

	IncrementFailedCount(ctx context.Context, id string) error
	ResetFailedCount(ctx context.Context, id string) error
	IncrementMFAFailedCount(ctx context.Context, id string) error
	ResetMFAFailedCount(ctx context.Context, id string) error

	SetMFASecret(ctx context.Context, id, secretBase32 string) error
	EnableMFA(ctx context.Context, id, method string, recoveryHashes []string) error
	DisableMFA(ctx context.Context, id string) error
	UpdateRecoveryCodeHashes(ctx context.Context, id string, hashes []string) error
}

type RefreshTokenStore interface {
	Store(ctx context.Context, rt *RefreshToken) error
	// GetValidByHash returns the record only if it exists, is unrevoked
	// and unexpired; (nil, nil) otherwise.
	GetValidByHash(ctx context.Context, hash string) (*RefreshToken, error)
	Revoke(ctx context.Context, hash string) error
	RevokeByID(ctx context.Context, id, accountID string) error
	RevokeAllForAccount(ctx context.Context, accountID string) error
	ListActiveByAccount(ctx context.Context, accountID string) ([]RefreshToken, error)
}

type PasswordResetStore interface {
	Insert(ctx context.Context, pr *PasswordReset) error
	// Consume marks the matching unused, unexpired record as used and
	// reports whether one existed. A consumed record never matches again.
	Consume(ctx context.Context, accountID, hash string) (bool, error)
}
