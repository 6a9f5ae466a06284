package service

import (
	"context"
	"time"

	"github.com/Marianaberrio/TendenciasBackend/internal/auth/domain"
)

// LockoutTracker enforces the timed lock on repeated password failures.
// The counter increment and the threshold check run in a single store
// statement, so concurrent failures may race on the exact attempt count
// but the lock always eventually engages.
type LockoutTracker struct {
	store domain.AccountStore
}

func NewLockoutTracker(store domain.AccountStore) *LockoutTracker {
	return &LockoutTracker{store: store}
}

func (lt *LockoutTracker) OnFailure(ctx context.Context, accountID string) error {
	return lt.store.IncrementFailedCount(ctx, accountID)
}

func (lt *LockoutTracker) OnSuccess(ctx context.Context, accountID string) error {
	return lt.store.ResetFailedCount(ctx, accountID)
}

func (lt *LockoutTracker) IsLocked(acc *domain.Account) bool {
	return acc.LockedUntil != nil && acc.LockedUntil.After(time.Now())
}
