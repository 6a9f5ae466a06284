package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Marianaberrio/TendenciasBackend/internal/auth/domain"
	"github.com/Marianaberrio/TendenciasBackend/internal/auth/dto"
	"github.com/Marianaberrio/TendenciasBackend/internal/auth/service"
	"github.com/Marianaberrio/TendenciasBackend/internal/auth/token"
	autherror "github.com/Marianaberrio/TendenciasBackend/internal/errors"
)

// memRefreshStore is an in-memory RefreshTokenStore so rotation behaviour
// can be exercised end to end without a database.
type memRefreshStore struct {
	mu     sync.Mutex
	tokens map[string]*domain.RefreshToken
}

func newMemRefreshStore() *memRefreshStore {
	return &memRefreshStore{tokens: make(map[string]*domain.RefreshToken)}
}

func (s *memRefreshStore) Store(_ context.Context, rt *domain.RefreshToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *rt
	s.tokens[rt.TokenHash] = &cp
	return nil
}

func (s *memRefreshStore) GetValidByHash(_ context.Context, hash string) (*domain.RefreshToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rt, ok := s.tokens[hash]
	if !ok || rt.RevokedAt != nil || rt.ExpiresAt.Before(time.Now()) {
		return nil, nil
	}
	cp := *rt
	return &cp, nil
}

func (s *memRefreshStore) Revoke(_ context.Context, hash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rt, ok := s.tokens[hash]; ok && rt.RevokedAt == nil {
		now := time.Now()
		rt.RevokedAt = &now
	}
	return nil
}

func (s *memRefreshStore) RevokeByID(_ context.Context, id, accountID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rt := range s.tokens {
		if rt.ID == id && rt.AccountID == accountID && rt.RevokedAt == nil {
			now := time.Now()
			rt.RevokedAt = &now
		}
	}
	return nil
}

func (s *memRefreshStore) RevokeAllForAccount(_ context.Context, accountID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rt := range s.tokens {
		if rt.AccountID == accountID && rt.RevokedAt == nil {
			now := time.Now()
			rt.RevokedAt = &now
		}
	}
	return nil
}

func (s *memRefreshStore) ListActiveByAccount(_ context.Context, accountID string) ([]domain.RefreshToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.RefreshToken
	for _, rt := range s.tokens {
		if rt.AccountID == accountID && rt.RevokedAt == nil && rt.ExpiresAt.After(time.Now()) {
			out = append(out, *rt)
		}
	}
	return out, nil
}

func newTestSessionManager(store domain.RefreshTokenStore) *service.SessionManager {
	return service.NewSessionManager("access-test-secret", "refresh-test-secret",
		15*time.Minute, 24*time.Hour, store)
}

func TestSessionManager_AccessTokenRoundTrip(t *testing.T) {
	sm := newTestSessionManager(newMemRefreshStore())
	acc := &domain.Account{ID: "acc-1", Username: "mariana", MFAEnabled: true, MFAMethod: "TOTP"}

	raw, err := sm.IssueAccess(acc)
	assert.NoError(t, err)

	claims, err := sm.VerifyAccess(raw)
	assert.NoError(t, err)
	assert.Equal(t, "acc-1", claims.Subject)
	assert.Equal(t, "mariana", claims.Username)
	assert.Equal(t, token.PurposeAccess, claims.Purpose)
	assert.True(t, claims.MFAEnabled)
}

func TestSessionManager_VerifyAccessRejectsRefreshToken(t *testing.T) {
	store := newMemRefreshStore()
	sm := newTestSessionManager(store)

	raw, err := sm.IssueRefresh(context.Background(), "acc-1", dto.ClientMetadata{})
	assert.NoError(t, err)

	// Different key, so the signature already fails.
	_, err = sm.VerifyAccess(raw)
	assert.Error(t, err)

	// Same key but wrong purpose must fail too.
	same := service.NewSessionManager("shared", "shared", time.Minute, time.Hour, store)
	raw, err = same.IssueRefresh(context.Background(), "acc-1", dto.ClientMetadata{})
	assert.NoError(t, err)
	_, err = same.VerifyAccess(raw)
	assert.ErrorIs(t, err, autherror.ErrTokenBadSignature)
}

func TestSessionManager_RefreshLifecycle(t *testing.T) {
	store := newMemRefreshStore()
	sm := newTestSessionManager(store)
	ctx := context.Background()
	meta := dto.ClientMetadata{IPAddress: "10.0.0.1", UserAgent: "test-agent"}

	raw, err := sm.IssueRefresh(ctx, "acc-1", meta)
	assert.NoError(t, err)

	claims, err := sm.ValidateRefresh(ctx, raw)
	assert.NoError(t, err)
	assert.Equal(t, "acc-1", claims.Subject)

	sessions, err := sm.Sessions(ctx, "acc-1")
	assert.NoError(t, err)
	assert.Len(t, sessions, 1)
	assert.Equal(t, "10.0.0.1", sessions[0].IPAddress)
	assert.Equal(t, "test-agent", sessions[0].UserAgent)
}

func TestSessionManager_RotateInvalidatesOriginal(t *testing.T) {
	store := newMemRefreshStore()
	sm := newTestSessionManager(store)
	ctx := context.Background()

	original, err := sm.IssueRefresh(ctx, "acc-1", dto.ClientMetadata{})
	assert.NoError(t, err)

	rotated, claims, err := sm.Rotate(ctx, original, dto.ClientMetadata{})
	assert.NoError(t, err)
	assert.Equal(t, "acc-1", claims.Subject)
	assert.NotEqual(t, original, rotated)

	// The original token still verifies cryptographically but its record is
	// revoked, so replaying it must fail.
	_, err = sm.ValidateRefresh(ctx, original)
	assert.ErrorIs(t, err, autherror.ErrRefreshInvalid)

	_, _, err = sm.Rotate(ctx, original, dto.ClientMetadata{})
	assert.ErrorIs(t, err, autherror.ErrRefreshInvalid)

	// The replacement stays valid.
	_, err = sm.ValidateRefresh(ctx, rotated)
	assert.NoError(t, err)
}

func TestSessionManager_ValidateRefreshRejectsGarbage(t *testing.T) {
	sm := newTestSessionManager(newMemRefreshStore())

	_, err := sm.ValidateRefresh(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, autherror.ErrRefreshInvalid)
}

func TestSessionManager_ValidateRefreshRejectsUnknownToken(t *testing.T) {
	store := newMemRefreshStore()
	sm := newTestSessionManager(store)
	ctx := context.Background()

	raw, err := sm.IssueRefresh(ctx, "acc-1", dto.ClientMetadata{})
	assert.NoError(t, err)

	// Forging a store wipe: a signed token without a live record is dead.
	assert.NoError(t, sm.RevokeAll(ctx, "acc-1"))
	_, err = sm.ValidateRefresh(ctx, raw)
	assert.ErrorIs(t, err, autherror.ErrRefreshInvalid)
}

func TestSessionManager_RevokeSpecificSession(t *testing.T) {
	store := newMemRefreshStore()
	sm := newTestSessionManager(store)
	ctx := context.Background()

	first, err := sm.IssueRefresh(ctx, "acc-1", dto.ClientMetadata{UserAgent: "laptop"})
	assert.NoError(t, err)
	second, err := sm.IssueRefresh(ctx, "acc-1", dto.ClientMetadata{UserAgent: "phone"})
	assert.NoError(t, err)

	sessions, err := sm.Sessions(ctx, "acc-1")
	assert.NoError(t, err)
	assert.Len(t, sessions, 2)

	var laptopID string
	for _, s := range sessions {
		if s.UserAgent == "laptop" {
			laptopID = s.ID
		}
	}
	assert.NoError(t, sm.RevokeSession(ctx, laptopID, "acc-1"))

	_, err = sm.ValidateRefresh(ctx, first)
	assert.ErrorIs(t, err, autherror.ErrRefreshInvalid)
	_, err = sm.ValidateRefresh(ctx, second)
	assert.NoError(t, err)
}

func TestSessionManager_RevokeIsIdempotent(t *testing.T) {
	store := newMemRefreshStore()
	sm := newTestSessionManager(store)
	ctx := context.Background()

	raw, err := sm.IssueRefresh(ctx, "acc-1", dto.ClientMetadata{})
	assert.NoError(t, err)

	assert.NoError(t, sm.Revoke(ctx, raw))
	assert.NoError(t, sm.Revoke(ctx, raw))
	assert.NoError(t, sm.Revoke(ctx, "never-issued"))
}
