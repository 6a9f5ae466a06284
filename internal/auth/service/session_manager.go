package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Marianaberrio/TendenciasBackend/internal/auth/domain"
	"github.com/Marianaberrio/TendenciasBackend/internal/auth/dto"
	"github.com/Marianaberrio/TendenciasBackend/internal/auth/token"
	autherror "github.com/Marianaberrio/TendenciasBackend/internal/errors"
)

// SessionManager issues stateless access tokens and store-backed rotating
// refresh tokens. Refresh tokens are persisted as SHA-256 hashes only; a
// raw token leaves this package exactly once, at issuance.
type SessionManager struct {
	accessCodec  *token.Codec
	refreshCodec *token.Codec
	accessTTL    time.Duration
	refreshTTL   time.Duration
	store        domain.RefreshTokenStore
}

func NewSessionManager(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration,
	store domain.RefreshTokenStore) *SessionManager {
	return &SessionManager{
		accessCodec:  token.NewCodec(accessSecret),
		refreshCodec: token.NewCodec(refreshSecret),
		accessTTL:    accessTTL,
		refreshTTL:   refreshTTL,
		store:        store,
	}
}

func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// IssueAccess signs a short-lived access token carrying the account's
// public claims.
func (sm *SessionManager) IssueAccess(acc *domain.Account) (string, error) {
	claims := token.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: acc.ID},
		Username:         acc.Username,
		Purpose:          token.PurposeAccess,
		MFAEnabled:       acc.MFAEnabled,
		MFAMethod:        acc.MFAMethod,
	}
	return sm.accessCodec.Sign(claims, sm.accessTTL)
}

// VerifyAccess validates an access token's signature, expiry and purpose.
func (sm *SessionManager) VerifyAccess(raw string) (*token.Claims, error) {
	claims, err := sm.accessCodec.Verify(raw)
	if err != nil {
		return nil, err
	}
	if claims.Purpose != token.PurposeAccess {
		return nil, autherror.ErrTokenBadSignature
	}
	return claims, nil
}

// IssueRefresh signs a long-lived refresh token bound to the account and
// persists its hash together with the client metadata. The stored expiry is
// taken from the token's own expires-at claim.
func (sm *SessionManager) IssueRefresh(ctx context.Context, accountID string, meta dto.ClientMetadata) (string, error) {
	// The jti keeps two tokens issued in the same second for the same
	// account from hashing identically.
	sessionID := uuid.NewString()
	claims := token.Claims{
		RegisteredClaims: jwt.RegisteredClaims{ID: sessionID, Subject: accountID},
		Purpose:          token.PurposeRefresh,
	}

	raw, err := sm.refreshCodec.Sign(claims, sm.refreshTTL)
	if err != nil {
		return "", err
	}

	decoded := sm.refreshCodec.Decode(raw)
	if decoded == nil || decoded.ExpiresAt == nil {
		return "", fmt.Errorf("issued refresh token has no expiry")
	}

	rt := &domain.RefreshToken{
		ID:        sessionID,
		AccountID: accountID,
		TokenHash: hashToken(raw),
		UserAgent: meta.UserAgent,
		IPAddress: meta.IPAddress,
		ExpiresAt: decoded.ExpiresAt.Time,
		CreatedAt: time.Now(),
	}
	if err := sm.store.Store(ctx, rt); err != nil {
		return "", err
	}

	return raw, nil
}

// ValidateRefresh checks both the token's cryptographic validity and its
// persisted record. A token that verifies but has been revoked, rotated or
// expired in the store fails all the same.
func (sm *SessionManager) ValidateRefresh(ctx context.Context, raw string) (*token.Claims, error) {
	claims, err := sm.refreshCodec.Verify(raw)
	if err != nil || claims.Purpose != token.PurposeRefresh {
		return nil, autherror.ErrRefreshInvalid
	}

	rec, err := sm.store.GetValidByHash(ctx, hashToken(raw))
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, autherror.ErrRefreshInvalid
	}

	return claims, nil
}

// Rotate validates raw, revokes its record and issues a replacement for
// the same account. A refresh token rotates successfully at most once;
// presenting it again afterwards fails, which is the replay detection
// point. If the replacement cannot be persisted the whole rotation fails
// and no new token exists, never two live ones.
func (sm *SessionManager) Rotate(ctx context.Context, raw string, meta dto.ClientMetadata) (string, *token.Claims, error) {
	claims, err := sm.ValidateRefresh(ctx, raw)
	if err != nil {
		return "", nil, err
	}

	if err := sm.store.Revoke(ctx, hashToken(raw)); err != nil {
		return "", nil, fmt.Errorf("failed to revoke token: %w", err)
	}

	newRaw, err := sm.IssueRefresh(ctx, claims.Subject, meta)
	if err != nil {
		return "", nil, fmt.Errorf("failed to store new refresh token: %w", err)
	}

	return newRaw, claims, nil
}

// Revoke marks the token's record revoked. Revoking an unknown or
// already-revoked token is not an error.
func (sm *SessionManager) Revoke(ctx context.Context, raw string) error {
	return sm.store.Revoke(ctx, hashToken(raw))
}

func (sm *SessionManager) RevokeAll(ctx context.Context, accountID string) error {
	return sm.store.RevokeAllForAccount(ctx, accountID)
}

func (sm *SessionManager) RevokeSession(ctx context.Context, sessionID, accountID string) error {
	return sm.store.RevokeByID(ctx, sessionID, accountID)
}

func (sm *SessionManager) Sessions(ctx context.Context, accountID string) ([]domain.RefreshToken, error) {
	return sm.store.ListActiveByAccount(ctx, accountID)
}
