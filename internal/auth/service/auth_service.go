package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Marianaberrio/TendenciasBackend/config"
	"github.com/Marianaberrio/TendenciasBackend/internal/auth/domain"
	"github.com/Marianaberrio/TendenciasBackend/internal/auth/dto"
	"github.com/Marianaberrio/TendenciasBackend/internal/auth/password"
	"github.com/Marianaberrio/TendenciasBackend/internal/auth/token"
	"github.com/Marianaberrio/TendenciasBackend/internal/auth/totp"
	autherror "github.com/Marianaberrio/TendenciasBackend/internal/errors"
	"github.com/Marianaberrio/TendenciasBackend/pkg/constant"
)

// dummyHash is a well-formed digest of no password at all. Login burns a
// scrypt derivation against it when the username is unknown, so that path
// is not distinguishable from a wrong password by response time.
const dummyHash = "scrypt$16384$a3b1c9d8e7f60514a3b1c9d8e7f60514$" +
	"0000000000000000000000000000000000000000000000000000000000000000"

// AuthService orchestrates the login/MFA state machine and the account
// management operations around it.
type AuthService struct {
	accounts domain.AccountStore
	resets   domain.PasswordResetStore
	sessions *SessionManager
	lockout  *LockoutTracker
	hasher   *password.Hasher
	mfaCodec *token.Codec

	mfaChallengeTTL time.Duration
	resetTokenTTL   time.Duration
	issuer          string
}

func NewAuthService(accounts domain.AccountStore, resets domain.PasswordResetStore,
	sessions *SessionManager, lockout *LockoutTracker, hasher *password.Hasher,
	cfg *config.Config) *AuthService {
	return &AuthService{
		accounts:        accounts,
		resets:          resets,
		sessions:        sessions,
		lockout:         lockout,
		hasher:          hasher,
		mfaCodec:        token.NewCodec(cfg.MFAChallengeSecret),
		mfaChallengeTTL: cfg.MFAChallengeTTL,
		resetTokenTTL:   cfg.ResetTokenTTL,
		issuer:          cfg.MFAIssuer,
	}
}

func (s *AuthService) Register(ctx context.Context, input dto.RegisterInput) (*domain.Account, error) {
	existing, err := s.accounts.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, autherror.ErrUsernameTaken
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	acc := &domain.Account{
		ID:           uuid.NewString(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.accounts.Create(ctx, acc); err != nil {
		return nil, err
	}

	return acc, nil
}

// Login is phase one: credentials and lockout. With MFA enabled it stops
// at a purpose-tagged challenge token; otherwise it issues the pair.
func (s *AuthService) Login(ctx context.Context, input dto.LoginInput) (*dto.LoginResult, error) {
	acc, err := s.accounts.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		password.Verify(input.Password, dummyHash)
		return nil, autherror.ErrInvalidCredentials
	}

	if s.lockout.IsLocked(acc) {
		return nil, autherror.ErrAccountLocked
	}

	if !password.Verify(input.Password, acc.PasswordHash) {
		// Counter update must land before the rejection goes out.
		if err := s.lockout.OnFailure(ctx, acc.ID); err != nil {
			return nil, err
		}
		return nil, autherror.ErrInvalidCredentials
	}

	if err := s.lockout.OnSuccess(ctx, acc.ID); err != nil {
		return nil, err
	}

	if acc.MFAEnabled {
		challenge, err := s.mfaCodec.Sign(token.Claims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: acc.ID},
			Username:         acc.Username,
			Purpose:          token.PurposeMFAChallenge,
		}, s.mfaChallengeTTL)
		if err != nil {
			return nil, err
		}

		method := acc.MFAMethod
		if method == "" {
			method = constant.DefaultMFAMethod
		}

		return &dto.LoginResult{
			NeedMFA:        true,
			LoginChallenge: challenge,
			Methods:        []string{method},
		}, nil
	}

	pair, err := s.issuePair(ctx, acc, dto.ClientMetadata{IPAddress: input.IPAddress, UserAgent: input.UserAgent})
	if err != nil {
		return nil, err
	}

	return &dto.LoginResult{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken}, nil
}

// VerifyMFA is phase two: it exchanges a valid challenge plus a current
// TOTP code for the token pair.
func (s *AuthService) VerifyMFA(ctx context.Context, input dto.MFAVerifyInput) (*dto.TokenPair, error) {
	claims, err := s.mfaCodec.Verify(input.LoginChallenge)
	if err != nil || claims.Purpose != token.PurposeMFAChallenge {
		return nil, autherror.ErrMFAChallengeInvalid
	}

	acc, err := s.accounts.GetByID(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, autherror.ErrAccountNotFound
	}
	if !acc.MFAEnabled {
		return nil, autherror.ErrMFANotEnabled
	}

	if !totp.Verify(acc.MFASecret, input.Code) {
		if err := s.accounts.IncrementMFAFailedCount(ctx, acc.ID); err != nil {
			return nil, err
		}
		return nil, autherror.ErrMFACodeInvalid
	}

	if err := s.accounts.ResetMFAFailedCount(ctx, acc.ID); err != nil {
		return nil, err
	}

	return s.issuePair(ctx, acc, dto.ClientMetadata{IPAddress: input.IPAddress, UserAgent: input.UserAgent})
}

// Refresh rotates the presented refresh token and returns a fresh pair.
func (s *AuthService) Refresh(ctx context.Context, input dto.RefreshInput) (*dto.TokenPair, error) {
	meta := dto.ClientMetadata{IPAddress: input.IPAddress, UserAgent: input.UserAgent}
	newRefresh, claims, err := s.sessions.Rotate(ctx, input.RefreshToken, meta)
	if err != nil {
		return nil, err
	}

	acc, err := s.accounts.GetByID(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, autherror.ErrRefreshInvalid
	}

	access, err := s.sessions.IssueAccess(acc)
	if err != nil {
		return nil, err
	}

	return &dto.TokenPair{AccessToken: access, RefreshToken: newRefresh}, nil
}

func (s *AuthService) Logout(ctx context.Context, rawRefresh string) error {
	return s.sessions.Revoke(ctx, rawRefresh)
}

func (s *AuthService) LogoutAll(ctx context.Context, accountID string) error {
	return s.sessions.RevokeAll(ctx, accountID)
}

func (s *AuthService) Me(ctx context.Context, accountID string) (*dto.AccountOutput, error) {
	acc, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, autherror.ErrAccountNotFound
	}

	return &dto.AccountOutput{
		ID:         acc.ID,
		Username:   acc.Username,
		Email:      acc.Email,
		MFAEnabled: acc.MFAEnabled,
		MFAMethod:  acc.MFAMethod,
	}, nil
}

func (s *AuthService) Sessions(ctx context.Context, accountID string) ([]dto.SessionOutput, error) {
	records, err := s.sessions.Sessions(ctx, accountID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.SessionOutput, 0, len(records))
	for _, rt := range records {
		out = append(out, dto.SessionOutput{
			ID:        rt.ID,
			IPAddress: rt.IPAddress,
			UserAgent: rt.UserAgent,
			CreatedAt: rt.CreatedAt,
			ExpiresAt: rt.ExpiresAt,
		})
	}
	return out, nil
}

func (s *AuthService) RevokeSession(ctx context.Context, sessionID, accountID string) error {
	return s.sessions.RevokeSession(ctx, sessionID, accountID)
}

// SetupMFA generates and stores a provisional TOTP secret. MFA stays off
// until the account proves possession via EnableMFA.
func (s *AuthService) SetupMFA(ctx context.Context, accountID string) (*dto.MFASetupOutput, error) {
	acc, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, autherror.ErrAccountNotFound
	}

	label := fmt.Sprintf("%s (%s)", s.issuer, acc.Username)
	secret, err := totp.GenerateSecret(constant.TOTPSecretLength, label, s.issuer)
	if err != nil {
		return nil, err
	}

	if err := s.accounts.SetMFASecret(ctx, acc.ID, secret.Base32); err != nil {
		return nil, err
	}

	return &dto.MFASetupOutput{Base32: secret.Base32, OtpauthURL: secret.ProvisioningURI}, nil
}

// EnableMFA confirms the provisional secret with a current code, switches
// MFA on and returns the recovery codes. The raw codes are shown only
// here; the store keeps their hashes.
func (s *AuthService) EnableMFA(ctx context.Context, accountID, code string) ([]string, error) {
	acc, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, autherror.ErrAccountNotFound
	}
	if acc.MFASecret == "" {
		return nil, autherror.ErrMFANotConfigured
	}

	if !totp.Verify(acc.MFASecret, code) {
		return nil, autherror.ErrMFACodeInvalid
	}

	codes := make([]string, constant.RecoveryCodeCount)
	hashes := make([]string, constant.RecoveryCodeCount)
	for i := range codes {
		buf := make([]byte, constant.RecoveryCodeBytes)
		if _, err := rand.Read(buf); err != nil {
			return nil, err
		}
		codes[i] = hex.EncodeToString(buf)
		hashes[i] = hashToken(codes[i])
	}

	if err := s.accounts.EnableMFA(ctx, acc.ID, constant.DefaultMFAMethod, hashes); err != nil {
		return nil, err
	}

	return codes, nil
}

// DisableMFA turns MFA off after re-proof of possession: the current
// password, a valid TOTP code, or an unused recovery code all qualify. A
// recovery code that matches is spent whether or not the rest succeeds.
func (s *AuthService) DisableMFA(ctx context.Context, accountID string, input dto.MFADisableInput) error {
	acc, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return err
	}
	if acc == nil {
		return autherror.ErrAccountNotFound
	}
	if !acc.MFAEnabled {
		return autherror.ErrMFANotEnabled
	}

	verified := false

	if input.Password != "" && password.Verify(input.Password, acc.PasswordHash) {
		verified = true
	}

	if !verified && input.Code != "" && acc.MFASecret != "" && totp.Verify(acc.MFASecret, input.Code) {
		verified = true
	}

	if !verified && input.RecoveryCode != "" {
		want := hashToken(input.RecoveryCode)
		for i, h := range acc.RecoveryCodeHashes {
			if h == want {
				remaining := append(append([]string{}, acc.RecoveryCodeHashes[:i]...), acc.RecoveryCodeHashes[i+1:]...)
				if err := s.accounts.UpdateRecoveryCodeHashes(ctx, acc.ID, remaining); err != nil {
					return err
				}
				verified = true
				break
			}
		}
	}

	if !verified {
		return autherror.ErrVerifyFailed
	}

	return s.accounts.DisableMFA(ctx, acc.ID)
}

// RequestPasswordReset issues a single-use reset token. The raw value is
// returned once; only its hash is persisted.
func (s *AuthService) RequestPasswordReset(ctx context.Context, username string) (*dto.ForgotPasswordOutput, error) {
	acc, err := s.accounts.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, autherror.ErrAccountNotFound
	}

	buf := make([]byte, constant.ResetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return nil, err
	}
	raw := hex.EncodeToString(buf)
	expiresAt := time.Now().Add(s.resetTokenTTL)

	pr := &domain.PasswordReset{
		ID:        uuid.NewString(),
		AccountID: acc.ID,
		TokenHash: hashToken(raw),
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}
	if err := s.resets.Insert(ctx, pr); err != nil {
		return nil, err
	}

	return &dto.ForgotPasswordOutput{OK: true, ResetToken: raw, ExpiresAt: expiresAt}, nil
}

// ResetPassword consumes a valid reset token, rehashes the password and
// revokes every active session of the account.
func (s *AuthService) ResetPassword(ctx context.Context, input dto.ResetPasswordInput) error {
	acc, err := s.accounts.GetByUsername(ctx, input.Username)
	if err != nil {
		return err
	}
	if acc == nil {
		return autherror.ErrAccountNotFound
	}

	ok, err := s.resets.Consume(ctx, acc.ID, hashToken(input.ResetToken))
	if err != nil {
		return err
	}
	if !ok {
		return autherror.ErrResetTokenInvalid
	}

	hash, err := s.hasher.Hash(input.NewPassword)
	if err != nil {
		return err
	}
	if err := s.accounts.UpdatePasswordHash(ctx, acc.ID, hash); err != nil {
		return err
	}

	return s.sessions.RevokeAll(ctx, acc.ID)
}

// DeleteAccount removes the account after cascade-revoking its sessions.
func (s *AuthService) DeleteAccount(ctx context.Context, accountID string) error {
	if err := s.sessions.RevokeAll(ctx, accountID); err != nil {
		return err
	}

	found, err := s.accounts.Delete(ctx, accountID)
	if err != nil {
		return err
	}
	if !found {
		return autherror.ErrAccountNotFound
	}
	return nil
}

func (s *AuthService) issuePair(ctx context.Context, acc *domain.Account, meta dto.ClientMetadata) (*dto.TokenPair, error) {
	access, err := s.sessions.IssueAccess(acc)
	if err != nil {
		return nil, err
	}

	refresh, err := s.sessions.IssueRefresh(ctx, acc.ID, meta)
	if err != nil {
		return nil, err
	}

	return &dto.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
