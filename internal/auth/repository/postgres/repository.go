package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Marianaberrio/TendenciasBackend/internal/auth/domain"
)

// PgxIface is the slice of pgxpool.Pool the repository needs; pgxmock
// satisfies it in tests.
type PgxIface interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresRepository implements the account, refresh-token and
// password-reset stores on a single Postgres schema. The lockout threshold
// and window are applied inside the failed-count statement so check and
// update cannot be split by a concurrent request.
type PostgresRepository struct {
	db            PgxIface
	lockThreshold int
	lockFor       time.Duration
}

func NewPostgresRepository(db PgxIface, lockThreshold int, lockFor time.Duration) *PostgresRepository {
	return &PostgresRepository{db: db, lockThreshold: lockThreshold, lockFor: lockFor}
}

const accountColumns = `id, username, email, password_hash, mfa_enabled, mfa_method, mfa_secret,
		recovery_code_hashes, mfa_failed_count, failed_count, locked_until, created_at, updated_at`

func (r *PostgresRepository) scanAccount(row pgx.Row) (*domain.Account, error) {
	var acc domain.Account
	var recoveryJSON []byte

	err := row.Scan(&acc.ID, &acc.Username, &acc.Email, &acc.PasswordHash,
		&acc.MFAEnabled, &acc.MFAMethod, &acc.MFASecret,
		&recoveryJSON, &acc.MFAFailedCount,
		&acc.FailedCount, &acc.LockedUntil, &acc.CreatedAt, &acc.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan account: %w", err)
	}

	if len(recoveryJSON) > 0 {
		if err := json.Unmarshal(recoveryJSON, &acc.RecoveryCodeHashes); err != nil {
			return nil, fmt.Errorf("failed to decode recovery codes: %w", err)
		}
	}

	return &acc, nil
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + `
		FROM accounts
		WHERE username = $1
		LIMIT 1;`

	return r.scanAccount(r.db.QueryRow(ctx, query, username))
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + `
		FROM accounts
		WHERE id = $1
		LIMIT 1;`

	return r.scanAccount(r.db.QueryRow(ctx, query, id))
}

func (r *PostgresRepository) Create(ctx context.Context, acc *domain.Account) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO accounts (id, username, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, acc.ID, acc.Username, acc.Email, acc.PasswordHash, acc.CreatedAt, acc.UpdatedAt)

	return err
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PostgresRepository) UpdatePasswordHash(ctx context.Context, id, hash string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE accounts SET password_hash = $2, updated_at = now() WHERE id = $1
	`, id, hash)

	return err
}

// IncrementFailedCount bumps the counter and, when it crosses the
// threshold, arms the lock in the same statement.
func (r *PostgresRepository) IncrementFailedCount(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE accounts SET
			failed_count = failed_count + 1,
			locked_until = CASE WHEN failed_count + 1 >= $2 THEN now() + $3 ELSE locked_until END
		WHERE id = $1
	`, id, r.lockThreshold, r.lockFor)

	return err
}

func (r *PostgresRepository) ResetFailedCount(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE accounts SET failed_count = 0, locked_until = NULL WHERE id = $1
	`, id)

	return err
}

func (r *PostgresRepository) IncrementMFAFailedCount(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE accounts SET mfa_failed_count = mfa_failed_count + 1 WHERE id = $1
	`, id)

	return err
}

func (r *PostgresRepository) ResetMFAFailedCount(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE accounts SET mfa_failed_count = 0 WHERE id = $1
	`, id)

	return err
}

func (r *PostgresRepository) SetMFASecret(ctx context.Context, id, secretBase32 string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE accounts SET mfa_secret = $2, updated_at = now() WHERE id = $1
	`, id, secretBase32)

	return err
}

func (r *PostgresRepository) EnableMFA(ctx context.Context, id, method string, recoveryHashes []string) error {
	encoded, err := json.Marshal(recoveryHashes)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		UPDATE accounts SET
			mfa_enabled = TRUE,
			mfa_method = $2,
			recovery_code_hashes = $3,
			updated_at = now()
		WHERE id = $1
	`, id, method, encoded)

	return err
}

func (r *PostgresRepository) DisableMFA(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE accounts SET
			mfa_enabled = FALSE,
			mfa_method = '',
			mfa_secret = '',
			recovery_code_hashes = NULL,
			mfa_failed_count = 0,
			locked_until = NULL,
			updated_at = now()
		WHERE id = $1
	`, id)

	return err
}

func (r *PostgresRepository) UpdateRecoveryCodeHashes(ctx context.Context, id string, hashes []string) error {
	encoded, err := json.Marshal(hashes)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		UPDATE accounts SET recovery_code_hashes = $2, updated_at = now() WHERE id = $1
	`, id, encoded)

	return err
}

func (r *PostgresRepository) Store(ctx context.Context, rt *domain.RefreshToken) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO refresh_tokens (id, account_id, token_hash, user_agent, ip_address, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, rt.ID, rt.AccountID, rt.TokenHash, rt.UserAgent, rt.IPAddress, rt.ExpiresAt, rt.CreatedAt)

	return err
}

func (r *PostgresRepository) GetValidByHash(ctx context.Context, hash string) (*domain.RefreshToken, error) {
	query := `
		SELECT id, account_id, token_hash, user_agent, ip_address, expires_at, created_at, revoked_at
		FROM refresh_tokens
		WHERE token_hash = $1 AND revoked_at IS NULL AND expires_at > now()
		LIMIT 1;`

	var rt domain.RefreshToken
	err := r.db.QueryRow(ctx, query, hash).Scan(&rt.ID, &rt.AccountID, &rt.TokenHash,
		&rt.UserAgent, &rt.IPAddress, &rt.ExpiresAt, &rt.CreatedAt, &rt.RevokedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get refresh token: %w", err)
	}

	return &rt, nil
}

func (r *PostgresRepository) Revoke(ctx context.Context, hash string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE refresh_tokens SET revoked_at = now()
		WHERE token_hash = $1 AND revoked_at IS NULL
	`, hash)

	return err
}

func (r *PostgresRepository) RevokeByID(ctx context.Context, id, accountID string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE refresh_tokens SET revoked_at = now()
		WHERE id = $1 AND account_id = $2 AND revoked_at IS NULL
	`, id, accountID)

	return err
}

func (r *PostgresRepository) RevokeAllForAccount(ctx context.Context, accountID string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE refresh_tokens SET revoked_at = now()
		WHERE account_id = $1 AND revoked_at IS NULL
	`, accountID)

	return err
}

func (r *PostgresRepository) ListActiveByAccount(ctx context.Context, accountID string) ([]domain.RefreshToken, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, account_id, token_hash, user_agent, ip_address, expires_at, created_at, revoked_at
		FROM refresh_tokens
		WHERE account_id = $1 AND revoked_at IS NULL AND expires_at > now()
		ORDER BY created_at DESC
	`, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.RefreshToken
	for rows.Next() {
		var rt domain.RefreshToken
		if err := rows.Scan(&rt.ID, &rt.AccountID, &rt.TokenHash, &rt.UserAgent,
			&rt.IPAddress, &rt.ExpiresAt, &rt.CreatedAt, &rt.RevokedAt); err != nil {
			return nil, err
		}
		out = append(out, rt)
	}

	return out, rows.Err()
}

func (r *PostgresRepository) Insert(ctx context.Context, pr *domain.PasswordReset) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO password_resets (id, account_id, token_hash, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, pr.ID, pr.AccountID, pr.TokenHash, pr.ExpiresAt, pr.CreatedAt)

	return err
}

// Consume marks the matching unused, unexpired reset row used and reports
// whether one existed. The guard and the update are one statement, so a
// token can be consumed at most once.
func (r *PostgresRepository) Consume(ctx context.Context, accountID, hash string) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE password_resets SET used_at = now()
		WHERE account_id = $1 AND token_hash = $2 AND used_at IS NULL AND expires_at > now()
	`, accountID, hash)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}
