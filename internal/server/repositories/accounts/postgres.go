package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/dbx"
	"github.com/dmitrijs2005/authkeeper/internal/server/models"
)

const (
	allColumns    = `id, username, email, password_hash, google_id, github_id, role, reset_token, reset_token_expiry, created_at, updated_at`
	publicColumns = `id, username, email, google_id, github_id, role, created_at, updated_at`
)

// providerColumns whitelists the column that stores each provider link.
var providerColumns = map[models.Provider]string{
	models.ProviderGoogle: "google_id",
	models.ProviderGitHub: "github_id",
}

func providerColumn(p models.Provider) (string, error) {
	col, ok := providerColumns[p]
	if !ok {
		return "", fmt.Errorf("%w: unknown provider %q", common.ErrValidation, p)
	}
	return col, nil
}

// PostgresRepository implements Repository over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func mapWriteError(err error) error {
	if dbx.IsUniqueViolation(err) {
		return fmt.Errorf("%w: %s", common.ErrorAlreadyExists, dbx.ConstraintName(err))
	}
	return fmt.Errorf("db error: %w", err)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*models.Account, error) {
	var (
		a                                  models.Account
		email, hash, google, github, reset sql.NullString
		expiry                             sql.NullTime
		role                               string
	)
	err := row.Scan(&a.ID, &a.Username, &email, &hash, &google, &github, &role, &reset, &expiry, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	a.Email = email.String
	a.PasswordHash = hash.String
	a.Role = models.Role(role)
	a.ResetTokenHash = reset.String
	if expiry.Valid {
		t := expiry.Time
		a.ResetTokenExpiry = &t
	}
	a.ProviderIDs = providerMap(google, github)
	return &a, nil
}

func scanPublicAccount(row rowScanner) (*models.Account, error) {
	var (
		a                     models.Account
		email, google, github sql.NullString
		role                  string
	)
	if err := row.Scan(&a.ID, &a.Username, &email, &google, &github, &role, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	a.Email = email.String
	a.Role = models.Role(role)
	a.ProviderIDs = providerMap(google, github)
	return &a, nil
}

func providerMap(google, github sql.NullString) map[models.Provider]string {
	m := make(map[models.Provider]string, 2)
	if google.Valid {
		m[models.ProviderGoogle] = google.String
	}
	if github.Valid {
		m[models.ProviderGitHub] = github.String
	}
	return m
}

func (r *PostgresRepository) queryOne(ctx context.Context, where string, args ...any) (*models.Account, error) {
	query := `SELECT ` + allColumns + ` FROM accounts WHERE ` + where

	a, err := scanAccount(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return a, nil
}

func (r *PostgresRepository) Create(ctx context.Context, a *models.Account) (*models.Account, error) {
	query := `
		INSERT INTO accounts (id, username, email, password_hash, google_id, github_id, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		a.ID, a.Username, nullString(a.Email), nullString(a.PasswordHash),
		nullString(a.ProviderIDs[models.ProviderGoogle]), nullString(a.ProviderIDs[models.ProviderGitHub]),
		string(a.Role), a.CreatedAt)
	if err != nil {
		return nil, mapWriteError(err)
	}
	a.UpdatedAt = a.CreatedAt
	return a, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Account, error) {
	query := `SELECT ` + publicColumns + ` FROM accounts WHERE id = $1`

	a, err := scanPublicAccount(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return a, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	return r.queryOne(ctx, `lower(email) = lower($1)`, email)
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*models.Account, error) {
	return r.queryOne(ctx, `lower(username) = lower($1)`, username)
}

func (r *PostgresRepository) GetByProviderID(ctx context.Context, p models.Provider, providerID string) (*models.Account, error) {
	col, err := providerColumn(p)
	if err != nil {
		return nil, err
	}
	return r.queryOne(ctx, col+` = $1`, providerID)
}

func (r *PostgresRepository) GetByResetToken(ctx context.Context, tokenHash string, now time.Time) (*models.Account, error) {
	return r.queryOne(ctx, `reset_token = $1 AND reset_token_expiry > $2`, tokenHash, now)
}

func (r *PostgresRepository) LockByResetToken(ctx context.Context, tokenHash string, now time.Time) (*models.Account, error) {
	return r.queryOne(ctx, `reset_token = $1 AND reset_token_expiry > $2 FOR UPDATE`, tokenHash, now)
}

func (r *PostgresRepository) execOne(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return mapWriteError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) LinkProvider(ctx context.Context, id string, p models.Provider, providerID string, now time.Time) error {
	col, err := providerColumn(p)
	if err != nil {
		return err
	}
	query := `UPDATE accounts SET ` + col + ` = $1, updated_at = $2 WHERE id = $3`
	return r.execOne(ctx, query, providerID, now, id)
}

func (r *PostgresRepository) SetResetToken(ctx context.Context, id string, tokenHash string, expiry time.Time, now time.Time) error {
	query := `
		UPDATE accounts SET reset_token = $1, reset_token_expiry = $2, updated_at = $3
		WHERE id = $4
	`
	return r.execOne(ctx, query, tokenHash, expiry, now, id)
}

func (r *PostgresRepository) CompletePasswordReset(ctx context.Context, id string, tokenHash string, passwordHash string, now time.Time) error {
	query := `
		UPDATE accounts
		SET password_hash = $1, reset_token = NULL, reset_token_expiry = NULL, updated_at = $2
		WHERE id = $3 AND reset_token = $4 AND reset_token_expiry > $2
	`
	return r.execOne(ctx, query, passwordHash, now, id, tokenHash)
}

func (r *PostgresRepository) UpdateRole(ctx context.Context, id string, role models.Role, now time.Time) (*models.Account, error) {
	query := `UPDATE accounts SET role = $1, updated_at = $2 WHERE id = $3 RETURNING ` + publicColumns

	a, err := scanPublicAccount(r.db.QueryRowContext(ctx, query, string(role), now, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return a, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	return r.execOne(ctx, `DELETE FROM accounts WHERE id = $1`, id)
}
