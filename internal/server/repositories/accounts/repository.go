// Package accounts declares the credential store contract and its
// PostgreSQL and in-memory implementations.
package accounts

import (
	"context"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/server/models"
)

// Repository persists accounts. Implementations enforce uniqueness of
// lower(email), lower(username) and every (provider, provider id) pair
// themselves and report violations as common.ErrorAlreadyExists; lookups that
// match nothing return common.ErrorNotFound.
type Repository interface {
	// Create inserts a new account with its provider links.
	Create(ctx context.Context, account *models.Account) (*models.Account, error)

	// GetByID returns the account without credential material.
	GetByID(ctx context.Context, id string) (*models.Account, error)

	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	GetByUsername(ctx context.Context, username string) (*models.Account, error)
	GetByProviderID(ctx context.Context, provider models.Provider, providerID string) (*models.Account, error)

	// GetByResetToken finds the account whose pending reset token digest is
	// tokenHash and whose expiry is after now.
	GetByResetToken(ctx context.Context, tokenHash string, now time.Time) (*models.Account, error)

	// LockByResetToken is GetByResetToken that also locks the row for the
	// rest of the surrounding transaction.
	LockByResetToken(ctx context.Context, tokenHash string, now time.Time) (*models.Account, error)

	// LinkProvider sets the account's subject id for provider.
	LinkProvider(ctx context.Context, id string, provider models.Provider, providerID string, now time.Time) error

	// SetResetToken replaces any pending reset token of the account.
	SetResetToken(ctx context.Context, id string, tokenHash string, expiry time.Time, now time.Time) error

	// CompletePasswordReset stores passwordHash and clears the reset token in
	// one write, provided the token still matches and has not expired.
	CompletePasswordReset(ctx context.Context, id string, tokenHash string, passwordHash string, now time.Time) error

	UpdateRole(ctx context.Context, id string, role models.Role, now time.Time) (*models.Account, error)
	Delete(ctx context.Context, id string) error
}
