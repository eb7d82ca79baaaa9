package accounts

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/server/models"
)

// MemoryRepository keeps accounts in process memory. Every method runs under
// one lock, so each call is atomic and the uniqueness rules of the SQL schema
// hold under concurrent writers.
type MemoryRepository struct {
	mu   sync.RWMutex
	byID map[string]*models.Account
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byID: make(map[string]*models.Account)}
}

// conflict returns the name of the uniqueness rule candidate would break,
// ignoring the record with id skipID.
func (r *MemoryRepository) conflict(candidate *models.Account, skipID string) string {
	for id, a := range r.byID {
		if id == skipID {
			continue
		}
		if id == candidate.ID {
			return "accounts_pkey"
		}
		if strings.EqualFold(a.Username, candidate.Username) {
			return "accounts_username_key"
		}
		if candidate.Email != "" && strings.EqualFold(a.Email, candidate.Email) {
			return "accounts_email_key"
		}
		for p, pid := range candidate.ProviderIDs {
			if pid != "" && a.ProviderIDs[p] == pid {
				return "accounts_" + string(p) + "_id_key"
			}
		}
		if candidate.ResetTokenHash != "" && a.ResetTokenHash == candidate.ResetTokenHash {
			return "accounts_reset_token_key"
		}
	}
	return ""
}

func (r *MemoryRepository) Create(_ context.Context, a *models.Account) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if name := r.conflict(a, ""); name != "" {
		return nil, fmt.Errorf("%w: %s", common.ErrorAlreadyExists, name)
	}

	a.UpdatedAt = a.CreatedAt
	r.byID[a.ID] = a.Clone()
	return a, nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return a.Sanitized(), nil
}

func (r *MemoryRepository) find(match func(*models.Account) bool) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.byID {
		if match(a) {
			return a.Clone(), nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *MemoryRepository) GetByEmail(_ context.Context, email string) (*models.Account, error) {
	if email == "" {
		return nil, common.ErrorNotFound
	}
	return r.find(func(a *models.Account) bool { return strings.EqualFold(a.Email, email) })
}

func (r *MemoryRepository) GetByUsername(_ context.Context, username string) (*models.Account, error) {
	return r.find(func(a *models.Account) bool { return strings.EqualFold(a.Username, username) })
}

func (r *MemoryRepository) GetByProviderID(_ context.Context, p models.Provider, providerID string) (*models.Account, error) {
	if _, err := providerColumn(p); err != nil {
		return nil, err
	}
	if providerID == "" {
		return nil, common.ErrorNotFound
	}
	return r.find(func(a *models.Account) bool { return a.ProviderIDs[p] == providerID })
}

func (r *MemoryRepository) GetByResetToken(_ context.Context, tokenHash string, now time.Time) (*models.Account, error) {
	if tokenHash == "" {
		return nil, common.ErrorNotFound
	}
	return r.find(func(a *models.Account) bool {
		return a.ResetTokenHash == tokenHash && a.ResetTokenExpiry != nil && a.ResetTokenExpiry.After(now)
	})
}

// LockByResetToken is GetByResetToken; the consuming write re-checks the token
// under the write lock.
func (r *MemoryRepository) LockByResetToken(ctx context.Context, tokenHash string, now time.Time) (*models.Account, error) {
	return r.GetByResetToken(ctx, tokenHash, now)
}

// update applies fn to the stored record with id under the write lock.
func (r *MemoryRepository) update(id string, fn func(a *models.Account) error) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	next := a.Clone()
	if err := fn(next); err != nil {
		return nil, err
	}
	if name := r.conflict(next, id); name != "" {
		return nil, fmt.Errorf("%w: %s", common.ErrorAlreadyExists, name)
	}
	r.byID[id] = next
	return next.Clone(), nil
}

func (r *MemoryRepository) LinkProvider(_ context.Context, id string, p models.Provider, providerID string, now time.Time) error {
	if _, err := providerColumn(p); err != nil {
		return err
	}
	_, err := r.update(id, func(a *models.Account) error {
		if a.ProviderIDs == nil {
			a.ProviderIDs = make(map[models.Provider]string, 1)
		}
		a.ProviderIDs[p] = providerID
		a.UpdatedAt = now
		return nil
	})
	return err
}

func (r *MemoryRepository) SetResetToken(_ context.Context, id string, tokenHash string, expiry time.Time, now time.Time) error {
	_, err := r.update(id, func(a *models.Account) error {
		a.ResetTokenHash = tokenHash
		a.ResetTokenExpiry = &expiry
		a.UpdatedAt = now
		return nil
	})
	return err
}

func (r *MemoryRepository) CompletePasswordReset(_ context.Context, id string, tokenHash string, passwordHash string, now time.Time) error {
	_, err := r.update(id, func(a *models.Account) error {
		if tokenHash == "" || a.ResetTokenHash != tokenHash || a.ResetTokenExpiry == nil || !a.ResetTokenExpiry.After(now) {
			return common.ErrorNotFound
		}
		a.PasswordHash = passwordHash
		a.ResetTokenHash = ""
		a.ResetTokenExpiry = nil
		a.UpdatedAt = now
		return nil
	})
	return err
}

func (r *MemoryRepository) UpdateRole(_ context.Context, id string, role models.Role, now time.Time) (*models.Account, error) {
	a, err := r.update(id, func(a *models.Account) error {
		a.Role = role
		a.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, err
	}
	return a.Sanitized(), nil
}

func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.byID, id)
	return nil
}
