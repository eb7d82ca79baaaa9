package accounts

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, r *MemoryRepository, a *models.Account) *models.Account {
	t.Helper()
	if a.Role == "" {
		a.Role = models.RoleUser
	}
	got, err := r.Create(context.Background(), a)
	require.NoError(t, err)
	return got
}

func TestMemory_CreateEnforcesUniqueness(t *testing.T) {
	r := NewMemoryRepository()
	seed(t, r, &models.Account{
		ID: "1", Username: "alice", Email: "alice@example.com",
		ProviderIDs: map[models.Provider]string{models.ProviderGoogle: "g-1"},
	})

	tests := []struct {
		name string
		acc  *models.Account
	}{
		{"same id", &models.Account{ID: "1", Username: "other"}},
		{"username differs only in case", &models.Account{ID: "2", Username: "ALICE"}},
		{"email differs only in case", &models.Account{ID: "2", Username: "bob", Email: "Alice@Example.com"}},
		{"same provider link", &models.Account{ID: "2", Username: "bob", ProviderIDs: map[models.Provider]string{models.ProviderGoogle: "g-1"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Create(context.Background(), tt.acc)
			assert.ErrorIs(t, err, common.ErrorAlreadyExists)
		})
	}

	// Same subject id under a different provider is a different identity.
	seed(t, r, &models.Account{ID: "3", Username: "carol", ProviderIDs: map[models.Provider]string{models.ProviderGitHub: "g-1"}})
	// Two accounts without email do not collide.
	seed(t, r, &models.Account{ID: "4", Username: "dave"})
	seed(t, r, &models.Account{ID: "5", Username: "erin"})
}

func TestMemory_ConcurrentCreateSingleWinner(t *testing.T) {
	r := NewMemoryRepository()

	var (
		wg      sync.WaitGroup
		success atomic.Int32
	)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := r.Create(context.Background(), &models.Account{
				ID: fmt.Sprintf("id-%d", i), Username: fmt.Sprintf("user%d", i),
				Email: "race@example.com", Role: models.RoleUser,
			})
			if err == nil {
				success.Add(1)
				return
			}
			if !errors.Is(err, common.ErrorAlreadyExists) {
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), success.Load())
}

func TestMemory_LookupsReturnCopies(t *testing.T) {
	r := NewMemoryRepository()
	seed(t, r, &models.Account{ID: "1", Username: "alice", Email: "alice@example.com", PasswordHash: "h"})

	got, err := r.GetByEmail(context.Background(), "ALICE@example.com")
	require.NoError(t, err)
	got.PasswordHash = "tampered"

	again, err := r.GetByUsername(context.Background(), "Alice")
	require.NoError(t, err)
	assert.Equal(t, "h", again.PasswordHash)

	byID, err := r.GetByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Empty(t, byID.PasswordHash)

	_, err = r.GetByEmail(context.Background(), "")
	assert.ErrorIs(t, err, common.ErrorNotFound)
	_, err = r.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestMemory_LinkProvider(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()
	seed(t, r, &models.Account{ID: "1", Username: "alice"})
	seed(t, r, &models.Account{ID: "2", Username: "bob", ProviderIDs: map[models.Provider]string{models.ProviderGitHub: "gh-2"}})

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, r.LinkProvider(ctx, "1", models.ProviderGitHub, "gh-1", now))

	got, err := r.GetByProviderID(ctx, models.ProviderGitHub, "gh-1")
	require.NoError(t, err)
	assert.Equal(t, "1", got.ID)
	assert.Equal(t, now, got.UpdatedAt)

	err = r.LinkProvider(ctx, "1", models.ProviderGitHub, "gh-2", now)
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)

	err = r.LinkProvider(ctx, "missing", models.ProviderGitHub, "gh-9", now)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	err = r.LinkProvider(ctx, "1", models.Provider("myspace"), "x", now)
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestMemory_ResetTokenLifecycle(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()
	seed(t, r, &models.Account{ID: "1", Username: "alice", Email: "a@example.com", PasswordHash: "old"})

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	exp := now.Add(time.Hour)
	require.NoError(t, r.SetResetToken(ctx, "1", "digest", exp, now))

	got, err := r.GetByResetToken(ctx, "digest", now)
	require.NoError(t, err)
	assert.Equal(t, "1", got.ID)

	_, err = r.GetByResetToken(ctx, "digest", exp)
	assert.ErrorIs(t, err, common.ErrorNotFound, "expiry is exclusive")

	_, err = r.LockByResetToken(ctx, "other", now)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	require.NoError(t, r.CompletePasswordReset(ctx, "1", "digest", "new", now))

	err = r.CompletePasswordReset(ctx, "1", "digest", "newer", now)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	acc, err := r.GetByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, "new", acc.PasswordHash)
	assert.Empty(t, acc.ResetTokenHash)
	assert.Nil(t, acc.ResetTokenExpiry)
}

func TestMemory_CompletePasswordResetSingleWinner(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()
	seed(t, r, &models.Account{ID: "1", Username: "alice", PasswordHash: "old"})

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, r.SetResetToken(ctx, "1", "digest", now.Add(time.Hour), now))

	var (
		wg      sync.WaitGroup
		success atomic.Int32
	)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if err := r.CompletePasswordReset(ctx, "1", "digest", fmt.Sprintf("h%d", i), now); err == nil {
				success.Add(1)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), success.Load())
}

func TestMemory_UpdateRoleAndDelete(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()
	seed(t, r, &models.Account{ID: "1", Username: "alice", PasswordHash: "h"})

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	got, err := r.UpdateRole(ctx, "1", models.RoleAdmin, now)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, got.Role)
	assert.Empty(t, got.PasswordHash)

	require.NoError(t, r.Delete(ctx, "1"))
	assert.ErrorIs(t, r.Delete(ctx, "1"), common.ErrorNotFound)
	_, err = r.UpdateRole(ctx, "1", models.RoleUser, now)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
