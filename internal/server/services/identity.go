// Package services contains server-side business logic: identity resolution
// for password and provider sign-ins, the password reset flow, the auth gate
// and admin account management.
package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/logging"
	"github.com/dmitrijs2005/authkeeper/internal/server/auth"
	"github.com/dmitrijs2005/authkeeper/internal/server/mail"
	"github.com/dmitrijs2005/authkeeper/internal/server/models"
	"github.com/dmitrijs2005/authkeeper/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/authkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/authkeeper/internal/timex"
	"github.com/google/uuid"
)

// resolveAttempts bounds how often a provider sign-in re-runs its lookups
// after losing a uniqueness race to a concurrent request.
const resolveAttempts = 3

// maxUsernameSuffix bounds the search for a free username.
const maxUsernameSuffix = 10000

// AuthResult is returned by every successful sign-in. Account never carries
// credential material.
type AuthResult struct {
	Account   *models.Account
	Token     string
	ExpiresAt time.Time
}

// IdentityService resolves sign-in attempts to exactly one account and
// issues bearer tokens for it.
type IdentityService struct {
	store  *repomanager.Store
	hasher *auth.PasswordHasher
	tokens *auth.TokenIssuer
	mail   mail.Queue
	clock  timex.Clock
	logger logging.Logger
}

func NewIdentityService(store *repomanager.Store, h *auth.PasswordHasher, t *auth.TokenIssuer,
	q mail.Queue, c timex.Clock, l logging.Logger) *IdentityService {
	return &IdentityService{
		store:  store,
		hasher: h,
		tokens: t,
		mail:   q,
		clock:  c,
		logger: l.With("module", "identity_service"),
	}
}

func (s *IdentityService) accounts() accounts.Repository {
	return s.store.Accounts()
}

func (s *IdentityService) now() time.Time {
	return s.clock.Now().UTC()
}

func (s *IdentityService) issue(a *models.Account) (*AuthResult, error) {
	token, exp, err := s.tokens.Issue(a.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &AuthResult{Account: a.Sanitized(), Token: token, ExpiresAt: exp}, nil
}

// Signup registers a local account. A taken email or username (compared
// case-insensitively) yields common.ErrConflict.
func (s *IdentityService) Signup(ctx context.Context, username, email, password string) (*AuthResult, error) {
	in := signupInput{Username: strings.TrimSpace(username), Email: models.NormalizeEmail(email), Password: password}
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrValidation, err)
	}

	repo := s.accounts()
	if err := s.ensureFree(ctx, repo, in.Username, in.Email); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(ctx, in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := s.now()
	acc, err := repo.Create(ctx, &models.Account{
		ID:           uuid.NewString(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         models.RoleUser,
		CreatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrConflict
		}
		return nil, err
	}

	s.logger.Info(ctx, "Account registered", "account_id", acc.ID)
	s.mail.Enqueue(mail.WelcomeMessage(acc.Email, acc.Username))

	return s.issue(acc)
}

func (s *IdentityService) ensureFree(ctx context.Context, repo accounts.Repository, username, email string) error {
	if _, err := repo.GetByEmail(ctx, email); err == nil {
		return common.ErrConflict
	} else if !errors.Is(err, common.ErrorNotFound) {
		return err
	}

	if _, err := repo.GetByUsername(ctx, username); err == nil {
		return common.ErrConflict
	} else if !errors.Is(err, common.ErrorNotFound) {
		return err
	}
	return nil
}

// Login verifies a local password. Unknown email, provider-only account and
// wrong password all yield the same common.ErrInvalidCredentials.
func (s *IdentityService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	acc, err := s.accounts().GetByEmail(ctx, models.NormalizeEmail(email))
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		acc = nil
	}

	if acc == nil || !acc.HasPassword() {
		if err := s.hasher.VerifyDummy(ctx, password); err != nil {
			return nil, err
		}
		return nil, common.ErrInvalidCredentials
	}

	ok, err := s.hasher.Verify(ctx, password, acc.PasswordHash)
	if err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		s.logger.Error(ctx, "stored password hash is unusable", "account_id", acc.ID, "error", err)
		return nil, common.ErrInvalidCredentials
	}
	if !ok {
		return nil, common.ErrInvalidCredentials
	}

	return s.issue(acc)
}

// OAuthCallback resolves a verified provider assertion to an account and
// signs it in.
func (s *IdentityService) OAuthCallback(ctx context.Context, a models.ProviderAssertion) (*AuthResult, error) {
	acc, err := s.ResolveOrCreate(ctx, a)
	if err != nil {
		return nil, err
	}
	return s.issue(acc)
}

// ResolveOrCreate finds or creates the single account for a provider
// assertion: by provider id first, then by email (linking the provider onto
// the existing account), else a new provider-only account. A lost race
// against a concurrent request for the same identity re-runs the lookups.
func (s *IdentityService) ResolveOrCreate(ctx context.Context, a models.ProviderAssertion) (*models.Account, error) {
	if !a.Provider.IsValid() || strings.TrimSpace(a.ProviderID) == "" {
		return nil, common.ErrInvalidAssertion
	}
	a.ProviderID = strings.TrimSpace(a.ProviderID)
	a.Email = models.NormalizeEmail(a.Email)

	var err error
	for attempt := 1; attempt <= resolveAttempts; attempt++ {
		var acc *models.Account
		acc, err = s.resolve(ctx, a)
		if err == nil {
			return acc, nil
		}
		if !errors.Is(err, common.ErrorAlreadyExists) {
			return nil, err
		}
		s.logger.Debug(ctx, "identity resolution lost a race, retrying", "provider", a.Provider, "attempt", attempt)
	}
	return nil, fmt.Errorf("resolve identity: %w", err)
}

func (s *IdentityService) resolve(ctx context.Context, a models.ProviderAssertion) (*models.Account, error) {
	repo := s.accounts()

	acc, err := repo.GetByProviderID(ctx, a.Provider, a.ProviderID)
	if err == nil {
		return acc, nil
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, err
	}

	now := s.now()

	if a.Email != "" {
		acc, err = repo.GetByEmail(ctx, a.Email)
		switch {
		case err == nil:
			if err := repo.LinkProvider(ctx, acc.ID, a.Provider, a.ProviderID, now); err != nil {
				return nil, err
			}
			if acc.ProviderIDs == nil {
				acc.ProviderIDs = make(map[models.Provider]string, 1)
			}
			acc.ProviderIDs[a.Provider] = a.ProviderID
			acc.UpdatedAt = now
			s.logger.Info(ctx, "Provider linked", "account_id", acc.ID, "provider", a.Provider)
			return acc, nil
		case !errors.Is(err, common.ErrorNotFound):
			return nil, err
		}
	}

	username, err := s.freeUsername(ctx, repo, deriveUsername(a.DisplayName, a.Email))
	if err != nil {
		return nil, err
	}

	acc, err = repo.Create(ctx, &models.Account{
		ID:          uuid.NewString(),
		Username:    username,
		Email:       a.Email,
		ProviderIDs: map[models.Provider]string{a.Provider: a.ProviderID},
		Role:        models.RoleUser,
		CreatedAt:   now,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "Account created from provider", "account_id", acc.ID, "provider", a.Provider)
	return acc, nil
}

// deriveUsername lowercases displayName and strips its whitespace, falling
// back to the email local part and then to "user".
func deriveUsername(displayName, email string) string {
	base := strings.Join(strings.Fields(strings.ToLower(displayName)), "")
	if base == "" {
		local, _, _ := strings.Cut(email, "@")
		base = strings.Join(strings.Fields(strings.ToLower(local)), "")
	}
	if base == "" {
		base = "user"
	}
	if r := []rune(base); len(r) > maxUsernameLength-5 {
		base = string(r[:maxUsernameLength-5])
	}
	return base
}

// freeUsername returns base, or base followed by the smallest numeric suffix
// that is not taken.
func (s *IdentityService) freeUsername(ctx context.Context, repo accounts.Repository, base string) (string, error) {
	candidate := base
	for i := 1; i <= maxUsernameSuffix; i++ {
		_, err := repo.GetByUsername(ctx, candidate)
		if errors.Is(err, common.ErrorNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", err
		}
		candidate = base + strconv.Itoa(i)
	}
	return "", fmt.Errorf("no free username for %q", base)
}
