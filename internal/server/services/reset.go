package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/dbx"
	"github.com/dmitrijs2005/authkeeper/internal/logging"
	"github.com/dmitrijs2005/authkeeper/internal/server/auth"
	"github.com/dmitrijs2005/authkeeper/internal/server/mail"
	"github.com/dmitrijs2005/authkeeper/internal/server/models"
	"github.com/dmitrijs2005/authkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/authkeeper/internal/timex"
)

const (
	// DefaultResetTokenTTL is how long a reset link stays usable.
	DefaultResetTokenTTL = time.Hour

	// resetTokenBytes gives 256 bits of entropy.
	resetTokenBytes = 32
)

// ResetService drives the password reset lifecycle. Only the SHA-256 digest
// of a reset token is stored; the token itself travels in the email.
type ResetService struct {
	store    *repomanager.Store
	hasher   *auth.PasswordHasher
	mail     mail.Queue
	clock    timex.Clock
	logger   logging.Logger
	ttl      time.Duration
	resetURL string
}

func NewResetService(store *repomanager.Store, h *auth.PasswordHasher, q mail.Queue, c timex.Clock,
	l logging.Logger, ttl time.Duration, resetURL string) *ResetService {
	if ttl <= 0 {
		ttl = DefaultResetTokenTTL
	}
	return &ResetService{
		store:    store,
		hasher:   h,
		mail:     q,
		clock:    c,
		logger:   l.With("module", "reset_service"),
		ttl:      ttl,
		resetURL: resetURL,
	}
}

func digestToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// RequestReset issues a new reset token for the account owning email and
// mails it. It reports success for unknown emails too.
func (s *ResetService) RequestReset(ctx context.Context, email string) error {
	repo := s.store.Accounts()

	acc, err := repo.GetByEmail(ctx, models.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.logger.Debug(ctx, "reset requested for unknown email")
			return nil
		}
		return err
	}

	token, err := common.MakeRandHexString(resetTokenBytes)
	if err != nil {
		return fmt.Errorf("generate reset token: %w", err)
	}

	link, err := mail.ResetLink(s.resetURL, token)
	if err != nil {
		return fmt.Errorf("build reset link: %w", err)
	}

	now := s.clock.Now().UTC()
	if err := repo.SetResetToken(ctx, acc.ID, digestToken(token), now.Add(s.ttl), now); err != nil {
		return err
	}

	s.logger.Info(ctx, "Password reset requested", "account_id", acc.ID)
	s.mail.Enqueue(mail.ResetMessage(acc.Email, link, s.ttl))
	return nil
}

// ValidateToken reports whether token is a pending, unexpired reset token
// without consuming it.
func (s *ResetService) ValidateToken(ctx context.Context, token string) (*models.Account, error) {
	if token == "" {
		return nil, common.ErrInvalidOrExpiredToken
	}

	acc, err := s.store.Accounts().GetByResetToken(ctx, digestToken(token), s.clock.Now().UTC())
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidOrExpiredToken
		}
		return nil, err
	}
	return acc.Sanitized(), nil
}

// ResetPassword consumes token and sets newPassword. The password change and
// the token removal happen in one conditional write, so a token can be
// consumed at most once.
func (s *ResetService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if err := (passwordInput{Password: newPassword}).Validate(); err != nil {
		return fmt.Errorf("%w: %v", common.ErrValidation, err)
	}

	// Fail fast before paying for a hash.
	if _, err := s.ValidateToken(ctx, token); err != nil {
		return err
	}

	hash, err := s.hasher.Hash(ctx, newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	digest := digestToken(token)
	now := s.clock.Now().UTC()

	var accountID string
	err = s.store.Tx.WithinTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.store.Manager.Accounts(tx)

		acc, err := repo.LockByResetToken(ctx, digest, now)
		if err != nil {
			return err
		}
		accountID = acc.ID
		return repo.CompletePasswordReset(ctx, acc.ID, digest, hash, now)
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrInvalidOrExpiredToken
		}
		return err
	}

	s.logger.Info(ctx, "Password reset completed", "account_id", accountID)
	return nil
}
