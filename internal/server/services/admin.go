package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/logging"
	"github.com/dmitrijs2005/authkeeper/internal/server/models"
	"github.com/dmitrijs2005/authkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/authkeeper/internal/timex"
	"github.com/google/uuid"
)

// AdminService holds account management operations. Callers are expected to
// have passed the admin role gate already.
type AdminService struct {
	store  *repomanager.Store
	clock  timex.Clock
	logger logging.Logger
}

func NewAdminService(store *repomanager.Store, c timex.Clock, l logging.Logger) *AdminService {
	return &AdminService{store: store, clock: c, logger: l.With("module", "admin_service")}
}

// checkAccountID rejects ids that cannot name an account. The accounts
// table keys on UUID, so anything else would fail inside the store.
func checkAccountID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: invalid account id %q", common.ErrValidation, id)
	}
	return nil
}

// ChangeRole sets the role of targetID.
func (s *AdminService) ChangeRole(ctx context.Context, targetID string, role models.Role) (*models.Account, error) {
	if err := checkAccountID(targetID); err != nil {
		return nil, err
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("%w: invalid role %q", common.ErrValidation, role)
	}

	acc, err := s.store.Accounts().UpdateRole(ctx, targetID, role, s.clock.Now().UTC())
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "Role changed", "account_id", targetID, "role", role)
	return acc, nil
}

// ChangeRoleByEmail is ChangeRole for the account owning email.
func (s *AdminService) ChangeRoleByEmail(ctx context.Context, email string, role models.Role) (*models.Account, error) {
	acc, err := s.store.Accounts().GetByEmail(ctx, models.NormalizeEmail(email))
	if err != nil {
		return nil, err
	}
	return s.ChangeRole(ctx, acc.ID, role)
}

// DeleteAccount removes targetID. An actor cannot delete itself.
func (s *AdminService) DeleteAccount(ctx context.Context, actorID, targetID string) error {
	if actorID == targetID {
		return fmt.Errorf("%w: cannot delete your own account", common.ErrForbidden)
	}
	if err := checkAccountID(targetID); err != nil {
		return err
	}

	if err := s.store.Accounts().Delete(ctx, targetID); err != nil {
		return err
	}

	s.logger.Info(ctx, "Account deleted", "account_id", targetID, "actor_id", actorID)
	return nil
}
