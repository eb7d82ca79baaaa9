package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/authkeeper/internal/logging"
	"github.com/dmitrijs2005/authkeeper/internal/server/models"
	"github.com/dmitrijs2005/authkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/authkeeper/internal/server/services"
	"github.com/dmitrijs2005/authkeeper/internal/timex"
)

type promoter interface {
	ChangeRoleByEmail(ctx context.Context, email string, role models.Role) (*models.Account, error)
}

// openPromoter connects to the store directly. It is a seam for tests.
var openPromoter = func(ctx context.Context, dsn string) (promoter, func() error, error) {
	store, err := repomanager.Open(ctx, dsn)
	if err != nil {
		return nil, nil, err
	}
	return services.NewAdminService(store, timex.SystemClock(), logging.Nop()), store.Close, nil
}

// Promote grants the admin role to the account with the given email,
// bypassing the API. It is how the first administrator is created.
func (a *App) Promote(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: promote <email>", errUsage)
	}

	p, closeFn, err := openPromoter(ctx, a.config.DatabaseDSN)
	if err != nil {
		return err
	}
	defer closeFn()

	acc, err := p.ChangeRoleByEmail(ctx, args[0], models.RoleAdmin)
	if err != nil {
		return err
	}
	a.printf("%s is now %s\n", acc.Username, acc.Role)
	return nil
}
