package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/server/auth"
	"github.com/dmitrijs2005/authkeeper/internal/server/models"
	"github.com/dmitrijs2005/authkeeper/internal/server/repositories/repomanager"
)

// Gate turns a bearer token into the current account. The account (and so
// its role) is loaded fresh on every call.
type Gate struct {
	store  *repomanager.Store
	tokens *auth.TokenIssuer
}

func NewGate(store *repomanager.Store, t *auth.TokenIssuer) *Gate {
	return &Gate{store: store, tokens: t}
}

// Authenticate verifies token and loads its account. Every rejection matches
// common.ErrUnauthenticated; token failures also match the specific token
// error.
func (g *Gate) Authenticate(ctx context.Context, token string) (*models.Account, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: missing token", common.ErrUnauthenticated)
	}

	id, err := g.tokens.Verify(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrUnauthenticated, err)
	}

	acc, err := g.store.Accounts().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, fmt.Errorf("%w: account no longer exists", common.ErrUnauthenticated)
		}
		return nil, err
	}
	return acc, nil
}

// AuthenticateHeader is Authenticate for a raw Authorization header value.
func (g *Gate) AuthenticateHeader(ctx context.Context, header string) (*models.Account, error) {
	token, err := auth.ParseBearer(header)
	if err != nil {
		return nil, err
	}
	return g.Authenticate(ctx, token)
}

// Authorize fails with common.ErrForbidden unless the account's role is in
// allowed.
func Authorize(acc *models.Account, allowed ...models.Role) error {
	if acc == nil {
		return common.ErrUnauthenticated
	}
	if !acc.Role.In(allowed...) {
		return common.ErrForbidden
	}
	return nil
}
