package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/server/auth"
	"github.com/dmitrijs2005/authkeeper/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGate_Authenticate(t *testing.T) {
	env := newTestEnv(t)
	res := env.signup(t, "alice", "a@x.com", "secret123")

	acc, err := env.gate.Authenticate(context.Background(), res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.Account.ID, acc.ID)
	assert.Empty(t, acc.PasswordHash)

	acc, err = env.gate.AuthenticateHeader(context.Background(), "Bearer "+res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.Account.ID, acc.ID)
}

func TestGate_RoleIsReadFresh(t *testing.T) {
	env := newTestEnv(t)
	res := env.signup(t, "alice", "a@x.com", "secret123")

	_, err := env.admin.ChangeRole(context.Background(), res.Account.ID, models.RoleAdmin)
	require.NoError(t, err)

	acc, err := env.gate.Authenticate(context.Background(), res.Token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, acc.Role)
	assert.NoError(t, Authorize(acc, models.RoleAdmin))
}

func TestGate_Rejections(t *testing.T) {
	env := newTestEnv(t)
	res := env.signup(t, "alice", "a@x.com", "secret123")

	other := auth.NewTokenIssuer([]byte("other-secret"), auth.DefaultTokenTTL, env.clock)
	forged, _, err := other.Issue(res.Account.ID)
	require.NoError(t, err)

	ghost, _, err := env.tokens.Issue("no-such-account")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		also  error
	}{
		{name: "missing", token: ""},
		{name: "garbage", token: "abc", also: common.ErrMalformedToken},
		{name: "wrong key", token: forged, also: common.ErrMalformedToken},
		{name: "subject gone", token: ghost},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.gate.Authenticate(context.Background(), tt.token)
			assert.ErrorIs(t, err, common.ErrUnauthenticated)
			if tt.also != nil {
				assert.ErrorIs(t, err, tt.also)
			}
		})
	}

	_, err = env.gate.AuthenticateHeader(context.Background(), "Basic abc")
	assert.ErrorIs(t, err, common.ErrUnauthenticated)
}

func TestGate_ExpiredToken(t *testing.T) {
	env := newTestEnv(t)
	res := env.signup(t, "alice", "a@x.com", "secret123")

	env.clock.Advance(auth.DefaultTokenTTL)

	_, err := env.gate.Authenticate(context.Background(), res.Token)
	assert.ErrorIs(t, err, common.ErrUnauthenticated)
	assert.ErrorIs(t, err, common.ErrTokenExpired)
}

func TestGate_DeletedAccountIsRejected(t *testing.T) {
	env := newTestEnv(t)
	admin := env.signup(t, "root", "root@x.com", "secret123")
	victim := env.signup(t, "alice", "a@x.com", "secret123")

	require.NoError(t, env.admin.DeleteAccount(context.Background(), admin.Account.ID, victim.Account.ID))

	_, err := env.gate.Authenticate(context.Background(), victim.Token)
	assert.ErrorIs(t, err, common.ErrUnauthenticated)
}

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name    string
		acc     *models.Account
		allowed []models.Role
		wantErr error
	}{
		{"admin on admin route", &models.Account{Role: models.RoleAdmin}, []models.Role{models.RoleAdmin}, nil},
		{"moderator allowed", &models.Account{Role: models.RoleModerator}, []models.Role{models.RoleAdmin, models.RoleModerator}, nil},
		{"user on admin route", &models.Account{Role: models.RoleUser}, []models.Role{models.RoleAdmin}, common.ErrForbidden},
		{"empty allow set", &models.Account{Role: models.RoleAdmin}, nil, common.ErrForbidden},
		{"no account", nil, []models.Role{models.RoleUser}, common.ErrUnauthenticated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.acc, tt.allowed...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
