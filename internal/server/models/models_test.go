package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	for _, s := range []string{"user", "admin", "moderator"} {
		r, ok := ParseRole(s)
		assert.True(t, ok, s)
		assert.Equal(t, Role(s), r)
	}
	_, ok := ParseRole("owner")
	assert.False(t, ok)
	_, ok = ParseRole("")
	assert.False(t, ok)
}

func TestRole_In(t *testing.T) {
	assert.True(t, RoleAdmin.In(RoleAdmin, RoleModerator))
	assert.False(t, RoleUser.In(RoleAdmin, RoleModerator))
	assert.False(t, RoleUser.In())
}

func TestParseProvider(t *testing.T) {
	p, ok := ParseProvider("github")
	assert.True(t, ok)
	assert.Equal(t, ProviderGitHub, p)
	_, ok = ParseProvider("facebook")
	assert.False(t, ok)
}

func TestAccount_SanitizedDropsCredentials(t *testing.T) {
	exp := time.Now().Add(time.Hour)
	a := &Account{
		ID:               "1",
		PasswordHash:     "$2a$12$hash",
		ResetTokenHash:   "digest",
		ResetTokenExpiry: &exp,
		ProviderIDs:      map[Provider]string{ProviderGoogle: "g1"},
	}

	s := a.Sanitized()
	assert.Empty(t, s.PasswordHash)
	assert.Empty(t, s.ResetTokenHash)
	assert.Nil(t, s.ResetTokenExpiry)
	assert.False(t, s.HasPassword())

	s.ProviderIDs[ProviderGitHub] = "x"
	_, linked := a.ProviderID(ProviderGitHub)
	assert.False(t, linked, "clone must not share the provider map")
	assert.True(t, a.HasPassword())
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@x.com", NormalizeEmail("  A@X.com "))
}
