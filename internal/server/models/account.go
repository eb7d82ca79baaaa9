// Package models defines the identity records persisted by the server.
package models

import (
	"strings"
	"time"
)

// Account is the canonical identity that unifies every way a person can
// sign in: a local password and any number of provider links.
type Account struct {
	ID       string
	Username string
	// Email is empty for provider-only accounts whose provider withheld it.
	Email string
	// PasswordHash is empty for accounts without a local credential.
	PasswordHash string
	ProviderIDs  map[Provider]string
	Role         Role

	// ResetTokenHash is the SHA-256 digest of the pending reset token.
	ResetTokenHash   string
	ResetTokenExpiry *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasPassword reports whether the account can log in with a local password.
func (a *Account) HasPassword() bool {
	return a.PasswordHash != ""
}

// ProviderID returns the subject id linked for provider, if any.
func (a *Account) ProviderID(p Provider) (string, bool) {
	id, ok := a.ProviderIDs[p]
	return id, ok && id != ""
}

// Clone returns a deep copy.
func (a *Account) Clone() *Account {
	c := *a
	if a.ProviderIDs != nil {
		c.ProviderIDs = make(map[Provider]string, len(a.ProviderIDs))
		for k, v := range a.ProviderIDs {
			c.ProviderIDs[k] = v
		}
	}
	if a.ResetTokenExpiry != nil {
		exp := *a.ResetTokenExpiry
		c.ResetTokenExpiry = &exp
	}
	return &c
}

// Sanitized returns a copy without credential material. It is the
// projection handed to gated requests and to API responses.
func (a *Account) Sanitized() *Account {
	c := a.Clone()
	c.PasswordHash = ""
	c.ResetTokenHash = ""
	c.ResetTokenExpiry = nil
	return c
}

// NormalizeEmail trims and lower-cases an email address so every lookup and
// write agrees on one spelling.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
