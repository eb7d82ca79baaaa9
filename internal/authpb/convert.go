package authpb

import (
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/server/models"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Timestamp converts t to its wire form. The zero time maps to nil.
func Timestamp(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

// FromAccount converts a stored account to its wire form. Credential fields
// never leave the server.
func FromAccount(a *models.Account) *Account {
	if a == nil {
		return nil
	}
	out := &Account{
		Id:        a.ID,
		Username:  a.Username,
		Email:     a.Email,
		Role:      string(a.Role),
		CreatedAt: Timestamp(a.CreatedAt),
		UpdatedAt: Timestamp(a.UpdatedAt),
	}
	for p, id := range a.ProviderIDs {
		if id == "" {
			continue
		}
		if out.Providers == nil {
			out.Providers = make(map[string]string, len(a.ProviderIDs))
		}
		out.Providers[string(p)] = id
	}
	return out
}
