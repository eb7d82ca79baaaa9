package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/server/models"
)

func TestParseBearer(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "ok", header: "Bearer abc.def", want: "abc.def"},
		{name: "lowercase scheme", header: "bearer tok", want: "tok"},
		{name: "padded", header: "  Bearer   tok  ", want: "tok"},
		{name: "empty", header: "", wantErr: true},
		{name: "no token", header: "Bearer", wantErr: true},
		{name: "blank token", header: "Bearer   ", wantErr: true},
		{name: "basic auth", header: "Basic dXNlcjpwYXNz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearer(tt.header)
			if tt.wantErr {
				if !errors.Is(err, common.ErrUnauthenticated) {
					t.Fatalf("expected ErrUnauthenticated, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("token = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAccountContext(t *testing.T) {
	if _, ok := AccountFromContext(context.Background()); ok {
		t.Fatal("empty context must not carry an account")
	}

	a := &models.Account{ID: "1", Role: models.RoleAdmin}
	got, ok := AccountFromContext(WithAccount(context.Background(), a))
	if !ok || got.ID != "1" {
		t.Fatalf("unexpected account: %+v, %v", got, ok)
	}
}
