package oauth

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/server/models"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

type googleProfile struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
}

type Google struct {
	conf        *oauth2.Config
	userInfoURL string
}

func NewGoogle(c Config) *Google {
	return &Google{
		conf: c.oauth2Config(google.Endpoint,
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		),
		userInfoURL: googleUserInfoURL,
	}
}

func (g *Google) Name() models.Provider { return models.ProviderGoogle }

func (g *Google) AuthCodeURL(state string) string {
	return g.conf.AuthCodeURL(state)
}

// Exchange fetches the userinfo profile. Unverified emails are dropped so
// they can never be used to link onto an existing account.
func (g *Google) Exchange(ctx context.Context, code string) (models.ProviderAssertion, error) {
	client, err := exchange(ctx, g.conf, code)
	if err != nil {
		return models.ProviderAssertion{}, err
	}

	var p googleProfile
	if err := getJSON(ctx, client, g.userInfoURL, &p); err != nil {
		return models.ProviderAssertion{}, err
	}
	if strings.TrimSpace(p.ID) == "" {
		return models.ProviderAssertion{}, common.ErrInvalidAssertion
	}

	a := models.ProviderAssertion{
		Provider:    models.ProviderGoogle,
		ProviderID:  p.ID,
		DisplayName: p.Name,
	}
	if p.VerifiedEmail {
		a.Email = p.Email
	}
	return a, nil
}
