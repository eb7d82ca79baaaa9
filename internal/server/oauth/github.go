package oauth

import (
	"context"
	"strconv"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/server/models"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
)

const githubAPIURL = "https://api.github.com"

type githubUser struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type githubEmail struct {
	Email    string `json:"email"`
	Primary  bool   `json:"primary"`
	Verified bool   `json:"verified"`
}

type GitHub struct {
	conf   *oauth2.Config
	apiURL string
}

func NewGitHub(c Config) *GitHub {
	return &GitHub{
		conf:   c.oauth2Config(github.Endpoint, "read:user", "user:email"),
		apiURL: githubAPIURL,
	}
}

func (g *GitHub) Name() models.Provider { return models.ProviderGitHub }

func (g *GitHub) AuthCodeURL(state string) string {
	return g.conf.AuthCodeURL(state)
}

// Exchange reads /user. A user with a private email is asked for /user/emails
// and the primary verified address is used.
func (g *GitHub) Exchange(ctx context.Context, code string) (models.ProviderAssertion, error) {
	client, err := exchange(ctx, g.conf, code)
	if err != nil {
		return models.ProviderAssertion{}, err
	}

	var u githubUser
	if err := getJSON(ctx, client, g.apiURL+"/user", &u); err != nil {
		return models.ProviderAssertion{}, err
	}
	if u.ID == 0 {
		return models.ProviderAssertion{}, common.ErrInvalidAssertion
	}

	email := u.Email
	if email == "" {
		var emails []githubEmail
		if err := getJSON(ctx, client, g.apiURL+"/user/emails", &emails); err != nil {
			return models.ProviderAssertion{}, err
		}
		email = pickGitHubEmail(emails)
	}

	name := u.Name
	if name == "" {
		name = u.Login
	}

	return models.ProviderAssertion{
		Provider:    models.ProviderGitHub,
		ProviderID:  strconv.FormatInt(u.ID, 10),
		Email:       email,
		DisplayName: name,
	}, nil
}

func pickGitHubEmail(emails []githubEmail) string {
	fallback := ""
	for _, e := range emails {
		if !e.Verified {
			continue
		}
		if e.Primary {
			return e.Email
		}
		if fallback == "" {
			fallback = e.Email
		}
	}
	return fallback
}
