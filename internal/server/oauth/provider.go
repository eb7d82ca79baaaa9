// Package oauth turns an OAuth2 authorization code into a verified
// models.ProviderAssertion. It knows nothing about accounts; resolving the
// assertion is left to the identity service.
package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"

	"github.com/dmitrijs2005/authkeeper/internal/server/models"
	"golang.org/x/oauth2"
)

// ErrExchange is returned when the provider rejects the code or the profile
// cannot be fetched.
var ErrExchange = errors.New("oauth exchange failed")

// Provider is one configured OAuth2 identity provider.
type Provider interface {
	Name() models.Provider
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (models.ProviderAssertion, error)
}

// Config holds the client registration for a single provider.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// Enabled reports whether the provider has been registered with credentials.
func (c Config) Enabled() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

func (c Config) oauth2Config(endpoint oauth2.Endpoint, scopes ...string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		RedirectURL:  c.RedirectURL,
		Endpoint:     endpoint,
		Scopes:       scopes,
	}
}

// exchange trades code for a token and returns an HTTP client authorised
// with it.
func exchange(ctx context.Context, conf *oauth2.Config, code string) (*http.Client, error) {
	if code == "" {
		return nil, fmt.Errorf("%w: missing code", ErrExchange)
	}
	tok, err := conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExchange, err)
	}
	return conf.Client(ctx, tok), nil
}

func getJSON(ctx context.Context, client *http.Client, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExchange, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%w: %s returned %d", ErrExchange, url, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: decode profile: %w", ErrExchange, err)
	}
	return nil
}

// Registry looks providers up by their path name.
type Registry struct {
	providers map[models.Provider]Provider
}

func NewRegistry(providers ...Provider) *Registry {
	r := &Registry{providers: make(map[models.Provider]Provider, len(providers))}
	for _, p := range providers {
		r.providers[p.Name()] = p
	}
	return r
}

func (r *Registry) Get(name string) (Provider, bool) {
	p, ok := r.providers[models.Provider(name)]
	return p, ok
}

// Names lists the registered providers in a stable order.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.providers))
	for name := range r.providers {
		out = append(out, string(name))
	}
	sort.Strings(out)
	return out
}
