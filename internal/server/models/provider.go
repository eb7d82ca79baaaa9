package models

// Provider names a third-party identity service.
type Provider string

const (
	ProviderGoogle Provider = "google"
	ProviderGitHub Provider = "github"
)

// Providers lists every provider an account can link.
func Providers() []Provider {
	return []Provider{ProviderGoogle, ProviderGitHub}
}

func (p Provider) IsValid() bool {
	switch p {
	case ProviderGoogle, ProviderGitHub:
		return true
	default:
		return false
	}
}

func ParseProvider(s string) (Provider, bool) {
	p := Provider(s)
	return p, p.IsValid()
}

// ProviderAssertion is a verified identity handed over by an OAuth provider.
// Provider-specific verification happens before one of these is built.
type ProviderAssertion struct {
	Provider    Provider
	ProviderID  string
	Email       string
	DisplayName string
}
