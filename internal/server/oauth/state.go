package oauth

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/common"
)

const (
	StateCookieName = "oauthstate"
	stateTTL        = 10 * time.Minute
)

var ErrInvalidState = errors.New("invalid oauth state")

// IssueState stores a fresh random state in a short-lived cookie and returns
// it for the authorization URL.
func IssueState(w http.ResponseWriter, secure bool) (string, error) {
	state, err := common.MakeRandHexString(16)
	if err != nil {
		return "", err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     StateCookieName,
		Value:    state,
		Path:     "/",
		MaxAge:   int(stateTTL.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
	return state, nil
}

// CheckState compares the state query parameter with the cookie and clears
// the cookie either way.
func CheckState(w http.ResponseWriter, r *http.Request) error {
	http.SetCookie(w, &http.Cookie{
		Name:     StateCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	c, err := r.Cookie(StateCookieName)
	if err != nil || c.Value == "" {
		return ErrInvalidState
	}
	got := r.URL.Query().Get("state")
	if subtle.ConstantTimeCompare([]byte(got), []byte(c.Value)) != 1 {
		return ErrInvalidState
	}
	return nil
}
