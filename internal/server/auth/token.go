// Package auth holds the credential primitives of the server: bearer token
// issuing and verification, password hashing, and request context helpers.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/timex"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is the validity window of a bearer token.
const DefaultTokenTTL = 7 * 24 * time.Hour

// TokenIssuer signs and verifies HS256 bearer tokens. A token binds the
// account id (subject) and an expiry, nothing else.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	clock  timex.Clock
}

func NewTokenIssuer(secret []byte, ttl time.Duration, clock timex.Clock) *TokenIssuer {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	if clock == nil {
		clock = timex.SystemClock()
	}
	return &TokenIssuer{secret: secret, ttl: ttl, clock: clock}
}

// Issue returns a signed token for accountID and the moment it expires.
func (i *TokenIssuer) Issue(accountID string) (string, time.Time, error) {
	if accountID == "" {
		return "", time.Time{}, errors.New("empty account id")
	}

	exp := i.clock.Now().Add(i.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   accountID,
		ExpiresAt: jwt.NewNumericDate(exp),
	})

	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// Verify returns the account id bound to token. It fails with
// common.ErrTokenExpired past expiry and common.ErrMalformedToken otherwise.
func (i *TokenIssuer) Verify(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	_, err := jwt.ParseWithClaims(token, claims,
		func(t *jwt.Token) (any, error) {
			return i.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.clock.Now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", fmt.Errorf("%w: %v", common.ErrMalformedToken, err)
	}

	if claims.Subject == "" {
		return "", fmt.Errorf("%w: missing subject", common.ErrMalformedToken)
	}
	return claims.Subject, nil
}
