package httpserver

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/authkeeper/internal/authpb"
	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/server/auth"
	"github.com/dmitrijs2005/authkeeper/internal/server/oauth"
	"github.com/gorilla/mux"
)

func (s *HTTPServer) provider(w http.ResponseWriter, r *http.Request) (oauth.Provider, bool) {
	name := mux.Vars(r)["provider"]
	p, ok := s.providers.Get(name)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "unknown provider: " + name})
	}
	return p, ok
}

func (s *HTTPServer) oauthStart(w http.ResponseWriter, r *http.Request) {
	p, ok := s.provider(w, r)
	if !ok {
		return
	}

	state, err := oauth.IssueState(w, s.secureCookies)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	http.Redirect(w, r, p.AuthCodeURL(state), http.StatusFound)
}

func (s *HTTPServer) oauthCallback(w http.ResponseWriter, r *http.Request) {
	p, ok := s.provider(w, r)
	if !ok {
		return
	}

	if err := oauth.CheckState(w, r); err != nil {
		s.logger.Warn(r.Context(), "oauth state mismatch", "provider", p.Name())
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}

	if e := r.URL.Query().Get("error"); e != "" {
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: "authorization denied: " + e})
		return
	}

	assertion, err := p.Exchange(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	res, err := s.identity.OAuthCallback(r.Context(), assertion)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "OAuth sign-in", "provider", p.Name(), "account_id", res.Account.ID)
	writeProto(w, http.StatusOK, &authpb.AuthResponse{
		Token:     res.Token,
		ExpiresAt: authpb.Timestamp(res.ExpiresAt),
		Account:   authpb.FromAccount(res.Account),
	})
}

func (s *HTTPServer) validateReset(w http.ResponseWriter, r *http.Request) {
	if _, err := s.reset.ValidateToken(r.Context(), r.URL.Query().Get("token")); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"valid": true})
}

func (s *HTTPServer) me(w http.ResponseWriter, r *http.Request) {
	acc, ok := auth.AccountFromContext(r.Context())
	if !ok {
		s.writeError(w, r, common.ErrUnauthenticated)
		return
	}
	writeProto(w, http.StatusOK, &authpb.AccountResponse{Account: authpb.FromAccount(acc)})
}

// requireAccount resolves the bearer token and stores the account in the
// request context.
func (s *HTTPServer) requireAccount(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		acc, err := s.gate.AuthenticateHeader(r.Context(), r.Header.Get("Authorization"))
		if err != nil {
			if errors.Is(err, common.ErrUnauthenticated) {
				w.Header().Set("WWW-Authenticate", common.BearerScheme)
			}
			s.writeError(w, r, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(auth.WithAccount(r.Context(), acc)))
	})
}
