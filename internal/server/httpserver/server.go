// Package httpserver is the browser-facing edge: the OAuth redirect and
// callback endpoints, the reset-link landing check and a bearer protected
// /me.
package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/logging"
	"github.com/dmitrijs2005/authkeeper/internal/server/models"
	"github.com/dmitrijs2005/authkeeper/internal/server/oauth"
	"github.com/dmitrijs2005/authkeeper/internal/server/services"
	"github.com/gorilla/mux"
)

const shutdownTimeout = 5 * time.Second

type OAuthResolver interface {
	OAuthCallback(ctx context.Context, a models.ProviderAssertion) (*services.AuthResult, error)
}

type ResetValidator interface {
	ValidateToken(ctx context.Context, token string) (*models.Account, error)
}

type Authenticator interface {
	AuthenticateHeader(ctx context.Context, header string) (*models.Account, error)
}

type HTTPServer struct {
	address       string
	logger        logging.Logger
	identity      OAuthResolver
	reset         ResetValidator
	gate          Authenticator
	providers     *oauth.Registry
	secureCookies bool
}

func NewHTTPServer(a string, l logging.Logger, is OAuthResolver, rs ResetValidator, g Authenticator,
	providers *oauth.Registry, secureCookies bool) *HTTPServer {
	return &HTTPServer{
		address:       a,
		logger:        l.With("module", "http_server"),
		identity:      is,
		reset:         rs,
		gate:          g,
		providers:     providers,
		secureCookies: secureCookies,
	}
}

// Router wires every route of the edge.
func (s *HTTPServer) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.logRequests)

	api := r.PathPrefix("/api/auth").Subrouter()
	api.HandleFunc("/reset-password", s.validateReset).Methods(http.MethodGet)
	api.Handle("/me", s.requireAccount(http.HandlerFunc(s.me))).Methods(http.MethodGet)
	api.HandleFunc("/{provider}", s.oauthStart).Methods(http.MethodGet)
	api.HandleFunc("/{provider}/callback", s.oauthCallback).Methods(http.MethodGet)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
	}).Methods(http.MethodGet)

	return r
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "Starting HTTP server", "address", s.address)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info(context.Background(), "Stopping HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *HTTPServer) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Debug(r.Context(), "http request",
			"method", r.Method, "path", r.URL.Path, "status", rec.status, "duration", time.Since(start))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
