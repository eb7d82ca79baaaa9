// Package server wires the AuthKeeper process together: storage, the
// identity services, the mail dispatcher and the gRPC and HTTP servers.
package server

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/authkeeper/internal/logging"
	"github.com/dmitrijs2005/authkeeper/internal/server/auth"
	"github.com/dmitrijs2005/authkeeper/internal/server/config"
	"github.com/dmitrijs2005/authkeeper/internal/server/httpserver"
	"github.com/dmitrijs2005/authkeeper/internal/server/mail"
	"github.com/dmitrijs2005/authkeeper/internal/server/oauth"
	"github.com/dmitrijs2005/authkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/authkeeper/internal/server/services"
	"github.com/dmitrijs2005/authkeeper/internal/timex"
	"golang.org/x/sync/errgroup"

	gs "github.com/dmitrijs2005/authkeeper/internal/server/grpc"
)

type App struct {
	config     *config.Config
	logger     logging.Logger
	store      *repomanager.Store
	dispatcher *mail.Dispatcher
	grpcServer *gs.GRPCServer
	httpServer *httpserver.HTTPServer
}

// logOutput is where the application logger writes.
var logOutput io.Writer = os.Stdout

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger, err := logging.New(c.LogBackend, c.LogLevel, logOutput)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	if c.SecretKey == config.DefaultSecretKey {
		logger.Warn(ctx, "using the development secret key; set AUTHKEEPER_SECRET_KEY in production")
	}

	store, err := repomanager.Open(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	mailer, err := mail.New(ctx, mail.Config{
		Backend:      c.MailBackend,
		From:         c.MailFrom,
		SMTPHost:     c.SMTPHost,
		SMTPPort:     c.SMTPPort,
		SMTPUser:     c.SMTPUser,
		SMTPPassword: c.SMTPPassword,
		SES: mail.SESConfig{
			Region:          c.SESRegion,
			AccessKeyID:     c.SESAccessKeyID,
			SecretAccessKey: c.SESSecretAccessKey,
			From:            c.MailFrom,
		},
	})
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("mail init error: %w", err)
	}
	dispatcher := mail.NewDispatcher(mailer, logger, c.MailWorkers, c.MailQueueSize)

	clock := timex.SystemClock()
	hasher := auth.NewPasswordHasher(c.PasswordHashCost, c.HashConcurrency)
	tokens := auth.NewTokenIssuer([]byte(c.SecretKey), c.TokenTTL, clock)

	identity := services.NewIdentityService(store, hasher, tokens, dispatcher, clock, logger)
	reset := services.NewResetService(store, hasher, dispatcher, clock, logger, c.ResetTokenTTL, c.ResetURL)
	gate := services.NewGate(store, tokens)
	admin := services.NewAdminService(store, clock, logger)

	return &App{
		config:     c,
		logger:     logger,
		store:      store,
		dispatcher: dispatcher,
		grpcServer: gs.NewGRPCServer(c.GRPCAddr, logger, identity, reset, gate, admin),
		httpServer: httpserver.NewHTTPServer(c.HTTPAddr, logger, identity, reset, gate, providers(c), c.SecureCookies),
	}, nil
}

// providers registers every OAuth provider that has client credentials.
func providers(c *config.Config) *oauth.Registry {
	var list []oauth.Provider

	google := oauth.Config{ClientID: c.GoogleClientID, ClientSecret: c.GoogleClientSecret, RedirectURL: c.GoogleRedirectURL}
	if google.Enabled() {
		list = append(list, oauth.NewGoogle(google))
	}

	github := oauth.Config{ClientID: c.GitHubClientID, ClientSecret: c.GitHubClientSecret, RedirectURL: c.GitHubRedirectURL}
	if github.Enabled() {
		list = append(list, oauth.NewGitHub(github))
	}

	return oauth.NewRegistry(list...)
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves until ctx is cancelled, a signal arrives or any component
// fails; the remaining components are then stopped.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")
	app.initSignalHandler(cancelFunc)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return app.dispatcher.Run(ctx) })
	g.Go(func() error { return app.grpcServer.Run(ctx) })
	g.Go(func() error { return app.httpServer.Run(ctx) })

	err := g.Wait()

	if cerr := app.store.Close(); cerr != nil {
		app.logger.Error(context.Background(), "db close error", "error", cerr)
	}
	app.logger.Info(context.Background(), "App stopped")
	return err
}
