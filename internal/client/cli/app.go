package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/dmitrijs2005/authkeeper/internal/authpb"
	"github.com/dmitrijs2005/authkeeper/internal/client/client"
	"github.com/dmitrijs2005/authkeeper/internal/client/config"
)

// AuthClient is the API surface authctl needs; *client.GRPCClient
// implements it.
type AuthClient interface {
	Signup(ctx context.Context, username, email, password string) (*authpb.Account, error)
	Login(ctx context.Context, email, password string) (*authpb.Account, error)
	Logout()
	IsAuthenticated() bool
	Me(ctx context.Context) (*authpb.Account, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	ValidateResetToken(ctx context.Context, token string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	SetRole(ctx context.Context, accountID, role string) (*authpb.Account, error)
	DeleteAccount(ctx context.Context, accountID string) error
	Ping(ctx context.Context) error
	Close() error
}

type App struct {
	config *config.Config
	client AuthClient
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewAuthKeeperClient(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}
	return &App{config: c, client: apiClient, reader: bufio.NewReader(os.Stdin), out: os.Stdout}, nil
}

// Run executes args as a single command, or starts the REPL when args is
// empty. It returns the error of a single command.
func (a *App) Run(ctx context.Context, args []string) error {
	defer a.client.Close()

	if len(args) > 0 {
		_, err := a.dispatch(ctx, args[0], args[1:])
		return err
	}

	fmt.Fprintln(a.out, "Welcome to authctl (type 'help' for commands)")
	runREPL(ctx, a, a.reader)
	return nil
}

func (a *App) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config == nil || a.config.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) printAccount(acc *authpb.Account) {
	if acc == nil {
		return
	}
	a.printf("id:       %s\n", acc.Id)
	a.printf("username: %s\n", acc.Username)
	if acc.Email != "" {
		a.printf("email:    %s\n", acc.Email)
	}
	a.printf("role:     %s\n", acc.Role)
	if len(acc.Providers) > 0 {
		names := make([]string, 0, len(acc.Providers))
		for p := range acc.Providers {
			names = append(names, p)
		}
		sort.Strings(names)
		a.printf("linked:   %s\n", strings.Join(names, ", "))
	}
}
