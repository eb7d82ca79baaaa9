package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

const helpText = `Available commands:
  signup [username] [email]          create an account and sign in
  login [email]                      sign in
  logout                             forget the current token
  me                                 show the signed-in account
  forgot [email]                     request a password reset email
  validate <token>                   check a reset token without using it
  reset <token>                      set a new password with a reset token
  setrole <account-id> <role>        change a role (admin)
  delete <account-id>                remove an account (admin)
  promote <email>                    make an account admin, directly in the store
  ping                               check the server
  exit | quit`

// execIface is the command surface the dispatcher needs. *App satisfies it;
// tests provide a stub.
type execIface interface {
	Signup(ctx context.Context, args []string) error
	Login(ctx context.Context, args []string) error
	Logout(ctx context.Context, args []string) error
	Me(ctx context.Context, args []string) error
	ForgotPassword(ctx context.Context, args []string) error
	ValidateToken(ctx context.Context, args []string) error
	ResetPassword(ctx context.Context, args []string) error
	SetRole(ctx context.Context, args []string) error
	DeleteUser(ctx context.Context, args []string) error
	Promote(ctx context.Context, args []string) error
	Ping(ctx context.Context, args []string) error
	statusLine() string
	printf(format string, args ...any)
}

func (a *App) statusLine() string {
	if a.client.IsAuthenticated() {
		return "signed in"
	}
	return "anonymous"
}

func (a *App) dispatch(ctx context.Context, cmd string, args []string) (quit bool, err error) {
	return dispatch(ctx, a, cmd, args)
}

func dispatch(ctx context.Context, a execIface, cmd string, args []string) (bool, error) {
	var err error
	switch cmd {
	case "help":
		a.printf("%s\n", helpText)
	case "signup":
		err = a.Signup(ctx, args)
	case "login":
		err = a.Login(ctx, args)
	case "logout":
		err = a.Logout(ctx, args)
	case "me":
		err = a.Me(ctx, args)
	case "forgot", "forgot-password":
		err = a.ForgotPassword(ctx, args)
	case "validate":
		err = a.ValidateToken(ctx, args)
	case "reset", "reset-password":
		err = a.ResetPassword(ctx, args)
	case "setrole", "set-role":
		err = a.SetRole(ctx, args)
	case "delete", "delete-user":
		err = a.DeleteUser(ctx, args)
	case "promote":
		err = a.Promote(ctx, args)
	case "ping":
		err = a.Ping(ctx, args)
	case "exit", "quit":
		a.printf("Bye!\n")
		return true, nil
	default:
		err = fmt.Errorf("unknown command: %s", cmd)
	}
	return false, err
}

// runREPL reads commands line by line until EOF or exit. Command errors are
// printed and the loop continues. Prompts inside commands share reader, so
// it must not be wrapped in a scanner that reads ahead.
func runREPL(ctx context.Context, a execIface, reader *bufio.Reader) {
	for {
		a.printf("authctl (%s)> ", a.statusLine())
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		quit, cmdErr := dispatch(ctx, a, parts[0], parts[1:])
		if cmdErr != nil {
			a.printf("error: %v\n", cmdErr)
		}
		if quit {
			return
		}
	}
}
