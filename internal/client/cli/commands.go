package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/authkeeper/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var errUsage = errors.New("usage")

// argOrPrompt returns args[i] if present, otherwise asks for it.
func (a *App) argOrPrompt(args []string, i int, prompt string) (string, error) {
	if i < len(args) {
		return args[i], nil
	}
	return getSimpleText(a.reader, prompt, a.out)
}

func (a *App) readSecret(prompt string) (string, error) {
	pw, err := getPassword(prompt, a.out)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(pw)
	return string(pw), nil
}

func (a *App) Signup(ctx context.Context, args []string) error {
	username, err := a.argOrPrompt(args, 0, "Enter username")
	if err != nil {
		return err
	}
	email, err := a.argOrPrompt(args, 1, "Enter email")
	if err != nil {
		return err
	}
	password, err := a.readSecret("Enter password")
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	acc, err := a.client.Signup(ctx, username, email, password)
	if err != nil {
		return err
	}
	a.printf("Account created, signed in as %s\n", acc.Username)
	return nil
}

func (a *App) Login(ctx context.Context, args []string) error {
	email, err := a.argOrPrompt(args, 0, "Enter email")
	if err != nil {
		return err
	}
	password, err := a.readSecret("Enter password")
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	acc, err := a.client.Login(ctx, email, password)
	if err != nil {
		return err
	}
	a.printf("Signed in as %s (%s)\n", acc.Username, acc.Role)
	return nil
}

func (a *App) Logout(context.Context, []string) error {
	a.client.Logout()
	a.printf("Signed out\n")
	return nil
}

func (a *App) Me(ctx context.Context, _ []string) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	acc, err := a.client.Me(ctx)
	if err != nil {
		return err
	}
	a.printAccount(acc)
	return nil
}

func (a *App) ForgotPassword(ctx context.Context, args []string) error {
	email, err := a.argOrPrompt(args, 0, "Enter email")
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	msg, err := a.client.ForgotPassword(ctx, email)
	if err != nil {
		return err
	}
	a.printf("%s\n", msg)
	return nil
}

func (a *App) ValidateToken(ctx context.Context, args []string) error {
	token, err := a.argOrPrompt(args, 0, "Enter reset token")
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.client.ValidateResetToken(ctx, token); err != nil {
		return err
	}
	a.printf("Token is valid\n")
	return nil
}

func (a *App) ResetPassword(ctx context.Context, args []string) error {
	token, err := a.argOrPrompt(args, 0, "Enter reset token")
	if err != nil {
		return err
	}
	password, err := a.readSecret("Enter new password")
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.client.ResetPassword(ctx, token, password); err != nil {
		return err
	}
	a.printf("Password has been reset\n")
	return nil
}

func (a *App) SetRole(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: setrole <account-id> <user|moderator|admin>", errUsage)
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	acc, err := a.client.SetRole(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	a.printf("Role of %s is now %s\n", acc.Username, acc.Role)
	return nil
}

func (a *App) DeleteUser(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: delete <account-id>", errUsage)
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.client.DeleteAccount(ctx, args[0]); err != nil {
		return err
	}
	a.printf("Account %s deleted\n", args[0])
	return nil
}

func (a *App) Ping(ctx context.Context, _ []string) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.client.Ping(ctx); err != nil {
		return err
	}
	a.printf("OK\n")
	return nil
}
