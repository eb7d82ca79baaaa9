package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	calls []string
	out   strings.Builder
	fail  bool
}

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, strings.TrimSpace(name+" "+strings.Join(args, " ")))
	if f.fail {
		return errors.New("boom")
	}
	return nil
}

func (f *fakeExec) Signup(_ context.Context, a []string) error         { return f.record("signup", a) }
func (f *fakeExec) Login(_ context.Context, a []string) error          { return f.record("login", a) }
func (f *fakeExec) Logout(_ context.Context, a []string) error         { return f.record("logout", a) }
func (f *fakeExec) Me(_ context.Context, a []string) error             { return f.record("me", a) }
func (f *fakeExec) ForgotPassword(_ context.Context, a []string) error { return f.record("forgot", a) }
func (f *fakeExec) ValidateToken(_ context.Context, a []string) error  { return f.record("validate", a) }
func (f *fakeExec) ResetPassword(_ context.Context, a []string) error  { return f.record("reset", a) }
func (f *fakeExec) SetRole(_ context.Context, a []string) error        { return f.record("setrole", a) }
func (f *fakeExec) DeleteUser(_ context.Context, a []string) error     { return f.record("delete", a) }
func (f *fakeExec) Promote(_ context.Context, a []string) error        { return f.record("promote", a) }
func (f *fakeExec) Ping(_ context.Context, a []string) error           { return f.record("ping", a) }
func (f *fakeExec) statusLine() string                                 { return "status" }
func (f *fakeExec) printf(format string, args ...any)                  { fmt.Fprintf(&f.out, format, args...) }

func TestRunREPL_DispatchesUntilExit(t *testing.T) {
	input := strings.Join([]string{
		"help",
		"",
		"login a@x.com",
		"set-role 42 admin",
		"delete-user 42",
		"forgot-password a@x.com",
		"reset tok",
		"validate tok",
		"promote root@x.com",
		"bogus",
		"me",
		"exit",
		"ping",
	}, "\n")

	f := &fakeExec{}
	runREPL(context.Background(), f, bufio.NewReader(strings.NewReader(input)))

	assert.Equal(t, []string{
		"login a@x.com",
		"setrole 42 admin",
		"delete 42",
		"forgot a@x.com",
		"reset tok",
		"validate tok",
		"promote root@x.com",
		"me",
	}, f.calls)

	out := f.out.String()
	assert.Contains(t, out, "Available commands")
	assert.Contains(t, out, "unknown command: bogus")
	assert.Contains(t, out, "Bye!")
	assert.Contains(t, out, "authctl (status)> ")
}

func TestRunREPL_PrintsErrorsAndContinues(t *testing.T) {
	f := &fakeExec{fail: true}
	runREPL(context.Background(), f, bufio.NewReader(strings.NewReader("me\nping")))

	assert.Equal(t, []string{"me", "ping"}, f.calls)
	assert.Equal(t, 2, strings.Count(f.out.String(), "error: boom"))
}

func TestDispatch_Quit(t *testing.T) {
	f := &fakeExec{}

	quit, err := dispatch(context.Background(), f, "quit", nil)
	assert.True(t, quit)
	assert.NoError(t, err)

	quit, err = dispatch(context.Background(), f, "signup", []string{"alice"})
	assert.False(t, quit)
	assert.NoError(t, err)
	assert.Equal(t, []string{"signup alice"}, f.calls)
}
