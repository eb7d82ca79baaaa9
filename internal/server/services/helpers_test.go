package services

import (
	"bufio"
	"context"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/logging"
	"github.com/dmitrijs2005/authkeeper/internal/server/auth"
	"github.com/dmitrijs2005/authkeeper/internal/server/mail"
	"github.com/dmitrijs2005/authkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/authkeeper/internal/timex"
	"golang.org/x/crypto/bcrypt"
)

var testStart = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

type captureQueue struct {
	mu   sync.Mutex
	msgs []mail.Message
}

func (q *captureQueue) Enqueue(m mail.Message) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.msgs = append(q.msgs, m)
}

func (q *captureQueue) all() []mail.Message {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]mail.Message(nil), q.msgs...)
}

func (q *captureQueue) last(t *testing.T) mail.Message {
	t.Helper()
	msgs := q.all()
	if len(msgs) == 0 {
		t.Fatal("no message queued")
	}
	return msgs[len(msgs)-1]
}

type testEnv struct {
	store    *repomanager.Store
	clock    *timex.FixedClock
	queue    *captureQueue
	tokens   *auth.TokenIssuer
	identity *IdentityService
	reset    *ResetService
	gate     *Gate
	admin    *AdminService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWithStore(t, repomanager.NewMemoryStore())
}

func newTestEnvWithStore(t *testing.T, store *repomanager.Store) *testEnv {
	t.Helper()

	clock := timex.NewFixedClock(testStart)
	queue := &captureQueue{}
	hasher := auth.NewPasswordHasher(bcrypt.MinCost, 4)
	tokens := auth.NewTokenIssuer([]byte("test-secret"), auth.DefaultTokenTTL, clock)
	l := logging.Nop()

	return &testEnv{
		store:    store,
		clock:    clock,
		queue:    queue,
		tokens:   tokens,
		identity: NewIdentityService(store, hasher, tokens, queue, clock, l),
		reset:    NewResetService(store, hasher, queue, clock, l, time.Hour, "http://localhost:8080/login.html"),
		gate:     NewGate(store, tokens),
		admin:    NewAdminService(store, clock, l),
	}
}

func (e *testEnv) signup(t *testing.T, username, email, password string) *AuthResult {
	t.Helper()
	res, err := e.identity.Signup(context.Background(), username, email, password)
	if err != nil {
		t.Fatalf("Signup(%q) error: %v", email, err)
	}
	return res
}

// tokenFromMessage extracts the reset token from the link in a reset email.
func tokenFromMessage(t *testing.T, m mail.Message) string {
	t.Helper()
	sc := bufio.NewScanner(strings.NewReader(m.Body))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if !strings.HasPrefix(line, "http") {
			continue
		}
		u, err := url.Parse(line)
		if err != nil {
			t.Fatalf("bad link %q: %v", line, err)
		}
		return u.Query().Get("token")
	}
	t.Fatalf("no link in message body %q", m.Body)
	return ""
}
