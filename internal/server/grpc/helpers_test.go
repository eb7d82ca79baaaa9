package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/authpb"
	"github.com/dmitrijs2005/authkeeper/internal/logging"
	"github.com/dmitrijs2005/authkeeper/internal/server/auth"
	"github.com/dmitrijs2005/authkeeper/internal/server/mail"
	"github.com/dmitrijs2005/authkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/authkeeper/internal/server/services"
	"github.com/dmitrijs2005/authkeeper/internal/timex"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"
)

type discardQueue struct{}

func (discardQueue) Enqueue(mail.Message) {}

type testDeps struct {
	store    *repomanager.Store
	identity *services.IdentityService
	reset    *services.ResetService
	gate     *services.Gate
	admin    *services.AdminService
}

func newTestDeps() *testDeps {
	store := repomanager.NewMemoryStore()
	clock := timex.NewFixedClock(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	hasher := auth.NewPasswordHasher(bcrypt.MinCost, 2)
	tokens := auth.NewTokenIssuer([]byte("k"), auth.DefaultTokenTTL, clock)
	l := logging.Nop()

	return &testDeps{
		store:    store,
		identity: services.NewIdentityService(store, hasher, tokens, discardQueue{}, clock, l),
		reset:    services.NewResetService(store, hasher, discardQueue{}, clock, l, time.Hour, "http://localhost/login.html"),
		gate:     services.NewGate(store, tokens),
		admin:    services.NewAdminService(store, clock, l),
	}
}

func (d *testDeps) server() *GRPCServer {
	return NewGRPCServer("127.0.0.1:0", logging.Nop(), d.identity, d.reset, d.gate, d.admin)
}

// startBufconn serves s in memory and returns a connected client.
func startBufconn(t *testing.T, s *GRPCServer) (authpb.AuthServiceClient, *grpc.ClientConn) {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = s.Serve(ctx, lis)
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("grpc.NewClient error: %v", err)
	}

	t.Cleanup(func() {
		conn.Close()
		cancel()
		<-done
	})
	return authpb.NewAuthServiceClient(conn), conn
}
