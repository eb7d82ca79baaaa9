package grpc

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/authpb"
	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/logging"
	"github.com/dmitrijs2005/authkeeper/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func withBearer(ctx context.Context, token string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, common.AuthorizationHeaderName, common.BearerScheme+" "+token)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	srv := newTestDeps().server()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error on graceful stop: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop within timeout after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	t.Parallel()

	d := newTestDeps()
	srv := NewGRPCServer("127.0.0.1:99999", logging.Nop(), d.identity, d.reset, d.gate, d.admin)

	if err := srv.Run(context.Background()); err == nil {
		t.Fatal("expected error from Run on bad address, got nil")
	}
}

func TestRoundTrip_SignupLoginMe(t *testing.T) {
	client, _ := startBufconn(t, newTestDeps().server())
	ctx := context.Background()

	signed, err := client.Signup(ctx, &authpb.SignupRequest{Username: "alice", Email: "a@x.com", Password: "secret123"})
	require.NoError(t, err)
	require.NotEmpty(t, signed.Token)
	assert.Equal(t, "alice", signed.Account.Username)

	_, err = client.Signup(ctx, &authpb.SignupRequest{Username: "alice2", Email: "a@x.com", Password: "secret123"})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))

	logged, err := client.Login(ctx, &authpb.LoginRequest{Email: "a@x.com", Password: "secret123"})
	require.NoError(t, err)

	_, wrong := client.Login(ctx, &authpb.LoginRequest{Email: "a@x.com", Password: "nope"})
	_, unknown := client.Login(ctx, &authpb.LoginRequest{Email: "b@x.com", Password: "nope"})
	assert.Equal(t, codes.Unauthenticated, status.Code(wrong))
	assert.Equal(t, status.Convert(wrong).Message(), status.Convert(unknown).Message())

	me, err := client.Me(withBearer(ctx, logged.Token), &authpb.MeRequest{})
	require.NoError(t, err)
	assert.Equal(t, signed.Account.Id, me.Account.Id)

	_, err = client.Me(ctx, &authpb.MeRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = client.Me(withBearer(ctx, "garbage"), &authpb.MeRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	pong, err := client.Ping(ctx, &authpb.PingRequest{})
	require.NoError(t, err)
	assert.Equal(t, "OK", pong.Status)
}

func TestRoundTrip_DefaultCodecInvoke(t *testing.T) {
	_, conn := startBufconn(t, newTestDeps().server())
	ctx := context.Background()

	out := &authpb.AuthResponse{}
	err := conn.Invoke(ctx, authpb.AuthService_Signup_FullMethodName,
		&authpb.SignupRequest{Username: "alice", Email: "a@x.com", Password: "secret123"}, out)
	require.NoError(t, err)

	require.NotNil(t, out.GetAccount())
	assert.NotEmpty(t, out.GetToken())
	assert.Equal(t, "alice", out.GetAccount().GetUsername())
	assert.Equal(t, "user", out.GetAccount().GetRole())
	require.NotNil(t, out.GetExpiresAt())
	assert.True(t, out.GetExpiresAt().AsTime().After(out.GetAccount().GetCreatedAt().AsTime()))
}

func TestRoundTrip_SetRoleRejectsMalformedID(t *testing.T) {
	d := newTestDeps()
	client, _ := startBufconn(t, d.server())
	ctx := context.Background()

	root, err := client.Signup(ctx, &authpb.SignupRequest{Username: "root", Email: "root@x.com", Password: "secret123"})
	require.NoError(t, err)
	_, err = d.admin.ChangeRole(ctx, root.Account.Id, models.RoleAdmin)
	require.NoError(t, err)

	adminCtx := withBearer(ctx, root.Token)

	_, err = client.SetRole(adminCtx, &authpb.SetRoleRequest{AccountId: "not-a-uuid", Role: "moderator"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.DeleteAccount(adminCtx, &authpb.DeleteAccountRequest{AccountId: "not-a-uuid"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestRoundTrip_AdminMethodsAreRoleGated(t *testing.T) {
	d := newTestDeps()
	client, _ := startBufconn(t, d.server())
	ctx := context.Background()

	root, err := client.Signup(ctx, &authpb.SignupRequest{Username: "root", Email: "root@x.com", Password: "secret123"})
	require.NoError(t, err)
	user, err := client.Signup(ctx, &authpb.SignupRequest{Username: "alice", Email: "a@x.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = client.SetRole(withBearer(ctx, user.Token), &authpb.SetRoleRequest{AccountId: user.Account.Id, Role: "admin"})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	_, err = d.admin.ChangeRole(ctx, root.Account.Id, models.RoleAdmin)
	require.NoError(t, err)

	adminCtx := withBearer(ctx, root.Token)

	_, err = client.SetRole(adminCtx, &authpb.SetRoleRequest{AccountId: user.Account.Id, Role: "superuser"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	updated, err := client.SetRole(adminCtx, &authpb.SetRoleRequest{AccountId: user.Account.Id, Role: "moderator"})
	require.NoError(t, err)
	assert.Equal(t, "moderator", updated.Account.Role)

	_, err = client.DeleteAccount(adminCtx, &authpb.DeleteAccountRequest{AccountId: root.Account.Id})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	_, err = client.DeleteAccount(adminCtx, &authpb.DeleteAccountRequest{AccountId: user.Account.Id})
	require.NoError(t, err)

	_, err = client.DeleteAccount(adminCtx, &authpb.DeleteAccountRequest{AccountId: user.Account.Id})
	assert.Equal(t, codes.NotFound, status.Code(err))

	// The deleted account's token no longer authenticates.
	_, err = client.Me(withBearer(ctx, user.Token), &authpb.MeRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestRoundTrip_PasswordReset(t *testing.T) {
	client, _ := startBufconn(t, newTestDeps().server())
	ctx := context.Background()

	resp, err := client.ForgotPassword(ctx, &authpb.ForgotPasswordRequest{Email: "nobody@x.com"})
	require.NoError(t, err)
	assert.Equal(t, forgotPasswordMessage, resp.Message)

	_, err = client.ValidateResetToken(ctx, &authpb.ValidateResetTokenRequest{Token: "bogus"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.ResetPassword(ctx, &authpb.ResetPasswordRequest{Token: "bogus", NewPassword: "newpass"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestHealth_Serving(t *testing.T) {
	_, conn := startBufconn(t, newTestDeps().server())

	resp, err := healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{Service: authpb.AuthService_ServiceDesc.ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.Status)
}
