package grpc

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/authkeeper/internal/authpb"
	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/logging"
	"github.com/dmitrijs2005/authkeeper/internal/server/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestToStatus(t *testing.T) {
	s := &GRPCServer{logger: logging.Nop()}

	tests := []struct {
		err  error
		code codes.Code
		msg  string
	}{
		{common.ErrConflict, codes.AlreadyExists, common.ErrConflict.Error()},
		{common.ErrInvalidCredentials, codes.Unauthenticated, "incorrect email or password"},
		{fmt.Errorf("%w: %w", common.ErrUnauthenticated, common.ErrTokenExpired), codes.Unauthenticated, "token expired"},
		{fmt.Errorf("%w: %w", common.ErrUnauthenticated, common.ErrMalformedToken), codes.Unauthenticated, "unauthenticated"},
		{common.ErrForbidden, codes.PermissionDenied, "access denied"},
		{fmt.Errorf("%w: email: must be a valid email address", common.ErrValidation), codes.InvalidArgument, ""},
		{common.ErrInvalidOrExpiredToken, codes.InvalidArgument, "invalid or expired reset token"},
		{common.ErrInvalidAssertion, codes.InvalidArgument, ""},
		{common.ErrorNotFound, codes.NotFound, ""},
		{context.DeadlineExceeded, codes.DeadlineExceeded, ""},
		{errors.New("db error: connection refused to 10.0.0.5"), codes.Internal, "internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			st := status.Convert(s.toStatus(context.Background(), tt.err))
			if st.Code() != tt.code {
				t.Fatalf("code = %v, want %v", st.Code(), tt.code)
			}
			if tt.msg != "" && st.Message() != tt.msg {
				t.Fatalf("message = %q, want %q", st.Message(), tt.msg)
			}
		})
	}
}

type failingGate struct{ err error }

func (f failingGate) AuthenticateHeader(context.Context, string) (*models.Account, error) {
	return nil, f.err
}

func TestInterceptor_PublicMethodSkipsGate(t *testing.T) {
	s := &GRPCServer{logger: logging.Nop(), gate: failingGate{err: errors.New("must not be called")}}

	info := &grpc.UnaryServerInfo{FullMethod: authpb.AuthService_Login_FullMethodName}
	called := false
	h := func(ctx context.Context, req any) (any, error) {
		called = true
		return "ok", nil
	}

	resp, err := s.accessTokenInterceptor(context.Background(), nil, info, h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called || resp != "ok" {
		t.Fatalf("handler not called properly: %v %v", called, resp)
	}
}

func TestInterceptor_StoreFailureIsInternal(t *testing.T) {
	s := &GRPCServer{logger: logging.Nop(), gate: failingGate{err: errors.New("db down")}}

	info := &grpc.UnaryServerInfo{FullMethod: authpb.AuthService_Me_FullMethodName}
	h := func(ctx context.Context, req any) (any, error) {
		t.Fatal("handler should not be called")
		return nil, nil
	}

	_, err := s.accessTokenInterceptor(context.Background(), nil, info, h)
	if status.Code(err) != codes.Internal {
		t.Fatalf("expected Internal, got %v", err)
	}
}

func TestHandlers_RequireAccountInContext(t *testing.T) {
	s := newTestDeps().server()

	if _, err := s.Me(context.Background(), &authpb.MeRequest{}); status.Code(err) != codes.Unauthenticated {
		t.Fatalf("Me: expected Unauthenticated, got %v", err)
	}
	if _, err := s.DeleteAccount(context.Background(), &authpb.DeleteAccountRequest{AccountId: "x"}); status.Code(err) != codes.Unauthenticated {
		t.Fatalf("DeleteAccount: expected Unauthenticated, got %v", err)
	}
}
