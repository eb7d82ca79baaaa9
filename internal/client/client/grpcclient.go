package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/authkeeper/internal/authpb"
	"github.com/dmitrijs2005/authkeeper/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      authpb.AuthServiceClient

	mu          sync.RWMutex
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AuthorizationHeaderName, common.BearerScheme+" "+token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *GRPCClient) setToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = token
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if token := s.token(); token != "" {
		ctx = withAccessToken(ctx, token)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

func NewAuthKeeperClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {
	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = authpb.NewAuthServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

// IsAuthenticated reports whether a bearer token is held.
func (s *GRPCClient) IsAuthenticated() bool {
	return s.token() != ""
}

// Logout forgets the bearer token. Tokens are stateless, so nothing is sent
// to the server.
func (s *GRPCClient) Logout() {
	s.setToken("")
}

func (s *GRPCClient) Signup(ctx context.Context, username, email, password string) (*authpb.Account, error) {
	resp, err := s.client.Signup(ctx, &authpb.SignupRequest{Username: username, Email: email, Password: password})
	if err != nil {
		return nil, s.mapError(err)
	}
	s.setToken(resp.Token)
	return resp.Account, nil
}

func (s *GRPCClient) Login(ctx context.Context, email, password string) (*authpb.Account, error) {
	resp, err := s.client.Login(ctx, &authpb.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, s.mapError(err)
	}
	s.setToken(resp.Token)
	return resp.Account, nil
}

func (s *GRPCClient) Me(ctx context.Context) (*authpb.Account, error) {
	resp, err := s.client.Me(ctx, &authpb.MeRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Account, nil
}

func (s *GRPCClient) ForgotPassword(ctx context.Context, email string) (string, error) {
	resp, err := s.client.ForgotPassword(ctx, &authpb.ForgotPasswordRequest{Email: email})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.Message, nil
}

func (s *GRPCClient) ValidateResetToken(ctx context.Context, token string) error {
	_, err := s.client.ValidateResetToken(ctx, &authpb.ValidateResetTokenRequest{Token: token})
	return s.mapError(err)
}

func (s *GRPCClient) ResetPassword(ctx context.Context, token, newPassword string) error {
	_, err := s.client.ResetPassword(ctx, &authpb.ResetPasswordRequest{Token: token, NewPassword: newPassword})
	return s.mapError(err)
}

func (s *GRPCClient) SetRole(ctx context.Context, accountID, role string) (*authpb.Account, error) {
	resp, err := s.client.SetRole(ctx, &authpb.SetRoleRequest{AccountId: accountID, Role: role})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Account, nil
}

func (s *GRPCClient) DeleteAccount(ctx context.Context, accountID string) error {
	_, err := s.client.DeleteAccount(ctx, &authpb.DeleteAccountRequest{AccountId: accountID})
	return s.mapError(err)
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &authpb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.Status != "OK" {
		return ErrUnavailable
	}
	return nil
}

// mapError keeps the server's message for errors a user can act on.
func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	case codes.PermissionDenied:
		return fmt.Errorf("%w: %s", common.ErrForbidden, st.Message())
	case codes.AlreadyExists:
		return common.ErrConflict
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidArgument, st.Message())
	case codes.NotFound:
		return common.ErrorNotFound
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
