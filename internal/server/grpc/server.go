// Package grpc exposes the identity services over gRPC. A unary interceptor
// acts as the auth gate: it resolves the bearer token of protected methods to
// an account and enforces per-method role requirements.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/authkeeper/internal/authpb"
	"github.com/dmitrijs2005/authkeeper/internal/logging"
	"github.com/dmitrijs2005/authkeeper/internal/server/models"
	"github.com/dmitrijs2005/authkeeper/internal/server/services"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type IdentityService interface {
	Signup(ctx context.Context, username, email, password string) (*services.AuthResult, error)
	Login(ctx context.Context, email, password string) (*services.AuthResult, error)
}

type ResetService interface {
	RequestReset(ctx context.Context, email string) error
	ValidateToken(ctx context.Context, token string) (*models.Account, error)
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type Authenticator interface {
	AuthenticateHeader(ctx context.Context, header string) (*models.Account, error)
}

type AdminService interface {
	ChangeRole(ctx context.Context, targetID string, role models.Role) (*models.Account, error)
	DeleteAccount(ctx context.Context, actorID, targetID string) error
}

type GRPCServer struct {
	authpb.UnimplementedAuthServiceServer

	address  string
	logger   logging.Logger
	identity IdentityService
	reset    ResetService
	gate     Authenticator
	admin    AdminService
	health   *health.Server
}

func NewGRPCServer(a string, l logging.Logger, is IdentityService, rs ResetService, g Authenticator, as AdminService) *GRPCServer {
	return &GRPCServer{
		address:  a,
		logger:   l.With("module", "grpc_server"),
		identity: is,
		reset:    rs,
		gate:     g,
		admin:    as,
		health:   health.NewServer(),
	}
}

// newServer builds the grpc.Server with interceptors, tracing hooks, the auth
// service and the health service registered.
func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(s.accessTokenInterceptor),
	)

	authpb.RegisterAuthServiceServer(srv, s)
	healthpb.RegisterHealthServer(srv, s.health)

	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	s.health.SetServingStatus(authpb.AuthService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	return srv
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve serves on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(context.Background(), "Stopping gRPC server...")
		s.health.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	return srv.Serve(lis)
}
