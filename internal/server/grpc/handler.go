package grpc

import (
	"context"

	"github.com/dmitrijs2005/authkeeper/internal/authpb"
	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/server/auth"
	"github.com/dmitrijs2005/authkeeper/internal/server/models"
	"github.com/dmitrijs2005/authkeeper/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

// forgotPasswordMessage is returned whether or not the email is known.
const forgotPasswordMessage = "If the email exists, a reset link has been sent."

func toAuthResponse(r *services.AuthResult) *authpb.AuthResponse {
	return &authpb.AuthResponse{Token: r.Token, ExpiresAt: authpb.Timestamp(r.ExpiresAt), Account: authpb.FromAccount(r.Account)}
}

func (s *GRPCServer) Signup(ctx context.Context, req *authpb.SignupRequest) (*authpb.AuthResponse, error) {
	res, err := s.identity.Signup(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return toAuthResponse(res), nil
}

func (s *GRPCServer) Login(ctx context.Context, req *authpb.LoginRequest) (*authpb.AuthResponse, error) {
	res, err := s.identity.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return toAuthResponse(res), nil
}

func (s *GRPCServer) ForgotPassword(ctx context.Context, req *authpb.ForgotPasswordRequest) (*authpb.ForgotPasswordResponse, error) {
	if err := s.reset.RequestReset(ctx, req.Email); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &authpb.ForgotPasswordResponse{Message: forgotPasswordMessage}, nil
}

func (s *GRPCServer) ValidateResetToken(ctx context.Context, req *authpb.ValidateResetTokenRequest) (*emptypb.Empty, error) {
	if _, err := s.reset.ValidateToken(ctx, req.Token); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) ResetPassword(ctx context.Context, req *authpb.ResetPasswordRequest) (*emptypb.Empty, error) {
	if err := s.reset.ResetPassword(ctx, req.Token, req.NewPassword); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &emptypb.Empty{}, nil
}

func currentAccount(ctx context.Context) (*models.Account, error) {
	acc, ok := auth.AccountFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, common.ErrUnauthenticated.Error())
	}
	return acc, nil
}

func (s *GRPCServer) Me(ctx context.Context, _ *authpb.MeRequest) (*authpb.AccountResponse, error) {
	acc, err := currentAccount(ctx)
	if err != nil {
		return nil, err
	}
	return &authpb.AccountResponse{Account: authpb.FromAccount(acc)}, nil
}

func (s *GRPCServer) SetRole(ctx context.Context, req *authpb.SetRoleRequest) (*authpb.AccountResponse, error) {
	if _, err := currentAccount(ctx); err != nil {
		return nil, err
	}

	role, ok := models.ParseRole(req.Role)
	if !ok {
		return nil, status.Error(codes.InvalidArgument, "invalid role. Must be: user, admin, or moderator")
	}

	acc, err := s.admin.ChangeRole(ctx, req.AccountId, role)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &authpb.AccountResponse{Account: authpb.FromAccount(acc)}, nil
}

func (s *GRPCServer) DeleteAccount(ctx context.Context, req *authpb.DeleteAccountRequest) (*emptypb.Empty, error) {
	actor, err := currentAccount(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.admin.DeleteAccount(ctx, actor.ID, req.AccountId); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, _ *authpb.PingRequest) (*authpb.PingResponse, error) {
	return &authpb.PingResponse{Status: "OK"}, nil
}
