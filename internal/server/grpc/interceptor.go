package grpc

import (
	"context"

	"github.com/dmitrijs2005/authkeeper/internal/authpb"
	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/server/auth"
	"github.com/dmitrijs2005/authkeeper/internal/server/models"
	"github.com/dmitrijs2005/authkeeper/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// methodPolicy lists the protected methods. A nil role list admits any
// authenticated account.
var methodPolicy = map[string][]models.Role{
	authpb.AuthService_Me_FullMethodName:            nil,
	authpb.AuthService_SetRole_FullMethodName:       {models.RoleAdmin},
	authpb.AuthService_DeleteAccount_FullMethodName: {models.RoleAdmin},
}

func authorizationHeader(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if values := md.Get(common.AuthorizationHeaderName); len(values) > 0 {
		return values[0]
	}
	return ""
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	roles, protected := methodPolicy[info.FullMethod]
	if !protected {
		return handler(ctx, req)
	}

	acc, err := s.gate.AuthenticateHeader(ctx, authorizationHeader(ctx))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	if roles != nil {
		if err := services.Authorize(acc, roles...); err != nil {
			s.logger.Warn(ctx, "access denied", "method", info.FullMethod, "account_id", acc.ID)
			return nil, s.toStatus(ctx, err)
		}
	}

	return handler(auth.WithAccount(ctx, acc), req)
}
