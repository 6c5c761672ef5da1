package grpc

import (
	"context"

	"github.com/dmitrijs2005/sos/internal/common"
	"github.com/dmitrijs2005/sos/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// UserIDFromContext returns the session user resolved by the interceptors.
func UserIDFromContext(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(userIDKey).(int)
	return id, ok
}

// withSession attaches the user of a valid access token to ctx. Calls
// without a token or with a bad one go through unchanged: the token only
// labels requests in the logs.
func (s *GRPCServer) withSession(ctx context.Context, method string) context.Context {
	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AccessTokenHeaderName)
		if len(values) > 0 {
			accessToken = values[0]
		}
	}
	if len(accessToken) == 0 {
		return ctx
	}

	userID, err := auth.GetUserIDFromToken(accessToken, s.jwtSecret)
	if err != nil {
		s.logger.Debug(ctx, "ignoring access token", "method", method, "error", err)
		return ctx
	}

	return context.WithValue(ctx, userIDKey, userID)
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	ctx = s.withSession(ctx, info.FullMethod)

	if userID, ok := UserIDFromContext(ctx); ok {
		s.logger.Debug(ctx, "call", "method", info.FullMethod, "user_id", userID)
	} else {
		s.logger.Debug(ctx, "call", "method", info.FullMethod)
	}

	return handler(ctx, req)
}

type sessionStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *sessionStream) Context() context.Context { return s.ctx }

func (s *GRPCServer) streamAccessTokenInterceptor(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	return handler(srv, &sessionStream{ServerStream: ss, ctx: s.withSession(ss.Context(), info.FullMethod)})
}
