package grpc

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/sos/internal/common"
	"github.com/dmitrijs2005/sos/internal/logging"
	"github.com/dmitrijs2005/sos/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// helper to build server
func newTestServer(secret string) *GRPCServer {
	return &GRPCServer{
		logger:    logging.Nop(),
		jwtSecret: []byte(secret),
	}
}

func callInterceptor(t *testing.T, s *GRPCServer, ctx context.Context) (int, bool) {
	t.Helper()

	var (
		gotID int
		gotOK bool
	)
	info := &grpc.UnaryServerInfo{FullMethod: "/sos.Repository/GetSurvey"}
	h := func(ctx context.Context, req any) (any, error) {
		gotID, gotOK = UserIDFromContext(ctx)
		return "ok", nil
	}

	resp, err := s.accessTokenInterceptor(ctx, nil, info, h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp != "ok" {
		t.Fatalf("unexpected handler resp: %v", resp)
	}
	return gotID, gotOK
}

func TestInterceptor_NoToken_PassesThrough(t *testing.T) {
	s := newTestServer("secret")

	if _, ok := callInterceptor(t, s, context.Background()); ok {
		t.Fatal("no user expected without metadata")
	}

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("other", "x"))
	if _, ok := callInterceptor(t, s, ctx); ok {
		t.Fatal("no user expected without token")
	}
}

func TestInterceptor_ValidToken_AttachesUser(t *testing.T) {
	s := newTestServer("secret")

	tok, err := auth.GenerateToken(7, []byte("secret"), time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(common.AccessTokenHeaderName, tok))
	id, ok := callInterceptor(t, s, ctx)
	if !ok || id != 7 {
		t.Fatalf("got user %d (%v), want 7", id, ok)
	}
}

func TestInterceptor_BadToken_IsIgnored(t *testing.T) {
	s := newTestServer("secret")

	for _, tok := range []string{"garbage", mustToken(t, "other-secret", time.Minute), mustToken(t, "secret", -time.Minute)} {
		ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(common.AccessTokenHeaderName, tok))
		if _, ok := callInterceptor(t, s, ctx); ok {
			t.Fatalf("token %q must not resolve a user", tok)
		}
	}
}

func mustToken(t *testing.T, secret string, ttl time.Duration) string {
	t.Helper()
	tok, err := auth.GenerateToken(1, []byte(secret), ttl)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	return tok
}

type fakeServerStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (f *fakeServerStream) Context() context.Context { return f.ctx }

func TestStreamInterceptor_AttachesUser(t *testing.T) {
	s := newTestServer("secret")
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(common.AccessTokenHeaderName, mustToken(t, "secret", time.Minute)))

	var got int
	h := func(srv any, ss grpc.ServerStream) error {
		got, _ = UserIDFromContext(ss.Context())
		return nil
	}

	err := s.streamAccessTokenInterceptor(nil, &fakeServerStream{ctx: ctx}, &grpc.StreamServerInfo{FullMethod: "/sos.Repository/Subscribe"}, h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1 {
		t.Fatalf("got user %d, want 1", got)
	}
}
