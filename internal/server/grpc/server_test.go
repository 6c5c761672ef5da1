package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/sos/internal/common"
	pb "github.com/dmitrijs2005/sos/internal/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	srv, _, _ := newMemoryServer(t)

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

	srv, _, _ := newMemoryServer(t)
	srv.address = "127.0.0.1:99999"

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := srv.Run(ctx); err == nil {
		t.Fatal("expected error from Run on bad address, got nil")
	}
}

func dialBufconn(t *testing.T, srv *GRPCServer) *grpc.ClientConn {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = srv.Serve(ctx, lis)
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		cancel()
		<-done
	})
	return conn
}

func TestEndToEnd_UnaryAndHealth(t *testing.T) {
	srv, _, _ := newMemoryServer(t)
	conn := dialBufconn(t, srv)
	client := pb.NewRepositoryClient(conn)
	ctx := context.Background()

	ping, err := client.Ping(ctx, &pb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, "OK", ping.Status)

	_, err = client.AddUser(ctx, &pb.AddUserRequest{Username: "alice", Password: "pw", Email: "alice@example.com"})
	require.NoError(t, err)

	login, err := client.Authenticate(ctx, &pb.AuthenticateRequest{Username: "alice", Password: "pw"})
	require.NoError(t, err)
	require.NotNil(t, login.User)
	assert.NotEmpty(t, login.AccessToken)

	created, err := client.AddSurvey(ctx, &pb.AddSurveyRequest{CreatorId: login.User.Id, Label: "Sync", Options: pb.FromTimes([]time.Time{epoch})})
	require.NoError(t, err)

	got, err := client.GetSurvey(ctx, &pb.IdRequest{Id: created.Id})
	require.NoError(t, err)
	require.NotNil(t, got.Survey)
	assert.Equal(t, "Sync", got.Survey.Label)
	require.Len(t, got.Survey.Options, 1)
	assert.True(t, got.Survey.Options[0].Time.AsTime().Equal(epoch))

	health, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{Service: common.ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, health.Status)
}

func TestEndToEnd_SubscribeReceivesRefreshes(t *testing.T) {
	srv, repo, hub := newMemoryServer(t)
	conn := dialBufconn(t, srv)
	client := pb.NewRepositoryClient(conn)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stream, err := client.Subscribe(ctx, &pb.SubscribeRequest{})
	require.NoError(t, err)

	first, err := stream.Recv()
	require.NoError(t, err, "initial refresh confirms the subscription")
	require.NotEmpty(t, first.SubscriptionId)
	require.Equal(t, 1, hub.Len())

	require.NoError(t, repo.AddUser(context.Background(), "bob", "pw", "bob@example.com"))

	next, err := stream.Recv()
	require.NoError(t, err)
	assert.Equal(t, first.SubscriptionId, next.SubscriptionId)
	assert.True(t, next.At.AsTime().Equal(epoch), "refresh is stamped with the server clock")

	cancel()
	assert.Eventually(t, func() bool { return hub.Len() == 0 }, 2*time.Second, 10*time.Millisecond,
		"observer is removed when the stream ends")
}

func TestServe_StopsWithOpenSubscription(t *testing.T) {
	srv, _, hub := newMemoryServer(t)

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Serve(ctx, lis)
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	defer conn.Close()

	stream, err := pb.NewRepositoryClient(conn).Subscribe(context.Background(), &pb.SubscribeRequest{})
	require.NoError(t, err)
	_, err = stream.Recv()
	require.NoError(t, err)
	require.Equal(t, 1, hub.Len())

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("Serve still running after cancel with an open subscription")
	}

	_, err = stream.Recv()
	assert.Equal(t, codes.Unavailable, status.Code(err))
	assert.Equal(t, 0, hub.Len())
}
