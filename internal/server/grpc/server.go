package grpc

import (
	"context"
	"errors"
	"net"
	"sync"
	"time"

	"github.com/dmitrijs2005/sos/internal/common"
	"github.com/dmitrijs2005/sos/internal/logging"
	pb "github.com/dmitrijs2005/sos/internal/proto"
	"github.com/dmitrijs2005/sos/internal/server/repository"
	"github.com/juju/clock"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// GRPCServer exposes one Repository as the sos.Repository service.
type GRPCServer struct {
	address   string
	repo      repository.Repository
	logger    logging.Logger
	jwtSecret []byte
	tokenTTL  time.Duration
	health    *health.Server
	clock     clock.Clock

	// stopping is closed before the server drains, so open Subscribe
	// streams end and GracefulStop can finish.
	stopping chan struct{}
	stopOnce sync.Once

	pb.UnimplementedRepositoryServer
}

func NewGRPCServer(a string, l logging.Logger, repo repository.Repository, secretKey string, tokenTTL time.Duration, clk clock.Clock) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		repo:      repo,
		jwtSecret: []byte(secretKey),
		tokenTTL:  tokenTTL,
		health:    health.NewServer(),
		clock:     clk,
		stopping:  make(chan struct{}),
	}
}

func (s *GRPCServer) stop() {
	s.stopOnce.Do(func() { close(s.stopping) })
}

// newServer builds the gRPC server with the repository and health services
// registered.
func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(s.accessTokenInterceptor),
		grpc.ChainStreamInterceptor(s.streamAccessTokenInterceptor),
	)

	pb.RegisterRepositoryServer(srv, s)
	healthpb.RegisterHealthServer(srv, s.health)
	s.health.SetServingStatus(common.ServiceName, healthpb.HealthCheckResponse_SERVING)

	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is cancelled.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		s.health.Shutdown()
		s.stop()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	// starts accepting incoming connections
	// Serve reports ErrServerStopped when ctx ended before it started.
	if err := srv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}

	return nil
}
