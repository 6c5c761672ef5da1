package client

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/sos/internal/common"
	pb "github.com/dmitrijs2005/sos/internal/proto"
	"github.com/dmitrijs2005/sos/internal/server/models"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	callTimeout time.Duration
	conn        *grpc.ClientConn
	client      pb.RepositoryClient

	mu          sync.RWMutex
	accessToken string
}

var _ Client = (*GRPCClient)(nil)

func withAccessToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}

	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	return invoker(withAccessToken(ctx, s.token()), method, req, reply, cc, opts...)
}

func (s *GRPCClient) streamAccessTokenInterceptor(
	ctx context.Context,
	desc *grpc.StreamDesc,
	cc *grpc.ClientConn,
	method string,
	streamer grpc.Streamer,
	opts ...grpc.CallOption,
) (grpc.ClientStream, error) {
	return streamer(withAccessToken(ctx, s.token()), desc, cc, method, opts...)
}

// NewGRPCClient connects lazily to endpointURL. Extra dial options are
// appended after the defaults.
func NewGRPCClient(endpointURL string, callTimeout time.Duration, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, callTimeout: callTimeout}
	if err := c.InitGRPCClient(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient(opts ...grpc.DialOption) error {

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
		grpc.WithStreamInterceptor(s.streamAccessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(s.endpointURL, dialOpts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewRepositoryClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.callTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.callTimeout)
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.Ping(ctx, &pb.Empty{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.GetStatus() != "OK" {
		return ErrUnavailable
	}

	return nil
}

// Authenticate returns nil when the credentials do not match. On success the
// session token is kept and sent with every later call.
func (s *GRPCClient) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.Authenticate(ctx, &pb.AuthenticateRequest{Username: username, Password: password})
	if err != nil {
		return nil, s.mapError(err)
	}
	if resp.GetUser() == nil {
		return nil, nil
	}

	s.mu.Lock()
	s.accessToken = resp.GetAccessToken()
	s.mu.Unlock()

	return resp.GetUser().Model(), nil
}

func (s *GRPCClient) GetUser(ctx context.Context, id int) (*models.User, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.GetUser(ctx, &pb.IdRequest{Id: int64(id)})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.GetUser().Model(), nil
}

func (s *GRPCClient) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.GetUserByUsername(ctx, &pb.UsernameRequest{Username: username})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.GetUser().Model(), nil
}

func (s *GRPCClient) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.GetUserByEmail(ctx, &pb.EmailRequest{Email: email})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.GetUser().Model(), nil
}

func (s *GRPCClient) AddUser(ctx context.Context, username, password, email string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	_, err := s.client.AddUser(ctx, &pb.AddUserRequest{Username: username, Password: password, Email: email})
	return s.mapError(err)
}

func (s *GRPCClient) AddSurvey(ctx context.Context, creatorID int, label, description string, options []time.Time) (int, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.AddSurvey(ctx, &pb.AddSurveyRequest{CreatorId: int64(creatorID), Label: label, Description: description, Options: pb.FromTimes(options)})
	if err != nil {
		return 0, s.mapError(err)
	}
	return int(resp.GetId()), nil
}

func (s *GRPCClient) GetSurvey(ctx context.Context, id int) (*models.Survey, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.GetSurvey(ctx, &pb.IdRequest{Id: int64(id)})
	if err != nil {
		return nil, s.mapError(err)
	}
	if resp.GetSurvey() == nil {
		return nil, nil
	}
	return resp.GetSurvey().Model()
}

func (s *GRPCClient) GetParticipatedSurveys(ctx context.Context, userID int) ([]*models.Survey, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.GetParticipatedSurveys(ctx, &pb.UserIdRequest{UserId: int64(userID)})
	if err != nil {
		return nil, s.mapError(err)
	}
	return pb.Models(resp.GetSurveys())
}

func (s *GRPCClient) GetInvitedSurveys(ctx context.Context, userID int) ([]*models.Survey, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.GetInvitedSurveys(ctx, &pb.UserIdRequest{UserId: int64(userID)})
	if err != nil {
		return nil, s.mapError(err)
	}
	return pb.Models(resp.GetSurveys())
}

func (s *GRPCClient) RemoveSurvey(ctx context.Context, id int) (bool, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.RemoveSurvey(ctx, &pb.IdRequest{Id: int64(id)})
	if err != nil {
		return false, s.mapError(err)
	}
	return resp.GetOk(), nil
}

func (s *GRPCClient) ParticipateInSurvey(ctx context.Context, joinKey string, userID int) (bool, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.ParticipateInSurvey(ctx, &pb.JoinKeyRequest{JoinKey: joinKey, UserId: int64(userID)})
	if err != nil {
		return false, s.mapError(err)
	}
	return resp.GetOk(), nil
}

func (s *GRPCClient) DeclineSurvey(ctx context.Context, joinKey string, userID int) (bool, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.DeclineSurvey(ctx, &pb.JoinKeyRequest{JoinKey: joinKey, UserId: int64(userID)})
	if err != nil {
		return false, s.mapError(err)
	}
	return resp.GetOk(), nil
}

func (s *GRPCClient) UpdateSurvey(ctx context.Context, survey *models.Survey) error {
	if survey == nil {
		return fmt.Errorf("%w: nil survey", common.ErrorInvalidArgument)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	_, err := s.client.UpdateSurvey(ctx, &pb.UpdateSurveyRequest{Survey: pb.FromSurvey(survey)})
	return s.mapError(err)
}

// Watch returns nil once ctx is done.
func (s *GRPCClient) Watch(ctx context.Context, onRefresh func()) error {
	stream, err := s.client.Subscribe(ctx, &pb.SubscribeRequest{})
	if err != nil {
		return s.mapError(err)
	}

	for {
		if _, err := stream.Recv(); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return s.mapError(err)
		}
		onRefresh()
	}
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded, codes.Canceled:
		return fmt.Errorf("%w: %s", ErrUnavailable, st.Message())
	case codes.Internal:
		return fmt.Errorf("%w: %s", common.ErrDataAccess, st.Message())
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", common.ErrorInvalidArgument, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
