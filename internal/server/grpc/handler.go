package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/sos/internal/common"
	pb "github.com/dmitrijs2005/sos/internal/proto"
	"github.com/dmitrijs2005/sos/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

var _ pb.RepositoryServer = (*GRPCServer)(nil)

// toStatus maps repository errors onto gRPC codes.
func (s *GRPCServer) toStatus(ctx context.Context, op string, err error) error {
	if errors.Is(err, common.ErrorInvalidArgument) {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	s.logger.Error(ctx, op+" failed", "error", err)
	return status.Error(codes.Internal, err.Error())
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.Empty) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil

}

func (s *GRPCServer) Authenticate(ctx context.Context, req *pb.AuthenticateRequest) (*pb.AuthenticateResponse, error) {

	user, err := s.repo.Authenticate(ctx, req.GetUsername(), req.GetPassword())
	if err != nil {
		return nil, s.toStatus(ctx, "authenticate", err)
	}

	if user == nil {
		s.logger.Info(ctx, "Login rejected", "username", req.GetUsername())
		return &pb.AuthenticateResponse{}, nil
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenTTL)
	if err != nil {
		s.logger.Error(ctx, "token error", "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}

	s.logger.Info(ctx, "Logged in", "username", req.GetUsername(), "user_id", user.ID)
	return &pb.AuthenticateResponse{User: pb.FromUser(user), AccessToken: token}, nil

}

func (s *GRPCServer) GetUser(ctx context.Context, req *pb.IdRequest) (*pb.UserResponse, error) {
	user, err := s.repo.GetUser(ctx, int(req.GetId()))
	if err != nil {
		return nil, s.toStatus(ctx, "get user", err)
	}
	return &pb.UserResponse{User: pb.FromUser(user)}, nil
}

func (s *GRPCServer) GetUserByUsername(ctx context.Context, req *pb.UsernameRequest) (*pb.UserResponse, error) {
	user, err := s.repo.GetUserByUsername(ctx, req.GetUsername())
	if err != nil {
		return nil, s.toStatus(ctx, "get user by username", err)
	}
	return &pb.UserResponse{User: pb.FromUser(user)}, nil
}

func (s *GRPCServer) GetUserByEmail(ctx context.Context, req *pb.EmailRequest) (*pb.UserResponse, error) {
	user, err := s.repo.GetUserByEmail(ctx, req.GetEmail())
	if err != nil {
		return nil, s.toStatus(ctx, "get user by email", err)
	}
	return &pb.UserResponse{User: pb.FromUser(user)}, nil
}

func (s *GRPCServer) AddUser(ctx context.Context, req *pb.AddUserRequest) (*pb.Empty, error) {

	s.logger.Info(ctx, "Registration request", "username", req.GetUsername())

	if err := s.repo.AddUser(ctx, req.GetUsername(), req.GetPassword(), req.GetEmail()); err != nil {
		return nil, s.toStatus(ctx, "add user", err)
	}

	return &pb.Empty{}, nil

}

func (s *GRPCServer) AddSurvey(ctx context.Context, req *pb.AddSurveyRequest) (*pb.AddSurveyResponse, error) {
	options, err := pb.Times(req.GetOptions())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	id, err := s.repo.AddSurvey(ctx, int(req.GetCreatorId()), req.GetLabel(), req.GetDescription(), options)
	if err != nil {
		return nil, s.toStatus(ctx, "add survey", err)
	}
	return &pb.AddSurveyResponse{Id: int64(id)}, nil
}

func (s *GRPCServer) GetSurvey(ctx context.Context, req *pb.IdRequest) (*pb.SurveyResponse, error) {
	survey, err := s.repo.GetSurvey(ctx, int(req.GetId()))
	if err != nil {
		return nil, s.toStatus(ctx, "get survey", err)
	}
	return &pb.SurveyResponse{Survey: pb.FromSurvey(survey)}, nil
}

func (s *GRPCServer) GetParticipatedSurveys(ctx context.Context, req *pb.UserIdRequest) (*pb.SurveysResponse, error) {
	surveys, err := s.repo.GetParticipatedSurveys(ctx, int(req.GetUserId()))
	if err != nil {
		return nil, s.toStatus(ctx, "get participated surveys", err)
	}
	return &pb.SurveysResponse{Surveys: pb.FromSurveys(surveys)}, nil
}

func (s *GRPCServer) GetInvitedSurveys(ctx context.Context, req *pb.UserIdRequest) (*pb.SurveysResponse, error) {
	surveys, err := s.repo.GetInvitedSurveys(ctx, int(req.GetUserId()))
	if err != nil {
		return nil, s.toStatus(ctx, "get invited surveys", err)
	}
	return &pb.SurveysResponse{Surveys: pb.FromSurveys(surveys)}, nil
}

func (s *GRPCServer) RemoveSurvey(ctx context.Context, req *pb.IdRequest) (*pb.BoolResponse, error) {
	ok, err := s.repo.RemoveSurvey(ctx, int(req.GetId()))
	if err != nil {
		return nil, s.toStatus(ctx, "remove survey", err)
	}
	return &pb.BoolResponse{Ok: ok}, nil
}

func (s *GRPCServer) ParticipateInSurvey(ctx context.Context, req *pb.JoinKeyRequest) (*pb.BoolResponse, error) {
	ok, err := s.repo.ParticipateInSurvey(ctx, req.GetJoinKey(), int(req.GetUserId()))
	if err != nil {
		return nil, s.toStatus(ctx, "participate in survey", err)
	}
	return &pb.BoolResponse{Ok: ok}, nil
}

func (s *GRPCServer) DeclineSurvey(ctx context.Context, req *pb.JoinKeyRequest) (*pb.BoolResponse, error) {
	ok, err := s.repo.DeclineSurvey(ctx, req.GetJoinKey(), int(req.GetUserId()))
	if err != nil {
		return nil, s.toStatus(ctx, "decline survey", err)
	}
	return &pb.BoolResponse{Ok: ok}, nil
}

func (s *GRPCServer) UpdateSurvey(ctx context.Context, req *pb.UpdateSurveyRequest) (*pb.Empty, error) {
	survey, err := req.GetSurvey().Model()
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	if err := s.repo.UpdateSurvey(ctx, survey); err != nil {
		return nil, s.toStatus(ctx, "update survey", err)
	}
	return &pb.Empty{}, nil
}

// Subscribe registers the stream as an observer until the client goes away
// or the server starts shutting down. The first Refresh is sent right away
// so the client knows the subscription is live.
func (s *GRPCServer) Subscribe(_ *pb.SubscribeRequest, stream grpc.ServerStreamingServer[pb.Refresh]) error {
	ctx := stream.Context()

	o := newStreamObserver()
	s.repo.AddObserver(o)
	defer s.repo.RemoveObserver(o)
	defer o.close()

	logger := s.logger.With("subscription_id", o.id.String())
	if userID, ok := UserIDFromContext(ctx); ok {
		logger = logger.With("user_id", userID)
	}
	logger.Info(ctx, "Subscriber connected")
	defer logger.Info(ctx, "Subscriber disconnected")

	_ = o.Notify(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.stopping:
			return status.Error(codes.Unavailable, "server is shutting down")
		case <-o.mailbox:
			refresh := &pb.Refresh{SubscriptionId: o.id.String(), At: timestamppb.New(s.clock.Now())}
			if err := stream.Send(refresh); err != nil {
				return err
			}
		}
	}
}
