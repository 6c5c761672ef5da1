package client

import (
	"context"
	"time"

	"github.com/dmitrijs2005/sos/internal/server/models"
)

// Client is the remote view of the survey repository used by the CLI.
// Observer registration is replaced by Watch.
type Client interface {
	Close() error
	Ping(ctx context.Context) error
	Authenticate(ctx context.Context, username, password string) (*models.User, error)

	GetUser(ctx context.Context, id int) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	AddUser(ctx context.Context, username, password, email string) error

	AddSurvey(ctx context.Context, creatorID int, label, description string, options []time.Time) (int, error)
	GetSurvey(ctx context.Context, id int) (*models.Survey, error)
	GetParticipatedSurveys(ctx context.Context, userID int) ([]*models.Survey, error)
	GetInvitedSurveys(ctx context.Context, userID int) ([]*models.Survey, error)
	RemoveSurvey(ctx context.Context, id int) (bool, error)
	ParticipateInSurvey(ctx context.Context, joinKey string, userID int) (bool, error)
	DeclineSurvey(ctx context.Context, joinKey string, userID int) (bool, error)
	UpdateSurvey(ctx context.Context, s *models.Survey) error

	// Watch calls onRefresh for every change notification until ctx ends
	// or the stream breaks.
	Watch(ctx context.Context, onRefresh func()) error
}
