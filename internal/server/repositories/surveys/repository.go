// Package surveys is the table gateway for surveys and everything hanging
// off them: participation, invitations, options and votes. It returns flat
// rows; assembling a models.Survey aggregate is the caller's job.
package surveys

import (
	"context"
	"time"

	"github.com/dmitrijs2005/sos/internal/server/models"
)

type Repository interface {
	// Insert stores the survey row of s and returns the generated id.
	Insert(ctx context.Context, s *models.Survey) (int, error)
	// Get returns the survey row without members or options.
	Get(ctx context.Context, id int) (*models.Survey, error)
	IDByJoinKey(ctx context.Context, joinKey string) (int, error)
	// Update rewrites label, description and open flag.
	Update(ctx context.Context, s *models.Survey) error
	Delete(ctx context.Context, id int) (bool, error)

	ParticipatedIDs(ctx context.Context, userID int) ([]int, error)
	InvitedIDs(ctx context.Context, userID int) ([]int, error)

	Participants(ctx context.Context, surveyID int) ([]int, error)
	AddParticipant(ctx context.Context, surveyID, userID int) error
	IsParticipant(ctx context.Context, surveyID, userID int) (bool, error)
	DeleteParticipants(ctx context.Context, surveyID int) error

	Invitations(ctx context.Context, surveyID int) ([]int, error)
	AddInvitation(ctx context.Context, surveyID, userID int) error
	DeleteInvitation(ctx context.Context, surveyID, userID int) (bool, error)
	DeleteInvitations(ctx context.Context, surveyID int) error

	InsertOption(ctx context.Context, surveyID int, at time.Time) (int, error)
	// Options returns the options of a survey with votes attached, in id order.
	Options(ctx context.Context, surveyID int) ([]*models.SurveyOption, error)
	DeleteOptions(ctx context.Context, surveyID int) error

	InsertVote(ctx context.Context, optionID, userID int, preferred bool) error
	DeleteVotes(ctx context.Context, surveyID int) error
}
