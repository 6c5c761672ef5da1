// Package repository is the single entry point to survey and user data.
// Two implementations share one contract: DBRepository over PostgreSQL or
// SQLite and MemoryRepository for demos and tests. Every mutation that
// succeeds is followed by a refresh broadcast to the registered observers.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/sos/internal/common"
	"github.com/dmitrijs2005/sos/internal/server/models"
	"github.com/dmitrijs2005/sos/internal/server/notify"
)

// Observer receives refresh notifications after data changes.
type Observer = notify.Observer

// Repository is the storage contract.
//
// Lookups report absence as a nil result and a nil error. Failures of the
// underlying store wrap common.ErrDataAccess. Business-rule rejections are
// reported as false with a nil error.
type Repository interface {
	GetUser(ctx context.Context, id int) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// AddUser does not check for duplicates; a unique violation in the
	// store surfaces as a data-access error.
	AddUser(ctx context.Context, username, password, email string) error
	// Authenticate returns the user when username exists and password
	// equals the stored one, nil otherwise.
	Authenticate(ctx context.Context, username, password string) (*models.User, error)

	// AddSurvey creates an open survey with a fresh join key, the creator as
	// participant and the given options, all or nothing.
	AddSurvey(ctx context.Context, creatorID int, label, description string, options []time.Time) (int, error)
	// GetSurvey returns the survey with its options in rank order.
	GetSurvey(ctx context.Context, id int) (*models.Survey, error)
	GetParticipatedSurveys(ctx context.Context, userID int) ([]*models.Survey, error)
	// GetInvitedSurveys returns surveys userID is invited to but has not joined.
	GetInvitedSurveys(ctx context.Context, userID int) ([]*models.Survey, error)
	RemoveSurvey(ctx context.Context, id int) (bool, error)
	// ParticipateInSurvey joins userID to the survey with joinKey and drops
	// a pending invitation. It is false for an unknown key or a participant.
	ParticipateInSurvey(ctx context.Context, joinKey string, userID int) (bool, error)
	// DeclineSurvey drops a pending invitation. It is false for an unknown
	// key or when userID holds no invitation.
	DeclineSurvey(ctx context.Context, joinKey string, userID int) (bool, error)
	// UpdateSurvey replaces label, description, open flag, invitations,
	// options and votes with the contents of s. Participants, creator, join
	// key and creation time are kept. An unknown survey id is ignored.
	UpdateSurvey(ctx context.Context, s *models.Survey) error

	AddObserver(o Observer)
	RemoveObserver(o Observer)
}

// ErrDuplicate is the cause carried by a data-access error when a unique
// field is already taken in the in-memory store.
var ErrDuplicate = errors.New("duplicate value")

// ErrUnknownUser is the cause carried by a data-access error when the
// in-memory store is asked to reference a user that does not exist.
var ErrUnknownUser = errors.New("unknown user")

func dataErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", common.ErrDataAccess, op, err)
}
