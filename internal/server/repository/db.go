package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/sos/internal/common"
	"github.com/dmitrijs2005/sos/internal/dbx"
	"github.com/dmitrijs2005/sos/internal/joinkey"
	"github.com/dmitrijs2005/sos/internal/logging"
	"github.com/dmitrijs2005/sos/internal/server/models"
	"github.com/dmitrijs2005/sos/internal/server/notify"
	"github.com/dmitrijs2005/sos/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/sos/internal/timex"
	"github.com/juju/clock"
)

// DBRepository keeps data in a SQL database. Multi-step mutations run in
// one transaction each; concurrent updates of one survey are
// last-commit-wins.
type DBRepository struct {
	db     *sql.DB
	rm     repomanager.RepositoryManager
	hub    *notify.Hub
	clock  clock.Clock
	logger logging.Logger
}

func NewDBRepository(db *sql.DB, rm repomanager.RepositoryManager, hub *notify.Hub, clk clock.Clock, logger logging.Logger) *DBRepository {
	return &DBRepository{db: db, rm: rm, hub: hub, clock: clk, logger: logger.With("module", "repository", "store", "db")}
}

var _ Repository = (*DBRepository)(nil)

func (r *DBRepository) GetUser(ctx context.Context, id int) (*models.User, error) {
	return r.user(r.rm.Users(r.db).GetByID(ctx, id))
}

func (r *DBRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.user(r.rm.Users(r.db).GetByUsername(ctx, username))
}

func (r *DBRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.user(r.rm.Users(r.db).GetByEmail(ctx, email))
}

func (r *DBRepository) user(u *models.User, err error) (*models.User, error) {
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil
		}
		return nil, dataErr("get user", err)
	}
	return u, nil
}

func (r *DBRepository) AddUser(ctx context.Context, username, password, email string) error {
	u, err := r.rm.Users(r.db).Create(ctx, &models.User{Username: username, Password: password, Email: email})
	if err != nil {
		return dataErr("add user", err)
	}

	r.logger.Info(ctx, "user added", "user_id", u.ID, "username", username)
	r.hub.Broadcast(ctx)
	return nil
}

func (r *DBRepository) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	u, err := r.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if !u.PasswordMatches(password) {
		return nil, nil
	}
	return u, nil
}

func (r *DBRepository) AddSurvey(ctx context.Context, creatorID int, label, description string, options []time.Time) (int, error) {
	key, err := joinkey.Generate()
	if err != nil {
		return 0, dataErr("add survey", err)
	}

	s := models.NewSurvey(0, creatorID, label, description, timex.Normalize(r.clock.Now()), key)

	var id int
	err = dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := r.rm.Surveys(tx)

		var err error
		if id, err = repo.Insert(ctx, s); err != nil {
			return err
		}
		if err := repo.AddParticipant(ctx, id, creatorID); err != nil {
			return err
		}
		for _, at := range options {
			if _, err := repo.InsertOption(ctx, id, at); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, dataErr("add survey", err)
	}

	r.logger.Info(ctx, "survey added", "survey_id", id, "creator", creatorID, "options", len(options))
	r.hub.Broadcast(ctx)
	return id, nil
}

func (r *DBRepository) GetSurvey(ctx context.Context, id int) (*models.Survey, error) {
	s, err := r.load(ctx, r.db, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil
		}
		return nil, dataErr("get survey", err)
	}
	return s, nil
}

// load assembles the survey aggregate. Queries run one after another so that
// a single-connection pool never has two result sets open.
func (r *DBRepository) load(ctx context.Context, db dbx.DBTX, id int) (*models.Survey, error) {
	repo := r.rm.Surveys(db)

	s, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	participants, err := repo.Participants(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, uid := range participants {
		s.Join(uid)
	}

	invited, err := repo.Invitations(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, uid := range invited {
		s.Invite(uid)
	}

	if s.Options, err = repo.Options(ctx, id); err != nil {
		return nil, err
	}
	models.Rank(s.Options)

	return s, nil
}

func (r *DBRepository) GetParticipatedSurveys(ctx context.Context, userID int) ([]*models.Survey, error) {
	ids, err := r.rm.Surveys(r.db).ParticipatedIDs(ctx, userID)
	if err != nil {
		return nil, dataErr("get participated surveys", err)
	}
	surveys, err := r.loadAll(ctx, ids, func(*models.Survey) bool { return true })
	if err != nil {
		return nil, dataErr("get participated surveys", err)
	}
	return surveys, nil
}

func (r *DBRepository) GetInvitedSurveys(ctx context.Context, userID int) ([]*models.Survey, error) {
	ids, err := r.rm.Surveys(r.db).InvitedIDs(ctx, userID)
	if err != nil {
		return nil, dataErr("get invited surveys", err)
	}
	surveys, err := r.loadAll(ctx, ids, func(s *models.Survey) bool { return !s.IsParticipant(userID) })
	if err != nil {
		return nil, dataErr("get invited surveys", err)
	}
	return surveys, nil
}

func (r *DBRepository) loadAll(ctx context.Context, ids []int, keep func(*models.Survey) bool) ([]*models.Survey, error) {
	surveys := make([]*models.Survey, 0, len(ids))
	for _, id := range ids {
		s, err := r.load(ctx, r.db, id)
		if errors.Is(err, common.ErrorNotFound) {
			// removed between the id query and now
			continue
		}
		if err != nil {
			return nil, err
		}
		if keep(s) {
			surveys = append(surveys, s)
		}
	}
	return surveys, nil
}

func (r *DBRepository) RemoveSurvey(ctx context.Context, id int) (bool, error) {
	var removed bool
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := r.rm.Surveys(tx)

		if err := repo.DeleteVotes(ctx, id); err != nil {
			return err
		}
		if err := repo.DeleteOptions(ctx, id); err != nil {
			return err
		}
		if err := repo.DeleteInvitations(ctx, id); err != nil {
			return err
		}
		if err := repo.DeleteParticipants(ctx, id); err != nil {
			return err
		}

		var err error
		removed, err = repo.Delete(ctx, id)
		return err
	})
	if err != nil {
		return false, dataErr("remove survey", err)
	}

	if removed {
		r.logger.Info(ctx, "survey removed", "survey_id", id)
		r.hub.Broadcast(ctx)
	}
	return removed, nil
}

func (r *DBRepository) ParticipateInSurvey(ctx context.Context, joinKey string, userID int) (bool, error) {
	var joined bool
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := r.rm.Surveys(tx)

		id, err := repo.IDByJoinKey(ctx, joinKey)
		if errors.Is(err, common.ErrorNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		participant, err := repo.IsParticipant(ctx, id, userID)
		if err != nil || participant {
			return err
		}

		if err := repo.AddParticipant(ctx, id, userID); err != nil {
			return err
		}
		if _, err := repo.DeleteInvitation(ctx, id, userID); err != nil {
			return err
		}

		joined = true
		return nil
	})
	if err != nil {
		return false, dataErr("participate in survey", err)
	}

	if joined {
		r.logger.Info(ctx, "user joined survey", "user_id", userID)
		r.hub.Broadcast(ctx)
	}
	return joined, nil
}

func (r *DBRepository) DeclineSurvey(ctx context.Context, joinKey string, userID int) (bool, error) {
	var declined bool
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := r.rm.Surveys(tx)

		id, err := repo.IDByJoinKey(ctx, joinKey)
		if errors.Is(err, common.ErrorNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		participant, err := repo.IsParticipant(ctx, id, userID)
		if err != nil || participant {
			return err
		}

		declined, err = repo.DeleteInvitation(ctx, id, userID)
		return err
	})
	if err != nil {
		return false, dataErr("decline survey", err)
	}

	if declined {
		r.logger.Info(ctx, "user declined survey", "user_id", userID)
		r.hub.Broadcast(ctx)
	}
	return declined, nil
}

func (r *DBRepository) UpdateSurvey(ctx context.Context, s *models.Survey) error {
	if s == nil {
		return fmt.Errorf("%w: nil survey", common.ErrorInvalidArgument)
	}

	var found bool
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := r.rm.Surveys(tx)

		if _, err := repo.Get(ctx, s.ID); err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return nil
			}
			return err
		}
		found = true

		if err := repo.Update(ctx, s); err != nil {
			return err
		}

		if err := repo.DeleteInvitations(ctx, s.ID); err != nil {
			return err
		}
		for _, uid := range s.Invited.SortedValues() {
			if err := repo.AddInvitation(ctx, s.ID, uid); err != nil {
				return err
			}
		}

		if err := repo.DeleteVotes(ctx, s.ID); err != nil {
			return err
		}
		if err := repo.DeleteOptions(ctx, s.ID); err != nil {
			return err
		}
		for _, o := range s.RankedOptions() {
			optionID, err := repo.InsertOption(ctx, s.ID, o.Time)
			if err != nil {
				return err
			}
			for _, uid := range o.Voters.SortedValues() {
				if err := repo.InsertVote(ctx, optionID, uid, o.HasPreferred(uid)); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return dataErr("update survey", err)
	}

	if !found {
		r.logger.Debug(ctx, "update of unknown survey ignored", "survey_id", s.ID)
		return nil
	}

	r.logger.Info(ctx, "survey updated", "survey_id", s.ID)
	r.hub.Broadcast(ctx)
	return nil
}

func (r *DBRepository) AddObserver(o Observer)    { r.hub.Add(o) }
func (r *DBRepository) RemoveObserver(o Observer) { r.hub.Remove(o) }
