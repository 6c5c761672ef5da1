package surveys

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/sos/internal/common"
	"github.com/dmitrijs2005/sos/internal/dbx"
	"github.com/dmitrijs2005/sos/internal/server/models"
	"github.com/dmitrijs2005/sos/internal/timex"
	"github.com/juju/collections/set"
)

// SQLRepository runs on PostgreSQL and SQLite. Placeholders are numbered
// in order of appearance and never reused, which keeps both drivers happy.
type SQLRepository struct {
	db dbx.DBTX
}

func NewSQLRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db}
}

func (r *SQLRepository) Insert(ctx context.Context, s *models.Survey) (int, error) {

	query :=
		`INSERT INTO survey (created_by, label, description, created_at, joinkey, open)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id
		 `

	var id int
	err := r.db.QueryRowContext(ctx, query,
		s.CreatedBy, s.Label, s.Description, timex.Normalize(s.CreatedAt), s.JoinKey, s.Open,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return id, nil
}

func (r *SQLRepository) Get(ctx context.Context, id int) (*models.Survey, error) {

	query := `SELECT id, created_by, label, description, created_at, joinkey, open FROM survey WHERE id = $1`

	s := &models.Survey{Invited: set.NewInts(), Participants: set.NewInts()}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&s.ID, &s.CreatedBy, &s.Label, &s.Description, &s.CreatedAt, &s.JoinKey, &s.Open)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	s.CreatedAt = timex.Normalize(s.CreatedAt)
	return s, nil
}

func (r *SQLRepository) IDByJoinKey(ctx context.Context, joinKey string) (int, error) {

	var id int
	err := r.db.QueryRowContext(ctx, `SELECT id FROM survey WHERE joinkey = $1`, joinKey).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.ErrorNotFound
		}
		return 0, fmt.Errorf("db error: %w", err)
	}

	return id, nil
}

func (r *SQLRepository) Update(ctx context.Context, s *models.Survey) error {

	query := `UPDATE survey SET label = $1, description = $2, open = $3 WHERE id = $4`

	if _, err := r.db.ExecContext(ctx, query, s.Label, s.Description, s.Open, s.ID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *SQLRepository) Delete(ctx context.Context, id int) (bool, error) {
	return r.execAffected(ctx, `DELETE FROM survey WHERE id = $1`, id)
}

func (r *SQLRepository) ParticipatedIDs(ctx context.Context, userID int) ([]int, error) {
	return r.ids(ctx, `SELECT survey_id FROM participation WHERE user_id = $1 ORDER BY survey_id`, userID)
}

func (r *SQLRepository) InvitedIDs(ctx context.Context, userID int) ([]int, error) {
	return r.ids(ctx, `SELECT survey_id FROM invitation WHERE user_id = $1 ORDER BY survey_id`, userID)
}

func (r *SQLRepository) Participants(ctx context.Context, surveyID int) ([]int, error) {
	return r.ids(ctx, `SELECT user_id FROM participation WHERE survey_id = $1 ORDER BY user_id`, surveyID)
}

func (r *SQLRepository) AddParticipant(ctx context.Context, surveyID, userID int) error {
	return r.exec(ctx, `INSERT INTO participation (user_id, survey_id) VALUES ($1, $2)`, userID, surveyID)
}

func (r *SQLRepository) IsParticipant(ctx context.Context, surveyID, userID int) (bool, error) {

	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM participation WHERE user_id = $1 AND survey_id = $2`, userID, surveyID,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	return n > 0, nil
}

func (r *SQLRepository) DeleteParticipants(ctx context.Context, surveyID int) error {
	return r.exec(ctx, `DELETE FROM participation WHERE survey_id = $1`, surveyID)
}

func (r *SQLRepository) Invitations(ctx context.Context, surveyID int) ([]int, error) {
	return r.ids(ctx, `SELECT user_id FROM invitation WHERE survey_id = $1 ORDER BY user_id`, surveyID)
}

func (r *SQLRepository) AddInvitation(ctx context.Context, surveyID, userID int) error {
	return r.exec(ctx, `INSERT INTO invitation (user_id, survey_id) VALUES ($1, $2)`, userID, surveyID)
}

func (r *SQLRepository) DeleteInvitation(ctx context.Context, surveyID, userID int) (bool, error) {
	return r.execAffected(ctx, `DELETE FROM invitation WHERE user_id = $1 AND survey_id = $2`, userID, surveyID)
}

func (r *SQLRepository) DeleteInvitations(ctx context.Context, surveyID int) error {
	return r.exec(ctx, `DELETE FROM invitation WHERE survey_id = $1`, surveyID)
}

func (r *SQLRepository) InsertOption(ctx context.Context, surveyID int, at time.Time) (int, error) {

	query :=
		`INSERT INTO survey_option (time_option, survey_id)
		 VALUES ($1, $2)
		 RETURNING id
		 `

	var id int
	if err := r.db.QueryRowContext(ctx, query, timex.Normalize(at), surveyID).Scan(&id); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return id, nil
}

func (r *SQLRepository) Options(ctx context.Context, surveyID int) ([]*models.SurveyOption, error) {

	query :=
		`SELECT o.id, o.time_option, v.user_id, v.is_preferred
		 FROM survey_option o
		 LEFT JOIN vote v ON v.survey_option_id = o.id
		 WHERE o.survey_id = $1
		 ORDER BY o.id, v.user_id
		 `

	rows, err := r.db.QueryContext(ctx, query, surveyID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var options []*models.SurveyOption
	var current *models.SurveyOption

	for rows.Next() {
		var (
			id        int
			at        time.Time
			voter     sql.NullInt64
			preferred sql.NullBool
		)
		if err := rows.Scan(&id, &at, &voter, &preferred); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}

		if current == nil || current.ID != id {
			current = models.NewSurveyOption(id, timex.Normalize(at))
			options = append(options, current)
		}

		if voter.Valid {
			current.Vote(int(voter.Int64))
			if preferred.Valid && preferred.Bool {
				current.Prefer(int(voter.Int64))
			}
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return options, nil
}

func (r *SQLRepository) DeleteOptions(ctx context.Context, surveyID int) error {
	return r.exec(ctx, `DELETE FROM survey_option WHERE survey_id = $1`, surveyID)
}

func (r *SQLRepository) InsertVote(ctx context.Context, optionID, userID int, preferred bool) error {
	return r.exec(ctx,
		`INSERT INTO vote (user_id, survey_option_id, is_preferred) VALUES ($1, $2, $3)`,
		userID, optionID, preferred)
}

func (r *SQLRepository) DeleteVotes(ctx context.Context, surveyID int) error {
	return r.exec(ctx,
		`DELETE FROM vote WHERE survey_option_id IN (SELECT id FROM survey_option WHERE survey_id = $1)`,
		surveyID)
}

func (r *SQLRepository) exec(ctx context.Context, query string, args ...any) error {
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *SQLRepository) execAffected(ctx context.Context, query string, args ...any) (bool, error) {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	ok, err := dbx.Affected(res)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return ok, nil
}

func (r *SQLRepository) ids(ctx context.Context, query string, arg int) ([]int, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return ids, nil
}
