package repository

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/sos/internal/common"
	"github.com/dmitrijs2005/sos/internal/joinkey"
	"github.com/dmitrijs2005/sos/internal/logging"
	"github.com/dmitrijs2005/sos/internal/server/models"
	"github.com/dmitrijs2005/sos/internal/server/notify"
	"github.com/dmitrijs2005/sos/internal/timex"
	"github.com/juju/clock"
	"github.com/juju/collections/set"
)

// MemoryRepository keeps everything in process memory. It hands out ids the
// way the database sequences do, so both implementations agree on results
// for the same sequence of calls. Stored values never escape: reads return
// copies and writes store copies.
type MemoryRepository struct {
	mu       sync.Mutex
	users    map[int]*models.User
	surveys  map[int]*models.Survey
	lastUser int
	lastSurv int
	lastOpt  int

	hub    *notify.Hub
	clock  clock.Clock
	logger logging.Logger
}

func NewMemoryRepository(hub *notify.Hub, clk clock.Clock, logger logging.Logger) *MemoryRepository {
	return &MemoryRepository{
		users:   make(map[int]*models.User),
		surveys: make(map[int]*models.Survey),
		hub:     hub,
		clock:   clk,
		logger:  logger.With("module", "repository", "store", "memory"),
	}
}

var _ Repository = (*MemoryRepository)(nil)

func (r *MemoryRepository) GetUser(_ context.Context, id int) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if u, ok := r.users[id]; ok {
		c := *u
		return &c, nil
	}
	return nil, nil
}

func (r *MemoryRepository) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	return r.findUser(func(u *models.User) bool { return u.Username == username }), nil
}

func (r *MemoryRepository) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	return r.findUser(func(u *models.User) bool { return u.Email == email }), nil
}

func (r *MemoryRepository) findUser(match func(*models.User) bool) *models.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if match(u) {
			c := *u
			return &c
		}
	}
	return nil
}

func (r *MemoryRepository) AddUser(ctx context.Context, username, password, email string) error {
	r.mu.Lock()
	for _, u := range r.users {
		if u.Username == username || u.Email == email {
			r.mu.Unlock()
			return dataErr("add user", fmt.Errorf("%w: username or email", ErrDuplicate))
		}
	}
	r.lastUser++
	id := r.lastUser
	r.users[id] = &models.User{ID: id, Username: username, Password: password, Email: email}
	r.mu.Unlock()

	r.logger.Info(ctx, "user added", "user_id", id, "username", username)
	r.hub.Broadcast(ctx)
	return nil
}

func (r *MemoryRepository) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	u, _ := r.GetUserByUsername(ctx, username)
	if !u.PasswordMatches(password) {
		return nil, nil
	}
	return u, nil
}

func (r *MemoryRepository) AddSurvey(ctx context.Context, creatorID int, label, description string, options []time.Time) (int, error) {
	key, err := joinkey.Generate()
	if err != nil {
		return 0, dataErr("add survey", err)
	}

	r.mu.Lock()
	if err := r.requireUsers(creatorID); err != nil {
		r.mu.Unlock()
		return 0, dataErr("add survey", err)
	}
	r.lastSurv++
	id := r.lastSurv
	s := models.NewSurvey(id, creatorID, label, description, timex.Normalize(r.clock.Now()), key)
	for _, at := range options {
		r.lastOpt++
		s.AddOption(models.NewSurveyOption(r.lastOpt, timex.Normalize(at)))
	}
	r.surveys[id] = s
	r.mu.Unlock()

	r.logger.Info(ctx, "survey added", "survey_id", id, "creator", creatorID, "options", len(options))
	r.hub.Broadcast(ctx)
	return id, nil
}

func (r *MemoryRepository) GetSurvey(_ context.Context, id int) (*models.Survey, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.surveys[id]
	if !ok {
		return nil, nil
	}
	return snapshot(s), nil
}

// snapshot copies s with its options in rank order.
func snapshot(s *models.Survey) *models.Survey {
	c := s.Clone()
	models.Rank(c.Options)
	return c
}

func (r *MemoryRepository) GetParticipatedSurveys(_ context.Context, userID int) ([]*models.Survey, error) {
	return r.listSurveys(func(s *models.Survey) bool { return s.IsParticipant(userID) }), nil
}

func (r *MemoryRepository) GetInvitedSurveys(_ context.Context, userID int) ([]*models.Survey, error) {
	return r.listSurveys(func(s *models.Survey) bool { return s.IsInvited(userID) && !s.IsParticipant(userID) }), nil
}

func (r *MemoryRepository) listSurveys(keep func(*models.Survey) bool) []*models.Survey {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []*models.Survey{}
	for _, id := range slices.Sorted(maps.Keys(r.surveys)) {
		if s := r.surveys[id]; keep(s) {
			out = append(out, snapshot(s))
		}
	}
	return out
}

func (r *MemoryRepository) RemoveSurvey(ctx context.Context, id int) (bool, error) {
	r.mu.Lock()
	_, ok := r.surveys[id]
	delete(r.surveys, id)
	r.mu.Unlock()

	if ok {
		r.logger.Info(ctx, "survey removed", "survey_id", id)
		r.hub.Broadcast(ctx)
	}
	return ok, nil
}

// requireUsers must be called with r.mu held.
func (r *MemoryRepository) requireUsers(ids ...int) error {
	for _, id := range ids {
		if _, ok := r.users[id]; !ok {
			return fmt.Errorf("%w: %d", ErrUnknownUser, id)
		}
	}
	return nil
}

// byJoinKey must be called with r.mu held.
func (r *MemoryRepository) byJoinKey(joinKey string) *models.Survey {
	for _, s := range r.surveys {
		if s.JoinKey == joinKey {
			return s
		}
	}
	return nil
}

func (r *MemoryRepository) ParticipateInSurvey(ctx context.Context, joinKey string, userID int) (bool, error) {
	r.mu.Lock()
	s := r.byJoinKey(joinKey)
	if s == nil || s.IsParticipant(userID) {
		r.mu.Unlock()
		return false, nil
	}
	if err := r.requireUsers(userID); err != nil {
		r.mu.Unlock()
		return false, dataErr("participate in survey", err)
	}
	s.Join(userID)
	s.Uninvite(userID)
	r.mu.Unlock()

	r.logger.Info(ctx, "user joined survey", "user_id", userID)
	r.hub.Broadcast(ctx)
	return true, nil
}

func (r *MemoryRepository) DeclineSurvey(ctx context.Context, joinKey string, userID int) (bool, error) {
	r.mu.Lock()
	s := r.byJoinKey(joinKey)
	if s == nil || s.IsParticipant(userID) || !s.IsInvited(userID) {
		r.mu.Unlock()
		return false, nil
	}
	s.Uninvite(userID)
	r.mu.Unlock()

	r.logger.Info(ctx, "user declined survey", "user_id", userID)
	r.hub.Broadcast(ctx)
	return true, nil
}

func (r *MemoryRepository) UpdateSurvey(ctx context.Context, s *models.Survey) error {
	if s == nil {
		return fmt.Errorf("%w: nil survey", common.ErrorInvalidArgument)
	}

	r.mu.Lock()
	stored, ok := r.surveys[s.ID]
	if !ok {
		r.mu.Unlock()
		r.logger.Debug(ctx, "update of unknown survey ignored", "survey_id", s.ID)
		return nil
	}

	referenced := s.Invited.Values()
	for _, o := range s.Options {
		referenced = append(referenced, o.Voters.Values()...)
	}
	if err := r.requireUsers(referenced...); err != nil {
		r.mu.Unlock()
		return dataErr("update survey", err)
	}

	stored.Label = s.Label
	stored.Description = s.Description
	stored.Open = s.Open
	stored.Invited = set.NewInts(s.Invited.Values()...)

	// Options are re-created in rank order with fresh ids; a preference
	// without a vote does not survive, as with the vote table.
	stored.Options = nil
	for _, o := range s.RankedOptions() {
		r.lastOpt++
		c := models.NewSurveyOption(r.lastOpt, timex.Normalize(o.Time))
		for _, uid := range o.Voters.Values() {
			c.Vote(uid)
			if o.HasPreferred(uid) {
				c.Prefer(uid)
			}
		}
		stored.AddOption(c)
	}
	r.mu.Unlock()

	r.logger.Info(ctx, "survey updated", "survey_id", s.ID)
	r.hub.Broadcast(ctx)
	return nil
}

func (r *MemoryRepository) AddObserver(o Observer)    { r.hub.Add(o) }
func (r *MemoryRepository) RemoveObserver(o Observer) { r.hub.Remove(o) }
