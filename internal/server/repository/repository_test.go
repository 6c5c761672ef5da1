package repository

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/sos/internal/common"
	"github.com/dmitrijs2005/sos/internal/dbx"
	"github.com/dmitrijs2005/sos/internal/joinkey"
	"github.com/dmitrijs2005/sos/internal/logging"
	"github.com/dmitrijs2005/sos/internal/server/models"
	"github.com/dmitrijs2005/sos/internal/server/notify"
	"github.com/dmitrijs2005/sos/internal/server/repositories/repomanager"
	"github.com/juju/clock/testclock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)

type env struct {
	name  string
	repo  Repository
	hub   *notify.Hub
	clock *testclock.Clock
	db    *sql.DB
}

func newMemoryEnv(t *testing.T) *env {
	t.Helper()
	hub := notify.NewHub(logging.Nop(), nil)
	clk := testclock.NewClock(epoch)
	return &env{name: "memory", repo: NewMemoryRepository(hub, clk, logging.Nop()), hub: hub, clock: clk}
}

func newSQLiteEnv(t *testing.T) *env {
	t.Helper()
	ctx := context.Background()

	db, err := dbx.Open(ctx, dbx.SQLite, filepath.Join(t.TempDir(), "sos.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	rm, err := repomanager.NewSQLRepositoryManager(dbx.SQLite, logging.Nop())
	require.NoError(t, err)
	require.NoError(t, rm.RunMigrations(ctx, db))

	hub := notify.NewHub(logging.Nop(), nil)
	clk := testclock.NewClock(epoch)
	return &env{name: "sqlite", repo: NewDBRepository(db, rm, hub, clk, logging.Nop()), hub: hub, clock: clk, db: db}
}

func forEachRepository(t *testing.T, fn func(t *testing.T, e *env)) {
	for _, mk := range []func(*testing.T) *env{newMemoryEnv, newSQLiteEnv} {
		e := mk(t)
		t.Run(e.name, func(t *testing.T) { fn(t, e) })
	}
}

type countingObserver struct {
	n   atomic.Int32
	err error
}

func (o *countingObserver) Notify(context.Context) error {
	o.n.Add(1)
	return o.err
}

func addUsers(t *testing.T, r Repository, names ...string) []int {
	t.Helper()
	ctx := context.Background()
	ids := make([]int, 0, len(names))
	for _, n := range names {
		require.NoError(t, r.AddUser(ctx, n, n+"-pw", n+"@example.com"))
		u, err := r.GetUserByUsername(ctx, n)
		require.NoError(t, err)
		require.NotNil(t, u)
		ids = append(ids, u.ID)
	}
	return ids
}

func TestUsers(t *testing.T) {
	forEachRepository(t, func(t *testing.T, e *env) {
		ctx := context.Background()
		ids := addUsers(t, e.repo, "alice", "bob")
		assert.Equal(t, []int{1, 2}, ids)

		u, err := e.repo.GetUser(ctx, ids[1])
		require.NoError(t, err)
		assert.Equal(t, &models.User{ID: 2, Username: "bob", Password: "bob-pw", Email: "bob@example.com"}, u)

		u, err = e.repo.GetUserByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		require.NotNil(t, u)
		assert.Equal(t, "alice", u.Username)

		u, err = e.repo.GetUser(ctx, 99)
		require.NoError(t, err)
		assert.Nil(t, u)

		u, err = e.repo.GetUserByUsername(ctx, "nobody")
		require.NoError(t, err)
		assert.Nil(t, u)

		u, err = e.repo.GetUserByEmail(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.Nil(t, u)
	})
}

func TestAddUser_DuplicateIsDataAccessError(t *testing.T) {
	forEachRepository(t, func(t *testing.T, e *env) {
		addUsers(t, e.repo, "alice")

		err := e.repo.AddUser(context.Background(), "alice", "x", "other@example.com")
		require.Error(t, err)
		assert.ErrorIs(t, err, common.ErrDataAccess)
	})
}

func TestAuthenticate(t *testing.T) {
	forEachRepository(t, func(t *testing.T, e *env) {
		ctx := context.Background()
		addUsers(t, e.repo, "alice")

		u, err := e.repo.Authenticate(ctx, "alice", "alice-pw")
		require.NoError(t, err)
		require.NotNil(t, u)
		assert.Equal(t, "alice", u.Username)

		u, err = e.repo.Authenticate(ctx, "alice", "wrong")
		require.NoError(t, err)
		assert.Nil(t, u)

		u, err = e.repo.Authenticate(ctx, "ghost", "alice-pw")
		require.NoError(t, err)
		assert.Nil(t, u)
	})
}

func TestAddSurvey(t *testing.T) {
	forEachRepository(t, func(t *testing.T, e *env) {
		ctx := context.Background()
		ids := addUsers(t, e.repo, "alice")
		t1 := epoch.Add(48 * time.Hour)
		t2 := epoch.Add(24 * time.Hour)

		id, err := e.repo.AddSurvey(ctx, ids[0], "Team Meeting", "Weekly sync", []time.Time{t1, t2})
		require.NoError(t, err)
		assert.Equal(t, 1, id)

		s, err := e.repo.GetSurvey(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, s)

		assert.Equal(t, "Team Meeting", s.Label)
		assert.Equal(t, "Weekly sync", s.Description)
		assert.True(t, s.Open)
		assert.True(t, joinkey.IsValid(s.JoinKey))
		assert.True(t, s.CreatedAt.Equal(epoch))
		assert.True(t, s.IsParticipant(ids[0]), "creator participates")
		assert.True(t, s.Invited.IsEmpty())

		require.Len(t, s.Options, 2)
		assert.True(t, s.Options[0].Time.Equal(t2), "earlier slot ranks first without votes")
		assert.True(t, s.Options[1].Time.Equal(t1))
		assert.Equal(t, 2, s.Options[0].ID)
		assert.Equal(t, 1, s.Options[1].ID)
	})
}

func TestAddSurvey_JoinKeysDiffer(t *testing.T) {
	forEachRepository(t, func(t *testing.T, e *env) {
		ctx := context.Background()
		ids := addUsers(t, e.repo, "alice")

		a, err := e.repo.AddSurvey(ctx, ids[0], "a", "", nil)
		require.NoError(t, err)
		b, err := e.repo.AddSurvey(ctx, ids[0], "b", "", nil)
		require.NoError(t, err)

		sa, _ := e.repo.GetSurvey(ctx, a)
		sb, _ := e.repo.GetSurvey(ctx, b)
		assert.NotEqual(t, sa.JoinKey, sb.JoinKey)
		assert.Empty(t, sa.Options)
	})
}

func TestGetSurvey_Unknown(t *testing.T) {
	forEachRepository(t, func(t *testing.T, e *env) {
		s, err := e.repo.GetSurvey(context.Background(), 42)
		require.NoError(t, err)
		assert.Nil(t, s)
	})
}

func TestParticipateAndDecline(t *testing.T) {
	forEachRepository(t, func(t *testing.T, e *env) {
		ctx := context.Background()
		ids := addUsers(t, e.repo, "alice", "bob", "carol", "dave")
		alice, bob, carol, dave := ids[0], ids[1], ids[2], ids[3]

		id, err := e.repo.AddSurvey(ctx, alice, "Standup", "", nil)
		require.NoError(t, err)
		s, _ := e.repo.GetSurvey(ctx, id)
		s.Invite(bob)
		s.Invite(carol)
		require.NoError(t, e.repo.UpdateSurvey(ctx, s))
		key := s.JoinKey

		ok, err := e.repo.ParticipateInSurvey(ctx, key, bob)
		require.NoError(t, err)
		assert.True(t, ok)

		s, _ = e.repo.GetSurvey(ctx, id)
		assert.True(t, s.IsParticipant(bob))
		assert.False(t, s.IsInvited(bob), "joining consumes the invitation")

		ok, err = e.repo.ParticipateInSurvey(ctx, key, bob)
		require.NoError(t, err)
		assert.False(t, ok, "second participation is rejected")

		ok, err = e.repo.ParticipateInSurvey(ctx, key, alice)
		require.NoError(t, err)
		assert.False(t, ok, "creator already participates")

		ok, err = e.repo.DeclineSurvey(ctx, key, bob)
		require.NoError(t, err)
		assert.False(t, ok, "participant cannot decline")

		ok, err = e.repo.DeclineSurvey(ctx, key, carol)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = e.repo.DeclineSurvey(ctx, key, carol)
		require.NoError(t, err)
		assert.False(t, ok, "nothing left to decline")

		ok, err = e.repo.DeclineSurvey(ctx, key, dave)
		require.NoError(t, err)
		assert.False(t, ok, "never invited")

		ok, err = e.repo.ParticipateInSurvey(ctx, key, dave)
		require.NoError(t, err)
		assert.True(t, ok, "join key alone is enough to participate")

		ok, err = e.repo.ParticipateInSurvey(ctx, "AAAAAAAAAAAA", carol)
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = e.repo.DeclineSurvey(ctx, "AAAAAAAAAAAA", carol)
		require.NoError(t, err)
		assert.False(t, ok)

		s, _ = e.repo.GetSurvey(ctx, id)
		assert.Equal(t, []int{alice, bob, dave}, s.Participants.SortedValues())
		assert.True(t, s.Invited.IsEmpty())
	})
}

func TestListings(t *testing.T) {
	forEachRepository(t, func(t *testing.T, e *env) {
		ctx := context.Background()
		ids := addUsers(t, e.repo, "alice", "bob")
		alice, bob := ids[0], ids[1]

		s1, _ := e.repo.AddSurvey(ctx, alice, "one", "", nil)
		s2, _ := e.repo.AddSurvey(ctx, bob, "two", "", nil)
		s3, _ := e.repo.AddSurvey(ctx, alice, "three", "", nil)

		for _, id := range []int{s2, s3} {
			s, _ := e.repo.GetSurvey(ctx, id)
			s.Invite(alice)
			s.Invite(bob)
			require.NoError(t, e.repo.UpdateSurvey(ctx, s))
		}

		participated, err := e.repo.GetParticipatedSurveys(ctx, alice)
		require.NoError(t, err)
		assert.Equal(t, []int{s1, s3}, surveyIDs(participated))

		invited, err := e.repo.GetInvitedSurveys(ctx, alice)
		require.NoError(t, err)
		assert.Equal(t, []int{s2}, surveyIDs(invited), "own survey is not listed as invitation")

		invited, err = e.repo.GetInvitedSurveys(ctx, bob)
		require.NoError(t, err)
		assert.Equal(t, []int{s3}, surveyIDs(invited))

		none, err := e.repo.GetParticipatedSurveys(ctx, 99)
		require.NoError(t, err)
		assert.Empty(t, none)
	})
}

func surveyIDs(surveys []*models.Survey) []int {
	ids := make([]int, 0, len(surveys))
	for _, s := range surveys {
		ids = append(ids, s.ID)
	}
	return ids
}

func TestUpdateSurvey_FullReplace(t *testing.T) {
	forEachRepository(t, func(t *testing.T, e *env) {
		ctx := context.Background()
		ids := addUsers(t, e.repo, "alice", "bob", "carol")
		alice, bob, carol := ids[0], ids[1], ids[2]
		ta, tb := epoch.Add(time.Hour), epoch.Add(2*time.Hour)

		id, err := e.repo.AddSurvey(ctx, alice, "Review", "draft", []time.Time{ta, tb})
		require.NoError(t, err)

		s, _ := e.repo.GetSurvey(ctx, id)
		s.Invite(carol)
		a, b := optionAt(s, ta), optionAt(s, tb)
		b.Vote(alice)
		b.Vote(bob)
		b.Prefer(bob)
		a.Vote(alice)
		require.NoError(t, e.repo.UpdateSurvey(ctx, s))

		s, _ = e.repo.GetSurvey(ctx, id)
		require.Len(t, s.Options, 2)
		assert.True(t, s.Options[0].Time.Equal(tb), "two votes rank first")
		assert.Equal(t, []int{alice, bob}, s.Options[0].Voters.SortedValues())
		assert.Equal(t, []int{bob}, s.Options[0].Preferrers.SortedValues())
		assert.Equal(t, []int{carol}, s.Invited.SortedValues())

		// Drop option B and the invitation, rename, close.
		s.Options = []*models.SurveyOption{optionAt(s, ta)}
		s.Invited = nil
		s.Label = "Review (final)"
		s.Close()
		require.NoError(t, e.repo.UpdateSurvey(ctx, s))

		s, _ = e.repo.GetSurvey(ctx, id)
		require.Len(t, s.Options, 1)
		assert.True(t, s.Options[0].Time.Equal(ta))
		assert.Equal(t, []int{alice}, s.Options[0].Voters.SortedValues())
		assert.True(t, s.Invited.IsEmpty())
		assert.Equal(t, "Review (final)", s.Label)
		assert.False(t, s.Open)
		assert.True(t, s.IsParticipant(alice), "participants are not part of the replace")
	})
}

func optionAt(s *models.Survey, at time.Time) *models.SurveyOption {
	for _, o := range s.Options {
		if o.Time.Equal(at) {
			return o
		}
	}
	return nil
}

func TestUpdateSurvey_UnknownAndNil(t *testing.T) {
	forEachRepository(t, func(t *testing.T, e *env) {
		obs := &countingObserver{}
		e.repo.AddObserver(obs)

		ghost := models.NewSurvey(77, 1, "ghost", "", epoch, "AAAAAAAAAAAA")
		require.NoError(t, e.repo.UpdateSurvey(context.Background(), ghost))
		assert.EqualValues(t, 0, obs.n.Load())

		s, err := e.repo.GetSurvey(context.Background(), 77)
		require.NoError(t, err)
		assert.Nil(t, s)

		err = e.repo.UpdateSurvey(context.Background(), nil)
		assert.ErrorIs(t, err, common.ErrorInvalidArgument)
	})
}

func TestRemoveSurvey(t *testing.T) {
	forEachRepository(t, func(t *testing.T, e *env) {
		ctx := context.Background()
		ids := addUsers(t, e.repo, "alice", "bob")

		id, _ := e.repo.AddSurvey(ctx, ids[0], "Gone", "", []time.Time{epoch})
		s, _ := e.repo.GetSurvey(ctx, id)
		s.Invite(ids[1])
		s.Options[0].Vote(ids[0])
		require.NoError(t, e.repo.UpdateSurvey(ctx, s))

		obs := &countingObserver{}
		e.repo.AddObserver(obs)

		ok, err := e.repo.RemoveSurvey(ctx, id)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.EqualValues(t, 1, obs.n.Load())

		got, err := e.repo.GetSurvey(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, got)

		invited, _ := e.repo.GetInvitedSurveys(ctx, ids[1])
		assert.Empty(t, invited)

		ok, err = e.repo.RemoveSurvey(ctx, id)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.EqualValues(t, 1, obs.n.Load(), "no fan-out when nothing was removed")
	})
}

func TestFanOut(t *testing.T) {
	forEachRepository(t, func(t *testing.T, e *env) {
		ctx := context.Background()
		a, b := &countingObserver{}, &countingObserver{}
		broken := &countingObserver{err: errors.New("connection lost")}

		e.repo.AddObserver(a)
		e.repo.AddObserver(b)
		e.repo.AddObserver(broken)
		e.repo.AddObserver(a)
		require.Equal(t, 3, e.hub.Len())

		require.NoError(t, e.repo.AddUser(ctx, "alice", "pw", "alice@example.com"))
		assert.EqualValues(t, 1, a.n.Load())
		assert.EqualValues(t, 1, b.n.Load())
		assert.EqualValues(t, 1, broken.n.Load())
		assert.Equal(t, 2, e.hub.Len(), "failed observer is pruned")

		_, err := e.repo.AddSurvey(ctx, 1, "x", "", nil)
		require.NoError(t, err)
		assert.EqualValues(t, 2, a.n.Load())
		assert.EqualValues(t, 2, b.n.Load())
		assert.EqualValues(t, 1, broken.n.Load())

		// rejected operations do not notify
		ok, err := e.repo.ParticipateInSurvey(ctx, "AAAAAAAAAAAA", 1)
		require.NoError(t, err)
		require.False(t, ok)
		assert.EqualValues(t, 2, a.n.Load())

		e.repo.RemoveObserver(b)
		e.repo.RemoveObserver(b)
		require.NoError(t, e.repo.AddUser(ctx, "bob", "pw", "bob@example.com"))
		assert.EqualValues(t, 3, a.n.Load())
		assert.EqualValues(t, 2, b.n.Load())
	})
}

func TestCreatorAlwaysParticipates(t *testing.T) {
	forEachRepository(t, func(t *testing.T, e *env) {
		ctx := context.Background()
		ids := addUsers(t, e.repo, "alice", "bob")

		id, _ := e.repo.AddSurvey(ctx, ids[0], "x", "", nil)
		s, _ := e.repo.GetSurvey(ctx, id)
		s.Invite(ids[1])
		require.NoError(t, e.repo.UpdateSurvey(ctx, s))

		_, _ = e.repo.DeclineSurvey(ctx, s.JoinKey, ids[0])
		_, _ = e.repo.ParticipateInSurvey(ctx, s.JoinKey, ids[1])

		s, _ = e.repo.GetSurvey(ctx, id)
		assert.True(t, s.IsParticipant(s.CreatedBy))
	})
}

func TestUnknownUsersAreRejected(t *testing.T) {
	forEachRepository(t, func(t *testing.T, e *env) {
		ctx := context.Background()
		ids := addUsers(t, e.repo, "alice")

		obs := &countingObserver{}
		e.repo.AddObserver(obs)

		_, err := e.repo.AddSurvey(ctx, 999, "orphan", "", []time.Time{epoch})
		assert.ErrorIs(t, err, common.ErrDataAccess)
		surveys, err := e.repo.GetParticipatedSurveys(ctx, 999)
		require.NoError(t, err)
		assert.Empty(t, surveys)

		id, err := e.repo.AddSurvey(ctx, ids[0], "Standup", "", []time.Time{epoch})
		require.NoError(t, err)
		assert.Equal(t, 1, id, "a rejected survey does not use up an id")
		s, err := e.repo.GetSurvey(ctx, id)
		require.NoError(t, err)

		ok, err := e.repo.ParticipateInSurvey(ctx, s.JoinKey, 12345)
		assert.ErrorIs(t, err, common.ErrDataAccess)
		assert.False(t, ok)

		invited := s.Clone()
		invited.Invite(12345)
		assert.ErrorIs(t, e.repo.UpdateSurvey(ctx, invited), common.ErrDataAccess)

		voted := s.Clone()
		voted.Options[0].Vote(12345)
		assert.ErrorIs(t, e.repo.UpdateSurvey(ctx, voted), common.ErrDataAccess)

		got, err := e.repo.GetSurvey(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, s, got, "rejected calls leave the survey untouched")
		assert.EqualValues(t, 1, obs.n.Load(), "only the accepted survey notifies")
	})
}

// The two implementations must agree on everything except the random join key.
func TestImplementationsAgree(t *testing.T) {
	script := func(t *testing.T, e *env) []*models.Survey {
		ctx := context.Background()
		ids := addUsers(t, e.repo, "admin", "user", "john")

		id1, err := e.repo.AddSurvey(ctx, ids[0], "Team Meeting", "Weekly sync",
			[]time.Time{epoch.Add(26 * time.Hour), epoch.Add(48 * time.Hour).Add(123 * time.Nanosecond)})
		require.NoError(t, err)
		e.clock.Advance(time.Minute)
		id2, err := e.repo.AddSurvey(ctx, ids[1], "Project Review", "Q2", []time.Time{epoch.Add(72 * time.Hour)})
		require.NoError(t, err)

		s, _ := e.repo.GetSurvey(ctx, id1)
		s.Invite(ids[1])
		s.Invite(ids[2])
		s.Options[1].Vote(ids[0])
		s.Options[1].Prefer(ids[0])
		s.Options[0].Prefer(ids[2]) // preference without a vote is dropped
		require.NoError(t, e.repo.UpdateSurvey(ctx, s))

		s2, _ := e.repo.GetSurvey(ctx, id2)
		_, err = e.repo.ParticipateInSurvey(ctx, s2.JoinKey, ids[2])
		require.NoError(t, err)
		_, err = e.repo.DeclineSurvey(ctx, s.JoinKey, ids[1])
		require.NoError(t, err)

		var out []*models.Survey
		for _, uid := range ids {
			p, err := e.repo.GetParticipatedSurveys(ctx, uid)
			require.NoError(t, err)
			in, err := e.repo.GetInvitedSurveys(ctx, uid)
			require.NoError(t, err)
			out = append(out, p...)
			out = append(out, in...)
		}
		for _, s := range out {
			s.JoinKey = ""
		}
		return out
	}

	mem := newMemoryEnv(t)
	sqlite := newSQLiteEnv(t)
	assert.Equal(t, script(t, mem), script(t, sqlite))
}

func TestDBRepository_AddSurveyIsAtomic(t *testing.T) {
	e := newSQLiteEnv(t)
	ctx := context.Background()
	ids := addUsers(t, e.repo, "alice")

	obs := &countingObserver{}
	e.repo.AddObserver(obs)

	_, err := e.db.ExecContext(ctx, `DROP TABLE survey_option`)
	require.NoError(t, err)

	_, err = e.repo.AddSurvey(ctx, ids[0], "broken", "", []time.Time{epoch})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrDataAccess)
	assert.EqualValues(t, 0, obs.n.Load(), "no fan-out on failure")

	for _, table := range []string{"survey", "participation"} {
		var n int
		require.NoError(t, e.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+table).Scan(&n))
		assert.Zero(t, n, table)
	}
}

func TestDBRepository_DataAccessErrors(t *testing.T) {
	e := newSQLiteEnv(t)
	ctx := context.Background()
	require.NoError(t, e.db.Close())

	_, err := e.repo.GetUser(ctx, 1)
	assert.ErrorIs(t, err, common.ErrDataAccess)

	_, err = e.repo.GetSurvey(ctx, 1)
	assert.ErrorIs(t, err, common.ErrDataAccess)

	_, err = e.repo.GetParticipatedSurveys(ctx, 1)
	assert.ErrorIs(t, err, common.ErrDataAccess)

	_, err = e.repo.RemoveSurvey(ctx, 1)
	assert.ErrorIs(t, err, common.ErrDataAccess)

	_, err = e.repo.ParticipateInSurvey(ctx, "AAAAAAAAAAAA", 1)
	assert.ErrorIs(t, err, common.ErrDataAccess)

	err = e.repo.UpdateSurvey(ctx, models.NewSurvey(1, 1, "x", "", epoch, "k"))
	assert.ErrorIs(t, err, common.ErrDataAccess)
}

func TestSeed(t *testing.T) {
	forEachRepository(t, func(t *testing.T, e *env) {
		ctx := context.Background()
		require.NoError(t, Seed(ctx, e.repo, epoch))

		admin, err := e.repo.Authenticate(ctx, "admin", "1234")
		require.NoError(t, err)
		require.NotNil(t, admin)

		john, _ := e.repo.GetUserByUsername(ctx, "john")
		require.NotNil(t, john)

		invited, err := e.repo.GetInvitedSurveys(ctx, john.ID)
		require.NoError(t, err)
		require.Len(t, invited, 1)

		team := invited[0]
		assert.Equal(t, "Team Meeting", team.Label)
		require.Len(t, team.Options, 2)
		assert.Equal(t, 2, team.Options[0].VoteCount(), "slot with two votes ranks first")
		assert.True(t, team.Options[0].HasPreferred(admin.ID))

		user, _ := e.repo.GetUserByUsername(ctx, "user")
		mine, err := e.repo.GetParticipatedSurveys(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, mine, 1)
		assert.Equal(t, "Project Review", mine[0].Label)
		require.Len(t, mine[0].Options, 2)
		assert.True(t, mine[0].Options[0].Time.Before(mine[0].Options[1].Time), "equal votes fall back to time")
	})
}
