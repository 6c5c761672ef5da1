package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2026, 10, 20, 9, 0, 0, 0, time.UTC)

func optionWith(id int, at time.Time, voters, preferrers []int) *SurveyOption {
	o := NewSurveyOption(id, at)
	for _, v := range voters {
		o.Vote(v)
	}
	for _, p := range preferrers {
		o.Prefer(p)
	}
	return o
}

func ids(options []*SurveyOption) []int {
	out := make([]int, 0, len(options))
	for _, o := range options {
		out = append(out, o.ID)
	}
	return out
}

func TestRank_VotesThenPreferencesThenTime(t *testing.T) {
	t1 := base.Add(2 * time.Hour)
	t2 := base.Add(1 * time.Hour)
	t3 := base

	o1 := optionWith(1, t1, []int{1, 2, 3}, []int{1})
	o2 := optionWith(2, t2, []int{4, 5, 6}, []int{4})
	o3 := optionWith(3, t3, []int{7, 8}, []int{1, 2, 3, 4, 5})

	options := []*SurveyOption{o3, o1, o2}
	Rank(options)

	assert.Equal(t, []int{2, 1, 3}, ids(options))
}

func TestCompare_IsTotal(t *testing.T) {
	a := optionWith(5, base, []int{1}, nil)
	b := optionWith(9, base, []int{2}, nil)

	assert.Equal(t, -1, Compare(a, b), "identical rank falls back to id")
	assert.Equal(t, 1, Compare(b, a))
	assert.Equal(t, 0, Compare(a, a))

	options := []*SurveyOption{b, a}
	Rank(options)
	assert.Equal(t, []int{5, 9}, ids(options))
}

func TestSurveyOption_IdempotentSetOps(t *testing.T) {
	o := NewSurveyOption(1, base)

	o.Vote(7)
	o.Vote(7)
	assert.Equal(t, 1, o.VoteCount())
	assert.True(t, o.HasVoted(7))

	o.Prefer(7)
	o.Prefer(7)
	assert.Equal(t, 1, o.PreferenceCount())
	assert.True(t, o.HasPreferred(7))

	o.RevokePreference(7)
	o.RevokePreference(7)
	assert.Equal(t, 0, o.PreferenceCount())
	assert.True(t, o.HasVoted(7), "revoking a preference keeps the vote")

	o.RevokeVote(7)
	o.RevokeVote(42)
	assert.Equal(t, 0, o.VoteCount())
}

func TestSurveyOption_ZeroValueIsUsable(t *testing.T) {
	o := &SurveyOption{ID: 3, Time: base}
	assert.False(t, o.HasVoted(1))
	o.Vote(1)
	o.Prefer(1)
	assert.Equal(t, 1, o.VoteCount())
	assert.Equal(t, 1, o.PreferenceCount())
}

func TestNewSurvey_CreatorIsParticipant(t *testing.T) {
	s := NewSurvey(1, 42, "Team Meeting", "Weekly sync", base, "AbC-_123xyz9")

	assert.True(t, s.Open)
	assert.True(t, s.IsParticipant(42))
	assert.Equal(t, []int{42}, s.Participants.SortedValues())
	assert.True(t, s.Invited.IsEmpty())
	assert.Empty(t, s.Options)
}

func TestSurvey_JoinInviteUninvite(t *testing.T) {
	s := NewSurvey(1, 1, "l", "d", base, "k")

	s.Invite(2)
	s.Invite(2)
	assert.Equal(t, []int{2}, s.Invited.SortedValues())

	s.Join(2)
	s.Join(2)
	s.Uninvite(2)
	assert.Equal(t, []int{1, 2}, s.Participants.SortedValues())
	assert.False(t, s.IsInvited(2))
}

func TestSurvey_CloseIsOneWayAndIdempotent(t *testing.T) {
	s := NewSurvey(1, 1, "l", "d", base, "k")

	assert.True(t, s.Close())
	assert.False(t, s.Open)
	assert.False(t, s.Close(), "second close reports no change")
	assert.False(t, s.Open)
}

func TestSurvey_RankedOptionsLeavesOrderUntouched(t *testing.T) {
	late := optionWith(1, base.Add(time.Hour), []int{1, 2}, nil)
	early := optionWith(2, base, nil, nil)

	s := NewSurvey(1, 1, "l", "d", base, "k", early, late)

	assert.Equal(t, []int{1, 2}, ids(s.RankedOptions()))
	assert.Equal(t, []int{2, 1}, ids(s.Options))
}

func TestSurvey_OptionLookups(t *testing.T) {
	a := optionWith(10, base, []int{1}, []int{1})
	b := optionWith(11, base.Add(time.Hour), []int{1, 2}, nil)
	s := NewSurvey(1, 1, "l", "d", base, "k", a, b)

	assert.Same(t, b, s.Option(11))
	assert.Nil(t, s.Option(99))
	assert.Same(t, a, s.PreferredOption(1))
	assert.Nil(t, s.PreferredOption(2))
}

func TestSurvey_CloneIsDeep(t *testing.T) {
	s := NewSurvey(1, 1, "l", "d", base, "k", optionWith(5, base, []int{1}, nil))
	s.Invite(3)

	c := s.Clone()
	require.Equal(t, s.Participants.SortedValues(), c.Participants.SortedValues())

	c.Join(9)
	c.Invite(10)
	c.Options[0].Vote(2)
	c.Label = "changed"

	assert.False(t, s.IsParticipant(9))
	assert.False(t, s.IsInvited(10))
	assert.Equal(t, 1, s.Options[0].VoteCount())
	assert.Equal(t, "l", s.Label)
}

func TestUser_PasswordMatches(t *testing.T) {
	u := &User{ID: 1, Username: "admin", Password: "1234"}
	assert.True(t, u.PasswordMatches("1234"))
	assert.False(t, u.PasswordMatches("12345"))

	var missing *User
	assert.False(t, missing.PasswordMatches(""))
}
