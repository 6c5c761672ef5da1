package models

import (
	"cmp"
	"slices"
	"time"

	"github.com/juju/collections/set"
)

// SurveyOption is one candidate point in time within a survey. Voters and
// Preferrers are independent sets; callers keep Preferrers ⊆ Voters and at
// most one preferred option per user and survey.
type SurveyOption struct {
	ID         int
	Time       time.Time
	Voters     set.Ints
	Preferrers set.Ints
}

func NewSurveyOption(id int, t time.Time) *SurveyOption {
	return &SurveyOption{ID: id, Time: t, Voters: set.NewInts(), Preferrers: set.NewInts()}
}

func (o *SurveyOption) init() {
	if o.Voters == nil {
		o.Voters = set.NewInts()
	}
	if o.Preferrers == nil {
		o.Preferrers = set.NewInts()
	}
}

func (o *SurveyOption) Vote(userID int) {
	o.init()
	o.Voters.Add(userID)
}

func (o *SurveyOption) RevokeVote(userID int) {
	o.init()
	o.Voters.Remove(userID)
}

func (o *SurveyOption) Prefer(userID int) {
	o.init()
	o.Preferrers.Add(userID)
}

func (o *SurveyOption) RevokePreference(userID int) {
	o.init()
	o.Preferrers.Remove(userID)
}

func (o *SurveyOption) HasVoted(userID int) bool     { return o.Voters.Contains(userID) }
func (o *SurveyOption) HasPreferred(userID int) bool { return o.Preferrers.Contains(userID) }
func (o *SurveyOption) VoteCount() int               { return o.Voters.Size() }
func (o *SurveyOption) PreferenceCount() int         { return o.Preferrers.Size() }

// Clone returns a deep copy of o.
func (o *SurveyOption) Clone() *SurveyOption {
	c := NewSurveyOption(o.ID, o.Time)
	for _, id := range o.Voters.Values() {
		c.Voters.Add(id)
	}
	for _, id := range o.Preferrers.Values() {
		c.Preferrers.Add(id)
	}
	return c
}

// Compare orders options by rank: more votes first, then more preferences,
// then earlier time, then lower id. No two distinct options compare equal
// unless they share an id.
func Compare(a, b *SurveyOption) int {
	if c := cmp.Compare(b.VoteCount(), a.VoteCount()); c != 0 {
		return c
	}
	if c := cmp.Compare(b.PreferenceCount(), a.PreferenceCount()); c != 0 {
		return c
	}
	if c := a.Time.Compare(b.Time); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

// Rank sorts options in place by Compare.
func Rank(options []*SurveyOption) {
	slices.SortStableFunc(options, Compare)
}
