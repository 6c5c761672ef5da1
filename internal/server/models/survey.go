package models

import (
	"slices"
	"time"

	"github.com/juju/collections/set"
)

// Survey is an appointment survey: a creator proposes options, participants
// vote on them. The creator is a participant from construction on.
type Survey struct {
	ID           int
	CreatedBy    int
	Label        string
	Description  string
	CreatedAt    time.Time
	JoinKey      string
	Open         bool
	Invited      set.Ints
	Participants set.Ints
	Options      []*SurveyOption
}

// NewSurvey returns an open survey with the creator as its only participant.
func NewSurvey(id, createdBy int, label, description string, createdAt time.Time, joinKey string, options ...*SurveyOption) *Survey {
	s := &Survey{
		ID:           id,
		CreatedBy:    createdBy,
		Label:        label,
		Description:  description,
		CreatedAt:    createdAt,
		JoinKey:      joinKey,
		Open:         true,
		Invited:      set.NewInts(),
		Participants: set.NewInts(createdBy),
	}
	s.Options = append(s.Options, options...)
	return s
}

func (s *Survey) init() {
	if s.Invited == nil {
		s.Invited = set.NewInts()
	}
	if s.Participants == nil {
		s.Participants = set.NewInts()
	}
}

func (s *Survey) Invite(userID int) {
	s.init()
	s.Invited.Add(userID)
}

// Join adds userID to the participants. Joining twice is a no-op.
func (s *Survey) Join(userID int) {
	s.init()
	s.Participants.Add(userID)
}

// Uninvite drops a pending invitation, as joining or declining does.
func (s *Survey) Uninvite(userID int) {
	s.init()
	s.Invited.Remove(userID)
}

func (s *Survey) AddOption(o *SurveyOption) {
	s.Options = append(s.Options, o)
}

// Close marks the survey closed. It returns false if it was closed already.
func (s *Survey) Close() bool {
	if !s.Open {
		return false
	}
	s.Open = false
	return true
}

func (s *Survey) IsInvited(userID int) bool     { return s.Invited.Contains(userID) }
func (s *Survey) IsParticipant(userID int) bool { return s.Participants.Contains(userID) }

// RankedOptions returns the options sorted by rank without touching s.
func (s *Survey) RankedOptions() []*SurveyOption {
	ranked := slices.Clone(s.Options)
	Rank(ranked)
	return ranked
}

// Option returns the option with the given id, or nil.
func (s *Survey) Option(id int) *SurveyOption {
	for _, o := range s.Options {
		if o.ID == id {
			return o
		}
	}
	return nil
}

// PreferredOption returns the first option userID marked as preferred.
func (s *Survey) PreferredOption(userID int) *SurveyOption {
	for _, o := range s.Options {
		if o.HasPreferred(userID) {
			return o
		}
	}
	return nil
}

// Clone returns a deep copy of s.
func (s *Survey) Clone() *Survey {
	c := &Survey{
		ID:           s.ID,
		CreatedBy:    s.CreatedBy,
		Label:        s.Label,
		Description:  s.Description,
		CreatedAt:    s.CreatedAt,
		JoinKey:      s.JoinKey,
		Open:         s.Open,
		Invited:      set.NewInts(s.Invited.Values()...),
		Participants: set.NewInts(s.Participants.Values()...),
	}
	for _, o := range s.Options {
		c.Options = append(c.Options, o.Clone())
	}
	return c
}
