package proto

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/sos/internal/common"
	"github.com/dmitrijs2005/sos/internal/server/models"
	"github.com/dmitrijs2005/sos/internal/timex"
	"github.com/juju/collections/set"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func toIDs(ids []int) []int64 {
	if len(ids) == 0 {
		return nil
	}
	out := make([]int64, len(ids))
	for i, id := range ids {
		out[i] = int64(id)
	}
	return out
}

func fromIDs(ids []int64) set.Ints {
	out := set.NewInts()
	for _, id := range ids {
		out.Add(int(id))
	}
	return out
}

// timeOf returns the zero time for an unset timestamp.
func timeOf(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return timex.Normalize(ts.AsTime())
}

func FromUser(u *models.User) *User {
	if u == nil {
		return nil
	}
	return &User{Id: int64(u.ID), Username: u.Username, Email: u.Email}
}

func (u *User) Model() *models.User {
	if u == nil {
		return nil
	}
	return &models.User{ID: int(u.GetId()), Username: u.GetUsername(), Email: u.GetEmail()}
}

// FromTimes converts candidate option times for AddSurvey.
func FromTimes(times []time.Time) []*timestamppb.Timestamp {
	out := make([]*timestamppb.Timestamp, 0, len(times))
	for _, t := range times {
		out = append(out, timestamppb.New(t))
	}
	return out
}

// Times is the inverse of FromTimes. An unset entry is an invalid argument.
func Times(ts []*timestamppb.Timestamp) ([]time.Time, error) {
	out := make([]time.Time, 0, len(ts))
	for i, t := range ts {
		if t == nil {
			return nil, fmt.Errorf("%w: option %d has no time", common.ErrorInvalidArgument, i)
		}
		out = append(out, timeOf(t))
	}
	return out, nil
}

func FromSurvey(s *models.Survey) *Survey {
	if s == nil {
		return nil
	}
	out := &Survey{
		Id:           int64(s.ID),
		CreatedBy:    int64(s.CreatedBy),
		Label:        s.Label,
		Description:  s.Description,
		JoinKey:      s.JoinKey,
		Open:         s.Open,
		Invited:      toIDs(s.Invited.SortedValues()),
		Participants: toIDs(s.Participants.SortedValues()),
	}
	if !s.CreatedAt.IsZero() {
		out.CreatedAt = timestamppb.New(s.CreatedAt)
	}
	for _, o := range s.Options {
		out.Options = append(out.Options, &Option{
			Id:         int64(o.ID),
			Time:       timestamppb.New(o.Time),
			Voters:     toIDs(o.Voters.SortedValues()),
			Preferrers: toIDs(o.Preferrers.SortedValues()),
		})
	}
	return out
}

func FromSurveys(surveys []*models.Survey) []*Survey {
	out := make([]*Survey, 0, len(surveys))
	for _, s := range surveys {
		out = append(out, FromSurvey(s))
	}
	return out
}

// Model rebuilds the domain aggregate. Option order is kept as sent.
func (s *Survey) Model() (*models.Survey, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: missing survey", common.ErrorInvalidArgument)
	}

	m := &models.Survey{
		ID:           int(s.GetId()),
		CreatedBy:    int(s.GetCreatedBy()),
		Label:        s.GetLabel(),
		Description:  s.GetDescription(),
		CreatedAt:    timeOf(s.GetCreatedAt()),
		JoinKey:      s.GetJoinKey(),
		Open:         s.GetOpen(),
		Invited:      fromIDs(s.GetInvited()),
		Participants: fromIDs(s.GetParticipants()),
	}

	for i, o := range s.GetOptions() {
		if o == nil {
			return nil, fmt.Errorf("%w: option %d is empty", common.ErrorInvalidArgument, i)
		}
		if o.GetTime() == nil {
			return nil, fmt.Errorf("%w: option %d has no time", common.ErrorInvalidArgument, i)
		}
		opt := models.NewSurveyOption(int(o.GetId()), timeOf(o.GetTime()))
		for _, uid := range o.GetVoters() {
			opt.Vote(int(uid))
		}
		for _, uid := range o.GetPreferrers() {
			opt.Prefer(int(uid))
		}
		m.AddOption(opt)
	}

	return m, nil
}

// Models converts a list, failing on the first malformed survey.
func Models(surveys []*Survey) ([]*models.Survey, error) {
	out := make([]*models.Survey, 0, len(surveys))
	for _, s := range surveys {
		m, err := s.Model()
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}
