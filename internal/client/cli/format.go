package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dmitrijs2005/sos/internal/server/models"
)

// optionLayout is how option times are entered and shown, in local time.
const optionLayout = "2006-01-02 15:04"

func parseOptionTimes(lines []string, loc *time.Location) ([]time.Time, error) {
	out := make([]time.Time, 0, len(lines))
	for _, l := range lines {
		t, err := time.ParseInLocation(optionLayout, l, loc)
		if err != nil {
			return nil, fmt.Errorf("bad option time %q, want %s", l, optionLayout)
		}
		out = append(out, t)
	}
	return out, nil
}

func surveyState(s *models.Survey) string {
	if s.Open {
		return "open"
	}
	return "closed"
}

// formatSurveyLine renders one listing row as seen by userID.
func formatSurveyLine(s *models.Survey, userID int) string {
	owner := ""
	if s.CreatedBy == userID {
		owner = ", yours"
	}
	return fmt.Sprintf("#%d %s [%s%s] %d participant(s), key %s",
		s.ID, s.Label, surveyState(s), owner, s.Participants.Size(), s.JoinKey)
}

// writeSurvey prints the survey with its options numbered in rank order.
func writeSurvey(w io.Writer, s *models.Survey, userID int, loc *time.Location) {
	fmt.Fprintf(w, "#%d %s [%s]\n", s.ID, s.Label, surveyState(s))
	if s.Description != "" {
		fmt.Fprintf(w, "  %s\n", s.Description)
	}
	fmt.Fprintf(w, "  created %s, join key %s\n", s.CreatedAt.In(loc).Format(optionLayout), s.JoinKey)
	fmt.Fprintf(w, "  participants %v, invited %v\n", s.Participants.SortedValues(), s.Invited.SortedValues())

	if len(s.Options) == 0 {
		fmt.Fprintln(w, "  no options")
		return
	}
	for i, o := range s.Options {
		var marks []string
		if o.HasVoted(userID) {
			marks = append(marks, "voted")
		}
		if o.HasPreferred(userID) {
			marks = append(marks, "preferred")
		}
		mark := ""
		if len(marks) > 0 {
			mark = " [" + strings.Join(marks, ", ") + "]"
		}
		fmt.Fprintf(w, "  %d. %s  votes %d, preferred by %d%s\n",
			i+1, o.Time.In(loc).Format("Mon "+optionLayout), o.VoteCount(), o.PreferenceCount(), mark)
	}
}
