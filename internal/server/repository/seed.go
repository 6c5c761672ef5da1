package repository

import (
	"context"
	"fmt"
	"time"
)

// Seed loads the demo data set through r: three users and two surveys with
// votes and invitations. Slots are placed on the days following now.
func Seed(ctx context.Context, r Repository, now time.Time) error {
	users := []struct{ username, password, email string }{
		{"admin", "1234", "admin@example.com"},
		{"user", "user123", "user@example.com"},
		{"john", "john123", "john@example.com"},
	}

	ids := make(map[string]int, len(users))
	for _, u := range users {
		if err := r.AddUser(ctx, u.username, u.password, u.email); err != nil {
			return fmt.Errorf("seed user %s: %w", u.username, err)
		}
		created, err := r.GetUserByUsername(ctx, u.username)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", u.username, err)
		}
		if created == nil {
			return fmt.Errorf("seed user %s: not stored", u.username)
		}
		ids[u.username] = created.ID
	}

	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	at := func(days, hour int) time.Time { return day.AddDate(0, 0, days).Add(time.Duration(hour) * time.Hour) }

	admin, user, john := ids["admin"], ids["user"], ids["john"]

	// Team Meeting: admin votes for both slots and prefers the second, user
	// votes for the second; user and john are invited.
	err := seedSurvey(ctx, r, admin, "Team Meeting", "Weekly sync",
		[]time.Time{at(1, 14), at(2, 10)},
		[]int{john, user},
		map[int][]int{0: {admin}, 1: {admin, user}},
		map[int][]int{1: {admin}},
	)
	if err != nil {
		return err
	}

	// Project Review: user votes for both of their own slots.
	return seedSurvey(ctx, r, user, "Project Review", "Q2 Planning",
		[]time.Time{at(3, 15), at(2, 15)},
		nil,
		map[int][]int{0: {user}, 1: {user}},
		nil,
	)
}

// seedSurvey creates a survey and applies invitations, votes and preferences
// keyed by the position of the option in slots.
func seedSurvey(ctx context.Context, r Repository, creator int, label, description string,
	slots []time.Time, invited []int, votes, prefs map[int][]int) error {

	id, err := r.AddSurvey(ctx, creator, label, description, slots)
	if err != nil {
		return fmt.Errorf("seed survey %q: %w", label, err)
	}

	s, err := r.GetSurvey(ctx, id)
	if err != nil {
		return fmt.Errorf("seed survey %q: %w", label, err)
	}
	if s == nil {
		return fmt.Errorf("seed survey %q: not stored", label)
	}

	for _, uid := range invited {
		s.Invite(uid)
	}

	for i, slot := range slots {
		for _, o := range s.Options {
			if !o.Time.Equal(slot) {
				continue
			}
			for _, uid := range votes[i] {
				o.Vote(uid)
			}
			for _, uid := range prefs[i] {
				o.Prefer(uid)
			}
		}
	}

	if err := r.UpdateSurvey(ctx, s); err != nil {
		return fmt.Errorf("seed survey %q: %w", label, err)
	}
	return nil
}
