package cli

import (
	"context"
	"strconv"

	"github.com/dmitrijs2005/sos/internal/server/models"
)

// editable loads a survey the current user participates in. With
// creatorOnly set it also requires the user to be its creator.
func (a *App) editable(ctx context.Context, idArg string, creatorOnly bool) (*models.Survey, int, error) {
	userID := a.currentUser().ID
	s, err := a.fetchSurvey(ctx, idArg)
	if err != nil {
		return nil, 0, err
	}
	if !s.IsParticipant(userID) {
		return nil, 0, errSurveyNotFound
	}
	if creatorOnly && s.CreatedBy != userID {
		return nil, 0, errNotCreator
	}
	return s, userID, nil
}

// optionAt resolves a 1-based position in the ranked option list shown by
// 'show'.
func optionAt(s *models.Survey, arg string) (*models.SurveyOption, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(s.Options) {
		return nil, errNoSuchOption
	}
	return s.Options[n-1], nil
}

// Vote toggles the user's vote on an option. Withdrawing a vote also
// withdraws a preference for that option.
func (a *App) Vote(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usageError("vote <survey id> <option #>")
	}
	s, userID, err := a.editable(ctx, args[0], false)
	if err != nil {
		return err
	}
	if !s.Open {
		return errSurveyClosed
	}
	o, err := optionAt(s, args[1])
	if err != nil {
		return err
	}

	msg := "Vote added"
	if o.HasVoted(userID) {
		o.RevokeVote(userID)
		o.RevokePreference(userID)
		msg = "Vote withdrawn"
	} else {
		o.Vote(userID)
	}

	if err := a.client.UpdateSurvey(ctx, s); err != nil {
		return err
	}
	a.println(msg)
	return nil
}

// Prefer marks an option as the user's favourite, voting for it if needed
// and dropping any earlier preference in the same survey. Preferring the
// current favourite again clears it.
func (a *App) Prefer(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usageError("prefer <survey id> <option #>")
	}
	s, userID, err := a.editable(ctx, args[0], false)
	if err != nil {
		return err
	}
	if !s.Open {
		return errSurveyClosed
	}
	o, err := optionAt(s, args[1])
	if err != nil {
		return err
	}

	msg := "Preference cleared"
	if o.HasPreferred(userID) {
		o.RevokePreference(userID)
	} else {
		for _, other := range s.Options {
			other.RevokePreference(userID)
		}
		o.Vote(userID)
		o.Prefer(userID)
		msg = "Preference set"
	}

	if err := a.client.UpdateSurvey(ctx, s); err != nil {
		return err
	}
	a.println(msg)
	return nil
}

func (a *App) Invite(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usageError("invite <survey id> <username>")
	}
	s, _, err := a.editable(ctx, args[0], true)
	if err != nil {
		return err
	}

	invitee, err := a.client.GetUserByUsername(ctx, args[1])
	if err != nil {
		return err
	}
	if invitee == nil {
		return errUserNotFound
	}
	if s.IsParticipant(invitee.ID) {
		a.printf("%s already takes part\n", invitee.Username)
		return nil
	}

	s.Invite(invitee.ID)
	if err := a.client.UpdateSurvey(ctx, s); err != nil {
		return err
	}
	a.printf("Invited %s\n", invitee.Username)
	return nil
}

func (a *App) CloseSurvey(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("close <survey id>")
	}
	s, _, err := a.editable(ctx, args[0], true)
	if err != nil {
		return err
	}
	if !s.Close() {
		a.println("Survey is already closed")
		return nil
	}
	if err := a.client.UpdateSurvey(ctx, s); err != nil {
		return err
	}
	a.println("Survey closed")
	return nil
}

func (a *App) Remove(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("remove <survey id>")
	}
	s, _, err := a.editable(ctx, args[0], true)
	if err != nil {
		return err
	}
	ok, err := a.client.RemoveSurvey(ctx, s.ID)
	if err != nil {
		return err
	}
	if !ok {
		return errSurveyNotFound
	}
	a.println("Survey removed")
	return nil
}
