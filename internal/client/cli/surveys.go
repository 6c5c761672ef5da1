package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/sos/internal/server/models"
)

var (
	errSurveyNotFound = errors.New("survey not found")
	errNotCreator     = errors.New("only the creator can do that")
	errSurveyClosed   = errors.New("survey is closed")
	errNoSuchOption   = errors.New("no such option")
	errUserNotFound   = errors.New("user not found")
)

// displayLocation is where option times are read and shown.
var displayLocation = time.Local

func (a *App) List(ctx context.Context) error {
	u := a.currentUser()
	surveys, err := a.client.GetParticipatedSurveys(ctx, u.ID)
	if err != nil {
		return err
	}
	if len(surveys) == 0 {
		a.println("No surveys yet. Use 'create' or 'join <key>'.")
		a.setView(a.List)
		return nil
	}
	for _, s := range surveys {
		a.println(formatSurveyLine(s, u.ID))
	}
	a.setView(a.List)
	return nil
}

func (a *App) Invited(ctx context.Context) error {
	u := a.currentUser()
	surveys, err := a.client.GetInvitedSurveys(ctx, u.ID)
	if err != nil {
		return err
	}
	if len(surveys) == 0 {
		a.println("No pending invitations")
		a.setView(a.Invited)
		return nil
	}
	for _, s := range surveys {
		a.println(formatSurveyLine(s, u.ID))
	}
	a.println("Use 'join <key>' or 'decline <key>'.")
	a.setView(a.Invited)
	return nil
}

// Show prints a survey the user participates in or is invited to.
func (a *App) Show(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("show <survey id>")
	}
	u := a.currentUser()
	s, err := a.fetchSurvey(ctx, args[0])
	if err != nil {
		return err
	}
	if !s.IsParticipant(u.ID) && !s.IsInvited(u.ID) {
		return errSurveyNotFound
	}

	a.outMu.Lock()
	writeSurvey(a.out, s, u.ID, displayLocation)
	a.outMu.Unlock()

	a.setView(func(ctx context.Context) error { return a.Show(ctx, args) })
	return nil
}

// Create asks for a label, a description and option times and creates the
// survey with the current user as creator.
func (a *App) Create(ctx context.Context) error {
	label, err := getSimpleText(a.reader, "Enter label", a.out)
	if err != nil {
		return err
	}
	if label == "" {
		return errEmptyField
	}
	description, err := getSimpleText(a.reader, "Enter description", a.out)
	if err != nil {
		return err
	}
	lines, err := getLines(a.reader, fmt.Sprintf("Enter option times (%s), one per line", optionLayout), a.out)
	if err != nil {
		return err
	}
	options, err := parseOptionTimes(lines, displayLocation)
	if err != nil {
		return err
	}

	u := a.currentUser()
	id, err := a.client.AddSurvey(ctx, u.ID, label, description, options)
	if err != nil {
		return err
	}

	s, err := a.client.GetSurvey(ctx, id)
	if err != nil {
		return err
	}
	if s == nil {
		return errSurveyNotFound
	}
	a.printf("Created survey #%d, share join key %s\n", s.ID, s.JoinKey)
	return nil
}

func (a *App) Join(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("join <join key>")
	}
	ok, err := a.client.ParticipateInSurvey(ctx, args[0], a.currentUser().ID)
	if err != nil {
		return err
	}
	if !ok {
		a.println("Nothing to join: unknown key or already a participant")
		return nil
	}
	a.println("Joined")
	return nil
}

func (a *App) Decline(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("decline <join key>")
	}
	ok, err := a.client.DeclineSurvey(ctx, args[0], a.currentUser().ID)
	if err != nil {
		return err
	}
	if !ok {
		a.println("Nothing to decline: unknown key or no invitation")
		return nil
	}
	a.println("Declined")
	return nil
}

func (a *App) fetchSurvey(ctx context.Context, idArg string) (*models.Survey, error) {
	id, err := strconv.Atoi(strings.TrimPrefix(idArg, "#"))
	if err != nil {
		return nil, fmt.Errorf("bad survey id %q", idArg)
	}
	s, err := a.client.GetSurvey(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, errSurveyNotFound
	}
	return s, nil
}
