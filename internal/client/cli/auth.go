package cli

import (
	"context"
	"errors"
	"fmt"
)

var (
	errInvalidCredentials = errors.New("invalid username or password")
	errUsernameTaken      = errors.New("username is already taken")
	errEmailTaken         = errors.New("email is already registered")
	errEmptyField         = errors.New("value must not be empty")
)

// Register prompts for a username, an email and a password and creates the
// account. Taken usernames and emails are reported before the call.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	if username == "" || email == "" {
		return errEmptyField
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer clear(password)
	if len(password) == 0 {
		return errEmptyField
	}

	if u, err := a.client.GetUserByUsername(ctx, username); err != nil {
		return err
	} else if u != nil {
		return errUsernameTaken
	}
	if u, err := a.client.GetUserByEmail(ctx, email); err != nil {
		return err
	} else if u != nil {
		return errEmailTaken
	}

	if err := a.client.AddUser(ctx, username, string(password), email); err != nil {
		return err
	}

	a.println("Success! You can login now.")
	return nil
}

// Login prompts for credentials and authenticates against the server. On
// success the user becomes the current user of the session.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer clear(password)

	u, err := a.client.Authenticate(ctx, username, string(password))
	if err != nil {
		a.logger.Warn(ctx, "login failed", "username", username, "error", err)
		return err
	}
	if u == nil {
		return errInvalidCredentials
	}

	a.setUser(u)
	a.logger.Info(ctx, "logged in", "user_id", u.ID)
	a.println(fmt.Sprintf("Logged in as %s", u.Username))
	return nil
}

func (a *App) Logout(_ context.Context) error {
	a.setUser(nil)
	a.println("Logged out")
	return nil
}
