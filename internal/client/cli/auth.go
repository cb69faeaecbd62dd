package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/carpoolea/internal/client/models"
)

var errAlreadyLoggedIn = errors.New("already logged in, log out first")

// Register prompts for the account fields and logs into the new account.
func (a *App) Register(ctx context.Context, _ []string) error {
	if a.isLoggedIn() {
		return errAlreadyLoggedIn
	}

	var req models.RegisterRequest
	var err error
	if req.Email, err = GetSimpleText(a.reader, "Enter email", a.out); err != nil {
		return err
	}
	if req.Password, err = GetPassword(a.reader, a.out); err != nil {
		return err
	}
	if req.FirstName, err = GetSimpleText(a.reader, "First name", a.out); err != nil {
		return err
	}
	if req.LastName, err = GetSimpleText(a.reader, "Last name", a.out); err != nil {
		return err
	}
	if req.Phone, err = GetSimpleText(a.reader, "Phone", a.out); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}

	if err := a.session.Register(ctx, req); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Welcome, %s!\n", a.session.User().FirstName)
	return nil
}

func (a *App) Login(ctx context.Context, _ []string) error {
	if a.isLoggedIn() {
		return errAlreadyLoggedIn
	}

	var req models.LoginRequest
	var err error
	if req.Email, err = GetSimpleText(a.reader, "Enter email", a.out); err != nil {
		return err
	}
	if req.Password, err = GetPassword(a.reader, a.out); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}

	if err := a.session.Login(ctx, req); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Welcome, %s!\n", a.session.User().FirstName)
	return nil
}

// Logout always ends the session. A storage failure is only reported.
func (a *App) Logout(ctx context.Context, _ []string) error {
	a.loggingOut = true
	err := a.session.Logout(ctx)
	a.loggingOut = false

	if err != nil {
		a.log.Warn(ctx, "logout left local data behind", "error", err)
		fmt.Fprintln(a.out, "Logged out, but local session data could not be fully removed.")
		return nil
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
