package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/carpoolea/internal/client/models"
)

// Profile fetches the current profile and refreshes the stored identity.
func (a *App) Profile(ctx context.Context, _ []string) error {
	u, err := a.users.Me(ctx)
	if err != nil {
		return err
	}
	if err := a.session.UpdateIdentity(ctx, *u); err != nil {
		a.log.Warn(ctx, "could not refresh stored identity", "error", err)
	}
	printUser(a.out, *u)
	return nil
}

// EditProfile offers the current values as defaults; empty input keeps them.
func (a *App) EditProfile(ctx context.Context, _ []string) error {
	cur := a.session.User()
	if cur == nil {
		return errors.New("not logged in")
	}

	first, err := GetTextWithDefault(a.reader, "First name", cur.FirstName, a.out)
	if err != nil {
		return err
	}
	last, err := GetTextWithDefault(a.reader, "Last name", cur.LastName, a.out)
	if err != nil {
		return err
	}
	phone, err := GetTextWithDefault(a.reader, "Phone", cur.Phone, a.out)
	if err != nil {
		return err
	}
	photo, err := GetTextWithDefault(a.reader, "Photo URL (optional)", cur.PhotoURL, a.out)
	if err != nil {
		return err
	}

	req := models.NewProfileUpdate(first, last, phone, photo)
	if err := req.Validate(); err != nil {
		return err
	}

	u, err := a.users.UpdateMe(ctx, req)
	if err != nil {
		return err
	}
	if err := a.session.UpdateIdentity(ctx, *u); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Profile updated.")
	return nil
}

func (a *App) SearchUsers(ctx context.Context, args []string) error {
	name := strings.Join(args, " ")
	if name == "" {
		var err error
		if name, err = GetSimpleText(a.reader, "Name to search", a.out); err != nil {
			return err
		}
	}

	users, err := a.users.Search(ctx, name)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		fmt.Fprintln(a.out, "No users found.")
		return nil
	}
	for _, u := range users {
		fmt.Fprintf(a.out, "#%d  %s  (rating: %s)\n", u.ID, u.FullName(), u.RatingLabel())
	}
	return nil
}
