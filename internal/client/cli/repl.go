package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/carpoolea/internal/client/client"
)

type command struct {
	run     func(ctx context.Context, args []string) error
	usage   string
	private bool
}

func (a *App) commands() map[string]command {
	return map[string]command{
		"register": {run: a.Register, usage: "register"},
		"login":    {run: a.Login, usage: "login"},
		"logout":   {run: a.Logout, usage: "logout", private: true},

		"profile":     {run: a.Profile, usage: "profile", private: true},
		"editprofile": {run: a.EditProfile, usage: "editprofile", private: true},
		"users":       {run: a.SearchUsers, usage: "users <name>", private: true},

		"trips":      {run: a.SearchTrips, usage: "trips", private: true},
		"trip":       {run: a.ShowTrip, usage: "trip <id>", private: true},
		"addtrip":    {run: a.AddTrip, usage: "addtrip", private: true},
		"canceltrip": {run: a.CancelTrip, usage: "canceltrip <id>", private: true},

		"vehicles":      {run: a.ListVehicles, usage: "vehicles", private: true},
		"addvehicle":    {run: a.AddVehicle, usage: "addvehicle", private: true},
		"editvehicle":   {run: a.EditVehicle, usage: "editvehicle <id>", private: true},
		"deletevehicle": {run: a.DeleteVehicle, usage: "deletevehicle <id>", private: true},

		"bookings":      {run: a.ListBookings, usage: "bookings", private: true},
		"book":          {run: a.Book, usage: "book <tripId>", private: true},
		"confirm":       {run: a.ConfirmBooking, usage: "confirm <bookingId>", private: true},
		"reject":        {run: a.RejectBooking, usage: "reject <bookingId>", private: true},
		"cancelbooking": {run: a.CancelBooking, usage: "cancelbooking <bookingId>", private: true},
	}
}

func (a *App) prompt() string {
	if u := a.session.User(); u != nil {
		return fmt.Sprintf("carpool (%s)> ", u.Email)
	}
	return "carpool> "
}

// repl reads commands until EOF or exit. Command errors are reported to the
// user and never end the loop.
func (a *App) repl(ctx context.Context) {
	cmds := a.commands()

	for {
		fmt.Fprint(a.out, a.prompt())
		line, err := a.reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			fmt.Fprintln(a.out)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		name, args := parts[0], parts[1:]

		switch name {
		case "help":
			a.help(cmds)
			continue
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		}

		cmd, ok := cmds[name]
		switch {
		case !ok:
			fmt.Fprintln(a.out, "Unknown command:", name)
		case cmd.private && !a.isLoggedIn():
			fmt.Fprintln(a.out, "Please log in first.")
		default:
			if err := cmd.run(ctx, args); err != nil {
				a.report(ctx, name, err)
			}
		}
	}
}

func (a *App) help(cmds map[string]command) {
	var names []string
	for _, c := range cmds {
		if c.private == a.isLoggedIn() {
			names = append(names, c.usage)
		}
	}
	sort.Strings(names)
	fmt.Fprintf(a.out, "Available commands: %s, help, exit\n", strings.Join(names, ", "))
}

func (a *App) report(ctx context.Context, name string, err error) {
	a.log.Debug(ctx, "command failed", "command", name, "error", err)
	fmt.Fprintln(a.out, "Error:", client.Message(err))
}

// idArg returns the numeric id given as first argument, or prompts for one.
func (a *App) idArg(args []string, prompt string) (int64, error) {
	s := ""
	if len(args) > 0 {
		s = args[0]
	} else {
		var err error
		if s, err = GetSimpleText(a.reader, prompt, a.out); err != nil {
			return 0, err
		}
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%q is not a valid id", s)
	}
	return id, nil
}
