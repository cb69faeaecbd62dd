package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/carpoolea/internal/client/models"
)

func (a *App) ListBookings(ctx context.Context, _ []string) error {
	bs, err := a.bookings.Mine(ctx)
	if err != nil {
		return err
	}
	if len(bs) == 0 {
		fmt.Fprintln(a.out, "No bookings.")
		return nil
	}
	printBookings(a.out, a.session.User().ID, bs)
	return nil
}

// Book requests seats on a trip for the logged-in user.
func (a *App) Book(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "Trip ID")
	if err != nil {
		return err
	}
	seats, err := GetInt(a.reader, "Seats", 1, a.out)
	if err != nil {
		return err
	}

	req := models.CreateBookingRequest{TripID: id, PassengerID: a.session.User().ID, SeatsRequested: seats}
	if err := req.Validate(); err != nil {
		return err
	}
	b, err := a.bookings.RequestSeat(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Booking #%d requested (%s).\n", b.ID, b.Status)
	return nil
}

func (a *App) ConfirmBooking(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "Booking ID")
	if err != nil {
		return err
	}
	b, err := a.bookings.Confirm(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Booking #%d %s.\n", b.ID, b.Status)
	return nil
}

func (a *App) RejectBooking(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "Booking ID")
	if err != nil {
		return err
	}
	b, err := a.bookings.Reject(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Booking #%d %s.\n", b.ID, b.Status)
	return nil
}

func (a *App) CancelBooking(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "Booking ID")
	if err != nil {
		return err
	}
	ok, err := GetYesNo(a.reader, fmt.Sprintf("Cancel booking #%d?", id), a.out)
	if err != nil || !ok {
		return err
	}
	if err := a.bookings.Cancel(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Booking #%d cancelled.\n", id)
	return nil
}
