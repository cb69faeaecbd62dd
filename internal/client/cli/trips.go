package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/carpoolea/internal/client/models"
)

// SearchTrips asks for optional filters; blank answers are not sent.
func (a *App) SearchTrips(ctx context.Context, _ []string) error {
	var q models.TripSearch
	var err error
	if q.OriginCity, err = GetSimpleText(a.reader, "Origin city (optional)", a.out); err != nil {
		return err
	}
	if q.DestinationCity, err = GetSimpleText(a.reader, "Destination city (optional)", a.out); err != nil {
		return err
	}
	if q.DepartureDate, err = GetSimpleText(a.reader, "Departure date YYYY-MM-DD (optional)", a.out); err != nil {
		return err
	}
	if q.DepartureDate != "" {
		if _, err := time.Parse("2006-01-02", q.DepartureDate); err != nil {
			return fmt.Errorf("%q is not a YYYY-MM-DD date", q.DepartureDate)
		}
	}
	luggage, err := GetSimpleText(a.reader, "Luggage: backpack, carry_on or large_suitcase (optional)", a.out)
	if err != nil {
		return err
	}
	if luggage != "" {
		q.AllowedLuggage = models.Luggage(luggage)
		if !q.AllowedLuggage.Valid() {
			return models.ErrInvalidLuggage
		}
	}

	trips, err := a.trips.Search(ctx, q)
	if err != nil {
		return err
	}
	if len(trips) == 0 {
		fmt.Fprintln(a.out, "No trips found.")
		return nil
	}
	printTrips(a.out, trips)
	return nil
}

func (a *App) ShowTrip(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "Trip ID")
	if err != nil {
		return err
	}
	t, err := a.trips.Get(ctx, id)
	if err != nil {
		return err
	}
	printTrip(a.out, *t)
	return nil
}

// AddTrip publishes a trip in one of the user's vehicles.
func (a *App) AddTrip(ctx context.Context, _ []string) error {
	vs, err := a.vehicles.Mine(ctx)
	if err != nil {
		return err
	}
	if len(vs) == 0 {
		return errors.New("you have no vehicles, use addvehicle first")
	}
	printVehicles(a.out, vs)

	req := models.CreateTripRequest{DriverID: a.session.User().ID}
	vid, err := GetInt(a.reader, "Vehicle ID", int(vs[0].ID), a.out)
	if err != nil {
		return err
	}
	req.VehicleID = int64(vid)

	for _, f := range []struct {
		prompt string
		dst    *string
	}{
		{"Origin city", &req.OriginCity},
		{"Destination city", &req.DestinationCity},
		{"Departure point", &req.DeparturePoint},
		{"Arrival point", &req.ArrivalPoint},
	} {
		if *f.dst, err = GetSimpleText(a.reader, f.prompt, a.out); err != nil {
			return err
		}
	}

	if req.DepartureTime, err = a.readTime("Departure (YYYY-MM-DD HH:MM)"); err != nil {
		return err
	}
	if req.IsTimeRange, err = GetYesNo(a.reader, "Flexible departure window?", a.out); err != nil {
		return err
	}
	if req.IsTimeRange {
		end, err := a.readTime("Latest departure (YYYY-MM-DD HH:MM)")
		if err != nil {
			return err
		}
		req.DepartureTimeEnd = &end
	}

	luggage, err := GetTextWithDefault(a.reader, "Allowed luggage: backpack, carry_on or large_suitcase", string(models.LuggageCarryOn), a.out)
	if err != nil {
		return err
	}
	req.AllowedLuggage = models.Luggage(luggage)

	price, err := GetSimpleText(a.reader, "Price per seat", a.out)
	if err != nil {
		return err
	}
	if req.PricePerSeat, err = strconv.ParseFloat(strings.ReplaceAll(price, ",", "."), 64); err != nil {
		return fmt.Errorf("%q is not a price", price)
	}
	if req.TotalSeats, err = GetInt(a.reader, "Total seats", 3, a.out); err != nil {
		return err
	}
	if req.AvailableSeats, err = GetInt(a.reader, "Available seats", req.TotalSeats, a.out); err != nil {
		return err
	}
	if req.AdditionalNotes, err = GetSimpleText(a.reader, "Notes (optional)", a.out); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		return err
	}
	t, err := a.trips.Create(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Trip #%d published.\n", t.ID)
	return nil
}

func (a *App) readTime(prompt string) (time.Time, error) {
	s, err := GetSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.ParseInLocation(timeLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q is not a YYYY-MM-DD HH:MM time", s)
	}
	return t, nil
}

func (a *App) CancelTrip(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "Trip ID")
	if err != nil {
		return err
	}
	ok, err := GetYesNo(a.reader, fmt.Sprintf("Cancel trip #%d? Passengers' bookings will be cancelled too.", id), a.out)
	if err != nil || !ok {
		return err
	}
	if err := a.trips.Cancel(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Trip #%d cancelled.\n", id)
	return nil
}
