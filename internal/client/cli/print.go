package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dmitrijs2005/carpoolea/internal/client/models"
)

const timeLayout = "2006-01-02 15:04"

func printUser(w io.Writer, u models.User) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Name:\t%s\n", u.FullName())
	fmt.Fprintf(tw, "Email:\t%s\n", u.Email)
	fmt.Fprintf(tw, "Phone:\t%s\n", u.Phone)
	if u.PhotoURL != "" {
		fmt.Fprintf(tw, "Photo:\t%s\n", u.PhotoURL)
	}
	fmt.Fprintf(tw, "Rating:\t%s (%d ratings)\n", u.RatingLabel(), u.TotalRatings)
	_ = tw.Flush()
}

func departure(t models.Trip) string {
	s := t.DepartureTime.Local().Format(timeLayout)
	if t.IsTimeRange && t.DepartureTimeEnd != nil {
		s += " - " + t.DepartureTimeEnd.Local().Format("15:04")
	}
	return s
}

func printTrips(w io.Writer, trips []models.Trip) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tROUTE\tDEPARTURE\tSEATS\tPRICE\tDRIVER\tSTATUS")
	for _, t := range trips {
		driver := "-"
		if t.Driver != nil {
			driver = fmt.Sprintf("%s (%s)", t.Driver.FullName(), t.DriverRating())
		}
		fmt.Fprintf(tw, "%d\t%s → %s\t%s\t%d/%d\t%.2f\t%s\t%s\n",
			t.ID, t.OriginCity, t.DestinationCity, departure(t),
			t.AvailableSeats, t.TotalSeats, t.PricePerSeat, driver, t.Status)
	}
	_ = tw.Flush()
}

func printTrip(w io.Writer, t models.Trip) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Trip:\t#%d (%s)\n", t.ID, t.Status)
	fmt.Fprintf(tw, "Route:\t%s (%s) → %s (%s)\n", t.OriginCity, t.DeparturePoint, t.DestinationCity, t.ArrivalPoint)
	fmt.Fprintf(tw, "Departure:\t%s\n", departure(t))
	fmt.Fprintf(tw, "Seats:\t%d of %d available\n", t.AvailableSeats, t.TotalSeats)
	fmt.Fprintf(tw, "Price per seat:\t%.2f\n", t.PricePerSeat)
	fmt.Fprintf(tw, "Luggage:\t%s\n", t.AllowedLuggage)
	if t.Driver != nil {
		fmt.Fprintf(tw, "Driver:\t%s (rating: %s)\n", t.Driver.FullName(), t.DriverRating())
	}
	if t.Vehicle != nil {
		fmt.Fprintf(tw, "Vehicle:\t%s\n", t.Vehicle)
	}
	if p := t.Preferences; p != nil {
		fmt.Fprintf(tw, "Preferences:\tpets %s, music %s, smoking %s, A/C %s\n",
			yesNo(p.PetFriendly), yesNo(p.Music), yesNo(p.Smoking), yesNo(p.AirConditioning))
	}
	if t.AdditionalNotes != "" {
		fmt.Fprintf(tw, "Notes:\t%s\n", t.AdditionalNotes)
	}
	_ = tw.Flush()
}

func yesNo(b *bool) string {
	switch {
	case b == nil:
		return "-"
	case *b:
		return "yes"
	default:
		return "no"
	}
}

func printVehicles(w io.Writer, vs []models.Vehicle) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tVEHICLE\tPLATE\tTRUNK")
	for _, v := range vs {
		fmt.Fprintf(tw, "%d\t%s %s (%s)\t%s\t%s\n", v.ID, v.Brand, v.Model, v.Color, v.LicensePlate, v.TrunkCapacity)
	}
	_ = tw.Flush()
}

func printBookings(w io.Writer, me int64, bs []models.Booking) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTRIP\tROLE\tSEATS\tSTATUS")
	for _, b := range bs {
		route := fmt.Sprintf("#%d", b.TripID)
		if b.Trip != nil {
			route = fmt.Sprintf("#%d %s → %s, %s", b.TripID, b.Trip.OriginCity, b.Trip.DestinationCity, departure(*b.Trip))
		}
		role := "passenger"
		if b.PassengerID != me {
			role = "driver"
			if b.Passenger != nil {
				role = "driver, from " + b.Passenger.FullName()
			}
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\n", b.ID, route, role, b.SeatsRequested, b.Status)
	}
	_ = tw.Flush()
}
