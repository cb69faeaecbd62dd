package models

import (
	"errors"
	"net/url"
	"strings"
	"time"
)

type Luggage string

const (
	LuggageBackpack      Luggage = "backpack"
	LuggageCarryOn       Luggage = "carry_on"
	LuggageLargeSuitcase Luggage = "large_suitcase"
)

func (l Luggage) Valid() bool {
	switch l {
	case LuggageBackpack, LuggageCarryOn, LuggageLargeSuitcase:
		return true
	}
	return false
}

type TripStatus string

const (
	TripActive    TripStatus = "active"
	TripFull      TripStatus = "full"
	TripCancelled TripStatus = "cancelled"
	TripCompleted TripStatus = "completed"
)

var (
	ErrInvalidLuggage = errors.New("luggage must be backpack, carry_on or large_suitcase")
	ErrInvalidSeats   = errors.New("available seats must be between 1 and total seats")
	ErrInvalidPrice   = errors.New("price per seat must not be negative")
	ErrInvalidTimes   = errors.New("time range end must be after departure time")
)

// TripPreferences are optional driver preferences shown to passengers.
type TripPreferences struct {
	PetFriendly     *bool `json:"petFriendly,omitempty"`
	Music           *bool `json:"music,omitempty"`
	Smoking         *bool `json:"smoking,omitempty"`
	AirConditioning *bool `json:"airConditioning,omitempty"`
}

// Trip is a published ride offer.
type Trip struct {
	ID               int64            `json:"id"`
	DriverID         int64            `json:"driverId"`
	Driver           *User            `json:"driver,omitempty"`
	VehicleID        int64            `json:"vehicleId"`
	Vehicle          *Vehicle         `json:"vehicle,omitempty"`
	OriginCity       string           `json:"originCity"`
	DestinationCity  string           `json:"destinationCity"`
	DeparturePoint   string           `json:"departurePoint"`
	ArrivalPoint     string           `json:"arrivalPoint"`
	IsTimeRange      bool             `json:"isTimeRange"`
	DepartureTime    time.Time        `json:"departureTime"`
	DepartureTimeEnd *time.Time       `json:"departureTimeEnd,omitempty"`
	AllowedLuggage   Luggage          `json:"allowedLuggage"`
	Preferences      *TripPreferences `json:"preferences,omitempty"`
	AdditionalNotes  string           `json:"additionalNotes,omitempty"`
	PricePerSeat     float64          `json:"pricePerSeat"`
	AvailableSeats   int              `json:"availableSeats"`
	TotalSeats       int              `json:"totalSeats"`
	Status           TripStatus       `json:"status"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

// DriverRating renders the embedded driver's rating, or "unrated" when the
// driver was not expanded by the server.
func (t Trip) DriverRating() string {
	if t.Driver == nil {
		return FormatRating(0, 0)
	}
	return t.Driver.RatingLabel()
}

// CreateTripRequest is the body of POST /trips.
type CreateTripRequest struct {
	VehicleID        int64            `json:"vehicleId"`
	OriginCity       string           `json:"originCity"`
	DestinationCity  string           `json:"destinationCity"`
	DeparturePoint   string           `json:"departurePoint"`
	ArrivalPoint     string           `json:"arrivalPoint"`
	IsTimeRange      bool             `json:"isTimeRange"`
	DepartureTime    time.Time        `json:"departureTime"`
	DepartureTimeEnd *time.Time       `json:"departureTimeEnd,omitempty"`
	AllowedLuggage   Luggage          `json:"allowedLuggage"`
	Preferences      *TripPreferences `json:"preferences,omitempty"`
	AdditionalNotes  string           `json:"additionalNotes,omitempty"`
	PricePerSeat     float64          `json:"pricePerSeat"`
	AvailableSeats   int              `json:"availableSeats"`
	TotalSeats       int              `json:"totalSeats"`
	DriverID         int64            `json:"driverId"`
}

func (r CreateTripRequest) Validate() error {
	for _, v := range []string{r.OriginCity, r.DestinationCity, r.DeparturePoint, r.ArrivalPoint} {
		if strings.TrimSpace(v) == "" {
			return ErrMissingFields
		}
	}
	if r.VehicleID == 0 || r.DriverID == 0 || r.DepartureTime.IsZero() {
		return ErrMissingFields
	}
	if !r.AllowedLuggage.Valid() {
		return ErrInvalidLuggage
	}
	if r.TotalSeats < 1 || r.AvailableSeats < 1 || r.AvailableSeats > r.TotalSeats {
		return ErrInvalidSeats
	}
	if r.PricePerSeat < 0 {
		return ErrInvalidPrice
	}
	if r.IsTimeRange {
		if r.DepartureTimeEnd == nil || !r.DepartureTimeEnd.After(r.DepartureTime) {
			return ErrInvalidTimes
		}
	}
	return nil
}

// TripSearch holds the optional filters of GET /trips/search.
// DepartureDate uses the YYYY-MM-DD form.
type TripSearch struct {
	OriginCity      string
	DestinationCity string
	DepartureDate   string
	AllowedLuggage  Luggage
}

// Query encodes only the non-empty filters.
func (s TripSearch) Query() url.Values {
	q := url.Values{}
	add := func(k, v string) {
		if v = strings.TrimSpace(v); v != "" {
			q.Set(k, v)
		}
	}
	add("originCity", s.OriginCity)
	add("destinationCity", s.DestinationCity)
	add("departureDate", s.DepartureDate)
	add("allowedLuggage", string(s.AllowedLuggage))
	return q
}
