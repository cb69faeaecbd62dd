package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestRegisterRequest_Validate(t *testing.T) {
	ok := RegisterRequest{Email: "a@b.com", Password: "x", FirstName: "A", LastName: "B", Phone: "12345678"}
	require.NoError(t, ok.Validate())

	missing := ok
	missing.Phone = "  "
	require.ErrorIs(t, missing.Validate(), ErrMissingFields)

	require.ErrorIs(t, LoginRequest{Email: "a@b.com"}.Validate(), ErrMissingFields)
	require.NoError(t, LoginRequest{Email: "a@b.com", Password: "x"}.Validate())
}

func TestUpdateProfileRequest_Validate(t *testing.T) {
	tests := []struct {
		name string
		req  UpdateProfileRequest
		want error
	}{
		{name: "full valid", req: NewProfileUpdate(" Ana ", "Gómez", "+54 11 2233-4455", "")},
		{name: "empty first name", req: NewProfileUpdate("", "Gómez", "11223344", ""), want: ErrMissingFields},
		{name: "empty last name", req: NewProfileUpdate("Ana", " ", "11223344", ""), want: ErrMissingFields},
		{name: "empty phone", req: NewProfileUpdate("Ana", "Gómez", "", ""), want: ErrMissingFields},
		{name: "short phone", req: NewProfileUpdate("Ana", "Gómez", "12-34-56", ""), want: ErrInvalidPhone},
		{name: "partial photo only", req: UpdateProfileRequest{PhotoURL: ptr("https://x/y.png")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewProfileUpdate_TrimsAndOmitsEmptyPhoto(t *testing.T) {
	req := NewProfileUpdate(" Ana ", " Gómez ", " 11223344 ", "  ")

	b, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"firstName":"Ana","lastName":"Gómez","phone":"11223344"}`, string(b))

	req = NewProfileUpdate("Ana", "Gómez", "11223344", " https://cdn/p.png ")
	require.NotNil(t, req.PhotoURL)
	assert.Equal(t, "https://cdn/p.png", *req.PhotoURL)
}

func TestCreateVehicleRequest_NormalizeAndValidate(t *testing.T) {
	r := CreateVehicleRequest{Brand: " Fiat ", Model: "Cronos", Color: "Gris", LicensePlate: " ab123cd "}
	r.Normalize()

	assert.Equal(t, "Fiat", r.Brand)
	assert.Equal(t, "AB123CD", r.LicensePlate)
	assert.Equal(t, TrunkMedium, r.TrunkCapacity)
	require.NoError(t, r.Validate())

	r.TrunkCapacity = "huge"
	require.ErrorIs(t, r.Validate(), ErrInvalidTrunkCapacity)

	require.ErrorIs(t, CreateVehicleRequest{Brand: "Fiat", TrunkCapacity: TrunkSmall}.Validate(), ErrMissingFields)
}

func TestUpdateVehicleRequest_Validate(t *testing.T) {
	require.NoError(t, UpdateVehicleRequest{}.Validate())
	require.NoError(t, UpdateVehicleRequest{Color: ptr("Rojo")}.Validate())
	require.ErrorIs(t, UpdateVehicleRequest{Color: ptr("")}.Validate(), ErrMissingFields)
	require.ErrorIs(t, UpdateVehicleRequest{TrunkCapacity: ptr(TrunkCapacity("xl"))}.Validate(), ErrInvalidTrunkCapacity)

	b, err := json.Marshal(UpdateVehicleRequest{Color: ptr("Rojo")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"color":"Rojo"}`, string(b))
}

func validTrip() CreateTripRequest {
	return CreateTripRequest{
		VehicleID:       1,
		DriverID:        2,
		OriginCity:      "Córdoba",
		DestinationCity: "Rosario",
		DeparturePoint:  "Terminal",
		ArrivalPoint:    "Centro",
		DepartureTime:   time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
		AllowedLuggage:  LuggageCarryOn,
		PricePerSeat:    5000,
		AvailableSeats:  3,
		TotalSeats:      3,
	}
}

func TestCreateTripRequest_Validate(t *testing.T) {
	require.NoError(t, validTrip().Validate())

	tests := []struct {
		name   string
		mutate func(*CreateTripRequest)
		want   error
	}{
		{name: "missing origin", mutate: func(r *CreateTripRequest) { r.OriginCity = "" }, want: ErrMissingFields},
		{name: "missing vehicle", mutate: func(r *CreateTripRequest) { r.VehicleID = 0 }, want: ErrMissingFields},
		{name: "bad luggage", mutate: func(r *CreateTripRequest) { r.AllowedLuggage = "trunk" }, want: ErrInvalidLuggage},
		{name: "too many available", mutate: func(r *CreateTripRequest) { r.AvailableSeats = 4 }, want: ErrInvalidSeats},
		{name: "negative price", mutate: func(r *CreateTripRequest) { r.PricePerSeat = -1 }, want: ErrInvalidPrice},
		{name: "range without end", mutate: func(r *CreateTripRequest) { r.IsTimeRange = true }, want: ErrInvalidTimes},
		{name: "range end before start", mutate: func(r *CreateTripRequest) {
			r.IsTimeRange = true
			end := r.DepartureTime.Add(-time.Hour)
			r.DepartureTimeEnd = &end
		}, want: ErrInvalidTimes},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validTrip()
			tt.mutate(&r)
			require.ErrorIs(t, r.Validate(), tt.want)
		})
	}
}

func TestTripSearch_QueryOmitsEmptyFilters(t *testing.T) {
	assert.Empty(t, TripSearch{}.Query())

	q := TripSearch{OriginCity: " Córdoba ", AllowedLuggage: LuggageBackpack}.Query()
	assert.Equal(t, "Córdoba", q.Get("originCity"))
	assert.Equal(t, "backpack", q.Get("allowedLuggage"))
	assert.False(t, q.Has("destinationCity"))
	assert.False(t, q.Has("departureDate"))
}

func TestCreateBookingRequest_Validate(t *testing.T) {
	require.NoError(t, CreateBookingRequest{TripID: 1, PassengerID: 2, SeatsRequested: 1}.Validate())
	require.ErrorIs(t, CreateBookingRequest{TripID: 1, PassengerID: 2}.Validate(), ErrInvalidSeatsRequested)
	require.ErrorIs(t, CreateBookingRequest{PassengerID: 2, SeatsRequested: 1}.Validate(), ErrMissingFields)
}
