package store

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/carpoolea/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- helpers ----

var departure = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func newTestStore() *Store {
	s := New()
	s.now = func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) }
	return s
}

func mustUser(t *testing.T, s *Store, email, first string) models.User {
	t.Helper()
	u, err := s.CreateUser(models.RegisterRequest{
		Email: email, Password: "pw", FirstName: first, LastName: "Test", Phone: "11223344",
	}, []byte("hash"))
	require.NoError(t, err)
	return u
}

func mustVehicle(t *testing.T, s *Store, owner int64, plate string) models.Vehicle {
	t.Helper()
	v, err := s.CreateVehicle(owner, models.CreateVehicleRequest{Brand: "Fiat", Model: "Cronos", Color: "Gris", LicensePlate: plate})
	require.NoError(t, err)
	return v
}

func tripRequest(driver, vehicle int64) models.CreateTripRequest {
	return models.CreateTripRequest{
		VehicleID: vehicle, DriverID: driver,
		OriginCity: "Córdoba", DestinationCity: "Rosario",
		DeparturePoint: "Terminal", ArrivalPoint: "Centro",
		DepartureTime: departure, AllowedLuggage: models.LuggageCarryOn,
		PricePerSeat: 5000, AvailableSeats: 3, TotalSeats: 3,
	}
}

func mustTrip(t *testing.T, s *Store, driver, vehicle int64) models.Trip {
	t.Helper()
	tr, err := s.CreateTrip(driver, tripRequest(driver, vehicle))
	require.NoError(t, err)
	return tr
}

// ---- TESTS ----

func TestUsers(t *testing.T) {
	s := newTestStore()
	ana := mustUser(t, s, "Ana@Example.com", "Ana")
	mustUser(t, s, "bruno@example.com", "Bruno")

	t.Run("email is normalized and unique", func(t *testing.T) {
		assert.Equal(t, "ana@example.com", ana.Email)
		_, err := s.CreateUser(models.RegisterRequest{Email: "ANA@example.com", Password: "x", FirstName: "A", LastName: "B", Phone: "1"}, nil)
		require.ErrorIs(t, err, ErrConflict)
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		_, err := s.CreateUser(models.RegisterRequest{Email: "x@y.z"}, nil)
		require.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("credentials", func(t *testing.T) {
		u, hash, err := s.Credentials(" ana@example.com ")
		require.NoError(t, err)
		assert.Equal(t, ana.ID, u.ID)
		assert.Equal(t, []byte("hash"), hash)

		_, _, err = s.Credentials("nobody@example.com")
		require.ErrorIs(t, err, ErrBadCredentials)
	})

	t.Run("partial update", func(t *testing.T) {
		phone := "99887766"
		u, err := s.UpdateUser(ana.ID, models.UpdateProfileRequest{Phone: &phone})
		require.NoError(t, err)
		assert.Equal(t, "99887766", u.Phone)
		assert.Equal(t, "Ana", u.FirstName)

		short := "123"
		_, err = s.UpdateUser(ana.ID, models.UpdateProfileRequest{Phone: &short})
		require.ErrorIs(t, err, ErrInvalid)

		_, err = s.UpdateUser(999, models.UpdateProfileRequest{})
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("search", func(t *testing.T) {
		got := s.SearchUsers("BRU")
		require.Len(t, got, 1)
		assert.Equal(t, "Bruno", got[0].FirstName)
		assert.Len(t, s.SearchUsers("test"), 2)
		assert.Empty(t, s.SearchUsers("  "))
	})
}

func TestVehicles(t *testing.T) {
	s := newTestStore()
	owner := mustUser(t, s, "o@example.com", "Owner")
	other := mustUser(t, s, "x@example.com", "Other")
	v := mustVehicle(t, s, owner.ID, " ab123cd ")

	assert.Equal(t, "AB123CD", v.LicensePlate)
	assert.Equal(t, models.TrunkMedium, v.TrunkCapacity)

	t.Run("listing is per owner", func(t *testing.T) {
		assert.Len(t, s.Vehicles(owner.ID), 1)
		assert.Empty(t, s.Vehicles(other.ID))
	})

	t.Run("plate must be unique", func(t *testing.T) {
		_, err := s.CreateVehicle(other.ID, models.CreateVehicleRequest{Brand: "a", Model: "b", Color: "c", LicensePlate: "AB123CD"})
		require.ErrorIs(t, err, ErrConflict)
	})

	t.Run("update requires ownership", func(t *testing.T) {
		color := "Rojo"
		_, err := s.UpdateVehicle(other.ID, v.ID, models.UpdateVehicleRequest{Color: &color})
		require.ErrorIs(t, err, ErrForbidden)

		got, err := s.UpdateVehicle(owner.ID, v.ID, models.UpdateVehicleRequest{Color: &color})
		require.NoError(t, err)
		assert.Equal(t, "Rojo", got.Color)
		assert.Equal(t, "Fiat", got.Brand)
	})

	t.Run("delete blocked by active trips", func(t *testing.T) {
		tr := mustTrip(t, s, owner.ID, v.ID)

		st, err := s.ActiveTrips(owner.ID, v.ID)
		require.NoError(t, err)
		assert.Equal(t, models.ActiveTripsStatus{HasActiveTrips: true, ActiveTripsCount: 1}, st)
		require.ErrorIs(t, s.DeleteVehicle(owner.ID, v.ID), ErrConflict)

		require.NoError(t, s.CancelTrip(owner.ID, tr.ID))
		require.NoError(t, s.DeleteVehicle(owner.ID, v.ID))
		require.ErrorIs(t, s.DeleteVehicle(owner.ID, v.ID), ErrNotFound)
	})
}

func TestTrips(t *testing.T) {
	s := newTestStore()
	driver := mustUser(t, s, "d@example.com", "Driver")
	stranger := mustUser(t, s, "s@example.com", "Stranger")
	v := mustVehicle(t, s, driver.ID, "AA000AA")
	tr := mustTrip(t, s, driver.ID, v.ID)

	t.Run("create expands driver and vehicle", func(t *testing.T) {
		require.NotNil(t, tr.Driver)
		require.NotNil(t, tr.Vehicle)
		assert.Equal(t, models.TripActive, tr.Status)
		assert.Equal(t, "unrated", tr.DriverRating())
	})

	t.Run("create rejects foreign vehicle and driver", func(t *testing.T) {
		_, err := s.CreateTrip(stranger.ID, tripRequest(stranger.ID, v.ID))
		require.ErrorIs(t, err, ErrForbidden)
		_, err = s.CreateTrip(stranger.ID, tripRequest(driver.ID, v.ID))
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("search filters", func(t *testing.T) {
		tests := []struct {
			name string
			q    models.TripSearch
			want int
		}{
			{name: "no filters", q: models.TripSearch{}, want: 1},
			{name: "origin case-insensitive", q: models.TripSearch{OriginCity: "córdoba"}, want: 1},
			{name: "other destination", q: models.TripSearch{DestinationCity: "Mendoza"}, want: 0},
			{name: "date match", q: models.TripSearch{DepartureDate: "2025-03-01"}, want: 1},
			{name: "date miss", q: models.TripSearch{DepartureDate: "2025-03-02"}, want: 0},
			{name: "smaller luggage fits", q: models.TripSearch{AllowedLuggage: models.LuggageBackpack}, want: 1},
			{name: "larger luggage does not", q: models.TripSearch{AllowedLuggage: models.LuggageLargeSuitcase}, want: 0},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				assert.Len(t, s.SearchTrips(tt.q), tt.want)
			})
		}
	})

	t.Run("get and cancel", func(t *testing.T) {
		_, err := s.Trip(999)
		require.ErrorIs(t, err, ErrNotFound)

		require.ErrorIs(t, s.CancelTrip(stranger.ID, tr.ID), ErrForbidden)
		require.NoError(t, s.CancelTrip(driver.ID, tr.ID))
		require.ErrorIs(t, s.CancelTrip(driver.ID, tr.ID), ErrConflict)

		got, err := s.Trip(tr.ID)
		require.NoError(t, err)
		assert.Equal(t, models.TripCancelled, got.Status)
		assert.Empty(t, s.SearchTrips(models.TripSearch{}), "cancelled trips are not listed")
	})
}

func TestBookingLifecycle(t *testing.T) {
	s := newTestStore()
	driver := mustUser(t, s, "d@example.com", "Driver")
	p1 := mustUser(t, s, "p1@example.com", "Pia")
	p2 := mustUser(t, s, "p2@example.com", "Pablo")
	v := mustVehicle(t, s, driver.ID, "AA000AA")
	tr := mustTrip(t, s, driver.ID, v.ID)

	_, err := s.CreateBooking(driver.ID, models.CreateBookingRequest{TripID: tr.ID, SeatsRequested: 1})
	require.ErrorIs(t, err, ErrInvalid, "drivers cannot book their own trip")

	_, err = s.CreateBooking(p1.ID, models.CreateBookingRequest{TripID: tr.ID, PassengerID: p2.ID, SeatsRequested: 1})
	require.ErrorIs(t, err, ErrForbidden)

	_, err = s.CreateBooking(p1.ID, models.CreateBookingRequest{TripID: tr.ID, SeatsRequested: 4})
	require.ErrorIs(t, err, ErrConflict)

	b1, err := s.CreateBooking(p1.ID, models.CreateBookingRequest{TripID: tr.ID, SeatsRequested: 2})
	require.NoError(t, err)
	assert.Equal(t, models.BookingPending, b1.Status)
	require.NotNil(t, b1.Passenger)

	_, err = s.CreateBooking(p1.ID, models.CreateBookingRequest{TripID: tr.ID, SeatsRequested: 1})
	require.ErrorIs(t, err, ErrConflict, "one open booking per passenger and trip")

	b2, err := s.CreateBooking(p2.ID, models.CreateBookingRequest{TripID: tr.ID, SeatsRequested: 1})
	require.NoError(t, err)

	assert.Len(t, s.Bookings(driver.ID), 2, "driver sees requests on their trips")
	assert.Len(t, s.Bookings(p1.ID), 1)

	_, err = s.ConfirmBooking(p1.ID, b1.ID)
	require.ErrorIs(t, err, ErrForbidden)

	b1, err = s.ConfirmBooking(driver.ID, b1.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, b1.Status)
	assert.Equal(t, 1, b1.Trip.AvailableSeats)

	b2, err = s.ConfirmBooking(driver.ID, b2.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TripFull, b2.Trip.Status)

	_, err = s.RejectBooking(driver.ID, b2.ID)
	require.ErrorIs(t, err, ErrConflict, "only pending bookings can be answered")

	require.ErrorIs(t, s.CancelBooking(driver.ID, b1.ID), ErrForbidden)
	require.NoError(t, s.CancelBooking(p1.ID, b1.ID))
	got, err := s.Trip(tr.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.AvailableSeats)
	assert.Equal(t, models.TripActive, got.Status)

	require.ErrorIs(t, s.CancelBooking(p1.ID, b1.ID), ErrConflict)
	require.ErrorIs(t, s.CancelBooking(p1.ID, 999), ErrNotFound)
}

func TestRejectAndTripCancelCascade(t *testing.T) {
	s := newTestStore()
	driver := mustUser(t, s, "d@example.com", "Driver")
	p := mustUser(t, s, "p@example.com", "Pia")
	v := mustVehicle(t, s, driver.ID, "AA000AA")
	tr := mustTrip(t, s, driver.ID, v.ID)

	b, err := s.CreateBooking(p.ID, models.CreateBookingRequest{TripID: tr.ID, SeatsRequested: 1})
	require.NoError(t, err)
	b, err = s.RejectBooking(driver.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingRejected, b.Status)

	b2, err := s.CreateBooking(p.ID, models.CreateBookingRequest{TripID: tr.ID, SeatsRequested: 1})
	require.NoError(t, err, "a rejected booking does not block a new request")

	require.NoError(t, s.CancelTrip(driver.ID, tr.ID))
	for _, got := range s.Bookings(p.ID) {
		if got.ID == b2.ID {
			assert.Equal(t, models.BookingCancelled, got.Status)
		}
	}
}

func TestError_Message(t *testing.T) {
	err := fail(ErrNotFound, "Trip not found")
	assert.Equal(t, "Trip not found", err.Error())
	assert.ErrorIs(t, err, ErrNotFound)
}
