package store

import (
	"github.com/dmitrijs2005/carpoolea/internal/client/models"
)

// Bookings lists the user's own seat requests and the requests made on trips
// they drive.
func (s *Store) Bookings(userID int64) []models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.Booking{}
	for _, b := range s.bookings {
		t := s.trips[b.TripID]
		if b.PassengerID == userID || (t != nil && t.DriverID == userID) {
			out = append(out, s.expandBooking(b))
		}
	}
	sortByID(out, func(b models.Booking) int64 { return b.ID })
	return out
}

// CreateBooking records a pending seat request. Seats are only taken when
// the driver confirms.
func (s *Store) CreateBooking(userID int64, req models.CreateBookingRequest) (models.Booking, error) {
	if req.PassengerID == 0 {
		req.PassengerID = userID
	}
	if err := req.Validate(); err != nil {
		return models.Booking{}, fail(ErrInvalid, err.Error())
	}
	if req.PassengerID != userID {
		return models.Booking{}, fail(ErrForbidden, "Seats can only be requested for yourself")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.trips[req.TripID]
	switch {
	case !ok:
		return models.Booking{}, fail(ErrNotFound, "Trip not found")
	case t.DriverID == userID:
		return models.Booking{}, fail(ErrInvalid, "You cannot book your own trip")
	case t.Status != models.TripActive:
		return models.Booking{}, fail(ErrConflict, "Trip is not accepting bookings")
	case req.SeatsRequested > t.AvailableSeats:
		return models.Booking{}, fail(ErrConflict, "Not enough seats available")
	}
	for _, b := range s.bookings {
		if b.TripID == t.ID && b.PassengerID == userID &&
			(b.Status == models.BookingPending || b.Status == models.BookingConfirmed) {
			return models.Booking{}, fail(ErrConflict, "You already have a booking on this trip")
		}
	}

	ts := s.stamp()
	b := &models.Booking{
		ID:             s.id("booking"),
		TripID:         t.ID,
		PassengerID:    userID,
		SeatsRequested: req.SeatsRequested,
		Status:         models.BookingPending,
		CreatedAt:      ts,
		UpdatedAt:      ts,
	}
	s.bookings[b.ID] = b
	return s.expandBooking(b), nil
}

// ConfirmBooking accepts a pending request and takes the seats.
func (s *Store) ConfirmBooking(driverID, id int64) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, t, err := s.driverBooking(driverID, id)
	if err != nil {
		return models.Booking{}, err
	}
	if b.SeatsRequested > t.AvailableSeats {
		return models.Booking{}, fail(ErrConflict, "Not enough seats available")
	}

	ts := s.stamp()
	t.AvailableSeats -= b.SeatsRequested
	if t.AvailableSeats == 0 {
		t.Status = models.TripFull
	}
	t.UpdatedAt = ts
	b.Status, b.UpdatedAt = models.BookingConfirmed, ts
	return s.expandBooking(b), nil
}

func (s *Store) RejectBooking(driverID, id int64) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, _, err := s.driverBooking(driverID, id)
	if err != nil {
		return models.Booking{}, err
	}
	b.Status, b.UpdatedAt = models.BookingRejected, s.stamp()
	return s.expandBooking(b), nil
}

// CancelBooking withdraws the passenger's request, returning confirmed seats
// to the trip.
func (s *Store) CancelBooking(passengerID, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return fail(ErrNotFound, "Booking not found")
	}
	if b.PassengerID != passengerID {
		return fail(ErrForbidden, "Only the passenger can cancel this booking")
	}
	if b.Status != models.BookingPending && b.Status != models.BookingConfirmed {
		return fail(ErrConflict, "Booking is already "+string(b.Status))
	}

	ts := s.stamp()
	if b.Status == models.BookingConfirmed {
		if t, ok := s.trips[b.TripID]; ok {
			t.AvailableSeats += b.SeatsRequested
			if t.Status == models.TripFull {
				t.Status = models.TripActive
			}
			t.UpdatedAt = ts
		}
	}
	b.Status, b.UpdatedAt = models.BookingCancelled, ts
	return nil
}

// driverBooking loads a pending booking on a trip driven by driverID.
func (s *Store) driverBooking(driverID, id int64) (*models.Booking, *models.Trip, error) {
	b, ok := s.bookings[id]
	if !ok {
		return nil, nil, fail(ErrNotFound, "Booking not found")
	}
	t, ok := s.trips[b.TripID]
	if !ok {
		return nil, nil, fail(ErrNotFound, "Trip not found")
	}
	if t.DriverID != driverID {
		return nil, nil, fail(ErrForbidden, "Only the driver can answer this booking")
	}
	if b.Status != models.BookingPending {
		return nil, nil, fail(ErrConflict, "Booking is already "+string(b.Status))
	}
	return b, t, nil
}

func (s *Store) expandBooking(b *models.Booking) models.Booking {
	out := *b
	if t, ok := s.trips[b.TripID]; ok {
		tc := s.expandTrip(t)
		out.Trip = &tc
	}
	if rec, ok := s.users[b.PassengerID]; ok {
		u := rec.user
		out.Passenger = &u
	}
	return out
}
