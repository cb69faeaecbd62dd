package store

import (
	"sort"
	"strings"

	"github.com/dmitrijs2005/carpoolea/internal/client/models"
)

var luggageRank = map[models.Luggage]int{
	models.LuggageBackpack:      1,
	models.LuggageCarryOn:       2,
	models.LuggageLargeSuitcase: 3,
}

// SearchTrips lists bookable trips matching every non-empty filter, soonest
// first. A luggage filter matches trips allowing at least that size.
func (s *Store) SearchTrips(q models.TripSearch) []models.Trip {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.Trip{}
	for _, t := range s.trips {
		if t.Status != models.TripActive {
			continue
		}
		if q.OriginCity != "" && !strings.EqualFold(t.OriginCity, strings.TrimSpace(q.OriginCity)) {
			continue
		}
		if q.DestinationCity != "" && !strings.EqualFold(t.DestinationCity, strings.TrimSpace(q.DestinationCity)) {
			continue
		}
		if q.DepartureDate != "" && t.DepartureTime.Format("2006-01-02") != q.DepartureDate {
			continue
		}
		if q.AllowedLuggage != "" && luggageRank[t.AllowedLuggage] < luggageRank[q.AllowedLuggage] {
			continue
		}
		out = append(out, s.expandTrip(t))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DepartureTime.Before(out[j].DepartureTime) })
	return out
}

// CreateTrip publishes a trip driven by driverID in one of their vehicles.
func (s *Store) CreateTrip(driverID int64, req models.CreateTripRequest) (models.Trip, error) {
	if req.DriverID == 0 {
		req.DriverID = driverID
	}
	if err := req.Validate(); err != nil {
		return models.Trip{}, fail(ErrInvalid, err.Error())
	}
	if req.DriverID != driverID {
		return models.Trip{}, fail(ErrForbidden, "Trips can only be published for yourself")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.ownedVehicle(driverID, req.VehicleID); err != nil {
		return models.Trip{}, err
	}

	ts := s.stamp()
	t := &models.Trip{
		ID:               s.id("trip"),
		DriverID:         driverID,
		VehicleID:        req.VehicleID,
		OriginCity:       strings.TrimSpace(req.OriginCity),
		DestinationCity:  strings.TrimSpace(req.DestinationCity),
		DeparturePoint:   strings.TrimSpace(req.DeparturePoint),
		ArrivalPoint:     strings.TrimSpace(req.ArrivalPoint),
		IsTimeRange:      req.IsTimeRange,
		DepartureTime:    req.DepartureTime.UTC(),
		DepartureTimeEnd: req.DepartureTimeEnd,
		AllowedLuggage:   req.AllowedLuggage,
		Preferences:      req.Preferences,
		AdditionalNotes:  req.AdditionalNotes,
		PricePerSeat:     req.PricePerSeat,
		AvailableSeats:   req.AvailableSeats,
		TotalSeats:       req.TotalSeats,
		Status:           models.TripActive,
		CreatedAt:        ts,
		UpdatedAt:        ts,
	}
	if !t.IsTimeRange {
		t.DepartureTimeEnd = nil
	}
	s.trips[t.ID] = t
	return s.expandTrip(t), nil
}

func (s *Store) Trip(id int64) (models.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.trips[id]
	if !ok {
		return models.Trip{}, fail(ErrNotFound, "Trip not found")
	}
	return s.expandTrip(t), nil
}

// CancelTrip cancels the driver's trip and every open booking on it.
func (s *Store) CancelTrip(driverID, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.trips[id]
	if !ok {
		return fail(ErrNotFound, "Trip not found")
	}
	if t.DriverID != driverID {
		return fail(ErrForbidden, "Only the driver can cancel this trip")
	}
	if t.Status == models.TripCancelled || t.Status == models.TripCompleted {
		return fail(ErrConflict, "Trip is already "+string(t.Status))
	}

	ts := s.stamp()
	t.Status, t.UpdatedAt = models.TripCancelled, ts
	for _, b := range s.bookings {
		if b.TripID == id && (b.Status == models.BookingPending || b.Status == models.BookingConfirmed) {
			b.Status, b.UpdatedAt = models.BookingCancelled, ts
		}
	}
	return nil
}

// expandTrip returns a copy of t with driver and vehicle embedded.
func (s *Store) expandTrip(t *models.Trip) models.Trip {
	out := *t
	if rec, ok := s.users[t.DriverID]; ok {
		u := rec.user
		out.Driver = &u
	}
	if v, ok := s.vehicles[t.VehicleID]; ok {
		vc := *v
		out.Vehicle = &vc
	}
	return out
}
