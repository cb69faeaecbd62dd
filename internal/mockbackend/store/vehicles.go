package store

import (
	"strings"

	"github.com/dmitrijs2005/carpoolea/internal/client/models"
)

func (s *Store) Vehicles(ownerID int64) []models.Vehicle {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.Vehicle{}
	for _, v := range s.vehicles {
		if v.OwnerID == ownerID {
			out = append(out, *v)
		}
	}
	sortByID(out, func(v models.Vehicle) int64 { return v.ID })
	return out
}

func (s *Store) CreateVehicle(ownerID int64, req models.CreateVehicleRequest) (models.Vehicle, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return models.Vehicle{}, fail(ErrInvalid, err.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.plateTaken(req.LicensePlate, 0) {
		return models.Vehicle{}, fail(ErrConflict, "License plate already registered")
	}

	ts := s.stamp()
	v := &models.Vehicle{
		ID:            s.id("vehicle"),
		Brand:         req.Brand,
		Model:         req.Model,
		Color:         req.Color,
		LicensePlate:  req.LicensePlate,
		TrunkCapacity: req.TrunkCapacity,
		OwnerID:       ownerID,
		CreatedAt:     ts,
		UpdatedAt:     ts,
	}
	s.vehicles[v.ID] = v
	return *v, nil
}

func (s *Store) UpdateVehicle(ownerID, id int64, req models.UpdateVehicleRequest) (models.Vehicle, error) {
	if err := req.Validate(); err != nil {
		return models.Vehicle{}, fail(ErrInvalid, err.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	v, err := s.ownedVehicle(ownerID, id)
	if err != nil {
		return models.Vehicle{}, err
	}
	if req.LicensePlate != nil {
		plate := strings.ToUpper(strings.TrimSpace(*req.LicensePlate))
		if s.plateTaken(plate, id) {
			return models.Vehicle{}, fail(ErrConflict, "License plate already registered")
		}
		v.LicensePlate = plate
	}
	if req.Brand != nil {
		v.Brand = strings.TrimSpace(*req.Brand)
	}
	if req.Model != nil {
		v.Model = strings.TrimSpace(*req.Model)
	}
	if req.Color != nil {
		v.Color = strings.TrimSpace(*req.Color)
	}
	if req.TrunkCapacity != nil {
		v.TrunkCapacity = *req.TrunkCapacity
	}
	v.UpdatedAt = s.stamp()
	return *v, nil
}

// DeleteVehicle removes a vehicle that has no active trips.
func (s *Store) DeleteVehicle(ownerID, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.ownedVehicle(ownerID, id); err != nil {
		return err
	}
	if s.activeTrips(id) > 0 {
		return fail(ErrConflict, "Vehicle has active trips")
	}
	delete(s.vehicles, id)
	return nil
}

func (s *Store) ActiveTrips(ownerID, id int64) (models.ActiveTripsStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.ownedVehicle(ownerID, id); err != nil {
		return models.ActiveTripsStatus{}, err
	}
	n := s.activeTrips(id)
	return models.ActiveTripsStatus{HasActiveTrips: n > 0, ActiveTripsCount: n}, nil
}

func (s *Store) ownedVehicle(ownerID, id int64) (*models.Vehicle, error) {
	v, ok := s.vehicles[id]
	if !ok {
		return nil, fail(ErrNotFound, "Vehicle not found")
	}
	if v.OwnerID != ownerID {
		return nil, fail(ErrForbidden, "You do not own this vehicle")
	}
	return v, nil
}

func (s *Store) plateTaken(plate string, except int64) bool {
	for _, v := range s.vehicles {
		if v.ID != except && v.LicensePlate == plate {
			return true
		}
	}
	return false
}

func (s *Store) activeTrips(vehicleID int64) int {
	n := 0
	for _, t := range s.trips {
		if t.VehicleID == vehicleID && (t.Status == models.TripActive || t.Status == models.TripFull) {
			n++
		}
	}
	return n
}
