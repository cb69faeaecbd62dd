package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/carpoolea/internal/client/models"
)

// VehicleService wraps the /vehicles endpoints for the current user's cars.
type VehicleService struct {
	api Doer
}

func NewVehicleService(api Doer) *VehicleService {
	return &VehicleService{api: api}
}

func (s *VehicleService) Mine(ctx context.Context) ([]models.Vehicle, error) {
	var vs []models.Vehicle
	if err := s.api.Do(ctx, http.MethodGet, "/vehicles/my-vehicles", nil, nil, &vs); err != nil {
		return nil, fmt.Errorf("list vehicles error: %w", err)
	}
	return vs, nil
}

func (s *VehicleService) Create(ctx context.Context, req models.CreateVehicleRequest) (*models.Vehicle, error) {
	var v models.Vehicle
	if err := s.api.Do(ctx, http.MethodPost, "/vehicles", nil, req, &v); err != nil {
		return nil, fmt.Errorf("create vehicle error: %w", err)
	}
	return &v, nil
}

func (s *VehicleService) Update(ctx context.Context, id int64, req models.UpdateVehicleRequest) (*models.Vehicle, error) {
	var v models.Vehicle
	if err := s.api.Do(ctx, http.MethodPut, idPath("/vehicles", id), nil, req, &v); err != nil {
		return nil, fmt.Errorf("update vehicle %d error: %w", id, err)
	}
	return &v, nil
}

func (s *VehicleService) Delete(ctx context.Context, id int64) error {
	if err := s.api.Do(ctx, http.MethodDelete, idPath("/vehicles", id), nil, nil, nil); err != nil {
		return fmt.Errorf("delete vehicle %d error: %w", id, err)
	}
	return nil
}

// CheckActiveTrips asks whether the vehicle still has trips that block its
// deletion.
func (s *VehicleService) CheckActiveTrips(ctx context.Context, id int64) (*models.ActiveTripsStatus, error) {
	var st models.ActiveTripsStatus
	if err := s.api.Do(ctx, http.MethodGet, idPath("/vehicles", id, "check-active-trips"), nil, nil, &st); err != nil {
		return nil, fmt.Errorf("check active trips of vehicle %d error: %w", id, err)
	}
	return &st, nil
}
