package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type TrunkCapacity string

const (
	TrunkSmall  TrunkCapacity = "small"
	TrunkMedium TrunkCapacity = "medium"
	TrunkLarge  TrunkCapacity = "large"
)

var ErrInvalidTrunkCapacity = errors.New("trunk capacity must be small, medium or large")

func (c TrunkCapacity) Valid() bool {
	switch c {
	case TrunkSmall, TrunkMedium, TrunkLarge:
		return true
	}
	return false
}

// Vehicle is a car registered by its owner.
type Vehicle struct {
	ID            int64         `json:"id"`
	Brand         string        `json:"brand"`
	Model         string        `json:"model"`
	Color         string        `json:"color"`
	LicensePlate  string        `json:"licensePlate"`
	TrunkCapacity TrunkCapacity `json:"trunkCapacity"`
	OwnerID       int64         `json:"ownerId"`
	Owner         *User         `json:"owner,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

func (v Vehicle) String() string {
	return fmt.Sprintf("%s %s (%s, %s)", v.Brand, v.Model, v.Color, v.LicensePlate)
}

// CreateVehicleRequest is the body of POST /vehicles.
type CreateVehicleRequest struct {
	Brand         string        `json:"brand"`
	Model         string        `json:"model"`
	Color         string        `json:"color"`
	LicensePlate  string        `json:"licensePlate"`
	TrunkCapacity TrunkCapacity `json:"trunkCapacity"`
}

// Normalize trims text fields and defaults the trunk capacity to medium.
func (r *CreateVehicleRequest) Normalize() {
	r.Brand = strings.TrimSpace(r.Brand)
	r.Model = strings.TrimSpace(r.Model)
	r.Color = strings.TrimSpace(r.Color)
	r.LicensePlate = strings.ToUpper(strings.TrimSpace(r.LicensePlate))
	if r.TrunkCapacity == "" {
		r.TrunkCapacity = TrunkMedium
	}
}

func (r CreateVehicleRequest) Validate() error {
	for _, v := range []string{r.Brand, r.Model, r.Color, r.LicensePlate} {
		if strings.TrimSpace(v) == "" {
			return ErrMissingFields
		}
	}
	if !r.TrunkCapacity.Valid() {
		return ErrInvalidTrunkCapacity
	}
	return nil
}

// UpdateVehicleRequest is the partial body of PUT /vehicles/{id}.
type UpdateVehicleRequest struct {
	Brand         *string        `json:"brand,omitempty"`
	Model         *string        `json:"model,omitempty"`
	Color         *string        `json:"color,omitempty"`
	LicensePlate  *string        `json:"licensePlate,omitempty"`
	TrunkCapacity *TrunkCapacity `json:"trunkCapacity,omitempty"`
}

func (r UpdateVehicleRequest) Validate() error {
	for _, v := range []*string{r.Brand, r.Model, r.Color, r.LicensePlate} {
		if v != nil && strings.TrimSpace(*v) == "" {
			return ErrMissingFields
		}
	}
	if r.TrunkCapacity != nil && !r.TrunkCapacity.Valid() {
		return ErrInvalidTrunkCapacity
	}
	return nil
}

// ActiveTripsStatus answers GET /vehicles/{id}/check-active-trips.
type ActiveTripsStatus struct {
	HasActiveTrips   bool `json:"hasActiveTrips"`
	ActiveTripsCount int  `json:"activeTripsCount"`
}
