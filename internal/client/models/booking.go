package models

import (
	"errors"
	"time"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingRejected  BookingStatus = "rejected"
	BookingCancelled BookingStatus = "cancelled"
)

var ErrInvalidSeatsRequested = errors.New("at least one seat must be requested")

// Booking is a passenger's seat request on a trip.
type Booking struct {
	ID             int64         `json:"id"`
	TripID         int64         `json:"tripId"`
	Trip           *Trip         `json:"trip,omitempty"`
	PassengerID    int64         `json:"passengerId"`
	Passenger      *User         `json:"passenger,omitempty"`
	SeatsRequested int           `json:"seatsRequested"`
	Status         BookingStatus `json:"status"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

// CreateBookingRequest is the body of POST /bookings.
type CreateBookingRequest struct {
	TripID         int64 `json:"tripId"`
	PassengerID    int64 `json:"passengerId"`
	SeatsRequested int   `json:"seatsRequested"`
}

func (r CreateBookingRequest) Validate() error {
	if r.TripID == 0 || r.PassengerID == 0 {
		return ErrMissingFields
	}
	if r.SeatsRequested < 1 {
		return ErrInvalidSeatsRequested
	}
	return nil
}
