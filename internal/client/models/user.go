// Package models defines the data contract shared by the carpool client and
// the backend: entity snapshots, request payloads and response envelopes.
package models

import (
	"strconv"
	"time"
)

// User is a user profile as returned by the backend. The authenticated
// user's own profile is the session Identity.
//
// Rating is a running sum of received scores and TotalRatings is the number
// of scores; use AverageRating rather than dividing by hand.
type User struct {
	ID            int64     `json:"id"`
	Email         string    `json:"email"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Phone         string    `json:"phone"`
	PhotoURL      string    `json:"photoUrl,omitempty"`
	Rating        float64   `json:"rating"`
	TotalRatings  int       `json:"totalRatings"`
	PhoneVerified bool      `json:"phoneVerified"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// FullName joins first and last name.
func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

// AverageRating returns sum/count and true, or 0 and false when count is not
// positive.
func AverageRating(sum float64, count int) (float64, bool) {
	if count <= 0 {
		return 0, false
	}
	return sum / float64(count), true
}

// FormatRating renders the average with one decimal, or "unrated".
func FormatRating(sum float64, count int) string {
	avg, ok := AverageRating(sum, count)
	if !ok {
		return "unrated"
	}
	return strconv.FormatFloat(avg, 'f', 1, 64)
}

// AverageRating is the user's mean score; ok is false when nobody rated them.
func (u User) AverageRating() (avg float64, ok bool) {
	return AverageRating(u.Rating, u.TotalRatings)
}

// RatingLabel is FormatRating applied to the user's rating pair.
func (u User) RatingLabel() string {
	return FormatRating(u.Rating, u.TotalRatings)
}
