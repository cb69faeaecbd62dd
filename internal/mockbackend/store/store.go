// Package store is the in-memory state of the development backend: users,
// vehicles, trips and bookings with the business rules the client relies on.
//
// It is deliberately simple. All state lives behind one mutex and is lost on
// restart.
package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/carpoolea/internal/client/models"
)

type userRecord struct {
	user models.User
	hash []byte
}

type Store struct {
	mu  sync.Mutex
	now func() time.Time

	seq      map[string]int64
	users    map[int64]*userRecord
	byEmail  map[string]int64
	vehicles map[int64]*models.Vehicle
	trips    map[int64]*models.Trip
	bookings map[int64]*models.Booking
}

func New() *Store {
	return &Store{
		now:      time.Now,
		seq:      map[string]int64{},
		users:    map[int64]*userRecord{},
		byEmail:  map[string]int64{},
		vehicles: map[int64]*models.Vehicle{},
		trips:    map[int64]*models.Trip{},
		bookings: map[int64]*models.Booking{},
	}
}

// id returns the next identifier of the given entity kind; every kind is
// numbered from 1 like a table sequence.
func (s *Store) id(kind string) int64 {
	s.seq[kind]++
	return s.seq[kind]
}

func (s *Store) stamp() time.Time {
	return s.now().UTC().Truncate(time.Second)
}

func sortByID[T any](items []T, id func(T) int64) {
	sort.Slice(items, func(i, j int) bool { return id(items[i]) < id(items[j]) })
}

func normEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
