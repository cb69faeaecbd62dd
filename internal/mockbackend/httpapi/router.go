package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter registers every endpoint of the REST contract.
func (s *Server) NewRouter() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.logRequests)
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Cannot "+r.Method+" "+r.URL.Path)
	})

	r.HandleFunc("/auth/register", s.register).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", s.login).Methods(http.MethodPost)

	r.Handle("/users/me", s.authed(s.getMe)).Methods(http.MethodGet)
	r.Handle("/users/me", s.authed(s.updateMe)).Methods(http.MethodPatch)
	r.Handle("/users/search", s.authed(s.searchUsers)).Methods(http.MethodGet)

	r.Handle("/trips/search", s.authed(s.searchTrips)).Methods(http.MethodGet)
	r.Handle("/trips", s.authed(s.createTrip)).Methods(http.MethodPost)
	r.Handle("/trips/{id:[0-9]+}", s.authed(s.getTrip)).Methods(http.MethodGet)
	r.Handle("/trips/{id:[0-9]+}", s.authed(s.cancelTrip)).Methods(http.MethodDelete)

	r.Handle("/vehicles/my-vehicles", s.authed(s.myVehicles)).Methods(http.MethodGet)
	r.Handle("/vehicles", s.authed(s.createVehicle)).Methods(http.MethodPost)
	r.Handle("/vehicles/{id:[0-9]+}", s.authed(s.updateVehicle)).Methods(http.MethodPut)
	r.Handle("/vehicles/{id:[0-9]+}", s.authed(s.deleteVehicle)).Methods(http.MethodDelete)
	r.Handle("/vehicles/{id:[0-9]+}/check-active-trips", s.authed(s.checkActiveTrips)).Methods(http.MethodGet)

	r.Handle("/bookings/my-bookings", s.authed(s.myBookings)).Methods(http.MethodGet)
	r.Handle("/bookings", s.authed(s.requestSeat)).Methods(http.MethodPost)
	r.Handle("/bookings/{id:[0-9]+}/confirm", s.authed(s.confirmBooking)).Methods(http.MethodPatch)
	r.Handle("/bookings/{id:[0-9]+}/reject", s.authed(s.rejectBooking)).Methods(http.MethodPatch)
	r.Handle("/bookings/{id:[0-9]+}", s.authed(s.cancelBooking)).Methods(http.MethodDelete)

	return r
}
