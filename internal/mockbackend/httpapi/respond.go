package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/carpoolea/internal/mockbackend/store"
	"github.com/gorilla/mux"
)

// errorBody is the backend's error envelope. Validation failures carry a
// list of messages, everything else a single string.
type errorBody struct {
	Message    any    `json:"message"`
	StatusCode int    `json:"statusCode"`
	Error      string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message any) {
	writeJSON(w, status, errorBody{Message: message, StatusCode: status, Error: http.StatusText(status)})
}

// writeStoreError maps a store failure onto its HTTP status.
func (s *Server) writeStoreError(w http.ResponseWriter, r *http.Request, err error) {
	var se *store.Error
	if !errors.As(err, &se) {
		s.log.Error(r.Context(), "unexpected store error", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	switch se.Kind {
	case store.ErrInvalid:
		writeError(w, http.StatusBadRequest, []string{se.Message})
	case store.ErrBadCredentials:
		writeError(w, http.StatusUnauthorized, se.Message)
	case store.ErrForbidden:
		writeError(w, http.StatusForbidden, se.Message)
	case store.ErrNotFound:
		writeError(w, http.StatusNotFound, se.Message)
	case store.ErrConflict:
		writeError(w, http.StatusConflict, se.Message)
	default:
		writeError(w, http.StatusInternalServerError, se.Message)
	}
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, []string{"Invalid JSON body"})
		return false
	}
	return true
}

// pathID extracts the numeric {id} route variable. The route pattern already
// guarantees digits, so only overflow can fail here.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, []string{"Invalid id"})
		return 0, false
	}
	return id, true
}
