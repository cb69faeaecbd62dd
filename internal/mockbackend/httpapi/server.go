// Package httpapi exposes the mock backend's store over the carpool REST
// contract.
package httpapi

import (
	"context"
	"time"

	"github.com/dmitrijs2005/carpoolea/internal/logging"
	"github.com/dmitrijs2005/carpoolea/internal/mockbackend/store"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// Server holds the handlers' dependencies.
type Server struct {
	store      *store.Store
	log        logging.Logger
	jwtSecret  []byte
	tokenTTL   time.Duration
	bcryptCost int
}

func NewServer(st *store.Store, log logging.Logger, jwtSecret []byte, tokenTTL time.Duration, bcryptCost int) *Server {
	return &Server{store: st, log: log, jwtSecret: jwtSecret, tokenTTL: tokenTTL, bcryptCost: bcryptCost}
}

func userID(ctx context.Context) int64 {
	id, _ := ctx.Value(userIDKey).(int64)
	return id
}
