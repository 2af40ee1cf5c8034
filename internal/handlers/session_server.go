// Package handlers is the thin presentation gateway over the session engine.
// It renders state snapshots and forwards UI intents as calls into the
// store; it is a driver for a single client, not a multiplayer protocol.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/trivium-games/trivium/internal/session"
)

// SessionServer holds the session store and the shared logger for all
// gateway endpoints.
type SessionServer struct {
	Store  *session.Store
	Logger *logrus.Logger
}

// NewSessionServer returns a gateway over the given store.
func NewSessionServer(store *session.Store, logger *logrus.Logger) *SessionServer {
	return &SessionServer{Store: store, Logger: logger}
}

// ListRoomsHandler returns the lobby listing as JSON.
func (s *SessionServer) ListRoomsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(s.Store.Rooms()); err != nil {
			s.Logger.WithError(err).Warn("failed to encode rooms listing")
		}
	}
}

// StateHandler returns the full session snapshot as JSON.
func (s *SessionServer) StateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(s.Store.Snapshot()); err != nil {
			s.Logger.WithError(err).Warn("failed to encode session snapshot")
		}
	}
}
