// Package session implements the single-process game session state machine:
// room lifecycle, question selection and progression, and scoring. All state
// lives in one record owned by the Store; every transition is a synchronous,
// terminating call. Unmet preconditions never raise errors — each transition
// reports an Outcome so callers can tell a silent no-op from a state change.
package session

import (
	"github.com/google/uuid"
	"github.com/trivium-games/trivium/internal/models"
)

// NoopReason classifies why a transition left the state unchanged.
type NoopReason string

const (
	NoopNoUser       NoopReason = "no_user"
	NoopNoRoom       NoopReason = "no_room"
	NoopRoomNotFound NoopReason = "room_not_found"
	NoopRoomFull     NoopReason = "room_full"
	NoopNoQuestion   NoopReason = "no_question"
	NoopFinished     NoopReason = "game_finished"
)

// Outcome is the result of one transition: either the state changed, or the
// reason it did not.
type Outcome struct {
	Applied bool       `json:"applied"`
	Reason  NoopReason `json:"reason,omitempty"`
}

func applied() Outcome {
	return Outcome{Applied: true}
}

func noop(reason NoopReason) Outcome {
	return Outcome{Reason: reason}
}

// State is the canonical session record. Rooms is the single source of
// truth for room state; the active room is a lookup by ActiveRoomID.
type State struct {
	User          *models.User `json:"user,omitempty"`
	Authenticated bool         `json:"authenticated"`

	Rooms        map[uuid.UUID]*models.GameRoom `json:"rooms"`
	RoomOrder    []uuid.UUID                    `json:"roomOrder"`
	ActiveRoomID uuid.UUID                      `json:"activeRoomId,omitempty"`

	Question    *models.Question      `json:"question,omitempty"`
	Answers     []models.PlayerAnswer `json:"answers"`
	ShowResults bool                  `json:"showResults"`

	Settings models.GameSettings `json:"settings"`

	// ErrorMsg and Loading are UI channels, opaque to the engine. The engine
	// never populates ErrorMsg on its own.
	ErrorMsg string `json:"error,omitempty"`
	Loading  bool   `json:"loading"`
}

func newState(defaults models.GameSettings) State {
	return State{
		Rooms:    make(map[uuid.UUID]*models.GameRoom),
		Settings: defaults,
	}
}

// ActiveRoom returns the active room, or nil when none is set.
func (s *State) ActiveRoom() *models.GameRoom {
	if s.ActiveRoomID == uuid.Nil {
		return nil
	}
	return s.Rooms[s.ActiveRoomID]
}

func (s *State) hasUser() bool {
	return s.Authenticated && s.User != nil
}

func cloneRoom(r *models.GameRoom) *models.GameRoom {
	c := *r
	c.Players = append([]models.User(nil), r.Players...)
	c.Scores = make(map[uuid.UUID]int, len(r.Scores))
	for id, score := range r.Scores {
		c.Scores[id] = score
	}
	return &c
}

func cloneQuestion(q *models.Question) *models.Question {
	if q == nil {
		return nil
	}
	c := *q
	c.Options = append([]string(nil), q.Options...)
	return &c
}

// clone deep-copies the record so snapshots cannot alias live state.
func (s *State) clone() State {
	c := *s
	if s.User != nil {
		u := *s.User
		c.User = &u
	}
	c.Rooms = make(map[uuid.UUID]*models.GameRoom, len(s.Rooms))
	for id, room := range s.Rooms {
		c.Rooms[id] = cloneRoom(room)
	}
	c.RoomOrder = append([]uuid.UUID(nil), s.RoomOrder...)
	c.Question = cloneQuestion(s.Question)
	c.Answers = append([]models.PlayerAnswer(nil), s.Answers...)
	c.Settings.Categories = append([]string(nil), s.Settings.Categories...)
	return c
}
