package models

import "github.com/google/uuid"

// GameState is the lifecycle phase of a room. Transitions are monotonic:
// waiting -> playing -> finished, never backwards.
type GameState string

const (
	StateWaiting  GameState = "waiting"
	StatePlaying  GameState = "playing"
	StateFinished GameState = "finished"
)

// GameRoom is one ephemeral play session instance. Rooms live in the lobby
// for the process lifetime only.
type GameRoom struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Players    []User    `json:"players"`
	MaxPlayers int       `json:"maxPlayers"`
	Private    bool      `json:"private"`

	State         GameState `json:"state"`
	QuestionIndex int       `json:"questionIndex"`
	TimeRemaining int       `json:"timeRemaining"` // seconds; counted down by the client

	// Scores maps player ID -> accumulated points. Keys persist for players
	// who have left the room.
	Scores map[uuid.UUID]int `json:"scores"`
}

// HasPlayer reports whether the given user is currently on the roster.
func (r *GameRoom) HasPlayer(id uuid.UUID) bool {
	for _, p := range r.Players {
		if p.ID == id {
			return true
		}
	}
	return false
}

// Full reports whether the roster is at capacity.
func (r *GameRoom) Full() bool {
	return len(r.Players) >= r.MaxPlayers
}
