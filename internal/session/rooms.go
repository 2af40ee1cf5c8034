package session

import (
	"github.com/google/uuid"
	"github.com/trivium-games/trivium/internal/models"
)

// createRoom builds a fresh waiting room with the current user as its first
// player, registers it in the lobby, and makes it the active room.
func (s *State) createRoom(id uuid.UUID, name string, maxPlayers int, private bool) (*models.GameRoom, Outcome) {
	if !s.hasUser() {
		return nil, noop(NoopNoUser)
	}
	room := &models.GameRoom{
		ID:         id,
		Name:       name,
		Players:    []models.User{*s.User},
		MaxPlayers: maxPlayers,
		Private:    private,
		State:      models.StateWaiting,
		Scores:     map[uuid.UUID]int{s.User.ID: 0},
	}
	s.Rooms[id] = room
	s.RoomOrder = append(s.RoomOrder, id)
	s.ActiveRoomID = id
	return room, applied()
}

// joinRoom adds the current user to an existing room and makes it active.
// Joining a full room changes nothing. A player already on the roster is not
// added twice.
func (s *State) joinRoom(roomID uuid.UUID) Outcome {
	if !s.hasUser() {
		return noop(NoopNoUser)
	}
	room, ok := s.Rooms[roomID]
	if !ok {
		return noop(NoopRoomNotFound)
	}
	if !room.HasPlayer(s.User.ID) {
		if room.Full() {
			return noop(NoopRoomFull)
		}
		room.Players = append(room.Players, *s.User)
		if _, ok := room.Scores[s.User.ID]; !ok {
			room.Scores[s.User.ID] = 0
		}
	}
	s.ActiveRoomID = roomID
	return applied()
}

// leaveRoom unconditionally clears the active room, question, answer log and
// results flag. The leaving player is also taken off the lobby roster; their
// score entry persists.
func (s *State) leaveRoom() {
	if room := s.ActiveRoom(); room != nil && s.User != nil {
		for i, p := range room.Players {
			if p.ID == s.User.ID {
				room.Players = append(room.Players[:i], room.Players[i+1:]...)
				break
			}
		}
	}
	s.ActiveRoomID = uuid.Nil
	s.Question = nil
	s.Answers = nil
	s.ShowResults = false
}
