package session

import (
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/trivium-games/trivium/internal/catalog"
	"github.com/trivium-games/trivium/internal/models"
	"github.com/trivium-games/trivium/internal/random"
)

// Store owns the canonical session state and exposes every mutation entry
// point. The presentation layer is the single logical writer; the mutex only
// serializes transitions so each one reads and commits in one step.
type Store struct {
	mu       sync.Mutex
	state    State
	selector *Selector
	logger   *logrus.Logger
}

// New returns a Store over the given question repository. rng drives the
// question shuffle; pass a seeded source in tests for deterministic orders.
func New(repo catalog.Repository, rng random.Source, logger *logrus.Logger, defaults models.GameSettings) *Store {
	if logger == nil {
		logger = logrus.New()
	}
	if rng == nil {
		rng = random.New()
	}
	return &Store{
		state:    newState(defaults),
		selector: newSelector(repo, rng, logger),
		logger:   logger,
	}
}

func (st *Store) logOutcome(action string, out Outcome, fields logrus.Fields) {
	entry := st.logger.WithField("action", action).WithFields(fields)
	if out.Applied {
		entry.Debug("transition applied")
		return
	}
	entry.WithField("reason", out.Reason).Debug("transition no-op")
}

// SetUser installs the current user and marks the session authenticated.
func (st *Store) SetUser(u models.User) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.state.User = &u
	st.state.Authenticated = true
	st.logger.WithFields(logrus.Fields{"action": "set_user", "user": u.ID}).Debug("transition applied")
}

// Logout clears the user along with the active room, question, answer log
// and results flag.
func (st *Store) Logout() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.state.leaveRoom()
	st.state.User = nil
	st.state.Authenticated = false
	st.logger.WithField("action", "logout").Debug("transition applied")
}

// CreateRoom opens a new waiting room seeded with the current user and makes
// it active. Without an authenticated user nothing happens.
func (st *Store) CreateRoom(name string, maxPlayers int, private bool) (*models.GameRoom, Outcome) {
	st.mu.Lock()
	defer st.mu.Unlock()
	room, out := st.state.createRoom(uuid.New(), name, maxPlayers, private)
	st.logOutcome("create_room", out, logrus.Fields{"name": name, "maxPlayers": maxPlayers})
	if room == nil {
		return nil, out
	}
	return cloneRoom(room), out
}

// JoinRoom adds the current user to a lobby room and makes it active.
func (st *Store) JoinRoom(roomID uuid.UUID) Outcome {
	st.mu.Lock()
	defer st.mu.Unlock()
	out := st.state.joinRoom(roomID)
	st.logOutcome("join_room", out, logrus.Fields{"room": roomID})
	return out
}

// LeaveRoom clears the active room and everything scoped to it. Idempotent.
func (st *Store) LeaveRoom() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.state.leaveRoom()
	st.logger.WithField("action", "leave_room").Debug("transition applied")
}

// StartGame begins play in the active room.
func (st *Store) StartGame() Outcome {
	st.mu.Lock()
	defer st.mu.Unlock()
	out := st.state.startGame(st.selector)
	st.logOutcome("start_game", out, logrus.Fields{"room": st.state.ActiveRoomID})
	return out
}

// SubmitAnswer scores the current user's answer to the active question and
// records it. The recorded answer is returned when the transition applied.
func (st *Store) SubmitAnswer(answerIndex, timeSpent int) (models.PlayerAnswer, Outcome) {
	st.mu.Lock()
	defer st.mu.Unlock()
	answer, out := st.state.submitAnswer(answerIndex, timeSpent)
	st.logOutcome("submit_answer", out, logrus.Fields{
		"answerIndex": answerIndex,
		"timeSpent":   timeSpent,
		"points":      answer.Points,
	})
	return answer, out
}

// NextQuestion advances the active room to its next question, finishing the
// game once the configured count has been played.
func (st *Store) NextQuestion() Outcome {
	st.mu.Lock()
	defer st.mu.Unlock()
	out := st.state.nextQuestion(st.selector)
	st.logOutcome("next_question", out, logrus.Fields{"room": st.state.ActiveRoomID})
	return out
}

// EndGame finishes the active room immediately.
func (st *Store) EndGame() Outcome {
	st.mu.Lock()
	defer st.mu.Unlock()
	out := st.state.endGame()
	st.logOutcome("end_game", out, logrus.Fields{"room": st.state.ActiveRoomID})
	return out
}

// SetGameSettings shallow-merges a partial settings payload into the session
// settings. Absent keys keep their old values.
func (st *Store) SetGameSettings(patch map[string]interface{}) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	updated := st.state.Settings
	if err := updated.Update(patch); err != nil {
		st.logger.WithField("action", "set_game_settings").WithError(err).Warn("settings patch rejected")
		return err
	}
	st.state.Settings = updated
	st.logger.WithField("action", "set_game_settings").Debug("transition applied")
	return nil
}

// SetError sets the UI error channel. The engine itself never writes it.
func (st *Store) SetError(msg string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.state.ErrorMsg = msg
}

// ClearError empties the UI error channel.
func (st *Store) ClearError() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.state.ErrorMsg = ""
}

// SetLoading sets the UI busy flag, opaque to the engine.
func (st *Store) SetLoading(loading bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.state.Loading = loading
}

// Snapshot returns a deep copy of the session record for rendering.
func (st *Store) Snapshot() State {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.state.clone()
}

// Rooms lists the lobby in creation order, independent of the active room.
func (st *Store) Rooms() []models.GameRoom {
	st.mu.Lock()
	defer st.mu.Unlock()
	rooms := make([]models.GameRoom, 0, len(st.state.RoomOrder))
	for _, id := range st.state.RoomOrder {
		if room, ok := st.state.Rooms[id]; ok {
			rooms = append(rooms, *cloneRoom(room))
		}
	}
	return rooms
}
