package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/trivium-games/trivium/internal/middleware"
	"github.com/trivium-games/trivium/internal/models"
	"github.com/trivium-games/trivium/internal/session"
)

// Intent is one UI message on the session WebSocket. Type selects the store
// action; the remaining fields carry that action's arguments.
type Intent struct {
	Type string `json:"type"`

	User *models.User `json:"user,omitempty"`

	Name       string `json:"name,omitempty"`
	MaxPlayers int    `json:"maxPlayers,omitempty"`
	Private    bool   `json:"private,omitempty"`
	RoomID     string `json:"roomId,omitempty"`

	AnswerIndex int `json:"answerIndex"`
	TimeSpent   int `json:"timeSpent"`

	Settings map[string]interface{} `json:"settings,omitempty"`

	Message string `json:"message,omitempty"`
	Loading bool   `json:"loading"`
}

// stateMessage is written back after every intent: the transition outcome
// plus a full snapshot for the client to render.
type stateMessage struct {
	Type    string          `json:"type"`
	Outcome session.Outcome `json:"outcome"`
	State   session.State   `json:"state"`
}

// SessionWSHandler upgrades the connection and runs the intent loop. The
// connected client is the single logical writer of the session.
func (s *SessionServer) SessionWSHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			Subprotocols:   []string{"session"},
			OriginPatterns: []string{"*"}, // adjust for production security
		})
		if err != nil {
			s.Logger.Warnf("WebSocket accept error: %v", err)
			return
		}
		defer c.Close(websocket.StatusInternalError, "internal error during handler exit")

		if c.Subprotocol() != "session" {
			c.Close(websocket.StatusPolicyViolation, "client must use the 'session' subprotocol")
			return
		}
		middleware.LogWebSocketConnect(s.Logger, r.RemoteAddr, r.URL.Path)

		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()

		err = s.readIntents(ctx, c)
		middleware.LogWebSocketDisconnect(s.Logger, r.RemoteAddr, r.URL.Path, err)
	}
}

// readIntents reads intent messages until the connection closes, dispatching
// each one and replying with the outcome and the resulting snapshot.
func (s *SessionServer) readIntents(ctx context.Context, c *websocket.Conn) error {
	for {
		msgType, data, err := c.Read(ctx)
		if err != nil {
			status := websocket.CloseStatus(err)
			if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway ||
				strings.Contains(err.Error(), "context canceled") {
				return nil
			}
			return err
		}
		if msgType != websocket.MessageText {
			s.Logger.Warnf("ignoring non-text WebSocket message type %d", msgType)
			continue
		}

		var intent Intent
		if err := json.Unmarshal(data, &intent); err != nil {
			s.Logger.Warnf("invalid intent JSON: %v", err)
			sendWsError(ctx, s.Logger, c, "invalid JSON format")
			continue
		}

		s.Logger.Debugf("received intent %q", intent.Type)

		if intent.Type == "ping" {
			sendWsMessage(ctx, s.Logger, c, map[string]string{"type": "pong"})
			continue
		}

		outcome, ok := s.dispatch(ctx, c, intent)
		if !ok {
			continue
		}
		sendWsMessage(ctx, s.Logger, c, stateMessage{
			Type:    "state",
			Outcome: outcome,
			State:   s.Store.Snapshot(),
		})
	}
}

// dispatch maps one intent onto its store action. The second return is false
// when the intent was malformed and already answered with an error.
func (s *SessionServer) dispatch(ctx context.Context, c *websocket.Conn, intent Intent) (session.Outcome, bool) {
	ok := session.Outcome{Applied: true}

	switch intent.Type {
	case "set_user":
		if intent.User == nil {
			sendWsError(ctx, s.Logger, c, "set_user requires a user object")
			return ok, false
		}
		user := *intent.User
		if user.ID == uuid.Nil {
			user.ID = uuid.New()
		}
		s.Store.SetUser(user)
		return ok, true
	case "logout":
		s.Store.Logout()
		return ok, true
	case "create_room":
		_, out := s.Store.CreateRoom(intent.Name, intent.MaxPlayers, intent.Private)
		return out, true
	case "join_room":
		roomID, err := uuid.Parse(intent.RoomID)
		if err != nil {
			sendWsError(ctx, s.Logger, c, "invalid roomId format")
			return ok, false
		}
		return s.Store.JoinRoom(roomID), true
	case "leave_room":
		s.Store.LeaveRoom()
		return ok, true
	case "start_game":
		return s.Store.StartGame(), true
	case "submit_answer":
		_, out := s.Store.SubmitAnswer(intent.AnswerIndex, intent.TimeSpent)
		return out, true
	case "next_question":
		return s.Store.NextQuestion(), true
	case "end_game":
		return s.Store.EndGame(), true
	case "set_game_settings":
		if err := s.Store.SetGameSettings(intent.Settings); err != nil {
			sendWsError(ctx, s.Logger, c, err.Error())
			return ok, false
		}
		return ok, true
	case "set_error":
		s.Store.SetError(intent.Message)
		return ok, true
	case "clear_error":
		s.Store.ClearError()
		return ok, true
	case "set_loading":
		s.Store.SetLoading(intent.Loading)
		return ok, true
	default:
		sendWsError(ctx, s.Logger, c, "unknown intent type: "+intent.Type)
		return ok, false
	}
}

// sendWsMessage marshals a message and writes it with a timeout.
func sendWsMessage(ctx context.Context, logger *logrus.Logger, c *websocket.Conn, message interface{}) {
	msgBytes, err := json.Marshal(message)
	if err != nil {
		logger.Errorf("error marshaling WebSocket message: %v", err)
		return
	}

	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := c.Write(writeCtx, websocket.MessageText, msgBytes); err != nil {
		status := websocket.CloseStatus(err)
		if status != websocket.StatusNormalClosure && status != websocket.StatusGoingAway {
			logger.Warnf("error writing WebSocket message: %v", err)
		}
	}
}

// sendWsError sends a structured error message to the client.
func sendWsError(ctx context.Context, logger *logrus.Logger, c *websocket.Conn, errorMsg string) {
	sendWsMessage(ctx, logger, c, map[string]interface{}{
		"type":    "error",
		"message": errorMsg,
	})
}
