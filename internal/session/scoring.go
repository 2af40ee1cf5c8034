package session

import (
	"github.com/google/uuid"
	"github.com/trivium-games/trivium/internal/models"
)

// The time bonus is computed against a fixed 30-second window regardless of
// the configured TimePerQuestion. A 60-second game still bonuses off 30; see
// DESIGN.md for why this stays as-is.
const (
	bonusWindowSeconds = 30
	bonusPerSecond     = 2
)

// Evaluate scores a submitted answer against a question. Pure: the caller
// records the result. A wrong answer is worth nothing, with no time bonus.
func Evaluate(q models.Question, playerID uuid.UUID, answerIndex, timeSpent int) models.PlayerAnswer {
	correct := answerIndex == q.CorrectAnswer
	points := 0
	if correct {
		bonus := (bonusWindowSeconds - timeSpent) * bonusPerSecond
		if bonus < 0 {
			bonus = 0
		}
		points = q.Points + bonus
	}
	return models.PlayerAnswer{
		PlayerID:    playerID,
		QuestionID:  q.ID,
		AnswerIndex: answerIndex,
		TimeSpent:   timeSpent,
		Correct:     correct,
		Points:      points,
	}
}

// submitAnswer evaluates the current user's answer to the active question,
// appends it to the answer log, and credits the points to the player's score
// entry (seeded at zero when absent).
func (s *State) submitAnswer(answerIndex, timeSpent int) (models.PlayerAnswer, Outcome) {
	if !s.hasUser() {
		return models.PlayerAnswer{}, noop(NoopNoUser)
	}
	room := s.ActiveRoom()
	if room == nil {
		return models.PlayerAnswer{}, noop(NoopNoRoom)
	}
	if s.Question == nil {
		return models.PlayerAnswer{}, noop(NoopNoQuestion)
	}
	answer := Evaluate(*s.Question, s.User.ID, answerIndex, timeSpent)
	s.Answers = append(s.Answers, answer)
	room.Scores[s.User.ID] += answer.Points
	s.ShowResults = true
	return answer, applied()
}
