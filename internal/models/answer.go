package models

import "github.com/google/uuid"

// PlayerAnswer records one submitted response. It is created by the scoring
// engine and never mutated afterwards.
type PlayerAnswer struct {
	PlayerID    uuid.UUID `json:"playerId"`
	QuestionID  uuid.UUID `json:"questionId"`
	AnswerIndex int       `json:"answerIndex"`
	TimeSpent   int       `json:"timeSpent"` // seconds
	Correct     bool      `json:"correct"`
	Points      int       `json:"points"`
}
