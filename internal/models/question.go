package models

import "github.com/google/uuid"

// Difficulty tags a question and doubles as the session difficulty filter,
// where DifficultyMixed means "no filter".
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyMixed  Difficulty = "mixed"
)

// Question is a single quiz item from the catalogue.
type Question struct {
	ID         uuid.UUID  `json:"id"`
	Prompt     string     `json:"prompt"`
	Options    []string   `json:"options"`
	Category   string     `json:"category"`
	Difficulty Difficulty `json:"difficulty"`

	// CorrectAnswer indexes Options.
	CorrectAnswer int `json:"correctAnswer"`

	// Points is the base value awarded before any time bonus.
	Points int `json:"points"`
}
