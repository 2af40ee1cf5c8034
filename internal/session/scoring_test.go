package session

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/trivium-games/trivium/internal/models"
)

func TestEvaluateCorrectWithTimeBonus(t *testing.T) {
	q := models.Question{
		ID:            uuid.New(),
		Options:       []string{"a", "b", "c", "d"},
		CorrectAnswer: 2,
		Points:        100,
	}

	answer := Evaluate(q, uuid.New(), 2, 10)
	assert.True(t, answer.Correct)
	assert.Equal(t, 140, answer.Points, "100 base + (30-10)*2 bonus")
	assert.Equal(t, q.ID, answer.QuestionID)
}

func TestEvaluateWrongAnswerScoresZero(t *testing.T) {
	q := models.Question{
		ID:            uuid.New(),
		Options:       []string{"a", "b"},
		CorrectAnswer: 0,
		Points:        100,
	}

	// A fast wrong answer earns nothing, including no time bonus.
	answer := Evaluate(q, uuid.New(), 1, 5)
	assert.False(t, answer.Correct)
	assert.Equal(t, 0, answer.Points)
}

func TestEvaluateTimeBonusFloor(t *testing.T) {
	q := models.Question{
		ID:            uuid.New(),
		Options:       []string{"a", "b"},
		CorrectAnswer: 1,
		Points:        50,
	}

	// At or beyond the 30s window the bonus is exactly zero.
	answer := Evaluate(q, uuid.New(), 1, 45)
	assert.True(t, answer.Correct)
	assert.Equal(t, 50, answer.Points)

	answer = Evaluate(q, uuid.New(), 1, 30)
	assert.Equal(t, 50, answer.Points)
}

func TestEvaluateNeverNegative(t *testing.T) {
	q := models.Question{Options: []string{"a"}, CorrectAnswer: 0, Points: 0}
	for _, spent := range []int{0, 15, 30, 120} {
		for _, idx := range []int{0, 1} {
			answer := Evaluate(q, uuid.New(), idx, spent)
			assert.GreaterOrEqual(t, answer.Points, 0)
		}
	}
}
