package session

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trivium-games/trivium/internal/catalog"
	"github.com/trivium-games/trivium/internal/models"
	"github.com/trivium-games/trivium/internal/random"
)

func newTestSelector(seed int64) *Selector {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	return newSelector(catalog.NewMemory(testQuestions()), random.NewSeeded(seed), logger)
}

func TestEligibleFiltersByCategory(t *testing.T) {
	sel := newTestSelector(1)
	settings := models.GameSettings{
		Difficulty: models.DifficultyMixed,
		Categories: []string{"history"},
	}

	questions := sel.eligible(settings)
	require.Len(t, questions, 2)
	for _, q := range questions {
		assert.Equal(t, "history", q.Category)
	}
}

func TestEligibleFiltersByDifficulty(t *testing.T) {
	sel := newTestSelector(1)
	settings := models.GameSettings{
		Difficulty: models.DifficultyEasy,
		Categories: []string{"science", "history", "geography"},
	}

	questions := sel.eligible(settings)
	require.Len(t, questions, 4)
	for _, q := range questions {
		assert.Equal(t, models.DifficultyEasy, q.Difficulty)
	}
}

func TestEligibleMixedSkipsDifficultyFilter(t *testing.T) {
	sel := newTestSelector(1)
	settings := models.GameSettings{
		Difficulty: models.DifficultyMixed,
		Categories: []string{"science"},
	}

	questions := sel.eligible(settings)
	assert.Len(t, questions, 3, "mixed keeps every science difficulty")
}

func TestEligibleShufflesDeterministicallyWhenSeeded(t *testing.T) {
	settings := models.GameSettings{
		Difficulty: models.DifficultyMixed,
		Categories: []string{"science", "history"},
	}

	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	repo := catalog.NewMemory(testQuestions())
	first := newSelector(repo, random.NewSeeded(7), logger).eligible(settings)
	second := newSelector(repo, random.NewSeeded(7), logger).eligible(settings)
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID, "same seed yields the same ordering")
	}
}

func TestQuestionAtWrapsAroundPool(t *testing.T) {
	sel := newTestSelector(3)
	settings := models.GameSettings{
		Difficulty: models.DifficultyHard,
		Categories: []string{"science"},
	}

	// Only one hard science question exists, so every index maps to it.
	for _, idx := range []int{0, 1, 5, 42} {
		q := sel.questionAt(settings, idx)
		require.NotNil(t, q)
		assert.Equal(t, "q3", q.Prompt)
	}
}

func TestQuestionAtEmptyPool(t *testing.T) {
	sel := newTestSelector(3)
	settings := models.GameSettings{
		Difficulty: models.DifficultyMixed,
		Categories: []string{"philosophy"},
	}

	assert.Nil(t, sel.questionAt(settings, 0))
}

func TestEligibleEmptyCategorySet(t *testing.T) {
	sel := newTestSelector(3)
	settings := models.GameSettings{Difficulty: models.DifficultyMixed}

	assert.Empty(t, sel.eligible(settings), "no enabled categories means nothing is eligible")
}
