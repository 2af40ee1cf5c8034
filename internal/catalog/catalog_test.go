package catalog

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trivium-games/trivium/internal/models"
)

func sampleQuestions() []models.Question {
	return []models.Question{
		{ID: uuid.New(), Prompt: "easy science", Options: []string{"a", "b"}, CorrectAnswer: 0, Category: "science", Difficulty: models.DifficultyEasy, Points: 100},
		{ID: uuid.New(), Prompt: "hard science", Options: []string{"a", "b"}, CorrectAnswer: 1, Category: "science", Difficulty: models.DifficultyHard, Points: 150},
		{ID: uuid.New(), Prompt: "easy history", Options: []string{"a", "b"}, CorrectAnswer: 0, Category: "history", Difficulty: models.DifficultyEasy, Points: 100},
	}
}

func TestMemoryQueryFilters(t *testing.T) {
	repo := NewMemory(sampleQuestions())

	out, err := repo.Query(Filter{Difficulty: models.DifficultyEasy, Categories: []string{"science"}})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "easy science", out[0].Prompt)

	out, err = repo.Query(Filter{Difficulty: models.DifficultyMixed, Categories: []string{"science", "history"}})
	require.NoError(t, err)
	assert.Len(t, out, 3)

	out, err = repo.Query(Filter{Difficulty: models.DifficultyMixed})
	require.NoError(t, err)
	assert.Empty(t, out, "empty category set matches nothing")
}

func TestBoltRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")
	repo, err := OpenBolt(path)
	require.NoError(t, err)
	defer repo.Close()

	for _, q := range sampleQuestions() {
		require.NoError(t, repo.Put(q))
	}

	out, err := repo.Query(Filter{Difficulty: models.DifficultyMixed, Categories: []string{"science"}})
	require.NoError(t, err)
	assert.Len(t, out, 2)

	out, err = repo.Query(Filter{Difficulty: models.DifficultyHard, Categories: []string{"science"}})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "hard science", out[0].Prompt)
	assert.Equal(t, []string{"a", "b"}, out[0].Options)
}

// countingRepo counts how often the inner query actually runs.
type countingRepo struct {
	inner Repository
	calls int
}

func (c *countingRepo) Query(f Filter) ([]models.Question, error) {
	c.calls++
	return c.inner.Query(f)
}

func TestCachedQueryHitsCache(t *testing.T) {
	counting := &countingRepo{inner: NewMemory(sampleQuestions())}
	repo, err := NewCached(counting, 8)
	require.NoError(t, err)

	filter := Filter{Difficulty: models.DifficultyMixed, Categories: []string{"history", "science"}}

	first, err := repo.Query(filter)
	require.NoError(t, err)
	second, err := repo.Query(filter)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, counting.calls, "second query must be served from the cache")

	// Category order must not defeat the cache key.
	_, err = repo.Query(Filter{Difficulty: models.DifficultyMixed, Categories: []string{"science", "history"}})
	require.NoError(t, err)
	assert.Equal(t, 1, counting.calls)

	// A different filter is a genuine miss.
	_, err = repo.Query(Filter{Difficulty: models.DifficultyEasy, Categories: []string{"science"}})
	require.NoError(t, err)
	assert.Equal(t, 2, counting.calls)
}
