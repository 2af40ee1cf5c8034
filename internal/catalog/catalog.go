// Package catalog serves the question catalogue. The engine only reads from
// it via filter queries; authoring tools live elsewhere.
package catalog

import (
	"sort"
	"strings"

	"github.com/trivium-games/trivium/internal/models"
)

// Filter selects catalogue questions by difficulty and enabled categories.
// A question passes only if its category is in Categories; the difficulty
// must match exactly unless the filter asks for mixed.
type Filter struct {
	Difficulty models.Difficulty
	Categories []string
}

// Matches reports whether q passes the filter.
func (f Filter) Matches(q models.Question) bool {
	if f.Difficulty != models.DifficultyMixed && q.Difficulty != f.Difficulty {
		return false
	}
	for _, c := range f.Categories {
		if c == q.Category {
			return true
		}
	}
	return false
}

// Key returns a canonical string form of the filter, used as a cache key.
func (f Filter) Key() string {
	categories := append([]string(nil), f.Categories...)
	sort.Strings(categories)
	return string(f.Difficulty) + "|" + strings.Join(categories, ",")
}

// Repository is the read-only query capability the session engine consumes.
type Repository interface {
	Query(f Filter) ([]models.Question, error)
}

// Memory is a slice-backed Repository, used for tests and static seeds.
type Memory struct {
	questions []models.Question
}

// NewMemory returns a Memory repository over the given questions.
func NewMemory(questions []models.Question) *Memory {
	return &Memory{questions: questions}
}

// Query returns the questions passing the filter, in catalogue order.
func (m *Memory) Query(f Filter) ([]models.Question, error) {
	var out []models.Question
	for _, q := range m.questions {
		if f.Matches(q) {
			out = append(out, q)
		}
	}
	return out, nil
}
