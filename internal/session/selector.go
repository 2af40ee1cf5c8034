package session

import (
	"github.com/sirupsen/logrus"
	"github.com/trivium-games/trivium/internal/catalog"
	"github.com/trivium-games/trivium/internal/models"
	"github.com/trivium-games/trivium/internal/random"
)

// Selector filters the question catalogue by the session settings and
// produces a randomized ordering. The eligible set is fixed for a session,
// but the ordering is re-drawn on every call: the question shown at an index
// is shuffled[index % len(shuffled)], so questions may repeat within a
// session when the pool is smaller than the game length.
type Selector struct {
	repo   catalog.Repository
	rng    random.Source
	logger *logrus.Logger
}

func newSelector(repo catalog.Repository, rng random.Source, logger *logrus.Logger) *Selector {
	return &Selector{repo: repo, rng: rng, logger: logger}
}

// eligible returns a fresh shuffled permutation of the questions passing the
// settings filter. Catalogue errors degrade to an empty set; the lifecycle
// tolerates an absent question.
func (sel *Selector) eligible(settings models.GameSettings) []models.Question {
	questions, err := sel.repo.Query(catalog.Filter{
		Difficulty: settings.Difficulty,
		Categories: settings.Categories,
	})
	if err != nil {
		sel.logger.WithError(err).Warn("question catalogue query failed")
		return nil
	}
	shuffled := append([]models.Question(nil), questions...)
	random.Shuffle(sel.rng, shuffled)
	return shuffled
}

// questionAt re-filters and re-shuffles, then picks the question for the
// given index, wrapping around the pool. Returns nil when nothing matches.
func (sel *Selector) questionAt(settings models.GameSettings, index int) *models.Question {
	shuffled := sel.eligible(settings)
	if len(shuffled) == 0 {
		return nil
	}
	q := shuffled[index%len(shuffled)]
	return &q
}
