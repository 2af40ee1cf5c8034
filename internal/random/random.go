// Package random provides the shuffle randomness source for question
// selection. The source is injectable so tests can pin exact orderings;
// production uses an unseeded generator with no reproducibility guarantee.
package random

import (
	"math/rand"

	"github.com/valyala/fastrand"
)

// Source yields uniform integers in [0, n).
type Source interface {
	Intn(n int) int
}

type fastSource struct{}

func (fastSource) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(fastrand.Uint32n(uint32(n)))
}

// New returns the default unseeded source.
func New() Source {
	return fastSource{}
}

// NewSeeded returns a deterministic source for tests.
func NewSeeded(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// Shuffle permutes items in place using a Fisher-Yates walk over src.
func Shuffle[T any](src Source, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}
