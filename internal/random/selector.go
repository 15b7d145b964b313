package random

import (
	"math/rand"
	"time"
)

// Selector draws uniform integers for game reassignment. Injected so tests
// can swap in a deterministic source.
type Selector interface {
	// NextInRange returns a uniform integer in [low, high). The caller
	// guarantees low < high.
	NextInRange(low, high int) int
}

type selector struct {
	rng *rand.Rand
}

// NewSelector returns a time-seeded uniform selector.
func NewSelector() Selector {
	return &selector{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())), //nolint: gosec // not used for secrets
	}
}

func (that *selector) NextInRange(low, high int) int {
	return low + that.rng.Intn(high-low)
}
