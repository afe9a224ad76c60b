package schedule

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
	"time"
)

// CountSampler draws the number of commits for one calendar day.
type CountSampler interface {
	Draw() int
}

// DefaultWeights is the shipped per-day commit-count distribution: counts
// 0-13, with the extremes weighted up so that very quiet and very busy days
// both show up more often than average ones.
var DefaultWeights = []int{3, 4, 2, 2, 2, 1, 1, 1, 1, 2, 2, 2, 4, 3}

// WeightedSampler draws ints in [0, len(weights)) with probability
// proportional to each weight.
type WeightedSampler struct {
	cumulative []int
	total      int
	rng        *rand.Rand
}

// Compile-time interface conformance check.
var _ CountSampler = (*WeightedSampler)(nil)

// NewWeightedSampler builds a sampler over the given weights, seeded from the
// clock. Weights must be non-negative with a positive sum.
func NewWeightedSampler(weights []int) (*WeightedSampler, error) {
	return NewSeededWeightedSampler(weights, uint64(time.Now().UnixNano()))
}

// NewSeededWeightedSampler is NewWeightedSampler with an explicit seed, for
// reproducible draws.
func NewSeededWeightedSampler(weights []int, seed uint64) (*WeightedSampler, error) {
	if len(weights) == 0 {
		return nil, errors.New("no weights")
	}
	cumulative := make([]int, len(weights))
	total := 0
	for i, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("negative weight %d at index %d", w, i)
		}
		total += w
		cumulative[i] = total
	}
	if total == 0 {
		return nil, errors.New("weights sum to zero")
	}
	return &WeightedSampler{
		cumulative: cumulative,
		total:      total,
		rng:        rand.New(rand.NewPCG(seed, seed)),
	}, nil
}

// Draw samples one value by inverting the cumulative weights.
func (s *WeightedSampler) Draw() int {
	return sort.SearchInts(s.cumulative, s.rng.IntN(s.total)+1)
}
