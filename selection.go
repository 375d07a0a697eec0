package genetic

import (
	"math/rand"
)

// Selector picks a parent from the current individuals, biased toward
// higher fitness. Fitness values are the engine's normalized [0, 1] scores.
type Selector[G, E any] interface {
	Select(individuals []*Individual[G, E], rng *rand.Rand) *Individual[G, E]
}

// defaultMaxAttempts bounds the accept-reject loop. The bound is only ever
// reached in practice when every individual has zero fitness.
const defaultMaxAttempts = 1000000

// RejectionSelector samples parents Monte-Carlo style: pick a uniformly
// random individual and a uniform threshold u in [0, 1), accept when
// u <= fitness. Exhausting MaxAttempts falls back to a uniform pick.
type RejectionSelector[G, E any] struct {
	// MaxAttempts overrides the default attempt bound when positive.
	MaxAttempts int
}

// Select implements the Selector interface.
func (s RejectionSelector[G, E]) Select(individuals []*Individual[G, E], rng *rand.Rand) *Individual[G, E] {
	// With an all-zero population no candidate can ever be accepted, so
	// skip sampling and pick uniformly right away.
	if allZeroFitness(individuals) {
		return individuals[rng.Intn(len(individuals))]
	}

	attempts := s.MaxAttempts
	if attempts <= 0 {
		attempts = defaultMaxAttempts
	}

	for i := 0; i < attempts; i++ {
		ind := individuals[rng.Intn(len(individuals))]
		if rng.Float64() <= ind.Fitness {
			return ind
		}
	}
	return individuals[rng.Intn(len(individuals))]
}

// CumulativeSelector implements roulette-wheel selection: each individual is
// assigned a running cumulative fitness sum in population order, a uniform
// value in [0, total) is drawn, and the first individual whose threshold
// exceeds the draw wins.
type CumulativeSelector[G, E any] struct{}

// Select implements the Selector interface.
func (CumulativeSelector[G, E]) Select(individuals []*Individual[G, E], rng *rand.Rand) *Individual[G, E] {
	total := 0.0
	for _, ind := range individuals {
		total += ind.Fitness
		ind.threshold = total
	}

	if total == 0 {
		return individuals[rng.Intn(len(individuals))]
	}

	draw := rng.Float64() * total
	for _, ind := range individuals {
		if draw < ind.threshold {
			return ind
		}
	}
	// Floating point accumulation can leave the draw just past the last
	// threshold.
	return individuals[len(individuals)-1]
}

func allZeroFitness[G, E any](individuals []*Individual[G, E]) bool {
	for _, ind := range individuals {
		if ind.Fitness > 0 {
			return false
		}
	}
	return true
}
