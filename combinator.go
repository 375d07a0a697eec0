package genetic

import (
	"math/rand"
)

// Combinator produces a child gene sequence from two parent genomes.
// Implementations must not alias the parent slices in the result.
type Combinator[G any] interface {
	Combine(p1, p2 []G, rng *rand.Rand) ([]G, error)
}

// ElementWiseCombinator takes each gene from either parent with equal
// probability, position by position.
type ElementWiseCombinator[G any] struct{}

// Combine implements the Combinator interface.
func (ElementWiseCombinator[G]) Combine(p1, p2 []G, rng *rand.Rand) ([]G, error) {
	if len(p1) != len(p2) {
		return nil, ErrLengthMismatch
	}

	child := make([]G, len(p1))
	for i := range child {
		if rng.Float64() < 0.5 {
			child[i] = p1[i]
		} else {
			child[i] = p2[i]
		}
	}
	return child, nil
}

// BreakpointCombinator draws a single random cut index n and concatenates
// the first parent's genes [0, n) with the second parent's genes [n, len).
type BreakpointCombinator[G any] struct{}

// Combine implements the Combinator interface.
func (BreakpointCombinator[G]) Combine(p1, p2 []G, rng *rand.Rand) ([]G, error) {
	if len(p1) != len(p2) {
		return nil, ErrLengthMismatch
	}
	if len(p1) == 0 {
		return []G{}, nil
	}

	n := rng.Intn(len(p1))
	child := make([]G, len(p1))
	copy(child[:n], p1[:n])
	copy(child[n:], p2[n:])
	return child, nil
}

// WholeParentCombinator copies the entire genome of one parent, chosen with
// equal probability. No gene-level mixing takes place.
type WholeParentCombinator[G any] struct{}

// Combine implements the Combinator interface.
func (WholeParentCombinator[G]) Combine(p1, p2 []G, rng *rand.Rand) ([]G, error) {
	if len(p1) != len(p2) {
		return nil, ErrLengthMismatch
	}

	src := p1
	if rng.Float64() < 0.5 {
		src = p2
	}
	child := make([]G, len(src))
	copy(child, src)
	return child, nil
}
