package genetic

import (
	"math/rand"
)

// parentRetryLimit bounds the redraw loop when the second parent comes up
// identical to the first. Past the limit the duplicate is accepted;
// duplicate-parent crossover degenerates to that parent's genome.
const parentRetryLimit = 1000

// Population is the fixed-size ordered collection of individuals alive in
// the current generation. Its size is set once at engine initialization and
// never changes; its membership is replaced wholesale once per generation.
type Population[G, E any] struct {
	individuals []*Individual[G, E]
}

func newPopulation[G, E any](individuals []*Individual[G, E]) *Population[G, E] {
	return &Population[G, E]{individuals: individuals}
}

// Size returns the number of individuals.
func (p *Population[G, E]) Size() int {
	return len(p.individuals)
}

// Individual returns the individual at the given position.
func (p *Population[G, E]) Individual(i int) *Individual[G, E] {
	return p.individuals[i]
}

// ForEach calls fn for every individual in population order.
func (p *Population[G, E]) ForEach(fn func(ind *Individual[G, E])) {
	for _, ind := range p.individuals {
		fn(ind)
	}
}

// SelectParents draws two parents with the given strategy, redrawing the
// second while it is identical to the first, up to parentRetryLimit tries.
func (p *Population[G, E]) SelectParents(sel Selector[G, E], rng *rand.Rand) (*Individual[G, E], *Individual[G, E]) {
	p1 := sel.Select(p.individuals, rng)
	p2 := sel.Select(p.individuals, rng)
	for retry := 0; p1 == p2 && retry < parentRetryLimit; retry++ {
		p2 = sel.Select(p.individuals, rng)
	}
	return p1, p2
}

// replace swaps in the next generation's membership. The caller builds the
// full slice first, so the old generation stays visible until the swap.
func (p *Population[G, E]) replace(next []*Individual[G, E]) {
	p.individuals = next
}
