// Package genetic implements a small generational genetic algorithm engine.
//
// The engine owns a fixed-size population of individuals and drives the
// evaluate -> normalize -> select -> combine -> mutate -> replace cycle.
// Everything domain-specific (what a gene is, how to build one, how to score
// an individual) is supplied by a Client. The engine is generic over the
// gene type G and the client's companion entity type E, so a genome can be
// a []byte of characters just as well as a []vec.Vec2 of thrust forces.
package genetic

// Individual is one candidate solution: an ordered gene sequence plus the
// fitness assigned to it during the most recent evaluation. Entity is the
// client's companion object, created alongside the genome and carried for
// the individual's lifetime.
type Individual[G, E any] struct {
	Genes   []G
	Fitness float64
	Entity  E

	// Running cumulative fitness, maintained by CumulativeSelector.
	threshold float64
}

// Len returns the number of genes in the genome.
func (ind *Individual[G, E]) Len() int {
	return len(ind.Genes)
}

// Gene returns the gene at the given position.
func (ind *Individual[G, E]) Gene(i int) G {
	return ind.Genes[i]
}
