package genetic

import (
	"math/rand"
)

// Client supplies the domain-specific behavior the engine depends on. All
// three methods are required; a type missing one will not compile against
// the engine.
type Client[G, E any] interface {
	// CreateGene returns a fresh gene value. It is called once per gene
	// when the population is seeded and again for every mutated locus.
	CreateGene(rng *rand.Rand) G

	// CreateIndividual returns the client's companion object, paired 1:1
	// with each new genome.
	CreateIndividual() E

	// Evaluate scores an individual. The result must not be negative;
	// higher is better. A negative result aborts the generation.
	Evaluate(ind *Individual[G, E]) float64
}

// Config carries the client's optional overrides of the engine defaults.
// Zero fields fall back to the built-in defaults, so a mutation probability
// of exactly 0 must be set through Engine.SetMutationProbability instead.
type Config struct {
	PopulationSize      int
	GeneLength          int
	MutationProbability float64
}

// Configurer is an optional client capability providing configuration
// overrides, read once during Initialize.
type Configurer interface {
	Configuration() Config
}

// Stopper is an optional client capability signaling termination. It is
// consulted between generations only; an in-flight generation always
// completes.
type Stopper interface {
	StopRequested() bool
}

// InitObserver is notified once, after the population has been seeded.
type InitObserver[G, E any] interface {
	OnInit(e *Engine[G, E])
}

// PopulationObserver is notified whenever a new generation becomes current,
// including the initial one.
type PopulationObserver interface {
	OnNewPopulation(generation int)
}

// EvaluationObserver is notified after every individual of a generation has
// been evaluated and normalized. This is the natural point to report
// generation statistics.
type EvaluationObserver interface {
	OnEvaluated(generation int)
}
