package genetic

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"
)

var (
	// ErrNilClient is returned by New when no client is supplied.
	ErrNilClient = errors.New("client must not be nil")

	// ErrAlreadyStarted is returned when Initialize is called twice.
	ErrAlreadyStarted = errors.New("engine already initialized")

	// ErrNotStarted is returned when Evolve runs before Initialize.
	ErrNotStarted = errors.New("engine not initialized")

	// ErrNegativeFitness is returned when a client's Evaluate breaks the
	// non-negative fitness contract.
	ErrNegativeFitness = errors.New("fitness must not be negative")

	// ErrLengthMismatch is returned by combinators when the parent
	// genomes differ in length.
	ErrLengthMismatch = errors.New("parent genomes differ in length")
)

// Engine defaults, used when the client supplies no configuration.
const (
	DefaultPopulationSize      = 1
	DefaultGeneLength          = 1
	DefaultMutationProbability = 0.01
)

// Engine drives the generational loop. It owns the population, the active
// crossover and selection strategies, and the mutation probability, and it
// mediates all interaction between the population and the client.
type Engine[G, E any] struct {
	client Client[G, E]
	rng    *rand.Rand

	combinator Combinator[G]
	selector   Selector[G, E]

	popSize    int
	geneLength int
	mutationP  float64
	workers    int

	population *Population[G, E]
	generation int
	started    bool
	stop       bool
}

// New creates an engine around the given client. A nil rng seeds a new
// generator from the current time.
func New[G, E any](client Client[G, E], rng *rand.Rand) (*Engine[G, E], error) {
	if client == nil {
		return nil, ErrNilClient
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Engine[G, E]{
		client:     client,
		rng:        rng,
		combinator: ElementWiseCombinator[G]{},
		selector:   RejectionSelector[G, E]{},
		mutationP:  DefaultMutationProbability,
		workers:    1,
		generation: 1,
	}, nil
}

// Initialize reads the client configuration, seeds the population with
// freshly created genomes, and fires the init and new-population hooks. It
// must be called exactly once before Evolve or Run.
func (e *Engine[G, E]) Initialize() error {
	if e.started {
		return ErrAlreadyStarted
	}
	e.started = true

	e.popSize = DefaultPopulationSize
	e.geneLength = DefaultGeneLength
	if c, ok := e.client.(Configurer); ok {
		cfg := c.Configuration()
		if cfg.PopulationSize > 0 {
			e.popSize = cfg.PopulationSize
		}
		if cfg.GeneLength > 0 {
			e.geneLength = cfg.GeneLength
		}
		if cfg.MutationProbability > 0 {
			e.mutationP = clamp01(cfg.MutationProbability)
		}
	}

	individuals := make([]*Individual[G, E], e.popSize)
	for i := range individuals {
		genes := make([]G, e.geneLength)
		for j := range genes {
			genes[j] = e.client.CreateGene(e.rng)
		}
		individuals[i] = e.newIndividual(genes)
	}
	e.population = newPopulation(individuals)

	if o, ok := e.client.(InitObserver[G, E]); ok {
		o.OnInit(e)
	}
	e.notifyNewPopulation()
	return nil
}

// Evolve runs one full generation: evaluate, normalize, reproduce, replace.
// On error the previous generation remains the current, consistent state.
func (e *Engine[G, E]) Evolve() error {
	if !e.started {
		return ErrNotStarted
	}

	if err := e.evaluateAll(); err != nil {
		return err
	}

	if o, ok := e.client.(EvaluationObserver); ok {
		o.OnEvaluated(e.generation)
	}

	next := make([]*Individual[G, E], e.population.Size())
	for i := range next {
		p1, p2 := e.population.SelectParents(e.selector, e.rng)
		genes, err := e.combinator.Combine(p1.Genes, p2.Genes, e.rng)
		if err != nil {
			return fmt.Errorf("combine parents: %w", err)
		}
		e.mutate(genes)
		next[i] = e.newIndividual(genes)
	}
	e.population.replace(next)

	e.generation++
	e.notifyNewPopulation()
	return nil
}

// Run repeats Evolve until the client requests a stop or RequestStop is
// called. The stop condition is checked between generations only.
func (e *Engine[G, E]) Run() error {
	e.stop = false
	for {
		if err := e.Evolve(); err != nil {
			return err
		}
		if e.stop {
			return nil
		}
		if s, ok := e.client.(Stopper); ok && s.StopRequested() {
			return nil
		}
	}
}

// RequestStop makes Run return after the current generation completes.
func (e *Engine[G, E]) RequestStop() {
	e.stop = true
}

// SetMutationProbability clamps p into [0, 1], makes it the per-gene
// mutation probability, and returns the clamped value.
func (e *Engine[G, E]) SetMutationProbability(p float64) float64 {
	e.mutationP = clamp01(p)
	return e.mutationP
}

// SetCombinator swaps the active crossover strategy.
func (e *Engine[G, E]) SetCombinator(c Combinator[G]) {
	if c != nil {
		e.combinator = c
	}
}

// SetSelector swaps the active parent selection strategy.
func (e *Engine[G, E]) SetSelector(s Selector[G, E]) {
	if s != nil {
		e.selector = s
	}
}

// SetWorkers sets the number of concurrent fitness evaluations. The default
// of 1 evaluates strictly in population order; anything higher requires the
// client's Evaluate to be safe for concurrent use.
func (e *Engine[G, E]) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	e.workers = n
}

// Generation returns the current generation number, starting at 1.
func (e *Engine[G, E]) Generation() int {
	return e.generation
}

// Size returns the population size, or 0 before initialization.
func (e *Engine[G, E]) Size() int {
	if e.population == nil {
		return 0
	}
	return e.population.Size()
}

// GeneLength returns the genome length established at initialization.
func (e *Engine[G, E]) GeneLength() int {
	return e.geneLength
}

// ForEach exposes a read-only traversal over the current individuals, for
// client-side per-individual work such as physics updates or rendering.
func (e *Engine[G, E]) ForEach(fn func(ind *Individual[G, E])) {
	if e.population != nil {
		e.population.ForEach(fn)
	}
}

func (e *Engine[G, E]) newIndividual(genes []G) *Individual[G, E] {
	return &Individual[G, E]{
		Genes:  genes,
		Entity: e.client.CreateIndividual(),
	}
}

// evaluateAll scores every individual into a scratch slice, validates the
// fitness contract, and writes back max-normalized values. Scoring into the
// scratch slice first keeps the population untouched if the client
// misbehaves.
func (e *Engine[G, E]) evaluateAll() error {
	size := e.population.Size()
	scores := make([]float64, size)

	if e.workers <= 1 {
		for i := 0; i < size; i++ {
			scores[i] = e.client.Evaluate(e.population.Individual(i))
		}
	} else {
		var wg sync.WaitGroup
		sem := make(chan struct{}, e.workers)
		for i := 0; i < size; i++ {
			wg.Add(1)
			sem <- struct{}{}
			go func(i int) {
				defer wg.Done()
				defer func() { <-sem }()
				scores[i] = e.client.Evaluate(e.population.Individual(i))
			}(i)
		}
		wg.Wait()
	}

	max := 0.0
	for i, score := range scores {
		if score < 0 {
			return fmt.Errorf("%w: individual %d scored %v", ErrNegativeFitness, i, score)
		}
		if score > max {
			max = score
		}
	}

	// With an all-zero generation every fitness stays 0.
	if max == 0 {
		max = 1
	}
	for i, score := range scores {
		e.population.Individual(i).Fitness = score / max
	}
	return nil
}

// mutate replaces each gene independently with a fresh client-created gene,
// with probability equal to the current mutation probability.
func (e *Engine[G, E]) mutate(genes []G) {
	for i := range genes {
		if e.rng.Float64() < e.mutationP {
			genes[i] = e.client.CreateGene(e.rng)
		}
	}
}

func (e *Engine[G, E]) notifyNewPopulation() {
	if o, ok := e.client.(PopulationObserver); ok {
		o.OnNewPopulation(e.generation)
	}
}

func clamp01(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
