package genetic

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClient is a configurable test client over int genes. CreateGene hands
// out strictly increasing values by default, so every freshly created gene
// is distinguishable from every earlier one.
type stubClient struct {
	cfg      Config
	nextGene int

	evaluate        func(ind *Individual[int, struct{}]) float64
	onInit          func(e *Engine[int, struct{}])
	onNewPopulation func(generation int)
	onEvaluated     func(generation int)
	stopRequested   func() bool
}

func (c *stubClient) Configuration() Config { return c.cfg }

func (c *stubClient) CreateGene(rng *rand.Rand) int {
	c.nextGene++
	return c.nextGene
}

func (c *stubClient) CreateIndividual() struct{} { return struct{}{} }

func (c *stubClient) Evaluate(ind *Individual[int, struct{}]) float64 {
	if c.evaluate != nil {
		return c.evaluate(ind)
	}
	return 1
}

func (c *stubClient) OnInit(e *Engine[int, struct{}]) {
	if c.onInit != nil {
		c.onInit(e)
	}
}

func (c *stubClient) OnNewPopulation(generation int) {
	if c.onNewPopulation != nil {
		c.onNewPopulation(generation)
	}
}

func (c *stubClient) OnEvaluated(generation int) {
	if c.onEvaluated != nil {
		c.onEvaluated(generation)
	}
}

func (c *stubClient) StopRequested() bool {
	if c.stopRequested != nil {
		return c.stopRequested()
	}
	return false
}

func newTestEngine(t *testing.T, client *stubClient, seed int64) *Engine[int, struct{}] {
	t.Helper()
	e, err := New[int, struct{}](client, rand.New(rand.NewSource(seed)))
	require.NoError(t, err)
	return e
}

func TestNewNilClient(t *testing.T) {
	e, err := New[int, struct{}](nil, nil)
	assert.ErrorIs(t, err, ErrNilClient)
	assert.Nil(t, e)
}

func TestInitializeTwice(t *testing.T) {
	e := newTestEngine(t, &stubClient{}, 1)

	require.NoError(t, e.Initialize())
	assert.ErrorIs(t, e.Initialize(), ErrAlreadyStarted)
}

func TestEvolveBeforeInitialize(t *testing.T) {
	e := newTestEngine(t, &stubClient{}, 2)
	assert.ErrorIs(t, e.Evolve(), ErrNotStarted)
}

// minimalClient implements only the required capability set.
type minimalClient struct{}

func (minimalClient) CreateGene(rng *rand.Rand) int                   { return rng.Intn(100) }
func (minimalClient) CreateIndividual() struct{}                      { return struct{}{} }
func (minimalClient) Evaluate(ind *Individual[int, struct{}]) float64 { return 1 }

func TestDefaultsWithoutConfiguration(t *testing.T) {
	e, err := New[int, struct{}](minimalClient{}, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	require.NoError(t, e.Initialize())
	assert.Equal(t, DefaultPopulationSize, e.Size())
	assert.Equal(t, DefaultGeneLength, e.GeneLength())
	require.NoError(t, e.Evolve())
}

func TestPopulationSizeStableAcrossGenerations(t *testing.T) {
	client := &stubClient{cfg: Config{PopulationSize: 20, GeneLength: 5}}
	e := newTestEngine(t, client, 4)
	require.NoError(t, e.Initialize())

	for gen := 0; gen < 5; gen++ {
		require.NoError(t, e.Evolve())
		assert.Equal(t, 20, e.Size())
		e.ForEach(func(ind *Individual[int, struct{}]) {
			assert.Equal(t, 5, ind.Len())
		})
	}
	assert.Equal(t, 6, e.Generation())
}

func TestFitnessNormalization(t *testing.T) {
	var engine *Engine[int, struct{}]
	checked := false

	client := &stubClient{cfg: Config{PopulationSize: 10, GeneLength: 1}}
	client.evaluate = func(ind *Individual[int, struct{}]) float64 {
		return float64(ind.Gene(0))
	}
	client.onInit = func(e *Engine[int, struct{}]) { engine = e }
	client.onEvaluated = func(generation int) {
		checked = true
		sawMax := false
		engine.ForEach(func(ind *Individual[int, struct{}]) {
			assert.GreaterOrEqual(t, ind.Fitness, 0.0)
			assert.LessOrEqual(t, ind.Fitness, 1.0)
			if ind.Fitness == 1.0 {
				sawMax = true
			}
		})
		assert.True(t, sawMax, "best individual must normalize to exactly 1")
	}

	e := newTestEngine(t, client, 5)
	require.NoError(t, e.Initialize())
	require.NoError(t, e.Evolve())
	assert.True(t, checked)
}

func TestFitnessNormalizationAllZero(t *testing.T) {
	var engine *Engine[int, struct{}]
	checked := false

	client := &stubClient{cfg: Config{PopulationSize: 5, GeneLength: 1}}
	client.evaluate = func(ind *Individual[int, struct{}]) float64 { return 0 }
	client.onInit = func(e *Engine[int, struct{}]) { engine = e }
	client.onEvaluated = func(generation int) {
		checked = true
		engine.ForEach(func(ind *Individual[int, struct{}]) {
			assert.Equal(t, 0.0, ind.Fitness)
		})
	}

	e := newTestEngine(t, client, 6)
	require.NoError(t, e.Initialize())
	require.NoError(t, e.Evolve())
	assert.True(t, checked)
}

func TestNegativeFitnessAborts(t *testing.T) {
	client := &stubClient{cfg: Config{PopulationSize: 4, GeneLength: 3}}
	client.evaluate = func(ind *Individual[int, struct{}]) float64 { return -1 }

	e := newTestEngine(t, client, 7)
	require.NoError(t, e.Initialize())

	var before [][]int
	e.ForEach(func(ind *Individual[int, struct{}]) {
		genes := make([]int, len(ind.Genes))
		copy(genes, ind.Genes)
		before = append(before, genes)
	})

	assert.ErrorIs(t, e.Evolve(), ErrNegativeFitness)

	// The previous generation must remain the consistent state.
	assert.Equal(t, 1, e.Generation())
	var after [][]int
	e.ForEach(func(ind *Individual[int, struct{}]) {
		after = append(after, ind.Genes)
	})
	assert.Equal(t, before, after)
}

func TestSetMutationProbabilityClamps(t *testing.T) {
	e := newTestEngine(t, &stubClient{}, 8)

	assert.Equal(t, 0.0, e.SetMutationProbability(-0.5))
	assert.Equal(t, 1.0, e.SetMutationProbability(1.5))
	assert.Equal(t, 0.25, e.SetMutationProbability(0.25))
}

func TestMutationProbabilityZeroIsIdentity(t *testing.T) {
	client := &stubClient{cfg: Config{PopulationSize: 1, GeneLength: 10}}
	e := newTestEngine(t, client, 9)
	e.SetCombinator(WholeParentCombinator[int]{})
	e.SetMutationProbability(0)

	require.NoError(t, e.Initialize())
	var parent []int
	e.ForEach(func(ind *Individual[int, struct{}]) {
		parent = append([]int(nil), ind.Genes...)
	})

	require.NoError(t, e.Evolve())
	e.ForEach(func(ind *Individual[int, struct{}]) {
		assert.Equal(t, parent, ind.Genes)
	})
}

func TestMutationProbabilityOneReplacesEveryGene(t *testing.T) {
	client := &stubClient{cfg: Config{PopulationSize: 1, GeneLength: 10}}
	e := newTestEngine(t, client, 10)
	e.SetCombinator(WholeParentCombinator[int]{})
	e.SetMutationProbability(1)

	require.NoError(t, e.Initialize())

	// Seeding consumed genes 1..10; anything created later is > 10, so no
	// original gene value can survive a full mutation pass.
	require.NoError(t, e.Evolve())
	e.ForEach(func(ind *Individual[int, struct{}]) {
		for _, g := range ind.Genes {
			assert.Greater(t, g, 10)
		}
	})
}

func TestLifecycleHookOrder(t *testing.T) {
	var events []string
	client := &stubClient{cfg: Config{PopulationSize: 2, GeneLength: 2}}
	client.onInit = func(e *Engine[int, struct{}]) { events = append(events, "init") }
	client.onNewPopulation = func(gen int) { events = append(events, "pop") }
	client.onEvaluated = func(gen int) { events = append(events, "eval") }

	e := newTestEngine(t, client, 11)
	require.NoError(t, e.Initialize())
	require.NoError(t, e.Evolve())

	assert.Equal(t, []string{"init", "pop", "eval", "pop"}, events)
}

func TestRequestStopEndsRun(t *testing.T) {
	client := &stubClient{cfg: Config{PopulationSize: 2, GeneLength: 2}}
	e := newTestEngine(t, client, 12)
	client.onEvaluated = func(gen int) { e.RequestStop() }

	require.NoError(t, e.Initialize())
	require.NoError(t, e.Run())
	assert.Equal(t, 2, e.Generation())
}

func TestStopperEndsRun(t *testing.T) {
	generations := 0
	client := &stubClient{cfg: Config{PopulationSize: 2, GeneLength: 2}}
	client.onNewPopulation = func(gen int) { generations = gen }
	client.stopRequested = func() bool { return generations >= 4 }

	e := newTestEngine(t, client, 13)
	require.NoError(t, e.Initialize())
	require.NoError(t, e.Run())
	assert.Equal(t, 4, e.Generation())
}

func TestParallelEvaluation(t *testing.T) {
	client := &stubClient{cfg: Config{PopulationSize: 50, GeneLength: 4}}
	client.evaluate = func(ind *Individual[int, struct{}]) float64 {
		return float64(ind.Gene(0))
	}

	e := newTestEngine(t, client, 14)
	e.SetWorkers(8)
	require.NoError(t, e.Initialize())
	require.NoError(t, e.Evolve())
	assert.Equal(t, 50, e.Size())
}
