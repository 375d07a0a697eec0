// Command seeker trains creatures to fly from a start position to a target
// through a field of obstacles. Each gene is the thrust force applied during
// one tick of a creature's life. The scene and the run parameters come from
// a YAML config file.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"sync"
	"time"

	"github.com/rj79/genetic"
	"github.com/rj79/genetic/internal/config"
	"github.com/rj79/genetic/internal/logging"
	"github.com/rj79/genetic/internal/sim"
	"github.com/rj79/genetic/vec"
)

type seekerClient struct {
	cfg    *config.Config
	world  *sim.World
	logger *logging.Logger

	mu        sync.Mutex
	raw       []float64
	completed int
	bestTick  int

	stop bool
}

func newSeekerClient(cfg *config.Config, world *sim.World, logger *logging.Logger) *seekerClient {
	return &seekerClient{
		cfg:      cfg,
		world:    world,
		logger:   logger,
		bestTick: -1,
	}
}

func (c *seekerClient) Configuration() genetic.Config {
	return genetic.Config{
		PopulationSize:      c.cfg.GA.Population,
		GeneLength:          c.cfg.Sim.LifeSpan,
		MutationProbability: c.cfg.GA.MutationP,
	}
}

func (c *seekerClient) CreateGene(rng *rand.Rand) vec.Vec2 {
	size := rng.Float64() * c.cfg.Sim.ForceFactor
	return vec.RandomUnit(rng).Scale(size)
}

func (c *seekerClient) CreateIndividual() *sim.Creature {
	return sim.NewCreature(c.world.Start, c.cfg.Sim.Radius)
}

func (c *seekerClient) Evaluate(ind *genetic.Individual[vec.Vec2, *sim.Creature]) float64 {
	creature := ind.Entity
	c.world.Run(creature, ind.Genes)
	fitness := c.world.Fitness(creature)

	c.mu.Lock()
	c.raw = append(c.raw, fitness)
	if creature.Completed {
		c.completed++
		if c.bestTick < 0 || creature.ArrivalTick < c.bestTick {
			c.bestTick = creature.ArrivalTick
		}
	}
	c.mu.Unlock()

	return fitness
}

func (c *seekerClient) OnEvaluated(generation int) {
	summary := logging.Summarize(generation, c.raw, c.completed)
	c.logger.LogGeneration(summary)
	if c.cfg.Logging.EveryGenSummary {
		c.logger.Print(summary)
	}

	if c.completed > 0 &&
		float64(c.completed) >= c.cfg.Run.CompleteFraction*float64(len(c.raw)) {
		c.stop = true
	}
}

func (c *seekerClient) OnNewPopulation(generation int) {
	c.raw = c.raw[:0]
	c.completed = 0
}

func (c *seekerClient) StopRequested() bool {
	return c.stop
}

func main() {
	configPath := flag.String("config", "configs/seeker.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	world := buildWorld(cfg)

	logger, err := logging.NewLogger(cfg.Logging.CSVPath, cfg.Logging.JSONPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	fmt.Printf("Seeker - %gx%g world, %d obstacles\n", world.Width, world.Height, len(world.Obstacles))
	fmt.Printf("Population: %d, Life span: %d ticks, Mutation: %g\n",
		cfg.GA.Population, cfg.Sim.LifeSpan, cfg.GA.MutationP)
	fmt.Printf("Combinator: %s, Selector: %s\n", cfg.GA.Combinator, cfg.GA.Selector)
	fmt.Println("---")

	rng := rand.New(rand.NewSource(cfg.Seed))
	client := newSeekerClient(cfg, world, logger)

	engine, err := genetic.New[vec.Vec2, *sim.Creature](client, rng)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating engine: %v\n", err)
		os.Exit(1)
	}
	engine.SetCombinator(combinatorFor(cfg.GA.Combinator))
	engine.SetSelector(selectorFor(cfg.GA.Selector))
	engine.SetWorkers(cfg.GA.Workers)

	if err := engine.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing engine: %v\n", err)
		os.Exit(1)
	}

	startTime := time.Now()
	generations := 0
	for gen := 1; gen <= cfg.Run.Generations; gen++ {
		if err := engine.Evolve(); err != nil {
			fmt.Fprintf(os.Stderr, "Error in generation %d: %v\n", gen, err)
			os.Exit(1)
		}
		generations = gen
		if client.StopRequested() {
			break
		}
	}

	elapsed := time.Since(startTime)
	fmt.Println("---")
	fmt.Printf("Done after %d generations in %v\n", generations, elapsed.Round(time.Millisecond))
	if client.bestTick >= 0 {
		fmt.Printf("Fastest arrival: %d ticks\n", client.bestTick)
	}
}

func buildWorld(cfg *config.Config) *sim.World {
	obstacles := make([]sim.Circle, len(cfg.Sim.Obstacles))
	for i, ob := range cfg.Sim.Obstacles {
		obstacles[i] = sim.Circle{Pos: vec.New(ob.X, ob.Y), Radius: ob.Radius}
	}

	return &sim.World{
		Width:     cfg.Sim.Width,
		Height:    cfg.Sim.Height,
		Start:     vec.New(cfg.Sim.Start.X, cfg.Sim.Start.Y),
		Target:    sim.Circle{Pos: vec.New(cfg.Sim.Target.X, cfg.Sim.Target.Y), Radius: cfg.Sim.Target.Radius},
		Obstacles: obstacles,
		LifeSpan:  cfg.Sim.LifeSpan,
		Dt:        cfg.Sim.Dt,
		Drag:      cfg.Sim.Drag,
	}
}

func combinatorFor(name string) genetic.Combinator[vec.Vec2] {
	switch name {
	case "elementwise":
		return genetic.ElementWiseCombinator[vec.Vec2]{}
	case "wholeparent":
		return genetic.WholeParentCombinator[vec.Vec2]{}
	default:
		return genetic.BreakpointCombinator[vec.Vec2]{}
	}
}

func selectorFor(name string) genetic.Selector[vec.Vec2, *sim.Creature] {
	switch name {
	case "cumulative":
		return genetic.CumulativeSelector[vec.Vec2, *sim.Creature]{}
	default:
		return genetic.RejectionSelector[vec.Vec2, *sim.Creature]{}
	}
}
