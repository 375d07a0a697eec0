// Command gentext evolves a population of random strings toward a target
// string. It is the smallest possible demonstration of the engine: genes are
// single characters, entities are empty, and fitness counts position
// matches.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/rj79/genetic"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz "

type textClient struct {
	target     []byte
	population int
	mutationP  float64
	verbose    bool

	engine     *genetic.Engine[byte, struct{}]
	generation int
	found      bool
}

func (c *textClient) Configuration() genetic.Config {
	return genetic.Config{
		PopulationSize:      c.population,
		GeneLength:          len(c.target),
		MutationProbability: c.mutationP,
	}
}

func (c *textClient) CreateGene(rng *rand.Rand) byte {
	return alphabet[rng.Intn(len(alphabet))]
}

func (c *textClient) CreateIndividual() struct{} {
	return struct{}{}
}

func (c *textClient) Evaluate(ind *genetic.Individual[byte, struct{}]) float64 {
	fitness := 1.0
	matches := 0
	for i, g := range ind.Genes {
		if g == c.target[i] {
			matches++
			fitness += 10
		}
	}
	if matches == len(c.target) {
		c.found = true
	}
	return fitness * fitness
}

func (c *textClient) OnInit(e *genetic.Engine[byte, struct{}]) {
	c.engine = e
}

func (c *textClient) OnNewPopulation(generation int) {
	c.generation = generation
}

func (c *textClient) OnEvaluated(generation int) {
	if !c.verbose {
		return
	}
	best := ""
	bestFitness := -1.0
	c.engine.ForEach(func(ind *genetic.Individual[byte, struct{}]) {
		if ind.Fitness > bestFitness {
			bestFitness = ind.Fitness
			best = string(ind.Genes)
		}
	})
	fmt.Printf("Gen %4d | best %q\n", generation, best)
}

func (c *textClient) StopRequested() bool {
	return c.found
}

func main() {
	target := flag.String("target", "win", "target string to evolve")
	population := flag.Int("population", 8, "population size")
	mutation := flag.Float64("mutation", 0.01, "per-gene mutation probability")
	seed := flag.Int64("seed", 0, "random seed (0 for time-based)")
	verbose := flag.Bool("verbose", false, "print the best genome each generation")
	flag.Parse()

	if *target == "" {
		fmt.Fprintln(os.Stderr, "target must not be empty")
		os.Exit(1)
	}

	var rng *rand.Rand
	if *seed != 0 {
		rng = rand.New(rand.NewSource(*seed))
	}

	client := &textClient{
		target:     []byte(*target),
		population: *population,
		mutationP:  *mutation,
		verbose:    *verbose,
	}

	engine, err := genetic.New[byte, struct{}](client, rng)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating engine: %v\n", err)
		os.Exit(1)
	}

	if err := engine.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing engine: %v\n", err)
		os.Exit(1)
	}

	start := time.Now()
	if err := engine.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running engine: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Found %q in %d generations (%v)\n",
		*target, client.generation, time.Since(start).Round(time.Millisecond))
}
