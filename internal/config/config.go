// Package config loads the YAML run configuration for the seeker demo.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure.
type Config struct {
	Seed    int64     `yaml:"seed"`
	GA      GAConfig  `yaml:"ga"`
	Sim     SimConfig `yaml:"sim"`
	Run     RunConfig `yaml:"run"`
	Logging LogConfig `yaml:"logging"`
}

// GAConfig defines the genetic algorithm parameters.
type GAConfig struct {
	Population int     `yaml:"population"`
	MutationP  float64 `yaml:"mutation_p"`
	Combinator string  `yaml:"combinator"` // elementwise|breakpoint|wholeparent
	Selector   string  `yaml:"selector"`   // rejection|cumulative
	Workers    int     `yaml:"workers"`
}

// SimConfig defines the simulated scene.
type SimConfig struct {
	Width       float64        `yaml:"width"`
	Height      float64        `yaml:"height"`
	LifeSpan    int            `yaml:"life_span"`
	ForceFactor float64        `yaml:"force_factor"`
	Dt          float64        `yaml:"dt"`
	Drag        float64        `yaml:"drag"`
	Radius      float64        `yaml:"radius"` // creature radius
	Start       PointConfig    `yaml:"start"`
	Target      CircleConfig   `yaml:"target"`
	Obstacles   []CircleConfig `yaml:"obstacles"`
}

// PointConfig is a 2D position.
type PointConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// CircleConfig is a circular scene object.
type CircleConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Radius float64 `yaml:"radius"`
}

// RunConfig defines the training run bounds.
type RunConfig struct {
	Generations      int     `yaml:"generations"`
	CompleteFraction float64 `yaml:"complete_fraction"`
}

// LogConfig defines logging parameters.
type LogConfig struct {
	EveryGenSummary bool   `yaml:"every_gen_summary"`
	CSVPath         string `yaml:"csv_path"`
	JSONPath        string `yaml:"json_path"`
}

// Load reads a YAML config file and returns a Config with defaults applied.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	applyDefaults(cfg)
	return cfg, nil
}

// Default returns the built-in configuration without reading a file.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Seed == 0 {
		cfg.Seed = 1337
	}
	if cfg.GA.Population == 0 {
		cfg.GA.Population = 100
	}
	if cfg.GA.MutationP == 0 {
		cfg.GA.MutationP = 0.001
	}
	if cfg.GA.Combinator == "" {
		cfg.GA.Combinator = "breakpoint"
	}
	if cfg.GA.Selector == "" {
		cfg.GA.Selector = "rejection"
	}
	if cfg.GA.Workers == 0 {
		cfg.GA.Workers = 1
	}
	if cfg.Sim.Width == 0 {
		cfg.Sim.Width = 600
	}
	if cfg.Sim.Height == 0 {
		cfg.Sim.Height = 600
	}
	if cfg.Sim.LifeSpan == 0 {
		cfg.Sim.LifeSpan = 250
	}
	if cfg.Sim.ForceFactor == 0 {
		cfg.Sim.ForceFactor = 15
	}
	if cfg.Sim.Dt == 0 {
		cfg.Sim.Dt = 0.02
	}
	if cfg.Sim.Drag == 0 {
		cfg.Sim.Drag = 2
	}
	if cfg.Sim.Radius == 0 {
		cfg.Sim.Radius = 10
	}
	if cfg.Sim.Start == (PointConfig{}) {
		cfg.Sim.Start = PointConfig{X: cfg.Sim.Width / 2, Y: cfg.Sim.Height - 100}
	}
	if cfg.Sim.Target == (CircleConfig{}) {
		cfg.Sim.Target = CircleConfig{X: cfg.Sim.Width * 2 / 3, Y: 40, Radius: 20}
	}
	if cfg.Sim.Obstacles == nil {
		cfg.Sim.Obstacles = []CircleConfig{
			{X: cfg.Sim.Width / 2, Y: cfg.Sim.Height / 2, Radius: 100},
		}
	}
	if cfg.Run.Generations == 0 {
		cfg.Run.Generations = 500
	}
	if cfg.Run.CompleteFraction == 0 {
		cfg.Run.CompleteFraction = 0.8
	}
	if cfg.Logging.CSVPath == "" {
		cfg.Logging.CSVPath = "runs/run.csv"
	}
	if cfg.Logging.JSONPath == "" {
		cfg.Logging.JSONPath = "runs/run.jsonl"
	}
}
