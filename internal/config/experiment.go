package config

import (
	"fmt"

	"hogsim/internal/hog"
	"hogsim/internal/strategy"
)

type Config struct {
	Run        Run           `yaml:",inline"`
	MaxScoring bool          `yaml:"max_scoring"`
	Baseline   strategy.Spec `yaml:"baseline"`
	Strategies []Entry       `yaml:"strategies"`
}

// Run holds the knobs that can also be set from the environment.
type Run struct {
	Seed     int64  `yaml:"seed" env:"HOG_SEED"`
	Samples  int    `yaml:"samples" env:"HOG_SAMPLES"`
	Workers  int    `yaml:"workers" env:"HOG_WORKERS"`
	Goal     int    `yaml:"goal" env:"HOG_GOAL"`
	LogLevel string `yaml:"log_level" env:"HOG_LOG_LEVEL"`
	Lang     string `yaml:"lang" env:"HOG_LANG"`
}

// Entry is one strategy to evaluate against the baseline.
type Entry struct {
	strategy.Spec `yaml:",inline"`
	Enabled       *bool `yaml:"enabled"`
}

func (e Entry) IsEnabled() bool { return e.Enabled == nil || *e.Enabled }

// Default mirrors the stock experiment set: roll-count sweep, then bacon and
// final strategies against always_roll(5).
func Default() *Config {
	off := false
	return &Config{
		Run: Run{
			Seed:     12345,
			Samples:  1000,
			Workers:  8,
			Goal:     hog.GoalScore,
			LogLevel: "info",
			Lang:     "en",
		},
		MaxScoring: true,
		Baseline:   strategy.Spec{Kind: strategy.KindAlwaysRoll, Rolls: 5},
		Strategies: []Entry{
			{Spec: strategy.Spec{Kind: strategy.KindAlwaysRoll, Rolls: 8}, Enabled: &off},
			{Spec: strategy.Spec{Kind: strategy.KindBacon}},
			{Spec: strategy.Spec{Kind: strategy.KindSwap}, Enabled: &off},
			{Spec: strategy.Spec{Kind: strategy.KindFinal}},
		},
	}
}

func (c *Config) Validate() error {
	if c.Run.Samples < 1 {
		return fmt.Errorf("samples must be at least 1, got %d", c.Run.Samples)
	}
	if c.Run.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Run.Workers)
	}
	// Turns against an opponent at GoalScore or more are illegal, so a
	// higher goal could never be reached.
	if c.Run.Goal < 1 || c.Run.Goal > hog.GoalScore {
		return fmt.Errorf("goal must be in [1, %d], got %d", hog.GoalScore, c.Run.Goal)
	}
	if err := c.Baseline.Validate(); err != nil {
		return fmt.Errorf("baseline: %w", err)
	}
	for _, e := range c.Strategies {
		if err := e.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Enabled returns the strategies switched on for this run.
func (c *Config) Enabled() []strategy.Spec {
	var out []strategy.Spec
	for _, e := range c.Strategies {
		if e.IsEnabled() {
			out = append(out, e.Spec)
		}
	}
	return out
}
