package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/text/language"

	"hogsim/internal/config"
	"hogsim/internal/dice"
	"hogsim/internal/experiment"
	"hogsim/internal/hog"
	"hogsim/internal/strategy"
	"hogsim/internal/util"
)

func main() {
	var cfgPath, dotenv, out, p0, p1, logLevel string
	var seed int64
	var n, workers int
	var runExperiments bool
	flag.StringVar(&cfgPath, "config", "", "experiment config (yaml)")
	flag.StringVar(&dotenv, "env", ".env", "dotenv file with HOG_* overrides")
	flag.StringVar(&out, "out", "", "write the game log (single) or summary (experiments) as json")
	flag.StringVar(&p0, "p0", strategy.KindFinal, "player 0 strategy kind for a single game")
	flag.StringVar(&p1, "p1", strategy.KindAlwaysRoll, "player 1 strategy kind for a single game")
	flag.StringVar(&logLevel, "log-level", "", "debug, info, warn or error")
	flag.Int64Var(&seed, "seed", 0, "seed (0 keeps the configured seed)")
	flag.IntVar(&n, "n", 0, "samples per estimate (0 keeps the configured value)")
	flag.IntVar(&workers, "workers", 0, "worker goroutines (0 keeps the configured value)")
	flag.BoolVar(&runExperiments, "r", false, "run strategy experiments")
	flag.BoolVar(&runExperiments, "run_experiments", false, "run strategy experiments")
	flag.Parse()

	cfg, err := config.Load(cfgPath, dotenv)
	if err != nil {
		exitf("config: %v", err)
	}
	if seed != 0 {
		cfg.Run.Seed = seed
	}
	if n > 0 {
		cfg.Run.Samples = n
	}
	if workers > 0 {
		cfg.Run.Workers = workers
	}
	if logLevel != "" {
		cfg.Run.LogLevel = logLevel
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "hogsim"})
	level, err := log.ParseLevel(cfg.Run.LogLevel)
	if err != nil {
		exitf("log level: %v", err)
	}
	logger.SetLevel(level)
	tag, err := language.Parse(cfg.Run.Lang)
	if err != nil {
		exitf("lang %q: %v", cfg.Run.Lang, err)
	}

	if !runExperiments {
		playSingle(cfg, logger, p0, p1, out)
		return
	}

	rep, err := experiment.NewRunner(cfg.Run, logger).Run(cfg)
	if err != nil {
		exitf("experiments: %v", err)
	}
	if err := rep.WriteText(os.Stdout, tag); err != nil {
		exitf("report: %v", err)
	}
	if out != "" {
		if err := os.WriteFile(out, experiment.MarshalPretty(rep), 0644); err != nil {
			exitf("write %s: %v", out, err)
		}
		fmt.Printf("Summary -> %s\n", filepath.Base(out))
	}
}

func playSingle(cfg *config.Config, logger *log.Logger, kind0, kind1, out string) {
	s0, err := strategy.New(specFor(cfg, kind0))
	if err != nil {
		exitf("p0: %v", err)
	}
	s1, err := strategy.New(specFor(cfg, kind1))
	if err != nil {
		exitf("p1: %v", err)
	}

	g := hog.NewGame(dice.NewSet(util.New(cfg.Run.Seed)), logger)
	g.Goal = cfg.Run.Goal
	g.Record = out != ""
	res := g.Play(s0, s1, 0, 0)

	if out != "" {
		if err := os.WriteFile(out, experiment.MarshalPretty(res), 0644); err != nil {
			exitf("write %s: %v", out, err)
		}
	}
	fmt.Printf("%s vs %s: %d-%d after %d turns, player %d wins\n", kind0, kind1, res.Score0, res.Score1, res.Turns, res.Winner())
}

// specFor resolves a kind to the configured parameters for it: the baseline
// first, then the experiment list, then the kind's defaults.
func specFor(cfg *config.Config, kind string) strategy.Spec {
	if cfg.Baseline.Kind == kind {
		return cfg.Baseline
	}
	for _, e := range cfg.Strategies {
		if e.Kind == kind {
			return e.Spec
		}
	}
	return strategy.Spec{Kind: kind, Rolls: strategy.DefaultRolls}
}

func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
