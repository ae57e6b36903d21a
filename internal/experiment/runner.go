package experiment

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"hogsim/internal/config"
	"hogsim/internal/dice"
	"hogsim/internal/hog"
	"hogsim/internal/strategy"
	"hogsim/internal/util"
)

// Runner estimates strategy statistics by repeated simulation.
type Runner struct {
	Samples int
	Workers int
	Seed    int64
	Goal    int
	Logger  *log.Logger
}

func NewRunner(run config.Run, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{
		Samples: run.Samples,
		Workers: run.Workers,
		Seed:    run.Seed,
		Goal:    run.Goal,
		Logger:  logger,
	}
}

// sample evaluates fn for jobs 0..n-1 on the worker pool and returns the
// mean. Results are summed in job order, so the answer does not depend on
// the number of workers.
func (r *Runner) sample(n int, fn func(i int) float64) float64 {
	workers := r.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}

	results := make([]float64, n)
	jobs := make(chan int, n)
	wg := sync.WaitGroup{}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = fn(i)
			}
		}()
	}
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	total := 0.0
	for _, v := range results {
		total += v
	}
	return total / float64(n)
}

// game builds a fresh match for job i with its own dice stream.
func (r *Runner) game(i int) *hog.Game {
	g := hog.NewGame(dice.NewSet(util.Stream(r.Seed, i)), r.Logger)
	if r.Goal > 0 {
		g.Goal = r.Goal
	}
	return g
}

// averageWinner is the mean Winner over r.Samples matches; job streams start
// at offset so the two seatings of AverageWinRate never share dice.
func (r *Runner) averageWinner(strategy0, strategy1 hog.Strategy, offset int) float64 {
	return r.sample(r.Samples, func(i int) float64 {
		return float64(Winner(r.game(offset+i), strategy0, strategy1))
	})
}

// AverageWinRate is the win rate of s against baseline, averaged over
// playing first and playing second.
func (r *Runner) AverageWinRate(s, baseline hog.Strategy) (WinRate, error) {
	if r.Samples < 1 {
		return WinRate{}, fmt.Errorf("average win rate: need at least one sample, got %d", r.Samples)
	}
	if baseline == nil {
		baseline = strategy.AlwaysRoll(strategy.DefaultRolls)
	}
	asPlayer0 := 1 - r.averageWinner(s, baseline, 0)
	asPlayer1 := r.averageWinner(baseline, s, r.Samples)
	return WinRate{
		AsPlayer0: asPlayer0,
		AsPlayer1: asPlayer1,
		WinRate:   (asPlayer0 + asPlayer1) / 2,
	}, nil
}

// MaxScoringNumRolls runs the roll-count sweep on fair dice with the given
// number of sides.
func (r *Runner) MaxScoringNumRolls(sides int) (int, error) {
	d := dice.Fair(sides, util.New(r.Seed+int64(sides)))
	return MaxScoringNumRolls(d, r.Samples)
}

// Run performs the configured experiments and collects them in a Report.
func (r *Runner) Run(cfg *config.Config) (*Report, error) {
	if r.Logger == nil {
		r.Logger = log.New(io.Discard)
	}
	start := time.Now()
	rep := &Report{
		RunID:    uuid.NewString(),
		Seed:     r.Seed,
		Samples:  r.Samples,
		Workers:  r.Workers,
		Goal:     r.Goal,
		Baseline: cfg.Baseline.Label(),
	}
	r.Logger.Info("experiments started", "run", rep.RunID, "seed", r.Seed, "samples", r.Samples, "workers", r.Workers)

	if cfg.MaxScoring {
		for _, sides := range []int{6, 4} {
			n, err := r.MaxScoringNumRolls(sides)
			if err != nil {
				return nil, fmt.Errorf("max scoring num rolls (%d-sided): %w", sides, err)
			}
			rep.MaxScoring = append(rep.MaxScoring, MaxScoring{Sides: sides, NumRolls: n})
			r.Logger.Info("max scoring num rolls", "sides", sides, "rolls", n)
		}
	}

	baseline, err := strategy.New(cfg.Baseline)
	if err != nil {
		return nil, fmt.Errorf("baseline: %w", err)
	}
	for _, spec := range cfg.Enabled() {
		s, err := strategy.New(spec)
		if err != nil {
			return nil, err
		}
		wr, err := r.AverageWinRate(s, baseline)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", spec.Label(), err)
		}
		wr.Strategy = spec.Label()
		rep.WinRates = append(rep.WinRates, wr)
		r.Logger.Info("win rate", "strategy", wr.Strategy, "win_rate", wr.WinRate, "as_player0", wr.AsPlayer0, "as_player1", wr.AsPlayer1)
	}

	rep.Elapsed = time.Since(start).Round(time.Millisecond).String()
	r.Logger.Info("experiments finished", "run", rep.RunID, "elapsed", rep.Elapsed)
	return rep, nil
}
