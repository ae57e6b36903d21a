package experiment

import (
	"fmt"

	"hogsim/internal/dice"
	"hogsim/internal/hog"
)

// MakeAveraged returns a function that calls fn numSamples times with the
// same argument and returns the mean. The first error stops the run.
func MakeAveraged[A any](fn func(A) (float64, error), numSamples int) func(A) (float64, error) {
	return func(arg A) (float64, error) {
		if numSamples < 1 {
			return 0, fmt.Errorf("make averaged: need at least one sample, got %d", numSamples)
		}
		total := 0.0
		for i := 0; i < numSamples; i++ {
			v, err := fn(arg)
			if err != nil {
				return 0, err
			}
			total += v
		}
		return total / float64(numSamples), nil
	}
}

// MaxScoringNumRolls returns the roll count in 1..MaxRolls with the highest
// average RollDice score over numSamples turns. Ties go to the smaller count.
func MaxScoringNumRolls(d dice.Dice, numSamples int) (int, error) {
	roll := func(n int) (float64, error) {
		v, err := hog.RollDice(n, d)
		return float64(v), err
	}
	averaged := MakeAveraged(roll, numSamples)

	best, bestAvg := 0, 0.0
	for n := 1; n <= hog.MaxRolls; n++ {
		avg, err := averaged(n)
		if err != nil {
			return 0, err
		}
		if best == 0 || avg > bestAvg {
			best, bestAvg = n, avg
		}
	}
	return best, nil
}

// Winner plays one match from 0-0 and returns 0 if player 0 finished ahead,
// 1 otherwise.
func Winner(g *hog.Game, strategy0, strategy1 hog.Strategy) int {
	return g.Play(strategy0, strategy1, 0, 0).Winner()
}
