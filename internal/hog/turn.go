package hog

import (
	"fmt"
	"strconv"

	"hogsim/internal/dice"
	"hogsim/internal/util"
)

// RollDice rolls d exactly n times and returns the sum, or 0 if any outcome
// was a 1. Every die is rolled even after a 1 shows up.
func RollDice(n int, d dice.Dice) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("roll %d dice: must roll at least once: %w", n, ErrPrecondition)
	}
	sum, pigOut := 0, false
	for i := 0; i < n; i++ {
		v := d()
		if v == 1 {
			pigOut = true
		}
		sum += v
	}
	if pigOut {
		return 0, nil
	}
	return sum, nil
}

// FreeBacon is the score for rolling zero dice: one more than the largest
// digit of the opponent's score.
func FreeBacon(opponentScore int) int {
	best := 0
	for _, c := range strconv.Itoa(opponentScore) {
		if d := int(c - '0'); d > best {
			best = d
		}
	}
	return 1 + best
}

// PrimeBoost replaces a prime turn score with the next prime.
func PrimeBoost(points int) int {
	if util.IsPrime(points) {
		return util.NextPrime(points)
	}
	return points
}

// TakeTurn plays a single turn of n dice (zero means free bacon) against an
// opponent holding opponentScore and returns the points earned.
func TakeTurn(n, opponentScore int, d dice.Dice) (int, error) {
	if n < 0 || n > MaxRolls {
		return 0, fmt.Errorf("take turn: roll count %d outside [0, %d]: %w", n, MaxRolls, ErrPrecondition)
	}
	if opponentScore < 0 {
		return 0, fmt.Errorf("take turn: negative opponent score %d: %w", opponentScore, ErrPrecondition)
	}
	if opponentScore >= GoalScore {
		return 0, fmt.Errorf("take turn: opponent already at %d, game is over: %w", opponentScore, ErrPrecondition)
	}

	var points int
	if n == 0 {
		points = FreeBacon(opponentScore)
	} else {
		var err error
		if points, err = RollDice(n, d); err != nil {
			return 0, err
		}
	}
	return PrimeBoost(points), nil
}
