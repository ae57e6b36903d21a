package hog

import (
	"fmt"

	"hogsim/internal/dice"
)

// SelectDice picks four-sided dice (hog wild) when the two scores sum to a
// multiple of 7, six-sided otherwise.
func SelectDice(score, opponentScore int, set dice.Set) (dice.Dice, error) {
	if score < 0 {
		return nil, fmt.Errorf("select dice: negative score %d: %w", score, ErrPrecondition)
	}
	if (score+opponentScore)%7 == 0 {
		return set.FourSided, nil
	}
	return set.SixSided, nil
}

// IsSwap reports whether score0, zero-padded to two digits and reversed,
// starts with the last two digits of score1. 19/91 and 0/0 swap; 20/20 does
// not.
func IsSwap(score0, score1 int) bool {
	a := []byte(fmt.Sprintf("%02d", score0))
	for i, j := 0, len(a)-1; i < j; i, j = i+1, j-1 {
		a[i], a[j] = a[j], a[i]
	}
	b := fmt.Sprintf("%02d", score1)
	return string(a[:2]) == b[len(b)-2:]
}
