package strategy

import (
	"math"

	"hogsim/internal/hog"
)

// FinalStrategy combines the rules into one heuristic:
//
//   - take free bacon when it wins outright without handing over a swap;
//   - otherwise roll the count that lets the opponent's next score mirror
//     ours, when we are behind;
//   - otherwise, while score <= 94, roll the second smallest count whose
//     GeneExpectation beats free bacon (or the only one);
//   - otherwise roll 5 when free bacon would swap us ahead, else take it.
func FinalStrategy(score, opponentScore int) int {
	setup := 0
	if opponentScore > score {
		for n := 1; n <= hog.MaxRolls; n++ {
			if hog.IsSwap(n+opponentScore, score) {
				setup = n
			}
		}
	}

	free := hog.PrimeBoost(1 + maxDigit(opponentScore%100))

	var candidates []int
	for n := 1; n <= hog.MaxRolls; n++ {
		if GeneExpectation(n, score, opponentScore) > float64(free) {
			candidates = append(candidates, n)
		}
	}

	switch {
	case free+score >= hog.GoalScore && !hog.IsSwap(free+score, opponentScore):
		return 0
	case setup > 0:
		return setup
	case len(candidates) > 0 && score <= 94:
		if len(candidates) >= 2 {
			return candidates[1]
		}
		return candidates[0]
	case hog.IsSwap(free+score, opponentScore) && free+score > opponentScore:
		return DefaultRolls
	default:
		return 0
	}
}

// GeneExpectation is the heuristic turn value of rolling n dice. It is not a
// true expectation; outcomes are compared against it as-is.
func GeneExpectation(n, score, opponentScore int) float64 {
	k := float64(n)
	if (score+opponentScore)%7 == 0 {
		return k*math.Pow((2+3+4)/4.0, k) - k*(1-math.Pow(3/4.0, k))
	}
	return k*math.Pow((2+3+4+5+6)/6.0, k) - k*(1-math.Pow(5/6.0, k))
}

func maxDigit(n int) int {
	if n < 0 {
		n = -n
	}
	best := 0
	for {
		if d := n % 10; d > best {
			best = d
		}
		n /= 10
		if n == 0 {
			return best
		}
	}
}
