package strategy

import (
	"hogsim/internal/hog"
)

const (
	DefaultRolls  = 5
	DefaultMargin = 8
)

// AlwaysRoll ignores both scores and always rolls n dice.
func AlwaysRoll(n int) hog.Strategy {
	return func(score, opponentScore int) int {
		return n
	}
}

// freeBacon is what rolling zero dice would score, prime boost included.
func freeBacon(opponentScore int) int {
	return hog.PrimeBoost(hog.FreeBacon(opponentScore))
}

// Bacon rolls 0 when free bacon is worth at least margin points and rolls
// otherwise.
func Bacon(margin, rolls int) hog.Strategy {
	return func(score, opponentScore int) int {
		if freeBacon(opponentScore) >= margin {
			return 0
		}
		return rolls
	}
}

// BaconStrategy is Bacon with the default margin and roll count.
func BaconStrategy(score, opponentScore int) int {
	return Bacon(DefaultMargin, DefaultRolls)(score, opponentScore)
}

// Swap rolls 0 when free bacon would trigger a swap that leaves the player
// ahead, and rolls otherwise.
func Swap(rolls int) hog.Strategy {
	return func(score, opponentScore int) int {
		after := score + freeBacon(opponentScore)
		if hog.IsSwap(after, opponentScore) && opponentScore > after {
			return 0
		}
		return rolls
	}
}

func SwapStrategy(score, opponentScore int) int {
	return Swap(DefaultRolls)(score, opponentScore)
}
