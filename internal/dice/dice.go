package dice

import (
	"fmt"
	"math/rand/v2"
)

// Dice returns one outcome per call. An outcome of 1 is a pig out.
type Dice func() int

// Set holds the two dice a turn can be played with.
type Set struct {
	FourSided Dice
	SixSided  Dice
}

// Fair returns a uniform die with the given number of sides backed by rng.
func Fair(sides int, rng *rand.Rand) Dice {
	if sides < 1 {
		panic(fmt.Sprintf("dice: invalid side count %d", sides))
	}
	return func() int { return rng.IntN(sides) + 1 }
}

// NewSet builds fair four- and six-sided dice sharing one generator.
func NewSet(rng *rand.Rand) Set {
	return Set{
		FourSided: Fair(4, rng),
		SixSided:  Fair(6, rng),
	}
}

// NewTestDice returns a die that cycles through outcomes in order.
//
//	d := NewTestDice(4, 1, 2)
//	d(), d(), d(), d() // 4, 1, 2, 4
func NewTestDice(outcomes ...int) Dice {
	if len(outcomes) == 0 {
		panic("dice: test dice need at least one outcome")
	}
	seq := append([]int(nil), outcomes...)
	i := 0
	return func() int {
		v := seq[i]
		i = (i + 1) % len(seq)
		return v
	}
}

// TestSet uses the same cycling test die for both sides of the set.
func TestSet(outcomes ...int) Set {
	d := NewTestDice(outcomes...)
	return Set{FourSided: d, SixSided: d}
}
