package hog

import (
	"errors"
	"testing"

	"hogsim/internal/dice"
)

func TestSelectDice(t *testing.T) {
	set := dice.Set{FourSided: dice.NewTestDice(4), SixSided: dice.NewTestDice(6)}
	tests := []struct {
		score, opponent int
		wantSides       int
	}{
		{3, 4, 4},
		{3, 5, 6},
		{0, 0, 4},
		{50, 20, 4},
		{13, 1, 4},
		{99, 1, 6},
	}
	for _, tt := range tests {
		d, err := SelectDice(tt.score, tt.opponent, set)
		if err != nil {
			t.Fatalf("SelectDice(%d, %d): unexpected error: %v", tt.score, tt.opponent, err)
		}
		if got := d(); got != tt.wantSides {
			t.Fatalf("SelectDice(%d, %d) picked the %d-sided die, want %d", tt.score, tt.opponent, got, tt.wantSides)
		}
	}
}

func TestSelectDiceNegativeScore(t *testing.T) {
	_, err := SelectDice(-1, 8, dice.TestSet(3))
	if !errors.Is(err, ErrPrecondition) {
		t.Fatalf("expected ErrPrecondition, got %v", err)
	}
}

func TestIsSwap(t *testing.T) {
	tests := []struct {
		score0, score1 int
		want           bool
	}{
		{19, 91, true},
		{91, 19, true},
		{0, 0, true},
		{1, 10, true},
		{10, 1, true},
		{20, 20, false},
		{20, 5, false},
		{20, 2, true},
		{23, 32, true},
		{23, 23, false},
		{5, 150, true},
		{12, 121, true},
		{101, 110, true},
		{44, 44, true},
	}
	for _, tt := range tests {
		if got := IsSwap(tt.score0, tt.score1); got != tt.want {
			t.Fatalf("IsSwap(%d, %d) = %v, want %v", tt.score0, tt.score1, got, tt.want)
		}
	}
}
