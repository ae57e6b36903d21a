package hog

import (
	"errors"
	"testing"

	"hogsim/internal/dice"
)

func TestRollDice(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		outcomes []int
		want     int
	}{
		{name: "sum", n: 2, outcomes: []int{4, 6}, want: 10},
		{name: "single", n: 1, outcomes: []int{5}, want: 5},
		{name: "pig out", n: 3, outcomes: []int{4, 1, 6}, want: 0},
		{name: "pig out last die", n: 4, outcomes: []int{2, 2, 2, 1}, want: 0},
		{name: "cycles outcomes", n: 5, outcomes: []int{2, 3}, want: 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RollDice(tt.n, dice.NewTestDice(tt.outcomes...))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("RollDice(%d) = %d, want %d", tt.n, got, tt.want)
			}
		})
	}
}

func TestRollDiceConsumesEveryDie(t *testing.T) {
	d := dice.NewTestDice(1, 2, 3, 4)
	if _, err := RollDice(3, d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next := d(); next != 4 {
		t.Fatalf("expected 4 to be the next outcome, got %d", next)
	}
}

func TestRollDiceRejectsZero(t *testing.T) {
	_, err := RollDice(0, dice.NewTestDice(3))
	if !errors.Is(err, ErrPrecondition) {
		t.Fatalf("expected ErrPrecondition, got %v", err)
	}
}

func TestTakeTurnAllOnesIsZero(t *testing.T) {
	for n := 1; n <= MaxRolls; n++ {
		got, err := TakeTurn(n, 0, dice.NewTestDice(1))
		if err != nil {
			t.Fatalf("n=%d: unexpected error: %v", n, err)
		}
		if got != 0 {
			t.Fatalf("n=%d: expected 0, got %d", n, got)
		}
	}
}

func TestTakeTurn(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		opponent int
		outcomes []int
		want     int
	}{
		{name: "free bacon not prime", n: 0, opponent: 27, outcomes: []int{6}, want: 8},
		{name: "free bacon prime boosted", n: 0, opponent: 16, outcomes: []int{6}, want: 11},
		{name: "free bacon zero opponent", n: 0, opponent: 0, outcomes: []int{6}, want: 1},
		{name: "free bacon single digit", n: 0, opponent: 4, outcomes: []int{6}, want: 7},
		{name: "rolled prime boosted", n: 2, opponent: 0, outcomes: []int{5, 6}, want: 13},
		{name: "rolled composite", n: 2, opponent: 0, outcomes: []int{4, 6}, want: 10},
		{name: "pig out not boosted", n: 2, opponent: 0, outcomes: []int{1, 6}, want: 0},
		{name: "two is prime", n: 1, opponent: 50, outcomes: []int{2}, want: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TakeTurn(tt.n, tt.opponent, dice.NewTestDice(tt.outcomes...))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("TakeTurn(%d, %d) = %d, want %d", tt.n, tt.opponent, got, tt.want)
			}
		})
	}
}

func TestTakeTurnPreconditions(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		opponent int
	}{
		{name: "negative rolls", n: -1, opponent: 0},
		{name: "too many rolls", n: MaxRolls + 1, opponent: 0},
		{name: "game over", n: 5, opponent: GoalScore},
		{name: "negative opponent", n: 5, opponent: -3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := TakeTurn(tt.n, tt.opponent, dice.NewTestDice(3))
			if !errors.Is(err, ErrPrecondition) {
				t.Fatalf("expected ErrPrecondition, got %v", err)
			}
		})
	}
}

func TestFreeBacon(t *testing.T) {
	cases := map[int]int{0: 1, 7: 8, 27: 8, 91: 10, 99: 10, 10: 2}
	for opp, want := range cases {
		if got := FreeBacon(opp); got != want {
			t.Fatalf("FreeBacon(%d) = %d, want %d", opp, got, want)
		}
	}
}
