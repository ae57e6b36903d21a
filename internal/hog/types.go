package hog

import "errors"

const (
	GoalScore = 100 // first player to reach this wins
	MaxRolls  = 10  // most dice a player may roll in one turn
)

// ErrPrecondition marks a rule call made with arguments the rules forbid:
// a roll count outside [0, MaxRolls], a finished game, a negative score.
var ErrPrecondition = errors.New("hog: precondition violated")

// Strategy picks how many dice to roll given the player's own score and the
// opponent's score.
type Strategy func(score, opponentScore int) int

type Event struct {
	Turn    int            `json:"turn"`
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}

type Result struct {
	Score0  int     `json:"score0"`
	Score1  int     `json:"score1"`
	Turns   int     `json:"turns"`
	Swaps   int     `json:"swaps"`
	Forfeit bool    `json:"forfeit,omitempty"`
	Reason  string  `json:"reason,omitempty"`
	Events  []Event `json:"events,omitempty"`
}

// Winner is 0 when player 0 finished strictly ahead, 1 otherwise.
func (r Result) Winner() int {
	if r.Score0 > r.Score1 {
		return 0
	}
	return 1
}

func other(player int) int { return 1 - player }
