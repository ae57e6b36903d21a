package hog

import (
	"io"

	"github.com/charmbracelet/log"

	"hogsim/internal/dice"
)

// Game holds what stays fixed across one match: the goal, the dice and
// whether turns are recorded as events.
type Game struct {
	Goal   int
	Dice   dice.Set
	Record bool
	Logger *log.Logger
}

func NewGame(set dice.Set, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{Goal: GoalScore, Dice: set, Logger: logger}
}

// Play runs a match from 0-0 to the default goal.
func Play(strategy0, strategy1 Strategy, set dice.Set) (int, int) {
	res := NewGame(set, nil).Play(strategy0, strategy1, 0, 0)
	return res.Score0, res.Score1
}

// Play alternates turns, player 0 first, until a score reaches g.Goal.
//
// A strategy that asks for an illegal turn (bad roll count, or a turn after
// the opponent has already passed GoalScore) ends the match on the spot: the
// scores so far are returned with Forfeit set.
func (g *Game) Play(strategy0, strategy1 Strategy, score0, score1 int) Result {
	goal := g.Goal
	if goal <= 0 {
		goal = GoalScore
	}
	logger := g.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var events []Event
	turn := 0
	emit := func(typ string, payload map[string]any) {
		if g.Record {
			events = append(events, Event{Turn: turn, Type: typ, Payload: payload})
		}
	}

	strategies := [2]Strategy{strategy0, strategy1}
	scores := [2]int{score0, score1}
	res := Result{}
	player := 0

	for {
		turn++
		own, opp := scores[player], scores[other(player)]

		rolls := strategies[player](own, opp)
		d, err := SelectDice(own, opp, g.Dice)
		var points int
		if err == nil {
			points, err = TakeTurn(rolls, opp, d)
		}
		if err != nil {
			res.Forfeit = true
			res.Reason = err.Error()
			logger.Debug("match forfeited", "player", player, "turn", turn, "err", err)
			emit("Forfeit", map[string]any{"player": player, "rolls": rolls, "reason": err.Error()})
			turn--
			break
		}

		scores[player] += points
		switch {
		case rolls == 0:
			emit("FreeBacon", map[string]any{"player": player, "points": points})
		case points == 0:
			emit("PigOut", map[string]any{"player": player, "rolls": rolls})
		}
		if points == 0 {
			scores[other(player)] += rolls
		}
		emit("Turn", map[string]any{
			"player": player, "rolls": rolls, "points": points,
			"score0": scores[0], "score1": scores[1],
		})

		if IsSwap(scores[0], scores[1]) {
			scores[0], scores[1] = scores[1], scores[0]
			res.Swaps++
			emit("Swap", map[string]any{"score0": scores[0], "score1": scores[1]})
		}
		if scores[0] >= goal || scores[1] >= goal {
			break
		}
		player = other(player)
	}

	res.Score0, res.Score1 = scores[0], scores[1]
	res.Turns = turn
	emit("GameOver", map[string]any{"score0": res.Score0, "score1": res.Score1, "winner": res.Winner()})
	if g.Record {
		res.Events = events
	}
	logger.Debug("match finished", "score0", res.Score0, "score1", res.Score1, "turns", res.Turns, "swaps", res.Swaps)
	return res
}
