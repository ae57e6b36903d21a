package experiment

import (
	"encoding/json"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type MaxScoring struct {
	Sides    int `json:"sides"`
	NumRolls int `json:"num_rolls"`
}

type WinRate struct {
	Strategy  string  `json:"strategy"`
	WinRate   float64 `json:"win_rate"`
	AsPlayer0 float64 `json:"as_player0"`
	AsPlayer1 float64 `json:"as_player1"`
}

type Report struct {
	RunID      string       `json:"run_id"`
	Seed       int64        `json:"seed"`
	Samples    int          `json:"samples"`
	Workers    int          `json:"workers"`
	Goal       int          `json:"goal"`
	Baseline   string       `json:"baseline"`
	MaxScoring []MaxScoring `json:"max_scoring,omitempty"`
	WinRates   []WinRate    `json:"win_rates,omitempty"`
	Elapsed    string       `json:"elapsed,omitempty"`
}

// WriteText prints the report one result per line, with numbers formatted
// for tag.
func (r *Report) WriteText(w io.Writer, tag language.Tag) error {
	p := message.NewPrinter(tag)
	if _, err := p.Fprintf(w, "%d samples per estimate, seed %d\n", r.Samples, r.Seed); err != nil {
		return err
	}
	for _, m := range r.MaxScoring {
		if _, err := p.Fprintf(w, "Max scoring num rolls for %d-sided dice: %d\n", m.Sides, m.NumRolls); err != nil {
			return err
		}
	}
	for _, wr := range r.WinRates {
		if _, err := p.Fprintf(w, "%s win rate vs %s: %.4f\n", wr.Strategy, r.Baseline, wr.WinRate); err != nil {
			return err
		}
	}
	return nil
}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
