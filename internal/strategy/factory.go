package strategy

import (
	"fmt"
	"sort"

	"hogsim/internal/hog"
)

const (
	KindAlwaysRoll = "always_roll"
	KindBacon      = "bacon"
	KindSwap       = "swap"
	KindFinal      = "final"
)

// Spec describes a strategy in configuration. Zero Rolls/Margin fall back to
// the defaults for bacon and swap; always_roll takes Rolls as given.
type Spec struct {
	Name   string `yaml:"name" json:"name"`
	Kind   string `yaml:"kind" json:"kind"`
	Rolls  int    `yaml:"rolls" json:"rolls,omitempty"`
	Margin int    `yaml:"margin" json:"margin,omitempty"`
}

// Label is the name used in reports.
func (s Spec) Label() string {
	if s.Name != "" {
		return s.Name
	}
	switch s.Kind {
	case KindAlwaysRoll:
		return fmt.Sprintf("always_roll(%d)", s.Rolls)
	case KindBacon, KindSwap:
		return s.Kind + "_strategy"
	case KindFinal:
		return "final_strategy"
	}
	return s.Kind
}

func (s Spec) Validate() error {
	if _, ok := builders[s.Kind]; !ok {
		return fmt.Errorf("strategy %q: unknown kind %q (known: %v)", s.Label(), s.Kind, Kinds())
	}
	if s.Rolls < 0 || s.Rolls > hog.MaxRolls {
		return fmt.Errorf("strategy %q: rolls %d outside [0, %d]", s.Label(), s.Rolls, hog.MaxRolls)
	}
	if s.Margin < 0 {
		return fmt.Errorf("strategy %q: negative margin %d", s.Label(), s.Margin)
	}
	return nil
}

var builders = map[string]func(Spec) hog.Strategy{
	KindAlwaysRoll: func(s Spec) hog.Strategy { return AlwaysRoll(s.Rolls) },
	KindBacon: func(s Spec) hog.Strategy {
		return Bacon(orDefault(s.Margin, DefaultMargin), orDefault(s.Rolls, DefaultRolls))
	},
	KindSwap:  func(s Spec) hog.Strategy { return Swap(orDefault(s.Rolls, DefaultRolls)) },
	KindFinal: func(Spec) hog.Strategy { return FinalStrategy },
}

// New builds the strategy a Spec describes.
func New(s Spec) (hog.Strategy, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return builders[s.Kind](s), nil
}

// Kinds lists the known strategy kinds, sorted.
func Kinds() []string {
	out := make([]string, 0, len(builders))
	for k := range builders {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func orDefault(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}
