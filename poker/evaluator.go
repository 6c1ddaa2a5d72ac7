package poker

import (
	"errors"
	"fmt"
)

// HandScore orders evaluated hands. Lower scores are stronger and equal
// scores tie.
type HandScore int32

// Evaluator scores the best five card hand contained in 5 to 7 cards.
type Evaluator interface {
	Evaluate(cards []Card) (HandScore, string, error)
}

// ErrInvalidHand is returned for hands an evaluator cannot score.
var ErrInvalidHand = errors.New("invalid hand")

// checkHand rejects hands of the wrong size, with masked or duplicate cards.
func checkHand(cards []Card) error {
	if len(cards) < 5 || len(cards) > 7 {
		return fmt.Errorf("%w: %d cards", ErrInvalidHand, len(cards))
	}
	var seen Hand
	for _, c := range cards {
		if !c.Valid() {
			return fmt.Errorf("%w: hidden card", ErrInvalidHand)
		}
		if seen.HasCard(c) {
			return fmt.Errorf("%w: duplicate %s", ErrInvalidHand, c)
		}
		seen.AddCard(c)
	}
	return nil
}

// NewEvaluator returns the evaluator registered under name. An empty name
// selects the default.
func NewEvaluator(name string) (Evaluator, error) {
	switch name {
	case "", "chehsunliu":
		return ChehsunliuEvaluator{}, nil
	case "paulhankin":
		return PaulhankinEvaluator{}, nil
	default:
		return nil, fmt.Errorf("unknown evaluator %q", name)
	}
}
