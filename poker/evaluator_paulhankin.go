package poker

import (
	"fmt"

	phpoker "github.com/paulhankin/poker"
)

// PaulhankinEvaluator scores hands with github.com/paulhankin/poker. That
// library ranks higher-is-stronger so scores are negated.
type PaulhankinEvaluator struct{}

func (PaulhankinEvaluator) Evaluate(cards []Card) (HandScore, string, error) {
	if err := checkHand(cards); err != nil {
		return 0, "", err
	}
	converted := make([]phpoker.Card, len(cards))
	for i, c := range cards {
		pc, err := toPaulhankin(c)
		if err != nil {
			return 0, "", err
		}
		converted[i] = pc
	}

	var best [5]phpoker.Card
	var score int16
	switch len(converted) {
	case 7:
		var seven [7]phpoker.Card
		copy(seven[:], converted)
		score = phpoker.Eval7(&seven)
		desc, err := phpoker.Describe(seven[:])
		if err != nil {
			return 0, "", err
		}
		return HandScore(-int32(score)), desc, nil
	case 5:
		copy(best[:], converted)
		score = phpoker.Eval5(&best)
	case 6:
		first := true
		for skip := range 6 {
			var five [5]phpoker.Card
			n := 0
			for i, c := range converted {
				if i != skip {
					five[n] = c
					n++
				}
			}
			if s := phpoker.Eval5(&five); first || s > score {
				score, best, first = s, five, false
			}
		}
	}
	desc, err := phpoker.Describe(best[:])
	if err != nil {
		return 0, "", err
	}
	return HandScore(-int32(score)), desc, nil
}

// toPaulhankin maps Two..Ace onto the library's Ace-low 1..13 ranks. Suit
// order (clubs, diamonds, hearts, spades) matches.
func toPaulhankin(c Card) (phpoker.Card, error) {
	rank := int(c.Rank()) + 2
	if c.Rank() == Ace {
		rank = 1
	}
	pc, err := phpoker.MakeCard(phpoker.Suit(c.Suit()), phpoker.Rank(rank))
	if err != nil {
		return pc, fmt.Errorf("convert %s: %w", c, err)
	}
	return pc, nil
}
