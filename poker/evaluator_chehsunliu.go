package poker

import (
	chpoker "github.com/chehsunliu/poker"
)

// ChehsunliuEvaluator scores hands with github.com/chehsunliu/poker, whose
// ranks already order lower-is-stronger.
type ChehsunliuEvaluator struct{}

func (ChehsunliuEvaluator) Evaluate(cards []Card) (HandScore, string, error) {
	if err := checkHand(cards); err != nil {
		return 0, "", err
	}
	converted := make([]chpoker.Card, len(cards))
	for i, c := range cards {
		converted[i] = chpoker.NewCard(c.String())
	}
	rank := chpoker.Evaluate(converted)
	return HandScore(rank), chpoker.RankString(rank), nil
}
