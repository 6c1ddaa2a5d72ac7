package holdem

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/holdemcore/poker"
)

func TestStreetsBurnAndDeal(t *testing.T) {
	t.Parallel()

	tt := newTestTable(t, cashConfig(2),
		rigged(t, []string{"Kc Kd", "As Ah"}, "2h 9s 4h 3c Jd"))
	tt.sit("alice", 0, 100)
	tt.sit("bob", 1, 100)
	s := tt.do(Deal{})
	assert.Equal(t, poker.MustParseCards("As Ah"), tt.player("alice").HoleCards)
	assert.Equal(t, poker.MustParseCards("Kc Kd"), tt.player("bob").HoleCards)
	assert.Len(t, s.Deck, 48)

	tt.do(Call{Meta: by("alice")})
	s = tt.do(Check{Meta: by("bob")})
	assert.Equal(t, poker.MustParseCards("2h 9s 4h"), s.Board)
	assert.Len(t, s.Deck, 44)

	tt.do(Check{Meta: by("bob")})
	s = tt.do(Check{Meta: by("alice")})
	assert.Equal(t, poker.MustParseCards("2h 9s 4h 3c"), s.Board)
	assert.Len(t, s.Deck, 42)

	tt.do(Bet{Meta: by("bob"), Amount: 20})
	s = tt.do(Call{Meta: by("alice")})
	assert.Equal(t, River, s.Street)
	assert.Equal(t, poker.MustParseCards("2h 9s 4h 3c Jd"), s.Board)
	assert.Equal(t, []Pot{{Amount: 60, Eligible: []int{0, 1}, Type: MainPot}}, s.Pots)
	assert.Equal(t, 10, s.MinRaiseTo)
	assert.Equal(t, 10, s.LastRaiseAmount)
	assert.Equal(t, NoSeat, s.LastAggressor)

	tt.do(Check{Meta: by("bob")})
	s = tt.do(Check{Meta: by("alice")})
	assert.False(t, s.InHand)
	assert.Equal(t, 130, tt.player("alice").Stack)
	assert.Equal(t, 70, tt.player("bob").Stack)
}

func TestBlindsAllInRunOutAtDeal(t *testing.T) {
	t.Parallel()

	tt := newTestTable(t, cashConfig(2))
	tt.sit("alice", 0, 5)
	tt.sit("bob", 1, 10)
	s := tt.do(Deal{})

	assert.False(t, s.InHand, "nobody can act, the board runs out")
	assert.Len(t, s.Board, 5)
	assert.Equal(t, 15, chipsInPlay(s))

	var returned ActionRecord
	for _, rec := range s.History {
		if rec.Type == ActionReturnUncalled {
			returned = rec
		}
	}
	assert.Equal(t, "bob", returned.PlayerID)
	assert.Equal(t, 5, returned.Amount)
}

func TestRunOutAfterPreflopAllIn(t *testing.T) {
	t.Parallel()

	tt := threeSeated(t, cashConfig(4))
	tt.do(Deal{})
	tt.do(Raise{Meta: by("a"), To: 100})
	tt.do(Call{Meta: by("b")})
	s := tt.do(Fold{Meta: by("c")})

	assert.False(t, s.InHand)
	assert.Len(t, s.Board, 5)
	assert.Equal(t, 300, chipsInPlay(s))
	assert.Equal(t, 90, tt.player("c").Stack)

	paid := 0
	for _, w := range s.Winners {
		paid += w.Amount
	}
	assert.Equal(t, 210, paid)
}
