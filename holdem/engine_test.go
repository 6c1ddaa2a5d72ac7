package holdem

import (
	"errors"
	rand "math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdemcore/internal/randutil"
	"github.com/lox/holdemcore/poker"
)

func TestNewTableRejectsBadConfig(t *testing.T) {
	t.Parallel()

	_, err := NewEngine().NewTable(TableConfig{MaxSeats: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_seats")
	assert.Contains(t, err.Error(), "blind level")

	s, err := NewEngine().NewTable(cashConfig(6))
	require.NoError(t, err)
	assert.Equal(t, DefaultUndoDepth, s.Config.UndoDepth)
	assert.Len(t, s.Seats, 6)
	assert.Equal(t, Showdown, s.Street)
	assert.NoError(t, Audit(s))
}

func TestTransitionLeavesInputUntouched(t *testing.T) {
	t.Parallel()

	tt := threeSeated(t, cashConfig(4))
	before := tt.state
	want, err := Snapshot(before)
	require.NoError(t, err)

	next := tt.do(Deal{})
	got, err := Snapshot(before)
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got))
	assert.NotSame(t, before, next)
	assert.False(t, before.InHand)
}

func TestActionsStampedWithClock(t *testing.T) {
	t.Parallel()

	tt := newTestTable(t, cashConfig(2))
	s := tt.do(Sit{Meta: by("a"), Seat: 0, Stack: 100})
	assert.Equal(t, tt.clock.Now(), s.History[0].At)

	at := tt.clock.Now().Add(5)
	s = tt.do(Sit{Meta: Meta{PlayerID: "b", At: at}, Seat: 1, Stack: 100})
	assert.Equal(t, at, lastBy(t, s, "b").At)
}

func TestUndo(t *testing.T) {
	t.Parallel()

	tt := threeSeated(t, cashConfig(4))
	dealt := tt.do(Deal{})
	tt.do(Call{Meta: by("a")})

	prev, err := tt.eng.Undo(tt.state)
	require.NoError(t, err)
	want, _ := Snapshot(dealt)
	got, _ := Snapshot(prev)
	assert.Equal(t, string(want), string(got))
	assert.Len(t, prev.Undo, len(tt.state.Undo)-1)

	// The restored state plays on normally.
	next, err := tt.eng.Transition(prev, Fold{Meta: by("a")})
	require.NoError(t, err)
	assert.Equal(t, StatusFolded, next.Seats[0].Status)

	fresh, err := tt.eng.NewTable(cashConfig(2))
	require.NoError(t, err)
	_, err = tt.eng.Undo(fresh)
	assert.ErrorIs(t, err, ErrIllegalAction)
	var ae *ActionError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, KindNothingToUndo, ae.Kind)
	assert.Equal(t, ActionUndo, ae.Action)
}

func TestUndoDepth(t *testing.T) {
	t.Parallel()

	cfg := cashConfig(4)
	cfg.UndoDepth = 2
	tt := threeSeated(t, cfg)
	tt.do(Deal{})
	assert.Len(t, tt.state.Undo, 2)

	var err error
	s := tt.state
	for range 2 {
		s, err = tt.eng.Undo(s)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, s.SeatOf("b"), "two steps back is after b sat")
	assert.Equal(t, NoSeat, s.SeatOf("c"))
	_, err = tt.eng.Undo(s)
	assert.ErrorIs(t, err, ErrIllegalAction)
}

type brokenEvaluator struct{}

func (brokenEvaluator) Evaluate([]poker.Card) (poker.HandScore, string, error) {
	return 0, "", poker.ErrInvalidHand
}

func TestEvaluatorFailureIsCorruption(t *testing.T) {
	t.Parallel()

	tt := newTestTable(t, cashConfig(2), WithEvaluator(brokenEvaluator{}))
	tt.sit("alice", 0, 100)
	tt.sit("bob", 1, 100)
	tt.do(Deal{})
	tt.do(Raise{Meta: by("alice"), To: 100})

	next, err := tt.eng.Transition(tt.state, Call{Meta: by("bob")})
	assert.Nil(t, next)
	var inv *InvariantError
	require.ErrorAs(t, err, &inv)
	assert.Equal(t, "evaluator", inv.Check)
	assert.True(t, errors.Is(err, ErrStateCorrupted))
}

func TestPaulhankinEvaluatorAgreesOnScenario(t *testing.T) {
	t.Parallel()

	tt := newTestTable(t, cashConfig(3),
		WithEvaluator(poker.PaulhankinEvaluator{}),
		rigged(t, []string{"Kc Kd", "2c 7d", "As Ah"}, "2h 9s 4h 3c Jd"))
	tt.sit("short", 0, 50)
	tt.sit("b", 1, 100)
	tt.sit("c", 2, 100)
	tt.do(Deal{})
	tt.do(Raise{Meta: by("short"), To: 50})
	tt.do(Call{Meta: by("b")})
	tt.do(Raise{Meta: by("c"), To: 100})
	s := tt.do(Call{Meta: by("b")})

	assert.Equal(t, 150, tt.player("short").Stack)
	assert.Equal(t, 100, tt.player("b").Stack)
	assert.Equal(t, 250, chipsInPlay(s))
}

// randomAction picks a legal action for whoever is to act, topping up
// busted players between hands.
func randomAction(rng *rand.Rand, eng *Engine, s *GameState) Action {
	if !s.InHand {
		for _, p := range s.Seats {
			if p != nil && p.Status == StatusBusted {
				return AddChips{Meta: by(p.ID), Amount: 50 + rng.IntN(150)}
			}
		}
		return Deal{}
	}
	la := eng.LegalActions(s)
	id := s.Seats[la.Seat].ID
	switch r := rng.IntN(10); {
	case r == 0 && la.CanFold && !la.CanCheck:
		return Fold{Meta: by(id)}
	case r == 1:
		return Timeout{Meta: by(id)}
	case r <= 4 && la.CanRaise:
		return Raise{Meta: by(id), To: la.MinRaiseTo + rng.IntN(la.MaxRaiseTo-la.MinRaiseTo+1)}
	case r == 5 && la.CanRaise:
		return Bet{Meta: by(id), Amount: la.MaxRaiseTo}
	case la.CanCall:
		return Call{Meta: by(id)}
	default:
		return Check{Meta: by(id)}
	}
}

func TestRandomPlayConservesChips(t *testing.T) {
	t.Parallel()

	for seed := range int64(4) {
		cfg := cashConfig(6)
		cfg.RakePercent = 5
		cfg.RakeCap = 7
		cfg.BlindLevels = []BlindLevel{{SmallBlind: 1, BigBlind: 2, Ante: 1}}
		eng := NewEngine(WithRandom(randutil.New(seed)))
		s, err := eng.NewTable(cfg)
		require.NoError(t, err)

		bought := 0
		for i := range 6 {
			stack := 20 + 40*i
			s, err = eng.Transition(s, Sit{Meta: by(string(rune('a' + i))), Seat: i, Stack: stack})
			require.NoError(t, err)
			bought += stack
		}

		rng := randutil.New(seed + 100)
		raked, hands := 0, 0
		for range 3000 {
			a := randomAction(rng, eng, s)
			require.NoError(t, eng.Validate(s, a), "seed %d: %T", seed, a)
			next, err := eng.Transition(s, a)
			require.NoError(t, err, "seed %d: %T", seed, a)

			if add, ok := a.(AddChips); ok {
				bought += add.Amount
			}
			if _, deal := a.(Deal); (s.InHand || deal) && !next.InHand {
				raked += next.Rake
				hands++
			}
			if _, ok := a.(Timeout); ok {
				next, err = eng.Transition(next, SitIn{Meta: a.meta()})
				require.NoError(t, err)
			}
			s = next

			require.Equal(t, s.TotalChips, chipsInPlay(s))
			require.Equal(t, bought, s.TotalChips+raked, "seed %d hand %d", seed, s.HandNumber)
		}
		assert.Greater(t, hands, 50, "seed %d", seed)
	}
}
