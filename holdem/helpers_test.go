package holdem

import (
	"strings"
	"testing"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdemcore/internal/randutil"
	"github.com/lox/holdemcore/poker"
)

func cashConfig(seats int) TableConfig {
	return TableConfig{
		Name:        "test",
		MaxSeats:    seats,
		GameType:    Cash,
		BlindLevels: []BlindLevel{{SmallBlind: 5, BigBlind: 10}},
	}
}

func by(id string) Meta { return Meta{PlayerID: id} }

// testTable drives an engine and tracks the latest state.
type testTable struct {
	t     *testing.T
	eng   *Engine
	clock *quartz.Mock
	state *GameState
}

func newTestTable(t *testing.T, cfg TableConfig, opts ...Option) *testTable {
	t.Helper()
	clock := quartz.NewMock(t)
	base := []Option{WithClock(clock), WithRandom(randutil.New(1))}
	eng := NewEngine(append(base, opts...)...)
	state, err := eng.NewTable(cfg)
	require.NoError(t, err)
	return &testTable{t: t, eng: eng, clock: clock, state: state}
}

func (tt *testTable) do(a Action) *GameState {
	tt.t.Helper()
	next, err := tt.eng.Transition(tt.state, a)
	require.NoError(tt.t, err, "%s by %s", a.Type(), a.meta().PlayerID)
	tt.state = next
	return next
}

func (tt *testTable) rejects(a Action, kind ErrorKind) *ActionError {
	tt.t.Helper()
	next, err := tt.eng.Transition(tt.state, a)
	require.Nil(tt.t, next)
	require.ErrorIs(tt.t, err, ErrIllegalAction)
	var ae *ActionError
	require.ErrorAs(tt.t, err, &ae)
	require.Equal(tt.t, kind, ae.Kind, "%v", err)
	return ae
}

func (tt *testTable) sit(id string, seat, stack int) {
	tt.t.Helper()
	tt.do(Sit{Meta: by(id), Seat: seat, Name: strings.ToUpper(id), Stack: stack})
}

func (tt *testTable) player(id string) *Player {
	tt.t.Helper()
	seat := tt.state.SeatOf(id)
	require.NotEqual(tt.t, NoSeat, seat, "player %s not seated", id)
	return tt.state.Seats[seat]
}

func (tt *testTable) toAct() string {
	p := tt.state.Player(tt.state.ActionTo)
	if p == nil {
		return ""
	}
	return p.ID
}

// rigged stacks the deck: holes are listed in dealing order (first seat
// clockwise from the button first), then the board follows with a burn
// card before each street. Unused cards fill the burns and the rest.
func rigged(t *testing.T, holes []string, board string) Option {
	t.Helper()
	var order []poker.Card
	parsed := make([][]poker.Card, len(holes))
	for i, h := range holes {
		parsed[i] = poker.MustParseCards(h)
		require.Len(t, parsed[i], 2)
	}
	for round := range 2 {
		for _, h := range parsed {
			order = append(order, h[round])
		}
	}
	boardCards := poker.MustParseCards(board)
	for i, c := range boardCards {
		if i == 0 || i == 3 || i == 4 {
			order = append(order, poker.Hidden)
		}
		order = append(order, c)
	}

	used := poker.NewHand(order...)
	var spare []poker.Card
	for _, c := range poker.FullDeck() {
		if !used.HasCard(c) {
			spare = append(spare, c)
		}
	}
	for i, c := range order {
		if c == poker.Hidden {
			order[i], spare = spare[0], spare[1:]
		}
	}
	order = append(order, spare...)
	require.Len(t, order, 52)

	return WithDeck(func(poker.RandomSource) []poker.Card {
		return append([]poker.Card(nil), order...)
	})
}

// chipsInPlay sums stacks, pots and bets.
func chipsInPlay(s *GameState) int {
	total := 0
	for _, p := range s.Seats {
		if p != nil {
			total += p.Stack
		}
	}
	return total + s.PotTotal()
}

// lastBy returns the newest history entry made by playerID.
func lastBy(t *testing.T, s *GameState, playerID string) ActionRecord {
	t.Helper()
	for i := len(s.History) - 1; i >= 0; i-- {
		if s.History[i].PlayerID == playerID {
			return s.History[i]
		}
	}
	require.Failf(t, "no history", "no action by %s", playerID)
	return ActionRecord{}
}

// foldOut folds whoever is to act until the hand ends.
func (tt *testTable) foldOut() *GameState {
	tt.t.Helper()
	for tt.state.InHand {
		tt.do(Fold{Meta: by(tt.toAct())})
	}
	return tt.state
}
