package simulator

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdemcore/holdem"
	"github.com/lox/holdemcore/poker"
)

func cashTable() holdem.TableConfig {
	return holdem.TableConfig{
		Name:        "cash",
		MaxSeats:    6,
		GameType:    holdem.Cash,
		BlindLevels: []holdem.BlindLevel{{SmallBlind: 1, BigBlind: 2}},
		RakePercent: 5,
		RakeCap:     6,
		UndoDepth:   holdem.DefaultUndoDepth,
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	sim := New(Config{Table: cashTable(), Hands: 10, Players: 4, BuyIn: 200, Seed: 42, Logger: zerolog.Nop()})
	require.NotNil(t, sim)
	assert.Equal(t, 10, sim.config.Hands)
	assert.Equal(t, "cash", sim.result.Table)
	assert.Nil(t, sim.State())
}

func TestRunCashTable(t *testing.T) {
	t.Parallel()

	sim := New(Config{Table: cashTable(), Hands: 200, Players: 6, BuyIn: 200, Seed: 1, Logger: zerolog.Nop()})
	result, err := sim.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 200, result.Hands)
	assert.Equal(t, result.Bought, result.FinalChips+result.Rake)
	assert.Equal(t, 6*200+result.Rebuys*200, result.Bought)
	assert.Positive(t, result.Showdowns)
	assert.Positive(t, result.Rejected)
	assert.Positive(t, result.Undone)
	assert.Positive(t, result.Rake)
	assert.GreaterOrEqual(t, result.BiggestPot, 3)
	assert.False(t, sim.State().InHand)
	assert.Equal(t, 200, sim.State().HandNumber)
}

func TestRunIsDeterministic(t *testing.T) {
	t.Parallel()

	run := func() Result {
		sim := New(Config{Table: cashTable(), Hands: 50, Players: 4, BuyIn: 100, Seed: 99, Logger: zerolog.Nop()})
		result, err := sim.Run(context.Background())
		require.NoError(t, err)
		return result
	}
	assert.Equal(t, run(), run())
}

func TestRunTournament(t *testing.T) {
	t.Parallel()

	cfg := holdem.TableConfig{
		Name:     "turbo",
		MaxSeats: 6,
		GameType: holdem.Tournament,
		BlindLevels: []holdem.BlindLevel{
			{SmallBlind: 5, BigBlind: 10},
			{SmallBlind: 10, BigBlind: 20, Ante: 2},
			{SmallBlind: 25, BigBlind: 50, Ante: 5},
			{SmallBlind: 50, BigBlind: 100, Ante: 10},
		},
		UndoDepth: holdem.DefaultUndoDepth,
	}
	sim := New(Config{Table: cfg, Hands: 500, Players: 3, BuyIn: 300, Seed: 3, LevelEvery: 10, Logger: zerolog.Nop()})
	result, err := sim.Run(context.Background())
	require.NoError(t, err)

	assert.Zero(t, result.Rebuys)
	assert.Zero(t, result.Rake)
	assert.Equal(t, 900, result.FinalChips)
	assert.LessOrEqual(t, result.Hands, 500)
	if result.Hands > 10 {
		assert.Positive(t, sim.State().BlindLevel)
	}
}

func TestRunWithPaulhankinEvaluator(t *testing.T) {
	t.Parallel()

	ev, err := poker.NewEvaluator("paulhankin")
	require.NoError(t, err)
	sim := New(Config{Table: cashTable(), Hands: 50, Players: 3, BuyIn: 100, Seed: 5, Evaluator: ev, Logger: zerolog.Nop()})
	result, err := sim.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 50, result.Hands)
	assert.Equal(t, result.Bought, result.FinalChips+result.Rake)
}

func TestRunStopsWhenCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sim := New(Config{Table: cashTable(), Hands: 10, Players: 2, BuyIn: 100, Logger: zerolog.Nop()})
	result, err := sim.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, result.Hands)
	assert.Equal(t, 200, result.Bought)
}

func TestRunRejectsBadSetup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		config  Config
		wantErr string
	}{
		{
			name:    "too many players",
			config:  Config{Table: cashTable(), Hands: 1, Players: 7, BuyIn: 100},
			wantErr: "7 players do not fit 6 seats",
		},
		{
			name:    "bad table",
			config:  Config{Table: holdem.TableConfig{Name: "x", MaxSeats: 6}, Hands: 1, Players: 2, BuyIn: 100},
			wantErr: "blind level",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tt.config.Logger = zerolog.Nop()
			_, err := New(tt.config).Run(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
