package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdemcore/holdem"
)

const sample = `
table "high" {
  max_seats        = 9
  rake_percent     = 5
  rake_cap         = 30
  min_buy_in       = 400
  max_buy_in       = 2000
  reservation_ttl  = "90s"
  time_bank_seconds = 45

  level {
    small_blind = 5
    big_blind   = 10
  }
}

table "turbo" {
  game_type = "tournament"

  level {
    small_blind = 10
    big_blind   = 20
  }
  level {
    small_blind = 20
    big_blind   = 40
    ante        = 5
  }
}

simulation {
  hands       = 250
  players     = 5
  seed        = 7
  level_every = 20
  evaluator   = "paulhankin"
}
`

func TestParse(t *testing.T) {
	t.Parallel()

	f, err := Parse([]byte(sample), "sample.hcl")
	require.NoError(t, err)
	require.Len(t, f.Tables, 2)

	high, err := f.Table("high").TableConfig()
	require.NoError(t, err)
	assert.Equal(t, holdem.TableConfig{
		Name:            "high",
		MaxSeats:        9,
		GameType:        holdem.Cash,
		BlindLevels:     []holdem.BlindLevel{{SmallBlind: 5, BigBlind: 10}},
		RakePercent:     5,
		RakeCap:         30,
		MinBuyIn:        400,
		MaxBuyIn:        2000,
		TimeBankSeconds: 45,
		ReservationTTL:  90 * time.Second,
		UndoDepth:       holdem.DefaultUndoDepth,
	}, high)

	turbo, err := f.Table("turbo").TableConfig()
	require.NoError(t, err)
	assert.Equal(t, holdem.Tournament, turbo.GameType)
	assert.Equal(t, 6, turbo.MaxSeats)
	assert.Equal(t, holdem.BlindLevel{SmallBlind: 20, BigBlind: 40, Ante: 5}, turbo.BlindLevels[1])

	assert.Equal(t, &Simulation{
		Hands:      250,
		Players:    5,
		BuyIn:      1000,
		Seed:       7,
		LevelEvery: 20,
		Evaluator:  "paulhankin",
	}, f.Simulation)
	assert.Nil(t, f.Table("missing"))
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		src     string
		wantErr string
	}{
		{"syntax", `table "x" {`, "failed to parse HCL file"},
		{"unknown attribute", `table "x" {
  colour = "red"
  level {
    small_blind = 1
    big_blind = 2
  }
}`, "failed to decode HCL"},
		{"no tables", `simulation { hands = 3 }`, "at least one table"},
		{"no levels", `table "x" {}`, "at least one blind level"},
		{"bad game type", `table "x" {
  game_type = "freeroll"
  level {
    small_blind = 1
    big_blind = 2
  }
}`, `unknown game type "freeroll"`},
		{"bad duration", `table "x" {
  reservation_ttl = "soon"
  level {
    small_blind = 1
    big_blind = 2
  }
}`, "invalid reservation_ttl"},
		{"duplicate table", `table "x" {
  level {
    small_blind = 1
    big_blind = 2
  }
}
table "x" {
  level {
    small_blind = 1
    big_blind = 2
  }
}`, "defined more than once"},
		{"too many players", `table "x" {
  max_seats = 3
  level {
    small_blind = 1
    big_blind = 2
  }
}
simulation {
  players = 4
}`, "do not fit table x"},
		{"buy in out of range", `table "x" {
  min_buy_in = 50
  max_buy_in = 100
  level {
    small_blind = 1
    big_blind = 2
  }
}`, "buy_in 200 is outside table x range 50-100"},
		{"tournament rake", `table "x" {
  game_type = "tournament"
  rake_percent = 5
  level {
    small_blind = 1
    big_blind = 2
  }
}`, "tournaments do not take rake"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse([]byte(tt.src), "test.hcl")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	f, err := Load(filepath.Join(dir, "missing.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), f)
	require.NoError(t, f.Validate())
	assert.Equal(t, 200, f.Simulation.BuyIn)
	assert.Equal(t, 6, f.Simulation.Players)

	path := filepath.Join(dir, "tables.hcl")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))
	f, err = Load(path)
	require.NoError(t, err)
	assert.Len(t, f.Tables, 2)
}
