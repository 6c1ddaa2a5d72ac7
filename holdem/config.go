package holdem

import (
	"errors"
	"fmt"
	"time"
)

// MinSeats and MaxSeats bound the table size.
const (
	MinSeats = 2
	MaxSeats = 10
)

// DefaultUndoDepth is used when TableConfig.UndoDepth is zero.
const DefaultUndoDepth = 8

// TableConfig holds the fixed rules of a table.
type TableConfig struct {
	Name        string       `json:"name,omitempty"`
	MaxSeats    int          `json:"max_seats"`
	GameType    GameType     `json:"game_type"`
	BlindLevels []BlindLevel `json:"blind_levels"`

	// RakePercent is taken from each pot, floored, up to RakeCap per hand.
	// Hands that end before the flop are not raked unless RakePreflop.
	RakePercent int  `json:"rake_percent"`
	RakeCap     int  `json:"rake_cap"`
	RakePreflop bool `json:"rake_preflop"`

	// Buy-in bounds; zero disables a bound.
	MinBuyIn int `json:"min_buy_in"`
	MaxBuyIn int `json:"max_buy_in"`

	TimeBankSeconds int           `json:"time_bank_seconds"`
	ReservationTTL  time.Duration `json:"reservation_ttl"`
	UndoDepth       int           `json:"undo_depth"`
}

// Validate checks the configuration for internal consistency.
func (c TableConfig) Validate() error {
	var errs []error
	if c.MaxSeats < MinSeats || c.MaxSeats > MaxSeats {
		errs = append(errs, fmt.Errorf("max_seats must be between %d and %d, got %d", MinSeats, MaxSeats, c.MaxSeats))
	}
	if c.GameType != Cash && c.GameType != Tournament {
		errs = append(errs, fmt.Errorf("unknown game type %d", int(c.GameType)))
	}
	if len(c.BlindLevels) == 0 {
		errs = append(errs, errors.New("at least one blind level is required"))
	}
	for i, lvl := range c.BlindLevels {
		if lvl.SmallBlind <= 0 || lvl.BigBlind <= 0 {
			errs = append(errs, fmt.Errorf("blind level %d: blinds must be positive", i))
		}
		if lvl.SmallBlind > lvl.BigBlind {
			errs = append(errs, fmt.Errorf("blind level %d: small blind %d exceeds big blind %d", i, lvl.SmallBlind, lvl.BigBlind))
		}
		if lvl.Ante < 0 {
			errs = append(errs, fmt.Errorf("blind level %d: ante must not be negative", i))
		}
	}
	if c.RakePercent < 0 || c.RakePercent > 100 {
		errs = append(errs, fmt.Errorf("rake_percent must be between 0 and 100, got %d", c.RakePercent))
	}
	if c.RakeCap < 0 {
		errs = append(errs, errors.New("rake_cap must not be negative"))
	}
	if c.GameType == Tournament && c.RakePercent > 0 {
		errs = append(errs, errors.New("tournaments do not take rake"))
	}
	if c.MinBuyIn < 0 || c.MaxBuyIn < 0 {
		errs = append(errs, errors.New("buy-in bounds must not be negative"))
	}
	if c.MaxBuyIn > 0 && c.MinBuyIn > c.MaxBuyIn {
		errs = append(errs, fmt.Errorf("min_buy_in %d exceeds max_buy_in %d", c.MinBuyIn, c.MaxBuyIn))
	}
	if c.TimeBankSeconds < 0 {
		errs = append(errs, errors.New("time_bank_seconds must not be negative"))
	}
	if c.ReservationTTL < 0 {
		errs = append(errs, errors.New("reservation_ttl must not be negative"))
	}
	if c.UndoDepth < 0 {
		errs = append(errs, errors.New("undo_depth must not be negative"))
	}
	return errors.Join(errs...)
}

// Level returns blind level i, clamped to the last configured level.
func (c TableConfig) Level(i int) BlindLevel {
	if len(c.BlindLevels) == 0 {
		return BlindLevel{}
	}
	if i >= len(c.BlindLevels) {
		i = len(c.BlindLevels) - 1
	}
	if i < 0 {
		i = 0
	}
	return c.BlindLevels[i]
}

func (c TableConfig) undoDepth() int {
	if c.UndoDepth == 0 {
		return DefaultUndoDepth
	}
	return c.UndoDepth
}
