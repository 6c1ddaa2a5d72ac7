// Package config loads table and simulation settings from HCL files.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/holdemcore/holdem"
)

// File is the root of a configuration file.
type File struct {
	Tables     []Table     `hcl:"table,block"`
	Simulation *Simulation `hcl:"simulation,block"`
}

// Table describes one table. Blind levels are listed in play order.
type Table struct {
	Name            string  `hcl:"name,label"`
	MaxSeats        int     `hcl:"max_seats,optional"`
	GameType        string  `hcl:"game_type,optional"`
	RakePercent     int     `hcl:"rake_percent,optional"`
	RakeCap         int     `hcl:"rake_cap,optional"`
	RakePreflop     bool    `hcl:"rake_preflop,optional"`
	MinBuyIn        int     `hcl:"min_buy_in,optional"`
	MaxBuyIn        int     `hcl:"max_buy_in,optional"`
	TimeBankSeconds int     `hcl:"time_bank_seconds,optional"`
	ReservationTTL  string  `hcl:"reservation_ttl,optional"`
	UndoDepth       int     `hcl:"undo_depth,optional"`
	Levels          []Level `hcl:"level,block"`
}

// Level is one blind level.
type Level struct {
	SmallBlind int `hcl:"small_blind"`
	BigBlind   int `hcl:"big_blind"`
	Ante       int `hcl:"ante,optional"`
}

// Simulation holds the settings of the random-play simulator.
type Simulation struct {
	Hands      int    `hcl:"hands,optional"`
	Players    int    `hcl:"players,optional"`
	BuyIn      int    `hcl:"buy_in,optional"`
	Seed       int64  `hcl:"seed,optional"`
	LevelEvery int    `hcl:"level_every,optional"`
	Evaluator  string `hcl:"evaluator,optional"`
}

// Default returns the configuration used when no file is present.
func Default() *File {
	f := &File{
		Tables: []Table{{
			Name:     "main",
			MaxSeats: 6,
			Levels:   []Level{{SmallBlind: 1, BigBlind: 2}},
		}},
	}
	f.applyDefaults()
	return f
}

// Load reads filename, falling back to Default when it does not exist.
func Load(filename string) (*File, error) {
	src, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source, applies defaults and validates the result.
func Parse(src []byte, filename string) (*File, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var f File
	if diags := gohcl.DecodeBody(file.Body, nil, &f); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	f.applyDefaults()
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *File) applyDefaults() {
	for i := range f.Tables {
		t := &f.Tables[i]
		if t.MaxSeats == 0 {
			t.MaxSeats = 6
		}
		if t.GameType == "" {
			t.GameType = holdem.Cash.String()
		}
		if t.UndoDepth == 0 {
			t.UndoDepth = holdem.DefaultUndoDepth
		}
	}
	if f.Simulation == nil {
		f.Simulation = &Simulation{}
	}
	sim := f.Simulation
	if sim.Hands == 0 {
		sim.Hands = 1000
	}
	if sim.Players == 0 && len(f.Tables) > 0 {
		sim.Players = f.Tables[0].MaxSeats
	}
	if sim.BuyIn == 0 && len(f.Tables) > 0 && len(f.Tables[0].Levels) > 0 {
		sim.BuyIn = f.Tables[0].Levels[0].BigBlind * 100 // 100 big blinds
	}
}

// Validate checks every table and the simulation block.
func (f *File) Validate() error {
	if len(f.Tables) == 0 {
		return errors.New("at least one table must be configured")
	}
	seen := make(map[string]bool)
	for _, t := range f.Tables {
		if seen[t.Name] {
			return fmt.Errorf("table %s: defined more than once", t.Name)
		}
		seen[t.Name] = true
		if _, err := t.TableConfig(); err != nil {
			return err
		}
	}

	if sim := f.Simulation; sim != nil {
		if sim.Hands < 0 {
			return fmt.Errorf("simulation: hands must not be negative, got %d", sim.Hands)
		}
		if sim.Players < holdem.MinSeats {
			return fmt.Errorf("simulation: need at least %d players, got %d", holdem.MinSeats, sim.Players)
		}
		for _, t := range f.Tables {
			if sim.Players > t.MaxSeats {
				return fmt.Errorf("simulation: %d players do not fit table %s with %d seats", sim.Players, t.Name, t.MaxSeats)
			}
		}
		if sim.BuyIn <= 0 {
			return fmt.Errorf("simulation: buy_in must be positive, got %d", sim.BuyIn)
		}
		for _, t := range f.Tables {
			if (t.MinBuyIn > 0 && sim.BuyIn < t.MinBuyIn) || (t.MaxBuyIn > 0 && sim.BuyIn > t.MaxBuyIn) {
				return fmt.Errorf("simulation: buy_in %d is outside table %s range %d-%d", sim.BuyIn, t.Name, t.MinBuyIn, t.MaxBuyIn)
			}
		}
		if sim.LevelEvery < 0 {
			return fmt.Errorf("simulation: level_every must not be negative, got %d", sim.LevelEvery)
		}
	}
	return nil
}

// Table returns the table called name, or nil.
func (f *File) Table(name string) *Table {
	for i := range f.Tables {
		if f.Tables[i].Name == name {
			return &f.Tables[i]
		}
	}
	return nil
}

// TableConfig converts t into the engine's table rules.
func (t Table) TableConfig() (holdem.TableConfig, error) {
	gameType, err := holdem.ParseGameType(t.GameType)
	if err != nil {
		return holdem.TableConfig{}, fmt.Errorf("table %s: %w", t.Name, err)
	}
	var ttl time.Duration
	if t.ReservationTTL != "" {
		if ttl, err = time.ParseDuration(t.ReservationTTL); err != nil {
			return holdem.TableConfig{}, fmt.Errorf("table %s: invalid reservation_ttl: %w", t.Name, err)
		}
	}

	cfg := holdem.TableConfig{
		Name:            t.Name,
		MaxSeats:        t.MaxSeats,
		GameType:        gameType,
		RakePercent:     t.RakePercent,
		RakeCap:         t.RakeCap,
		RakePreflop:     t.RakePreflop,
		MinBuyIn:        t.MinBuyIn,
		MaxBuyIn:        t.MaxBuyIn,
		TimeBankSeconds: t.TimeBankSeconds,
		ReservationTTL:  ttl,
		UndoDepth:       t.UndoDepth,
	}
	for _, lvl := range t.Levels {
		cfg.BlindLevels = append(cfg.BlindLevels, holdem.BlindLevel{
			SmallBlind: lvl.SmallBlind,
			BigBlind:   lvl.BigBlind,
			Ante:       lvl.Ante,
		})
	}
	if err := cfg.Validate(); err != nil {
		return holdem.TableConfig{}, fmt.Errorf("table %s: %w", t.Name, err)
	}
	return cfg, nil
}
