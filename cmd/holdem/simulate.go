package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lox/holdemcore/internal/config"
	"github.com/lox/holdemcore/internal/randutil"
	"github.com/lox/holdemcore/internal/simulator"
	"github.com/lox/holdemcore/internal/snapfile"
	"github.com/lox/holdemcore/poker"
)

type SimulateCmd struct {
	Config      string   `short:"c" default:"holdem.hcl" type:"path" help:"HCL table configuration (defaults are used if missing)"`
	Table       []string `short:"t" help:"Only simulate the named tables"`
	Hands       int      `help:"Override the number of hands per table"`
	Seed        int64    `help:"Override the simulation seed"`
	SnapshotDir string   `type:"path" help:"Write each table's final snapshot to this directory"`
	LogLevel    string   `default:"info" enum:"debug,info,warn,error" help:"Log level (debug|info|warn|error)"`
	JSON        bool     `help:"Log structured JSON instead of console output"`
}

func (c *SimulateCmd) Run() error {
	logger := stderrLogger(c.LogLevel, c.JSON)
	ctx, cancel := signalContext(logger)
	defer cancel()

	results, err := c.run(ctx, logger)
	if len(results) > 0 {
		fmt.Fprintln(os.Stdout, renderResults(results))
	}
	return err
}

// run simulates every selected table concurrently, one goroutine per table.
func (c *SimulateCmd) run(ctx context.Context, logger zerolog.Logger) ([]simulator.Result, error) {
	file, err := config.Load(c.Config)
	if err != nil {
		return nil, err
	}
	sim := *file.Simulation
	if c.Hands > 0 {
		sim.Hands = c.Hands
	}
	if c.Seed != 0 {
		sim.Seed = c.Seed
	}

	tables, err := c.selectTables(file)
	if err != nil {
		return nil, err
	}
	evaluator, err := poker.NewEvaluator(sim.Evaluator)
	if err != nil {
		return nil, err
	}
	if c.SnapshotDir != "" {
		if err := os.MkdirAll(c.SnapshotDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create snapshot dir: %w", err)
		}
	}

	logger.Info().
		Int("tables", len(tables)).
		Int("hands", sim.Hands).
		Int64("seed", sim.Seed).
		Msg("Starting simulation")

	results := make([]simulator.Result, len(tables))
	g, ctx := errgroup.WithContext(ctx)
	for i, t := range tables {
		g.Go(func() error {
			cfg, err := t.TableConfig()
			if err != nil {
				return err
			}
			s := simulator.New(simulator.Config{
				Table:      cfg,
				Hands:      sim.Hands,
				Players:    sim.Players,
				BuyIn:      sim.BuyIn,
				Seed:       randutil.Derive(sim.Seed, i),
				LevelEvery: sim.LevelEvery,
				Evaluator:  evaluator,
				Logger:     logger,
			})
			result, err := s.Run(ctx)
			results[i] = result
			if err != nil {
				return fmt.Errorf("table %s: %w", t.Name, err)
			}
			if c.SnapshotDir != "" {
				return snapfile.Write(filepath.Join(c.SnapshotDir, t.Name+".json"), s.State())
			}
			return nil
		})
	}
	return results, g.Wait()
}

func (c *SimulateCmd) selectTables(file *config.File) ([]config.Table, error) {
	if len(c.Table) == 0 {
		return file.Tables, nil
	}
	var tables []config.Table
	for _, name := range c.Table {
		t := file.Table(name)
		if t == nil {
			return nil, fmt.Errorf("no table named %q in %s", name, c.Config)
		}
		if !slices.ContainsFunc(tables, func(x config.Table) bool { return x.Name == name }) {
			tables = append(tables, *t)
		}
	}
	return tables, nil
}
