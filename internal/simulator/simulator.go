// Package simulator drives tables with random legal play and checks the
// engine's bookkeeping as it goes.
package simulator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	rand "math/rand/v2"
	"time"

	"github.com/rs/zerolog"

	"github.com/lox/holdemcore/holdem"
	"github.com/lox/holdemcore/internal/randutil"
	"github.com/lox/holdemcore/poker"
)

// Config holds configuration for running a simulation on one table.
type Config struct {
	Table      holdem.TableConfig
	Hands      int
	Players    int
	BuyIn      int
	Seed       int64
	LevelEvery int // hands between blind level increases, 0 to stay put
	Evaluator  poker.Evaluator
	Logger     zerolog.Logger
}

// Result summarises a finished simulation.
type Result struct {
	Table       string
	Hands       int
	Showdowns   int
	Transitions int
	Rejected    int
	Undone      int
	Rebuys      int
	Bought      int
	Rake        int
	BiggestPot  int
	FinalChips  int
}

// Simulator plays hands on a single table.
type Simulator struct {
	config Config
	engine *holdem.Engine
	rng    *rand.Rand
	now    time.Time
	state  *holdem.GameState
	result Result
}

// start is the virtual time of the first action; every action advances it
// by one second so runs are reproducible.
var start = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// New creates a simulator for the given configuration.
func New(config Config) *Simulator {
	opts := []holdem.Option{
		holdem.WithRandom(randutil.New(config.Seed)),
		holdem.WithLogger(config.Logger),
	}
	if config.Evaluator != nil {
		opts = append(opts, holdem.WithEvaluator(config.Evaluator))
	}
	return &Simulator{
		config: config,
		engine: holdem.NewEngine(opts...),
		rng:    randutil.New(randutil.Derive(config.Seed, 1)),
		now:    start,
		result: Result{Table: config.Table.Name},
	}
}

// Run plays the configured number of hands, stopping early if ctx is
// cancelled. Any bookkeeping error ends the run.
func (s *Simulator) Run(ctx context.Context) (Result, error) {
	state, err := s.engine.NewTable(s.config.Table)
	if err != nil {
		return s.result, err
	}
	s.state = state

	if s.config.Players > len(s.state.Seats) {
		return s.result, fmt.Errorf("%d players do not fit %d seats", s.config.Players, len(s.state.Seats))
	}
	for seat := range s.config.Players {
		id := fmt.Sprintf("p%d", seat+1)
		if err := s.apply(holdem.Sit{Meta: s.meta(id), Seat: seat, Name: id, Stack: s.config.BuyIn}); err != nil {
			return s.result, err
		}
		s.result.Bought += s.config.BuyIn
	}

	for hand := range s.config.Hands {
		if err := ctx.Err(); err != nil {
			return s.result, err
		}
		if err := s.rebuy(); err != nil {
			return s.result, fmt.Errorf("hand %d: %w", hand+1, err)
		}
		if s.funded() < 2 {
			s.config.Logger.Info().Str("table", s.result.Table).Int("hand", hand).Msg("One player holds every chip")
			break
		}
		if err := s.playHand(hand); err != nil {
			return s.result, fmt.Errorf("hand %d: %w", hand+1, err)
		}
	}

	s.result.FinalChips = s.state.TotalChips
	s.config.Logger.Info().
		Str("table", s.result.Table).
		Int("hands", s.result.Hands).
		Int("showdowns", s.result.Showdowns).
		Int("rake", s.result.Rake).
		Int("rebuys", s.result.Rebuys).
		Msg("Simulation finished")
	return s.result, nil
}

func (s *Simulator) playHand(hand int) error {
	if every := s.config.LevelEvery; every > 0 && hand > 0 && hand%every == 0 &&
		s.state.BlindLevel+1 < len(s.state.Config.BlindLevels) {
		if err := s.apply(holdem.AdvanceBlindLevel{Meta: s.meta("")}); err != nil {
			return err
		}
	}

	if err := s.apply(holdem.Deal{Meta: s.meta("")}); err != nil {
		return err
	}
	if err := s.checkView(); err != nil {
		return err
	}

	biggest := 0
	for s.state.InHand {
		biggest = max(biggest, s.state.PotTotal())
		if err := s.checkOutOfTurn(); err != nil {
			return err
		}
		action := s.choose()
		if s.rng.IntN(20) == 0 {
			if err := s.checkUndo(action); err != nil {
				return err
			}
		}
		if err := s.apply(action); err != nil {
			return err
		}
		if t, ok := action.(holdem.Timeout); ok {
			if err := s.apply(holdem.SitIn{Meta: s.meta(t.PlayerID)}); err != nil {
				return err
			}
		}
	}
	return s.settle(biggest)
}

// settle checks the finished hand and updates the totals.
func (s *Simulator) settle(biggest int) error {
	st := s.state
	s.result.Hands++
	s.result.Rake += st.Rake
	if len(st.Winners) > 0 && st.Winners[0].Description != "" {
		s.result.Showdowns++
	}
	paid := st.Rake
	for _, w := range st.Winners {
		paid += w.Amount
	}
	s.result.BiggestPot = max(s.result.BiggestPot, biggest, paid)

	if got := st.TotalChips + s.result.Rake; got != s.result.Bought {
		return fmt.Errorf("chips leaked: %d on the table plus %d raked, %d bought in", st.TotalChips, s.result.Rake, s.result.Bought)
	}
	if err := holdem.Audit(st); err != nil {
		return err
	}
	s.config.Logger.Debug().
		Str("table", s.result.Table).
		Int("hand", st.HandNumber).
		Str("board", poker.FormatCards(st.Board)).
		Int("paid", paid).
		Int("rake", st.Rake).
		Msg("Hand settled")
	return nil
}

// funded counts players with chips behind or waiting to be added.
func (s *Simulator) funded() int {
	n := 0
	for _, p := range s.state.Seats {
		if p != nil && p.Stack+p.Pending > 0 {
			n++
		}
	}
	return n
}

// rebuy tops up every busted player. Tournaments have no rebuys.
func (s *Simulator) rebuy() error {
	if s.state.Config.GameType != holdem.Cash {
		return nil
	}
	for _, p := range s.state.Seats {
		if p == nil || p.Status != holdem.StatusBusted {
			continue
		}
		if err := s.apply(holdem.AddChips{Meta: s.meta(p.ID), Amount: s.config.BuyIn}); err != nil {
			return err
		}
		s.result.Rebuys++
		s.result.Bought += s.config.BuyIn
	}
	return nil
}

// choose picks a legal action for the player to act, loosely guided by the
// strength of their hole cards.
func (s *Simulator) choose() holdem.Action {
	la := s.engine.LegalActions(s.state)
	p := s.state.Seats[la.Seat]
	meta := s.meta(p.ID)
	strength := poker.CategorizeHoleCards(p.HoleCards).Rank()
	roll := s.rng.Float64()

	switch {
	case roll < 0.01:
		return holdem.Timeout{Meta: meta}
	case la.CanRaise && roll < 0.05*float64(strength+1):
		to := la.MinRaiseTo
		if span := la.MaxRaiseTo - la.MinRaiseTo; span > 0 {
			to += s.rng.IntN(span/(5-strength) + 1)
		}
		if s.rng.IntN(2) == 0 {
			return holdem.Bet{Meta: meta, Amount: to}
		}
		return holdem.Raise{Meta: meta, To: to}
	case la.CanCheck:
		return holdem.Check{Meta: meta}
	case la.CanCall && (strength >= 2 || roll < 0.6):
		return holdem.Call{Meta: meta}
	default:
		return holdem.Fold{Meta: meta}
	}
}

// checkOutOfTurn submits an out-of-turn action and checks it is refused
// without touching the state.
func (s *Simulator) checkOutOfTurn() error {
	var other *holdem.Player
	for _, p := range s.state.Seats {
		if p != nil && p.Seat != s.state.ActionTo {
			other = p
			break
		}
	}
	if other == nil {
		return nil
	}
	before, err := holdem.Snapshot(s.state)
	if err != nil {
		return err
	}
	next, err := s.engine.Transition(s.state, holdem.Fold{Meta: s.meta(other.ID)})
	if !errors.Is(err, holdem.ErrIllegalAction) || next != nil {
		return fmt.Errorf("out of turn fold by %s was not refused: %v", other.ID, err)
	}
	after, err := holdem.Snapshot(s.state)
	if err != nil {
		return err
	}
	if !bytes.Equal(before, after) {
		return errors.New("rejected action modified the state")
	}
	s.result.Rejected++
	return nil
}

// checkUndo applies action, undoes it and checks the table is back where it
// started.
func (s *Simulator) checkUndo(action holdem.Action) error {
	before, err := holdem.Snapshot(s.state)
	if err != nil {
		return err
	}
	next, err := s.engine.Transition(s.state, action)
	if err != nil {
		return err
	}
	prev, err := s.engine.Undo(next)
	if err != nil {
		return err
	}
	after, err := holdem.Snapshot(prev)
	if err != nil {
		return err
	}
	if !bytes.Equal(before, after) {
		return errors.New("undo did not restore the previous state")
	}
	s.result.Undone++
	return nil
}

// checkView makes sure no player can see another player's cards mid-hand.
func (s *Simulator) checkView() error {
	for _, p := range s.state.Seats {
		if p == nil {
			continue
		}
		view := holdem.View(s.state, p.ID)
		for _, o := range view.Seats {
			if o == nil || o.ID == p.ID {
				continue
			}
			for _, c := range o.HoleCards {
				if c != poker.Hidden {
					return fmt.Errorf("%s can see %s's cards", p.ID, o.ID)
				}
			}
		}
	}
	return nil
}

func (s *Simulator) apply(action holdem.Action) error {
	next, err := s.engine.Transition(s.state, action)
	if err != nil {
		return err
	}
	s.state = next
	s.result.Transitions++
	return nil
}

// meta stamps the next action one virtual second after the previous one.
func (s *Simulator) meta(playerID string) holdem.Meta {
	s.now = s.now.Add(time.Second)
	return holdem.Meta{PlayerID: playerID, At: s.now}
}

// State returns the table as it stands.
func (s *Simulator) State() *holdem.GameState {
	return s.state
}
