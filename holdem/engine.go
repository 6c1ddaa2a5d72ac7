package holdem

import (
	"errors"
	"time"

	"github.com/coder/quartz"
	"github.com/rs/zerolog"

	"github.com/lox/holdemcore/poker"
)

// Engine applies actions to table states. It holds only injected
// collaborators, never table state, so one Engine can serve any number of
// tables as long as each table's actions are applied in order.
type Engine struct {
	evaluator poker.Evaluator
	random    poker.RandomSource
	clock     quartz.Clock
	logger    zerolog.Logger
	shuffle   func(poker.RandomSource) []poker.Card
	skipAudit bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithEvaluator sets the hand evaluator used at showdown.
func WithEvaluator(ev poker.Evaluator) Option {
	return func(e *Engine) { e.evaluator = ev }
}

// WithRandom sets the randomness behind shuffles and hand IDs.
func WithRandom(src poker.RandomSource) Option {
	return func(e *Engine) { e.random = src }
}

// WithClock sets the clock used to stamp actions that carry no time.
func WithClock(clock quartz.Clock) Option {
	return func(e *Engine) { e.clock = clock }
}

// WithLogger sets the logger. The engine logs at debug level only, except
// for audit failures.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) { e.logger = logger.With().Str("component", "holdem").Logger() }
}

// WithDeck replaces the shuffle, for stacked decks in tests and replays.
// The function must return 52 distinct cards; the first is dealt first.
func WithDeck(shuffle func(poker.RandomSource) []poker.Card) Option {
	return func(e *Engine) { e.shuffle = shuffle }
}

// WithUnsafeSkipAudit turns off the invariant audit after each
// transition. Only for tests that build deliberately broken states.
func WithUnsafeSkipAudit() Option {
	return func(e *Engine) { e.skipAudit = true }
}

// NewEngine returns an engine with the chehsunliu evaluator, crypto
// randomness, the wall clock and a no-op logger unless overridden.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		evaluator: poker.ChehsunliuEvaluator{},
		random:    poker.CryptoSource{},
		clock:     quartz.NewReal(),
		logger:    zerolog.Nop(),
		shuffle:   poker.Shuffle,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewTable returns an empty table.
func (e *Engine) NewTable(cfg TableConfig) (*GameState, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.UndoDepth == 0 {
		cfg.UndoDepth = DefaultUndoDepth
	}
	return &GameState{
		Config:         cfg,
		Seats:          make([]*Player, cfg.MaxSeats),
		TimeBanks:      make([]int, cfg.MaxSeats),
		LastDealt:      make([]bool, cfg.MaxSeats),
		Street:         Showdown,
		ButtonSeat:     NoSeat,
		SmallBlindSeat: NoSeat,
		BigBlindSeat:   NoSeat,
		ActionTo:       NoSeat,
		LastAggressor:  NoSeat,
	}, nil
}

// Validate reports whether a would be accepted in s.
func (e *Engine) Validate(s *GameState, a Action) error {
	_, err := e.resolve(s, a, e.stamp(a))
	return err
}

// Transition applies a to s and returns the resulting state. s is never
// modified. A rejected action yields an *ActionError; a transition that
// would leave a broken state yields an *InvariantError.
func (e *Engine) Transition(s *GameState, a Action) (*GameState, error) {
	at := e.stamp(a)
	resolved, err := e.resolve(s, a, at)
	if err != nil {
		e.logger.Debug().Err(err).Int("hand", s.HandNumber).Msg("action rejected")
		return nil, err
	}

	next := s.Clone()
	if err := e.apply(next, resolved, at); err != nil {
		return nil, e.fatal(s, err)
	}
	next.pushUndo(s)

	if !e.skipAudit {
		if err := Audit(next); err != nil {
			return nil, e.fatal(s, err)
		}
	}

	e.logger.Debug().
		Stringer("action", resolved.Type()).
		Str("player", resolved.meta().PlayerID).
		Int("hand", next.HandNumber).
		Stringer("street", next.Street).
		Int("action_to", next.ActionTo).
		Msg("transition")
	return next, nil
}

func (e *Engine) fatal(s *GameState, err error) error {
	var inv *InvariantError
	if errors.As(err, &inv) {
		e.logger.Error().Err(err).Int("hand", s.HandNumber).Stringer("street", s.Street).Str("check", inv.Check).Msg("state invariant violated")
	}
	return err
}

func (e *Engine) stamp(a Action) time.Time {
	if at := a.meta().At; !at.IsZero() {
		return at
	}
	return e.clock.Now()
}

// apply dispatches a validated action. Every Action type has a case.
func (e *Engine) apply(s *GameState, a Action, at time.Time) error {
	seat := s.SeatOf(a.meta().PlayerID)
	switch act := a.(type) {
	case Sit:
		e.applySit(s, act, at)
	case Stand:
		e.applyStand(s, act, at)
	case AddChips:
		e.applyAddChips(s, act, at)
	case ReserveSeat:
		e.applyReserve(s, act, at)
	case SitOut:
		e.applySitting(s, act.PlayerID, false, at)
	case SitIn:
		e.applySitting(s, act.PlayerID, true, at)
	case Deal:
		return e.applyDeal(s, at)
	case Fold:
		return e.applyFold(s, s.Seats[seat], at)
	case Check:
		return e.applyCheck(s, s.Seats[seat], at)
	case Call:
		return e.applyCall(s, s.Seats[seat], at)
	case Bet:
		return e.applyRaise(s, s.Seats[seat], ActionBet, act.Amount, at)
	case Raise:
		return e.applyRaise(s, s.Seats[seat], ActionRaise, act.To, at)
	case Show:
		e.applyShow(s, act, at)
	case Muck:
		e.applyMuck(s, act, at)
	case Timeout:
		return e.applyTimeout(s, s.Seats[seat], at)
	case UseTimeBank:
		applyTimeBank(s, s.Seats[seat], act.Seconds, at)
	case AdvanceBlindLevel:
		e.applyAdvanceBlindLevel(s, act, at)
	default:
		return reject(a, KindUnknownAction)
	}
	return nil
}

// pushUndo appends prev to the undo ring of s, dropping the oldest entry
// past the configured depth. Entries do not carry their own rings.
func (s *GameState) pushUndo(prev *GameState) {
	entry := *prev
	entry.Undo = nil
	s.Undo = append(s.Undo, &entry)
	if depth := s.Config.undoDepth(); len(s.Undo) > depth {
		s.Undo = append([]*GameState(nil), s.Undo[len(s.Undo)-depth:]...)
	}
}

// Undo returns the state before the most recent transition.
func (e *Engine) Undo(s *GameState) (*GameState, error) {
	if len(s.Undo) == 0 {
		return nil, &ActionError{Kind: KindNothingToUndo, Action: ActionUndo}
	}
	prev := s.Undo[len(s.Undo)-1].Clone()
	prev.Undo = append([]*GameState(nil), s.Undo[:len(s.Undo)-1]...)
	e.logger.Debug().Int("hand", prev.HandNumber).Int("remaining", len(prev.Undo)).Msg("undo")
	return prev, nil
}

// LegalActions describes what the player on turn may do.
type LegalActions struct {
	Seat       int
	CanFold    bool
	CanCheck   bool
	CanCall    bool
	CallAmount int
	CanRaise   bool
	MinRaiseTo int
	MaxRaiseTo int
}

// LegalActions reports the options of the seat on turn. Seat is NoSeat
// when nobody is to act.
func (e *Engine) LegalActions(s *GameState) LegalActions {
	p := s.Player(s.ActionTo)
	if !s.InHand || p == nil || p.Status != StatusActive {
		return LegalActions{Seat: NoSeat}
	}
	la := LegalActions{
		Seat:     p.Seat,
		CanFold:  true,
		CanCheck: p.Bet == s.CurrentBet,
		CanCall:  p.Bet < s.CurrentBet && p.Stack > 0,
	}
	if la.CanCall {
		la.CallAmount = min(s.CurrentBet-p.Bet, p.Stack)
	}
	allIn := p.Stack + p.Bet
	opponents := s.countSeats(func(o *Player) bool { return o != p && o.canAct() })
	if !p.Acted && allIn > s.CurrentBet && opponents > 0 {
		la.CanRaise = true
		la.MinRaiseTo = min(s.MinRaiseTo, allIn)
		la.MaxRaiseTo = allIn
	}
	return la
}
