package holdem

import (
	"slices"
	"time"
)

// resolve checks a against s and returns the action to apply: a Bet facing
// a bet becomes a Check, Call or Raise, a Raise with nothing to raise
// becomes a Bet, and chip amounts are clamped to the actor's stack. It
// never modifies s.
func (e *Engine) resolve(s *GameState, a Action, at time.Time) (Action, error) {
	if last := s.lastActionAt(); at.Before(last) {
		return nil, reject(a, KindInvalidTimestamp)
	}

	switch act := a.(type) {
	case Sit:
		return act, validateSit(s, act, at)
	case Stand:
		return act, validateStand(s, act)
	case AddChips:
		return act, validateAddChips(s, act)
	case ReserveSeat:
		return act, validateReserve(s, act, at)
	case SitOut:
		_, err := seatedPlayer(s, act)
		return act, err
	case SitIn:
		_, err := seatedPlayer(s, act)
		return act, err
	case Deal:
		return act, validateDeal(s, act)
	case Fold:
		_, err := actor(s, act, false)
		return act, err
	case Check:
		p, err := actor(s, act, true)
		if err != nil {
			return nil, err
		}
		if p.Bet != s.CurrentBet {
			return nil, reject(act, KindCannotCheck, "current_bet", s.CurrentBet, "bet", p.Bet)
		}
		return act, nil
	case Call:
		p, err := actor(s, act, true)
		if err != nil {
			return nil, err
		}
		if p.Bet >= s.CurrentBet {
			return nil, reject(act, KindNothingToCall)
		}
		return act, nil
	case Bet:
		return resolveBet(s, act)
	case Raise:
		return resolveRaise(s, act)
	case Show:
		return act, validateShow(s, act)
	case Muck:
		_, err := showdownPlayer(s, act)
		return act, err
	case Timeout:
		_, err := actor(s, act, false)
		return act, err
	case UseTimeBank:
		if _, err := actor(s, act, false); err != nil {
			return nil, err
		}
		if act.Seconds <= 0 {
			return nil, reject(act, KindInvalidAmount, "seconds", act.Seconds)
		}
		if s.TimeBanks[s.ActionTo] <= 0 {
			return nil, reject(act, KindNoTimeBank)
		}
		return act, nil
	case AdvanceBlindLevel:
		if s.BlindLevel+1 >= len(s.Config.BlindLevels) {
			return nil, reject(act, KindNoMoreBlindLevels, "level", s.BlindLevel)
		}
		return act, nil
	}
	return nil, reject(a, KindUnknownAction)
}

// seatedPlayer finds the actor's seat, ignoring reservations.
func seatedPlayer(s *GameState, a Action) (*Player, error) {
	id := a.meta().PlayerID
	if id == "" {
		return nil, reject(a, KindInvalidPlayer)
	}
	seat := s.SeatOf(id)
	if seat == NoSeat || s.Seats[seat].Status == StatusReserved {
		return nil, reject(a, KindNotSeated)
	}
	return s.Seats[seat], nil
}

// actor checks the common preconditions of an in-hand decision.
func actor(s *GameState, a Action, needChips bool) (*Player, error) {
	if !s.InHand {
		return nil, reject(a, KindNoHandInProgress)
	}
	p, err := seatedPlayer(s, a)
	if err != nil {
		return nil, err
	}
	if p.Seat != s.ActionTo {
		return nil, reject(a, KindNotYourTurn, "action_to", s.ActionTo)
	}
	if p.Status != StatusActive {
		return nil, reject(a, KindPlayerNotActive)
	}
	if needChips && p.Stack <= 0 {
		return nil, reject(a, KindNoChips)
	}
	return p, nil
}

func resolveBet(s *GameState, a Bet) (Action, error) {
	p, err := actor(s, a, true)
	if err != nil {
		return nil, err
	}
	if a.Amount <= 0 {
		return nil, reject(a, KindInvalidAmount, "amount", a.Amount)
	}
	to := min(a.Amount, p.Stack+p.Bet)
	allIn := to == p.Stack+p.Bet

	if s.CurrentBet == 0 {
		if to < s.HandBlinds.BigBlind && !allIn {
			return nil, reject(a, KindBetTooSmall, "min_bet", s.HandBlinds.BigBlind)
		}
		a.Amount = to
		return a, nil
	}

	switch {
	case to == s.CurrentBet && p.Bet == s.CurrentBet:
		return Check{Meta: a.Meta}, nil
	case to == s.CurrentBet:
		return Call{Meta: a.Meta}, nil
	case to > s.CurrentBet:
		return resolveRaise(s, Raise{Meta: a.Meta, To: to})
	case allIn && p.Bet < s.CurrentBet:
		return Call{Meta: a.Meta}, nil
	}
	return nil, reject(a, KindBetTooSmall, "current_bet", s.CurrentBet)
}

func resolveRaise(s *GameState, a Raise) (Action, error) {
	p, err := actor(s, a, true)
	if err != nil {
		return nil, err
	}
	if a.To <= 0 {
		return nil, reject(a, KindInvalidAmount, "to", a.To)
	}
	to := min(a.To, p.Stack+p.Bet)
	allIn := to == p.Stack+p.Bet

	if to <= s.CurrentBet {
		return nil, reject(a, KindRaiseTooSmall, "current_bet", s.CurrentBet, "min_raise_to", s.MinRaiseTo)
	}
	if p.Acted {
		return nil, reject(a, KindBettingNotReopened)
	}
	if to < s.MinRaiseTo && !allIn {
		return nil, reject(a, KindRaiseTooSmall, "min_raise_to", s.MinRaiseTo)
	}
	if s.countSeats(func(o *Player) bool { return o != p && o.canAct() }) == 0 {
		return nil, reject(a, KindNoOpponent)
	}
	if s.CurrentBet == 0 {
		return Bet{Meta: a.Meta, Amount: to}, nil
	}
	a.To = to
	return a, nil
}

func validateSit(s *GameState, a Sit, at time.Time) error {
	if a.PlayerID == "" {
		return reject(a, KindInvalidPlayer)
	}
	if a.Seat < 0 || a.Seat >= len(s.Seats) {
		return reject(a, KindSeatInvalid, "seat", a.Seat)
	}
	if seat := s.SeatOf(a.PlayerID); seat != NoSeat && s.Seats[seat].Status != StatusReserved {
		return reject(a, KindAlreadySeated, "seat", seat)
	}
	if occ := s.Seats[a.Seat]; occ != nil {
		free := occ.Status == StatusReserved && (occ.ID == a.PlayerID || reservationExpired(occ, at))
		if !free {
			return reject(a, KindSeatOccupied, "seat", a.Seat)
		}
	}
	if a.Stack <= 0 {
		return reject(a, KindInvalidAmount, "stack", a.Stack)
	}
	cfg := s.Config
	if (cfg.MinBuyIn > 0 && a.Stack < cfg.MinBuyIn) || (cfg.MaxBuyIn > 0 && a.Stack > cfg.MaxBuyIn) {
		return reject(a, KindBuyInOutOfRange, "min_buy_in", cfg.MinBuyIn, "max_buy_in", cfg.MaxBuyIn)
	}
	return nil
}

func validateStand(s *GameState, a Stand) error {
	id := a.PlayerID
	if id == "" {
		return reject(a, KindInvalidPlayer)
	}
	seat := s.SeatOf(id)
	if seat == NoSeat {
		return reject(a, KindNotSeated)
	}
	if s.InHand && s.Seats[seat].dealtIn() {
		return reject(a, KindHandInProgress)
	}
	return nil
}

func validateAddChips(s *GameState, a AddChips) error {
	p, err := seatedPlayer(s, a)
	if err != nil {
		return err
	}
	if s.Config.GameType != Cash {
		return reject(a, KindNotInTournament)
	}
	if a.Amount <= 0 {
		return reject(a, KindInvalidAmount, "amount", a.Amount)
	}
	if limit := s.Config.MaxBuyIn; limit > 0 && p.Stack+p.Pending+a.Amount > limit {
		return reject(a, KindBuyInOutOfRange, "max_buy_in", limit)
	}
	return nil
}

func validateReserve(s *GameState, a ReserveSeat, at time.Time) error {
	if a.PlayerID == "" {
		return reject(a, KindInvalidPlayer)
	}
	if a.Seat < 0 || a.Seat >= len(s.Seats) {
		return reject(a, KindSeatInvalid, "seat", a.Seat)
	}
	if seat := s.SeatOf(a.PlayerID); seat != NoSeat {
		return reject(a, KindAlreadySeated, "seat", seat)
	}
	if occ := s.Seats[a.Seat]; occ != nil && !(occ.Status == StatusReserved && reservationExpired(occ, at)) {
		return reject(a, KindSeatOccupied, "seat", a.Seat)
	}
	return nil
}

func validateDeal(s *GameState, a Deal) error {
	if s.InHand {
		return reject(a, KindHandInProgress)
	}
	ready := 0
	for _, p := range s.Seats {
		if p == nil || p.Status == StatusReserved {
			continue
		}
		next := *p
		next.Stack += next.Pending
		next.SittingOut = !next.SitIn
		if s.willPlay(&next) {
			ready++
		}
	}
	if ready < 2 {
		return reject(a, KindNotEnoughPlayers, "ready", ready)
	}
	return nil
}

// showdownPlayer returns the actor if they were dealt into the settled hand.
func showdownPlayer(s *GameState, a Action) (*Player, error) {
	p, err := seatedPlayer(s, a)
	if err != nil {
		return nil, err
	}
	if s.InHand || s.HandNumber == 0 || len(p.HoleCards) == 0 {
		return nil, reject(a, KindCannotShow)
	}
	return p, nil
}

func validateShow(s *GameState, a Show) error {
	p, err := showdownPlayer(s, a)
	if err != nil {
		return err
	}
	seen := make([]bool, len(p.HoleCards))
	for _, idx := range a.Cards {
		if idx < 0 || idx >= len(p.HoleCards) || seen[idx] {
			return reject(a, KindInvalidCards, "index", idx)
		}
		seen[idx] = true
	}
	return nil
}

// showIndexes normalises a Show request to sorted card positions.
func showIndexes(p *Player, requested []int) []int {
	if len(requested) == 0 {
		all := make([]int, len(p.HoleCards))
		for i := range all {
			all[i] = i
		}
		return all
	}
	out := slices.Clone(requested)
	slices.Sort(out)
	return out
}

func reservationExpired(p *Player, at time.Time) bool {
	return !p.ReservedUntil.IsZero() && !at.Before(p.ReservedUntil)
}
