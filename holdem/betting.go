package holdem

import "time"

// putIn moves chips from a player's stack into their street bet.
func putIn(p *Player, amount int) {
	p.Stack -= amount
	p.Bet += amount
	p.Invested += amount
	if p.Stack == 0 && p.Status == StatusActive {
		p.Status = StatusAllIn
	}
}

func (e *Engine) applyFold(s *GameState, p *Player, at time.Time) error {
	p.Status = StatusFolded
	p.Acted = true
	for i := range s.Pots {
		s.Pots[i].Eligible = removeSeat(s.Pots[i].Eligible, p.Seat)
	}
	s.record(ActionRecord{Type: ActionFold, PlayerID: p.ID, Seat: p.Seat, At: at})
	return e.advance(s, p.Seat, at)
}

func (e *Engine) applyCheck(s *GameState, p *Player, at time.Time) error {
	p.Acted = true
	s.record(ActionRecord{Type: ActionCheck, PlayerID: p.ID, Seat: p.Seat, At: at})
	return e.advance(s, p.Seat, at)
}

func (e *Engine) applyCall(s *GameState, p *Player, at time.Time) error {
	amount := min(s.CurrentBet-p.Bet, p.Stack)
	putIn(p, amount)
	p.Acted = true
	s.record(ActionRecord{Type: ActionCall, PlayerID: p.ID, Seat: p.Seat, Amount: amount, At: at})
	return e.advance(s, p.Seat, at)
}

// applyRaise handles opening bets and raises alike; to is the new street
// total. Only a full raise reopens the betting.
func (e *Engine) applyRaise(s *GameState, p *Player, kind ActionType, to int, at time.Time) error {
	putIn(p, to-p.Bet)
	p.Acted = true

	increment := to - s.CurrentBet
	if increment >= s.LastRaiseAmount {
		s.LastRaiseAmount = increment
		s.LastAggressor = p.Seat
		s.MinRaiseTo = to + increment
		for _, o := range s.Seats {
			if o != nil && o != p {
				o.Acted = false
			}
		}
	} else {
		s.MinRaiseTo = to + s.LastRaiseAmount
	}
	s.CurrentBet = to

	s.record(ActionRecord{Type: kind, PlayerID: p.ID, Seat: p.Seat, Amount: to, At: at})
	return e.advance(s, p.Seat, at)
}

// applyTimeout checks when that is free and folds otherwise, then sits the
// player out from the next hand.
func (e *Engine) applyTimeout(s *GameState, p *Player, at time.Time) error {
	p.SitIn = false
	p.SittingOut = true
	s.record(ActionRecord{Type: ActionTimeout, PlayerID: p.ID, Seat: p.Seat, At: at})
	if p.Bet >= s.CurrentBet {
		return e.applyCheck(s, p, at)
	}
	return e.applyFold(s, p, at)
}

func applyTimeBank(s *GameState, p *Player, seconds int, at time.Time) {
	granted := min(seconds, s.TimeBanks[p.Seat])
	s.TimeBanks[p.Seat] -= granted
	s.record(ActionRecord{Type: ActionUseTimeBank, PlayerID: p.ID, Seat: p.Seat, Amount: granted, At: at})
}

// advance moves play on after a betting decision by actor.
func (e *Engine) advance(s *GameState, actor int, at time.Time) error {
	if s.countSeats((*Player).InHand) == 1 {
		return e.winByFold(s, at)
	}
	if s.roundClosed() {
		return e.closeStreet(s, at)
	}
	s.ActionTo = s.nextPlayer(actor, s.needsToAct)
	return nil
}

func removeSeat(seats []int, seat int) []int {
	out := seats[:0:0]
	for _, s := range seats {
		if s != seat {
			out = append(out, s)
		}
	}
	return out
}
