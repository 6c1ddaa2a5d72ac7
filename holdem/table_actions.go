package holdem

import "time"

func (e *Engine) applySit(s *GameState, a Sit, at time.Time) {
	if seat := s.SeatOf(a.PlayerID); seat != NoSeat {
		// Drop the player's own reservation, wherever it was.
		s.Seats[seat] = nil
	}
	s.Seats[a.Seat] = &Player{
		ID:     a.PlayerID,
		Name:   a.Name,
		Seat:   a.Seat,
		Stack:  a.Stack,
		Status: StatusWaiting,
		SitIn:  true,
	}
	s.TimeBanks[a.Seat] = s.Config.TimeBankSeconds
	s.TotalChips += a.Stack
	s.record(ActionRecord{Type: ActionSit, PlayerID: a.PlayerID, Seat: a.Seat, Amount: a.Stack, At: at})
}

func (e *Engine) applyStand(s *GameState, a Stand, at time.Time) {
	seat := s.SeatOf(a.PlayerID)
	p := s.Seats[seat]
	s.TotalChips -= p.Stack
	s.Seats[seat] = nil
	s.TimeBanks[seat] = 0
	s.record(ActionRecord{Type: ActionStand, PlayerID: a.PlayerID, Seat: seat, Amount: p.Stack, At: at})
}

// applyAddChips credits the stack now, or at the next deal when the
// player holds cards in a running hand.
func (e *Engine) applyAddChips(s *GameState, a AddChips, at time.Time) {
	p := s.Seats[s.SeatOf(a.PlayerID)]
	if s.InHand && p.dealtIn() {
		p.Pending += a.Amount
	} else {
		p.Stack += a.Amount
		s.TotalChips += a.Amount
		if p.Status == StatusBusted {
			p.Status = StatusWaiting
		}
	}
	s.record(ActionRecord{Type: ActionAddChips, PlayerID: p.ID, Seat: p.Seat, Amount: a.Amount, At: at})
}

func (e *Engine) applyReserve(s *GameState, a ReserveSeat, at time.Time) {
	p := &Player{ID: a.PlayerID, Seat: a.Seat, Status: StatusReserved}
	if ttl := s.Config.ReservationTTL; ttl > 0 {
		p.ReservedUntil = at.Add(ttl)
	}
	s.Seats[a.Seat] = p
	s.record(ActionRecord{Type: ActionReserveSeat, PlayerID: a.PlayerID, Seat: a.Seat, At: at})
}

// applySitting records a sit-out or sit-in preference. It takes effect at
// once for players not holding cards and at the next deal otherwise.
func (e *Engine) applySitting(s *GameState, id string, sitIn bool, at time.Time) {
	p := s.Seats[s.SeatOf(id)]
	p.SitIn = sitIn
	if !(s.InHand && p.dealtIn()) {
		p.SittingOut = !sitIn
	}
	kind := ActionSitOut
	if sitIn {
		kind = ActionSitIn
	}
	s.record(ActionRecord{Type: kind, PlayerID: id, Seat: p.Seat, At: at})
}

func (e *Engine) applyShow(s *GameState, a Show, at time.Time) {
	p := s.Seats[s.SeatOf(a.PlayerID)]
	p.Shown = showIndexes(p, a.Cards)
	s.record(ActionRecord{Type: ActionShow, PlayerID: p.ID, Seat: p.Seat, Amount: len(p.Shown), At: at})
}

func (e *Engine) applyMuck(s *GameState, a Muck, at time.Time) {
	p := s.Seats[s.SeatOf(a.PlayerID)]
	p.Shown = nil
	s.record(ActionRecord{Type: ActionMuck, PlayerID: p.ID, Seat: p.Seat, At: at})
}

func (e *Engine) applyAdvanceBlindLevel(s *GameState, a AdvanceBlindLevel, at time.Time) {
	s.BlindLevel++
	s.record(ActionRecord{Type: ActionAdvanceBlindLevel, PlayerID: a.PlayerID, Seat: NoSeat, Amount: s.BlindLevel, At: at})
}
