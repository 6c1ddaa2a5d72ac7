package holdem

// nextSeat walks clockwise from the seat after from, wrapping once and
// ending on from itself, and returns the first seat matching pred. A from
// of NoSeat starts the walk at seat 0.
func nextSeat(n, from int, pred func(seat int) bool) int {
	if n <= 0 {
		return NoSeat
	}
	if from < 0 {
		from = n - 1
	}
	for i := 1; i <= n; i++ {
		seat := (from + i) % n
		if pred(seat) {
			return seat
		}
	}
	return NoSeat
}

// nextPlayer is nextSeat over occupants.
func (s *GameState) nextPlayer(from int, pred func(*Player) bool) int {
	return nextSeat(len(s.Seats), from, func(seat int) bool {
		p := s.Seats[seat]
		return p != nil && pred(p)
	})
}

// willPlay reports whether the player is dealt into the next hand.
func (s *GameState) willPlay(p *Player) bool {
	if p == nil || p.Status == StatusReserved || p.Stack <= 0 {
		return false
	}
	return s.Config.GameType == Tournament || !p.SittingOut
}

// positions are the forced-bet seats of one hand. Button and SmallBlind
// may be vacant or non-playing seats, in which case the button is dead and
// no small blind is posted.
type positions struct {
	Button     int
	SmallBlind int
	BigBlind   int
}

// assignPositions moves the button and picks the blinds for a hand dealt to
// the seats flagged in dealt.
//
// With three or more players the button moves to the next seat index
// whether or not anyone sits there, and the small blind is always the seat
// after the button. The big blind is the next seat after the small blind
// that is dealt in.
func (s *GameState) assignPositions(dealt []bool) positions {
	n := len(s.Seats)
	inHand := func(seat int) bool { return dealt[seat] }

	count := 0
	for _, d := range dealt {
		if d {
			count++
		}
	}

	if count == 2 {
		// Heads-up: the button posts the small blind.
		button := nextSeat(n, s.ButtonSeat, inHand)
		return positions{
			Button:     button,
			SmallBlind: button,
			BigBlind:   nextSeat(n, button, inHand),
		}
	}

	var button int
	if s.ButtonSeat == NoSeat {
		button = nextSeat(n, NoSeat, inHand)
	} else {
		button = (s.ButtonSeat + 1) % n
	}
	small := (button + 1) % n
	return positions{
		Button:     button,
		SmallBlind: small,
		BigBlind:   nextSeat(n, small, inHand),
	}
}

// firstToAct returns the opening seat of the current street.
func (s *GameState) firstToAct() int {
	from := s.ButtonSeat
	if s.Street == Preflop {
		from = s.BigBlindSeat
	}
	return s.nextPlayer(from, s.needsToAct)
}

// needsToAct reports whether p still owes a decision this street.
func (s *GameState) needsToAct(p *Player) bool {
	return p.canAct() && (!p.Acted || p.Bet < s.CurrentBet)
}

// roundClosed reports whether the current betting round is complete.
func (s *GameState) roundClosed() bool {
	var open []*Player
	for _, p := range s.Seats {
		if p.canAct() {
			open = append(open, p)
		}
	}
	switch len(open) {
	case 0:
		return true
	case 1:
		// Nobody left to bet against: done once the bet is matched.
		return open[0].Bet >= s.CurrentBet
	}
	for _, p := range open {
		if !p.Acted || p.Bet != s.CurrentBet {
			return false
		}
	}
	return true
}
