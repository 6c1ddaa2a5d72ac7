package holdem

import "github.com/lox/holdemcore/poker"

// Audit verifies the structural invariants of s: chip conservation, no
// negative amounts, sound pots and seat pointers and no duplicated cards.
// Violations are reported as *InvariantError.
func Audit(s *GameState) error {
	if len(s.Seats) != s.Config.MaxSeats {
		return corrupted(s, "seats", "%d seats for a %d-max table", len(s.Seats), s.Config.MaxSeats)
	}
	if len(s.TimeBanks) != len(s.Seats) || len(s.LastDealt) != len(s.Seats) {
		return corrupted(s, "seats", "per-seat slices do not match the table size")
	}

	chips, bets, invested := 0, 0, 0
	var cards poker.Hand
	seen := func(c poker.Card) error {
		if !c.Valid() {
			return corrupted(s, "cards", "invalid card %d", uint64(c))
		}
		if cards.HasCard(c) {
			return corrupted(s, "cards", "%s appears twice", c)
		}
		cards.AddCard(c)
		return nil
	}

	for i, p := range s.Seats {
		if p == nil {
			continue
		}
		if p.Seat != i {
			return corrupted(s, "seats", "player %s in seat %d claims seat %d", p.ID, i, p.Seat)
		}
		if p.Stack < 0 || p.Bet < 0 || p.Invested < 0 || p.Pending < 0 {
			return corrupted(s, "non_negative", "seat %d has a negative amount", i)
		}
		if s.TimeBanks[i] < 0 {
			return corrupted(s, "non_negative", "seat %d has a negative time bank", i)
		}
		if p.Status == StatusReserved && (p.Stack != 0 || p.Bet != 0) {
			return corrupted(s, "seats", "reserved seat %d holds chips", i)
		}
		if p.Bet > 0 && !p.dealtIn() {
			return corrupted(s, "bets", "seat %d bets without cards", i)
		}
		for _, c := range p.HoleCards {
			if err := seen(c); err != nil {
				return err
			}
		}
		chips += p.Stack
		bets += p.Bet
		invested += p.Invested
	}

	for _, c := range s.Board {
		if err := seen(c); err != nil {
			return err
		}
	}
	for _, c := range s.Deck {
		if err := seen(c); err != nil {
			return err
		}
	}
	if len(s.Board) > 5 {
		return corrupted(s, "cards", "%d board cards", len(s.Board))
	}

	pots := 0
	for i, pot := range s.Pots {
		if pot.Amount < 0 {
			return corrupted(s, "non_negative", "pot %d is negative", i)
		}
		if len(pot.Eligible) == 0 {
			return corrupted(s, "pots", "pot %d has no eligible seat", i)
		}
		for _, seat := range pot.Eligible {
			if !s.Player(seat).InHand() {
				return corrupted(s, "pots", "pot %d lists seat %d which is not live", i, seat)
			}
		}
		pots += pot.Amount
	}

	if chips+pots+bets != s.TotalChips {
		return corrupted(s, "conservation", "stacks %d + pots %d + bets %d != total %d", chips, pots, bets, s.TotalChips)
	}
	if s.Rake < 0 || s.CurrentBet < 0 || s.TotalChips < 0 {
		return corrupted(s, "non_negative", "negative table amount")
	}

	if s.ButtonSeat != NoSeat && (s.ButtonSeat < 0 || s.ButtonSeat >= len(s.Seats)) {
		return corrupted(s, "button", "button seat %d out of range", s.ButtonSeat)
	}

	if !s.InHand {
		if s.ActionTo != NoSeat {
			return corrupted(s, "action_to", "action on seat %d between hands", s.ActionTo)
		}
		if pots+bets != 0 {
			return corrupted(s, "conservation", "%d chips left in the middle between hands", pots+bets)
		}
		return nil
	}

	if pots+bets != invested {
		return corrupted(s, "conservation", "pots %d + bets %d != invested %d", pots, bets, invested)
	}
	if s.ActionTo != NoSeat {
		p := s.Player(s.ActionTo)
		if p == nil || p.Status != StatusActive {
			return corrupted(s, "action_to", "action on seat %d which cannot act", s.ActionTo)
		}
	}
	return nil
}
