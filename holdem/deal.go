package holdem

import (
	"time"

	"github.com/google/uuid"

	"github.com/lox/holdemcore/poker"
)

// applyDeal starts a new hand: it settles pending table changes, moves the
// button, shuffles, deals hole cards and posts antes and blinds.
func (e *Engine) applyDeal(s *GameState, at time.Time) error {
	for i, p := range s.Seats {
		if p != nil && p.Status == StatusReserved && reservationExpired(p, at) {
			s.Seats[i] = nil
		}
	}

	s.resetHand()
	s.HandNumber++
	s.HandBlinds = s.Config.Level(s.BlindLevel)

	dealt := make([]bool, len(s.Seats))
	for i, p := range s.Seats {
		if p == nil || p.Status == StatusReserved {
			continue
		}
		s.TotalChips += p.Pending
		p.Stack += p.Pending
		p.Pending = 0
		p.SittingOut = !p.SitIn
		p.Bet, p.Invested, p.Acted = 0, 0, false
		p.HoleCards, p.Shown = nil, nil
		switch {
		case s.willPlay(p):
			p.Status = StatusActive
			dealt[i] = true
		case p.Stack == 0:
			p.Status = StatusBusted
		default:
			p.Status = StatusWaiting
		}
	}

	pos := s.assignPositions(dealt)
	s.ButtonSeat = pos.Button
	s.SmallBlindSeat = pos.SmallBlind
	s.BigBlindSeat = pos.BigBlind
	s.LastDealt = dealt

	id, err := uuid.NewRandomFromReader(poker.ByteReader{Source: e.random})
	if err != nil {
		return corrupted(s, "hand_id", "%v", err)
	}
	s.HandID = id.String()

	deck := poker.DeckOf(e.shuffle(e.random))
	order := dealOrder(s, dealt)
	for range 2 {
		for _, seat := range order {
			s.Seats[seat].HoleCards = append(s.Seats[seat].HoleCards, deck.DealOne())
		}
	}
	s.Deck = deck.Remaining()

	s.InHand = true
	s.Street = Preflop
	s.record(ActionRecord{Type: ActionDeal, Seat: s.ButtonSeat, At: at})
	e.postForcedBets(s, at)

	s.CurrentBet = s.HandBlinds.BigBlind
	s.LastRaiseAmount = s.HandBlinds.BigBlind
	s.MinRaiseTo = 2 * s.HandBlinds.BigBlind
	s.LastAggressor = NoSeat

	e.logger.Debug().
		Int("hand", s.HandNumber).
		Str("hand_id", s.HandID).
		Int("button", s.ButtonSeat).
		Int("small_blind", s.SmallBlindSeat).
		Int("big_blind", s.BigBlindSeat).
		Msg("hand dealt")

	if s.roundClosed() {
		return e.closeStreet(s, at)
	}
	s.ActionTo = s.firstToAct()
	return nil
}

// dealOrder lists the seats holding cards clockwise from the seat after
// the button.
func dealOrder(s *GameState, dealt []bool) []int {
	n := len(s.Seats)
	var order []int
	for i := 1; i <= n; i++ {
		if seat := (s.ButtonSeat + i) % n; dealt[seat] {
			order = append(order, seat)
		}
	}
	return order
}

// postForcedBets takes antes into the pot and blinds into street bets.
func (e *Engine) postForcedBets(s *GameState, at time.Time) {
	blinds := s.HandBlinds
	if blinds.Ante > 0 {
		for _, p := range s.Seats {
			if p == nil || p.Status != StatusActive {
				continue
			}
			amount := min(blinds.Ante, p.Stack)
			p.Stack -= amount
			p.Invested += amount
			if p.Stack == 0 {
				p.Status = StatusAllIn
			}
			s.record(ActionRecord{Type: ActionPostAnte, PlayerID: p.ID, Seat: p.Seat, Amount: amount, At: at})
		}
		s.Pots = FormPots(s.Seats)
	}

	post := func(seat, amount int, kind ActionType) {
		p := s.Player(seat)
		if p == nil || !s.LastDealt[seat] || p.Status != StatusActive {
			return
		}
		amount = min(amount, p.Stack)
		putIn(p, amount)
		s.record(ActionRecord{Type: kind, PlayerID: p.ID, Seat: seat, Amount: amount, At: at})
	}
	post(s.SmallBlindSeat, blinds.SmallBlind, ActionPostSmallBlind)
	post(s.BigBlindSeat, blinds.BigBlind, ActionPostBigBlind)
}

// resetHand clears everything scoped to a single hand.
func (s *GameState) resetHand() {
	s.Board = nil
	s.Deck = nil
	s.Pots = nil
	s.Winners = nil
	s.Rake = 0
	s.History = nil
	s.HandID = ""
	s.CurrentBet = 0
	s.MinRaiseTo = 0
	s.LastRaiseAmount = 0
	s.LastAggressor = NoSeat
	s.ActionTo = NoSeat
	s.SmallBlindSeat = NoSeat
	s.BigBlindSeat = NoSeat
}
