package holdem

import (
	"time"

	"github.com/lox/holdemcore/poker"
)

// boardSize is the number of community cards showing on each street.
var boardSize = map[Street]int{Preflop: 0, Flop: 3, Turn: 4, River: 5}

// returnUncalled gives the highest bettor back whatever nobody matched.
func returnUncalled(s *GameState, at time.Time) {
	top, second := NoSeat, 0
	for i, p := range s.Seats {
		if p == nil || p.Bet == 0 {
			continue
		}
		switch {
		case top == NoSeat || p.Bet > s.Seats[top].Bet:
			if top != NoSeat {
				second = s.Seats[top].Bet
			}
			top = i
		case p.Bet > second:
			second = p.Bet
		}
	}
	if top == NoSeat {
		return
	}
	p := s.Seats[top]
	excess := p.Bet - second
	if excess <= 0 {
		return
	}
	p.Bet -= excess
	p.Invested -= excess
	p.Stack += excess
	if p.Status == StatusAllIn {
		p.Status = StatusActive
	}
	if s.CurrentBet > p.Bet {
		s.CurrentBet = p.Bet
	}
	s.record(ActionRecord{Type: ActionReturnUncalled, PlayerID: p.ID, Seat: p.Seat, Amount: excess, At: at})
}

// collectBets returns uncalled chips and sweeps the street's bets into pots.
func collectBets(s *GameState, at time.Time) {
	returnUncalled(s, at)
	s.Pots = FormPots(s.Seats)
	for _, p := range s.Seats {
		if p != nil {
			p.Bet = 0
			p.Acted = false
		}
	}
	s.CurrentBet = 0
	s.LastAggressor = NoSeat
	s.LastRaiseAmount = s.HandBlinds.BigBlind
	s.MinRaiseTo = s.HandBlinds.BigBlind
}

// closeStreet ends the betting round and moves to the next street, running
// the board out when at most one player can still bet.
func (e *Engine) closeStreet(s *GameState, at time.Time) error {
	collectBets(s, at)
	s.ActionTo = NoSeat

	if s.countSeats((*Player).canAct) <= 1 {
		for s.Street < River {
			if err := dealStreet(s); err != nil {
				return err
			}
		}
		e.logger.Debug().Int("hand", s.HandNumber).Str("board", poker.FormatCards(s.Board)).Msg("board run out")
		return e.showdown(s, at)
	}

	if s.Street == River {
		return e.showdown(s, at)
	}
	if err := dealStreet(s); err != nil {
		return err
	}
	s.ActionTo = s.firstToAct()
	return nil
}

// dealStreet burns one card and deals the next street's board cards.
func dealStreet(s *GameState) error {
	next := s.Street + 1
	want := boardSize[next] - len(s.Board)
	deck := poker.DeckOf(s.Deck)
	if !deck.Burn() {
		return corrupted(s, "deck", "no card to burn before the %s", next)
	}
	cards := deck.Deal(want)
	if cards == nil {
		return corrupted(s, "deck", "deck exhausted dealing the %s", next)
	}
	s.Board = append(s.Board, cards...)
	s.Deck = deck.Remaining()
	s.Street = next
	return nil
}
