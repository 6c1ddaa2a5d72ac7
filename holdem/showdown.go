package holdem

import (
	"slices"
	"time"

	"github.com/lox/holdemcore/poker"
)

type scoredHand struct {
	score poker.HandScore
	desc  string
}

// showdown scores every live hand and pays each pot to its best eligible
// hands.
func (e *Engine) showdown(s *GameState, at time.Time) error {
	s.Street = Showdown
	s.ActionTo = NoSeat

	scores := make(map[int]scoredHand)
	for _, p := range s.Seats {
		if !p.InHand() {
			continue
		}
		cards := append(slices.Clone(p.HoleCards), s.Board...)
		score, desc, err := e.evaluator.Evaluate(cards)
		if err != nil {
			return corrupted(s, "evaluator", "seat %d: %v", p.Seat, err)
		}
		scores[p.Seat] = scoredHand{score: score, desc: desc}
	}

	winners := make(map[int]bool)
	for i, pot := range s.Pots {
		var best []int
		for _, seat := range pot.Eligible {
			sh, ok := scores[seat]
			if !ok {
				continue
			}
			switch {
			case len(best) == 0 || sh.score < scores[best[0]].score:
				best = []int{seat}
			case sh.score == scores[best[0]].score:
				best = append(best, seat)
			}
		}
		if len(best) == 0 {
			return corrupted(s, "pots", "pot %d has no live eligible seat", i)
		}
		e.payPot(s, i, best, func(seat int) (string, poker.HandScore) {
			return scores[seat].desc, scores[seat].score
		})
		for _, seat := range best {
			winners[seat] = true
		}
	}

	for seat := range scores {
		p := s.Seats[seat]
		if winners[seat] {
			p.Shown = showIndexes(p, nil)
		} else {
			p.Shown = nil
		}
	}
	finishHand(s)
	e.logger.Debug().Int("hand", s.HandNumber).Int("rake", s.Rake).Int("awards", len(s.Winners)).Msg("showdown settled")
	return nil
}

// winByFold pays everything to the last player standing without a showdown.
func (e *Engine) winByFold(s *GameState, at time.Time) error {
	collectBets(s, at)
	winner := s.nextPlayer(NoSeat, (*Player).InHand)
	for i := range s.Pots {
		e.payPot(s, i, []int{winner}, nil)
	}
	for _, p := range s.Seats {
		if p != nil {
			p.Shown = nil
		}
	}
	s.Street = Showdown
	finishHand(s)
	e.logger.Debug().Int("hand", s.HandNumber).Int("seat", winner).Msg("hand won uncontested")
	return nil
}

// payPot rakes pot i and splits the rest between winners. Odd chips go one
// at a time clockwise from the button, the button itself last.
func (e *Engine) payPot(s *GameState, i int, winners []int, describe func(int) (string, poker.HandScore)) {
	pot := s.Pots[i]
	rake := rakeFor(s, pot.Amount)
	s.Rake += rake
	s.TotalChips -= rake

	net := pot.Amount - rake
	share, odd := net/len(winners), net%len(winners)
	for k, seat := range oddChipOrder(len(s.Seats), s.ButtonSeat, winners) {
		amount := share
		if k < odd {
			amount++
		}
		p := s.Seats[seat]
		p.Stack += amount
		award := Award{Pot: i, Seat: seat, PlayerID: p.ID, Amount: amount}
		if k == 0 {
			award.Rake = rake
		}
		if describe != nil {
			award.Description, award.Score = describe(seat)
		}
		s.Winners = append(s.Winners, award)
	}
}

// rakeFor is the house cut of a pot given what this hand has already paid.
func rakeFor(s *GameState, amount int) int {
	cfg := s.Config
	if cfg.GameType != Cash || cfg.RakePercent <= 0 {
		return 0
	}
	if len(s.Board) < 3 && !cfg.RakePreflop {
		return 0
	}
	rake := amount * cfg.RakePercent / 100
	if cfg.RakeCap > 0 {
		rake = min(rake, max(cfg.RakeCap-s.Rake, 0))
	}
	return rake
}

// oddChipOrder sorts seats by clockwise distance from the button, the
// button seat coming last.
func oddChipOrder(n, button int, seats []int) []int {
	dist := func(seat int) int { return ((seat-button-1)%n + n) % n }
	out := slices.Clone(seats)
	slices.SortFunc(out, func(a, b int) int { return dist(a) - dist(b) })
	return out
}

// finishHand leaves the table between hands.
func finishHand(s *GameState) {
	s.Pots = nil
	s.InHand = false
	s.ActionTo = NoSeat
	s.LastAggressor = NoSeat
	s.CurrentBet = 0
	s.MinRaiseTo = 0
	for _, p := range s.Seats {
		if p == nil {
			continue
		}
		p.Bet = 0
		p.Acted = false
		if p.dealtIn() && p.Stack == 0 {
			p.Status = StatusBusted
		}
	}
}
