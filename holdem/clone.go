package holdem

import "slices"

// Clone returns a deep copy of s. The undo ring is copied shallowly; its
// entries are never mutated.
func (s *GameState) Clone() *GameState {
	if s == nil {
		return nil
	}
	c := *s
	c.Config.BlindLevels = slices.Clone(s.Config.BlindLevels)
	c.Seats = make([]*Player, len(s.Seats))
	for i, p := range s.Seats {
		c.Seats[i] = p.clone()
	}
	c.TimeBanks = slices.Clone(s.TimeBanks)
	c.LastDealt = slices.Clone(s.LastDealt)
	c.Board = slices.Clone(s.Board)
	c.Deck = slices.Clone(s.Deck)
	c.Pots = clonePots(s.Pots)
	c.Winners = slices.Clone(s.Winners)
	c.History = slices.Clone(s.History)
	c.Undo = slices.Clone(s.Undo)
	return &c
}

func (p *Player) clone() *Player {
	if p == nil {
		return nil
	}
	c := *p
	c.HoleCards = slices.Clone(p.HoleCards)
	c.Shown = slices.Clone(p.Shown)
	return &c
}

func clonePots(pots []Pot) []Pot {
	if pots == nil {
		return nil
	}
	out := make([]Pot, len(pots))
	for i, pot := range pots {
		out[i] = Pot{Amount: pot.Amount, Eligible: slices.Clone(pot.Eligible), Type: pot.Type}
	}
	return out
}
