package holdem

import (
	"slices"

	"github.com/lox/holdemcore/poker"
)

// View returns the state as viewerID may see it. The deck and undo ring
// are dropped, the viewer's own cards are kept and everyone else's are
// hidden except for the positions they showed after a showdown. An empty
// viewerID is a spectator.
func View(s *GameState, viewerID string) *GameState {
	v := s.Clone()
	v.Deck = nil
	v.Undo = nil
	for _, p := range v.Seats {
		if p == nil || len(p.HoleCards) == 0 || (viewerID != "" && p.ID == viewerID) {
			continue
		}
		var shown []int
		if v.Street == Showdown {
			shown = p.Shown
		}
		for i := range p.HoleCards {
			if !slices.Contains(shown, i) {
				p.HoleCards[i] = poker.Hidden
			}
		}
	}
	return v
}
