package holdem

import (
	"slices"
	"sort"
)

// FormPots splits everything the seated players have invested this hand
// into a main pot and side pots.
//
// Each distinct invested level caps a pot worth (level - previous level)
// times the number of players who reached it. Folded players' chips count
// toward the amount but folded players are never eligible. A level nobody
// eligible reached (a folded player out-invested everyone still in) is
// merged into the pot below it, or into the first pot formed above it.
// Every other level forms its own pot, even when its eligible seats match
// the pot below.
func FormPots(seats []*Player) []Pot {
	type contribution struct {
		seat     int
		amount   int
		eligible bool
	}

	var contributions []contribution
	for i, p := range seats {
		if p != nil && p.Invested > 0 {
			contributions = append(contributions, contribution{
				seat:     i,
				amount:   p.Invested,
				eligible: p.InHand(),
			})
		}
	}
	if len(contributions) == 0 {
		return nil
	}
	sort.Slice(contributions, func(i, j int) bool {
		return contributions[i].amount < contributions[j].amount
	})

	var pots []Pot
	carry := 0
	prevLevel := 0
	for i, c := range contributions {
		if c.amount == prevLevel {
			continue
		}
		amount := (c.amount-prevLevel)*(len(contributions)-i) + carry
		prevLevel = c.amount

		var eligible []int
		for _, above := range contributions[i:] {
			if above.eligible {
				eligible = append(eligible, above.seat)
			}
		}

		switch {
		case len(eligible) > 0:
			slices.Sort(eligible)
			pots = append(pots, Pot{Amount: amount, Eligible: eligible, Type: SidePot})
			carry = 0
		case len(pots) > 0:
			pots[len(pots)-1].Amount += amount
		default:
			carry = amount
		}
	}
	if carry > 0 && len(pots) > 0 {
		pots[len(pots)-1].Amount += carry
	}
	if len(pots) > 0 {
		pots[0].Type = MainPot
	}
	return pots
}
