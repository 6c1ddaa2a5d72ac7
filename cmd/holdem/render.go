package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lox/holdemcore/holdem"
	"github.com/lox/holdemcore/internal/config"
	"github.com/lox/holdemcore/internal/simulator"
	"github.com/lox/holdemcore/poker"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	winStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...)
}

func renderResults(results []simulator.Result) string {
	t := newTable("TABLE", "HANDS", "SHOWDOWNS", "TRANSITIONS", "REBUYS", "BOUGHT", "RAKE", "BIGGEST POT", "CHIPS")
	for _, r := range results {
		t.Row(r.Table,
			strconv.Itoa(r.Hands),
			strconv.Itoa(r.Showdowns),
			strconv.Itoa(r.Transitions),
			strconv.Itoa(r.Rebuys),
			strconv.Itoa(r.Bought),
			strconv.Itoa(r.Rake),
			strconv.Itoa(r.BiggestPot),
			strconv.Itoa(r.FinalChips),
		)
	}
	return titleStyle.Render(" Simulation ") + "\n" + t.String()
}

func renderConfig(f *config.File) string {
	t := newTable("TABLE", "TYPE", "SEATS", "LEVELS", "BLINDS", "RAKE", "BUY-IN")
	for _, tc := range f.Tables {
		var blinds []string
		for _, l := range tc.Levels {
			b := fmt.Sprintf("%d/%d", l.SmallBlind, l.BigBlind)
			if l.Ante > 0 {
				b += fmt.Sprintf("+%d", l.Ante)
			}
			blinds = append(blinds, b)
		}
		rake := "-"
		if tc.RakePercent > 0 {
			rake = fmt.Sprintf("%d%% cap %d", tc.RakePercent, tc.RakeCap)
		}
		buyIn := "-"
		if tc.MinBuyIn > 0 || tc.MaxBuyIn > 0 {
			buyIn = fmt.Sprintf("%d-%d", tc.MinBuyIn, tc.MaxBuyIn)
		}
		t.Row(tc.Name, tc.GameType, strconv.Itoa(tc.MaxSeats), strconv.Itoa(len(tc.Levels)), strings.Join(blinds, " "), rake, buyIn)
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(" Tables "))
	b.WriteString("\n")
	b.WriteString(t.String())
	if sim := f.Simulation; sim != nil {
		fmt.Fprintf(&b, "\n%s %d hands, %d players, buy-in %d, seed %d",
			labelStyle.Render("simulation:"), sim.Hands, sim.Players, sim.BuyIn, sim.Seed)
	}
	return b.String()
}

func renderState(s *holdem.GameState) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf(" %s hand #%d ", s.Config.Name, s.HandNumber)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s  %s %s  %s %d\n",
		labelStyle.Render("street:"), s.Street,
		labelStyle.Render("board:"), orDash(poker.FormatCards(s.Board)),
		labelStyle.Render("pot:"), s.PotTotal())

	t := newTable("SEAT", "PLAYER", "STACK", "BET", "STATUS", "CARDS")
	for i, p := range s.Seats {
		if p == nil {
			continue
		}
		seat := strconv.Itoa(i)
		switch i {
		case s.ButtonSeat:
			seat += " D"
		case s.ActionTo:
			seat += " *"
		}
		t.Row(seat, p.ID, strconv.Itoa(p.Stack), strconv.Itoa(p.Bet), p.Status.String(), orDash(poker.FormatCards(p.HoleCards)))
	}
	b.WriteString(t.String())

	for _, w := range s.Winners {
		line := fmt.Sprintf("%s wins %d from pot %d", w.PlayerID, w.Amount, w.Pot)
		if w.Description != "" {
			line += " with " + w.Description
		}
		b.WriteString("\n" + winStyle.Render(line))
	}
	if s.Rake > 0 {
		fmt.Fprintf(&b, "\n%s %d", labelStyle.Render("rake:"), s.Rake)
	}
	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
