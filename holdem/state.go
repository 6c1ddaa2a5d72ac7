package holdem

import (
	"fmt"
	"time"

	"github.com/lox/holdemcore/poker"
)

// NoSeat marks an absent seat reference (no button yet, nobody to act).
const NoSeat = -1

// GameType selects cash or tournament rules.
type GameType int

const (
	Cash GameType = iota
	Tournament
)

func (g GameType) String() string {
	switch g {
	case Cash:
		return "cash"
	case Tournament:
		return "tournament"
	}
	return fmt.Sprintf("GameType(%d)", int(g))
}

// ParseGameType accepts "cash" or "tournament".
func ParseGameType(s string) (GameType, error) {
	switch s {
	case "cash":
		return Cash, nil
	case "tournament":
		return Tournament, nil
	}
	return 0, fmt.Errorf("unknown game type %q", s)
}

// Street is the betting round. Showdown doubles as the between-hands state
// once a hand has been settled.
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
	Showdown
)

func (s Street) String() string {
	switch s {
	case Preflop:
		return "preflop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	case Showdown:
		return "showdown"
	}
	return fmt.Sprintf("Street(%d)", int(s))
}

// PlayerStatus describes a seat occupant's relationship to the current hand.
type PlayerStatus int

const (
	StatusWaiting PlayerStatus = iota
	StatusActive
	StatusFolded
	StatusAllIn
	StatusBusted
	StatusReserved
)

func (s PlayerStatus) String() string {
	switch s {
	case StatusWaiting:
		return "waiting"
	case StatusActive:
		return "active"
	case StatusFolded:
		return "folded"
	case StatusAllIn:
		return "all_in"
	case StatusBusted:
		return "busted"
	case StatusReserved:
		return "reserved"
	}
	return fmt.Sprintf("PlayerStatus(%d)", int(s))
}

// PotType distinguishes the main pot from side pots.
type PotType int

const (
	MainPot PotType = iota
	SidePot
)

func (p PotType) String() string {
	if p == MainPot {
		return "main"
	}
	return "side"
}

// BlindLevel is one step of the blind schedule.
type BlindLevel struct {
	SmallBlind int `json:"small_blind"`
	BigBlind   int `json:"big_blind"`
	Ante       int `json:"ante"`
}

// Player occupies a seat. A Reserved player is a placeholder holding the
// seat for ID until ReservedUntil.
type Player struct {
	ID            string       `json:"id"`
	Name          string       `json:"name,omitempty"`
	Seat          int          `json:"seat"`
	Stack         int          `json:"stack"`
	Bet           int          `json:"bet"`
	Invested      int          `json:"invested"`
	Pending       int          `json:"pending"`
	HoleCards     []poker.Card `json:"hole_cards,omitempty"`
	Status        PlayerStatus `json:"status"`
	Acted         bool         `json:"acted"`
	SittingOut    bool         `json:"sitting_out"`
	SitIn         bool         `json:"sit_in"`
	Shown         []int        `json:"shown,omitempty"`
	ReservedUntil time.Time    `json:"reserved_until,omitzero"`
}

// InHand reports whether the player was dealt into the current hand and
// has not folded.
func (p *Player) InHand() bool {
	return p != nil && (p.Status == StatusActive || p.Status == StatusAllIn)
}

// dealtIn reports whether the player holds cards this hand.
func (p *Player) dealtIn() bool {
	return p != nil && (p.Status == StatusActive || p.Status == StatusAllIn || p.Status == StatusFolded)
}

// canAct reports whether the player can still put chips in.
func (p *Player) canAct() bool {
	return p != nil && p.Status == StatusActive && p.Stack > 0
}

// Pot is a portion of the chips in the middle along with the seats that
// can win it, in ascending seat order.
type Pot struct {
	Amount   int     `json:"amount"`
	Eligible []int   `json:"eligible"`
	Type     PotType `json:"type"`
}

// Award is one winner's share of one pot.
type Award struct {
	Pot         int             `json:"pot"`
	Seat        int             `json:"seat"`
	PlayerID    string          `json:"player_id"`
	Amount      int             `json:"amount"`
	Rake        int             `json:"rake"`
	Description string          `json:"description,omitempty"`
	Score       poker.HandScore `json:"score,omitempty"`
}

// ActionRecord is one history entry. Engine generated entries (blinds,
// antes, returned bets) carry no player timestamp of their own.
type ActionRecord struct {
	Type     ActionType `json:"type"`
	PlayerID string     `json:"player_id,omitempty"`
	Seat     int        `json:"seat"`
	Amount   int        `json:"amount,omitempty"`
	Street   Street     `json:"street"`
	At       time.Time  `json:"at"`
}

// GameState is an immutable snapshot of a table. The engine never mutates a
// state it was handed; every transition returns a fresh copy.
type GameState struct {
	Config TableConfig `json:"config"`

	Seats     []*Player `json:"seats"`
	TimeBanks []int     `json:"time_banks"`
	LastDealt []bool    `json:"last_dealt"`

	HandID     string `json:"hand_id,omitempty"`
	HandNumber int    `json:"hand_number"`
	InHand     bool   `json:"in_hand"`
	Street     Street `json:"street"`

	ButtonSeat     int `json:"button_seat"`
	SmallBlindSeat int `json:"small_blind_seat"`
	BigBlindSeat   int `json:"big_blind_seat"`
	ActionTo       int `json:"action_to"`

	BlindLevel int        `json:"blind_level"`
	HandBlinds BlindLevel `json:"hand_blinds"`

	CurrentBet      int `json:"current_bet"`
	MinRaiseTo      int `json:"min_raise_to"`
	LastRaiseAmount int `json:"last_raise_amount"`
	LastAggressor   int `json:"last_aggressor"`

	Board []poker.Card `json:"board,omitempty"`
	Deck  []poker.Card `json:"deck,omitempty"`
	Pots  []Pot        `json:"pots,omitempty"`

	Winners []Award `json:"winners,omitempty"`
	Rake    int     `json:"rake"`

	TotalChips int            `json:"total_chips"`
	History    []ActionRecord `json:"history,omitempty"`

	Undo []*GameState `json:"-"`
}

// Player returns the occupant of seat, or nil.
func (s *GameState) Player(seat int) *Player {
	if seat < 0 || seat >= len(s.Seats) {
		return nil
	}
	return s.Seats[seat]
}

// SeatOf returns the seat held by playerID, including reservations, or
// NoSeat.
func (s *GameState) SeatOf(playerID string) int {
	for i, p := range s.Seats {
		if p != nil && p.ID == playerID {
			return i
		}
	}
	return NoSeat
}

// Bets returns each seat's chips bet this street.
func (s *GameState) Bets() []int {
	bets := make([]int, len(s.Seats))
	for i, p := range s.Seats {
		if p != nil {
			bets[i] = p.Bet
		}
	}
	return bets
}

// PotTotal sums collected pots and chips bet this street.
func (s *GameState) PotTotal() int {
	total := 0
	for _, pot := range s.Pots {
		total += pot.Amount
	}
	for _, p := range s.Seats {
		if p != nil {
			total += p.Bet
		}
	}
	return total
}

// countSeats counts occupants matching pred.
func (s *GameState) countSeats(pred func(*Player) bool) int {
	n := 0
	for _, p := range s.Seats {
		if p != nil && pred(p) {
			n++
		}
	}
	return n
}

func (s *GameState) record(rec ActionRecord) {
	rec.Street = s.Street
	s.History = append(s.History, rec)
}

// lastActionAt returns the newest history timestamp.
func (s *GameState) lastActionAt() time.Time {
	if len(s.History) == 0 {
		return time.Time{}
	}
	return s.History[len(s.History)-1].At
}
