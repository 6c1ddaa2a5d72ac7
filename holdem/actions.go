package holdem

import (
	"fmt"
	"time"
)

// ActionType names an action. The trailing group is only ever written to
// history by the engine itself.
type ActionType int

const (
	ActionSit ActionType = iota
	ActionStand
	ActionAddChips
	ActionReserveSeat
	ActionSitOut
	ActionSitIn
	ActionDeal
	ActionFold
	ActionCheck
	ActionCall
	ActionBet
	ActionRaise
	ActionShow
	ActionMuck
	ActionTimeout
	ActionUseTimeBank
	ActionAdvanceBlindLevel

	ActionPostAnte
	ActionPostSmallBlind
	ActionPostBigBlind
	ActionReturnUncalled
	ActionUndo
)

var actionNames = map[ActionType]string{
	ActionSit:               "sit",
	ActionStand:             "stand",
	ActionAddChips:          "add_chips",
	ActionReserveSeat:       "reserve_seat",
	ActionSitOut:            "sit_out",
	ActionSitIn:             "sit_in",
	ActionDeal:              "deal",
	ActionFold:              "fold",
	ActionCheck:             "check",
	ActionCall:              "call",
	ActionBet:               "bet",
	ActionRaise:             "raise",
	ActionShow:              "show",
	ActionMuck:              "muck",
	ActionTimeout:           "timeout",
	ActionUseTimeBank:       "use_time_bank",
	ActionAdvanceBlindLevel: "advance_blind_level",
	ActionPostAnte:          "post_ante",
	ActionPostSmallBlind:    "post_small_blind",
	ActionPostBigBlind:      "post_big_blind",
	ActionReturnUncalled:    "return_uncalled",
	ActionUndo:              "undo",
}

func (t ActionType) String() string {
	if name, ok := actionNames[t]; ok {
		return name
	}
	return fmt.Sprintf("ActionType(%d)", int(t))
}

// Meta carries the fields common to every action. A zero At is stamped with
// the engine clock.
type Meta struct {
	PlayerID string
	At       time.Time
}

func (m Meta) meta() Meta { return m }

// Action is an input to the engine. The unexported meta method means any
// type embedding Meta satisfies it, but the engine only applies the types
// declared in this file and refuses the rest with KindUnknownAction.
type Action interface {
	Type() ActionType
	meta() Meta
}

// Sit takes an empty (or own, or expired reserved) seat with a buy-in.
type Sit struct {
	Meta
	Seat  int
	Name  string
	Stack int
}

// Stand leaves the table, taking the stack along.
type Stand struct{ Meta }

// AddChips tops up a cash game stack. Chips added during a hand are held
// until the next deal.
type AddChips struct {
	Meta
	Amount int
}

// ReserveSeat holds a seat for the player for the table's reservation TTL.
type ReserveSeat struct {
	Meta
	Seat int
}

// SitOut asks to skip hands starting with the next deal.
type SitOut struct{ Meta }

// SitIn asks to be dealt in again from the next deal.
type SitIn struct{ Meta }

// Deal starts a new hand.
type Deal struct{ Meta }

type Fold struct{ Meta }

type Check struct{ Meta }

type Call struct{ Meta }

// Bet puts the actor's street total at Amount. Facing a bet it is read as a
// call or a raise.
type Bet struct {
	Meta
	Amount int
}

// Raise puts the actor's street total at To.
type Raise struct {
	Meta
	To int
}

// Show reveals hole cards after the hand by index. Empty Cards shows both.
type Show struct {
	Meta
	Cards []int
}

// Muck keeps hole cards hidden after the hand.
type Muck struct{ Meta }

// Timeout acts for a player who ran out of time: check if free, else fold,
// then sit them out.
type Timeout struct{ Meta }

// UseTimeBank draws on the seat's time bank.
type UseTimeBank struct {
	Meta
	Seconds int
}

// AdvanceBlindLevel moves to the next blind level from the next deal.
type AdvanceBlindLevel struct{ Meta }

func (Sit) Type() ActionType               { return ActionSit }
func (Stand) Type() ActionType             { return ActionStand }
func (AddChips) Type() ActionType          { return ActionAddChips }
func (ReserveSeat) Type() ActionType       { return ActionReserveSeat }
func (SitOut) Type() ActionType            { return ActionSitOut }
func (SitIn) Type() ActionType             { return ActionSitIn }
func (Deal) Type() ActionType              { return ActionDeal }
func (Fold) Type() ActionType              { return ActionFold }
func (Check) Type() ActionType             { return ActionCheck }
func (Call) Type() ActionType              { return ActionCall }
func (Bet) Type() ActionType               { return ActionBet }
func (Raise) Type() ActionType             { return ActionRaise }
func (Show) Type() ActionType              { return ActionShow }
func (Muck) Type() ActionType              { return ActionMuck }
func (Timeout) Type() ActionType           { return ActionTimeout }
func (UseTimeBank) Type() ActionType       { return ActionUseTimeBank }
func (AdvanceBlindLevel) Type() ActionType { return ActionAdvanceBlindLevel }
