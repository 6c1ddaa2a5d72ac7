package holdem

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

var (
	// ErrIllegalAction matches every rejected action.
	ErrIllegalAction = errors.New("illegal action")
	// ErrStateCorrupted matches every failed state audit.
	ErrStateCorrupted = errors.New("state corrupted")
)

// ErrorKind classifies a rejected action.
type ErrorKind string

const (
	KindUnknownAction      ErrorKind = "unknown_action"
	KindInvalidTimestamp   ErrorKind = "invalid_timestamp"
	KindInvalidPlayer      ErrorKind = "invalid_player"
	KindSeatInvalid        ErrorKind = "seat_invalid"
	KindSeatOccupied       ErrorKind = "seat_occupied"
	KindAlreadySeated      ErrorKind = "already_seated"
	KindNotSeated          ErrorKind = "not_seated"
	KindInvalidAmount      ErrorKind = "invalid_amount"
	KindBuyInOutOfRange    ErrorKind = "buy_in_out_of_range"
	KindNotInTournament    ErrorKind = "not_allowed_in_tournament"
	KindHandInProgress     ErrorKind = "hand_in_progress"
	KindNoHandInProgress   ErrorKind = "no_hand_in_progress"
	KindNotEnoughPlayers   ErrorKind = "not_enough_players"
	KindNotYourTurn        ErrorKind = "not_your_turn"
	KindPlayerNotActive    ErrorKind = "player_not_active"
	KindNoChips            ErrorKind = "no_chips"
	KindCannotCheck        ErrorKind = "cannot_check"
	KindNothingToCall      ErrorKind = "nothing_to_call"
	KindBetTooSmall        ErrorKind = "bet_too_small"
	KindRaiseTooSmall      ErrorKind = "raise_too_small"
	KindBettingNotReopened ErrorKind = "betting_not_reopened"
	KindNoOpponent         ErrorKind = "no_opponent"
	KindCannotShow         ErrorKind = "cannot_show"
	KindInvalidCards       ErrorKind = "invalid_cards"
	KindNoTimeBank         ErrorKind = "no_time_bank"
	KindNoMoreBlindLevels  ErrorKind = "no_more_blind_levels"
	KindNothingToUndo      ErrorKind = "nothing_to_undo"
)

// ActionError explains why an action was rejected. Fields carries the
// numbers a client needs to correct itself, e.g. the minimum raise.
type ActionError struct {
	Kind     ErrorKind
	Action   ActionType
	PlayerID string
	Fields   map[string]int
}

func (e *ActionError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s rejected: %s", e.Action, e.Kind)
	if e.PlayerID != "" {
		fmt.Fprintf(&b, " (player %s)", e.PlayerID)
	}
	for _, k := range slices.Sorted(maps.Keys(e.Fields)) {
		fmt.Fprintf(&b, " %s=%d", k, e.Fields[k])
	}
	return b.String()
}

func (e *ActionError) Unwrap() error { return ErrIllegalAction }

// reject builds an ActionError; kv alternates field names and values.
func reject(a Action, kind ErrorKind, kv ...any) *ActionError {
	e := &ActionError{Kind: kind, Action: a.Type(), PlayerID: a.meta().PlayerID}
	for i := 0; i+1 < len(kv); i += 2 {
		if e.Fields == nil {
			e.Fields = make(map[string]int)
		}
		e.Fields[kv[i].(string)] = kv[i+1].(int)
	}
	return e
}

// InvariantError reports a state that violates a structural invariant.
type InvariantError struct {
	Check      string
	Detail     string
	HandNumber int
	Street     Street
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant %s violated in hand %d (%s): %s", e.Check, e.HandNumber, e.Street, e.Detail)
}

func (e *InvariantError) Unwrap() error { return ErrStateCorrupted }

func corrupted(s *GameState, check, format string, args ...any) *InvariantError {
	return &InvariantError{
		Check:      check,
		Detail:     fmt.Sprintf(format, args...),
		HandNumber: s.HandNumber,
		Street:     s.Street,
	}
}
