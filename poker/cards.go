package poker

import (
	"fmt"
	"math/bits"
	"strings"
)

// Card is a single playing card stored as one bit in a 52-bit space
// (suit*13 + rank). The zero value is Hidden.
type Card uint64

// Hand is a set of cards.
type Hand uint64

// Hidden marks a face-down card in a masked view.
const Hidden Card = 0

// Ranks, Two through Ace.
const (
	Two uint8 = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Suits.
const (
	Clubs uint8 = iota
	Diamonds
	Hearts
	Spades
)

const (
	rankChars = "23456789TJQKA"
	suitChars = "cdhs"
)

// NewCard returns the card with the given rank (0-12) and suit (0-3).
func NewCard(rank, suit uint8) Card {
	return Card(1) << (uint(suit)*13 + uint(rank))
}

func (c Card) index() int {
	return bits.TrailingZeros64(uint64(c))
}

// Valid reports whether c names exactly one of the 52 cards.
func (c Card) Valid() bool {
	return bits.OnesCount64(uint64(c)) == 1 && c.index() < 52
}

// Rank returns the card rank, Two=0 through Ace=12.
func (c Card) Rank() uint8 {
	return uint8(c.index() % 13)
}

// Suit returns the card suit, Clubs=0 through Spades=3.
func (c Card) Suit() uint8 {
	return uint8(c.index() / 13)
}

func (c Card) String() string {
	if !c.Valid() {
		return "??"
	}
	return string([]byte{rankChars[c.Rank()], suitChars[c.Suit()]})
}

func (c Card) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Card) UnmarshalText(text []byte) error {
	if string(text) == "??" {
		*c = Hidden
		return nil
	}
	parsed, err := ParseCard(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCard parses a two character card such as "As" or "Td".
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Hidden, fmt.Errorf("invalid card %q", s)
	}
	rank := strings.IndexByte(rankChars, upper(s[0]))
	suit := strings.IndexByte(suitChars, lower(s[1]))
	if rank < 0 || suit < 0 {
		return Hidden, fmt.Errorf("invalid card %q", s)
	}
	return NewCard(uint8(rank), uint8(suit)), nil
}

// ParseCards parses a whitespace separated list of cards.
func ParseCards(s string) ([]Card, error) {
	fields := strings.Fields(s)
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// MustParseCards is ParseCards for literals; it panics on bad input.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

// FormatCards renders cards separated by spaces.
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// FullDeck returns the 52 cards in suit-major order.
func FullDeck() []Card {
	cards := make([]Card, 0, 52)
	for suit := range uint8(4) {
		for rank := range uint8(13) {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return cards
}

// NewHand builds a hand from cards.
func NewHand(cards ...Card) Hand {
	var h Hand
	for _, c := range cards {
		h |= Hand(c)
	}
	return h
}

func (h Hand) HasCard(c Card) bool {
	return h&Hand(c) != 0
}

func (h *Hand) AddCard(c Card) {
	*h |= Hand(c)
}

func (h Hand) CountCards() int {
	return bits.OnesCount64(uint64(h))
}

// GetSuitMask returns the 13-bit rank mask of the given suit.
func (h Hand) GetSuitMask(suit uint8) uint16 {
	return uint16((uint64(h) >> (uint(suit) * 13)) & 0x1FFF)
}

// Cards lists the hand in suit-major order.
func (h Hand) Cards() []Card {
	cards := make([]Card, 0, h.CountCards())
	for v := uint64(h); v != 0; v &= v - 1 {
		cards = append(cards, Card(1)<<bits.TrailingZeros64(v))
	}
	return cards
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b - 'A' + 'a'
	}
	return b
}
