package poker

// RandomSource yields uniform floats in [0, 1). *rand.Rand from math/rand
// and math/rand/v2 both satisfy it.
type RandomSource interface {
	Float64() float64
}

// Shuffle returns a fresh 52-card deck permuted by Fisher-Yates.
func Shuffle(src RandomSource) []Card {
	cards := FullDeck()
	for i := len(cards) - 1; i > 0; i-- {
		j := int(src.Float64() * float64(i+1))
		if j > i {
			j = i
		}
		cards[i], cards[j] = cards[j], cards[i]
	}
	return cards
}

// Deck deals from an ordered stack of cards.
type Deck struct {
	cards []Card
	next  int
}

// NewDeck creates a shuffled deck drawing randomness from src.
func NewDeck(src RandomSource) *Deck {
	return &Deck{cards: Shuffle(src)}
}

// DeckOf wraps an existing stack; the first card is dealt first.
func DeckOf(cards []Card) *Deck {
	return &Deck{cards: append([]Card(nil), cards...)}
}

// Deal deals n cards, or returns nil if fewer remain.
func (d *Deck) Deal(n int) []Card {
	if d.next+n > len(d.cards) {
		return nil
	}
	cards := append([]Card(nil), d.cards[d.next:d.next+n]...)
	d.next += n
	return cards
}

// DealOne deals a single card, or Hidden when the deck is empty.
func (d *Deck) DealOne() Card {
	if d.next >= len(d.cards) {
		return Hidden
	}
	card := d.cards[d.next]
	d.next++
	return card
}

// Burn discards the top card.
func (d *Deck) Burn() bool {
	return d.DealOne() != Hidden
}

// CardsRemaining returns the number of cards left to deal.
func (d *Deck) CardsRemaining() int {
	return len(d.cards) - d.next
}

// Remaining returns a copy of the undealt cards in dealing order.
func (d *Deck) Remaining() []Card {
	return append([]Card(nil), d.cards[d.next:]...)
}
