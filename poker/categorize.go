package poker

// HoleCardCategory buckets starting hands by preflop strength.
type HoleCardCategory string

const (
	CategoryPremium HoleCardCategory = "Premium"
	CategoryStrong  HoleCardCategory = "Strong"
	CategoryMedium  HoleCardCategory = "Medium"
	CategoryWeak    HoleCardCategory = "Weak"
	CategoryTrash   HoleCardCategory = "Trash"
	CategoryUnknown HoleCardCategory = "Unknown"
)

// Rank orders categories from Trash (0) to Premium (4); Unknown is -1.
func (c HoleCardCategory) Rank() int {
	switch c {
	case CategoryPremium:
		return 4
	case CategoryStrong:
		return 3
	case CategoryMedium:
		return 2
	case CategoryWeak:
		return 1
	case CategoryTrash:
		return 0
	}
	return -1
}

// CategorizeHoleCards classifies two hole cards:
// Premium JJ+ and AK, Strong TT AQ AJ, Medium 77-99 and suited broadway,
// Weak 22-66 and suited connectors, everything else Trash.
func CategorizeHoleCards(hole []Card) HoleCardCategory {
	if len(hole) != 2 || !hole[0].Valid() || !hole[1].Valid() || hole[0] == hole[1] {
		return CategoryUnknown
	}
	lo, hi := hole[0].Rank(), hole[1].Rank()
	if lo > hi {
		lo, hi = hi, lo
	}
	suited := hole[0].Suit() == hole[1].Suit()
	pair := lo == hi

	switch {
	case pair && lo >= Jack, lo == King && hi == Ace:
		return CategoryPremium
	case pair && lo == Ten, hi == Ace && (lo == Queen || lo == Jack):
		return CategoryStrong
	case pair && lo >= Seven, suited && lo >= Ten:
		return CategoryMedium
	case pair, suited && hi-lo <= 2:
		return CategoryWeak
	}
	return CategoryTrash
}
