package holdem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormPots(t *testing.T) {
	t.Parallel()

	live := func(seat, invested int) *Player {
		return &Player{Seat: seat, Invested: invested, Status: StatusActive}
	}
	allIn := func(seat, invested int) *Player {
		return &Player{Seat: seat, Invested: invested, Status: StatusAllIn}
	}
	folded := func(seat, invested int) *Player {
		return &Player{Seat: seat, Invested: invested, Status: StatusFolded}
	}

	tests := []struct {
		name  string
		seats []*Player
		want  []Pot
	}{
		{
			name:  "nothing invested",
			seats: []*Player{live(0, 0), nil, live(2, 0)},
			want:  nil,
		},
		{
			name:  "single pot",
			seats: []*Player{live(0, 100), live(1, 100), live(2, 100)},
			want:  []Pot{{Amount: 300, Eligible: []int{0, 1, 2}, Type: MainPot}},
		},
		{
			name:  "one all-in short",
			seats: []*Player{allIn(0, 50), live(1, 100), live(2, 100)},
			want: []Pot{
				{Amount: 150, Eligible: []int{0, 1, 2}, Type: MainPot},
				{Amount: 100, Eligible: []int{1, 2}, Type: SidePot},
			},
		},
		{
			name:  "three levels",
			seats: []*Player{allIn(0, 25), allIn(1, 60), live(2, 100), live(3, 100)},
			want: []Pot{
				{Amount: 100, Eligible: []int{0, 1, 2, 3}, Type: MainPot},
				{Amount: 105, Eligible: []int{1, 2, 3}, Type: SidePot},
				{Amount: 80, Eligible: []int{2, 3}, Type: SidePot},
			},
		},
		{
			name:  "folded chips stay in",
			seats: []*Player{folded(0, 30), live(1, 100), live(2, 100)},
			want: []Pot{
				{Amount: 90, Eligible: []int{1, 2}, Type: MainPot},
				{Amount: 140, Eligible: []int{1, 2}, Type: SidePot},
			},
		},
		{
			name:  "investment order differs from seat order",
			seats: []*Player{live(0, 200), folded(1, 100), live(2, 150), folded(3, 120)},
			want: []Pot{
				{Amount: 400, Eligible: []int{0, 2}, Type: MainPot},
				{Amount: 60, Eligible: []int{0, 2}, Type: SidePot},
				{Amount: 60, Eligible: []int{0, 2}, Type: SidePot},
				{Amount: 50, Eligible: []int{0}, Type: SidePot},
			},
		},
		{
			name:  "folded player out-invested the all-in",
			seats: []*Player{allIn(0, 20), folded(1, 60), live(2, 40)},
			want: []Pot{
				{Amount: 60, Eligible: []int{0, 2}, Type: MainPot},
				{Amount: 60, Eligible: []int{2}, Type: SidePot},
			},
		},
		{
			name:  "folded player out-invested everyone",
			seats: []*Player{allIn(0, 20), folded(1, 60), allIn(2, 20)},
			want:  []Pot{{Amount: 100, Eligible: []int{0, 2}, Type: MainPot}},
		},
		{
			name:  "blind folded before anyone is all-in",
			seats: []*Player{folded(0, 5), live(1, 10)},
			want: []Pot{
				{Amount: 10, Eligible: []int{1}, Type: MainPot},
				{Amount: 5, Eligible: []int{1}, Type: SidePot},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pots := FormPots(tt.seats)
			assert.Equal(t, tt.want, pots)

			total, want := 0, 0
			for _, p := range tt.seats {
				if p != nil {
					want += p.Invested
				}
			}
			for _, pot := range pots {
				total += pot.Amount
			}
			assert.Equal(t, want, total, "pots hold every invested chip")
		})
	}
}
