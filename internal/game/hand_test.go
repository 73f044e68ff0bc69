package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/randutil"
)

func TestHandValue(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		cards string
		want  int
	}{
		{"empty", "", 0},
		{"no aces", "2C 3D KH", 15},
		{"faces capped at ten", "JC QD KH", 30},
		{"soft ace", "AH 9C", 20},
		{"natural", "AH KS", 21},
		{"two aces", "AH AS", 12},
		{"two aces and nine", "AH AS 9C", 21},
		{"ace after ten counted high then low", "AH AS 10C", 22},
		{"ace demoted by later cards", "AH 5C 9D", 15},
		{"three aces", "AC AD AH", 13},
		{"four aces and seven", "AC AD AH AS 7C", 21},
		{"face cards with ace", "KH QS AC", 21},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HandValue(deck.MustParseCards(tt.cards)))
		})
	}
}

func TestHandValueWithoutAcesSumsCappedRanks(t *testing.T) {
	t.Parallel()
	rng := randutil.New(99)

	for range 500 {
		n := 1 + rng.IntN(6)
		cards := make([]deck.Card, n)
		want := 0
		for i := range cards {
			rank := deck.Rank(2 + rng.IntN(12))
			cards[i] = deck.Card{Rank: rank, Suit: deck.Suit(rng.IntN(4))}
			want += min(int(rank), 10)
		}
		require.Equal(t, want, HandValue(cards), "cards %v", cards)
	}
}

func TestHand(t *testing.T) {
	t.Parallel()

	var h Hand
	assert.Equal(t, 0, h.Len())
	assert.False(t, h.IsNatural())

	h.Add(deck.MustParseCards("AH KS")...)
	assert.True(t, h.IsNatural())
	assert.False(t, h.IsBust())
	assert.Equal(t, "AH KS", h.String())

	h.Add(deck.MustParseCards("5C")...)
	assert.False(t, h.IsNatural(), "three-card 21 is not a natural")
	assert.Equal(t, 16, h.Value())

	h.Add(deck.MustParseCards("10D")...)
	assert.True(t, h.IsBust())
	assert.Equal(t, 26, h.Value())

	cleared := h.Clear()
	assert.Len(t, cleared, 4)
	assert.Equal(t, 0, h.Len())
	assert.Equal(t, 0, h.Value())
}
