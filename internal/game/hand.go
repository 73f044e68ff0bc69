package game

import (
	"strings"

	"github.com/lox/blackjack/internal/deck"
)

// Bust is the highest total a hand may reach without losing
const Bust = 21

// HandValue returns the best blackjack total for cards. Non-ace cards are
// summed first, then each ace adds 11 if that keeps the total at or below
// 21 and 1 otherwise.
func HandValue(cards []deck.Card) int {
	total := 0
	aces := 0

	for _, card := range cards {
		if card.IsAce() {
			aces++
			continue
		}
		total += card.Points()
	}

	for range aces {
		if total+11 <= Bust {
			total += 11
		} else {
			total++
		}
	}

	return total
}

// Hand is the ordered set of cards a participant holds during one round
type Hand struct {
	cards []deck.Card
}

// Add appends a card to the hand
func (h *Hand) Add(cards ...deck.Card) {
	h.cards = append(h.cards, cards...)
}

// Cards returns the cards in the order they were dealt
func (h *Hand) Cards() []deck.Card {
	return h.cards
}

// Len returns the number of cards held
func (h *Hand) Len() int {
	return len(h.cards)
}

// Value returns the hand total
func (h *Hand) Value() int {
	return HandValue(h.cards)
}

// IsBust returns true if the hand total exceeds 21
func (h *Hand) IsBust() bool {
	return h.Value() > Bust
}

// IsNatural returns true for a two-card 21
func (h *Hand) IsNatural() bool {
	return len(h.cards) == 2 && h.Value() == Bust
}

// Clear empties the hand and returns the cards it held
func (h *Hand) Clear() []deck.Card {
	cards := h.cards
	h.cards = nil
	return cards
}

func (h *Hand) String() string {
	labels := make([]string, len(h.cards))
	for i, c := range h.cards {
		labels[i] = c.String()
	}
	return strings.Join(labels, " ")
}
