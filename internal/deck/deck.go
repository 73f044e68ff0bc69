package deck

import (
	"errors"
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"
)

// ErrExhausted is returned when a card is requested while both the draw
// pile and the discard pile are empty.
var ErrExhausted = errors.New("both deck and discard pile are empty")

// Deck is a single 52-card deck split into a draw pile and a discard pile.
// The last element of the draw pile is the top card.
type Deck struct {
	cards   []Card
	discard []Card
	rng     *rand.Rand
	logger  *log.Logger
}

// Option configures a Deck
type Option func(*Deck)

// WithLogger sets the logger used for reshuffle events
func WithLogger(logger *log.Logger) Option {
	return func(d *Deck) {
		d.logger = logger.WithPrefix("deck")
	}
}

// New creates a standard 52-card deck in canonical order. The deck is not
// shuffled; callers shuffle once the session starts.
func New(rng *rand.Rand, opts ...Option) *Deck {
	cards := make([]Card, 0, 52)
	for suit := Clubs; suit <= Spades; suit++ {
		for rank := Ace; rank <= King; rank++ {
			cards = append(cards, Card{Rank: rank, Suit: suit})
		}
	}
	return newDeck(rng, cards, opts)
}

// NewFromCards creates a deck whose draw pile holds exactly the given cards.
// Cards are dealt in the order given: cards[0] is dealt first.
func NewFromCards(rng *rand.Rand, cards []Card, opts ...Option) *Deck {
	pile := make([]Card, len(cards))
	for i, c := range cards {
		pile[len(cards)-1-i] = c
	}
	return newDeck(rng, pile, opts)
}

func newDeck(rng *rand.Rand, cards []Card, opts []Option) *Deck {
	d := &Deck{
		cards:  cards,
		rng:    rng,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Shuffle randomizes the order of the draw pile
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Deal removes and returns the top card of the draw pile. An empty draw pile
// is refilled from the discard pile and reshuffled first.
func (d *Deck) Deal() (Card, error) {
	if len(d.cards) == 0 {
		if len(d.discard) == 0 {
			return Card{}, ErrExhausted
		}
		d.logger.Info("Shuffling cards from discard pile", "cards", len(d.discard))
		d.cards = append(d.cards, d.discard...)
		d.discard = d.discard[:0]
		d.Shuffle()
	}

	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card, nil
}

// Discard puts cards on the bottom of the discard pile
func (d *Deck) Discard(cards ...Card) {
	d.discard = append(d.discard, cards...)
}

// Remaining returns the number of cards left in the draw pile
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Discarded returns the number of cards in the discard pile
func (d *Deck) Discarded() int {
	return len(d.discard)
}
