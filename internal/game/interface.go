package game

import (
	"errors"
	"time"

	"github.com/lox/blackjack/internal/statistics"
)

// Input rejections. The table re-prompts after reporting any of these.
var (
	ErrInvalidInput     = errors.New("please enter a valid number")
	ErrNegativeBet      = errors.New("please enter a non-negative number")
	ErrInvalidAction    = errors.New("please press a valid key (h for hit, s for stand, p for split)")
	ErrSplitUnsupported = errors.New("you cannot split in this version")
	ErrPlayerCount      = errors.New("number of players is out of range")
	ErrEmptyName        = errors.New("player name cannot be empty")
)

// Action is a player's choice during their turn
type Action int

const (
	Hit Action = iota
	Stand
	Split
)

func (a Action) String() string {
	switch a {
	case Hit:
		return "hit"
	case Stand:
		return "stand"
	case Split:
		return "split"
	default:
		return "unknown"
	}
}

// Prompter reads decisions from the players. Implementations return an
// error wrapping ErrInvalidInput or ErrInvalidAction for unparseable input;
// any other error ends the session.
type Prompter interface {
	ConfirmAge() (bool, error)
	PlayerCount(max int) (int, error)
	PlayerName(seat int) (string, error)
	Bet(p *Player) (int, error)
	Action(p *Player, h *Hand) (Action, error)
}

// Renderer reports table activity to the players
type Renderer interface {
	Welcome()
	AgeDeclined()
	Rejected(err error)
	Bankroll(p *Player)
	InitialDeal(p *Player, player, dealer *Hand)
	PlayerHand(p *Player, h *Hand)
	Busted(p *Player, h *Hand)
	DealerHand(d *Dealer, h *Hand)
	DealerHit(d *Dealer, h *Hand)
	Result(r RoundResult)
	AllBankrupt()
	Summary(ledger *statistics.Ledger, elapsed time.Duration)
}

// RoundResult describes one settled round for one player
type RoundResult struct {
	Player      string
	Bet         int
	Payout      int
	Outcome     Outcome
	PlayerTotal int
	DealerTotal int
	Busted      bool
}

// Net returns the balance change for the round
func (r RoundResult) Net() int {
	return r.Payout - r.Bet
}
