package game

import "fmt"

// Outcome is how a player's round ended
type Outcome int

const (
	Skipped Outcome = iota
	Natural
	Win
	Push
	Loss
)

func (o Outcome) String() string {
	switch o {
	case Skipped:
		return "skipped"
	case Natural:
		return "blackjack"
	case Win:
		return "win"
	case Push:
		return "push"
	case Loss:
		return "loss"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// BustRule selects how a busted player hand is settled
type BustRule int

const (
	// StrictBust settles a busted player as a loss before comparing totals.
	// The dealer does not draw once the player has busted.
	StrictBust BustRule = iota
	// LegacyBust always plays out the dealer and compares raw totals, so a
	// busted player is refunded on an equal dealer total and paid on a
	// dealer bust.
	LegacyBust
)

func (r BustRule) String() string {
	switch r {
	case StrictBust:
		return "strict"
	case LegacyBust:
		return "legacy"
	default:
		return fmt.Sprintf("BustRule(%d)", int(r))
	}
}

// ParseBustRule parses "strict" or "legacy"
func ParseBustRule(s string) (BustRule, error) {
	switch s {
	case "strict", "":
		return StrictBust, nil
	case "legacy":
		return LegacyBust, nil
	default:
		return StrictBust, fmt.Errorf("unknown bust rule %q", s)
	}
}

// Settle compares final totals
func Settle(player, dealer int, rule BustRule) Outcome {
	if rule == StrictBust && player > Bust {
		return Loss
	}

	switch {
	case (player <= Bust && player > dealer) || dealer > Bust:
		return Win
	case player == dealer:
		return Push
	default:
		return Loss
	}
}

// Payout returns the amount credited back to the player for an outcome.
// The bet has already been deducted, so a push returns the stake.
func Payout(o Outcome, bet int) int {
	switch o {
	case Natural:
		return bet * 3
	case Win:
		return bet * 2
	case Push:
		return bet
	default:
		return 0
	}
}
