package game

import "fmt"

// Rules are the table limits that do not change during a session
type Rules struct {
	DealerName     string
	StartingMoney  int
	MaxPlayers     int
	DealerStandsOn int
	BustRule       BustRule
}

// DefaultRules returns the standard table: 1000 per player, dealer stands on 17
func DefaultRules() Rules {
	return Rules{
		DealerName:     "Dealer",
		StartingMoney:  1000,
		MaxPlayers:     7,
		DealerStandsOn: 17,
		BustRule:       StrictBust,
	}
}

// Validate checks the rules are playable
func (r Rules) Validate() error {
	if r.StartingMoney <= 0 {
		return fmt.Errorf("starting money must be positive, got %d", r.StartingMoney)
	}
	if r.MaxPlayers < 1 {
		return fmt.Errorf("max players must be at least 1, got %d", r.MaxPlayers)
	}
	if r.DealerStandsOn < 2 || r.DealerStandsOn > Bust {
		return fmt.Errorf("dealer must stand on a total between 2 and 21, got %d", r.DealerStandsOn)
	}
	return nil
}
