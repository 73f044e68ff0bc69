package statistics

import (
	"fmt"
	"math"
)

// Result is the outcome of one settled round for one player
type Result struct {
	Bet     int
	Payout  int
	Won     bool
	Pushed  bool
	Natural bool // Won with a two-card 21
	Busted  bool
}

// Net returns the balance change for the round
func (r Result) Net() int {
	return r.Payout - r.Bet
}

// PlayerStats accumulates results for one player
type PlayerStats struct {
	Name       string
	Rounds     int
	Wins       int
	Pushes     int
	Losses     int
	Naturals   int
	Busts      int
	Wagered    int
	Net        int
	SumNet2    float64 // Sum of squares for variance calculation
	BiggestWin int
}

// Mean returns the average net result per round
func (s *PlayerStats) Mean() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.Net) / float64(s.Rounds)
}

// Variance returns the sample variance of the per-round net results
func (s *PlayerStats) Variance() float64 {
	if s.Rounds < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumNet2 - float64(s.Rounds)*mean*mean) / float64(s.Rounds-1)
}

// StdDev returns the sample standard deviation of the per-round net results
func (s *PlayerStats) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// Ledger tracks per-player results for a session in seating order
type Ledger struct {
	order   []string
	players map[string]*PlayerStats
}

// NewLedger creates an empty ledger
func NewLedger() *Ledger {
	return &Ledger{players: make(map[string]*PlayerStats)}
}

// Record adds a settled round for player
func (l *Ledger) Record(player string, r Result) {
	s, ok := l.players[player]
	if !ok {
		s = &PlayerStats{Name: player}
		l.players[player] = s
		l.order = append(l.order, player)
	}

	net := r.Net()
	s.Rounds++
	s.Wagered += r.Bet
	s.Net += net
	s.SumNet2 += float64(net) * float64(net)

	switch {
	case r.Won:
		s.Wins++
	case r.Pushed:
		s.Pushes++
	default:
		s.Losses++
	}
	if r.Natural {
		s.Naturals++
	}
	if r.Busted {
		s.Busts++
	}
	if net > s.BiggestWin {
		s.BiggestWin = net
	}
}

// Player returns the stats for a player, or nil if they never played a round
func (l *Ledger) Player(name string) *PlayerStats {
	return l.players[name]
}

// Players returns stats in the order players first appeared
func (l *Ledger) Players() []*PlayerStats {
	out := make([]*PlayerStats, 0, len(l.order))
	for _, name := range l.order {
		out = append(out, l.players[name])
	}
	return out
}

// Rounds returns the number of rounds recorded across all players
func (l *Ledger) Rounds() int {
	n := 0
	for _, s := range l.players {
		n += s.Rounds
	}
	return n
}

// Validate checks the per-player counters are consistent
func (l *Ledger) Validate() error {
	for _, s := range l.Players() {
		if s.Wins+s.Pushes+s.Losses != s.Rounds {
			return fmt.Errorf("%s: wins (%d) + pushes (%d) + losses (%d) does not match rounds (%d)",
				s.Name, s.Wins, s.Pushes, s.Losses, s.Rounds)
		}
		if s.Naturals > s.Wins {
			return fmt.Errorf("%s: naturals (%d) exceed wins (%d)", s.Name, s.Naturals, s.Wins)
		}
		if s.Busts > s.Losses+s.Wins+s.Pushes {
			return fmt.Errorf("%s: busts (%d) exceed rounds (%d)", s.Name, s.Busts, s.Rounds)
		}
	}
	return nil
}
