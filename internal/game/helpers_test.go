package game

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/statistics"
)

type reply struct {
	value any
	err   error
}

// scriptedPrompter answers prompts from per-kind queues. An empty queue
// answers io.EOF, like a closed console.
type scriptedPrompter struct {
	replies map[string][]reply
	calls   []string
}

func newScriptedPrompter() *scriptedPrompter {
	return &scriptedPrompter{replies: make(map[string][]reply)}
}

func (s *scriptedPrompter) push(kind string, value any, err error) *scriptedPrompter {
	s.replies[kind] = append(s.replies[kind], reply{value: value, err: err})
	return s
}

func (s *scriptedPrompter) age(ok bool) *scriptedPrompter { return s.push("age", ok, nil) }
func (s *scriptedPrompter) count(n int) *scriptedPrompter { return s.push("count", n, nil) }

func (s *scriptedPrompter) names(names ...string) *scriptedPrompter {
	for _, n := range names {
		s.push("name", n, nil)
	}
	return s
}

func (s *scriptedPrompter) bets(bets ...int) *scriptedPrompter {
	for _, b := range bets {
		s.push("bet", b, nil)
	}
	return s
}

func (s *scriptedPrompter) actions(actions ...Action) *scriptedPrompter {
	for _, a := range actions {
		s.push("action", a, nil)
	}
	return s
}

func (s *scriptedPrompter) next(kind string) (any, error) {
	q := s.replies[kind]
	if len(q) == 0 {
		return nil, io.EOF
	}
	s.replies[kind] = q[1:]
	return q[0].value, q[0].err
}

func (s *scriptedPrompter) ConfirmAge() (bool, error) {
	s.calls = append(s.calls, "age")
	v, err := s.next("age")
	if err != nil {
		return false, err
	}
	return v.(bool), nil
}

func (s *scriptedPrompter) PlayerCount(max int) (int, error) {
	s.calls = append(s.calls, "count")
	v, err := s.next("count")
	if err != nil {
		return 0, err
	}
	return v.(int), nil
}

func (s *scriptedPrompter) PlayerName(seat int) (string, error) {
	s.calls = append(s.calls, "name")
	v, err := s.next("name")
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (s *scriptedPrompter) Bet(p *Player) (int, error) {
	s.calls = append(s.calls, "bet:"+p.Name())
	v, err := s.next("bet")
	if err != nil {
		return 0, err
	}
	return v.(int), nil
}

func (s *scriptedPrompter) Action(p *Player, h *Hand) (Action, error) {
	s.calls = append(s.calls, "action:"+p.Name())
	v, err := s.next("action")
	if err != nil {
		return Stand, err
	}
	return v.(Action), nil
}

func (s *scriptedPrompter) betCalls() []string {
	var out []string
	for _, c := range s.calls {
		if len(c) > 4 && c[:4] == "bet:" {
			out = append(out, c)
		}
	}
	return out
}

// recordingRenderer captures what the table reported
type recordingRenderer struct {
	rejected     []error
	results      []RoundResult
	busted       int
	dealerShown  int
	dealerHits   int
	welcomed     bool
	declined     bool
	allBankrupt  bool
	summaries    int
	lastElapsed  time.Duration
	lastRounds   int
	initialDeals int
}

func (r *recordingRenderer) Welcome()                                    { r.welcomed = true }
func (r *recordingRenderer) AgeDeclined()                                { r.declined = true }
func (r *recordingRenderer) Rejected(err error)                          { r.rejected = append(r.rejected, err) }
func (r *recordingRenderer) Bankroll(p *Player)                          {}
func (r *recordingRenderer) InitialDeal(p *Player, player, dealer *Hand) { r.initialDeals++ }
func (r *recordingRenderer) PlayerHand(p *Player, h *Hand)               {}
func (r *recordingRenderer) Busted(p *Player, h *Hand)                   { r.busted++ }
func (r *recordingRenderer) DealerHand(d *Dealer, h *Hand)               { r.dealerShown++ }
func (r *recordingRenderer) DealerHit(d *Dealer, h *Hand)                { r.dealerHits++ }
func (r *recordingRenderer) Result(res RoundResult)                      { r.results = append(r.results, res) }
func (r *recordingRenderer) AllBankrupt()                                { r.allBankrupt = true }

func (r *recordingRenderer) Summary(ledger *statistics.Ledger, elapsed time.Duration) {
	r.summaries++
	r.lastElapsed = elapsed
	r.lastRounds = ledger.Rounds()
}

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

// scriptedDeck deals the given labels in order
func scriptedDeck(labels string) *deck.Deck {
	return deck.NewFromCards(randutil.New(1), deck.MustParseCards(labels))
}

func newTestTable(t *testing.T, d *deck.Deck, p Prompter, r Renderer, opts ...Option) *Table {
	t.Helper()
	base := []Option{WithLogger(quietLogger()), WithClock(quartz.NewMock(t))}
	return NewTable(d, p, r, append(base, opts...)...)
}
