package game

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/statistics"
)

// Table plays betting rounds between players and the dealer using one deck
type Table struct {
	deck     *deck.Deck
	dealer   *Dealer
	rules    Rules
	prompter Prompter
	renderer Renderer
	ledger   *statistics.Ledger
	clock    quartz.Clock
	logger   *log.Logger
}

// Option configures a Table or Session
type Option func(*Table)

// WithRules replaces the default table rules
func WithRules(rules Rules) Option {
	return func(t *Table) { t.rules = rules }
}

// WithLogger sets the logger for table events
func WithLogger(logger *log.Logger) Option {
	return func(t *Table) { t.logger = logger.WithPrefix("table") }
}

// WithClock sets the clock used to time rounds and sessions
func WithClock(clock quartz.Clock) Option {
	return func(t *Table) { t.clock = clock }
}

// WithLedger records round results into ledger
func WithLedger(ledger *statistics.Ledger) Option {
	return func(t *Table) { t.ledger = ledger }
}

// NewTable creates a table dealing from d. The deck is used as given; shuffle
// it first for a random game.
func NewTable(d *deck.Deck, prompter Prompter, renderer Renderer, opts ...Option) *Table {
	t := &Table{
		deck:     d,
		rules:    DefaultRules(),
		prompter: prompter,
		renderer: renderer,
		ledger:   statistics.NewLedger(),
		clock:    quartz.NewReal(),
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.dealer = NewDealer(t.rules.DealerName)
	return t
}

// Ledger returns the results recorded so far
func (t *Table) Ledger() *statistics.Ledger {
	return t.ledger
}

// PlayCycle plays one round for each player in seat order
func (t *Table) PlayCycle(players []*Player) error {
	for _, p := range players {
		if _, err := t.PlayRound(p); err != nil {
			return err
		}
	}
	return nil
}

// PlayRound plays a full round for p: bet, deal, player turn, dealer turn and
// settlement. Bankrupt players are skipped without being prompted.
func (t *Table) PlayRound(p *Player) (RoundResult, error) {
	result := RoundResult{Player: p.Name(), Outcome: Skipped}
	if p.IsBankrupt() {
		t.logger.Debug("Skipping bankrupt player", "player", p.Name())
		return result, nil
	}

	logger := t.logger.With("player", p.Name())
	started := t.clock.Now()

	t.renderer.Bankroll(p)
	bet, err := t.collectBet(p)
	if err != nil {
		return result, err
	}
	if err := Debit(p, bet); err != nil {
		return result, err
	}
	result.Bet = bet
	logger.Debug("Bet placed", "bet", bet, "money", p.Money())

	// An unsettled round returns the stake so balances match the ledger.
	settled := false
	defer func() {
		if !settled {
			Credit(p, bet)
			logger.Warn("Round abandoned, stake returned", "bet", bet, "money", p.Money())
		}
	}()

	var player, dealer Hand
	bustIdx := -1
	defer func() {
		t.clearHands(&player, &dealer, bustIdx)
	}()

	for _, h := range []*Hand{&player, &player, &dealer, &dealer} {
		if err := t.dealTo(h); err != nil {
			return result, err
		}
	}
	logger.Debug("Initial deal", "hand", player.String(), "upcard", dealer.Cards()[0].String())
	t.renderer.InitialDeal(p, &player, &dealer)

	if player.IsNatural() {
		result.Outcome = Natural
		result.PlayerTotal = player.Value()
		result.DealerTotal = dealer.Value()
		settled = true
		return t.settle(p, result, logger, started), nil
	}

	bustIdx, err = t.playerTurn(p, &player)
	if err != nil {
		return result, err
	}
	result.Busted = bustIdx >= 0

	if result.Busted && t.rules.BustRule == StrictBust {
		t.renderer.DealerHand(t.dealer, &dealer)
	} else if err := t.dealerTurn(&dealer); err != nil {
		return result, err
	}

	result.PlayerTotal = player.Value()
	result.DealerTotal = dealer.Value()
	result.Outcome = Settle(result.PlayerTotal, result.DealerTotal, t.rules.BustRule)
	settled = true
	return t.settle(p, result, logger, started), nil
}

func (t *Table) collectBet(p *Player) (int, error) {
	for {
		bet, err := t.prompter.Bet(p)
		switch {
		case errors.Is(err, ErrInvalidInput):
			t.renderer.Rejected(ErrInvalidInput)
		case err != nil:
			return 0, err
		case bet < 0:
			t.renderer.Rejected(ErrNegativeBet)
		case bet > p.Money():
			t.renderer.Rejected(ErrInsufficientFunds)
		default:
			return bet, nil
		}
	}
}

// playerTurn runs the hit/stand loop and returns the index of the card that
// busted the hand, or -1 if the player stood.
func (t *Table) playerTurn(p *Player, h *Hand) (int, error) {
	for {
		action, err := t.prompter.Action(p, h)
		if errors.Is(err, ErrInvalidAction) || errors.Is(err, ErrInvalidInput) {
			t.renderer.Rejected(ErrInvalidAction)
			continue
		}
		if err != nil {
			return -1, err
		}

		switch action {
		case Stand:
			return -1, nil
		case Split:
			t.renderer.Rejected(ErrSplitUnsupported)
		case Hit:
			card, err := t.deck.Deal()
			if err != nil {
				return -1, fmt.Errorf("deal to %s: %w", p.Name(), err)
			}
			h.Add(card)
			t.renderer.PlayerHand(p, h)
			if h.IsBust() {
				t.deck.Discard(card)
				t.logger.Debug("Player busted", "player", p.Name(), "total", h.Value(), "card", card.String())
				t.renderer.Busted(p, h)
				return h.Len() - 1, nil
			}
		}
	}
}

func (t *Table) dealerTurn(h *Hand) error {
	t.renderer.DealerHand(t.dealer, h)
	for t.dealer.ShouldHit(h, t.rules.DealerStandsOn) {
		if err := t.dealTo(h); err != nil {
			return err
		}
		t.renderer.DealerHit(t.dealer, h)
	}
	t.logger.Debug("Dealer stands", "hand", h.String(), "total", h.Value())
	return nil
}

func (t *Table) dealTo(h *Hand) error {
	card, err := t.deck.Deal()
	if err != nil {
		return fmt.Errorf("deal: %w", err)
	}
	h.Add(card)
	return nil
}

func (t *Table) settle(p *Player, result RoundResult, logger *log.Logger, started time.Time) RoundResult {
	result.Payout = Payout(result.Outcome, result.Bet)
	Credit(p, result.Payout)

	t.renderer.Result(result)
	t.ledger.Record(result.Player, statistics.Result{
		Bet:     result.Bet,
		Payout:  result.Payout,
		Won:     result.Outcome == Win || result.Outcome == Natural,
		Pushed:  result.Outcome == Push,
		Natural: result.Outcome == Natural,
		Busted:  result.Busted,
	})

	logger.Info("Round settled",
		"outcome", result.Outcome,
		"player_total", result.PlayerTotal,
		"dealer_total", result.DealerTotal,
		"bet", result.Bet,
		"payout", result.Payout,
		"money", p.Money(),
		"elapsed", t.clock.Since(started))
	return result
}

// clearHands returns every card still in play to the discard pile. The card
// at bustIdx in the player hand was discarded when it busted the hand.
func (t *Table) clearHands(player, dealer *Hand, bustIdx int) {
	for i, c := range player.Clear() {
		if i != bustIdx {
			t.deck.Discard(c)
		}
	}
	t.deck.Discard(dealer.Clear()...)
}
