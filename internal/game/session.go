package game

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lox/blackjack/internal/deck"
)

// Session seats the players and repeats betting cycles until every player
// is bankrupt or the input is closed.
type Session struct {
	table   *Table
	players []*Player
}

// NewSession creates a session dealing from d
func NewSession(d *deck.Deck, prompter Prompter, renderer Renderer, opts ...Option) *Session {
	return &Session{
		table: NewTable(d, prompter, renderer, opts...),
	}
}

// Players returns the seated players
func (s *Session) Players() []*Player {
	return s.players
}

// Run plays the session. A declined age check or closed input ends the
// session without error; a round cut short by closed input is not settled
// and its stake is returned. Deck exhaustion is returned wrapped.
func (s *Session) Run() error {
	t := s.table
	started := t.clock.Now()

	t.renderer.Welcome()
	ok, err := t.prompter.ConfirmAge()
	if err != nil {
		return s.inputClosed(err)
	}
	if !ok {
		t.logger.Info("Age confirmation declined")
		t.renderer.AgeDeclined()
		return nil
	}

	if err := s.seat(); err != nil {
		return s.inputClosed(err)
	}
	t.logger.Info("Session started", "players", len(s.players), "rules", fmt.Sprintf("%+v", t.rules))

	for cycle := 1; !s.allBankrupt(); cycle++ {
		t.logger.Debug("Starting cycle", "cycle", cycle)
		if err := t.PlayCycle(s.players); err != nil {
			if errors.Is(err, io.EOF) {
				t.logger.Warn("Input closed, ending session", "cycle", cycle)
				break
			}
			return err
		}
	}
	if s.allBankrupt() {
		t.renderer.AllBankrupt()
	}

	elapsed := t.clock.Since(started)
	t.logger.Info("Session finished", "rounds", t.ledger.Rounds(), "elapsed", elapsed)
	t.renderer.Summary(t.ledger, elapsed)
	return nil
}

func (s *Session) seat() error {
	t := s.table
	count, err := s.playerCount()
	if err != nil {
		return err
	}

	s.players = make([]*Player, 0, count)
	for seat := 1; seat <= count; seat++ {
		name, err := s.playerName(seat)
		if err != nil {
			return err
		}
		s.players = append(s.players, NewPlayer(name, t.rules.StartingMoney))
		t.logger.Debug("Player seated", "seat", seat, "player", name, "money", t.rules.StartingMoney)
	}
	return nil
}

func (s *Session) playerCount() (int, error) {
	t := s.table
	for {
		n, err := t.prompter.PlayerCount(t.rules.MaxPlayers)
		switch {
		case errors.Is(err, ErrInvalidInput):
			t.renderer.Rejected(ErrInvalidInput)
		case err != nil:
			return 0, err
		case n < 1 || n > t.rules.MaxPlayers:
			t.renderer.Rejected(fmt.Errorf("%w: choose between 1 and %d", ErrPlayerCount, t.rules.MaxPlayers))
		default:
			return n, nil
		}
	}
}

func (s *Session) playerName(seat int) (string, error) {
	t := s.table
	for {
		name, err := t.prompter.PlayerName(seat)
		if err != nil {
			return "", err
		}
		if name = strings.TrimSpace(name); name != "" {
			return name, nil
		}
		t.renderer.Rejected(ErrEmptyName)
	}
}

func (s *Session) allBankrupt() bool {
	for _, p := range s.players {
		if !p.IsBankrupt() {
			return false
		}
	}
	return true
}

func (s *Session) inputClosed(err error) error {
	if errors.Is(err, io.EOF) {
		s.table.logger.Warn("Input closed before play started")
		return nil
	}
	return err
}
