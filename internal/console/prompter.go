package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lox/blackjack/internal/game"
)

var _ game.Prompter = (*Console)(nil)

// ConfirmAge asks whether every player is 21 or older. Only "y" or "Y"
// confirms.
func (c *Console) ConfirmAge() (bool, error) {
	for {
		line, err := c.readLine("Are all players 21 or older? (y/n):")
		if err != nil {
			return false, err
		}
		if line == "" {
			continue
		}
		return line[0] == 'y' || line[0] == 'Y', nil
	}
}

func (c *Console) PlayerCount(max int) (int, error) {
	return c.readInt(fmt.Sprintf("Enter the number of players (1-%d):", max))
}

func (c *Console) PlayerName(seat int) (string, error) {
	return c.readLine(fmt.Sprintf("Enter the name of player %d:", seat))
}

func (c *Console) Bet(p *game.Player) (int, error) {
	return c.readInt("Place your bet (0 to skip):")
}

// Action reads a hit, stand or split choice. Either the single key or the
// full word is accepted, in any case.
func (c *Console) Action(p *game.Player, h *game.Hand) (game.Action, error) {
	line, err := c.readLine("Hit (h), Stand (s), or Split (p)?")
	if err != nil {
		return game.Stand, err
	}

	switch strings.ToLower(line) {
	case "h", "hit":
		return game.Hit, nil
	case "s", "stand":
		return game.Stand, nil
	case "p", "split":
		return game.Split, nil
	default:
		return game.Stand, fmt.Errorf("%w: %q", game.ErrInvalidAction, line)
	}
}

func (c *Console) readInt(prompt string) (int, error) {
	line, err := c.readLine(prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", game.ErrInvalidInput, line)
	}
	return n, nil
}
