package console

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/statistics"
)

var _ game.Renderer = (*Console)(nil)

func (c *Console) Welcome() {
	c.println(c.styles.Title.Render(" ♠ ♥ Welcome to the Blackjack game! ♦ ♣ "))
	c.println()
}

func (c *Console) AgeDeclined() {
	c.println(c.styles.Stop.Render("STOP!"))
	c.println("Sorry, this game is only for players who are 21 or older.")
}

// Rejected reports invalid input before the prompt is repeated
func (c *Console) Rejected(err error) {
	c.println(c.styles.Error.Render(sentence(err.Error())))
}

func (c *Console) Bankroll(p *game.Player) {
	c.println()
	c.printf("Money available for %s: %s\n", p.Name(), c.styles.Money.Render(fmt.Sprintf("$%d", p.Money())))
}

func (c *Console) InitialDeal(p *game.Player, player, dealer *game.Hand) {
	c.println()
	c.printf("Your hand, %s: %s\n", p.Name(), c.formatCards(player.Cards()))
	up := dealer.Cards()[:1]
	c.printf("Dealer's hand: %s %s\n", c.formatCards(up), c.styles.Hidden.Render("?"))
}

func (c *Console) PlayerHand(p *game.Player, h *game.Hand) {
	c.println()
	c.printf("Your hand: %s\n", c.formatCards(h.Cards()))
}

func (c *Console) Busted(p *game.Player, h *game.Hand) {
	c.println(c.styles.Bust.Render("***    Busted!    ***"))
	c.println()
}

func (c *Console) DealerHand(d *game.Dealer, h *game.Hand) {
	c.printf("%s's hand: %s\n", d.Name(), c.formatCards(h.Cards()))
}

func (c *Console) DealerHit(d *game.Dealer, h *game.Hand) {
	c.printf("%s hits. %s's hand: %s\n", d.Name(), d.Name(), c.formatCards(h.Cards()))
}

// Result shows the outcome banner and payout for a settled round
func (c *Console) Result(r game.RoundResult) {
	if r.Outcome == game.Natural {
		c.println(c.styles.Money.Render(fmt.Sprintf("Blackjack! %s wins %d!", r.Player, r.Payout)))
		return
	}

	c.printf("Your score, %s: %d\n", r.Player, r.PlayerTotal)
	c.printf("Dealer's score: %d\n", r.DealerTotal)

	switch r.Outcome {
	case game.Win:
		c.println(c.styles.Win.Render("WINS"))
		c.printf("%s gets %d!\n\n", r.Player, r.Payout)
	case game.Push:
		c.println(c.styles.Push.Render("It's a tie!"))
		c.printf("%s gets back the bet of %d.\n\n", r.Player, r.Payout)
	default:
		c.println(c.styles.Loss.Render("Dealer wins"))
		c.printf("%s lost %d!\n\n", r.Player, r.Bet)
	}
}

func (c *Console) AllBankrupt() {
	c.println(c.styles.Warning.Render("All players are bankrupt!"))
}

// Summary prints the per-player session ledger
func (c *Console) Summary(ledger *statistics.Ledger, elapsed time.Duration) {
	c.println()
	c.println(c.styles.Header.Render("*** SESSION SUMMARY ***"))
	c.printf("%d rounds in %s\n", ledger.Rounds(), elapsed.Round(time.Second))

	players := ledger.Players()
	if len(players) == 0 {
		return
	}

	c.printf("%-12s %6s %5s %5s %6s %9s %5s %8s %8s %8s %8s %8s\n",
		"Player", "Rounds", "Wins", "Ties", "Losses", "Blackjack", "Busts", "Wagered", "Best", "Net", "Mean", "StdDev")
	for _, s := range players {
		c.printf("%-12s %6d %5d %5d %6d %9d %5d %8d %8s %8s %8.1f %8.1f\n",
			s.Name, s.Rounds, s.Wins, s.Pushes, s.Losses, s.Naturals, s.Busts,
			s.Wagered, signed(s.BiggestWin), signed(s.Net), s.Mean(), s.StdDev())
	}
}

func (c *Console) formatCards(cards []deck.Card) string {
	labels := make([]string, len(cards))
	for i, card := range cards {
		if card.IsRed() {
			labels[i] = c.styles.CardRed.Render(card.String())
		} else {
			labels[i] = c.styles.CardBlack.Render(card.String())
		}
	}
	return strings.Join(labels, " ")
}

func signed(n int) string {
	if n > 0 {
		return fmt.Sprintf("+%d", n)
	}
	return fmt.Sprintf("%d", n)
}

// sentence capitalizes an error message and ends it with a full stop
func sentence(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	s = string(r)
	if !strings.HasSuffix(s, ".") {
		s += "."
	}
	return s
}
