package game

import (
	"errors"
	"fmt"
)

// ErrInsufficientFunds is returned when a debit would take a balance below zero
var ErrInsufficientFunds = errors.New("you don't have enough money to place this bet")

// Participant is anyone seated at the table
type Participant interface {
	Name() string
}

// Player is a funded participant
type Player struct {
	name  string
	money int
}

// NewPlayer creates a player with a starting balance
func NewPlayer(name string, money int) *Player {
	return &Player{name: name, money: money}
}

func (p *Player) Name() string { return p.name }

// Money returns the current balance
func (p *Player) Money() int { return p.money }

// SetMoney replaces the balance
func (p *Player) SetMoney(money int) { p.money = money }

// IsBankrupt returns true once the balance reaches zero
func (p *Player) IsBankrupt() bool { return p.money <= 0 }

func (p *Player) String() string {
	return fmt.Sprintf("Player: %s, Money: %d", p.name, p.money)
}

// Credit adds amount to the player's balance
func Credit(p *Player, amount int) {
	p.money += amount
}

// Debit removes amount from the player's balance
func Debit(p *Player, amount int) error {
	if amount < 0 {
		return fmt.Errorf("debit of negative amount %d", amount)
	}
	if amount > p.money {
		return fmt.Errorf("debit %d from %s with %d: %w", amount, p.name, p.money, ErrInsufficientFunds)
	}
	p.money -= amount
	return nil
}

// Dealer plays the house hand. It holds no money.
type Dealer struct {
	name string
}

// NewDealer creates a dealer
func NewDealer(name string) *Dealer {
	return &Dealer{name: name}
}

func (d *Dealer) Name() string { return d.name }

// ShouldHit reports whether the dealer draws another card with hand h
func (d *Dealer) ShouldHit(h *Hand, standOn int) bool {
	return h.Value() < standOn
}
