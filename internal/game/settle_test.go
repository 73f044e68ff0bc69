package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettle(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		player int
		dealer int
		strict Outcome
		legacy Outcome
	}{
		{"player higher", 20, 18, Win, Win},
		{"dealer higher", 17, 19, Loss, Loss},
		{"equal totals", 18, 18, Push, Push},
		{"dealer busts", 15, 23, Win, Win},
		{"player busts", 24, 18, Loss, Loss},
		// Raw-total comparison pays a busted player when the dealer also busts
		{"both bust", 24, 22, Loss, Win},
		{"both bust same total", 24, 24, Loss, Win},
		{"player 21 dealer 21", 21, 21, Push, Push},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.strict, Settle(tt.player, tt.dealer, StrictBust), "strict")
			assert.Equal(t, tt.legacy, Settle(tt.player, tt.dealer, LegacyBust), "legacy")
		})
	}
}

func TestPayout(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 300, Payout(Natural, 100))
	assert.Equal(t, 200, Payout(Win, 100))
	assert.Equal(t, 100, Payout(Push, 100))
	assert.Equal(t, 0, Payout(Loss, 100))
	assert.Equal(t, 0, Payout(Skipped, 100))
}

func TestParseBustRule(t *testing.T) {
	t.Parallel()

	rule, err := ParseBustRule("legacy")
	require.NoError(t, err)
	assert.Equal(t, LegacyBust, rule)

	rule, err = ParseBustRule("")
	require.NoError(t, err)
	assert.Equal(t, StrictBust, rule)

	_, err = ParseBustRule("lenient")
	assert.Error(t, err)
}

func TestOutcomeString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "blackjack", Natural.String())
	assert.Equal(t, "push", Push.String())
	assert.Equal(t, "Outcome(42)", Outcome(42).String())
}
