package console

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains styling for console output
type Styles struct {
	Title     lipgloss.Style
	Prompt    lipgloss.Style
	Info      lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
	CardRed   lipgloss.Style
	CardBlack lipgloss.Style
	Hidden    lipgloss.Style
	Money     lipgloss.Style
	Win       lipgloss.Style
	Push      lipgloss.Style
	Loss      lipgloss.Style
	Bust      lipgloss.Style
	Stop      lipgloss.Style
	Header    lipgloss.Style
}

// NewStyles builds styles bound to a renderer
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Title: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),
		Prompt: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Info: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Error: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Warning: r.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true),
		CardRed: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		CardBlack: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true),
		Hidden: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Money: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Win: r.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("#FFD700")).
			Foreground(lipgloss.Color("#FFD700")).
			Padding(1, 6).
			Bold(true),
		Push: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#FFEAA7")).
			Foreground(lipgloss.Color("#FFEAA7")).
			Padding(1, 5).
			Bold(true),
		Loss: r.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("#FF6B6B")).
			Foreground(lipgloss.Color("#FF6B6B")).
			Padding(1, 5).
			Bold(true),
		Bust: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Stop: r.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#FF6B6B")).
			Foreground(lipgloss.Color("#FF6B6B")).
			Padding(1, 3).
			Bold(true),
		Header: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
	}
}
