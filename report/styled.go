package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rustyeddy/signalscope/signals"
)

var (
	buyStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	sellStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	holdStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("244"))
	boxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	dimStyle  = lipgloss.NewStyle().Faint(true)
)

func directionStyle(d signals.Direction) lipgloss.Style {
	switch d {
	case signals.Buy:
		return buyStyle
	case signals.Sell:
		return sellStyle
	case signals.Hold:
		return holdStyle
	default:
		return holdStyle
	}
}

// Styled renders a boxed headline for a terminal: the coloured label and
// score, then the reasons.
func Styled(symbol string, sig signals.TradingSignal) string {
	head := directionStyle(sig.Direction).Render(strings.ToUpper(sig.Label()))
	lines := []string{fmt.Sprintf("%s  %s  score %.1f", symbol, head, sig.Score)}
	for _, r := range sig.Reasons {
		lines = append(lines, dimStyle.Render("• "+r))
	}
	return boxStyle.Render(strings.Join(lines, "\n"))
}
