package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Shared lipgloss styles for CLI output.
var (
	cliPrimary = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#C51A4A", Dark: "#E85D75"})
	cliBorder  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"})
	cliSuccess = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"})
	cliMuted   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"})
	cliWarn    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"})
)

// kvPair is one label/value line in a card.
type kvPair struct {
	key   string
	value string
}

// renderKeyValueLines renders aligned key/value pairs.
func renderKeyValueLines(pairs []kvPair) string {
	width := 0
	for _, p := range pairs {
		if len(p.key) > width {
			width = len(p.key)
		}
	}

	var lines []string
	for _, p := range pairs {
		label := cliMuted.Render(p.key + strings.Repeat(" ", width-len(p.key)))
		lines = append(lines, label+"  "+p.value)
	}
	return strings.Join(lines, "\n")
}

// renderCard renders a bordered card with a title and body sections.
func renderCard(title string, sections ...string) string {
	body := strings.Join(sections, "\n")
	content := cliPrimary.Bold(true).Render(title)
	if body != "" {
		content += "\n\n" + body
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(cliBorder.GetForeground()).
		Padding(0, 2).
		Render(content)
}

// renderSuccessCard renders a card with a success-styled title.
func renderSuccessCard(title string, sections ...string) string {
	return renderCard(cliSuccess.Render("✓ ")+title, sections...)
}
