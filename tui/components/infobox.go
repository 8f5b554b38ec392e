// Package components provides reusable TUI components.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/user/crush-cli/tui/styles"
)

// RenderInfoBox renders contentLines inside a rounded box with the title set
// into the top border:
//
//	╭─ Title ─────╮
//	│content      │
//	╰─────────────╯
//
// Lines wider than the box are truncated.
func RenderInfoBox(title string, contentLines []string, width int) string {
	if width < 4 {
		return ""
	}
	innerWidth := width - 2

	border := lipgloss.NewStyle().Foreground(styles.Border)
	header := styles.Header.Render(" " + title + " ")

	fill := innerWidth - 1 - lipgloss.Width(header)
	if fill < 0 {
		fill = 0
		header = ansi.Truncate(header, innerWidth-1, "")
	}

	out := make([]string, 0, len(contentLines)+2)
	out = append(out, border.Render("╭─")+header+border.Render(strings.Repeat("─", fill)+"╮"))
	for _, line := range contentLines {
		if lipgloss.Width(line) > innerWidth {
			line = ansi.Truncate(line, innerWidth, "…")
		}
		pad := innerWidth - lipgloss.Width(line)
		out = append(out, border.Render("│")+line+strings.Repeat(" ", pad)+border.Render("│"))
	}
	out = append(out, border.Render("╰"+strings.Repeat("─", innerWidth)+"╯"))

	return strings.Join(out, "\n")
}
