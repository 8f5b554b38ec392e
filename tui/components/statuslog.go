package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/user/crush-cli/clip"
	"github.com/user/crush-cli/tui/styles"
)

// levelStyle picks the colour for a log line.
func levelStyle(l clip.Level) lipgloss.Style {
	switch l {
	case clip.LevelSuccess:
		return styles.SuccessLine
	case clip.LevelWarning:
		return styles.WarningLine
	case clip.LevelError:
		return styles.ErrorLine
	default:
		return styles.InfoLine
	}
}

// StatusLog renders the last lines of the log that fit in a box of the given
// size. Long lines are truncated, not wrapped.
func StatusLog(events []clip.Event, width, height int) string {
	if width < 4 || height < 3 {
		return ""
	}
	innerW := width - 4
	rows := height - 2

	start := 0
	if len(events) > rows {
		start = len(events) - rows
	}

	lines := make([]string, 0, rows)
	if len(events) == 0 {
		lines = append(lines, " "+styles.SecondaryText.Render("No output yet."))
	}
	for _, e := range events[start:] {
		tag := levelStyle(e.Level).Render(e.Level.String())
		text := ansi.Truncate(e.Message, innerW-lipgloss.Width(tag)-1, "…")
		lines = append(lines, " "+tag+" "+styles.PrimaryText.Render(text))
	}
	for len(lines) < rows {
		lines = append(lines, "")
	}

	title := "Output"
	if start > 0 {
		title = "Output (scrolled)"
	}
	return RenderInfoBox(title, lines, width)
}
