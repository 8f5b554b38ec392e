package layout

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/user/crush-cli/tui/styles"
)

// Responsive layout constants.
const (
	MinTerminalWidth = 60 // below this the screen asks for a wider terminal
	SideBySideWidth  = 90 // at or above this, job details and output sit side by side
	LeftMinWidth     = 34 // job details column never gets narrower than this
)

// ComputeColumnWidths splits the terminal into the job column and the output
// column. Below SideBySideWidth the columns are stacked and both get the full width.
func ComputeColumnWidths(termWidth int) (left, right int, sideBySide bool) {
	if termWidth < SideBySideWidth {
		return termWidth, termWidth, false
	}
	usable := termWidth - 1 // one border character
	left = usable * 2 / 5
	if left < LeftMinWidth {
		left = LeftMinWidth
	}
	return left, usable - left, true
}

// JoinColumns joins pre-rendered column strings side by side with border separators.
// Each column is normalized to the given height and padded to its width.
func JoinColumns(columns []string, widths []int, height int) string {
	sep := lipgloss.NewStyle().Foreground(styles.Border).Render("│")

	colLines := make([][]string, len(columns))
	for i, col := range columns {
		colLines[i] = NormalizeLines(strings.Split(col, "\n"), height)
	}

	rows := make([]string, 0, height)
	for row := 0; row < height; row++ {
		parts := make([]string, 0, len(colLines))
		for i, lines := range colLines {
			parts = append(parts, PadToWidth(lines[row], widths[i]))
		}
		rows = append(rows, strings.Join(parts, sep))
	}
	return strings.Join(rows, "\n")
}
