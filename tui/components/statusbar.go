package components

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/user/crush-cli/clip"
	"github.com/user/crush-cli/tui/styles"
)

// StatusBarState is the top line of the screen.
type StatusBarState struct {
	Stage   clip.Stage
	Spinner string
	Elapsed time.Duration
	// Cancelling is set once the user confirmed a cancel and the run has not ended yet.
	Cancelling bool
}

// StatusBar renders "crush" on the left and the job state on the right.
func StatusBar(state StatusBarState, width int) string {
	left := " ✂ crush"

	var right string
	switch {
	case state.Cancelling:
		right = fmt.Sprintf("%s cancelling… ", state.Spinner)
	case state.Stage == clip.StageIdle:
		right = "ready "
	case state.Stage.Terminal():
		right = fmt.Sprintf("%s in %s ", state.Stage, formatElapsed(state.Elapsed))
	default:
		right = fmt.Sprintf("%s %s %s ", state.Spinner, state.Stage, formatElapsed(state.Elapsed))
	}

	pad := width - lipgloss.Width(left) - lipgloss.Width(right)
	if pad < 1 {
		pad = 1
	}
	return styles.Bar.Width(width).Render(left + fmt.Sprintf("%*s", pad, "") + right)
}

// formatElapsed formats a duration as M:SS.
func formatElapsed(d time.Duration) string {
	sec := int(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%d:%02d", sec/60, sec%60)
}
