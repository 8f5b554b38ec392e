package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/user/crush-cli/clip"
	"github.com/user/crush-cli/tui/styles"
)

// StageProgressState is what the stage strip needs to know about a run.
type StageProgressState struct {
	// Stage is the current (or final) stage.
	Stage clip.Stage
	// Reached is the furthest working stage entered before the run ended.
	Reached clip.Stage
	Zip     bool
	Spinner string
}

// steps returns the working stages a run passes through.
func steps(zip bool) []clip.Stage {
	s := []clip.Stage{clip.StageValidating, clip.StageProbing, clip.StageEncoding}
	if zip {
		s = append(s, clip.StageArchiving)
	}
	return s
}

// StageProgress renders one line per working stage: done, current, failed or pending.
func StageProgress(state StageProgressState, width int) string {
	if width < 10 || state.Stage == clip.StageIdle {
		return ""
	}

	done := lipgloss.NewStyle().Foreground(styles.Success)
	current := lipgloss.NewStyle().Foreground(styles.Info).Bold(true)
	failed := lipgloss.NewStyle().Foreground(styles.Error).Bold(true)
	pending := lipgloss.NewStyle().Foreground(styles.Border)

	var lines []string
	for _, s := range steps(state.Zip) {
		var mark string
		var style lipgloss.Style
		switch {
		case state.Stage == clip.StageDone || s < state.Reached:
			mark, style = "✓", done
		case s == state.Reached && (state.Stage == clip.StageFailed || state.Stage == clip.StageCancelled):
			mark, style = "✗", failed
		case s == state.Reached:
			mark, style = state.Spinner, current
			if mark == "" {
				mark = "•"
			}
		default:
			mark, style = "·", pending
		}
		lines = append(lines, " "+style.Render(mark+" "+title(s.String())))
	}

	return RenderInfoBox("Progress", lines, width)
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
