package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/user/crush-cli/tui/components"
	"github.com/user/crush-cli/tui/layout"
	"github.com/user/crush-cli/tui/styles"
)

// formWidth caps the form at a readable width.
func (m *Model) formWidth() int {
	if m.width <= 0 || m.width > 72 {
		return 72
	}
	return m.width - 2
}

// View renders the current screen.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	if m.width > 0 && m.width < layout.MinTerminalWidth {
		return styles.WarningLine.Render(fmt.Sprintf("Terminal too narrow (%d cols)", m.width)) + "\n" +
			styles.Hint.Render(fmt.Sprintf("Minimum width: %d columns", layout.MinTerminalWidth))
	}

	width := m.width
	if width <= 0 {
		width = 100
	}
	height := m.height
	if height <= 0 {
		height = 30
	}

	bar := components.StatusBar(components.StatusBarState{
		Stage:      m.stage,
		Spinner:    m.spinner.View(),
		Elapsed:    m.elapsed(),
		Cancelling: m.cancelling,
	}, width)
	help := components.HelpLine(m.bindings())

	bodyHeight := height - 2
	var body string
	if m.mode == modeForm {
		body = m.form.View()
		if len(m.log) > 0 {
			body += "\n" + components.StatusLog(m.log, width, 6)
		}
	} else {
		body = m.renderJob(width, bodyHeight)
	}

	return bar + "\n" + layout.Container{Width: width, Height: bodyHeight}.Render(body) + "\n" + help
}

func (m *Model) elapsed() time.Duration {
	if m.started.IsZero() {
		return 0
	}
	if m.busy() {
		return m.now().Sub(m.started)
	}
	return m.finished.Sub(m.started)
}

// renderJob lays out the job details beside (or above) the status log.
func (m *Model) renderJob(width, height int) string {
	leftW, rightW, side := layout.ComputeColumnWidths(width)

	var left []string
	left = append(left, strings.Split(m.renderJobBox(leftW), "\n")...)
	if p := components.StageProgress(components.StageProgressState{
		Stage:   m.stage,
		Reached: m.reached,
		Zip:     m.request.Zip,
		Spinner: m.spinner.View(),
	}, leftW); p != "" {
		left = append(left, strings.Split(p, "\n")...)
	}
	if m.mode == modeConfirmCancel && m.confirm != nil {
		left = append(left, "", m.confirm.View())
	}

	if side {
		right := components.StatusLog(m.log, rightW, height)
		return layout.JoinColumns([]string{strings.Join(left, "\n"), right}, []int{leftW, rightW}, height)
	}

	logHeight := height - len(left)
	if logHeight < 5 {
		logHeight = 5
	}
	return strings.Join(left, "\n") + "\n" + components.StatusLog(m.log, width, logHeight)
}

// renderJobBox summarises the request and, once finished, the result.
func (m *Model) renderJobBox(width int) string {
	label := lipgloss.NewStyle().Foreground(styles.Muted)
	value := styles.PrimaryText

	row := func(k, v string) string {
		return " " + label.Render(fmt.Sprintf("%-8s", k)) + value.Render(v)
	}

	rng := m.request.Start.String() + " → " + m.request.End.String()
	if m.request.Entire {
		rng = "entire video"
	}
	lines := []string{
		row("Input", filepath.Base(m.request.Input)),
		row("Range", rng),
		row("Quality", m.request.Quality.String()),
	}

	if o := m.outcome; o != nil {
		lines = append(lines,
			row("Output", filepath.Base(o.Result.Path)),
			row("Size", humanize.IBytes(uint64(o.Result.Size))),
		)
		if o.ArchivePath != "" {
			lines = append(lines, row("Zip", filepath.Base(o.ArchivePath)))
		}
	}
	return components.RenderInfoBox("Job", lines, width)
}

// bindings lists the keys that do something on the current screen.
func (m *Model) bindings() []components.Binding {
	switch m.mode {
	case modeForm:
		return []components.Binding{{Key: "enter", Desc: "next"}, {Key: "shift+tab", Desc: "back"}, {Key: "ctrl+c", Desc: "quit"}}
	case modeRunning:
		return []components.Binding{{Key: "esc", Desc: "cancel cut"}, {Key: "c", Desc: "clear output"}}
	case modeConfirmCancel:
		return []components.Binding{{Key: "←/→", Desc: "choose"}, {Key: "enter", Desc: "confirm"}}
	}
	b := []components.Binding{{Key: "n", Desc: "new cut"}, {Key: "c", Desc: "clear output"}}
	if m.outcome != nil {
		b = append(b, components.Binding{Key: "p", Desc: "preview"})
	}
	return append(b, components.Binding{Key: "q", Desc: "quit"})
}
