package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/user/crush-cli/clip"
	"github.com/user/crush-cli/mpv"
)

// jobEventMsg carries one event from the running cut.
type jobEventMsg struct {
	event clip.Event
}

// jobStartErrMsg is sent when the processor refused to start.
type jobStartErrMsg struct {
	err error
}

// previewMsg reports the outcome of launching mpv.
type previewMsg struct {
	event clip.Event
}

// waitForJobMsg returns a tea.Cmd that waits for the next event on the channel.
// A closed channel yields nil, which ends the chain.
func waitForJobMsg(ch <-chan clip.Event) tea.Cmd {
	return func() tea.Msg {
		e, ok := <-ch
		if !ok {
			return nil
		}
		return jobEventMsg{event: e}
	}
}

// startJob starts req on the processor. The returned cancel func stops ffmpeg.
func startJob(p *clip.Processor, req clip.Request) (<-chan clip.Event, context.CancelFunc, error) {
	ctx, cancel := context.WithCancel(context.Background())
	ch, err := p.Start(ctx, req)
	if err != nil {
		cancel()
		return nil, nil, err
	}
	return ch, cancel, nil
}

// previewCmd opens path in mpv and detaches from it.
func previewCmd(path string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()

		p, err := mpv.Open(ctx, path)
		if err != nil {
			return previewMsg{event: clip.Event{Level: clip.LevelError, Message: "Preview failed: " + err.Error()}}
		}
		_ = p.Release()
		return previewMsg{event: clip.Event{Level: clip.LevelInfo, Message: "Previewing " + path}}
	}
}
