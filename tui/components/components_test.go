package components

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/user/crush-cli/clip"
)

func TestRenderInfoBoxKeepsWidth(t *testing.T) {
	box := RenderInfoBox("Job", []string{"short", strings.Repeat("x", 100)}, 30)
	lines := strings.Split(box, "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(lines))
	}
	for i, l := range lines {
		if w := lipgloss.Width(l); w != 30 {
			t.Errorf("line %d width = %d, want 30: %q", i, w, l)
		}
	}
	if !strings.Contains(lines[0], "Job") {
		t.Errorf("title missing from %q", lines[0])
	}
}

func TestStatusLogShowsTail(t *testing.T) {
	var events []clip.Event
	for i := 0; i < 10; i++ {
		events = append(events, clip.Event{Level: clip.LevelInfo, Message: "line " + string(rune('0'+i))})
	}
	events = append(events, clip.Event{Level: clip.LevelError, Message: "boom"})

	out := StatusLog(events, 40, 6)
	if !strings.Contains(out, "boom") || !strings.Contains(out, "[Error:]") {
		t.Errorf("last line missing:\n%s", out)
	}
	if strings.Contains(out, "line 0") {
		t.Errorf("oldest line should have scrolled off:\n%s", out)
	}
	if !strings.Contains(out, "scrolled") {
		t.Errorf("expected scrolled title:\n%s", out)
	}
	if n := len(strings.Split(out, "\n")); n != 6 {
		t.Errorf("height = %d, want 6", n)
	}
}

func TestStatusLogEmpty(t *testing.T) {
	if out := StatusLog(nil, 40, 5); !strings.Contains(out, "No output yet.") {
		t.Errorf("empty log:\n%s", out)
	}
}

func TestStageProgressMarks(t *testing.T) {
	out := StageProgress(StageProgressState{Stage: clip.StageFailed, Reached: clip.StageProbing}, 30)
	lines := strings.Split(out, "\n")
	// Box top, then validating, probing, encoding.
	if !strings.Contains(lines[1], "✓") || !strings.Contains(lines[2], "✗") || !strings.Contains(lines[3], "·") {
		t.Errorf("marks wrong:\n%s", out)
	}
	if strings.Contains(out, "Archiving") {
		t.Error("archiving shown without zip")
	}

	out = StageProgress(StageProgressState{Stage: clip.StageDone, Reached: clip.StageArchiving, Zip: true}, 30)
	if strings.Count(out, "✓") != 4 {
		t.Errorf("all stages should be done:\n%s", out)
	}
	if StageProgress(StageProgressState{}, 30) != "" {
		t.Error("idle should render nothing")
	}
}

func TestStatusBar(t *testing.T) {
	out := StatusBar(StatusBarState{Stage: clip.StageEncoding, Spinner: "*", Elapsed: 75 * time.Second}, 50)
	if !strings.Contains(out, "encoding 1:15") {
		t.Errorf("status bar = %q", out)
	}
	if lipgloss.Width(out) != 50 {
		t.Errorf("width = %d", lipgloss.Width(out))
	}
	if out := StatusBar(StatusBarState{}, 50); !strings.Contains(out, "ready") {
		t.Errorf("idle status bar = %q", out)
	}
}
