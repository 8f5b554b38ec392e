package layout

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestComputeColumnWidths(t *testing.T) {
	left, right, side := ComputeColumnWidths(80)
	if side || left != 80 || right != 80 {
		t.Errorf("narrow: %d %d %v", left, right, side)
	}
	left, right, side = ComputeColumnWidths(121)
	if !side || left+right+1 != 121 || left < LeftMinWidth {
		t.Errorf("wide: %d %d %v", left, right, side)
	}
}

func TestJoinColumns(t *testing.T) {
	out := JoinColumns([]string{"a\nb", "c"}, []int{3, 4}, 3)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d rows", len(lines))
	}
	for _, l := range lines {
		if w := lipgloss.Width(l); w != 8 {
			t.Errorf("row width = %d, want 8: %q", w, l)
		}
	}
}

func TestContainerClipsAndPads(t *testing.T) {
	out := Container{Width: 10, Height: 2}.Render("one\ntwo\nthree")
	lines := strings.Split(out, "\n")
	if len(lines) != 2 || !strings.Contains(lines[1], "↓") {
		t.Errorf("clipped output = %q", out)
	}
	for _, l := range lines {
		if lipgloss.Width(l) != 10 {
			t.Errorf("width = %d", lipgloss.Width(l))
		}
	}

	out = Container{Width: 5, Height: 3}.Render("x")
	if n := len(strings.Split(out, "\n")); n != 3 {
		t.Errorf("padded to %d lines", n)
	}
}

func TestPadToWidth(t *testing.T) {
	if got := PadToWidth("abcdef", 3); got != "abc" {
		t.Errorf("truncate = %q", got)
	}
	if got := PadToWidth("ab", 4); got != "ab  " {
		t.Errorf("pad = %q", got)
	}
	if got := PadToWidth("x", 0); got != "" {
		t.Errorf("zero width = %q", got)
	}
}
