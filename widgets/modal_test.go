package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestRenderPopupKeepsCanvasSize(t *testing.T) {
	base := strings.Repeat(strings.Repeat(".", 40)+"\n", 12)
	out := RenderPopup(base, "hello", 40, 12)
	lines := strings.Split(out, "\n")
	if len(lines) != 12 {
		t.Fatalf("expected 12 lines, got %d", len(lines))
	}
	for i, l := range lines {
		if w := ansi.StringWidth(l); w != 40 {
			t.Fatalf("line %d width %d, want 40", i, w)
		}
	}
	if !strings.Contains(ansi.Strip(out), "hello") {
		t.Fatalf("popup content missing")
	}
}

func TestRenderPopupAtShiftsDeeperDialogs(t *testing.T) {
	base := strings.Repeat(strings.Repeat(" ", 40)+"\n", 14)
	row := func(out string) (int, int) {
		for i, l := range strings.Split(ansi.Strip(out), "\n") {
			if idx := strings.Index(l, "dlg"); idx >= 0 {
				return i, idx
			}
		}
		return -1, -1
	}
	r0, c0 := row(RenderPopupAt(base, "dlg", 40, 14, 0))
	r2, c2 := row(RenderPopupAt(base, "dlg", 40, 14, 2))
	if r0 < 0 || r2 < 0 {
		t.Fatalf("popup content missing")
	}
	if r2 != r0+2 || c2 != c0+4 {
		t.Fatalf("expected depth 2 to shift by (4,2); got (%d,%d) -> (%d,%d)", c0, r0, c2, r2)
	}
}

func TestRenderPopupEmptyCanvas(t *testing.T) {
	if RenderPopupAt("base", "x", 0, 10, 1) != "" {
		t.Fatalf("zero width should render nothing")
	}
}

func TestOverlaySegmentBoundsIgnoresBlanks(t *testing.T) {
	start, end, ok := overlaySegmentBounds("   abc  ", 8)
	if !ok || start != 3 || end != 6 {
		t.Fatalf("got %d %d %v", start, end, ok)
	}
	if _, _, ok := overlaySegmentBounds("      ", 6); ok {
		t.Fatalf("blank line has no segment")
	}
}
