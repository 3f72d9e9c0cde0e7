package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestPanelShowsEmptyPlaceholder(t *testing.T) {
	out := ansi.Strip(Panel{Title: "Activity", Empty: "nothing yet"}.Render(30, 6))
	if !strings.Contains(out, "[Activity]") || !strings.Contains(out, "nothing yet") {
		t.Fatalf("unexpected panel: %q", out)
	}
}

func TestPanelClipsToHeight(t *testing.T) {
	p := Panel{Title: "t", Lines: []string{"a", "b", "c", "d", "e", "f"}}
	out := ansi.Strip(p.Render(20, 5))
	if strings.Contains(out, "d") {
		t.Fatalf("expected lines past the height to be dropped: %q", out)
	}
}
