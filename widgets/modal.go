package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var cardBorders = []lipgloss.Color{"#89b4fa", "#cba6f7", "#f9e2af", "#a6e3a1"}

// RenderPopup draws popup as a bordered card centred over base.
func RenderPopup(base, popup string, width, height int) string {
	return RenderPopupAt(base, popup, width, height, 0)
}

// RenderPopupAt is RenderPopup for the dialog at stack position depth. Each
// level is nudged down and to the right so the dialogs underneath stay
// visible.
func RenderPopupAt(base, popup string, width, height, depth int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	depth = max(0, depth)
	baseCanvas := fitCanvas(base, width, height)
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(cardBorders[depth%len(cardBorders)]).
		Padding(1, 2).
		Render(popup)
	placed := lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
	overlayCanvas := fitCanvas(shiftCanvas(placed, 2*depth, depth), width, height)
	return overlayOntoBase(baseCanvas, overlayCanvas, width, height)
}

// shiftCanvas moves s right by dx columns and down by dy rows.
func shiftCanvas(s string, dx, dy int) string {
	if dx <= 0 && dy <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	pad := strings.Repeat(" ", max(0, dx))
	out := make([]string, 0, len(lines)+dy)
	for i := 0; i < dy; i++ {
		out = append(out, "")
	}
	for _, line := range lines {
		out = append(out, pad+line)
	}
	return strings.Join(out, "\n")
}

func overlayOntoBase(base, overlay string, width, height int) string {
	baseLines := splitToLines(base, height)
	overlayLines := splitToLines(overlay, height)
	out := make([]string, height)
	for i := 0; i < height; i++ {
		baseLine := padRightANSI(baseLines[i], width)
		overlayLine := padRightANSI(overlayLines[i], width)
		start, end, has := overlaySegmentBounds(overlayLine, width)
		if !has {
			out[i] = baseLine
			continue
		}
		left := ansi.Truncate(baseLine, start, "")
		segment := ansi.Truncate(dropColumns(overlayLine, start), end-start, "")
		right := dropColumns(baseLine, end)
		out[i] = padRightANSI(left+segment+right, width)
	}
	return strings.Join(out, "\n")
}

// overlaySegmentBounds returns the visible column range of line, ignoring
// leading and trailing blanks.
func overlaySegmentBounds(line string, width int) (start, end int, ok bool) {
	plain := []rune(ansi.Strip(ansi.Truncate(line, width, "")))
	end = len(plain)
	for end > 0 && plain[end-1] == ' ' {
		end--
	}
	for start < end && plain[start] == ' ' {
		start++
	}
	if start >= end {
		return 0, 0, false
	}
	return start, end, true
}

func fitCanvas(s string, width, height int) string {
	lines := splitToLines(s, height)
	for i := range lines {
		lines[i] = padRightANSI(lines[i], width)
	}
	return strings.Join(lines, "\n")
}

func splitToLines(s string, height int) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

func dropColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	return ansi.TruncateLeft(s, cols, "")
}

func padRightANSI(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
