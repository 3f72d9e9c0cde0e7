package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Panel is a titled, bordered list of lines.
type Panel struct {
	Title string
	Lines []string
	Empty string
}

func (p Panel) Render(width, height int) string {
	if width <= 2 || height <= 2 {
		return ""
	}
	inner := width - 4
	rows := make([]string, 0, len(p.Lines)+1)
	rows = append(rows, "["+p.Title+"]")
	if len(p.Lines) == 0 && p.Empty != "" {
		rows = append(rows, p.Empty)
	}
	for _, l := range p.Lines {
		rows = append(rows, ansi.Truncate(l, inner, "…"))
	}
	if limit := height - 2; len(rows) > limit {
		rows = rows[:limit]
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(width - 2).
		Height(height - 2)
	return style.Render(strings.Join(rows, "\n"))
}
