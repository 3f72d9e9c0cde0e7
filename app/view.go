package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/modalstack/core"
	"github.com/jask/modalstack/widgets"
)

func (m Model) View() string {
	if m.quitting {
		return "Goodbye\n"
	}
	header := renderHeader(m)
	status := RenderStatusBar(m)
	footer := RenderFooter(m)
	bodyHeight := max(0, m.height-lipgloss.Height(header)-lipgloss.Height(status)-lipgloss.Height(footer))
	bodyWidth := max(1, m.width)

	var body string
	if bodyHeight > 0 {
		body = m.renderBody(bodyWidth, bodyHeight)
		body = m.renderDialogs(body, bodyWidth, bodyHeight)
	}
	body = fitHeight(body, bodyHeight)
	view := strings.Join([]string{header, status, body, footer}, "\n")
	view = fitHeight(view, max(1, m.height))
	return appStyle.Width(max(1, m.width)).MaxWidth(max(1, m.width)).Render(view)
}

func renderHeader(m Model) string {
	left := headerAppStyle.Render("Modal stack demo")
	right := fmt.Sprintf("open: %d  resolving: %d", m.snap.Len(), len(m.snap.Resolving()))
	leftW := ansi.StringWidth(left)
	rightW := ansi.StringWidth(right)
	gap := 1
	if leftW+rightW+1 < m.width {
		gap = m.width - leftW - rightW
	}
	line := ansi.Truncate(left+strings.Repeat(" ", gap)+right, max(1, m.width), "")
	return renderBar(headerBarStyle, max(1, m.width), line, colorMantle)
}

func (m Model) renderBody(width, height int) string {
	leftW := max(1, width/2)
	rightW := max(1, width-leftW)

	menu := widgets.Panel{Title: "Dialogs", Lines: m.menuLines()}
	activity := widgets.Panel{
		Title: "Recent activity",
		Lines: m.activity,
		Empty: menuOffStyle.Render("No activity yet. Open a dialog to see it here."),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		menu.Render(leftW, height),
		activity.Render(rightW, height),
	)
}

func (m Model) menuLines() []string {
	results := m.commands.Search("", scopeApp, &m)
	lines := make([]string, 0, len(results)+3)
	for _, r := range results {
		k := m.keys.KeyFor(r.CommandID, scopeApp)
		if k == "" {
			continue
		}
		if r.Disabled {
			lines = append(lines, menuOffStyle.Render(k+"  "+r.Name))
			continue
		}
		lines = append(lines, menuKeyStyle.Render(k)+"  "+r.Name+"  "+menuDescStyle.Render(r.Desc))
	}
	saved := "not saved yet"
	if m.demo.saved {
		saved = m.demo.lastSaved
	}
	lines = append(lines, "", noteLabelStyle.Render("Last saved note: ")+saved)
	return lines
}

// renderDialogs draws every addressable entry bottom to top, offset by its
// stack position. Shadowed entries stay hidden until the newer entry at the
// same address closes.
func (m Model) renderDialogs(body string, width, height int) string {
	for _, e := range m.snap.Entries() {
		slot, ok := core.SlotIn(m.store, m.snap, e.Namespace, e.Key)
		if !ok || slot.ID != e.ID {
			continue
		}
		d := m.dialogs[e.ID]
		if d == nil {
			continue
		}
		popup := d.View(slot, max(20, width-12), max(8, height-8))
		body = widgets.RenderPopupAt(body, popup, width, height, slot.Position)
	}
	return body
}

func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
