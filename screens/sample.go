package screens

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/modalstack/core"
)

// SampleDialog shows a Notice. Enter runs OnConfirm (or just closes), esc
// closes without a result.
type SampleDialog struct {
	ctx       context.Context
	OnConfirm core.Executor
	err       error
}

func NewSampleDialog(ctx context.Context, onConfirm core.Executor) *SampleDialog {
	return &SampleDialog{ctx: ctx, OnConfirm: onConfirm}
}

func (d *SampleDialog) Update(slot core.Slot, msg tea.Msg) tea.Cmd {
	if err := failureFor(slot, msg); err != nil {
		d.err = err
		return nil
	}
	k, ok := keyOf(msg)
	if !ok || slot.IsResolving {
		return nil
	}
	switch k {
	case "esc":
		slot.Close(nil)
	case "enter":
		if d.OnConfirm == nil {
			slot.Close(nil)
			return nil
		}
		d.err = nil
		return ResolveCmd(d.ctx, slot, d.OnConfirm)
	}
	return nil
}

func (d *SampleDialog) View(slot core.Slot, width, height int) string {
	n, _ := core.PayloadAs[Notice](slot)
	w := clampWidth(width)
	lines := []string{
		titleStyle.Render(orDefault(n.Title, "Untitled dialog")),
		"",
		lipgloss.NewStyle().Width(w).Render(orDefault(n.Description, "No description provided")),
		"",
	}
	if d.err != nil {
		lines = append(lines, errStyle.Render(d.err.Error()), "")
	}
	lines = append(lines, helpLine("esc", "close", "enter", "confirm"))
	return strings.Join(lines, "\n")
}
