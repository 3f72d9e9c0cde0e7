package screens

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/modalstack/core"
)

// ConfirmDialog asks a yes/no question. Cancelling closes with false; confirming
// runs Confirm and closes with its result. Keys are ignored while it runs.
type ConfirmDialog struct {
	ctx     context.Context
	Confirm core.Executor
	err     error
}

func NewConfirmDialog(ctx context.Context, confirm core.Executor) *ConfirmDialog {
	if confirm == nil {
		confirm = Value(true)
	}
	return &ConfirmDialog{ctx: ctx, Confirm: confirm}
}

func (d *ConfirmDialog) Update(slot core.Slot, msg tea.Msg) tea.Cmd {
	if err := failureFor(slot, msg); err != nil {
		d.err = err
		return nil
	}
	k, ok := keyOf(msg)
	if !ok || slot.IsResolving {
		return nil
	}
	switch k {
	case "esc", "n":
		slot.Close(false)
	case "enter", "y":
		d.err = nil
		return ResolveCmd(d.ctx, slot, d.Confirm)
	}
	return nil
}

func (d *ConfirmDialog) View(slot core.Slot, width, height int) string {
	c, _ := core.PayloadAs[Confirmation](slot)
	lines := []string{
		titleStyle.Render("Please confirm"),
		"",
		lipgloss.NewStyle().Width(clampWidth(width)).Render(orDefault(c.Message, "Are you sure?")),
		"",
	}
	if d.err != nil {
		lines = append(lines, errStyle.Render("failed: "+d.err.Error()), "")
	}
	if slot.IsResolving {
		lines = append(lines, busyStyle.Render("Processing…"))
	} else {
		lines = append(lines, helpLine("esc", "cancel", "enter", "confirm"))
	}
	return strings.Join(lines, "\n")
}
