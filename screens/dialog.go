package screens

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/modalstack/core"
)

// Dialog renders one stack entry and answers it through its slot. Update only
// sees keys while the entry is the global top.
type Dialog interface {
	Update(slot core.Slot, msg tea.Msg) tea.Cmd
	View(slot core.Slot, width, height int) string
}

// Factory builds the dialog for a freshly opened entry.
type Factory func(e core.Entry) Dialog

// ResolveFailedMsg reports an executor error. The entry is still open.
type ResolveFailedMsg struct {
	ID  string
	Err error
}

// ResolveCmd runs slot.ResolveWith off the update loop.
func ResolveCmd(ctx context.Context, slot core.Slot, exec core.Executor) tea.Cmd {
	return func() tea.Msg {
		if err := slot.ResolveWith(ctx, exec); err != nil {
			return ResolveFailedMsg{ID: slot.ID, Err: err}
		}
		return nil
	}
}

// Value returns an executor that resolves with v.
func Value(v any) core.Executor {
	return func(context.Context) (any, error) { return v, nil }
}

func keyOf(msg tea.Msg) (string, bool) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return "", false
	}
	return km.String(), true
}

// failureFor returns the executor error carried by msg when it belongs to slot.
func failureFor(slot core.Slot, msg tea.Msg) error {
	f, ok := msg.(ResolveFailedMsg)
	if !ok || f.ID != slot.ID {
		return nil
	}
	return f.Err
}
