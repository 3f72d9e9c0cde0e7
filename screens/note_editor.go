package screens

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/modalstack/core"
)

// NoteEditor edits a Note and resolves with the typed text. It reads the
// parent Profile from the entry below it in the same namespace.
type NoteEditor struct {
	ctx   context.Context
	input textinput.Model
	err   error
}

func NewNoteEditor(ctx context.Context, e core.Entry) *NoteEditor {
	n, _ := e.Payload.(Note)
	inp := textinput.New()
	inp.Prompt = "Note: "
	inp.Placeholder = "type the note to save"
	inp.CharLimit = 280
	inp.SetValue(n.Initial)
	inp.Focus()
	return &NoteEditor{ctx: ctx, input: inp}
}

// Value returns the current text.
func (d *NoteEditor) Value() string { return d.input.Value() }

func (d *NoteEditor) Update(slot core.Slot, msg tea.Msg) tea.Cmd {
	if err := failureFor(slot, msg); err != nil {
		d.err = err
		return nil
	}
	if slot.IsResolving {
		return nil
	}
	if k, ok := keyOf(msg); ok {
		switch k {
		case "esc":
			slot.Close(nil)
			return nil
		case "enter":
			d.err = nil
			return ResolveCmd(d.ctx, slot, Value(d.input.Value()))
		}
	}
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return cmd
}

func (d *NoteEditor) View(slot core.Slot, width, height int) string {
	parent := "unknown user (unknown email)"
	if p, ok := core.PreviousPayloadAs[Profile](slot); ok {
		parent = p.User.Name + " (" + p.User.Email + ")"
	}
	d.input.Width = clampWidth(width) - len(d.input.Prompt)
	lines := []string{
		titleStyle.Render("Update note"),
		mutedStyle.Render("Parent user: " + parent),
		"",
		d.input.View(),
		"",
	}
	if d.err != nil {
		lines = append(lines, errStyle.Render(d.err.Error()), "")
	}
	lines = append(lines, helpLine("esc", "cancel", "enter", "save note"))
	return strings.Join(lines, "\n")
}
