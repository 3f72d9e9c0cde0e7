package screens

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/modalstack/core"
)

// ProfileDialog edits the note attached to a user. The note itself lives with
// the caller; "e" asks the caller to open the note editor on top, enter
// resolves with the current note.
type ProfileDialog struct {
	ctx      context.Context
	Note     func() string
	EditNote func() tea.Cmd
	Editing  func() bool
	err      error
}

func NewProfileDialog(ctx context.Context, note func() string, editNote func() tea.Cmd, editing func() bool) *ProfileDialog {
	return &ProfileDialog{ctx: ctx, Note: note, EditNote: editNote, Editing: editing}
}

func (d *ProfileDialog) note() string {
	if d.Note == nil {
		return ""
	}
	return d.Note()
}

func (d *ProfileDialog) editing() bool {
	return d.Editing != nil && d.Editing()
}

func (d *ProfileDialog) Update(slot core.Slot, msg tea.Msg) tea.Cmd {
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
	case "e":
		if d.EditNote != nil && !d.editing() {
			return d.EditNote()
		}
	case "enter":
		d.err = nil
		note := d.note()
		return ResolveCmd(d.ctx, slot, Value(note))
	}
	return nil
}

func (d *ProfileDialog) View(slot core.Slot, width, height int) string {
	p, ok := core.PayloadAs[Profile](slot)
	if !ok {
		p.User = User{Name: "Unknown user", Email: "unknown email", Department: "no department"}
	}
	note := d.note()
	if note == "" {
		note = mutedStyle.Render("(no note yet)")
	}
	lines := []string{
		titleStyle.Render("Set user note"),
		mutedStyle.Render("Nested dialogs share data through the stack."),
		"",
		p.User.Name,
		mutedStyle.Render(p.User.Email + " · " + p.User.Department),
		"",
		"Note: " + note,
		"",
	}
	if d.err != nil {
		lines = append(lines, errStyle.Render(d.err.Error()), "")
	}
	switch {
	case slot.IsResolving:
		lines = append(lines, busyStyle.Render("Saving…"))
	case d.editing():
		lines = append(lines, helpLine("esc", "cancel", "enter", "save"))
	default:
		lines = append(lines, helpLine("e", "edit note", "esc", "cancel", "enter", "save"))
	}
	return strings.Join(lines, "\n")
}
