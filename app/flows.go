package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/modalstack/core"
	"github.com/jask/modalstack/screens"
)

const (
	nsApp    = "app"
	nsMain   = "main"
	nsLog    = "log"
	nsNested = "nested"
)

const (
	flowProfile = "main/profile"
	flowConfirm = "main/confirm"
	flowLog     = "log/log"
	flowNested  = "nested/profile"
	flowNote    = "nested/note"
	flowPalette = "app/commands"
)

var demoUser = screens.User{
	Name:       "Ming Wang",
	Email:      "ming@example.com",
	Department: "Product Design",
}

func newDialogRegistry(ctx context.Context, store *core.Store, nested core.Controller, demo *demoState, confirmDelay time.Duration) *screens.Registry {
	reg := screens.NewRegistry()
	reg.Register(nsApp, "commands", func(e core.Entry) screens.Dialog {
		return screens.NewCommandPalette(e)
	})
	reg.Register(nsMain, "profile", func(core.Entry) screens.Dialog {
		return screens.NewSampleDialog(ctx, screens.Value(true))
	})
	reg.Register(nsMain, "confirm", func(core.Entry) screens.Dialog {
		return screens.NewConfirmDialog(ctx, delayedConfirm(confirmDelay))
	})
	reg.Register(nsLog, "log", func(core.Entry) screens.Dialog {
		return screens.NewSampleDialog(ctx, nil)
	})
	reg.Register(nsNested, "profile", func(core.Entry) screens.Dialog {
		return screens.NewProfileDialog(ctx,
			func() string { return demo.note },
			func() tea.Cmd {
				f := nested.Open("note", screens.Note{Initial: demo.note})
				return AwaitCmd(ctx, flowNote, f)
			},
			func() bool {
				_, _, open := store.Snapshot().Find(nsNested, "note")
				return open
			},
		)
	})
	reg.Register(nsNested, "note", func(e core.Entry) screens.Dialog {
		return screens.NewNoteEditor(ctx, e)
	})
	return reg
}

// delayedConfirm resolves with true after delay, standing in for a slow
// server round trip.
func delayedConfirm(delay time.Duration) core.Executor {
	return func(ctx context.Context) (any, error) {
		if delay <= 0 {
			return true, nil
		}
		t := time.NewTimer(delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-t.C:
			return true, nil
		}
	}
}

func (m *Model) openProfile() tea.Cmd {
	f := m.main.Open("profile", screens.Notice{
		Title:       "User info",
		Description: "Shows how the provider hands different data to a dialog.",
	})
	return AwaitCmd(m.ctx, flowProfile, f)
}

func (m *Model) openConfirm() tea.Cmd {
	f := m.main.Open("confirm", screens.Confirmation{
		Message: "Use the modal stack proof of concept?",
	})
	return AwaitCmd(m.ctx, flowConfirm, f)
}

func (m *Model) openLog() tea.Cmd {
	ts := m.now().Format("15:04:05")
	journal := m.record(nsLog, "log", "opened", "opened log dialog")
	f := m.logs.Open("log", screens.Notice{
		Title:       "Action logged",
		Description: "Latest action at " + ts,
	})
	return tea.Batch(journal, AwaitCmd(m.ctx, flowLog, f))
}

func (m *Model) openNested() tea.Cmd {
	m.demo.note = m.demo.defaultNote
	m.demo.lastSaved, m.demo.saved = "", false
	f := m.nested.Open("profile", screens.Profile{User: demoUser})
	return AwaitCmd(m.ctx, flowNested, f)
}

// openPalette opens the command palette with the commands of the app scope.
// The chosen id comes back as the flow result and is executed then, once the
// palette is gone.
func (m *Model) openPalette() tea.Cmd {
	results := m.commands.Search("", scopeApp, m)
	opts := make([]screens.CommandOption, 0, len(results))
	for _, r := range results {
		if r.CommandID == "open-commands" {
			continue
		}
		opts = append(opts, screens.CommandOption{
			ID:       r.CommandID,
			Name:     r.Name,
			Desc:     r.Desc,
			Disabled: r.Disabled,
			Reason:   r.Reason,
		})
	}
	f := m.palette.Open("commands", screens.PaletteRequest{Scope: scopeApp, Options: opts})
	return AwaitCmd(m.ctx, flowPalette, f)
}

func (m *Model) handleResult(msg DialogResultMsg) tea.Cmd {
	if msg.Err != nil {
		m.log.Debug("stopped waiting for dialog", "flow", msg.Flow, "id", msg.ID, "err", msg.Err)
		return nil
	}
	switch msg.Flow {
	case flowProfile:
		if msg.Value == true {
			return m.record(nsMain, "profile", "confirmed", "confirmed data dialog")
		}
		m.SetStatus("Data dialog closed")
	case flowConfirm:
		if msg.Value == true {
			return m.record(nsMain, "confirm", "confirmed", "confirmed action")
		}
		return m.record(nsMain, "confirm", "cancelled", "cancelled action")
	case flowLog:
		m.SetStatus("Log dialog closed")
	case flowNested:
		if note, ok := msg.Value.(string); ok {
			m.demo.lastSaved, m.demo.saved = note, true
			return m.record(nsNested, "profile", "note-saved", "saved note: "+note)
		}
		m.demo.lastSaved, m.demo.saved = "", false
		m.SetStatus("Nested dialog closed without saving")
	case flowNote:
		if note, ok := msg.Value.(string); ok {
			m.demo.note = note
			m.SetStatus("Note updated")
		}
	case flowPalette:
		if id, ok := msg.Value.(string); ok {
			return m.commands.Execute(id, m)
		}
	}
	return nil
}
