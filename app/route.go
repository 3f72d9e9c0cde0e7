package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/modalstack/screens"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.sync()
	cmd := m.update(msg)
	m.sync()
	return m, cmd
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return nil
	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return nil
	case StackChangedMsg:
		return WaitForChange(m.changes)
	case DialogResultMsg:
		return m.handleResult(msg)
	case screens.ResolveFailedMsg:
		m.SetError(msg.Err)
		slot, ok := m.slotFor(msg.ID)
		if !ok {
			return nil
		}
		if d := m.dialogs[msg.ID]; d != nil {
			return d.Update(slot, msg)
		}
		return nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	scope := m.ActiveScope()
	if msg.String() == "ctrl+c" || m.keys.IsAction(msg, "force-quit", scope) {
		m.quitting = true
		return tea.Quit
	}
	if m.keys.IsAction(msg, "close-top", scope) {
		return m.commands.Execute("close-top", m)
	}

	if top, ok := m.snap.Top(); ok {
		slot, ok := m.slotFor(top.ID)
		d := m.dialogs[top.ID]
		if !ok || d == nil {
			return nil
		}
		return d.Update(slot, msg)
	}

	action, ok := m.keys.ActionFor(msg, scope)
	if !ok {
		return nil
	}
	if action == "quit" {
		m.quitting = true
		return tea.Quit
	}
	if m.commands.Has(action) {
		return m.commands.Execute(action, m)
	}
	return nil
}
