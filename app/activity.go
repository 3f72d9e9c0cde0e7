package app

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/modalstack/internal/database/repository"
)

const maxActivity = 8

// record prepends detail to the activity list and returns a command that
// appends it to the journal.
func (m *Model) record(namespace, key, action, detail string) tea.Cmd {
	at := m.now()
	line := at.Format("15:04:05") + ": " + detail
	keep := m.activity[:min(len(m.activity), maxActivity-1)]
	m.activity = append([]string{line}, keep...)
	m.SetStatus(detail)

	if m.journal == nil {
		return nil
	}
	ctx, journal, log := m.ctx, m.journal, m.log
	a := repository.Activity{
		At:        at.UTC().Truncate(time.Second),
		Namespace: namespace,
		Key:       key,
		Action:    action,
		Detail:    detail,
	}
	return func() tea.Msg {
		if err := journal.Append(ctx, a); err != nil {
			log.Warn("journal append failed", "action", action, "err", err)
			return StatusMsg{Text: fmt.Sprintf("journal: %v", err), IsErr: true}
		}
		return nil
	}
}
