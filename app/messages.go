package app

import tea "github.com/charmbracelet/bubbletea"

type StatusMsg struct {
	Text  string
	IsErr bool
}

// StackChangedMsg reports that the store committed a mutation.
type StackChangedMsg struct{}

// DialogResultMsg carries the settled result of a flow's Future. Err is only
// set when the wait itself was cancelled.
type DialogResultMsg struct {
	Flow  string
	ID    string
	Value any
	Err   error
}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		if err == nil {
			return StatusMsg{Text: "", IsErr: false}
		}
		return StatusMsg{Text: err.Error(), IsErr: true}
	}
}
