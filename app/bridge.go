package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/modalstack/core"
)

// Watch subscribes to store. Notifications are coalesced into a channel with
// room for one pending signal, so listeners never block the store.
func Watch(store *core.Store) (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)
	unsubscribe := store.Subscribe(func() {
		select {
		case ch <- struct{}{}:
		default:
		}
	})
	return ch, unsubscribe
}

// WaitForChange blocks until ch signals and reports a StackChangedMsg.
func WaitForChange(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return StackChangedMsg{}
	}
}

// AwaitCmd waits for f off the update loop.
func AwaitCmd(ctx context.Context, flow string, f *core.Future) tea.Cmd {
	return func() tea.Msg {
		v, err := f.Await(ctx)
		return DialogResultMsg{Flow: flow, ID: f.ID(), Value: v, Err: err}
	}
}
