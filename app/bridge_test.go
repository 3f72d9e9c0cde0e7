package app

import (
	"context"
	"testing"

	"github.com/jask/modalstack/core"
)

func TestWatchCoalescesNotifications(t *testing.T) {
	store := core.NewStore()
	ch, stop := Watch(store)
	defer stop()

	store.Open("main", "a", nil)
	store.Open("main", "b", nil)
	if len(ch) != 1 {
		t.Fatalf("expected one pending signal, got %d", len(ch))
	}
	if _, ok := WaitForChange(ch)().(StackChangedMsg); !ok {
		t.Fatalf("expected StackChangedMsg")
	}

	stop()
	store.CloseTop(nil)
	if len(ch) != 0 {
		t.Fatalf("no signal expected after unsubscribe")
	}
}

func TestAwaitCmdReportsSettledValue(t *testing.T) {
	store := core.NewStore()
	f := store.Open("main", "confirm", nil)
	store.CloseByID(f.ID(), true)

	msg := AwaitCmd(context.Background(), flowConfirm, f)().(DialogResultMsg)
	if msg.Flow != flowConfirm || msg.ID != f.ID() || msg.Value != true || msg.Err != nil {
		t.Fatalf("unexpected msg %+v", msg)
	}
}

func TestAwaitCmdStopsOnCancel(t *testing.T) {
	store := core.NewStore()
	f := store.Open("main", "confirm", nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	msg := AwaitCmd(ctx, flowConfirm, f)().(DialogResultMsg)
	if msg.Err == nil {
		t.Fatalf("expected ctx error")
	}
	if store.Snapshot().Len() != 1 {
		t.Fatalf("cancelling the wait must not close the entry")
	}
}
