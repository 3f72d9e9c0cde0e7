package screens

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/modalstack/core"
)

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func run(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

func TestConfirmDialogCancelClosesWithFalse(t *testing.T) {
	s := core.NewStore()
	f := s.Open("main", "confirm", Confirmation{Message: "Proceed?"})
	slot, _ := s.Slot("main", "confirm")

	d := NewConfirmDialog(context.Background(), nil)
	if !strings.Contains(ansi.Strip(d.View(slot, 60, 20)), "Proceed?") {
		t.Fatalf("message missing from view")
	}
	run(d.Update(slot, keyMsg("esc")))
	v, settled := f.Value()
	if !settled || v != false {
		t.Fatalf("expected false, got %v (settled=%v)", v, settled)
	}
}

func TestConfirmDialogEnterResolves(t *testing.T) {
	s := core.NewStore()
	f := s.Open("main", "confirm", Confirmation{})
	slot, _ := s.Slot("main", "confirm")

	d := NewConfirmDialog(context.Background(), Value(true))
	if msg := run(d.Update(slot, keyMsg("enter"))); msg != nil {
		t.Fatalf("unexpected msg %#v", msg)
	}
	v, settled := f.Value()
	if !settled || v != true {
		t.Fatalf("expected true, got %v", v)
	}
}

func TestConfirmDialogShowsExecutorFailure(t *testing.T) {
	s := core.NewStore()
	f := s.Open("main", "confirm", Confirmation{})
	slot, _ := s.Slot("main", "confirm")

	d := NewConfirmDialog(context.Background(), func(context.Context) (any, error) {
		return nil, errors.New("server said no")
	})
	msg := run(d.Update(slot, keyMsg("enter")))
	failed, ok := msg.(ResolveFailedMsg)
	if !ok || failed.ID != slot.ID {
		t.Fatalf("expected ResolveFailedMsg, got %#v", msg)
	}
	d.Update(slot, failed)

	slot, ok = s.Slot("main", "confirm")
	if !ok {
		t.Fatalf("entry should stay open after a failure")
	}
	if !strings.Contains(ansi.Strip(d.View(slot, 60, 20)), "server said no") {
		t.Fatalf("error not rendered")
	}
	if _, settled := f.Value(); settled {
		t.Fatalf("future must stay pending")
	}
}

func TestConfirmDialogIgnoresKeysWhileResolving(t *testing.T) {
	s := core.NewStore()
	f := s.Open("main", "confirm", Confirmation{})
	slot, _ := s.Slot("main", "confirm")
	slot.IsResolving = true

	d := NewConfirmDialog(context.Background(), nil)
	d.Update(slot, keyMsg("esc"))
	if _, settled := f.Value(); settled {
		t.Fatalf("esc must be ignored while resolving")
	}
	if !strings.Contains(ansi.Strip(d.View(slot, 60, 20)), "Processing") {
		t.Fatalf("expected processing indicator")
	}
}

func TestNoteEditorResolvesWithTypedText(t *testing.T) {
	s := core.NewStore()
	s.Open("nested", "profile", Profile{User: User{Name: "Ming", Email: "ming@example.com"}})
	e := s.Open("nested", "note", Note{Initial: "hi"})
	slot, _ := s.Slot("nested", "note")
	top, _ := s.Snapshot().Top()

	d := NewNoteEditor(context.Background(), top)
	view := ansi.Strip(d.View(slot, 60, 20))
	if !strings.Contains(view, "Parent user: Ming (ming@example.com)") {
		t.Fatalf("parent payload missing: %q", view)
	}
	d.Update(slot, keyMsg(" there"))
	if d.Value() != "hi there" {
		t.Fatalf("value = %q", d.Value())
	}
	run(d.Update(slot, keyMsg("enter")))
	v, _ := e.Value()
	if v != "hi there" {
		t.Fatalf("expected typed note, got %v", v)
	}
}

func TestProfileDialogEditAndSave(t *testing.T) {
	s := core.NewStore()
	f := s.Open("nested", "profile", Profile{User: User{Name: "Ming"}})
	slot, _ := s.Slot("nested", "profile")

	note := "first"
	edits := 0
	d := NewProfileDialog(context.Background(),
		func() string { return note },
		func() tea.Cmd { edits++; return nil },
		func() bool { return false },
	)
	d.Update(slot, keyMsg("e"))
	if edits != 1 {
		t.Fatalf("expected edit callback")
	}
	note = "second"
	run(d.Update(slot, keyMsg("enter")))
	v, _ := f.Value()
	if v != "second" {
		t.Fatalf("expected current note, got %v", v)
	}
}

func TestSampleDialogEscClosesWithoutResult(t *testing.T) {
	s := core.NewStore()
	f := s.Open("main", "profile", Notice{Title: "Upgrade plan"})
	slot, _ := s.Slot("main", "profile")

	d := NewSampleDialog(context.Background(), Value(true))
	if !strings.Contains(ansi.Strip(d.View(slot, 60, 20)), "Upgrade plan") {
		t.Fatalf("title missing")
	}
	d.Update(slot, keyMsg("esc"))
	v, settled := f.Value()
	if !settled || v != nil {
		t.Fatalf("expected nil result, got %v", v)
	}
}
