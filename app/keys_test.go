package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeyRegistryScopeMatch(t *testing.T) {
	reg := NewKeyRegistry([]KeyBinding{
		{Keys: []string{"e"}, Action: "edit", Scopes: []string{"dialog:nested/profile"}},
		{Keys: []string{"ctrl+x"}, Action: "close-top", Scopes: []string{"dialog:*"}},
		{Keys: []string{"q"}, Action: "quit", Scopes: []string{"app"}},
	})
	e := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}}
	if !reg.IsAction(e, "edit", "dialog:nested/profile") {
		t.Fatalf("expected e in dialog:nested/profile")
	}
	if reg.IsAction(e, "edit", "dialog:nested/note") {
		t.Fatalf("did not expect e in dialog:nested/note")
	}
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlX}, "close-top", "dialog:log/log") {
		t.Fatalf("expected dialog:* to match any dialog scope")
	}
	if reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlX}, "close-top", "app") {
		t.Fatalf("dialog:* must not match app")
	}
	if _, ok := reg.ActionFor(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, "dialog:main/confirm"); ok {
		t.Fatalf("q is app-only")
	}
}

func TestApplyActionKeybindingsOverridesKeys(t *testing.T) {
	defaults := DefaultKeyBindings()
	bindings := ApplyActionKeybindings(defaults, map[string][]string{
		"open-confirm": {"y"},
		"close-top":    {},
	})
	reg := NewKeyRegistry(bindings)
	if got := reg.KeyFor("open-confirm", scopeApp); got != "y" {
		t.Fatalf("open-confirm key = %q", got)
	}
	if got := reg.KeyFor("close-top", DialogScope("main", "confirm")); got != "ctrl+x" {
		t.Fatalf("empty override should keep default, got %q", got)
	}
	if got := DefaultKeybindingsByAction(defaults)["open-confirm"]; len(got) != 1 || got[0] != "2" {
		t.Fatalf("defaults must not be mutated: %v", got)
	}
}
