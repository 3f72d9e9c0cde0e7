package app

import "strings"

const (
	scopeApp    = "app"
	scopeDialog = "dialog:"
)

// DialogScope is the key scope of the dialog at namespace/key.
func DialogScope(namespace, key string) string {
	return scopeDialog + namespace + "/" + key
}

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"q"}, Action: "quit", Description: "quit", Scopes: []string{scopeApp}},
		{Keys: []string{"1"}, Action: "open-profile", Description: "profile", Scopes: []string{scopeApp}},
		{Keys: []string{"2"}, Action: "open-confirm", Description: "confirm", Scopes: []string{scopeApp}},
		{Keys: []string{"3"}, Action: "open-log", Description: "log", Scopes: []string{scopeApp}},
		{Keys: []string{"4"}, Action: "open-nested", Description: "nested", Scopes: []string{scopeApp}},
		{Keys: []string{"ctrl+k"}, Action: "open-commands", Description: "commands", Scopes: []string{scopeApp}},
		{Keys: []string{"c"}, Action: "clear-activity", Description: "clear log", Scopes: []string{scopeApp}},
		{Keys: []string{"ctrl+x"}, Action: "close-top", Description: "close top", Scopes: []string{"*"}},
		{Keys: []string{"ctrl+c"}, Action: "force-quit", Description: "force quit", Scopes: []string{"*"}},
	}
}

func DefaultKeybindingsByAction(bindings []KeyBinding) map[string][]string {
	out := make(map[string][]string, len(bindings))
	for _, b := range bindings {
		if strings.TrimSpace(b.Action) == "" || len(b.Keys) == 0 {
			continue
		}
		if _, exists := out[b.Action]; exists {
			continue
		}
		out[b.Action] = append([]string(nil), b.Keys...)
	}
	return out
}

// ApplyActionKeybindings replaces the keys of every binding whose action has
// an override. Empty overrides are ignored.
func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) []KeyBinding {
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		next := KeyBinding{
			Keys:        append([]string(nil), b.Keys...),
			Action:      b.Action,
			Description: b.Description,
			Scopes:      append([]string(nil), b.Scopes...),
		}
		if keys, ok := actionKeys[b.Action]; ok && len(keys) > 0 {
			next.Keys = append([]string(nil), keys...)
		}
		out = append(out, next)
	}
	return out
}
