package screens

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/modalstack/core"
)

// maxSuggestDistance bounds how far a typo may be from a registered key.
const maxSuggestDistance = 2

// Address joins namespace and key the way scopes and the registry spell them.
func Address(namespace, key string) string {
	return namespace + "/" + key
}

// Registry maps namespace/key addresses to dialog factories.
type Registry struct {
	factories map[string]Factory
	keys      map[string][]string // namespace -> keys
}

func NewRegistry() *Registry {
	return &Registry{factories: map[string]Factory{}, keys: map[string][]string{}}
}

// Register binds f to namespace/key. Registering an address twice replaces
// the factory.
func (r *Registry) Register(namespace, key string, f Factory) {
	if f == nil || key == "" {
		return
	}
	addr := Address(namespace, key)
	if _, exists := r.factories[addr]; !exists {
		r.keys[namespace] = append(r.keys[namespace], key)
	}
	r.factories[addr] = f
}

// Has reports whether namespace/key has a factory.
func (r *Registry) Has(namespace, key string) bool {
	_, ok := r.factories[Address(namespace, key)]
	return ok
}

// Build creates the dialog for e. Unknown addresses get a MissingDialog that
// names the closest registered key, if any.
func (r *Registry) Build(e core.Entry) (Dialog, bool) {
	if f, ok := r.factories[Address(e.Namespace, e.Key)]; ok {
		return f(e), true
	}
	hint, _ := r.Suggest(e.Namespace, e.Key)
	return &MissingDialog{Address: Address(e.Namespace, e.Key), Suggestion: hint}, false
}

// Suggest returns the registered key in namespace closest to key.
func (r *Registry) Suggest(namespace, key string) (string, bool) {
	best, bestDist := "", maxSuggestDistance+1
	for _, k := range r.keys[namespace] {
		d := levenshtein.ComputeDistance(strings.ToLower(key), strings.ToLower(k))
		if d < bestDist || (d == bestDist && k < best) {
			best, bestDist = k, d
		}
	}
	if best == "" || bestDist > maxSuggestDistance || bestDist >= len(key) {
		return "", false
	}
	return best, true
}

// Addresses lists every registered address, sorted.
func (r *Registry) Addresses() []string {
	out := make([]string, 0, len(r.factories))
	for addr := range r.factories {
		out = append(out, addr)
	}
	sort.Strings(out)
	return out
}

// MissingDialog stands in for entries nobody registered a dialog for, so they
// can still be seen and dismissed.
type MissingDialog struct {
	Address    string
	Suggestion string
}

func (d *MissingDialog) Update(slot core.Slot, msg tea.Msg) tea.Cmd {
	if k, ok := keyOf(msg); ok && (k == "esc" || k == "enter") {
		slot.Close(nil)
	}
	return nil
}

func (d *MissingDialog) View(slot core.Slot, width, height int) string {
	lines := []string{
		errStyle.Render("No dialog registered for " + d.Address),
	}
	if d.Suggestion != "" {
		lines = append(lines, mutedStyle.Render("did you mean "+d.Suggestion+"?"))
	}
	lines = append(lines, "", helpLine("esc", "dismiss"))
	return strings.Join(lines, "\n")
}
