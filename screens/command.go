package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/modalstack/core"
)

type CommandOption struct {
	ID       string
	Name     string
	Desc     string
	Disabled bool
	Reason   string
}

func (i CommandOption) Title() string {
	if i.Disabled && i.Reason != "" {
		return fmt.Sprintf("%s (%s)", i.Name, i.Reason)
	}
	return i.Name
}
func (i CommandOption) Description() string { return i.Desc }
func (i CommandOption) FilterValue() string { return i.Name + " " + i.Desc + " " + i.ID }

// PaletteRequest is the payload of CommandPalette: the commands available in
// the scope it was opened from.
type PaletteRequest struct {
	Scope   string
	Options []CommandOption
}

// CommandPalette lets the user pick a command. It closes with the chosen
// command id, or nil when dismissed.
type CommandPalette struct {
	options []CommandOption
	input   textinput.Model
	list    list.Model
	reason  string
}

func NewCommandPalette(e core.Entry) *CommandPalette {
	req, _ := e.Payload.(PaletteRequest)
	inp := textinput.New()
	inp.Placeholder = "Search commands"
	inp.Prompt = "cmd> "
	inp.Focus()
	lst := list.New(nil, list.NewDefaultDelegate(), 48, 12)
	lst.SetShowStatusBar(false)
	lst.SetFilteringEnabled(false)
	lst.SetShowHelp(false)
	lst.SetShowTitle(false)
	p := &CommandPalette{options: req.Options, input: inp, list: lst}
	p.refresh()
	return p
}

// Visible returns the options matching the current query.
func (p *CommandPalette) Visible() []CommandOption {
	q := strings.ToLower(strings.TrimSpace(p.input.Value()))
	out := make([]CommandOption, 0, len(p.options))
	for _, o := range p.options {
		if q == "" || strings.Contains(strings.ToLower(o.FilterValue()), q) {
			out = append(out, o)
		}
	}
	return out
}

func (p *CommandPalette) Update(slot core.Slot, msg tea.Msg) tea.Cmd {
	if k, ok := keyOf(msg); ok {
		switch k {
		case "esc":
			slot.Close(nil)
			return nil
		case "enter":
			it, ok := p.list.SelectedItem().(CommandOption)
			if !ok {
				return nil
			}
			if it.Disabled {
				p.reason = orDefault(it.Reason, "command is disabled")
				return nil
			}
			slot.Close(it.ID)
			return nil
		case "up", "down", "ctrl+p", "ctrl+n":
			var cmd tea.Cmd
			p.list, cmd = p.list.Update(msg)
			return cmd
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	p.reason = ""
	p.refresh()
	return cmd
}

func (p *CommandPalette) refresh() {
	visible := p.Visible()
	items := make([]list.Item, 0, len(visible))
	for _, it := range visible {
		items = append(items, it)
	}
	_ = p.list.SetItems(items)
}

func (p *CommandPalette) View(slot core.Slot, width, height int) string {
	req, _ := core.PayloadAs[PaletteRequest](slot)
	w := clampWidth(width)
	p.list.SetWidth(w)
	p.list.SetHeight(max(6, min(height-6, 12)))
	lines := []string{
		titleStyle.Render("Command palette") + mutedStyle.Render(" (scope: "+orDefault(req.Scope, "app")+")"),
		p.input.View(),
		p.list.View(),
	}
	if p.reason != "" {
		lines = append(lines, errStyle.Render(p.reason))
	}
	lines = append(lines, helpLine("esc", "close", "enter", "run"))
	return strings.Join(lines, "\n")
}
