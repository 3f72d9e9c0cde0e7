package app

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/modalstack/core"
	"github.com/jask/modalstack/internal/database/repository"
	"github.com/jask/modalstack/screens"
)

// Journal persists settled dialog decisions.
type Journal interface {
	Append(ctx context.Context, a repository.Activity) error
}

type Options struct {
	Journal      Journal
	Logger       *slog.Logger
	Bindings     []KeyBinding
	ConfirmDelay time.Duration
	DefaultNote  string
	Now          func() time.Time
}

// demoState is shared with the nested dialogs, which read the note while
// rendering.
type demoState struct {
	defaultNote string
	note        string
	lastSaved   string
	saved       bool
}

type Model struct {
	ctx       context.Context
	store     *core.Store
	snap      *core.Snapshot
	changes   <-chan struct{}
	stopWatch func()

	palette core.Controller
	main    core.Controller
	logs    core.Controller
	nested  core.Controller

	registry *screens.Registry
	dialogs  map[string]screens.Dialog
	keys     *KeyRegistry
	commands *CommandRegistry
	journal  Journal
	log      *slog.Logger
	now      func() time.Time

	demo     *demoState
	activity []string

	width     int
	height    int
	status    string
	statusErr bool
	quitting  bool
}

// NewModel builds the demo around the store carried by ctx. It panics when ctx
// has no store.
func NewModel(ctx context.Context, opts Options) Model {
	store := core.MustFromContext(ctx)
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Bindings == nil {
		opts.Bindings = DefaultKeyBindings()
	}
	changes, stop := Watch(store)
	demo := &demoState{defaultNote: opts.DefaultNote, note: opts.DefaultNote}
	m := Model{
		ctx:       ctx,
		store:     store,
		changes:   changes,
		stopWatch: stop,
		palette:   core.ControllerFromContext(ctx, nsApp),
		main:      core.ControllerFromContext(ctx, nsMain),
		logs:      core.ControllerFromContext(ctx, nsLog),
		nested:    core.ControllerFromContext(ctx, nsNested),
		dialogs:   map[string]screens.Dialog{},
		keys:      NewKeyRegistry(opts.Bindings),
		commands:  NewCommandRegistry(DefaultCommands()),
		journal:   opts.Journal,
		log:       opts.Logger,
		now:       opts.Now,
		demo:      demo,
		status:    "Ready",
		width:     100,
		height:    32,
	}
	m.registry = newDialogRegistry(ctx, store, m.nested, demo, opts.ConfirmDelay)
	m.sync()
	return m
}

func (m Model) Init() tea.Cmd {
	return WaitForChange(m.changes)
}

// Close stops watching the store.
func (m Model) Close() {
	if m.stopWatch != nil {
		m.stopWatch()
	}
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

// ActiveScope is the key scope of the global top dialog, or "app".
func (m Model) ActiveScope() string {
	if top, ok := m.snap.Top(); ok {
		return DialogScope(top.Namespace, top.Key)
	}
	return scopeApp
}

// Activity returns the recent activity lines, newest first.
func (m Model) Activity() []string { return m.activity }

// Note returns the nested flow's working note.
func (m Model) Note() string { return m.demo.note }

// sync adopts the latest snapshot: dialogs are built for new entries and
// dropped for closed ones.
func (m *Model) sync() {
	snap := m.store.Snapshot()
	if snap == m.snap {
		return
	}
	m.snap = snap
	live := make(map[string]bool, snap.Len())
	for _, e := range snap.Entries() {
		live[e.ID] = true
		if _, ok := m.dialogs[e.ID]; ok {
			continue
		}
		d, known := m.registry.Build(e)
		if !known {
			m.log.Warn("no dialog registered", "namespace", e.Namespace, "key", e.Key)
		}
		m.dialogs[e.ID] = d
	}
	for id := range m.dialogs {
		if !live[id] {
			delete(m.dialogs, id)
		}
	}
}

// slotFor returns the slot of entry id when it is addressable, i.e. not
// shadowed by a newer entry with the same namespace and key.
func (m Model) slotFor(id string) (core.Slot, bool) {
	e, ok := m.snap.At(m.snap.IndexOf(id))
	if !ok {
		return core.Slot{}, false
	}
	slot, ok := core.SlotIn(m.store, m.snap, e.Namespace, e.Key)
	if !ok || slot.ID != id {
		return core.Slot{}, false
	}
	return slot, true
}
