// Package configurator is the interactive terminal front end for choosing
// one option per group and watching the preview follow along.
package configurator

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/v2/help"
	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"

	"modernride.dev/ride/pkg/app"
	cfgr "modernride.dev/ride/pkg/configurator"
	"modernride.dev/ride/pkg/preview"
	"modernride.dev/ride/pkg/store"
	"modernride.dev/ride/pkg/tui/theme"
)

// compactHeight is the terminal height below which the header shrinks to a
// single line.
const compactHeight = 20

type catalogChangedMsg struct {
	event store.Event
}

type watchClosedMsg struct{}

// Options configure a Model.
type Options struct {
	Service      *app.Service
	Configurator *cfgr.Configurator
	// Recorder must be the renderer the configurator was mounted with.
	Recorder   *preview.Recorder
	ShowPrices bool
	// Events, when set, triggers a remount for every catalog change.
	Events <-chan store.Event
}

// Model is the Bubble Tea model for the configurator screen.
type Model struct {
	ctx    context.Context
	svc    *app.Service
	cfg    *cfgr.Configurator
	rec    *preview.Recorder
	events <-chan store.Event

	theme theme.Theme
	keys  keyMap
	help  help.Model

	groups   []string
	focus    int
	cursor   map[string]int
	previews map[string]cfgr.PreviewUpdate
	last     string

	showPrices bool
	status     string
	err        error

	width  int
	height int
}

// New constructs a model over a mounted configurator.
func New(ctx context.Context, opts Options) (*Model, error) {
	if opts.Configurator == nil || opts.Recorder == nil {
		return nil, errors.New("configurator and recorder are required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	m := &Model{
		ctx:        ctx,
		svc:        opts.Service,
		cfg:        opts.Configurator,
		rec:        opts.Recorder,
		events:     opts.Events,
		theme:      theme.Default(),
		keys:       defaultKeys(),
		help:       help.New(),
		cursor:     make(map[string]int),
		previews:   make(map[string]cfgr.PreviewUpdate),
		showPrices: opts.ShowPrices,
		status:     "Ready",
	}
	if err := m.refresh(); err != nil {
		return nil, err
	}
	return m, nil
}

// Run mounts a configurator and launches the Bubble Tea program.
func Run(ctx context.Context, svc *app.Service, defaults map[string]string, showPrices bool) error {
	rec := &preview.Recorder{}
	cfg, err := svc.Mount(ctx, rec, defaults)
	if err != nil {
		return err
	}
	// Without a store there is nothing to watch.
	events, _ := svc.Watch(ctx)
	m, err := New(ctx, Options{
		Service:      svc,
		Configurator: cfg,
		Recorder:     rec,
		ShowPrices:   showPrices,
		Events:       events,
	})
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.waitForEvent()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case catalogChangedMsg:
		m.reload()
		return m, m.waitForEvent()
	case watchClosedMsg:
		m.events = nil
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Prev):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Next):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Up):
		m.moveFocus(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveFocus(1)
	case key.Matches(msg, m.keys.Select):
		m.selectCursor()
	case key.Matches(msg, m.keys.Prices):
		m.showPrices = !m.showPrices
		if m.showPrices {
			m.setStatus("Prices shown")
		} else {
			m.setStatus("Prices hidden")
		}
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *Model) focused() string {
	if m.focus < 0 || m.focus >= len(m.groups) {
		return ""
	}
	return m.groups[m.focus]
}

func (m *Model) moveFocus(delta int) {
	if len(m.groups) == 0 {
		return
	}
	m.focus = (m.focus + delta + len(m.groups)) % len(m.groups)
}

func (m *Model) moveCursor(delta int) {
	name := m.focused()
	choices, err := m.cfg.Choices(name)
	if err != nil || len(choices) == 0 {
		return
	}
	m.cursor[name] = (m.cursor[name] + delta + len(choices)) % len(choices)
}

func (m *Model) selectCursor() {
	name := m.focused()
	choices, err := m.cfg.Choices(name)
	if err != nil {
		m.setError(err)
		return
	}
	idx := m.cursor[name]
	if idx < 0 || idx >= len(choices) {
		return
	}
	if err := m.cfg.Select(name, choices[idx].ID); err != nil {
		m.setError(err)
		return
	}
	m.drain()
	m.setStatus(fmt.Sprintf("%s: %s", name, preview.Label(m.previews[name])))
}

// refresh rebuilds the group list and cursors from the configurator and
// applies any pending preview updates.
func (m *Model) refresh() error {
	groups, err := m.cfg.Groups()
	if err != nil {
		return err
	}
	m.groups = groups
	if m.focus >= len(groups) {
		m.focus = 0
	}
	cursor := make(map[string]int, len(groups))
	for _, name := range groups {
		choices, err := m.cfg.Choices(name)
		if err != nil {
			return err
		}
		for i, ch := range choices {
			if ch.Selected {
				cursor[name] = i
			}
		}
	}
	m.cursor = cursor
	for name := range m.previews {
		if _, ok := cursor[name]; !ok {
			delete(m.previews, name)
		}
	}
	m.drain()
	return nil
}

func (m *Model) reload() {
	if m.svc == nil {
		return
	}
	if err := m.svc.Remount(m.ctx, m.cfg); err != nil {
		m.setError(fmt.Errorf("reload catalog: %w", err))
		return
	}
	if err := m.refresh(); err != nil {
		m.setError(err)
		return
	}
	m.setStatus("Catalog reloaded")
}

func (m *Model) drain() {
	for _, u := range m.rec.Drain() {
		m.previews[u.Group] = u
		m.last = u.Group
	}
}

func (m *Model) waitForEvent() tea.Cmd {
	if m.events == nil {
		return nil
	}
	ch := m.events
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return watchClosedMsg{}
		}
		return catalogChangedMsg{event: ev}
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.err = nil
}

func (m *Model) setError(err error) {
	m.err = err
}
