// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/switchscan/internal/cli/styles"
	"github.com/bnema/switchscan/internal/dispatch"
	"github.com/bnema/switchscan/internal/domain/entity"
	"github.com/bnema/switchscan/internal/logging"
)

const defaultRefresh = 100 * time.Millisecond

// SimulatorModel is the Bubble Tea model for the switch simulator. Keys bound
// in the keys.* preferences become switch commands.
type SimulatorModel struct {
	// UI components
	help     help.Model
	keys     simulatorKeyMap
	renderer *styles.SimulatorRenderer

	// State
	frame  styles.SimulatorFrame
	status string
	width  int
	height int

	// Dependencies
	ctx      context.Context
	bindings *dispatch.KeyMap
	dispatch func(entity.Command) error
	snapshot func() (styles.SimulatorFrame, bool)
	refresh  time.Duration
}

// simulatorKeyMap defines the bindings shown in help. Command bindings only
// describe the keymap; lookup goes through dispatch.KeyMap.
type simulatorKeyMap struct {
	Select   key.Binding
	Next     key.Binding
	Previous key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k simulatorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Next, k.Previous, k.Help, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k simulatorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Select, k.Next, k.Previous},
		{k.Help, k.Quit},
	}
}

func commandBinding(bindings *dispatch.KeyMap, cmd entity.Command) key.Binding {
	keys := bindings.Keys(cmd)
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), cmd.String()),
	)
}

func newSimulatorKeyMap(bindings *dispatch.KeyMap) simulatorKeyMap {
	return simulatorKeyMap{
		Select:   commandBinding(bindings, entity.CommandSelect),
		Next:     commandBinding(bindings, entity.CommandNext),
		Previous: commandBinding(bindings, entity.CommandPrevious),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// SimulatorConfig holds the hooks into the running core.
type SimulatorConfig struct {
	Bindings *dispatch.KeyMap
	// Dispatch runs a command on the main loop and waits for it.
	Dispatch func(entity.Command) error
	// Snapshot builds a frame on the main loop. It reports false once the
	// loop has stopped.
	Snapshot func() (styles.SimulatorFrame, bool)
	Refresh  time.Duration
}

// NewSimulatorModel creates the simulator model.
func NewSimulatorModel(ctx context.Context, theme *styles.Theme, cfg SimulatorConfig) SimulatorModel {
	refresh := cfg.Refresh
	if refresh <= 0 {
		refresh = defaultRefresh
	}

	return SimulatorModel{
		help:     styles.NewStyledHelp(theme),
		keys:     newSimulatorKeyMap(cfg.Bindings),
		renderer: styles.NewSimulatorRenderer(theme),
		width:    80,
		height:   24,
		ctx:      logging.WithComponent(ctx, "simulator"),
		bindings: cfg.Bindings,
		dispatch: cfg.Dispatch,
		snapshot: cfg.Snapshot,
		refresh:  refresh,
	}
}

// frameMsg carries a fresh frame from the main loop.
type frameMsg struct {
	frame styles.SimulatorFrame
	ok    bool

	// periodic frames schedule the next tick.
	periodic bool
}

// tickMsg schedules the next refresh.
type tickMsg struct{}

// BindingsMsg swaps the key bindings after a preference reload.
type BindingsMsg struct {
	Bindings *dispatch.KeyMap
}

// dispatchedMsg is sent after a command ran on the main loop.
type dispatchedMsg struct {
	cmd entity.Command
	err error
}

// Init implements tea.Model.
func (m SimulatorModel) Init() tea.Cmd {
	return m.loadFrame
}

func (m SimulatorModel) loadFrame() tea.Msg {
	frame, ok := m.snapshot()
	return frameMsg{frame: frame, ok: ok, periodic: true}
}

func (m SimulatorModel) refreshFrame() tea.Msg {
	frame, ok := m.snapshot()
	return frameMsg{frame: frame, ok: ok}
}

func (m SimulatorModel) scheduleTick() tea.Cmd {
	return tea.Tick(m.refresh, func(time.Time) tea.Msg { return tickMsg{} })
}

func (m SimulatorModel) runCommand(cmd entity.Command) tea.Cmd {
	return func() tea.Msg {
		return dispatchedMsg{cmd: cmd, err: m.dispatch(cmd)}
	}
}

// Update implements tea.Model.
func (m SimulatorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tickMsg:
		return m, m.loadFrame

	case frameMsg:
		if !msg.ok {
			return m, tea.Quit
		}
		m.frame = msg.frame
		if !msg.periodic {
			return m, nil
		}
		return m, m.scheduleTick()

	case BindingsMsg:
		if msg.Bindings == nil {
			return m, nil
		}
		m.bindings = msg.Bindings
		m.keys = newSimulatorKeyMap(msg.Bindings)
		m.status = "key bindings reloaded"
		return m, nil

	case dispatchedMsg:
		log := logging.FromContext(m.ctx)
		if msg.err != nil {
			log.Warn().Err(msg.err).Stringer("command", msg.cmd).Msg("command failed")
			m.status = msg.err.Error()
		} else {
			m.status = ""
		}
		return m, m.refreshFrame
	}

	return m, nil
}

func (m SimulatorModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	cmd, ok := m.bindings.Lookup(keyName(msg))
	if !ok {
		return m, nil
	}
	logging.FromContext(m.ctx).Debug().Stringer("command", cmd).Str("key", msg.String()).Msg("key mapped")
	return m, m.runCommand(cmd)
}

// keyName maps Bubble Tea key names onto the names used in the keys.*
// preferences.
func keyName(msg tea.KeyMsg) string {
	if msg.Type == tea.KeySpace {
		return "space"
	}
	return msg.String()
}

// View implements tea.Model.
func (m SimulatorModel) View() string {
	frame := m.frame
	frame.Status = m.status
	return m.renderer.Render(frame, m.width, m.help.View(m.keys))
}
