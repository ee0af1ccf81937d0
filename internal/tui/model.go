// Package tui provides the interactive terminal interface for taskpad.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/calvales/taskpad/internal/confirm"
	"github.com/calvales/taskpad/internal/core/logging"
	"github.com/calvales/taskpad/internal/core/task"
	"github.com/calvales/taskpad/internal/taskpad"
)

type uiState int

const (
	stateList uiState = iota
	stateForm
	stateDetail
)

type (
	drainNotificationsMsg struct{}
	toastTickMsg          struct{}
	surfaceChangedMsg     struct{}
	decisionMsg           struct {
		id string
		ok bool
	}
)

// Model is the root Bubble Tea model.
type Model struct {
	app         *taskpad.App
	coordinator *confirm.Coordinator
	surface     *overlaySurface

	buffer *NotificationBuffer
	toasts *ToastController

	state  uiState
	cursor int
	view   []task.Task
	stats  task.Stats
	filter task.StatusFilter

	form       taskForm
	detailBody string
	detailTask task.Task

	keys     KeyMap
	help     help.Model
	width    int
	height   int
	quitting bool
}

// NewModel builds the TUI model and wires the bus into the toast stack.
func NewModel(app *taskpad.App) *Model {
	surface := newOverlaySurface()
	coordinator := confirm.NewCoordinator(surface, app.Chime, logging.Component("tui"))

	m := &Model{
		app:         app,
		coordinator: coordinator,
		surface:     surface,
		buffer:      NewNotificationBuffer(),
		toasts:      NewToastController(app.Config.ToastTTL()),
		keys:        DefaultKeyMap(),
		help:        help.New(),
	}

	app.Bus.Subscribe(m.buffer.Push)
	m.refresh()

	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.buffer.WaitForSignal()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case drainNotificationsMsg:
		for _, n := range m.buffer.Drain() {
			m.toasts.Push(n)
		}
		cmds := []tea.Cmd{m.buffer.WaitForSignal()}
		if m.toasts.HasToasts() && !m.toasts.Ticking() {
			m.toasts.SetTicking(true)
			cmds = append(cmds, toastTick())
		}
		return m, tea.Batch(cmds...)

	case toastTickMsg:
		m.toasts.Tick(toastTickInterval)
		if m.toasts.HasToasts() {
			return m, toastTick()
		}
		m.toasts.SetTicking(false)
		return m, nil

	case surfaceChangedMsg:
		return m, nil

	case decisionMsg:
		if msg.ok {
			m.app.Store.Remove(msg.id)
			m.refresh()
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	if m.state == stateForm {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// A pending confirmation owns the keyboard.
	if m.surface.Active() != nil {
		switch msg.String() {
		case "y", "Y", "enter":
			m.coordinator.Confirm()
		case "n", "N", "esc":
			// The user dismissed the surface: hide it, then report back.
			m.surface.Close()
			m.coordinator.Dismiss()
		}
		return m, nil
	}

	switch m.state {
	case stateForm:
		return m.updateFormKey(msg)
	case stateDetail:
		switch msg.String() {
		case "esc", "q", "enter":
			m.state = stateList
		}
		return m, nil
	}

	return m.updateListKey(msg)
}

func (m *Model) updateFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = stateList
		return m, nil
	case "enter":
		if m.form.editing() {
			m.app.Store.Update(m.form.editingID, m.form.changes())
		} else {
			m.app.Store.Add(m.form.payload())
		}
		m.state = stateList
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m *Model) updateListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" && m.toasts.HasToasts() {
		m.toasts.DismissAll()
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.view)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Add):
		m.form = newTaskForm(nil)
		m.state = stateForm

	case key.Matches(msg, m.keys.Edit):
		if t, ok := m.selected(); ok {
			m.form = newTaskForm(&t)
			m.state = stateForm
		}

	case key.Matches(msg, m.keys.Toggle):
		if t, ok := m.selected(); ok {
			m.app.Store.Toggle(t.ID)
			m.refresh()
		}

	case key.Matches(msg, m.keys.Delete):
		if t, ok := m.selected(); ok {
			decision := m.coordinator.ConfirmDeletion(t.Title)
			id := t.ID
			return m, func() tea.Msg {
				return decisionMsg{id: id, ok: <-decision}
			}
		}

	case key.Matches(msg, m.keys.Clear):
		m.app.Store.ClearCompleted()
		m.refresh()

	case key.Matches(msg, m.keys.Detail):
		if t, ok := m.selected(); ok {
			m.openDetail(t)
		}

	case key.Matches(msg, m.keys.Filter):
		m.app.Store.SetFilter(nextFilter(m.filter))
		m.refresh()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

func (m *Model) selected() (task.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.view) {
		return task.Task{}, false
	}
	return m.view[m.cursor], true
}

// refresh pulls fresh snapshots from the store and clamps the cursor.
func (m *Model) refresh() {
	m.view = m.app.Store.View()
	m.stats = m.app.Store.Stats()
	m.filter = m.app.Store.Filter()
	if m.cursor >= len(m.view) {
		m.cursor = len(m.view) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) openDetail(t task.Task) {
	m.detailTask = t
	m.detailBody = ""

	if t.Description != "" {
		wrap := m.width - 8
		if wrap < 20 {
			wrap = 20
		}
		r, err := glamour.NewTermRenderer(
			glamour.WithStylePath("dark"),
			glamour.WithWordWrap(wrap),
		)
		if err == nil {
			if out, err := r.Render(t.Description); err == nil {
				m.detailBody = out
			}
		}
		if m.detailBody == "" {
			m.detailBody = t.Description
		}
	}

	m.state = stateDetail
}

func nextFilter(f task.StatusFilter) task.StatusFilter {
	switch f {
	case task.FilterAll:
		return task.FilterActive
	case task.FilterActive:
		return task.FilterCompleted
	default:
		return task.FilterAll
	}
}

func toastTick() tea.Cmd {
	return tea.Tick(toastTickInterval, func(time.Time) tea.Msg {
		return toastTickMsg{}
	})
}
