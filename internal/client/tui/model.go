// Package tui renders the terminal client. The model is a pure view over
// [state.Snapshot] values: user actions are dispatched to the state holder
// as commands, and every state transition comes back in as a [SnapshotMsg].
// The presentation layer never talks to the REST adapter directly.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ybrd/todo/internal/client/state"
	"github.com/ybrd/todo/internal/domain/todo"
)

// SnapshotMsg carries a state holder snapshot into the program. The
// entrypoint subscribes to the store and forwards every publication with
// Program.Send.
type SnapshotMsg struct {
	Snapshot state.Snapshot
}

type mode int

const (
	modeList mode = iota
	modeAdd
	modeEdit
	modeConfirmDelete
)

// Model is the Bubble Tea model for the todo client.
type Model struct {
	store *state.Store
	snap  state.Snapshot

	mode     mode
	cursor   int
	editID   int64
	inputErr string

	spinner spinner.Model
	input   textinput.Model
	width   int
	height  int
}

// New creates a Model bound to the given state holder.
func New(store *state.Store) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = accentStyle

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200

	return Model{
		store:   store,
		spinner: sp,
		input:   ti,
	}
}

// Init triggers the first fetch and starts the spinner.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchCmd())
}

// Commands wrap blocking store calls. Intermediate transitions (the loading
// flag) reach the model through the subscription; each command also returns
// the final snapshot so the terminal state is never missed.

func (m Model) fetchCmd() tea.Cmd {
	store := m.store
	return func() tea.Msg {
		store.Fetch(context.Background())
		return SnapshotMsg{Snapshot: store.Snapshot()}
	}
}

func (m Model) addCmd(draft todo.Draft) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		store.Add(context.Background(), draft)
		return SnapshotMsg{Snapshot: store.Snapshot()}
	}
}

func (m Model) editCmd(t todo.Todo) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		store.Edit(context.Background(), t)
		return SnapshotMsg{Snapshot: store.Snapshot()}
	}
}

func (m Model) toggleCmd(id int64) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		store.Toggle(context.Background(), id)
		return SnapshotMsg{Snapshot: store.Snapshot()}
	}
}

func (m Model) removeCmd(id int64) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		store.Remove(context.Background(), id)
		return SnapshotMsg{Snapshot: store.Snapshot()}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SnapshotMsg:
		m.snap = msg.Snapshot
		if m.cursor >= len(m.snap.Todos) {
			m.cursor = len(m.snap.Todos) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		if m.snap.Loading {
			return m, m.spinner.Tick
		}
		return m, nil

	case spinner.TickMsg:
		if !m.snap.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeAdd, modeEdit:
			return m.updateInput(msg)
		case modeConfirmDelete:
			return m.updateConfirm(msg)
		default:
			return m.updateList(msg)
		}
	}

	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "r":
		return m, m.fetchCmd()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.snap.Todos)-1 {
			m.cursor++
		}
	case "a":
		m.mode = modeAdd
		m.inputErr = ""
		m.input.SetValue("")
		m.input.Placeholder = "New todo title..."
		m.input.Focus()
		return m, textinput.Blink
	case "e":
		if t, ok := m.selected(); ok {
			m.mode = modeEdit
			m.editID = t.ID
			m.inputErr = ""
			m.input.SetValue(t.Title)
			m.input.CursorEnd()
			m.input.Placeholder = "Edit todo title..."
			m.input.Focus()
			return m, textinput.Blink
		}
	case " ":
		if t, ok := m.selected(); ok {
			return m, m.toggleCmd(t.ID)
		}
	case "d":
		if _, ok := m.selected(); ok {
			m.mode = modeConfirmDelete
		}
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		title := strings.TrimSpace(m.input.Value())
		if title == "" {
			m.inputErr = "Title cannot be empty"
			return m, nil
		}

		var cmd tea.Cmd
		if m.mode == modeAdd {
			cmd = m.addCmd(todo.Draft{Title: title})
		} else if t, ok := m.byID(m.editID); ok {
			t.Title = title
			cmd = m.editCmd(t)
		}

		m.mode = modeList
		m.input.SetValue("")
		m.input.Blur()
		return m, cmd
	case "esc":
		m.mode = modeList
		m.inputErr = ""
		m.input.SetValue("")
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		m.mode = modeList
		if t, ok := m.selected(); ok {
			return m, m.removeCmd(t.ID)
		}
	case "n", "esc":
		m.mode = modeList
	}
	return m, nil
}

func (m Model) selected() (todo.Todo, bool) {
	if m.cursor < 0 || m.cursor >= len(m.snap.Todos) {
		return todo.Todo{}, false
	}
	return m.snap.Todos[m.cursor], true
}

func (m Model) byID(id int64) (todo.Todo, bool) {
	for _, t := range m.snap.Todos {
		if t.ID == id {
			return t, true
		}
	}
	return todo.Todo{}, false
}

// View renders one of four mutually exclusive screens: spinner while the
// first load is in flight, error panel with a retry hint when the first load
// failed, an empty-state prompt, or the populated list.
func (m Model) View() string {
	empty := len(m.snap.Todos) == 0

	switch {
	case m.snap.Loading && empty:
		return panelStyle.Render(m.spinner.View() + " loading todos...")
	case m.snap.Err != "" && empty:
		return panelStyle.Render(
			errorStyle.Render("✖ "+m.snap.Err) + "\n\n" +
				helpStyle.Render("r retry  •  q quit"))
	case empty:
		return panelStyle.Render(
			mutedStyle.Render("No todos yet.") + "\n\n" +
				helpStyle.Render("a add  •  r refresh  •  q quit"))
	}

	return panelStyle.Render(m.listView())
}

func (m Model) listView() string {
	var b strings.Builder

	done := 0
	for _, t := range m.snap.Todos {
		if t.Completed {
			done++
		}
	}
	fmt.Fprintf(&b, "%s   %s %d  %s %d  %s %d\n\n",
		titleStyle.Render("Todos"),
		successStyle.Render("✔"), done,
		pendingStyle.Render("•"), len(m.snap.Todos)-done,
		accentStyle.Render("Total"), len(m.snap.Todos),
	)

	for i, t := range m.snap.Todos {
		box := mutedStyle.Render(boxUnchecked)
		text := t.Title
		if t.Completed {
			box = successStyle.Render(boxChecked)
			text = doneStyle.Render(t.Title)
		}

		prefix := "  "
		if i == m.cursor {
			prefix = selectedStyle.Render("> ")
		}
		fmt.Fprintf(&b, "%s%s %s\n", prefix, box, text)
	}

	switch m.mode {
	case modeAdd, modeEdit:
		title := "Add todo"
		if m.mode == modeEdit {
			title = "Edit todo"
		}
		if m.inputErr != "" {
			title += "  " + errorStyle.Render(m.inputErr)
		}
		b.WriteString("\n" + title + "\n" + m.input.View() + "\n")
	case modeConfirmDelete:
		if t, ok := m.selected(); ok {
			b.WriteString("\n" + errorStyle.Render(fmt.Sprintf("Delete %q? (y/n)", t.Title)) + "\n")
		}
	default:
		if m.snap.Err != "" {
			b.WriteString("\n" + errorStyle.Render("✖ "+m.snap.Err) + "\n")
		}
		b.WriteString("\n" + helpStyle.Render("space toggle  •  a add  •  e edit  •  d delete  •  r refresh  •  q quit"))
	}

	return b.String()
}
