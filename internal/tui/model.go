// Package tui is the full-screen task list screen.
package tui

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"task-list/internal/api"
	"task-list/internal/domain"
	"task-list/internal/errors"
)

type mode int

const (
	modeList mode = iota
	modeSearch
	modeCompose
)

// Model is the Bubbletea model for the task list screen
type Model struct {
	ctx    context.Context
	api    api.API
	now    func() time.Time
	mode   mode
	cursor int
	tasks  []domain.Task

	search textinput.Model
	title  textinput.Model
	// editingTitle routes keys to the title input; otherwise compose keys
	// pick options.
	editingTitle bool

	errorMsg string
	infoMsg  string
	width    int
	quitting bool
}

// New creates the screen model and loads the visible tasks
func New(ctx context.Context, session api.API) Model {
	search := textinput.New()
	search.Placeholder = "Search"
	search.Prompt = "/ "
	search.SetValue(session.Search())

	title := textinput.New()
	title.Placeholder = "Task title"
	title.Prompt = "Title: "
	title.CharLimit = 120

	m := Model{
		ctx:    ctx,
		api:    session,
		now:    time.Now,
		search: search,
		title:  title,
	}
	m.refresh()
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.mode {
		case modeSearch:
			return m.updateSearch(msg)
		case modeCompose:
			return m.updateCompose(msg)
		default:
			return m.updateList(msg)
		}
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.errorMsg, m.infoMsg = "", ""

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.toggleSelected()
	case "tab", "right", "l":
		m.shiftFilter(1)
	case "shift+tab", "left", "h":
		m.shiftFilter(-1)
	case "/":
		m.mode = modeSearch
		return m, m.search.Focus()
	case "n":
		m.api.Composer().Discard()
		m.title.Reset()
		m.mode = modeCompose
		m.editingTitle = true
		return m, m.title.Focus()
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.search.Reset()
		m.api.SetSearch("")
		m.search.Blur()
		m.mode = modeList
		m.refresh()
		return m, nil
	case "enter":
		m.search.Blur()
		m.mode = modeList
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.api.SetSearch(m.search.Value())
	m.refresh()
	return m, cmd
}

func (m Model) updateCompose(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	composer := m.api.Composer()

	switch msg.String() {
	case "esc":
		composer.Discard()
		m.title.Reset()
		m.title.Blur()
		m.errorMsg = ""
		m.mode = modeList
		return m, nil
	case "enter":
		composer.SetTitle(m.title.Value())
		task, err := composer.Commit(m.ctx)
		if err != nil {
			m.errorMsg = errors.GetUserMessage(err)
			return m, nil
		}
		m.title.Reset()
		m.title.Blur()
		m.errorMsg = ""
		m.infoMsg = fmt.Sprintf("Created %q", task.Title)
		m.mode = modeList
		m.refresh()
		return m, nil
	case "tab":
		m.editingTitle = !m.editingTitle
		if m.editingTitle {
			return m, m.title.Focus()
		}
		m.title.Blur()
		return m, nil
	}

	if m.editingTitle {
		var cmd tea.Cmd
		m.title, cmd = m.title.Update(msg)
		composer.SetTitle(m.title.Value())
		return m, cmd
	}

	switch key := msg.String(); key {
	case "c":
		composer.CycleCategory()
	case "p":
		composer.CyclePriority()
	case "r":
		composer.SetRecurring(!composer.Draft().Recurring)
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		index := int(key[0] - '1')
		if m.api.Directory().Contains(index) {
			composer.ToggleParticipant(index)
		}
	}
	return m, nil
}

func (m *Model) toggleSelected() {
	if m.cursor >= len(m.tasks) {
		return
	}
	task, err := m.api.Toggle(m.ctx, m.tasks[m.cursor].ID)
	if err != nil {
		m.errorMsg = errors.GetUserMessage(err)
		return
	}
	if task.Completed {
		m.infoMsg = fmt.Sprintf("Done: %s", task.Title)
	} else {
		m.infoMsg = fmt.Sprintf("Undone: %s", task.Title)
	}
	m.refresh()
}

func (m *Model) shiftFilter(delta int) {
	n := len(m.api.Filters())
	next := (int(m.api.Filter()) + delta + n) % n
	if err := m.api.SetFilter(next); err != nil {
		m.errorMsg = errors.GetUserMessage(err)
		return
	}
	m.cursor = 0
	m.refresh()
}

func (m *Model) refresh() {
	tasks, err := m.api.Visible(m.ctx)
	if err != nil {
		m.errorMsg = errors.GetUserMessage(err)
		return
	}
	m.tasks = tasks
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Tasks returns the rows the screen currently shows
func (m Model) Tasks() []domain.Task {
	return m.tasks
}

// Run starts the screen and blocks until the user quits
func Run(ctx context.Context, session api.API, in io.Reader, out io.Writer) error {
	program := tea.NewProgram(
		New(ctx, session),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	_, err := program.Run()
	return err
}
