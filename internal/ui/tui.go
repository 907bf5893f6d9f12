// Package ui provides the optional full-screen terminal interface.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/syedahafsa12/hackathon2/internal/todo"
)

// TUIOption configures the TUI behavior.
type TUIOption func(*model)

// WithTimeFormat sets the layout used for creation timestamps.
func WithTimeFormat(layout string) TUIOption {
	return func(m *model) {
		if layout != "" {
			m.timeFormat = layout
		}
	}
}

// WithLogger sets the logger used for TUI events.
func WithLogger(logger *log.Logger) TUIOption {
	return func(m *model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// RunTUI starts the TUI over store and blocks until the user quits.
func RunTUI(ctx context.Context, store *todo.Store, opts ...TUIOption) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}

	m := newModel(store, opts...)
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}

type mode int

const (
	modeList mode = iota
	modeInput
	modeConfirmDelete
	modeHelp
)

type inputStage int

const (
	stageTitle inputStage = iota
	stageDescription
)

type model struct {
	store      *todo.Store
	logger     *log.Logger
	timeFormat string

	tasks  []todo.Task
	cursor int
	mode   mode

	// input state
	editingID int // 0 while adding
	stage     inputStage
	buffer    []rune
	title     string

	status string
	errMsg string
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	doneStyle     = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	hintStyle     = lipgloss.NewStyle().Faint(true)
)

func newModel(store *todo.Store, opts ...TUIOption) *model {
	m := &model{
		store:      store,
		logger:     log.New(io.Discard),
		timeFormat: todo.DefaultTimeFormat,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.refresh()
	return m
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.mode {
	case modeInput:
		m.updateInput(key)
	case modeConfirmDelete:
		m.updateConfirm(key)
	case modeHelp:
		m.mode = modeList
	default:
		return m, m.updateList(key)
	}
	return m, nil
}

func (m *model) updateList(key tea.KeyMsg) tea.Cmd {
	m.errMsg = ""
	switch key.Type {
	case tea.KeyUp:
		m.move(-1)
		return nil
	case tea.KeyDown:
		m.move(1)
		return nil
	case tea.KeySpace:
		m.toggleSelected()
		return nil
	case tea.KeyEnter:
		m.startEdit()
		return nil
	}

	switch key.String() {
	case "q":
		return tea.Quit
	case "k":
		m.move(-1)
	case "j":
		m.move(1)
	case "a":
		m.startAdd()
	case "e":
		m.startEdit()
	case "d":
		if _, ok := m.selected(); ok {
			m.mode = modeConfirmDelete
		}
	case "x", " ":
		m.toggleSelected()
	case "h", "?":
		m.mode = modeHelp
	}
	return nil
}

func (m *model) updateInput(key tea.KeyMsg) {
	switch key.Type {
	case tea.KeyEsc:
		m.mode = modeList
		m.errMsg = ""
		m.status = "Cancelled"
	case tea.KeyEnter:
		m.submitInput()
	case tea.KeyBackspace:
		if len(m.buffer) > 0 {
			m.buffer = m.buffer[:len(m.buffer)-1]
		}
	case tea.KeySpace:
		m.buffer = append(m.buffer, ' ')
	case tea.KeyRunes:
		m.buffer = append(m.buffer, key.Runes...)
	}
}

func (m *model) updateConfirm(key tea.KeyMsg) {
	m.mode = modeList
	task, ok := m.selected()
	if !ok {
		return
	}
	if strings.ToLower(key.String()) != "y" {
		m.status = "Deletion cancelled"
		return
	}
	if err := m.store.Delete(task.ID); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.logger.Info("task deleted", "id", task.ID)
	m.status = fmt.Sprintf("Task #%d deleted", task.ID)
	m.refresh()
}

func (m *model) startAdd() {
	m.mode = modeInput
	m.editingID = 0
	m.stage = stageTitle
	m.buffer = nil
	m.title = ""
	m.errMsg = ""
}

func (m *model) startEdit() {
	task, ok := m.selected()
	if !ok {
		return
	}
	m.mode = modeInput
	m.editingID = task.ID
	m.stage = stageTitle
	m.buffer = []rune(task.Title)
	m.title = ""
	m.errMsg = ""
}

func (m *model) submitInput() {
	value := strings.TrimSpace(string(m.buffer))

	if m.stage == stageTitle {
		if err := todo.ValidateTitle(value); err != nil {
			m.errMsg = err.Error()
			return
		}
		m.title = value
		m.stage = stageDescription
		m.buffer = nil
		if m.editingID != 0 {
			if task, err := m.store.Get(m.editingID); err == nil {
				m.buffer = []rune(task.Description)
			}
		}
		m.errMsg = ""
		return
	}

	if err := todo.ValidateDescription(value); err != nil {
		m.errMsg = err.Error()
		return
	}

	if m.editingID == 0 {
		task := m.store.Add(m.title, value)
		m.logger.Info("task added", "id", task.ID)
		m.status = fmt.Sprintf("Task #%d added", task.ID)
		m.refresh()
		m.cursor = len(m.tasks) - 1
	} else {
		if _, err := m.store.Update(m.editingID, &m.title, &value); err != nil {
			m.errMsg = err.Error()
			return
		}
		m.logger.Info("task updated", "id", m.editingID)
		m.status = fmt.Sprintf("Task #%d updated", m.editingID)
		m.refresh()
	}
	m.mode = modeList
	m.errMsg = ""
	m.buffer = nil
}

func (m *model) toggleSelected() {
	task, ok := m.selected()
	if !ok {
		return
	}
	completed, err := m.store.Toggle(task.ID)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	state := "incomplete"
	if completed {
		state = "complete"
	}
	m.status = fmt.Sprintf("Task #%d marked as %s", task.ID, state)
	m.refresh()
}

func (m *model) move(delta int) {
	if len(m.tasks) == 0 {
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
}

func (m *model) selected() (todo.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.tasks) {
		return todo.Task{}, false
	}
	return m.tasks[m.cursor], true
}

func (m *model) refresh() {
	m.tasks = m.store.List()
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *model) View() string {
	var b strings.Builder
	writeTitle(&b)

	switch m.mode {
	case modeHelp:
		writeHelp(&b)
		return b.String()
	case modeInput:
		m.writeInput(&b)
		return b.String()
	}

	m.writeTasks(&b)
	if m.mode == modeConfirmDelete {
		if task, ok := m.selected(); ok {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Delete task #%d %q? (y/n)", task.ID, task.Title)))
			b.WriteString("\n\n")
		}
	}
	m.writeMessages(&b)
	writeFooter(&b)
	return b.String()
}

func writeTitle(b *strings.Builder) {
	title := "Todo"
	b.WriteString(titleStyle.Render(title) + "\n")
	b.WriteString(strings.Repeat("=", len(title)) + "\n\n")
}

func (m *model) writeTasks(b *strings.Builder) {
	if len(m.tasks) == 0 {
		b.WriteString("  No tasks found. Press a to add your first task!\n\n")
		return
	}

	for i, task := range m.tasks {
		line := formatTask(task)
		switch {
		case i == m.cursor:
			line = selectedStyle.Render("> " + line)
		case task.Completed:
			line = "  " + doneStyle.Render(line)
		default:
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")

	if task, ok := m.selected(); ok {
		b.WriteString(hintStyle.Render(task.Format(m.timeFormat)))
		b.WriteString("\n\n")
	}

	sum := m.store.Summary()
	b.WriteString(fmt.Sprintf("Total: %d  Completed: %d  Pending: %d\n\n", sum.Total, sum.Completed, sum.Pending))
}

func (m *model) writeInput(b *strings.Builder) {
	action := "New task"
	if m.editingID != 0 {
		action = fmt.Sprintf("Edit task #%d", m.editingID)
	}
	b.WriteString(action + "\n\n")

	if m.stage == stageTitle {
		b.WriteString(fmt.Sprintf("Title (1-%d characters):\n", todo.MaxTitleLength))
	} else {
		b.WriteString(fmt.Sprintf("Title: %s\n\n", m.title))
		b.WriteString(fmt.Sprintf("Description (optional, max %d characters):\n", todo.MaxDescriptionLength))
	}
	b.WriteString("> " + string(m.buffer) + "_\n\n")

	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg) + "\n\n")
	}
	b.WriteString(hintStyle.Render("enter to confirm | esc to cancel") + "\n")
}

func (m *model) writeMessages(b *strings.Builder) {
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg) + "\n\n")
		return
	}
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status) + "\n\n")
	}
}

func writeHelp(b *strings.Builder) {
	b.WriteString("Keyboard Shortcuts\n\n")
	b.WriteString("  a            Add task\n")
	b.WriteString("  e, enter     Edit selected task\n")
	b.WriteString("  d            Delete selected task\n")
	b.WriteString("  space, x     Toggle complete/incomplete\n")
	b.WriteString("  j, k, ↑, ↓   Move selection\n")
	b.WriteString("  h, ?         Toggle this help screen\n")
	b.WriteString("  q, ctrl+c    Quit\n\n")
	b.WriteString(hintStyle.Render("Press any key to return") + "\n")
}

func writeFooter(b *strings.Builder) {
	b.WriteString(hintStyle.Render("a add | e edit | d delete | space toggle | h help | q quit") + "\n")
}

func formatTask(t todo.Task) string {
	statusIcon := " "
	if t.Completed {
		statusIcon = "x"
	}
	return fmt.Sprintf("[%s] #%d %s", statusIcon, t.ID, t.Title)
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
