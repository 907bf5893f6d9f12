package ui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/syedahafsa12/hackathon2/internal/todo"
)

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

// press sends each key in order and returns the command from the last one.
func press(t *testing.T, m *model, keys ...string) tea.Cmd {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(keyMsg(k))
		if next != m {
			t.Fatalf("Update returned a different model")
		}
	}
	return cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestAddTask(t *testing.T) {
	store := todo.NewStore()
	m := newModel(store)

	press(t, m, "a", "Buy milk", "enter", "2 litres", "enter")

	if store.Len() != 1 {
		t.Fatalf("Len: got %d, want 1", store.Len())
	}
	task, _ := store.Get(1)
	if task.Title != "Buy milk" || task.Description != "2 litres" {
		t.Errorf("stored task: %+v", task)
	}
	if m.mode != modeList {
		t.Errorf("mode after add: got %v, want list", m.mode)
	}
	view := m.View()
	for _, want := range []string{"#1 Buy milk", "Task #1 added", "Total: 1"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestAddRejectsInvalidTitle(t *testing.T) {
	store := todo.NewStore()
	m := newModel(store)

	press(t, m, "a", "space", "enter")
	if m.mode != modeInput || m.stage != stageTitle {
		t.Fatalf("blank title should keep the title prompt open")
	}
	if !strings.Contains(m.View(), "Task title cannot be empty.") {
		t.Errorf("view missing validation error:\n%s", m.View())
	}

	press(t, m, strings.Repeat("x", 201), "enter")
	if !strings.Contains(m.View(), "200 characters") {
		t.Errorf("view missing length error:\n%s", m.View())
	}

	press(t, m, "backspace", "enter", "enter")
	if store.Len() != 1 {
		t.Fatalf("Len: got %d, want 1", store.Len())
	}
	task, _ := store.Get(1)
	if n := len([]rune(task.Title)); n != 200 {
		t.Errorf("title length: got %d, want 200", n)
	}
}

func TestAddCancel(t *testing.T) {
	store := todo.NewStore()
	m := newModel(store)

	press(t, m, "a", "Draft", "esc")
	if store.Len() != 0 {
		t.Errorf("cancelled add stored a task")
	}
	if m.mode != modeList {
		t.Errorf("mode after esc: got %v", m.mode)
	}
}

func TestEditTask(t *testing.T) {
	store := todo.NewStore()
	store.Add("Old", "old notes")
	m := newModel(store)

	press(t, m, "e")
	if got := string(m.buffer); got != "Old" {
		t.Fatalf("title prefill: got %q", got)
	}
	press(t, m, "backspace", "backspace", "backspace", "New", "enter")
	if got := string(m.buffer); got != "old notes" {
		t.Fatalf("description prefill: got %q", got)
	}
	press(t, m, "enter")

	task, _ := store.Get(1)
	if task.Title != "New" || task.Description != "old notes" {
		t.Errorf("stored task: %+v", task)
	}
	if !strings.Contains(m.View(), "Task #1 updated") {
		t.Errorf("view missing status:\n%s", m.View())
	}
}

func TestToggleAndMove(t *testing.T) {
	store := todo.NewStore()
	store.Add("one", "")
	store.Add("two", "")
	m := newModel(store)

	press(t, m, "down", "space")
	second, _ := store.Get(2)
	if !second.Completed {
		t.Errorf("task 2 should be completed")
	}

	press(t, m, "k", "x")
	first, _ := store.Get(1)
	if !first.Completed {
		t.Errorf("task 1 should be completed")
	}

	press(t, m, "x")
	first, _ = store.Get(1)
	if first.Completed {
		t.Errorf("task 1 should be pending again")
	}

	press(t, m, "up", "up", "k")
	if m.cursor != 0 {
		t.Errorf("cursor should clamp at 0, got %d", m.cursor)
	}
	press(t, m, "j", "j", "j")
	if m.cursor != 1 {
		t.Errorf("cursor should clamp at last row, got %d", m.cursor)
	}
}

func TestDeleteTask(t *testing.T) {
	store := todo.NewStore()
	store.Add("one", "")
	store.Add("two", "")
	m := newModel(store)

	press(t, m, "j", "d")
	if m.mode != modeConfirmDelete {
		t.Fatalf("mode: got %v, want confirm", m.mode)
	}
	if !strings.Contains(m.View(), `Delete task #2 "two"? (y/n)`) {
		t.Errorf("view missing confirmation:\n%s", m.View())
	}

	press(t, m, "n")
	if store.Len() != 2 {
		t.Fatalf("task deleted despite n")
	}

	press(t, m, "d", "y")
	if store.Len() != 1 {
		t.Fatalf("Len: got %d, want 1", store.Len())
	}
	if _, err := store.Get(2); err == nil {
		t.Errorf("task 2 still present")
	}
	if m.cursor != 0 {
		t.Errorf("cursor should move back onto remaining task, got %d", m.cursor)
	}

	press(t, m, "a", "three", "enter", "enter")
	if got := m.tasks[len(m.tasks)-1].ID; got != 3 {
		t.Errorf("new task id after delete: got %d, want 3", got)
	}
}

func TestEmptyStoreKeysAreSafe(t *testing.T) {
	m := newModel(todo.NewStore())
	press(t, m, "j", "k", "x", "space", "d", "e", "enter")
	if m.mode != modeList {
		t.Errorf("mode: got %v, want list", m.mode)
	}
	if !strings.Contains(m.View(), "No tasks found") {
		t.Errorf("view missing empty message:\n%s", m.View())
	}
}

func TestHelpAndQuit(t *testing.T) {
	m := newModel(todo.NewStore())

	press(t, m, "?")
	if !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Errorf("help not shown:\n%s", m.View())
	}
	if cmd := press(t, m, "q"); isQuit(cmd) {
		t.Errorf("q on help screen should only close help")
	}
	if m.mode != modeList {
		t.Errorf("mode: got %v, want list", m.mode)
	}

	if cmd := press(t, m, "q"); !isQuit(cmd) {
		t.Errorf("q should quit from the list")
	}

	press(t, m, "a")
	if cmd := press(t, m, "ctrl+c"); !isQuit(cmd) {
		t.Errorf("ctrl+c should quit from input mode")
	}
}

func TestTypingQInInputDoesNotQuit(t *testing.T) {
	m := newModel(todo.NewStore())
	press(t, m, "a")
	if cmd := press(t, m, "q"); isQuit(cmd) {
		t.Errorf("q typed into a title should not quit")
	}
	if string(m.buffer) != "q" {
		t.Errorf("buffer: got %q, want q", string(m.buffer))
	}
}

func TestIsTTY(t *testing.T) {
	if IsTTY(&bytes.Buffer{}) {
		t.Error("buffer should not be a TTY")
	}
}
