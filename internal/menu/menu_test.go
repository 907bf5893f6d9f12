package menu

import (
	"bytes"
	"context"
	"errors"
	"io"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/syedahafsa12/hackathon2/internal/todo"
)

func newStore() *todo.Store {
	created := time.Date(2024, 3, 4, 5, 6, 7, 0, time.UTC)
	return todo.NewStore(todo.WithClock(func() time.Time { return created }))
}

// runSession feeds the given lines to a fresh session and returns its output.
func runSession(t *testing.T, store *todo.Store, lines []string, opts ...Option) string {
	t.Helper()
	input := strings.Join(lines, "\n")
	if len(lines) > 0 {
		input += "\n"
	}
	var out bytes.Buffer
	s := New(store, strings.NewReader(input), &out, opts...)
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run error = %v\noutput:\n%s", err, out.String())
	}
	return out.String()
}

func assertContains(t *testing.T, out string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\noutput:\n%s", want, out)
		}
	}
}

func TestRunFullWorkflow(t *testing.T) {
	store := newStore()
	out := runSession(t, store, []string{
		"1", "Buy milk", "",
		"1", "Write report", "Quarterly numbers",
		"2",
		"5", "1",
		"4", "2", "y",
		"2",
		"6",
	})

	assertContains(t, out,
		"WELCOME TO TODO APP",
		"✓ Task #1 'Buy milk' added successfully",
		"✓ Task #2 'Write report' added successfully",
		"Description: (No description)",
		"Description: Quarterly numbers",
		"Created: 2024-03-04 05:06:07",
		"Total tasks: 2 | Completed: 0 | Pending: 2",
		"✓ Task #1 marked as complete",
		"Are you sure? (y/n)",
		"✓ Task #2 deleted successfully",
		"Total tasks: 1 | Completed: 1 | Pending: 0",
		"Thank you for using Todo App! Goodbye!",
	)

	if store.Len() != 1 {
		t.Errorf("Len: got %d, want 1", store.Len())
	}
	if store.NextID() != 3 {
		t.Errorf("NextID: got %d, want 3", store.NextID())
	}
}

func TestRunEndOfInputExits(t *testing.T) {
	out := runSession(t, newStore(), nil)
	assertContains(t, out, "MAIN MENU", "Goodbye!")
}

func TestRunEndOfInputMidAction(t *testing.T) {
	store := newStore()
	out := runSession(t, store, []string{"1"})
	assertContains(t, out, "ADD NEW TASK", "Goodbye!")
	if store.Len() != 0 {
		t.Errorf("no task should be added, got %d", store.Len())
	}
}

func TestRunInvalidChoice(t *testing.T) {
	out := runSession(t, newStore(), []string{"9", "", "add", "6"})
	if got := strings.Count(out, "Invalid choice. Please select 1-6."); got != 3 {
		t.Errorf("invalid choice count: got %d, want 3\n%s", got, out)
	}
}

func TestAddRepromptsUntilValid(t *testing.T) {
	store := newStore()
	out := runSession(t, store, []string{
		"1",
		"",
		"   ",
		strings.Repeat("x", 201),
		"  Padded title  ",
		strings.Repeat("d", 1001),
		"ok",
		"6",
	})

	if got := strings.Count(out, "Error: Task title cannot be empty."); got != 2 {
		t.Errorf("empty title errors: got %d, want 2", got)
	}
	assertContains(t, out,
		"Error: Task title must be 200 characters or less.",
		"Error: Task description must be 1000 characters or less.",
		"✓ Task #1 'Padded title' added successfully",
	)

	task, err := store.Get(1)
	if err != nil {
		t.Fatalf("Get error = %v", err)
	}
	if task.Title != "Padded title" || task.Description != "ok" {
		t.Errorf("stored task: %+v", task)
	}
}

func TestUpdate(t *testing.T) {
	t.Run("changes description, keeps title", func(t *testing.T) {
		store := newStore()
		store.Add("Title", "")
		out := runSession(t, store, []string{"3", "1", "", "New details", "6"})

		assertContains(t, out,
			"Current title: Title",
			"Current description: (No description)",
			"✓ Task #1 updated successfully",
		)
		task, _ := store.Get(1)
		if task.Title != "Title" || task.Description != "New details" {
			t.Errorf("stored task: %+v", task)
		}
	})

	t.Run("no changes", func(t *testing.T) {
		store := newStore()
		store.Add("Title", "desc")
		out := runSession(t, store, []string{"3", "1", "", "", "6"})
		assertContains(t, out, "No changes made to task #1")
	})

	t.Run("invalid description aborts without touching title", func(t *testing.T) {
		store := newStore()
		store.Add("Title", "")
		out := runSession(t, store, []string{"3", "1", "Renamed", strings.Repeat("d", 1001), "6"})

		assertContains(t, out, "Error: Task description must be 1000 characters or less.")
		task, _ := store.Get(1)
		if task.Title != "Title" {
			t.Errorf("title changed after aborted update: %q", task.Title)
		}
	})

	t.Run("bad ids", func(t *testing.T) {
		store := newStore()
		store.Add("Title", "")
		out := runSession(t, store, []string{"3", "abc", "3", "99", "6"})
		assertContains(t, out,
			"is not a valid number",
			"Task #99 not found. Use 'View All Tasks' to see available IDs.",
		)
	})
}

func TestDelete(t *testing.T) {
	t.Run("cancelled", func(t *testing.T) {
		store := newStore()
		store.Add("Keep me", "")
		out := runSession(t, store, []string{"4", "1", "n", "6"})
		assertContains(t, out, "Deletion cancelled.")
		if store.Len() != 1 {
			t.Errorf("task deleted despite cancel")
		}
	})

	t.Run("uppercase confirmation", func(t *testing.T) {
		store := newStore()
		store.Add("Drop me", "")
		runSession(t, store, []string{"4", "1", "Y", "6"})
		if store.Len() != 0 {
			t.Errorf("task not deleted")
		}
	})

	t.Run("without confirmation", func(t *testing.T) {
		store := newStore()
		store.Add("Drop me", "")
		out := runSession(t, store, []string{"4", "1", "6"}, WithConfirmDelete(false))
		if strings.Contains(out, "Are you sure?") {
			t.Errorf("confirmation prompt shown when disabled")
		}
		assertContains(t, out, "✓ Task #1 deleted successfully")
	})
}

func TestToggleTwice(t *testing.T) {
	store := newStore()
	store.Add("Flip", "")
	out := runSession(t, store, []string{"5", "1", "5", "1", "6"})
	assertContains(t, out, "marked as complete", "marked as incomplete")
	task, _ := store.Get(1)
	if task.Completed {
		t.Errorf("task should be pending after two toggles")
	}
}

func TestListEmpty(t *testing.T) {
	out := runSession(t, newStore(), []string{"2", "6"})
	assertContains(t, out, "No tasks found. Add your first task!")
}

func TestListJSON(t *testing.T) {
	store := newStore()
	store.Add("First", "")
	out := runSession(t, store, []string{"2", "6"}, WithJSONList(true))
	assertContains(t, out,
		`"schema_version": 1`,
		`"title": "First"`,
		`"created_at": "2024-03-04T05:06:07Z"`,
	)
}

func TestListCustomTimeFormat(t *testing.T) {
	store := newStore()
	store.Add("First", "")
	out := runSession(t, store, []string{"2", "6"}, WithTimeFormat("02/01/2006"))
	assertContains(t, out, "Created: 04/03/2024")
}

func TestRunContextCancelled(t *testing.T) {
	t.Run("before start", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		s := New(newStore(), strings.NewReader("6\n"), io.Discard)
		if err := s.Run(ctx); !errors.Is(err, context.Canceled) {
			t.Errorf("Run: got %v, want context.Canceled", err)
		}
	})

	t.Run("while waiting for input", func(t *testing.T) {
		pr, pw := io.Pipe()
		defer pw.Close()

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() {
			done <- New(newStore(), pr, io.Discard).Run(ctx)
		}()

		time.Sleep(20 * time.Millisecond)
		cancel()

		select {
		case err := <-done:
			if !errors.Is(err, context.Canceled) {
				t.Errorf("Run: got %v, want context.Canceled", err)
			}
		case <-time.After(2 * time.Second):
			t.Fatal("Run did not return after cancel")
		}
	})
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestRunWriteFailure(t *testing.T) {
	s := New(newStore(), strings.NewReader("2\n6\n"), failingWriter{})
	err := s.Run(context.Background())
	if err == nil || !strings.Contains(err.Error(), "writing output") {
		t.Errorf("Run: got %v, want writing output error", err)
	}
}

func TestRunReleasesReader(t *testing.T) {
	before := runtime.NumGoroutine()

	for i := 0; i < 50; i++ {
		s := New(newStore(), strings.NewReader("6\nleftover\nmore\n"), io.Discard)
		if err := s.Run(context.Background()); err != nil {
			t.Fatalf("Run error = %v", err)
		}
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for i := 0; i < 10; i++ {
		_ = New(newStore(), strings.NewReader("1\nunread\n"), io.Discard).Run(ctx)
		_ = New(newStore(), strings.NewReader("2\n6\n"), failingWriter{}).Run(context.Background())
	}

	deadline := time.Now().Add(2 * time.Second)
	after := runtime.NumGoroutine()
	for after > before && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
		after = runtime.NumGoroutine()
	}
	if after > before {
		t.Errorf("goroutines: before=%d after=%d, input readers still running", before, after)
	}
}
