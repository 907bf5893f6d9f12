// Package menu implements the numbered text menu that drives a task store.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/syedahafsa12/hackathon2/internal/todo"
)

// Menu choices.
const (
	ChoiceAdd    = "1"
	ChoiceList   = "2"
	ChoiceUpdate = "3"
	ChoiceDelete = "4"
	ChoiceToggle = "5"
	ChoiceExit   = "6"
)

// errInputClosed ends the session the same way as choosing Exit.
var errInputClosed = errors.New("input closed")

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for session events.
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithJSONList renders "View All Tasks" as a JSON snapshot.
func WithJSONList(enabled bool) Option {
	return func(s *Session) {
		s.jsonList = enabled
	}
}

// WithTimeFormat sets the layout used for creation timestamps.
func WithTimeFormat(layout string) Option {
	return func(s *Session) {
		if layout != "" {
			s.timeFormat = layout
		}
	}
}

// WithConfirmDelete controls the y/n prompt before a delete.
func WithConfirmDelete(enabled bool) Option {
	return func(s *Session) {
		s.confirmDelete = enabled
	}
}

// Session is one interactive run of the menu over a store.
type Session struct {
	store         *todo.Store
	in            io.Reader
	out           io.Writer
	logger        *log.Logger
	jsonList      bool
	timeFormat    string
	confirmDelete bool

	lines  *lineReader
	ctx    context.Context
	outErr error
}

// New creates a session reading commands from in and writing to out.
func New(store *todo.Store, in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		store:         store,
		in:            in,
		out:           out,
		logger:        log.New(io.Discard),
		timeFormat:    todo.DefaultTimeFormat,
		confirmDelete: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run shows the menu until the user exits, input ends, or ctx is cancelled.
// A cancelled context is returned as ctx.Err(); end of input is a normal exit.
func (s *Session) Run(ctx context.Context) error {
	s.ctx = ctx
	s.lines = newLineReader(s.in)
	defer s.lines.close()

	s.displayWelcome()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.displayMenu()
		choice, err := s.readLine("\nEnter your choice (1-6): ")
		if err == nil {
			choice = strings.TrimSpace(choice)
			s.logger.Debug("menu choice", "choice", choice)
			if choice == ChoiceExit {
				s.displayGoodbye()
				return s.outErr
			}
			err = s.dispatch(choice)
		}

		switch {
		case errors.Is(err, errInputClosed):
			s.displayGoodbye()
			return s.outErr
		case err != nil:
			return err
		case s.outErr != nil:
			return s.outErr
		}
	}
}

func (s *Session) dispatch(choice string) error {
	switch choice {
	case ChoiceAdd:
		return s.addTask()
	case ChoiceList:
		s.viewAllTasks()
		return nil
	case ChoiceUpdate:
		return s.updateTask()
	case ChoiceDelete:
		return s.deleteTask()
	case ChoiceToggle:
		return s.toggleTask()
	default:
		s.printf("\nError: Invalid choice. Please select 1-6.\n")
		return nil
	}
}

func (s *Session) addTask() error {
	s.printHeader("ADD NEW TASK")

	title, err := s.promptUntilValid("Enter task title (required, 1-200 characters): ", todo.ValidateTitle)
	if err != nil {
		return err
	}
	description, err := s.promptUntilValid("Enter task description (optional, max 1000 characters): ", todo.ValidateDescription)
	if err != nil {
		return err
	}

	task := s.store.Add(title, description)
	s.printf("\n✓ Task #%d '%s' added successfully\n", task.ID, task.Title)
	return nil
}

func (s *Session) viewAllTasks() {
	s.printHeader("ALL TASKS")

	if s.jsonList {
		s.printSnapshot()
		return
	}

	tasks := s.store.List()
	if len(tasks) == 0 {
		s.printf("\nNo tasks found. Add your first task!\n")
		return
	}
	for _, task := range tasks {
		s.printf("\n%s\n", strings.Repeat("-", lineWidth))
		s.printf("%s\n", task.Format(s.timeFormat))
	}

	sum := s.store.Summary()
	s.printf("\n%s\n", strings.Repeat("=", lineWidth))
	s.printf("Total tasks: %d | Completed: %d | Pending: %d\n", sum.Total, sum.Completed, sum.Pending)
}

func (s *Session) printSnapshot() {
	data, err := todo.MarshalSnapshot(s.store.Snapshot())
	if err == nil {
		err = todo.ValidateSnapshot(data)
	}
	if err != nil {
		s.logger.Error("render snapshot", "err", err)
		s.printf("\nError: %v\n", err)
		return
	}
	s.printf("\n%s", data)
}

func (s *Session) updateTask() error {
	s.printHeader("UPDATE TASK")

	task, ok, err := s.promptTask("Enter task ID to update: ")
	if err != nil || !ok {
		return err
	}

	s.printf("\nCurrent task details:\n")
	s.printTaskBox(task)

	s.printf("\nCurrent title: %s\n", task.Title)
	newTitle, err := s.readTrimmed("Enter new title (press Enter to keep current): ")
	if err != nil {
		return err
	}
	var title *string
	if newTitle != "" {
		if verr := todo.ValidateTitle(newTitle); verr != nil {
			s.printf("Error: %v\n", verr)
			return nil
		}
		title = &newTitle
	}

	s.printf("\nCurrent description: %s\n", describe(task.Description))
	newDescription, err := s.readTrimmed("Enter new description (press Enter to keep current): ")
	if err != nil {
		return err
	}
	var description *string
	if newDescription != "" {
		if verr := todo.ValidateDescription(newDescription); verr != nil {
			s.printf("Error: %v\n", verr)
			return nil
		}
		description = &newDescription
	}

	if title == nil && description == nil {
		s.printf("\nNo changes made to task #%d\n", task.ID)
		return nil
	}
	if _, err := s.store.Update(task.ID, title, description); err != nil {
		s.printf("Error: %v\n", err)
		return nil
	}
	s.printf("\n✓ Task #%d updated successfully\n", task.ID)
	return nil
}

func (s *Session) deleteTask() error {
	s.printHeader("DELETE TASK")

	task, ok, err := s.promptTask("Enter task ID to delete: ")
	if err != nil || !ok {
		return err
	}

	s.printf("\nTask details for confirmation:\n")
	s.printTaskBox(task)

	if s.confirmDelete {
		answer, err := s.readTrimmed("\nAre you sure? (y/n): ")
		if err != nil {
			return err
		}
		if strings.ToLower(answer) != "y" {
			s.printf("\nDeletion cancelled.\n")
			return nil
		}
	}

	if err := s.store.Delete(task.ID); err != nil {
		s.printf("Error: %v\n", err)
		return nil
	}
	s.printf("\n✓ Task #%d deleted successfully\n", task.ID)
	return nil
}

func (s *Session) toggleTask() error {
	s.printHeader("MARK TASK AS COMPLETE/INCOMPLETE")

	task, ok, err := s.promptTask("Enter task ID: ")
	if err != nil || !ok {
		return err
	}

	completed, err := s.store.Toggle(task.ID)
	if err != nil {
		s.printf("Error: %v\n", err)
		return nil
	}
	status := "incomplete"
	if completed {
		status = "complete"
	}
	s.printf("\n✓ Task #%d marked as %s\n", task.ID, status)
	return nil
}

// promptTask reads a task ID once. ok is false when the ID was rejected; the
// reason has already been printed.
func (s *Session) promptTask(prompt string) (todo.Task, bool, error) {
	raw, err := s.readTrimmed(prompt)
	if err != nil {
		return todo.Task{}, false, err
	}
	id, verr := s.store.ValidateID(raw)
	if verr == nil {
		var task todo.Task
		if task, verr = s.store.Get(id); verr == nil {
			return task, true, nil
		}
	}
	s.printf("Error: %v\n", verr)
	return todo.Task{}, false, nil
}

// promptUntilValid re-prompts until validate accepts the trimmed input.
func (s *Session) promptUntilValid(prompt string, validate func(string) error) (string, error) {
	for {
		value, err := s.readTrimmed(prompt)
		if err != nil {
			return "", err
		}
		if verr := validate(value); verr != nil {
			s.printf("Error: %v\n", verr)
			continue
		}
		return value, nil
	}
}

func (s *Session) readTrimmed(prompt string) (string, error) {
	line, err := s.readLine(prompt)
	return strings.TrimSpace(line), err
}

func (s *Session) readLine(prompt string) (string, error) {
	s.printf("%s", prompt)
	return s.lines.next(s.ctx)
}

func (s *Session) printf(format string, args ...any) {
	if s.outErr != nil {
		return
	}
	if _, err := fmt.Fprintf(s.out, format, args...); err != nil {
		s.outErr = fmt.Errorf("writing output: %w", err)
	}
}

// lineReader feeds input lines through a channel so a blocked read can be
// abandoned when the context is cancelled. The goroutine exits once close is
// called, except while it is blocked inside a Read on the underlying reader.
type lineReader struct {
	lines chan string
	done  chan struct{}
	err   error
}

func newLineReader(r io.Reader) *lineReader {
	lr := &lineReader{
		lines: make(chan string),
		done:  make(chan struct{}),
	}
	go func() {
		defer close(lr.lines)
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			select {
			case lr.lines <- scanner.Text():
			case <-lr.done:
				return
			}
		}
		lr.err = scanner.Err()
	}()
	return lr
}

func (lr *lineReader) close() {
	close(lr.done)
}

func (lr *lineReader) next(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-lr.lines:
		if ok {
			return line, nil
		}
		if lr.err != nil {
			return "", fmt.Errorf("reading input: %w", lr.err)
		}
		return "", errInputClosed
	}
}
