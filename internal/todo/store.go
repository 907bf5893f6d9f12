package todo

import (
	"io"
	"maps"
	"slices"
	"time"

	"github.com/charmbracelet/log"
)

// Store owns the task collection and the ID counter. It is not safe for
// concurrent use; a single presentation loop drives it.
type Store struct {
	tasks  map[int]*Task
	nextID int
	now    func() time.Time
	logger *log.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithClock overrides the clock used to stamp new tasks.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets the logger used for mutation events.
func WithLogger(logger *log.Logger) StoreOption {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewStore creates an empty store whose first task will get ID 1.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		tasks:  make(map[int]*Task),
		nextID: 1,
		now:    time.Now,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Summary holds task counts.
type Summary struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
}

// Add stores a new task and returns a copy of it. Title and description are
// expected to have passed ValidateTitle and ValidateDescription.
func (s *Store) Add(title, description string) Task {
	task := &Task{
		ID:          s.nextID,
		Title:       title,
		Description: description,
		CreatedAt:   s.now(),
	}
	s.tasks[task.ID] = task
	s.nextID++

	s.logger.Debug("task added", "id", task.ID, "next_id", s.nextID)
	return *task
}

// List returns all tasks ordered by ascending ID.
func (s *Store) List() []Task {
	out := make([]Task, 0, len(s.tasks))
	for _, id := range slices.Sorted(maps.Keys(s.tasks)) {
		out = append(out, *s.tasks[id])
	}
	return out
}

// Get returns a task by ID.
func (s *Store) Get(id int) (Task, error) {
	task, ok := s.tasks[id]
	if !ok {
		return Task{}, notFound(id)
	}
	return *task, nil
}

// Update replaces the title and/or description of a task. A nil pointer
// leaves the field unchanged. Supplied values are validated before anything
// is written, so a rejected update changes nothing.
func (s *Store) Update(id int, title, description *string) (Task, error) {
	task, ok := s.tasks[id]
	if !ok {
		return Task{}, notFound(id)
	}
	if title != nil {
		if err := ValidateTitle(*title); err != nil {
			return *task, err
		}
	}
	if description != nil {
		if err := ValidateDescription(*description); err != nil {
			return *task, err
		}
	}

	if title != nil {
		task.Title = *title
	}
	if description != nil {
		task.Description = *description
	}

	s.logger.Debug("task updated", "id", id, "title", title != nil, "description", description != nil)
	return *task, nil
}

// Delete removes a task. The ID counter is not rolled back.
func (s *Store) Delete(id int) error {
	if _, ok := s.tasks[id]; !ok {
		return notFound(id)
	}
	delete(s.tasks, id)

	s.logger.Debug("task deleted", "id", id, "remaining", len(s.tasks))
	return nil
}

// Toggle flips the completion flag and returns the new state.
func (s *Store) Toggle(id int) (bool, error) {
	task, ok := s.tasks[id]
	if !ok {
		return false, notFound(id)
	}
	task.Completed = !task.Completed

	s.logger.Debug("task toggled", "id", id, "completed", task.Completed)
	return task.Completed, nil
}

// Len returns the number of stored tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// NextID returns the ID the next added task will receive.
func (s *Store) NextID() int {
	return s.nextID
}

// Summary counts tasks by completion state.
func (s *Store) Summary() Summary {
	sum := Summary{Total: len(s.tasks)}
	for _, task := range s.tasks {
		if task.Completed {
			sum.Completed++
		}
	}
	sum.Pending = sum.Total - sum.Completed
	return sum
}
