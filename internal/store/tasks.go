package store

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/tgienger/taskbox/internal/db"
	"github.com/tgienger/taskbox/internal/models"
)

// TaskStore owns the ordered task collection, most recent first
type TaskStore struct {
	reader Reader
	writer Writer
	logger *slog.Logger
	newID  func() string

	tasks []models.Task
}

// NewTaskStore returns an empty store
func NewTaskStore(reader Reader, writer Writer, logger *slog.Logger) *TaskStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskStore{
		reader: reader,
		writer: writer,
		logger: logger.With("component", "tasks"),
		newID:  newID,
		tasks:  []models.Task{},
	}
}

// SetIDFunc replaces the id generator
func (s *TaskStore) SetIDFunc(fn func() string) {
	s.newID = fn
}

// Load replaces the collection with the persisted one. A missing or
// unreadable record leaves the collection empty.
func (s *TaskStore) Load(ctx context.Context) {
	s.tasks = []models.Task{}

	value, ok, err := s.reader.Get(ctx, db.TasksKey)
	if err != nil {
		s.logger.Warn("failed to read tasks", "error", err)
		return
	}
	if !ok {
		return
	}

	tasks, err := db.DecodeTasks(value)
	if err != nil {
		s.logger.Warn("discarding unreadable tasks", "error", err)
		return
	}
	tasks, dropped := db.ValidTasks(tasks)
	if dropped > 0 {
		s.logger.Warn("dropping tasks with blank titles", "count", dropped)
	}
	s.tasks = tasks
	s.logger.Debug("tasks loaded", "count", len(tasks))
}

// All returns a copy of the collection in display order
func (s *TaskStore) All() []models.Task {
	return slices.Clone(s.tasks)
}

// Get returns the task with id
func (s *TaskStore) Get(id string) (models.Task, bool) {
	if i := s.index(id); i >= 0 {
		return s.tasks[i], true
	}
	return models.Task{}, false
}

// Add prepends a new task. category is not checked against the category
// store; a nil category means uncategorized.
func (s *TaskStore) Add(title string, category *string) (models.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.Task{}, &ValidationError{Field: "title"}
	}

	task := models.Task{
		ID:       s.newID(),
		Title:    title,
		Category: copyRef(category),
	}
	s.tasks = append([]models.Task{task}, s.tasks...)
	s.persist()
	return task, nil
}

// Remove deletes the task with id. It reports whether a task was removed.
func (s *TaskStore) Remove(id string) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.tasks = slices.Delete(slices.Clone(s.tasks), i, i+1)
	s.persist()
	return true
}

// ToggleCompleted flips the completed flag of the task with id
func (s *TaskStore) ToggleCompleted(id string) bool {
	return s.update(id, func(t *models.Task) {
		t.Completed = !t.Completed
	})
}

// ReassignCategory points the task with id at category, which may be nil
// or an id that does not exist.
func (s *TaskStore) ReassignCategory(id string, category *string) bool {
	return s.update(id, func(t *models.Task) {
		t.Category = copyRef(category)
	})
}

// CascadeCategory clears every reference to a deleted category
func (s *TaskStore) CascadeCategory(categoryID string) {
	next := Cascade(s.tasks, categoryID)
	changed := 0
	for i := range next {
		if s.tasks[i].HasCategory(categoryID) {
			changed++
		}
	}
	s.tasks = next
	if changed > 0 {
		s.logger.Debug("category references cleared", "category", categoryID, "tasks", changed)
		s.persist()
	}
}

func (s *TaskStore) update(id string, fn func(*models.Task)) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	next := slices.Clone(s.tasks)
	fn(&next[i])
	s.tasks = next
	s.persist()
	return true
}

func (s *TaskStore) index(id string) int {
	return slices.IndexFunc(s.tasks, func(t models.Task) bool { return t.ID == id })
}

func (s *TaskStore) persist() {
	value, err := db.EncodeTasks(s.tasks)
	if err != nil {
		s.logger.Error("failed to encode tasks", "error", err)
		return
	}
	s.writer.Put(db.TasksKey, value)
}

func copyRef(id *string) *string {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
