package store

import (
	"context"
	"log/slog"
)

// Workspace wires the task and category stores together so that removing
// a category cascades into the tasks.
type Workspace struct {
	Tasks      *TaskStore
	Categories *CategoryStore
}

// NewWorkspace returns empty stores sharing reader and writer
func NewWorkspace(reader Reader, writer Writer, logger *slog.Logger) *Workspace {
	tasks := NewTaskStore(reader, writer, logger)
	return &Workspace{
		Tasks:      tasks,
		Categories: NewCategoryStore(reader, writer, tasks, logger),
	}
}

// Load reads categories, then tasks. seedName names the default category
// created on first run.
func (w *Workspace) Load(ctx context.Context, seedName string) {
	w.Categories.Load(ctx, seedName)
	w.Tasks.Load(ctx)
}

// RemoveCategory deletes a category and uncategorizes its tasks in one step
func (w *Workspace) RemoveCategory(id string) bool {
	return w.Categories.Remove(id)
}
