package store

import "github.com/tgienger/taskbox/internal/models"

// Cascade returns a copy of tasks in which every task that referenced
// deletedID is uncategorized. Order and all other fields are unchanged.
func Cascade(tasks []models.Task, deletedID string) []models.Task {
	out := make([]models.Task, len(tasks))
	for i, t := range tasks {
		if t.HasCategory(deletedID) {
			t.Category = nil
		}
		out[i] = t
	}
	return out
}
