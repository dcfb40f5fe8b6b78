package db

import (
	"encoding/json"
	"strings"

	"github.com/tgienger/taskbox/internal/models"
)

// Keys of the persisted records. Changing them orphans existing data.
const (
	TasksKey      = "@my_todos_v4"
	CategoriesKey = "@my_categories_v4"
	ThemeKey      = "@MyApp:theme"
	LanguageKey   = "@MyApp:language"
)

// EncodeTasks serializes the ordered task collection
func EncodeTasks(tasks []models.Task) (string, error) {
	if tasks == nil {
		tasks = []models.Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DecodeTasks parses a task collection written by EncodeTasks
func DecodeTasks(value string) ([]models.Task, error) {
	var tasks []models.Task
	if err := json.Unmarshal([]byte(value), &tasks); err != nil {
		return nil, &StorageReadError{Key: TasksKey, Err: err}
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	return tasks, nil
}

// ValidTasks returns the tasks whose title is not blank, in order, and the
// number of tasks it left out. Records written by EncodeTasks never have
// blank titles; edited or damaged ones might.
func ValidTasks(tasks []models.Task) ([]models.Task, int) {
	valid := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if strings.TrimSpace(t.Title) == "" {
			continue
		}
		valid = append(valid, t)
	}
	return valid, len(tasks) - len(valid)
}
