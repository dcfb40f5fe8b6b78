// Package view derives what the task list shows from the task and category
// collections. Every function is pure.
package view

import (
	"strings"

	"github.com/tgienger/taskbox/internal/i18n"
	"github.com/tgienger/taskbox/internal/models"
)

// Filter selects a subset of tasks
type Filter string

const (
	All           Filter = "all"
	Completed     Filter = "completed"
	Incomplete    Filter = "incomplete"
	Uncategorized Filter = "category_null"
)

const categoryPrefix = "category_"

// CategoryFilter selects the tasks of one category
func CategoryFilter(id string) Filter {
	return Filter(categoryPrefix + id)
}

// CategoryID returns the category a category filter selects. It is false
// for every other filter, including Uncategorized.
func (f Filter) CategoryID() (string, bool) {
	if f == Uncategorized || !strings.HasPrefix(string(f), categoryPrefix) {
		return "", false
	}
	return strings.TrimPrefix(string(f), categoryPrefix), true
}

// Valid reports whether f is one of the selectable filters for categories.
// A category filter whose category was deleted is not valid.
func (f Filter) Valid(categories []models.Category) bool {
	switch f {
	case All, Completed, Incomplete, Uncategorized:
		return true
	}
	id, ok := f.CategoryID()
	if !ok {
		return false
	}
	for _, c := range categories {
		if c.ID == id {
			return true
		}
	}
	return false
}

// Counts returns the number of tasks each filter selects. Every current
// category has an entry, even when empty; ids no category has do not.
func Counts(tasks []models.Task, categories []models.Category) map[Filter]int {
	counts := map[Filter]int{
		All:           len(tasks),
		Completed:     0,
		Incomplete:    0,
		Uncategorized: 0,
	}
	for _, c := range categories {
		counts[CategoryFilter(c.ID)] = 0
	}

	for _, t := range tasks {
		if t.Completed {
			counts[Completed]++
		} else {
			counts[Incomplete]++
		}

		if t.Category == nil {
			counts[Uncategorized]++
			continue
		}
		key := CategoryFilter(*t.Category)
		if _, ok := counts[key]; ok {
			counts[key]++
		}
	}
	return counts
}

// FilteredTasks returns the tasks f selects, in collection order. Unknown
// filters select everything.
func FilteredTasks(tasks []models.Task, f Filter) []models.Task {
	switch f {
	case All:
		return tasks
	case Completed:
		return keep(tasks, func(t models.Task) bool { return t.Completed })
	case Incomplete:
		return keep(tasks, func(t models.Task) bool { return !t.Completed })
	case Uncategorized:
		return keep(tasks, func(t models.Task) bool { return t.Category == nil })
	}
	if id, ok := f.CategoryID(); ok {
		return keep(tasks, func(t models.Task) bool { return t.HasCategory(id) })
	}
	return tasks
}

func keep(tasks []models.Task, pred func(models.Task) bool) []models.Task {
	out := []models.Task{}
	for _, t := range tasks {
		if pred(t) {
			out = append(out, t)
		}
	}
	return out
}

// RefKind tells how a task's category reference resolved
type RefKind int

const (
	RefExisting RefKind = iota
	RefUncategorized
	RefDeleted
)

// Ref is the category shown for a task
type Ref struct {
	Kind     RefKind
	Category models.Category
}

// ResolveCategory looks up the category a task references. A nil id
// resolves to the uncategorized sentinel and an unknown id to a deleted
// placeholder; neither is an error.
func ResolveCategory(categories []models.Category, id *string) Ref {
	if id == nil {
		return Ref{Kind: RefUncategorized, Category: models.Category{Color: models.NeutralColor}}
	}
	for _, c := range categories {
		if c.ID == *id {
			return Ref{Kind: RefExisting, Category: c}
		}
	}
	return Ref{Kind: RefDeleted, Category: models.Category{ID: *id, Color: models.DeletedColor}}
}

// Name returns the display name, localizing the sentinel kinds
func (r Ref) Name(tr i18n.Translator) string {
	switch r.Kind {
	case RefUncategorized:
		return tr.T("uncategorized")
	case RefDeleted:
		return tr.T("deletedCategory")
	}
	return r.Category.Name
}
