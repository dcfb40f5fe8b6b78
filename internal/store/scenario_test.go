package store

import (
	"context"
	"errors"
	"testing"

	"github.com/tgienger/taskbox/internal/db"
	"github.com/tgienger/taskbox/internal/models"
	"github.com/tgienger/taskbox/internal/view"
)

func scenarioWorkspace(t *testing.T) *Workspace {
	t.Helper()
	kv := newMemKV()
	kv.values[db.CategoriesKey] = `[{"id":"1","name":"General","color":"#bdc3c7"}]`
	w := newTestWorkspace(kv)
	w.Load(context.Background(), "General")
	return w
}

func titles(tasks []models.Task) []string {
	out := []string{}
	for _, t := range tasks {
		out = append(out, t.Title)
	}
	return out
}

func TestScenarioAddThenFilter(t *testing.T) {
	w := scenarioWorkspace(t)
	if _, err := w.Tasks.Add("Buy milk", models.StringPtr("1")); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	tasks := w.Tasks.All()

	if got := titles(view.FilteredTasks(tasks, view.All)); len(got) != 1 || got[0] != "Buy milk" {
		t.Errorf("all = %v, want [Buy milk]", got)
	}
	if got := titles(view.FilteredTasks(tasks, "category_1")); len(got) != 1 || got[0] != "Buy milk" {
		t.Errorf("category_1 = %v, want [Buy milk]", got)
	}
	if got := view.FilteredTasks(tasks, view.Completed); len(got) != 0 {
		t.Errorf("completed = %v, want empty", titles(got))
	}
}

func TestScenarioDeleteCategoryCascades(t *testing.T) {
	w := scenarioWorkspace(t)
	w.Tasks.Add("Buy milk", models.StringPtr("1"))

	w.RemoveCategory("1")
	tasks := w.Tasks.All()

	if got := titles(view.FilteredTasks(tasks, view.Uncategorized)); len(got) != 1 || got[0] != "Buy milk" {
		t.Errorf("category_null = %v, want [Buy milk]", got)
	}
	counts := view.Counts(tasks, w.Categories.All())
	if _, ok := counts["category_1"]; ok {
		t.Errorf("counts still has category_1: %v", counts)
	}

	// A filter left pointing at the deleted category selects nothing.
	stale := view.CategoryFilter("1")
	if stale.Valid(w.Categories.All()) {
		t.Errorf("stale filter reported valid")
	}
	if got := view.FilteredTasks(tasks, stale); len(got) != 0 {
		t.Errorf("stale filter = %v, want empty", titles(got))
	}
}

func TestScenarioEmptyTitleRejected(t *testing.T) {
	w := scenarioWorkspace(t)

	_, err := w.Tasks.Add("   ", nil)
	if !errors.Is(err, ErrValidation) {
		t.Errorf("Add() error = %v, want ErrValidation", err)
	}
	if got := w.Tasks.All(); len(got) != 0 {
		t.Errorf("tasks = %v, want unchanged", got)
	}
}
