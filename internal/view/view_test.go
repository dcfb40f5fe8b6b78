package view

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tgienger/taskbox/internal/i18n"
	"github.com/tgienger/taskbox/internal/models"
)

var (
	general = models.Category{ID: "1", Name: "General", Color: "#bdc3c7"}
	work    = models.Category{ID: "w_1", Name: "Work", Color: "#3498db"}
)

func sampleTasks() []models.Task {
	return []models.Task{
		{ID: "a", Title: "Buy milk", Category: models.StringPtr("1")},
		{ID: "b", Title: "Ship it", Completed: true, Category: models.StringPtr("w_1")},
		{ID: "c", Title: "Stretch"},
		{ID: "d", Title: "Old thing", Completed: true, Category: models.StringPtr("gone")},
	}
}

func ids(tasks []models.Task) []string {
	out := []string{}
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func TestFilteredTasks(t *testing.T) {
	tests := []struct {
		filter Filter
		want   []string
	}{
		{All, []string{"a", "b", "c", "d"}},
		{Completed, []string{"b", "d"}},
		{Incomplete, []string{"a", "c"}},
		{Uncategorized, []string{"c"}},
		{CategoryFilter("1"), []string{"a"}},
		{CategoryFilter("w_1"), []string{"b"}},
		{CategoryFilter("gone"), []string{"d"}},
		{CategoryFilter("missing"), []string{}},
		{"bogus", []string{"a", "b", "c", "d"}},
		{"", []string{"a", "b", "c", "d"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.filter), func(t *testing.T) {
			got := ids(FilteredTasks(sampleTasks(), tt.filter))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FilteredTasks(%q) mismatch (-want +got):\n%s", tt.filter, diff)
			}
		})
	}
}

func TestCounts(t *testing.T) {
	got := Counts(sampleTasks(), []models.Category{general, work, {ID: "empty"}})
	want := map[Filter]int{
		All:                     4,
		Completed:               2,
		Incomplete:              2,
		Uncategorized:           1,
		CategoryFilter("1"):     1,
		CategoryFilter("w_1"):   1,
		CategoryFilter("empty"): 0,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Counts() mismatch (-want +got):\n%s", diff)
	}
}

func TestCountsConsistency(t *testing.T) {
	tasks := sampleTasks()
	categories := []models.Category{general, work}
	counts := Counts(tasks, categories)

	if counts[Completed]+counts[Incomplete] != counts[All] {
		t.Errorf("completed + incomplete = %d, want %d", counts[Completed]+counts[Incomplete], counts[All])
	}

	// Category buckets partition the tasks whose reference resolves.
	resolvable := 0
	for _, task := range tasks {
		if ResolveCategory(categories, task.Category).Kind != RefDeleted {
			resolvable++
		}
	}
	sum := counts[Uncategorized]
	for _, c := range categories {
		sum += counts[CategoryFilter(c.ID)]
	}
	if sum != resolvable {
		t.Errorf("bucket sum = %d, want %d", sum, resolvable)
	}
}

func TestFilterCategoryID(t *testing.T) {
	if id, ok := CategoryFilter("a_b").CategoryID(); !ok || id != "a_b" {
		t.Errorf("CategoryID() = (%q, %v), want (\"a_b\", true)", id, ok)
	}
	if _, ok := Uncategorized.CategoryID(); ok {
		t.Errorf("Uncategorized.CategoryID() ok = true")
	}
	if _, ok := All.CategoryID(); ok {
		t.Errorf("All.CategoryID() ok = true")
	}
}

func TestFilterValid(t *testing.T) {
	categories := []models.Category{general}
	tests := map[Filter]bool{
		All:                 true,
		Completed:           true,
		Incomplete:          true,
		Uncategorized:       true,
		CategoryFilter("1"): true,
		CategoryFilter("2"): false,
		"bogus":             false,
	}
	for f, want := range tests {
		if got := f.Valid(categories); got != want {
			t.Errorf("%q.Valid() = %v, want %v", f, got, want)
		}
	}
}

func TestResolveCategory(t *testing.T) {
	categories := []models.Category{general, work}
	tr := i18n.New("en")

	tests := []struct {
		name  string
		id    *string
		kind  RefKind
		label string
		color string
	}{
		{"uncategorized", nil, RefUncategorized, "Uncategorized", models.NeutralColor},
		{"existing", models.StringPtr("w_1"), RefExisting, "Work", "#3498db"},
		{"dangling", models.StringPtr("gone"), RefDeleted, "Deleted Category", models.DeletedColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := ResolveCategory(categories, tt.id)
			if ref.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", ref.Kind, tt.kind)
			}
			if got := ref.Name(tr); got != tt.label {
				t.Errorf("Name() = %q, want %q", got, tt.label)
			}
			if ref.Category.Color != tt.color {
				t.Errorf("Color = %q, want %q", ref.Category.Color, tt.color)
			}
		})
	}
}

func TestDanglingReferenceHasNoBucket(t *testing.T) {
	tasks := []models.Task{{ID: "x", Title: "x", Category: models.StringPtr("gone")}}
	counts := Counts(tasks, []models.Category{general})

	if _, ok := counts[CategoryFilter("gone")]; ok {
		t.Errorf("dangling id has a count bucket")
	}
	if counts[All] != 1 || counts[Incomplete] != 1 {
		t.Errorf("dangling task missing from all/incomplete: %v", counts)
	}
}
