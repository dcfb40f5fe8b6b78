package views

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tgienger/taskbox/internal/models"
	"github.com/tgienger/taskbox/internal/settings"
	"github.com/tgienger/taskbox/internal/store"
	"github.com/tgienger/taskbox/internal/ui/keys"
	"github.com/tgienger/taskbox/internal/view"
)

type memKV struct {
	values map[string]string
}

func (m *memKV) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memKV) Put(key, value string) {
	m.values[key] = value
}

type fakePlatform struct{}

func (fakePlatform) Locale() string                { return "en_US.UTF-8" }
func (fakePlatform) Theme() models.ThemePreference { return models.ThemeLight }

func newTestEnv(t *testing.T) *Env {
	t.Helper()
	kv := &memKV{values: map[string]string{}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	prefs := settings.New(kv, kv, fakePlatform{}, logger)
	prefs.Initialize(context.Background())

	work := store.NewWorkspace(kv, kv, logger)
	work.Load(context.Background(), "General")

	env := NewEnv(work, prefs, keys.Default())
	prefs.Subscribe(env.Refresh)
	return env
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m tea.Model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(keyMsg(k))
	}
	return cmd
}

func typeText(m tea.Model, text string) {
	for _, r := range text {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestTaskListAddsTask(t *testing.T) {
	env := newTestEnv(t)
	v := NewTaskListView(env, view.All)
	v.Update(tea.WindowSizeMsg{Width: 80, Height: 40})

	press(v, "a")
	typeText(v, "buy milk")
	press(v, "enter")

	tasks := env.Work.Tasks.All()
	if len(tasks) != 1 {
		t.Fatalf("got %d tasks, want 1", len(tasks))
	}
	if tasks[0].Title != "buy milk" || tasks[0].Category != nil {
		t.Errorf("got %+v, want uncategorized 'buy milk'", tasks[0])
	}
	if v.input.Value() != "" {
		t.Errorf("input not cleared: %q", v.input.Value())
	}
	if !strings.Contains(v.View(), "buy milk") {
		t.Error("new task not rendered")
	}
}

func TestTaskListRejectsBlankTitle(t *testing.T) {
	env := newTestEnv(t)
	v := NewTaskListView(env, view.All)

	press(v, "a")
	typeText(v, "   ")
	press(v, "enter")

	if n := len(env.Work.Tasks.All()); n != 0 {
		t.Fatalf("got %d tasks, want 0", n)
	}
	if v.errMsg != env.Tr.T("alertTaskTitleEmpty") {
		t.Errorf("errMsg = %q", v.errMsg)
	}
}

func TestTaskListCategorySelectorResets(t *testing.T) {
	env := newTestEnv(t)
	v := NewTaskListView(env, view.All)

	press(v, "a")
	typeText(v, "first")
	press(v, "tab", "enter")
	typeText(v, "second")
	press(v, "enter")

	tasks := env.Work.Tasks.All()
	if len(tasks) != 2 {
		t.Fatalf("got %d tasks, want 2", len(tasks))
	}
	// Newest first
	if tasks[0].Category != nil {
		t.Errorf("second task category = %v, want nil", *tasks[0].Category)
	}
	if !tasks[1].HasCategory(models.DefaultCategoryID) {
		t.Errorf("first task category = %v, want %q", tasks[1].Category, models.DefaultCategoryID)
	}
}

func TestTaskListToggleAndFilter(t *testing.T) {
	env := newTestEnv(t)
	env.Work.Tasks.Add("a", nil)
	env.Work.Tasks.Add("b", nil)
	v := NewTaskListView(env, view.All)

	// Newest first, so the cursor starts on "b"
	press(v, " ")
	if task := env.Work.Tasks.All()[0]; task.Title != "b" || !task.Completed {
		t.Fatalf("task %q not completed", task.Title)
	}

	press(v, "l")
	if v.Filter() != view.Incomplete {
		t.Fatalf("filter = %q, want %q", v.Filter(), view.Incomplete)
	}
	if got := v.visible(); len(got) != 1 || got[0].Title != "a" {
		t.Errorf("visible = %+v, want only 'a'", got)
	}

	press(v, "h", "h")
	if v.Filter() != view.CategoryFilter(models.DefaultCategoryID) {
		t.Errorf("filter = %q, want wrap to last category", v.Filter())
	}
}

func TestTaskListChangeCategory(t *testing.T) {
	env := newTestEnv(t)
	env.Work.Tasks.Add("a", nil)
	v := NewTaskListView(env, view.All)

	press(v, "c", "j", "enter")

	if task := env.Work.Tasks.All()[0]; !task.HasCategory(models.DefaultCategoryID) {
		t.Errorf("category = %v, want %q", task.Category, models.DefaultCategoryID)
	}
	if v.mode != taskModeNormal {
		t.Error("modal still open")
	}
}

func TestTaskListStaleFilterShowsEmpty(t *testing.T) {
	env := newTestEnv(t)
	env.Work.Tasks.Add("a", models.StringPtr(models.DefaultCategoryID))
	v := NewTaskListView(env, view.CategoryFilter(models.DefaultCategoryID))

	env.Work.RemoveCategory(models.DefaultCategoryID)

	if got := v.visible(); len(got) != 0 {
		t.Errorf("visible = %+v, want empty", got)
	}
	if !strings.Contains(v.View(), env.Tr.T("emptyList")) {
		t.Error("empty message not rendered")
	}

	press(v, "l")
	if v.Filter() != view.All {
		t.Errorf("filter = %q, want %q", v.Filter(), view.All)
	}
}

func TestCategoryViewDeleteCascades(t *testing.T) {
	env := newTestEnv(t)
	env.Work.Tasks.Add("a", models.StringPtr(models.DefaultCategoryID))
	v := NewCategoryView(env)

	press(v, "d")
	if !v.confirmingDelete {
		t.Fatal("delete not confirmed first")
	}
	press(v, "y")

	if n := len(env.Work.Categories.All()); n != 0 {
		t.Errorf("got %d categories, want 0", n)
	}
	if task := env.Work.Tasks.All()[0]; task.Category != nil {
		t.Errorf("task category = %v, want nil", *task.Category)
	}
}

func TestCategoryViewCancelDelete(t *testing.T) {
	env := newTestEnv(t)
	v := NewCategoryView(env)

	press(v, "d", "n")

	if n := len(env.Work.Categories.All()); n != 1 {
		t.Errorf("got %d categories, want 1", n)
	}
}

func TestCategoryViewAdd(t *testing.T) {
	env := newTestEnv(t)
	v := NewCategoryView(env)

	press(v, "a", "enter")
	if v.errMsg != env.Tr.T("alertCategoryNameEmpty") {
		t.Fatalf("errMsg = %q", v.errMsg)
	}

	typeText(v, "Work")
	press(v, "tab", "enter")

	categories := env.Work.Categories.All()
	if len(categories) != 2 {
		t.Fatalf("got %d categories, want 2", len(categories))
	}
	if got := categories[1]; got.Name != "Work" || got.Color != models.CategoryPalette[1] {
		t.Errorf("got %+v", got)
	}
	if v.creating {
		t.Error("form still open")
	}
}

func TestSettingsViewChangesLanguage(t *testing.T) {
	env := newTestEnv(t)
	v := NewSettingsView(env)

	// system, en, tr
	press(v, "tab", "j", "j", "enter")

	if got := env.Settings.LanguagePreference(); got != "tr" {
		t.Fatalf("language = %q, want tr", got)
	}
	if got := env.Tr.T("headerTitle"); got != "Görevler" {
		t.Errorf("headerTitle = %q, want refreshed translator", got)
	}
}

func TestSettingsViewChangesTheme(t *testing.T) {
	env := newTestEnv(t)
	v := NewSettingsView(env)

	press(v, "j", "j", "enter")

	if got := env.Settings.ThemePreference(); got != models.ThemeDark {
		t.Fatalf("theme = %q, want dark", got)
	}
	if !env.Styles.Theme().IsDark {
		t.Error("styles not rebuilt for dark palette")
	}
}

func TestBackNavigates(t *testing.T) {
	env := newTestEnv(t)

	cmd := press(NewCategoryView(env), "esc")
	if cmd == nil {
		t.Fatal("no command")
	}
	if _, ok := cmd().(ShowTasks); !ok {
		t.Error("esc did not navigate to tasks")
	}
}

func TestHelpTextFollowsLocale(t *testing.T) {
	env := newTestEnv(t)
	env.Settings.SetLanguagePreference("tr")
	v := NewTaskListView(env, view.All)
	v.Update(tea.WindowSizeMsg{Width: 80, Height: 40})

	out := v.View()
	for _, want := range []string{"ekle", "çık"} {
		if !strings.Contains(out, want) {
			t.Errorf("help line missing %q", want)
		}
	}

	press(v, "?")
	out = v.View()
	if !strings.Contains(out, "Klavye Kısayolları") {
		t.Error("shortcut popup not translated")
	}
	if strings.Contains(out, "Keyboard Shortcuts") || strings.Contains(out, "Press any key") {
		t.Error("shortcut popup still shows English text")
	}
}
