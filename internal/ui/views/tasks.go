package views

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tgienger/taskbox/internal/models"
	"github.com/tgienger/taskbox/internal/store"
	"github.com/tgienger/taskbox/internal/ui/keys"
	"github.com/tgienger/taskbox/internal/ui/styles"
	"github.com/tgienger/taskbox/internal/view"
)

type taskMode int

const (
	taskModeNormal taskMode = iota
	taskModeAdding
	taskModeChangingCategory
	taskModeHelp
)

// TaskListView shows the filtered task list
type TaskListView struct {
	env *Env

	width  int
	height int

	filter  view.Filter
	cursor  int
	scrollY int
	mode    taskMode

	// Task creation
	input       textinput.Model
	newCategory int // index into categoryOptions, 0 = uncategorized
	errMsg      string

	// Category change modal
	changeTaskID string
	changeCursor int
}

// NewTaskListView creates the task list starting on filter
func NewTaskListView(env *Env, filter view.Filter) *TaskListView {
	input := textinput.New()
	input.CharLimit = 200

	return &TaskListView{
		env:    env,
		filter: filter,
		input:  input,
	}
}

func (v *TaskListView) Init() tea.Cmd {
	return nil
}

// Filter returns the active filter
func (v *TaskListView) Filter() view.Filter {
	return v.filter
}

func (v *TaskListView) visible() []models.Task {
	return view.FilteredTasks(v.env.Work.Tasks.All(), v.filter)
}

func (v *TaskListView) filters() []view.Filter {
	fs := []view.Filter{view.All, view.Incomplete, view.Completed, view.Uncategorized}
	for _, c := range v.env.Work.Categories.All() {
		fs = append(fs, view.CategoryFilter(c.ID))
	}
	return fs
}

// categoryOptions lists the choices of the category selectors: nil for
// uncategorized, then every category id.
func (v *TaskListView) categoryOptions() []*string {
	opts := []*string{nil}
	for _, c := range v.env.Work.Categories.All() {
		opts = append(opts, models.StringPtr(c.ID))
	}
	return opts
}

func (v *TaskListView) cycleFilter(dir int) {
	fs := v.filters()
	idx := slices.Index(fs, v.filter)
	if idx < 0 {
		idx = 0
	} else {
		idx = (idx + dir + len(fs)) % len(fs)
	}
	v.filter = fs[idx]
	v.cursor = 0
	v.scrollY = 0
}

func (v *TaskListView) selected(tasks []models.Task) (models.Task, bool) {
	if v.cursor < 0 || v.cursor >= len(tasks) {
		return models.Task{}, false
	}
	return tasks[v.cursor], true
}

// Sync clamps the cursor after the collections changed elsewhere
func (v *TaskListView) Sync() {
	n := len(v.visible())
	if v.cursor >= n {
		v.cursor = max(n-1, 0)
	}
	v.ensureVisible()
}

func (v *TaskListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.input.Width = clamp(styles.ContentWidth(msg.Width)-10, 10, 60)
		v.ensureVisible()
		return v, nil

	case tea.KeyMsg:
		switch v.mode {
		case taskModeHelp:
			v.mode = taskModeNormal
			return v, nil
		case taskModeAdding:
			return v.updateAdding(msg)
		case taskModeChangingCategory:
			return v.updateChangingCategory(msg)
		}
		return v.updateNormal(msg)
	}

	if v.mode == taskModeAdding {
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *TaskListView) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := v.env.Keys
	tasks := v.visible()

	switch {
	case key.Matches(msg, k.Quit):
		return v, tea.Quit
	case key.Matches(msg, k.Up):
		if v.cursor > 0 {
			v.cursor--
			v.ensureVisible()
		}
	case key.Matches(msg, k.Down):
		if v.cursor < len(tasks)-1 {
			v.cursor++
			v.ensureVisible()
		}
	case key.Matches(msg, k.Left):
		v.cycleFilter(-1)
	case key.Matches(msg, k.Right):
		v.cycleFilter(1)
	case key.Matches(msg, k.Add):
		v.mode = taskModeAdding
		v.input.Reset()
		v.input.Placeholder = v.env.Tr.T("textInputPlaceholder")
		v.newCategory = 0
		v.errMsg = ""
		return v, v.input.Focus()
	case key.Matches(msg, k.Toggle):
		if task, ok := v.selected(tasks); ok {
			v.env.Work.Tasks.ToggleCompleted(task.ID)
			v.Sync()
		}
	case key.Matches(msg, k.Delete):
		if task, ok := v.selected(tasks); ok {
			v.env.Work.Tasks.Remove(task.ID)
			v.Sync()
		}
	case key.Matches(msg, k.Category):
		if task, ok := v.selected(tasks); ok {
			v.mode = taskModeChangingCategory
			v.changeTaskID = task.ID
			v.changeCursor = 0
			for i, opt := range v.categoryOptions() {
				if opt != nil && task.HasCategory(*opt) {
					v.changeCursor = i
				}
			}
		}
	case key.Matches(msg, k.Categories):
		return v, func() tea.Msg { return ShowCategories{} }
	case key.Matches(msg, k.Settings):
		return v, func() tea.Msg { return ShowSettings{} }
	case msg.String() == "?":
		v.mode = taskModeHelp
	}
	return v, nil
}

func (v *TaskListView) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := v.env.Keys
	n := len(v.categoryOptions())

	switch {
	case key.Matches(msg, k.Back):
		v.mode = taskModeNormal
		v.errMsg = ""
		v.input.Blur()
		return v, nil

	case key.Matches(msg, k.Tab):
		v.newCategory = (v.newCategory + 1) % n
		return v, nil

	case msg.String() == "shift+tab":
		v.newCategory = (v.newCategory + n - 1) % n
		return v, nil

	case key.Matches(msg, k.Enter):
		opts := v.categoryOptions()
		category := opts[clamp(v.newCategory, 0, n-1)]
		if _, err := v.env.Work.Tasks.Add(v.input.Value(), category); err != nil {
			if errors.Is(err, store.ErrValidation) {
				v.errMsg = v.env.Tr.T("alertTaskTitleEmpty")
			} else {
				v.errMsg = err.Error()
			}
			return v, nil
		}
		v.input.Reset()
		v.newCategory = 0
		v.errMsg = ""
		v.cursor = 0
		v.scrollY = 0
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *TaskListView) updateChangingCategory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := v.env.Keys
	opts := v.categoryOptions()

	switch {
	case key.Matches(msg, k.Back):
		v.mode = taskModeNormal
	case key.Matches(msg, k.Up):
		if v.changeCursor > 0 {
			v.changeCursor--
		}
	case key.Matches(msg, k.Down):
		if v.changeCursor < len(opts)-1 {
			v.changeCursor++
		}
	case key.Matches(msg, k.Enter):
		v.env.Work.Tasks.ReassignCategory(v.changeTaskID, opts[clamp(v.changeCursor, 0, len(opts)-1)])
		v.mode = taskModeNormal
		v.Sync()
	}
	return v, nil
}

func (v *TaskListView) visibleItems() int {
	return max((v.height-12)/2, 1)
}

func (v *TaskListView) ensureVisible() {
	visible := v.visibleItems()
	if v.cursor < v.scrollY {
		v.scrollY = v.cursor
	}
	if v.cursor >= v.scrollY+visible {
		v.scrollY = v.cursor - visible + 1
	}
	if v.scrollY < 0 {
		v.scrollY = 0
	}
}

func (v *TaskListView) View() string {
	if v.mode == taskModeHelp {
		return v.renderHelpPopup()
	}
	if v.mode == taskModeChangingCategory {
		return v.renderCategoryModal()
	}

	tasks := v.visible()

	var b strings.Builder
	b.WriteString(v.renderHeader(len(tasks)))
	b.WriteString("\n\n")
	b.WriteString(v.renderTaskList(tasks))
	if v.mode == taskModeAdding {
		b.WriteString("\n\n")
		b.WriteString(v.renderAddForm())
	}
	b.WriteString("\n")
	b.WriteString(v.renderHelp())

	return styles.CenterView(b.String(), v.width, v.height)
}

func (v *TaskListView) filterLabel(f view.Filter) string {
	tr := v.env.Tr
	switch f {
	case view.All:
		return tr.T("filterAll")
	case view.Incomplete:
		return tr.T("filterOpen")
	case view.Completed:
		return tr.T("filterCompleted")
	case view.Uncategorized:
		return tr.T("uncategorized")
	}
	id, _ := f.CategoryID()
	if c, ok := v.env.Work.Categories.Get(id); ok {
		return styles.Swatch(c.Color) + " " + c.Name
	}
	return id
}

func (v *TaskListView) renderHeader(found int) string {
	s := v.env.Styles
	contentWidth := styles.ContentWidth(v.width)

	title := lipgloss.JoinHorizontal(lipgloss.Bottom,
		s.Title.Render(v.env.Tr.T("headerTitle")),
		"  ",
		s.TitleMuted.Render(v.env.Tr.T("headerSubtitle", "count", strconv.Itoa(found))),
	)

	counts := view.Counts(v.env.Work.Tasks.All(), v.env.Work.Categories.All())
	var chips []string
	for _, f := range v.filters() {
		label := fmt.Sprintf("%s %d", v.filterLabel(f), counts[f])
		if f == v.filter {
			chips = append(chips, s.ButtonPrimary.Render(label))
		} else {
			chips = append(chips, s.FilterButton.Render(label))
		}
	}
	bar := lipgloss.NewStyle().Width(max(contentWidth-4, 20)).Render(strings.Join(chips, " "))

	return lipgloss.JoinVertical(lipgloss.Left, title, s.FilterBar.Render(bar))
}

func (v *TaskListView) renderTaskList(tasks []models.Task) string {
	s := v.env.Styles
	if len(tasks) == 0 {
		return s.TitleMuted.Render(v.env.Tr.T("emptyList"))
	}

	end := min(v.scrollY+v.visibleItems(), len(tasks))
	categories := v.env.Work.Categories.All()

	var items []string
	for i := v.scrollY; i < end; i++ {
		items = append(items, v.renderTaskItem(tasks[i], categories, i == v.cursor && v.mode == taskModeNormal))
	}
	return lipgloss.JoinVertical(lipgloss.Left, items...)
}

func (v *TaskListView) renderTaskItem(task models.Task, categories []models.Category, selected bool) string {
	s := v.env.Styles
	width := max(styles.ContentWidth(v.width)-4, 20)

	check := "[ ]"
	title := s.TaskTitle.Render(task.Title)
	if task.Completed {
		check = "[x]"
		title = s.TaskDone.Render(task.Title)
	}

	ref := view.ResolveCategory(categories, task.Category)
	chip := s.Chip.Render(styles.Swatch(ref.Category.Color) + " " + ref.Name(v.env.Tr))

	line := lipgloss.JoinVertical(lipgloss.Left,
		check+" "+title,
		"    "+s.TitleMuted.Render(chip),
	)

	if selected {
		return s.ListSelected.Width(width).Render(line)
	}
	return s.ListItem.Width(width).Render(line)
}

func (v *TaskListView) renderAddForm() string {
	s := v.env.Styles

	opts := v.categoryOptions()
	ref := view.ResolveCategory(v.env.Work.Categories.All(), opts[clamp(v.newCategory, 0, len(opts)-1)])
	selector := s.Button.Render("◂ " + styles.Swatch(ref.Category.Color) + " " + ref.Name(v.env.Tr) + " ▸")

	parts := []string{
		s.InputFocused.Render(v.input.View()),
		selector,
	}
	if v.errMsg != "" {
		parts = append(parts, s.Error.Render(v.env.Tr.T("alertErrorTitle")+": "+v.errMsg))
	}
	k := v.env.Keys
	parts = append(parts, s.TitleMuted.Render(v.env.hint(
		"tab", "hintCategory",
		keys.Label(k.Enter), "hintAdd",
		keys.Label(k.Back), "modalClose",
	)))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (v *TaskListView) renderCategoryModal() string {
	s := v.env.Styles
	contentWidth := styles.ContentWidth(v.width)
	categories := v.env.Work.Categories.All()

	var items []string
	for i, opt := range v.categoryOptions() {
		ref := view.ResolveCategory(categories, opt)
		itemStyle := s.ListItem
		if i == v.changeCursor {
			itemStyle = s.ListSelected
		}
		items = append(items, itemStyle.Render(styles.Swatch(ref.Category.Color)+" "+ref.Name(v.env.Tr)))
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		append([]string{s.Title.Render(v.env.Tr.T("changeCategoryModalTitle")), ""}, items...)...,
	)
	hint := v.env.hint(keys.Label(v.env.Keys.Enter), "hintSelect", keys.Label(v.env.Keys.Back), "modalClose")
	content = lipgloss.JoinVertical(lipgloss.Left, content, "", s.TitleMuted.Render(hint))

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		s.FilterBar.Render(content),
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *TaskListView) renderHelp() string {
	s := v.env.Styles
	k := v.env.Keys
	contentWidth := styles.ContentWidth(v.width)
	if contentWidth > 0 && contentWidth < 50 {
		return s.Help.Render(v.env.hint("?", "hintHelp"))
	}
	return s.Help.Render(v.env.hint(
		keys.Label(k.Add), "hintAdd",
		keys.Label(k.Toggle), "hintDone",
		keys.Label(k.Delete), "hintDelete",
		keys.Label(k.Category), "hintCategory",
		keys.Label(k.Left)+"/"+keys.Label(k.Right), "hintFilter",
		keys.Label(k.Quit), "hintQuit",
	))
}

func (v *TaskListView) renderHelpPopup() string {
	s := v.env.Styles
	k := v.env.Keys
	contentWidth := styles.ContentWidth(v.width)

	tr := v.env.Tr
	row := func(b key.Binding, desc string) string {
		return s.HelpKey.Render(fmt.Sprintf("%-7s", keys.Label(b))) + tr.T(desc)
	}
	helpItems := []string{
		row(k.Add, "shortcutAddTask"),
		row(k.Toggle, "shortcutToggle"),
		row(k.Delete, "shortcutDeleteTask"),
		row(k.Category, "shortcutChangeCategory"),
		row(k.Left, "shortcutPrevFilter"),
		row(k.Right, "shortcutNextFilter"),
		row(k.Categories, "categoryModalTitle"),
		row(k.Settings, "manageModalTitle"),
		row(k.Quit, "hintQuit"),
		"",
		s.TitleMuted.Render(tr.T("shortcutsDismiss")),
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		append([]string{s.Title.Render(tr.T("shortcutsTitle")), ""}, helpItems...)...,
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		s.FilterBar.Render(content),
	)
	return styles.CenterView(centered, v.width, v.height)
}
