package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tgienger/taskbox/internal/ui/views"
	"github.com/tgienger/taskbox/internal/view"
)

// Screen is the currently active view
type Screen int

const (
	ScreenTasks Screen = iota
	ScreenCategories
	ScreenSettings
)

type App struct {
	env        *views.Env
	screen     Screen
	taskList   *views.TaskListView
	categories *views.CategoryView
	settings   *views.SettingsView
	width      int
	height     int
}

// NewApp creates the application starting on the task list with filter
func NewApp(env *views.Env, filter view.Filter) *App {
	env.Settings.Subscribe(env.Refresh)
	return &App{
		env:        env,
		screen:     ScreenTasks,
		taskList:   views.NewTaskListView(env, filter),
		categories: views.NewCategoryView(env),
		settings:   views.NewSettingsView(env),
	}
}

// Screen returns the active screen
func (a *App) Screen() Screen {
	return a.screen
}

func (a *App) Init() tea.Cmd {
	return a.taskList.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Every view keeps its size so switching does not need a resize
		a.taskList.Update(msg)
		a.categories.Update(msg)
		a.settings.Update(msg)
		return a, nil

	case views.ShowTasks:
		a.screen = ScreenTasks
		a.taskList.Sync()
		return a, nil

	case views.ShowCategories:
		a.screen = ScreenCategories
		a.categories.Reset()
		return a, nil

	case views.ShowSettings:
		a.screen = ScreenSettings
		a.settings.Reset()
		return a, nil
	}

	var cmd tea.Cmd
	switch a.screen {
	case ScreenTasks:
		_, cmd = a.taskList.Update(msg)
	case ScreenCategories:
		_, cmd = a.categories.Update(msg)
	case ScreenSettings:
		_, cmd = a.settings.Update(msg)
	}
	return a, cmd
}

func (a *App) View() string {
	switch a.screen {
	case ScreenCategories:
		return a.categories.View()
	case ScreenSettings:
		return a.settings.View()
	}
	return a.taskList.View()
}
