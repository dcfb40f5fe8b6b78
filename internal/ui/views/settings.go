package views

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tgienger/taskbox/internal/i18n"
	"github.com/tgienger/taskbox/internal/models"
	"github.com/tgienger/taskbox/internal/ui/keys"
	"github.com/tgienger/taskbox/internal/ui/styles"
)

var themeChoices = []struct {
	pref models.ThemePreference
	key  string
}{
	{models.ThemeSystem, "themeSystem"},
	{models.ThemeLight, "themeLight"},
	{models.ThemeDark, "themeDark"},
}

// SettingsView picks the theme and language preferences
type SettingsView struct {
	env *Env

	width  int
	height int

	section     int // 0 = theme, 1 = language
	themeCursor int
	langCursor  int
}

func NewSettingsView(env *Env) *SettingsView {
	v := &SettingsView{env: env}
	v.Reset()
	return v
}

func (v *SettingsView) Init() tea.Cmd {
	return nil
}

// Reset moves the cursors to the current preferences
func (v *SettingsView) Reset() {
	v.section = 0
	v.themeCursor = 0
	for i, c := range themeChoices {
		if c.pref == v.env.Settings.ThemePreference() {
			v.themeCursor = i
		}
	}
	v.langCursor = 0
	for i, l := range i18n.Languages {
		if l.Code == v.env.Settings.LanguagePreference() {
			v.langCursor = i
		}
	}
}

func (v *SettingsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
	case tea.KeyMsg:
		return v.updateKeys(msg)
	}
	return v, nil
}

func (v *SettingsView) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := v.env.Keys

	cursor := &v.themeCursor
	n := len(themeChoices)
	if v.section == 1 {
		cursor = &v.langCursor
		n = len(i18n.Languages)
	}

	switch {
	case key.Matches(msg, k.Quit):
		return v, tea.Quit
	case key.Matches(msg, k.Back):
		return v, func() tea.Msg { return ShowTasks{} }
	case key.Matches(msg, k.Tab), key.Matches(msg, k.Left), key.Matches(msg, k.Right):
		v.section = 1 - v.section
	case key.Matches(msg, k.Up):
		if *cursor > 0 {
			*cursor--
		}
	case key.Matches(msg, k.Down):
		if *cursor < n-1 {
			*cursor++
		}
	case key.Matches(msg, k.Enter), key.Matches(msg, k.Toggle):
		if v.section == 0 {
			v.env.Settings.SetThemePreference(themeChoices[v.themeCursor].pref)
		} else {
			v.env.Settings.SetLanguagePreference(i18n.Languages[v.langCursor].Code)
		}
	}
	return v, nil
}

func (v *SettingsView) View() string {
	s := v.env.Styles
	tr := v.env.Tr

	var themes []string
	for i, c := range themeChoices {
		themes = append(themes, v.renderChoice(tr.T(c.key),
			c.pref == v.env.Settings.ThemePreference(),
			v.section == 0 && i == v.themeCursor))
	}

	// Window the language list around the cursor
	rows := max(v.height-16, 5)
	start := clamp(v.langCursor-rows/2, 0, max(len(i18n.Languages)-rows, 0))
	end := min(start+rows, len(i18n.Languages))
	var langs []string
	for i := start; i < end; i++ {
		l := i18n.Languages[i]
		langs = append(langs, v.renderChoice(tr.T(l.NameKey),
			l.Code == v.env.Settings.LanguagePreference(),
			v.section == 1 && i == v.langCursor))
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render(tr.T("manageModalTitle")),
		"",
		s.Title.Render(tr.T("themeTitle")),
		lipgloss.JoinVertical(lipgloss.Left, themes...),
		"",
		s.Title.Render(tr.T("languageTitle")),
		lipgloss.JoinVertical(lipgloss.Left, langs...),
		v.renderHelp(),
	)
	return styles.CenterView(content, v.width, v.height)
}

func (v *SettingsView) renderChoice(label string, active, selected bool) string {
	s := v.env.Styles
	mark := "○ "
	if active {
		mark = "● "
	}
	if selected {
		return s.ListSelected.Render(mark + label)
	}
	return s.ListItem.Render(mark + label)
}

func (v *SettingsView) renderHelp() string {
	s := v.env.Styles
	k := v.env.Keys
	return s.Help.Render(v.env.hint(
		keys.Label(k.Enter), "hintSelect",
		"tab", "hintSection",
		keys.Label(k.Back), "hintBack",
		keys.Label(k.Quit), "hintQuit",
	))
}
