package views

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tgienger/taskbox/internal/models"
	"github.com/tgienger/taskbox/internal/store"
	"github.com/tgienger/taskbox/internal/ui/keys"
	"github.com/tgienger/taskbox/internal/ui/styles"
)

// CategoryView lists categories and lets the user add and delete them
type CategoryView struct {
	env *Env

	width  int
	height int
	cursor int

	creating bool
	newName  textinput.Model
	color    int // index into models.CategoryPalette
	errMsg   string

	confirmingDelete bool
	deleteTargetID   string
	deleteTargetName string
}

func NewCategoryView(env *Env) *CategoryView {
	newName := textinput.New()
	newName.CharLimit = 50

	return &CategoryView{
		env:     env,
		newName: newName,
	}
}

func (v *CategoryView) Init() tea.Cmd {
	return nil
}

// Reset closes any open form or dialog
func (v *CategoryView) Reset() {
	v.creating = false
	v.confirmingDelete = false
	v.errMsg = ""
	v.newName.Blur()
	v.cursor = clamp(v.cursor, 0, max(len(v.env.Work.Categories.All())-1, 0))
}

func (v *CategoryView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.newName.Width = clamp(styles.ContentWidth(msg.Width)-10, 10, 40)
		return v, nil

	case tea.KeyMsg:
		if v.confirmingDelete {
			return v.updateConfirmDelete(msg)
		}
		if v.creating {
			return v.updateCreating(msg)
		}
		return v.updateNormal(msg)
	}

	if v.creating {
		var cmd tea.Cmd
		v.newName, cmd = v.newName.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *CategoryView) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := v.env.Keys
	categories := v.env.Work.Categories.All()

	switch {
	case key.Matches(msg, k.Quit):
		return v, tea.Quit
	case key.Matches(msg, k.Back):
		return v, func() tea.Msg { return ShowTasks{} }
	case key.Matches(msg, k.Up):
		if v.cursor > 0 {
			v.cursor--
		}
	case key.Matches(msg, k.Down):
		if v.cursor < len(categories)-1 {
			v.cursor++
		}
	case key.Matches(msg, k.Add):
		v.creating = true
		v.color = 0
		v.errMsg = ""
		v.newName.Reset()
		v.newName.Placeholder = v.env.Tr.T("manageModalCategoryName")
		return v, v.newName.Focus()
	case key.Matches(msg, k.Delete):
		if v.cursor < len(categories) {
			c := categories[v.cursor]
			v.confirmingDelete = true
			v.deleteTargetID = c.ID
			v.deleteTargetName = c.Name
		}
	}
	return v, nil
}

func (v *CategoryView) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		v.env.Work.RemoveCategory(v.deleteTargetID)
		v.confirmingDelete = false
		v.cursor = clamp(v.cursor, 0, max(len(v.env.Work.Categories.All())-1, 0))
	case "n", "N", "esc":
		v.confirmingDelete = false
	}
	return v, nil
}

func (v *CategoryView) updateCreating(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := v.env.Keys
	n := len(models.CategoryPalette)

	switch {
	case key.Matches(msg, k.Back):
		v.creating = false
		v.errMsg = ""
		v.newName.Blur()
		return v, nil

	case key.Matches(msg, k.Tab):
		v.color = (v.color + 1) % n
		return v, nil

	case msg.String() == "shift+tab":
		v.color = (v.color + n - 1) % n
		return v, nil

	case key.Matches(msg, k.Enter):
		if _, err := v.env.Work.Categories.Add(v.newName.Value(), models.CategoryPalette[v.color]); err != nil {
			if errors.Is(err, store.ErrValidation) {
				v.errMsg = v.env.Tr.T("alertCategoryNameEmpty")
			} else {
				v.errMsg = err.Error()
			}
			return v, nil
		}
		v.creating = false
		v.errMsg = ""
		v.newName.Blur()
		v.cursor = len(v.env.Work.Categories.All()) - 1
		return v, nil
	}

	var cmd tea.Cmd
	v.newName, cmd = v.newName.Update(msg)
	return v, cmd
}

func (v *CategoryView) View() string {
	if v.confirmingDelete {
		return v.renderDeleteConfirm()
	}

	s := v.env.Styles
	tr := v.env.Tr
	categories := v.env.Work.Categories.All()

	parts := []string{
		s.Title.Render(tr.T("categoryModalTitle")),
		"",
		s.TitleMuted.Render(tr.T("manageModalCurrent")),
	}

	if len(categories) == 0 {
		parts = append(parts, s.TitleMuted.Render(tr.T("manageModalEmpty")))
	}
	width := max(styles.ContentWidth(v.width)-4, 20)
	for i, c := range categories {
		itemStyle := s.ListItem
		if i == v.cursor && !v.creating {
			itemStyle = s.ListSelected
		}
		parts = append(parts, itemStyle.Width(width).Render(styles.Swatch(c.Color)+" "+c.Name))
	}

	if v.creating {
		parts = append(parts, "", v.renderCreateForm())
	}
	parts = append(parts, v.renderHelp())

	return styles.CenterView(lipgloss.JoinVertical(lipgloss.Left, parts...), v.width, v.height)
}

func (v *CategoryView) renderCreateForm() string {
	s := v.env.Styles
	tr := v.env.Tr

	var swatches []string
	for i, color := range models.CategoryPalette {
		sw := styles.Swatch(color)
		if i == v.color {
			sw = "[" + sw + "]"
		} else {
			sw = " " + sw + " "
		}
		swatches = append(swatches, sw)
	}

	parts := []string{
		s.Title.Render(tr.T("manageModalAddNew")),
		s.InputFocused.Render(v.newName.View()),
		strings.Join(swatches, ""),
		s.ButtonPrimary.Render(" " + tr.T("manageModalAddButton") + " "),
	}
	if v.errMsg != "" {
		parts = append(parts, s.Error.Render(tr.T("alertErrorTitle")+": "+v.errMsg))
	}
	k := v.env.Keys
	parts = append(parts, s.TitleMuted.Render(v.env.hint(
		"tab", "hintColor",
		keys.Label(k.Enter), "hintAdd",
		keys.Label(k.Back), "alertCancel",
	)))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (v *CategoryView) renderHelp() string {
	s := v.env.Styles
	k := v.env.Keys
	return s.Help.Render(v.env.hint(
		keys.Label(k.Add), "hintNew",
		keys.Label(k.Delete), "hintDelete",
		keys.Label(k.Back), "hintBack",
		keys.Label(k.Quit), "hintQuit",
	))
}

func (v *CategoryView) renderDeleteConfirm() string {
	s := v.env.Styles
	tr := v.env.Tr
	contentWidth := styles.ContentWidth(v.width)

	body := lipgloss.NewStyle().Width(clamp(contentWidth-10, 20, 60)).Render(tr.T("alertDeleteCategoryBody"))

	content := lipgloss.JoinVertical(lipgloss.Center,
		s.Title.Foreground(s.Theme().Error).Render(tr.T("alertDeleteCategoryTitle")),
		"",
		s.TitleMuted.Render(v.deleteTargetName),
		body,
		"",
		lipgloss.JoinHorizontal(lipgloss.Center,
			s.ButtonPrimary.Render(" Y - "+tr.T("alertDelete")+" "),
			"  ",
			s.Button.Render(" N - "+tr.T("alertCancel")+" "),
		),
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
	return styles.CenterView(centered, v.width, v.height)
}
