package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tgienger/taskbox/internal/models"
)

// Theme represents a color scheme for the application
type Theme struct {
	Name   string
	IsDark bool

	// Base colors
	Background    lipgloss.Color
	Foreground    lipgloss.Color
	ForegroundDim lipgloss.Color

	// Accent colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color

	// Semantic colors
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color

	// UI element colors
	Border      lipgloss.Color
	BorderFocus lipgloss.Color
	Selection   lipgloss.Color
	Cursor      lipgloss.Color
}

// Light is the palette used for light backgrounds
var Light = Theme{
	Name:   "light",
	IsDark: false,

	Background:    lipgloss.Color("#f7f8fa"),
	Foreground:    lipgloss.Color("#333333"),
	ForegroundDim: lipgloss.Color("#888888"),

	Primary:   lipgloss.Color("#000000"),
	Secondary: lipgloss.Color("#ffffff"),
	Accent:    lipgloss.Color("#3498db"),

	Success: lipgloss.Color("#2ecc71"),
	Warning: lipgloss.Color("#e67e22"),
	Error:   lipgloss.Color("#e74c3c"),
	Info:    lipgloss.Color("#3498db"),

	Border:      lipgloss.Color("#eeeeee"),
	BorderFocus: lipgloss.Color("#000000"),
	Selection:   lipgloss.Color("#f0f0f0"),
	Cursor:      lipgloss.Color("#333333"),
}

// Dark is the palette used for dark backgrounds
var Dark = Theme{
	Name:   "dark",
	IsDark: true,

	Background:    lipgloss.Color("#1a1a1a"),
	Foreground:    lipgloss.Color("#f5f5f5"),
	ForegroundDim: lipgloss.Color("#999999"),

	Primary:   lipgloss.Color("#ffffff"),
	Secondary: lipgloss.Color("#2c2c2c"),
	Accent:    lipgloss.Color("#3498db"),

	Success: lipgloss.Color("#2ecc71"),
	Warning: lipgloss.Color("#f1c40f"),
	Error:   lipgloss.Color("#e74c3c"),
	Info:    lipgloss.Color("#3498db"),

	Border:      lipgloss.Color("#444444"),
	BorderFocus: lipgloss.Color("#ffffff"),
	Selection:   lipgloss.Color("#3b3b3b"),
	Cursor:      lipgloss.Color("#f5f5f5"),
}

// ForTheme returns the palette for a resolved theme
func ForTheme(theme models.ThemePreference) Theme {
	if theme == models.ThemeDark {
		return Dark
	}
	return Light
}

// MaxWidth is the maximum content width for the app (classic terminal width)
const MaxWidth = 80

// ContentWidth returns the actual content width to use (min of terminal width and MaxWidth)
func ContentWidth(terminalWidth int) int {
	if terminalWidth > MaxWidth {
		return MaxWidth
	}
	return terminalWidth
}

// CenterView wraps content and centers it horizontally if terminal is wider than MaxWidth
func CenterView(content string, terminalWidth, terminalHeight int) string {
	if terminalWidth <= MaxWidth {
		return content
	}
	return lipgloss.Place(terminalWidth, terminalHeight,
		lipgloss.Center, lipgloss.Top,
		content,
	)
}

// Styles holds all the pre-computed styles for the UI
type Styles struct {
	// Titles
	Title      lipgloss.Style
	TitleMuted lipgloss.Style

	// Lists
	ListItem     lipgloss.Style
	ListSelected lipgloss.Style

	// Filter bar
	FilterBar    lipgloss.Style
	FilterButton lipgloss.Style

	// Buttons
	Button        lipgloss.Style
	ButtonPrimary lipgloss.Style

	// Category chips
	Chip lipgloss.Style

	// Task item
	TaskTitle lipgloss.Style
	TaskDone  lipgloss.Style
	Error     lipgloss.Style

	// Input fields
	InputFocused lipgloss.Style

	// Help text
	Help    lipgloss.Style
	HelpKey lipgloss.Style

	theme Theme
}

// Theme returns the palette the styles were built from
func (s *Styles) Theme() Theme {
	return s.theme
}

// Swatch renders a colored bullet for a category color
func Swatch(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("●")
}

// NewStyles creates styles for theme t
func NewStyles(t Theme) *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		TitleMuted: lipgloss.NewStyle().
			Foreground(t.ForegroundDim),

		ListItem: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Padding(0, 2),

		ListSelected: lipgloss.NewStyle().
			Foreground(t.Primary).
			Background(t.Selection).
			Padding(0, 2).
			Bold(true),

		FilterBar: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border),

		FilterButton: lipgloss.NewStyle().
			Foreground(t.ForegroundDim).
			Padding(0, 1),

		Button: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 2),

		ButtonPrimary: lipgloss.NewStyle().
			Foreground(t.Background).
			Background(t.Primary).
			Padding(0, 2).
			Bold(true),

		Chip: lipgloss.NewStyle().
			Padding(0, 1).
			MarginRight(1),

		TaskTitle: lipgloss.NewStyle().
			Foreground(t.Foreground),

		TaskDone: lipgloss.NewStyle().
			Foreground(t.ForegroundDim).
			Strikethrough(true),

		Error: lipgloss.NewStyle().
			Foreground(t.Error).
			Bold(true),

		InputFocused: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocus).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(t.ForegroundDim).
			Padding(1, 2),

		HelpKey: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		theme: t,
	}
}
