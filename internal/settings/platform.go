package settings

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/tgienger/taskbox/internal/models"
)

// TerminalPlatform reads the locale from the POSIX locale variables and the
// theme from the terminal background color.
type TerminalPlatform struct {
	dark bool
}

// NewTerminalPlatform queries the terminal background. Call it before the
// UI takes over the terminal.
func NewTerminalPlatform() *TerminalPlatform {
	return &TerminalPlatform{dark: lipgloss.HasDarkBackground()}
}

func (p *TerminalPlatform) Locale() string {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

func (p *TerminalPlatform) Theme() models.ThemePreference {
	if p.dark {
		return models.ThemeDark
	}
	return models.ThemeLight
}
