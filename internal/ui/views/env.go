package views

import (
	"strings"

	"github.com/tgienger/taskbox/internal/i18n"
	"github.com/tgienger/taskbox/internal/settings"
	"github.com/tgienger/taskbox/internal/store"
	"github.com/tgienger/taskbox/internal/ui/keys"
	"github.com/tgienger/taskbox/internal/ui/styles"
)

// Env is the state every view reads from
type Env struct {
	Work     *store.Workspace
	Settings *settings.State
	Keys     keys.KeyMap
	Styles   *styles.Styles
	Tr       i18n.Translator
}

// NewEnv builds an Env for the current preferences
func NewEnv(work *store.Workspace, prefs *settings.State, km keys.KeyMap) *Env {
	e := &Env{Work: work, Settings: prefs, Keys: km}
	e.Refresh()
	return e
}

// Refresh rebuilds styles and strings from the active preferences
func (e *Env) Refresh() {
	e.Styles = styles.NewStyles(styles.ForTheme(e.Settings.ActiveTheme()))
	e.Tr = e.Settings.Translator()
}

// hint renders key and description pairs as "key desc • key desc".
// Descriptions are translation keys.
func (e *Env) hint(pairs ...string) string {
	var parts []string
	for i := 0; i+1 < len(pairs); i += 2 {
		parts = append(parts, e.Styles.HelpKey.Render(pairs[i])+" "+e.Tr.T(pairs[i+1]))
	}
	return strings.Join(parts, " • ")
}

// Navigation messages
type (
	ShowTasks      struct{}
	ShowCategories struct{}
	ShowSettings   struct{}
)

func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}
