// Package settings holds the theme and language preferences and resolves
// them, together with the OS state, into the active theme and locale.
package settings

import (
	"context"
	"log/slog"

	"github.com/tgienger/taskbox/internal/db"
	"github.com/tgienger/taskbox/internal/i18n"
	"github.com/tgienger/taskbox/internal/models"
)

// Reader reads persisted values
type Reader interface {
	Get(ctx context.Context, key string) (string, bool, error)
}

// Writer schedules persisted values
type Writer interface {
	Put(key, value string)
}

// Platform reports OS state the preferences may defer to
type Platform interface {
	// Locale returns the raw OS locale, e.g. "tr_TR.UTF-8"
	Locale() string
	// Theme returns ThemeLight or ThemeDark
	Theme() models.ThemePreference
}

// State holds the user's preferences
type State struct {
	reader   Reader
	writer   Writer
	platform Platform
	logger   *slog.Logger

	theme     models.ThemePreference
	language  string
	listeners []func()
}

// New returns a State with both preferences set to system
func New(reader Reader, writer Writer, platform Platform, logger *slog.Logger) *State {
	if logger == nil {
		logger = slog.Default()
	}
	return &State{
		reader:   reader,
		writer:   writer,
		platform: platform,
		logger:   logger.With("component", "settings"),
		theme:    models.ThemeSystem,
		language: models.LanguageSystem,
	}
}

// Initialize loads the stored preferences. Missing or unreadable values
// leave the system default in place. The active locale is resolvable once
// Initialize returns.
func (s *State) Initialize(ctx context.Context) {
	if v, ok := s.load(ctx, db.ThemeKey); ok {
		s.theme = models.ThemePreference(v)
	}
	if v, ok := s.load(ctx, db.LanguageKey); ok {
		s.language = v
	}
	s.logger.Debug("settings loaded",
		"theme", s.theme,
		"language", s.language,
		"locale", s.ActiveLocale())
}

func (s *State) load(ctx context.Context, key string) (string, bool) {
	v, ok, err := s.reader.Get(ctx, key)
	if err != nil {
		s.logger.Warn("failed to read setting", "key", key, "error", err)
		return "", false
	}
	return v, ok && v != ""
}

// ThemePreference returns the stored theme choice
func (s *State) ThemePreference() models.ThemePreference {
	return s.theme
}

// LanguagePreference returns the stored language choice
func (s *State) LanguagePreference() string {
	return s.language
}

// SetThemePreference updates the theme choice and persists it. Values
// outside the known set are kept and resolve to the light palette.
func (s *State) SetThemePreference(pref models.ThemePreference) {
	s.theme = pref
	s.writer.Put(db.ThemeKey, string(pref))
	s.notify()
}

// SetLanguagePreference updates the language choice and persists it.
// Unsupported codes are kept and resolve to the base locale.
func (s *State) SetLanguagePreference(pref string) {
	s.language = pref
	s.writer.Put(db.LanguageKey, pref)
	s.notify()
}

// Subscribe registers fn to run after every preference change
func (s *State) Subscribe(fn func()) {
	s.listeners = append(s.listeners, fn)
}

func (s *State) notify() {
	for _, fn := range s.listeners {
		fn()
	}
}

// ActiveLocale resolves the language preference against the OS locale
func (s *State) ActiveLocale() string {
	return ResolveLocale(s.language, s.platform.Locale())
}

// ActiveTheme resolves the theme preference against the OS theme. It is
// always ThemeLight or ThemeDark.
func (s *State) ActiveTheme() models.ThemePreference {
	return ResolveTheme(s.theme, s.platform.Theme())
}

// Translator returns the string table for the active locale
func (s *State) Translator() i18n.Translator {
	return i18n.New(s.ActiveLocale())
}

// ResolveLocale returns the locale to display for a language preference
func ResolveLocale(pref, osLocale string) string {
	code := pref
	if pref == models.LanguageSystem {
		code = i18n.LanguageCode(osLocale)
	}
	if !i18n.IsSupported(code) {
		return i18n.BaseLocale
	}
	return code
}

// ResolveTheme returns the concrete theme for a preference. Unknown values
// resolve to ThemeLight.
func ResolveTheme(pref, osTheme models.ThemePreference) models.ThemePreference {
	if pref == models.ThemeSystem {
		pref = osTheme
	}
	if pref == models.ThemeDark {
		return models.ThemeDark
	}
	return models.ThemeLight
}
