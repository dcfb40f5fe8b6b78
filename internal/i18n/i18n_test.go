package i18n

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTranslatorFallback(t *testing.T) {
	tests := []struct {
		name   string
		locale string
		key    string
		want   string
	}{
		{"own table", "tr", "uncategorized", "Kategorisiz"},
		{"stub table", "fr", "manageModalTitle", "Paramètres"},
		{"stub falls back to base", "fr", "uncategorized", "Uncategorized"},
		{"unsupported locale", "xx", "filterAll", "All"},
		{"unknown key", "en", "noSuchKey", "noSuchKey"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := New(tt.locale).T(tt.key); got != tt.want {
				t.Errorf("T(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestTranslatorInterpolation(t *testing.T) {
	got := New("en").T("headerSubtitle", "count", "3")
	if got != "3 tasks found" {
		t.Errorf("T() = %q, want %q", got, "3 tasks found")
	}
}

func TestNewUnsupportedLocale(t *testing.T) {
	if got := New("es").Locale(); got != BaseLocale {
		t.Errorf("Locale() = %q, want %q", got, BaseLocale)
	}
}

func TestLanguageCode(t *testing.T) {
	tests := map[string]string{
		"tr_TR.UTF-8":  "tr",
		"de_DE@euro":   "de",
		"pt-BR":        "pt",
		"en":           "en",
		"C":            "",
		"POSIX":        "",
		"":             "",
		"C.UTF-8":      "",
		"not a locale": "",
	}

	for raw, want := range tests {
		if got := LanguageCode(raw); got != want {
			t.Errorf("LanguageCode(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestSupported(t *testing.T) {
	want := []string{"de", "en", "fr", "tr"}
	if diff := cmp.Diff(want, Supported()); diff != "" {
		t.Errorf("Supported() mismatch (-want +got):\n%s", diff)
	}
}

func TestTurkishCoversBaseTable(t *testing.T) {
	for key := range translations[BaseLocale] {
		// Language names are shown in their own language
		if strings.HasPrefix(key, "language") && key != "languageTitle" && key != "languageSystem" {
			continue
		}
		if _, ok := translations["tr"][key]; !ok {
			t.Errorf("tr table missing %q", key)
		}
	}
}
