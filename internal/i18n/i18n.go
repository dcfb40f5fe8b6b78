// Package i18n holds the UI string tables and locale helpers.
package i18n

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// Translator looks up UI strings for one locale
type Translator struct {
	locale string
}

// New returns a Translator for locale. Unsupported locales use BaseLocale.
func New(locale string) Translator {
	if !IsSupported(locale) {
		locale = BaseLocale
	}
	return Translator{locale: locale}
}

// Locale returns the locale the translator serves
func (t Translator) Locale() string {
	return t.locale
}

// T returns the string for key. vars are name/value pairs substituted for
// {{name}} placeholders. Missing keys fall back to the base table, then to
// the key itself.
func (t Translator) T(key string, vars ...string) string {
	s, ok := translations[t.locale][key]
	if !ok {
		s, ok = translations[BaseLocale][key]
	}
	if !ok {
		return key
	}
	if len(vars) < 2 {
		return s
	}

	pairs := make([]string, 0, len(vars))
	for i := 0; i+1 < len(vars); i += 2 {
		pairs = append(pairs, "{{"+vars[i]+"}}", vars[i+1])
	}
	return strings.NewReplacer(pairs...).Replace(s)
}

// IsSupported reports whether a string table exists for locale
func IsSupported(locale string) bool {
	_, ok := translations[locale]
	return ok
}

// Supported returns the locale codes with a string table, sorted
func Supported() []string {
	codes := make([]string, 0, len(translations))
	for code := range translations {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// LanguageCode extracts the language portion of an OS locale such as
// "tr_TR.UTF-8" or "pt-BR". It returns "" when raw names no language.
func LanguageCode(raw string) string {
	raw = strings.TrimSpace(raw)
	if i := strings.IndexAny(raw, ".@"); i >= 0 {
		raw = raw[:i]
	}
	raw = strings.ReplaceAll(raw, "_", "-")
	if raw == "" || raw == "C" || raw == "POSIX" {
		return ""
	}

	tag, err := language.Parse(raw)
	if err != nil {
		return ""
	}
	base, conf := tag.Base()
	if conf == language.No {
		return ""
	}
	return base.String()
}

// Language is an entry of the language picker
type Language struct {
	Code    string
	NameKey string
}

// Languages lists the choices offered for the language preference, in
// display order. Codes without a string table resolve to BaseLocale.
var Languages = []Language{
	{Code: "system", NameKey: "languageSystem"},
	{Code: "en", NameKey: "languageEN"},
	{Code: "tr", NameKey: "languageTR"},
	{Code: "de", NameKey: "languageDE"},
	{Code: "fr", NameKey: "languageFR"},
	{Code: "es", NameKey: "languageES"},
	{Code: "it", NameKey: "languageIT"},
	{Code: "pl", NameKey: "languagePL"},
	{Code: "ru", NameKey: "languageRU"},
	{Code: "pt", NameKey: "languagePT"},
	{Code: "ar", NameKey: "languageAR"},
	{Code: "el", NameKey: "languageEL"},
	{Code: "ja", NameKey: "languageJA"},
	{Code: "ko", NameKey: "languageKO"},
	{Code: "zh", NameKey: "languageZH"},
	{Code: "hi", NameKey: "languageHI"},
	{Code: "nl", NameKey: "languageNL"},
	{Code: "sv", NameKey: "languageSV"},
	{Code: "no", NameKey: "languageNO"},
	{Code: "da", NameKey: "languageDA"},
	{Code: "fi", NameKey: "languageFI"},
	{Code: "cs", NameKey: "languageCS"},
}
