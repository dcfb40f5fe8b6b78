package models

// Task represents a single to-do item
type Task struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Completed bool    `json:"completed"`
	Category  *string `json:"category"` // nil when uncategorized
}

// HasCategory reports whether the task references the given category id
func (t Task) HasCategory(id string) bool {
	return t.Category != nil && *t.Category == id
}

// Category represents a user-defined grouping with a display color
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// ThemePreference is the user's theme choice
type ThemePreference string

const (
	ThemeSystem ThemePreference = "system"
	ThemeLight  ThemePreference = "light"
	ThemeDark   ThemePreference = "dark"
)

// LanguageSystem follows the OS locale
const LanguageSystem = "system"

// DefaultCategoryID is the id of the category seeded on first run
const DefaultCategoryID = "1"

// Colors offered when creating a category. The first is the default.
var CategoryPalette = []string{
	"#e74c3c", "#f1c40f", "#2ecc71", "#3498db", "#9b59b6",
	"#e67e22", "#1abc9c", "#34495e", "#bdc3c7",
}

const (
	// NeutralColor is used by the seeded category and the uncategorized sentinel
	NeutralColor = "#bdc3c7"
	// DeletedColor marks tasks whose category no longer exists
	DeletedColor = "#7f8c8d"
)

// StringPtr returns a pointer to s
func StringPtr(s string) *string {
	return &s
}
