package keys

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/tgienger/taskbox/internal/config"
)

// KeyMap defines the key bindings used by every view
type KeyMap struct {
	Quit       key.Binding
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Add        key.Binding
	Toggle     key.Binding
	Delete     key.Binding
	Category   key.Binding
	Categories key.Binding
	Settings   key.Binding
	Enter      key.Binding
	Back       key.Binding
	Tab        key.Binding
}

// New builds the bindings from the configured keymap
func New(km config.Keymap) KeyMap {
	return KeyMap{
		Quit:       key.NewBinding(key.WithKeys(km.Quit, "ctrl+c")),
		Up:         key.NewBinding(key.WithKeys(km.Up, "up")),
		Down:       key.NewBinding(key.WithKeys(km.Down, "down")),
		Left:       key.NewBinding(key.WithKeys(km.Left, "left")),
		Right:      key.NewBinding(key.WithKeys(km.Right, "right")),
		Add:        key.NewBinding(key.WithKeys(km.Add)),
		Toggle:     key.NewBinding(key.WithKeys(km.Toggle, "x")),
		Delete:     key.NewBinding(key.WithKeys(km.Delete)),
		Category:   key.NewBinding(key.WithKeys(km.Category)),
		Categories: key.NewBinding(key.WithKeys(km.Categories)),
		Settings:   key.NewBinding(key.WithKeys(km.Settings)),
		Enter:      key.NewBinding(key.WithKeys(km.Confirm)),
		Back:       key.NewBinding(key.WithKeys(km.Cancel)),
		Tab:        key.NewBinding(key.WithKeys("tab")),
	}
}

// Default returns the bindings for the default keymap
func Default() KeyMap {
	return New(config.Default().Keys)
}

// Label returns the first key of a binding for help text
func Label(b key.Binding) string {
	k := b.Keys()
	if len(k) == 0 {
		return ""
	}
	if k[0] == " " {
		return "space"
	}
	return k[0]
}
