package config

import (
	"errors"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const DefaultConfigFileName = "config.toml"

type Keymap struct {
	Quit       string `toml:"quit"`
	Add        string `toml:"add"`
	Up         string `toml:"up"`
	Down       string `toml:"down"`
	Left       string `toml:"left"`
	Right      string `toml:"right"`
	Toggle     string `toml:"toggle"`
	Delete     string `toml:"delete"`
	Category   string `toml:"category"`
	Categories string `toml:"categories"`
	Settings   string `toml:"settings"`
	Confirm    string `toml:"confirm"`
	Cancel     string `toml:"cancel"`
}

type Config struct {
	DBPath        string `toml:"db_path"`
	LogLevel      string `toml:"log_level"`
	DefaultFilter string `toml:"default_filter"`
	Keys          Keymap `toml:"keys"`
}

// ResolveConfigPath returns $XDG_CONFIG_HOME/taskbox/config.toml, falling
// back to ~/.config.
func ResolveConfigPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return DefaultConfigFileName
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "taskbox", DefaultConfigFileName)
}

// LoadOrCreate reads the config at path, writing the defaults there first
// when the file does not exist. Empty fields take their default value.
func LoadOrCreate(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	cfg.fillDefaults()
	return cfg, nil
}

func write(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Default returns the built-in configuration. DBPath is empty, meaning the
// XDG data directory.
func Default() Config {
	return Config{
		LogLevel:      "warn",
		DefaultFilter: "all",
		Keys:          defaultKeymap(),
	}
}

func defaultKeymap() Keymap {
	return Keymap{
		Quit:       "q",
		Add:        "a",
		Up:         "k",
		Down:       "j",
		Left:       "h",
		Right:      "l",
		Toggle:     " ",
		Delete:     "d",
		Category:   "c",
		Categories: "C",
		Settings:   "s",
		Confirm:    "enter",
		Cancel:     "esc",
	}
}

func (c *Config) fillDefaults() {
	def := Default()
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if c.DefaultFilter == "" {
		c.DefaultFilter = def.DefaultFilter
	}

	k, d := &c.Keys, def.Keys
	for _, f := range []struct {
		v   *string
		def string
	}{
		{&k.Quit, d.Quit}, {&k.Add, d.Add}, {&k.Up, d.Up}, {&k.Down, d.Down},
		{&k.Left, d.Left}, {&k.Right, d.Right}, {&k.Toggle, d.Toggle},
		{&k.Delete, d.Delete}, {&k.Category, d.Category},
		{&k.Categories, d.Categories}, {&k.Settings, d.Settings},
		{&k.Confirm, d.Confirm}, {&k.Cancel, d.Cancel},
	} {
		if *f.v == "" {
			*f.v = f.def
		}
	}
}
