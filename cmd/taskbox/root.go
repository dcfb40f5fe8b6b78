package main

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/tgienger/taskbox/internal/config"
	"github.com/tgienger/taskbox/internal/db"
	"github.com/tgienger/taskbox/internal/logging"
	"github.com/tgienger/taskbox/internal/settings"
	"github.com/tgienger/taskbox/internal/store"
	"github.com/tgienger/taskbox/internal/ui"
	"github.com/tgienger/taskbox/internal/ui/keys"
	"github.com/tgienger/taskbox/internal/ui/views"
	"github.com/tgienger/taskbox/internal/view"
)

var (
	configPath string
	dbPath     string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:           "taskbox",
	Short:         "A small terminal task list",
	Long:          "taskbox keeps a categorized task list in a local SQLite database.",
	Version:       version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context())
	},
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("taskbox %s (commit: %s, built: %s)\n", version, commit, date))
	rootCmd.Flags().StringVar(&configPath, "config", "", "path to config file (default $XDG_CONFIG_HOME/taskbox/config.toml)")
	rootCmd.Flags().StringVar(&dbPath, "db", "", "path to database file (overrides db_path in config)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (overrides log_level in config)")
}

func run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if configPath == "" {
		configPath = config.ResolveConfigPath()
	}
	cfg, err := config.LoadOrCreate(configPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	logger, logFile, err := logging.Open(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logFile.Close()

	path := cfg.DBPath
	if path == "" {
		if path, err = db.DefaultPath(); err != nil {
			return fmt.Errorf("error resolving database path: %w", err)
		}
	}
	database, err := db.Open(path)
	if errors.Is(err, db.ErrLocked) {
		return err
	}
	if err != nil {
		return fmt.Errorf("error initializing database: %w", err)
	}
	defer database.Close()
	logger.Info("database opened", "path", path)

	// Closed before the database so queued writes land
	writer := db.NewWriter(database, logger)
	defer writer.Close()

	prefs := settings.New(database, writer, settings.NewTerminalPlatform(), logger)
	prefs.Initialize(ctx)

	work := store.NewWorkspace(database, writer, logger)
	work.Load(ctx, prefs.Translator().T("defaultCategory"))

	env := views.NewEnv(work, prefs, keys.New(cfg.Keys))
	app := ui.NewApp(env, view.Filter(cfg.DefaultFilter))

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running application: %w", err)
	}
	return nil
}
