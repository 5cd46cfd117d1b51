package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/eventboard/internal/core/config"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string

	// Source and Events override source.kind and source.path.
	Source string
	Events string

	// Config is loaded in the Before hook and available to all commands.
	// When loading fails it holds the defaults and ConfigErr the failure.
	Config    *config.Config
	ConfigErr error
}

// GlobalFlags returns the flags shared by every command. They are bound to
// f so the Before hook and the commands see the parsed values.
func GlobalFlags(f *Flags) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (trace, debug, info, warn, error, fatal)",
			Sources:     cli.EnvVars("EVENTBOARD_LOG_LEVEL"),
			Value:       "info",
			Destination: &f.LogLevel,
		},
		&cli.StringFlag{
			Name:        "log-file",
			Usage:       "path to log file (the TUI defaults to the state directory)",
			Sources:     cli.EnvVars("EVENTBOARD_LOG_FILE"),
			Destination: &f.LogFile,
		},
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "path to config file",
			Sources:     cli.EnvVars("EVENTBOARD_CONFIG"),
			Value:       DefaultConfigPath(),
			Destination: &f.ConfigPath,
		},
		&cli.StringFlag{
			Name:        "source",
			Usage:       "event source kind (mock, file, sqlite); overrides source.kind",
			Sources:     cli.EnvVars("EVENTBOARD_SOURCE"),
			Destination: &f.Source,
		},
		&cli.StringFlag{
			Name:        "events",
			Usage:       "glob of YAML/JSON event files, or a database path with --source sqlite; implies --source file",
			Sources:     cli.EnvVars("EVENTBOARD_EVENTS"),
			Destination: &f.Events,
		},
	}
}

// LoadConfig loads the config file and applies the source flags. A failure
// is kept in ConfigErr rather than returned so `config validate` can report
// it; every other command calls RequireConfig.
func (f *Flags) LoadConfig() {
	cfg, err := config.Load(f.ConfigPath)
	if err != nil {
		defaults := config.DefaultConfig()
		f.Config, f.ConfigErr = &defaults, err
		return
	}

	f.applyOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		f.ConfigErr = fmt.Errorf("invalid flags: %w", err)
	}
	f.Config = cfg
}

// RequireConfig returns the loaded config, or the error that prevented
// loading it.
func (f *Flags) RequireConfig() (*config.Config, error) {
	if f.ConfigErr != nil {
		return nil, f.ConfigErr
	}
	return f.Config, nil
}

// applyOverrides copies source flags onto cfg.
func (f *Flags) applyOverrides(cfg *config.Config) {
	if f.Events != "" {
		cfg.Source.Kind = config.SourceFile
		cfg.Source.Path = f.Events
	}
	if f.Source != "" {
		cfg.Source.Kind = f.Source
	}
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "eventboard", "config.yaml")
}

// DefaultLogFile returns the default log file path using the system's state directory.
// On macOS: ~/Library/Logs/eventboard/eventboard.log
// On Linux: $XDG_STATE_HOME/eventboard/eventboard.log (defaults to ~/.local/state/eventboard/eventboard.log)
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "eventboard", "eventboard.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "eventboard", "eventboard.log")
	}

	return filepath.Join(home, ".local", "state", "eventboard", "eventboard.log")
}
