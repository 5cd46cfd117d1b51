package commands

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/eventboard/internal/core/config"
	"github.com/colonyops/eventboard/internal/core/logging"
	"github.com/colonyops/eventboard/internal/data/source"
	"github.com/colonyops/eventboard/internal/profiler"
	"github.com/colonyops/eventboard/internal/tui"
)

type TuiCmd struct {
	flags *Flags
	build tui.BuildInfo

	watch        bool
	profilerPort int
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags, build tui.BuildInfo) *TuiCmd {
	return &TuiCmd{flags: flags, build: build}
}

// Flags returns the TUI-specific flags for registration on the root command
func (cmd *TuiCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "watch",
			Usage:       "reload when event files change (file source only); overrides source.watch",
			Sources:     cli.EnvVars("EVENTBOARD_WATCH"),
			Destination: &cmd.watch,
		},
		&cli.IntFlag{
			Name:        "profiler-port",
			Usage:       "enable pprof HTTP endpoint on localhost at the given port (e.g., 6060)",
			Sources:     cli.EnvVars("EVENTBOARD_PROFILER_PORT"),
			Destination: &cmd.profilerPort,
		},
	}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(ctx context.Context, c *cli.Command) error {
	cfg, err := cmd.flags.RequireConfig()
	if err != nil {
		return err
	}
	if c.IsSet("watch") {
		cfg.Source.Watch = cmd.watch
	}

	src, err := source.New(cfg.Source)
	if err != nil {
		return err
	}

	var warnings []string
	for _, w := range cfg.Warnings() {
		warnings = append(warnings, w.Message)
	}

	logger := logging.Component("tui")

	if cmd.profilerPort > 0 {
		profServer := profiler.New(cmd.profilerPort, logging.Component("profiler"))
		if err := profServer.Start(ctx); err != nil {
			return fmt.Errorf("failed to start profiler: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := profServer.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("failed to shutdown profiler server")
			}
		}()
		log.Info().Str("url", profServer.URL()).Msg("profiler endpoint available")
	}

	var watcher *source.Watcher
	if cfg.Source.Kind == config.SourceFile && cfg.Source.Watch {
		watcher, err = source.NewWatcher(cfg.Source.Path, cfg.Source.Debounce, logging.Component("watcher"))
		if err != nil {
			// the dashboard still works without live reload
			log.Warn().Err(err).Str("pattern", cfg.Source.Path).Msg("file watcher unavailable")
			warnings = append(warnings, fmt.Sprintf("Live reload disabled: %v", err))
		} else {
			defer func() {
				if err := watcher.Close(); err != nil {
					log.Error().Err(err).Msg("failed to close file watcher")
				}
			}()
		}
	}

	m := tui.New(cfg, tui.Options{
		Source:   src,
		Watcher:  watcher,
		Logger:   logger,
		Warnings: warnings,
		Build:    cmd.build,
	})

	logger.Info().
		Str("source", source.Describe(src)).
		Bool("watch", watcher != nil).
		Msg("starting dashboard")

	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
