package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/eventboard/internal/commands"
	"github.com/colonyops/eventboard/internal/core/logging"
	"github.com/colonyops/eventboard/internal/core/styles"
	"github.com/colonyops/eventboard/internal/tui"
	"github.com/colonyops/eventboard/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, init() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func buildInfo() tui.BuildInfo {
	v, c, d := version, commit, date

	// When installed via `go install module@version`, ldflags aren't set
	// so version remains "dev". Fall back to runtime/debug.BuildInfo which
	// Go populates automatically with the module version and VCS metadata.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	if len(c) > 7 {
		c = c[:7]
	}
	return tui.BuildInfo{Version: v, Commit: c, Date: d}
}

func main() {
	ctx := context.Background()

	var logCloser func()

	flags := &commands.Flags{}
	build := buildInfo()

	app := commands.Root(flags, build)
	app.Version = fmt.Sprintf("%s (%s) %s", build.Version, build.Commit, build.Date)

	app.Before = func(ctx context.Context, c *cli.Command) (context.Context, error) {
		// Always log to a file so output never lands on the alt screen
		logFile := flags.LogFile
		if logFile == "" {
			logFile = commands.DefaultLogFile()
		}

		logger, closer, err := logutils.New(flags.LogLevel, logFile)
		if err != nil {
			return ctx, fmt.Errorf("setup logger: %w", err)
		}
		log.Logger = logger.Hook(logging.LoadHook{})
		logCloser = closer

		flags.LoadConfig()
		if flags.ConfigErr != nil {
			log.Warn().Err(flags.ConfigErr).Str("path", flags.ConfigPath).Msg("config not loaded")
		}

		// Apply configured theme (validation ensures name is valid)
		palette, _ := styles.GetPalette(flags.Config.TUI.Theme)
		styles.SetTheme(palette)
		if flags.Config.TUI.PlainIcons {
			styles.UsePlainIcons()
		}

		return ctx, nil
	}

	app.After = func(ctx context.Context, c *cli.Command) error {
		if logCloser != nil {
			logCloser()
		}
		return nil
	}

	exitCode := 0
	runErr := app.Run(ctx, os.Args)
	if runErr != nil {
		if msg := runErr.Error(); msg != "" {
			fmt.Println()
			fmt.Println(msg)
		}
		exitCode = 1
	}

	os.Exit(exitCode)
}
