package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/eventboard/internal/tui"
)

// Root builds the eventboard command tree. The TUI is the default action.
// Callers add the Before/After hooks that set up logging and config.
func Root(flags *Flags, build tui.BuildInfo) *cli.Command {
	tuiCmd := NewTuiCmd(flags, build)

	app := &cli.Command{
		Name:      "eventboard",
		Usage:     "Browse, filter, and edit a set of dated events",
		UsageText: "eventboard [global options] command [command options]",
		Description: `Eventboard loads a set of events from a mock generator or from YAML/JSON
files and shows them as a sortable, filterable grid and a day-by-day
timeline. Events can be added and edited from the dashboard.

Run 'eventboard' with no arguments to open the interactive dashboard.
Run 'eventboard ls' or 'eventboard timeline' for plain output.`,
		EnableShellCompletion: true,
		Flags:                 GlobalFlags(flags),
	}

	app = NewLsCmd(flags).Register(app)
	app = NewTimelineCmd(flags).Register(app)
	app = NewDraftCmd(flags).Register(app)
	app = NewConfigValidateCmd(flags).Register(app)

	// Register TUI flags on root command
	app.Flags = append(app.Flags, tuiCmd.Flags()...)

	// Set TUI as default action when no subcommand is provided
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'eventboard --help' for usage", c.Args().First())
		}
		return tuiCmd.Run(ctx, c)
	}

	return app
}
