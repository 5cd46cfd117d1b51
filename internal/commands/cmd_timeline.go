package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/eventboard/internal/core/event"
	"github.com/colonyops/eventboard/internal/core/styles"
	"github.com/colonyops/eventboard/internal/core/timeline"
	"github.com/colonyops/eventboard/internal/tui/components"
)

type TimelineCmd struct {
	flags *Flags

	// flags
	window     int
	offset     int
	jsonOutput bool
}

// NewTimelineCmd creates a new timeline command
func NewTimelineCmd(flags *Flags) *TimelineCmd {
	return &TimelineCmd{flags: flags}
}

// Register adds the timeline command to the application
func (cmd *TimelineCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "timeline",
		Usage:     "Print events grouped by day",
		UsageText: "eventboard timeline [--window n] [--offset n] [--json]",
		Description: `Groups events by date in ascending order and prints the days inside the
carousel window. The offset is clamped so the window never runs past the
last day.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "window",
				Aliases:     []string{"w"},
				Usage:       "number of days to show (defaults to timeline.window)",
				Destination: &cmd.window,
			},
			&cli.IntFlag{
				Name:        "offset",
				Aliases:     []string{"o"},
				Usage:       "index of the first day to show",
				Destination: &cmd.offset,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output the visible days as JSON",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

// timelineOutput is the JSON output format for eventboard timeline --json.
type timelineOutput struct {
	Days       []dayOutput `json:"days"`
	Offset     int         `json:"offset"`
	Window     int         `json:"window"`
	TotalDays  int         `json:"total_days"`
	CanAdvance bool        `json:"can_advance"`
	CanRetreat bool        `json:"can_retreat"`
}

type dayOutput struct {
	Date   string        `json:"date"`
	Events []event.Event `json:"events"`
}

func (cmd *TimelineCmd) run(ctx context.Context, c *cli.Command) error {
	cfg, err := cmd.flags.RequireConfig()
	if err != nil {
		return err
	}

	window := cmd.window
	if window <= 0 {
		window = cfg.Timeline.Window
	}

	events, err := loadEvents(ctx, cfg.Source)
	if err != nil {
		return err
	}

	groups := timeline.GroupByDate(events)
	car := timeline.NewCarousel(window)
	car.SetTotal(len(groups))
	car.SetOffset(cmd.offset)
	visible := car.Visible(groups)

	out := c.Root().Writer

	if cmd.jsonOutput {
		days := make([]dayOutput, len(visible))
		for i, g := range visible {
			days[i] = dayOutput{Date: g.Date, Events: g.Events}
		}
		return writeJSON(out, timelineOutput{
			Days:       days,
			Offset:     car.Offset(),
			Window:     car.Window(),
			TotalDays:  car.Total(),
			CanAdvance: car.CanAdvance(),
			CanRetreat: car.CanRetreat(),
		})
	}

	if len(groups) == 0 {
		fmt.Fprintln(os.Stderr, "No events found")
		return nil
	}

	renderDays(out, visible)

	start, end := car.Bounds()
	_, _ = fmt.Fprintln(out, styles.MutedTextStyle.Render(
		fmt.Sprintf("days %d-%d of %d", start+1, end, car.Total()),
	))
	return nil
}

func renderDays(w io.Writer, days []timeline.DayGroup) {
	for i, g := range days {
		if i > 0 {
			_, _ = fmt.Fprintln(w)
		}
		_, _ = fmt.Fprintln(w, styles.DayHeaderStyle.Render(
			fmt.Sprintf("%s %s (%d)", styles.IconCalendar, g.Date, len(g.Events)),
		))
		for _, e := range g.Events {
			icon, style := components.StatusIcon(e.Status)
			line := "  " + style.Render(icon) + " " + e.Title
			if e.ID != "" {
				line += styles.MutedTextStyle.Render("  " + e.ID)
			}
			_, _ = fmt.Fprintln(w, line)
		}
	}
}
