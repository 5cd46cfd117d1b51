package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	lipgloss "charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/eventboard/internal/core/config"
	"github.com/colonyops/eventboard/internal/core/event"
	"github.com/colonyops/eventboard/internal/core/grid"
	"github.com/colonyops/eventboard/internal/core/styles"
	"github.com/colonyops/eventboard/internal/data/source"
	"github.com/colonyops/eventboard/pkg/tmpl"
)

type LsCmd struct {
	flags *Flags

	// flags
	filters    []string
	sortKey    string
	desc       bool
	page       int
	pageSize   int
	jsonOutput bool
	format     string
}

// NewLsCmd creates a new ls command
func NewLsCmd(flags *Flags) *LsCmd {
	return &LsCmd{flags: flags}
}

// Register adds the ls command to the application
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ls",
		Usage:     "List events as a filtered, sorted page",
		UsageText: "eventboard ls [--filter key=value]... [--sort key [--desc]] [--page n] [--json | --format tmpl]",
		Description: `Loads the configured source and prints one page of events.

Filters match a case-insensitive substring of the column value and may be
repeated; every filter must match. Column keys: ` + strings.Join(event.ColumnKeys(), ", ") + `.

--format applies a Go template to each event on the page, for example
'{{ .Date }} {{ pad 12 .Status }} {{ .Title }}'. A newline is added after
each row unless the template ends with one.`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:        "filter",
				Aliases:     []string{"f"},
				Usage:       "column filter as key=value (repeatable)",
				Destination: &cmd.filters,
			},
			&cli.StringFlag{
				Name:        "sort",
				Aliases:     []string{"s"},
				Usage:       "column key to sort by",
				Destination: &cmd.sortKey,
			},
			&cli.BoolFlag{
				Name:        "desc",
				Usage:       "sort descending",
				Destination: &cmd.desc,
			},
			&cli.IntFlag{
				Name:        "page",
				Usage:       "page number, starting at 1",
				Value:       1,
				Destination: &cmd.page,
			},
			&cli.IntFlag{
				Name:        "page-size",
				Usage:       "rows per page (defaults to grid.page_size)",
				Destination: &cmd.pageSize,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output the page as JSON",
				Destination: &cmd.jsonOutput,
			},
			&cli.StringFlag{
				Name:        "format",
				Usage:       "Go template applied to each event (fields: ID, Title, Date, Status, Description)",
				Destination: &cmd.format,
			},
		},
		ShellComplete: ColumnKeyCompleter(),
		Action:        cmd.run,
	})

	return app
}

// lsOutput is the JSON output format for eventboard ls --json.
type lsOutput struct {
	Events        []event.Event `json:"events"`
	Page          int           `json:"page"`
	PageSize      int           `json:"page_size"`
	TotalPages    int           `json:"total_pages"`
	TotalFiltered int           `json:"total_filtered"`
}

func (cmd *LsCmd) run(ctx context.Context, c *cli.Command) error {
	cfg, err := cmd.flags.RequireConfig()
	if err != nil {
		return err
	}

	q, err := cmd.query(cfg.Grid.PageSize)
	if err != nil {
		return err
	}

	if cmd.jsonOutput && cmd.format != "" {
		return fmt.Errorf("--json and --format are mutually exclusive")
	}

	var rowTmpl *tmpl.Template
	if cmd.format != "" {
		format := cmd.format
		if !strings.HasSuffix(format, "\n") {
			format += "\n"
		}
		if rowTmpl, err = tmpl.Parse(format); err != nil {
			return fmt.Errorf("invalid --format: %w", err)
		}
	}

	columns := grid.HideColumns(event.Columns(), cfg.Grid.HiddenColumns)
	if err := grid.ValidateQuery(columns, q); err != nil {
		printFieldErrors(os.Stderr, err)
		return cli.Exit("", 1)
	}

	events, err := loadEvents(ctx, cfg.Source)
	if err != nil {
		return err
	}

	res := grid.Project(events, columns, q)
	out := c.Root().Writer

	if cmd.jsonOutput {
		rows := res.Rows
		if rows == nil {
			rows = []event.Event{}
		}
		return writeJSON(out, lsOutput{
			Events:        rows,
			Page:          res.Page,
			PageSize:      res.PageSize,
			TotalPages:    res.TotalPages,
			TotalFiltered: res.TotalFiltered,
		})
	}

	if res.Empty() {
		fmt.Fprintln(os.Stderr, "No events found")
		return nil
	}

	if rowTmpl != nil {
		for _, e := range res.Rows {
			if err := rowTmpl.Execute(out, e); err != nil {
				return fmt.Errorf("event %s: %w", e.ID, err)
			}
		}
		return nil
	}

	renderTable(out, grid.VisibleColumns(columns), q, res)
	return nil
}

// query builds the projection query from the command flags.
func (cmd *LsCmd) query(defaultPageSize int) (grid.Query, error) {
	filters, err := parseFilters(cmd.filters)
	if err != nil {
		return grid.Query{}, err
	}

	pageSize := cmd.pageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	dir := grid.Asc
	if cmd.desc {
		dir = grid.Desc
	}

	return grid.Query{
		Filters:   filters,
		SortKey:   cmd.sortKey,
		Direction: dir,
		Page:      cmd.page,
		PageSize:  pageSize,
	}, nil
}

// parseFilters turns key=value pairs into a filter map. A repeated key keeps
// the last value.
func parseFilters(pairs []string) (map[string]string, error) {
	filters := make(map[string]string, len(pairs))
	for _, p := range pairs {
		key, value, ok := strings.Cut(p, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid filter %q: expected key=value", p)
		}
		filters[key] = value
	}
	return filters, nil
}

func renderTable(w io.Writer, columns []grid.Column[event.Event], q grid.Query, res grid.Result[event.Event]) {
	headers := make([]string, len(columns))
	for i, col := range columns {
		h := strings.ToUpper(col.Label)
		if col.Key == q.SortKey {
			arrow := styles.IconSortAsc
			if q.Direction == grid.Desc {
				arrow = styles.IconSortDesc
			}
			h += " " + arrow
		}
		headers[i] = h
	}

	rows := make([][]string, len(res.Rows))
	for i, e := range res.Rows {
		row := make([]string, len(columns))
		for j, col := range columns {
			row[j] = grid.Stringify(col.Value(e))
		}
		rows[i] = row
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styles.TableBorderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.TableHeaderStyle
			}
			return styles.TableCellStyle
		})

	_, _ = fmt.Fprintln(w, t.Render())
	_, _ = fmt.Fprintln(w, styles.MutedTextStyle.Render(
		fmt.Sprintf("page %d/%d, %d events", res.Page, max(res.TotalPages, 1), res.TotalFiltered),
	))
}

// loadEvents builds the configured source and loads it once.
func loadEvents(ctx context.Context, cfg config.SourceConfig) ([]event.Event, error) {
	src, err := source.New(cfg)
	if err != nil {
		return nil, err
	}

	events, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load events from %s: %w", source.Describe(src), err)
	}
	return events, nil
}
