package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/eventboard/internal/core/event"
)

// ColumnKeyCompleter returns a ShellCompleteFunc that suggests column keys
// as "key=" filter prefixes.
//
// When the user's last typed argument starts with "-", it falls back to the
// default flag completion behavior.
func ColumnKeyCompleter() cli.ShellCompleteFunc {
	return func(ctx context.Context, cmd *cli.Command) {
		if args := cmd.Args(); args.Present() {
			last := args.Slice()[args.Len()-1]
			if len(last) > 0 && last[0] == '-' {
				cli.DefaultCompleteWithFlags(ctx, cmd)
				return
			}
		}

		w := cmd.Root().Writer
		for _, col := range event.Columns() {
			if !col.Filterable() {
				continue
			}
			_, _ = fmt.Fprintf(w, "%s=\n", col.Key)
		}
	}
}
