// Command seed writes a generated event set for trying out the file and
// sqlite sources:
//
//	go run ./cmd/seed --count 50 events.yaml
//	eventboard --events events.yaml --watch
//
//	go run ./cmd/seed --count 500 events.db
//	eventboard --source sqlite --events events.db
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/colonyops/eventboard/internal/core/event"
	"github.com/colonyops/eventboard/internal/data/source"
)

func main() {
	var (
		count int
		seed  uint64
	)

	app := &cli.Command{
		Name:      "seed",
		Usage:     "Write a generated event set to a YAML file or SQLite database",
		UsageText: "seed [--count n] [--seed n] [path]",
		Description: `Paths ending in .db or .sqlite are written as a SQLite database whose
events table is replaced. Anything else is written as YAML.`,
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "count", Value: 30, Usage: "number of events to generate", Destination: &count},
			&cli.Uint64Flag{Name: "seed", Usage: "random seed (0 = time based)", Destination: &seed},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			outPath := "events.yaml"
			if c.Args().Present() {
				outPath = c.Args().First()
			}

			events := (&source.Mock{Count: count, Seed: seed}).Generate()
			if err := write(ctx, outPath, events); err != nil {
				return err
			}

			fmt.Printf("Wrote %d events to %s\n", len(events), outPath)
			return nil
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func write(ctx context.Context, outPath string, events []event.Event) error {
	switch filepath.Ext(outPath) {
	case ".db", ".sqlite":
		return source.WriteSQLite(ctx, outPath, events)
	}

	doc := struct {
		Events []event.Event `yaml:"events"`
	}{Events: events}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode events: %w", err)
	}

	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	return nil
}
