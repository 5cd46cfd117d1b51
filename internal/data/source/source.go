// Package source loads the event record set from a configured backend.
package source

import (
	"context"
	"fmt"
	"time"

	"github.com/colonyops/eventboard/internal/core/config"
	"github.com/colonyops/eventboard/internal/core/event"
)

// Source produces a complete record set. Implementations must honor ctx
// cancellation and must return records with unique ids.
type Source interface {
	Load(ctx context.Context) ([]event.Event, error)
}

// Func adapts a function to Source.
type Func func(ctx context.Context) ([]event.Event, error)

func (f Func) Load(ctx context.Context) ([]event.Event, error) { return f(ctx) }

// New builds the source described by cfg.
func New(cfg config.SourceConfig) (Source, error) {
	switch cfg.Kind {
	case config.SourceMock, "":
		return &Mock{
			Count: cfg.Count,
			Delay: cfg.MockDelay(),
			Seed:  cfg.Seed,
		}, nil
	case config.SourceFile:
		return &File{Pattern: cfg.Path}, nil
	case config.SourceSQLite:
		return &SQLite{Path: cfg.Path}, nil
	default:
		return nil, fmt.Errorf("unknown source kind %q", cfg.Kind)
	}
}

// Describe returns a short human label for s.
func Describe(s Source) string {
	switch v := s.(type) {
	case *Mock:
		return fmt.Sprintf("mock (%d events)", v.count())
	case *File:
		return "file " + v.Pattern
	case *SQLite:
		return "sqlite " + v.Path
	default:
		return fmt.Sprintf("%T", s)
	}
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
