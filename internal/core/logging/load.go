package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// Load identifies one run of the data source.
type Load struct {
	Gen    uint64
	Source string
}

type loadKey struct{}

// WithLoad tags ctx with the load it belongs to.
func WithLoad(ctx context.Context, l Load) context.Context {
	return context.WithValue(ctx, loadKey{}, l)
}

// LoadFrom returns the load ctx was tagged with.
func LoadFrom(ctx context.Context) (Load, bool) {
	if ctx == nil {
		return Load{}, false
	}
	l, ok := ctx.Value(loadKey{}).(Load)
	return l, ok
}

// LoadHook copies the load tag of an event's context into the event as
// load_gen and source.
type LoadHook struct{}

func (LoadHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	l, ok := LoadFrom(e.GetCtx())
	if !ok {
		return
	}

	e.Uint64("load_gen", l.Gen)
	if l.Source != "" {
		e.Str("source", l.Source)
	}
}
