package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Component returns the global logger tagged with a component name under
// the "cmp" key.
func Component(name string) zerolog.Logger {
	return Tag(log.Logger, name)
}

// Tag returns l tagged with a component name. Packages that accept an
// injected logger use it so tests can capture output without touching the
// global logger.
func Tag(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("cmp", name).Logger()
}
