package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"

	"github.com/colonyops/eventboard/internal/core/event"
	"github.com/colonyops/eventboard/internal/core/styles"
)

// MaxPageSize bounds grid.page_size.
const MaxPageSize = 500

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// Validate checks that the configuration is structurally valid.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		c.validateSource(),
		c.validateGrid(),
		c.validateTimeline(),
		criterio.Run("tui.theme", c.TUI.Theme, knownTheme),
	)
}

// ValidateDeep performs Validate plus checks that touch the filesystem: the
// config file itself and, for file sources, that the glob matches something.
// An empty configPath skips the config file check.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		c.validateSourceFiles(),
	)
}

// Warnings returns non-fatal configuration issues.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	if c.Source.Kind == SourceMock && c.Source.Watch {
		warnings = append(warnings, ValidationWarning{
			Category: "Source",
			Item:     "watch",
			Message:  "watch has no effect for the mock source",
		})
	}

	if c.Source.Kind == SourceSQLite && c.Source.Watch {
		warnings = append(warnings, ValidationWarning{
			Category: "Source",
			Item:     "watch",
			Message:  "watch has no effect for the sqlite source; press r to reload",
		})
	}

	if c.Source.Kind != SourceMock && c.Source.Seed != 0 {
		warnings = append(warnings, ValidationWarning{
			Category: "Source",
			Item:     "seed",
			Message:  fmt.Sprintf("seed has no effect for the %s source", c.Source.Kind),
		})
	}

	if len(c.Grid.HiddenColumns) >= len(event.ColumnKeys()) {
		warnings = append(warnings, ValidationWarning{
			Category: "Grid",
			Item:     "hidden_columns",
			Message:  "every column is hidden; the grid will be empty",
		})
	}

	return warnings
}

func (c *Config) validateSource() error {
	var errs criterio.FieldErrorsBuilder

	switch c.Source.Kind {
	case SourceMock:
		if c.Source.Count < 0 {
			errs = errs.Append("source.count", fmt.Errorf("must not be negative"))
		}
	case SourceFile:
		switch {
		case strings.TrimSpace(c.Source.Path) == "":
			errs = errs.Append("source.path", fmt.Errorf("required when kind is %q", SourceFile))
		case !doublestar.ValidatePattern(c.Source.Path):
			errs = errs.Append("source.path", fmt.Errorf("invalid glob %q", c.Source.Path))
		}
	case SourceSQLite:
		if strings.TrimSpace(c.Source.Path) == "" {
			errs = errs.Append("source.path", fmt.Errorf("required when kind is %q", SourceSQLite))
		}
	default:
		errs = errs.Append("source.kind", fmt.Errorf("must be one of %s, %s, %s", SourceMock, SourceFile, SourceSQLite))
	}

	if c.Source.Delay != nil && *c.Source.Delay < 0 {
		errs = errs.Append("source.delay", fmt.Errorf("must not be negative"))
	}
	if c.Source.Debounce < 0 {
		errs = errs.Append("source.debounce", fmt.Errorf("must not be negative"))
	}

	return errs.ToError()
}

func (c *Config) validateGrid() error {
	var errs criterio.FieldErrorsBuilder

	if c.Grid.PageSize < 1 || c.Grid.PageSize > MaxPageSize {
		errs = errs.Append("grid.page_size", fmt.Errorf("must be between 1 and %d", MaxPageSize))
	}

	known := event.ColumnKeys()
	for i, key := range c.Grid.HiddenColumns {
		if !slices.Contains(known, key) {
			errs = errs.Append(
				fmt.Sprintf("grid.hidden_columns[%d]", i),
				fmt.Errorf("unknown column %q (known: %s)", key, strings.Join(known, ", ")),
			)
		}
	}

	return errs.ToError()
}

func (c *Config) validateSourceFiles() error {
	if c.Source.Kind == SourceSQLite {
		info, err := os.Stat(c.Source.Path)
		if err != nil {
			return criterio.NewFieldErrors("source.path", fmt.Errorf("cannot access database: %w", err))
		}
		if info.IsDir() {
			return criterio.NewFieldErrors("source.path", fmt.Errorf("%s is a directory, not a database", c.Source.Path))
		}
		return nil
	}
	if c.Source.Kind != SourceFile {
		return nil
	}

	matches, err := doublestar.FilepathGlob(c.Source.Path)
	if err != nil {
		return criterio.NewFieldErrors("source.path", fmt.Errorf("glob: %w", err))
	}
	if len(matches) == 0 {
		return criterio.NewFieldErrors("source.path", fmt.Errorf("no files match %q", c.Source.Path))
	}
	return nil
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

func (c *Config) validateTimeline() error {
	if c.Timeline.Window < 1 {
		return criterio.NewFieldErrors("timeline.window", fmt.Errorf("must be at least 1"))
	}
	return nil
}

func knownTheme(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(styles.ThemeNames(), ", "))
	}
	return nil
}
