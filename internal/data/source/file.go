package source

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"
	"gopkg.in/yaml.v3"

	"github.com/colonyops/eventboard/internal/core/event"
)

// ErrNoFiles is returned when a File pattern matches nothing.
var ErrNoFiles = errors.New("no event files matched")

// File loads events from YAML or JSON fixture files matched by a doublestar
// glob. Each file holds either a list of events or a mapping with an
// "events" key. Files are read in sorted path order and concatenated.
type File struct {
	Pattern string
}

// fileDoc is the mapping form of a fixture file.
type fileDoc struct {
	Events []event.Event `yaml:"events"`
}

// Load reads and checks every matched file.
func (f *File) Load(ctx context.Context) ([]event.Event, error) {
	paths, err := f.Paths()
	if err != nil {
		return nil, err
	}

	var all []event.Event
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		events, err := readFile(path)
		if err != nil {
			return nil, err
		}
		all = append(all, events...)
	}

	if err := event.CheckUnique(all); err != nil {
		return nil, err
	}
	if all == nil {
		all = []event.Event{}
	}
	return all, nil
}

// Paths returns the matched files in sorted order.
func (f *File) Paths() ([]string, error) {
	matches, err := doublestar.FilepathGlob(f.Pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", f.Pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoFiles, f.Pattern)
	}
	slices.Sort(matches)
	return matches, nil
}

func readFile(path string) ([]event.Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	events, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := checkRecords(events); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return events, nil
}

// decode accepts a top level sequence or a mapping with an events key.
// yaml.v3 reads JSON documents as well.
func decode(data []byte) ([]event.Event, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return nil, nil
	}

	doc := root.Content[0]
	switch doc.Kind {
	case yaml.SequenceNode:
		var events []event.Event
		if err := doc.Decode(&events); err != nil {
			return nil, err
		}
		return events, nil
	case yaml.MappingNode:
		var fd fileDoc
		if err := doc.Decode(&fd); err != nil {
			return nil, err
		}
		return fd.Events, nil
	default:
		return nil, fmt.Errorf("expected a list of events or an events mapping")
	}
}

func checkRecords(events []event.Event) error {
	var errs criterio.FieldErrorsBuilder
	for i, e := range events {
		field := fmt.Sprintf("events[%d]", i)
		if e.ID == "" {
			errs = errs.Append(field+".id", fmt.Errorf("required"))
		}
		if !e.Status.IsValid() {
			errs = errs.Append(field+".status", fmt.Errorf("%w %q", event.ErrInvalidStatus, e.Status))
		}
		if !event.ValidDate(e.Date) {
			errs = errs.Append(field+".date", fmt.Errorf("must be %s, got %q", "YYYY-MM-DD", e.Date))
		}
	}
	return errs.ToError()
}
