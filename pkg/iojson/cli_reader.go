package iojson

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// FileReader decodes a JSON document of type T from the file named by its
// flag, or from stdin when the flag is unset.
type FileReader[T any] struct {
	fileFlagValue string
}

func (fr *FileReader[T]) Flag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "file",
		Aliases:     []string{"f"},
		Usage:       "path to JSON file (reads from stdin if not provided)",
		Destination: &fr.fileFlagValue,
	}
}

// HasInput reports whether Read has something to read: either the file flag
// is set or stdin is not a terminal.
func (fr *FileReader[T]) HasInput() bool {
	if fr.fileFlagValue != "" {
		return true
	}
	return !term.IsTerminal(int(os.Stdin.Fd()))
}

func (fr *FileReader[T]) Read() (T, error) {
	if fr.fileFlagValue != "" {
		f, err := os.Open(fr.fileFlagValue)
		if err != nil {
			var zero T
			return zero, fmt.Errorf("open file: %w", err)
		}
		defer func() { _ = f.Close() }()
		return ReadFrom[T](f)
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		var zero T
		return zero, fmt.Errorf("no input provided (stdin is a terminal); use -f flag or pipe JSON input")
	}
	return ReadFrom[T](os.Stdin)
}

// ReadFrom decodes a single JSON document of type T from r.
func ReadFrom[T any](r io.Reader) (T, error) {
	var input T
	if err := json.NewDecoder(r).Decode(&input); err != nil {
		return input, fmt.Errorf("decode JSON: %w", err)
	}
	return input, nil
}
