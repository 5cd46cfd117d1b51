package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/eventboard/internal/core/event"
	"github.com/colonyops/eventboard/internal/core/eventform"
	"github.com/colonyops/eventboard/pkg/iojson"
)

type DraftCmd struct {
	flags     *Flags
	fr        *iojson.FileReader[eventform.Draft]
	validator eventform.Validator
}

// NewDraftCmd creates a new draft command
func NewDraftCmd(flags *Flags) *DraftCmd {
	return &DraftCmd{
		flags:     flags,
		fr:        &iojson.FileReader[eventform.Draft]{},
		validator: eventform.New(),
	}
}

// Register adds the draft command to the application
func (cmd *DraftCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "draft",
		Usage:     "Validate an event draft and print the resulting record",
		UsageText: "eventboard draft [-f file.json]",
		Description: `Reads a draft from a JSON file, from piped stdin, or interactively when
stdin is a terminal, and validates it the same way the dashboard form does.

Valid drafts are printed as the event record JSON, with a fresh id when the
draft has none. Invalid drafts exit non-zero. Interactive runs print one line
per field; file or stdin input gets a JSON error on stderr:

  {"message": "invalid draft", "fields": {"title": "Title is required"}}

Example input:
  {"title": "Launch", "date": "2026-10-18", "status": "in-progress"}`,
		Flags:  []cli.Flag{cmd.fr.Flag()},
		Action: cmd.run,
	})

	return app
}

func (cmd *DraftCmd) run(ctx context.Context, c *cli.Command) error {
	var (
		draft eventform.Draft
		err   error
	)

	scripted := cmd.fr.HasInput()
	if scripted {
		draft, err = cmd.fr.Read()
		if err != nil {
			return fmt.Errorf("read draft: %w", err)
		}
	} else {
		draft, err = runDraftForm(time.Now())
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("form: %w", err)
		}
	}

	ev, err := cmd.validator.Validate(draft)
	if err != nil {
		if !scripted {
			printFieldErrors(os.Stderr, err)
			return cli.Exit("", 1)
		}
		if werr := iojson.WriteError(errWriter(c), iojson.Error{
			Message: "invalid draft",
			Fields:  eventform.Messages(err),
		}); werr != nil {
			return werr
		}
		return cli.Exit("", 1)
	}

	return writeJSON(c.Root().Writer, ev)
}

// errWriter is the root command's error writer, or stderr when unset.
func errWriter(c *cli.Command) io.Writer {
	if w := c.Root().ErrWriter; w != nil {
		return w
	}
	return os.Stderr
}

// runDraftForm asks for each draft field. The date defaults to today.
func runDraftForm(now time.Time) (eventform.Draft, error) {
	draft := eventform.Draft{
		Date:   now.Format(event.DateLayout),
		Status: string(event.StatusNotStarted),
	}

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("What is happening?").
				Value(&draft.Title),
			huh.NewInput().
				Title("Date").
				Description(event.DateLayout).
				Value(&draft.Date),
			huh.NewSelect[string]().
				Title("Status").
				Options(huh.NewOptions(event.StatusNames()...)...).
				Value(&draft.Status),
			huh.NewText().
				Title("Description").
				Description("Markdown supported").
				Value(&draft.Description),
		),
	).WithTheme(huh.ThemeCharm()).Run()

	return draft, err
}
