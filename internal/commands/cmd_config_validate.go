package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/eventboard/internal/core/config"
	"github.com/colonyops/eventboard/internal/core/styles"
)

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "eventboard config validate [options]",
				Description: "Validates the configuration file, checking field values, the theme name, and that a file source glob matches files.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

// validationOutput is the JSON output format for config validate.
type validationOutput struct {
	Valid    bool                       `json:"valid"`
	Errors   []string                   `json:"errors,omitempty"`
	Warnings []config.ValidationWarning `json:"warnings,omitempty"`
}

func (cmd *ConfigValidateCmd) run(_ context.Context, c *cli.Command) error {
	result := cmd.validate()

	if cmd.format == "json" {
		if err := writeJSON(c.Root().Writer, result); err != nil {
			return err
		}
	} else {
		cmd.outputText(c.Root().Writer, result)
	}

	if !result.Valid {
		return cli.Exit("", 1)
	}
	return nil
}

func (cmd *ConfigValidateCmd) validate() validationOutput {
	err := cmd.flags.ConfigErr
	if err == nil {
		err = cmd.flags.Config.ValidateDeep(cmd.flags.ConfigPath)
	}

	out := validationOutput{Valid: err == nil}
	if err != nil {
		out.Errors = fieldErrorLines(err)
		return out
	}
	out.Warnings = cmd.flags.Config.Warnings()
	return out
}

func (cmd *ConfigValidateCmd) outputText(w io.Writer, result validationOutput) {
	for _, warn := range result.Warnings {
		line := fmt.Sprintf("%s %s: %s", styles.IconNotifyWarning, warn.Category, warn.Message)
		_, _ = fmt.Fprintln(w, styles.TextWarningStyle.Render(line))
		if warn.Item != "" {
			_, _ = fmt.Fprintf(w, "  Item: %s\n", warn.Item)
		}
	}

	for _, line := range result.Errors {
		_, _ = fmt.Fprintln(w, styles.ErrorTextStyle.Render(styles.IconNotifyError+" "+line))
	}

	_, _ = fmt.Fprintln(w)
	if result.Valid {
		_, _ = fmt.Fprintln(w, styles.TextSuccessStyle.Render(styles.IconNotifySuccess+" Configuration is valid"))
		return
	}
	_, _ = fmt.Fprintln(w, styles.ErrorTextStyle.Render(fmt.Sprintf("%d error(s) found", len(result.Errors))))
}
