package commands

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/formgate/internal/core/form"
	"github.com/colonyops/formgate/internal/core/logging"
	"github.com/colonyops/formgate/internal/tui/fill"
)

type FillCmd struct {
	flags *Flags

	// flags
	form string
}

// NewFillCmd creates a new fill command
func NewFillCmd(flags *Flags) *FillCmd {
	return &FillCmd{flags: flags}
}

// Flags returns the fill flags, shared with the root command for the
// default action.
func (cmd *FillCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "form",
			Usage:       "name of the form to fill",
			Destination: &cmd.form,
		},
	}
}

// Register adds the fill command to the application
func (cmd *FillCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "fill",
		Usage:     "Fill a form interactively",
		UsageText: "formgate fill [--form NAME]",
		Description: `Opens the interactive form. Every keystroke validates the focused field and
shows its first failing rule below it.

The submit button is enabled only while every field is valid. Pressing enter on it
re-validates all fields; on success the values and a submission id are printed.`,
		Flags:  cmd.Flags(),
		Action: cmd.Run,
	})

	return app
}

// Run executes the fill program.
func (cmd *FillCmd) Run(ctx context.Context, c *cli.Command) error {
	cf, err := cmd.flags.compile(cmd.form)
	if err != nil {
		return err
	}
	defer cf.Validator.Close()

	form.RegisterDebugLogger(cf.Validator, logging.Form("fill", cf.Name))

	p := tea.NewProgram(fill.New(cf), tea.WithContext(ctx))

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("run fill: %w", err)
	}

	result := finalModel.(fill.Model).Result()
	if result.Cancelled {
		_, _ = fmt.Fprintln(c.Root().ErrWriter, "Cancelled.")
		return nil
	}

	s := newSubmission(cf, result.Values)
	s.log(ctx, "fill")
	s.print(c.Root().Writer)
	return nil
}
