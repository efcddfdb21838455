package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/formgate/internal/core/form"
	"github.com/colonyops/formgate/internal/core/logging"
	"github.com/colonyops/formgate/internal/tui/prompt"
)

type PromptCmd struct {
	flags *Flags

	// flags
	form      string
	altScreen bool
}

// NewPromptCmd creates a new prompt command
func NewPromptCmd(flags *Flags) *PromptCmd {
	return &PromptCmd{flags: flags}
}

// Register adds the prompt command to the application
func (cmd *PromptCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "prompt",
		Usage:     "Fill a form with sequential prompts",
		UsageText: "formgate prompt [--form NAME] [--alt-screen]",
		Description: `Asks for each field in turn. An input cannot be left while its value fails a
rule; the rule's message is shown next to it.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "form",
				Usage:       "name of the form to fill",
				Destination: &cmd.form,
			},
			&cli.BoolFlag{
				Name:        "alt-screen",
				Usage:       "run the prompt in the alternate screen buffer",
				Destination: &cmd.altScreen,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *PromptCmd) run(ctx context.Context, c *cli.Command) error {
	cf, err := cmd.flags.compile(cmd.form)
	if err != nil {
		return err
	}
	defer cf.Validator.Close()

	form.RegisterDebugLogger(cf.Validator, logging.Form("prompt", cf.Name))

	values, err := prompt.New(cf, prompt.Options{AltScreen: cmd.altScreen}).Run(ctx)
	if err != nil {
		if errors.Is(err, prompt.ErrAborted) {
			_, _ = fmt.Fprintln(c.Root().ErrWriter, "Cancelled.")
			return nil
		}
		return fmt.Errorf("prompt: %w", err)
	}

	s := newSubmission(cf, values)
	s.log(ctx, "prompt")
	s.print(c.Root().Writer)
	return nil
}
