package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// NewApp builds the root command with global flags and every subcommand
// registered. Running it with no subcommand opens the fill program.
func NewApp(flags *Flags, version string) *cli.Command {
	app := &cli.Command{
		Name:      "formgate",
		Usage:     "Fill and validate forms in the terminal",
		UsageText: "formgate [global options] command [command options]",
		Description: `formgate validates form fields against ordered rule lists. Each field reports
the message of its first failing rule, and a form is valid only while every
field is.

Run 'formgate' with no arguments to fill the default form interactively.
Run 'formgate check' to validate values from flags or JSON.`,
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("FORMGATE_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to <data-dir>/formgate.log)",
				Sources:     cli.EnvVars("FORMGATE_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("FORMGATE_CONFIG"),
				Value:       DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("FORMGATE_DATA_DIR"),
				Value:       DefaultDataDir(),
				Destination: &flags.DataDir,
			},
		},
	}

	fillCmd := NewFillCmd(flags)

	app = fillCmd.Register(app)
	app = NewPromptCmd(flags).Register(app)
	app = NewCheckCmd(flags).Register(app)
	app = NewRulesCmd(flags).Register(app)
	app = NewFormsCmd(flags).Register(app)

	// Register fill flags on root command
	app.Flags = append(app.Flags, fillCmd.Flags()...)

	// Set fill as default action when no subcommand is provided
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'formgate --help' for usage", c.Args().First())
		}
		return fillCmd.Run(ctx, c)
	}

	return app
}
