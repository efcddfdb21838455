package commands

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/formgate/pkg/iojson"
)

type FormsCmd struct {
	flags *Flags

	// flags
	jsonOutput bool
}

// NewFormsCmd creates a new forms command
func NewFormsCmd(flags *Flags) *FormsCmd {
	return &FormsCmd{flags: flags}
}

// Register adds the forms command to the application
func (cmd *FormsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "forms",
		Usage:       "List configured forms",
		UsageText:   "formgate forms [--json]",
		Description: "Displays every form with its fields and the rules applied to each field, in evaluation order.",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines, one per field",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

// formFieldInfo is the JSON output format for formgate forms --json.
type formFieldInfo struct {
	Form  string   `json:"form"`
	Field string   `json:"field"`
	Label string   `json:"label"`
	Rules []string `json:"rules"`
}

func (cmd *FormsCmd) run(ctx context.Context, c *cli.Command) error {
	cfg := cmd.flags.Config
	out := c.Root().Writer

	var infos []formFieldInfo
	for _, name := range cfg.FormNames() {
		for _, f := range cfg.Forms[name].Fields {
			infos = append(infos, formFieldInfo{
				Form:  name,
				Field: f.Name,
				Label: f.DisplayLabel(),
				Rules: cfg.RuleNames(f),
			})
		}
	}

	if cmd.jsonOutput {
		for _, info := range infos {
			if err := iojson.WriteLine(out, info); err != nil {
				return fmt.Errorf("encode field: %w", err)
			}
		}
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "FORM\tFIELD\tLABEL\tRULES")
	for _, info := range infos {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", info.Form, info.Field, info.Label, strings.Join(info.Rules, ", "))
	}
	return w.Flush()
}
