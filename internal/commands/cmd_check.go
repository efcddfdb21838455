package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/formgate/internal/core/config"
	"github.com/colonyops/formgate/internal/core/form"
	"github.com/colonyops/formgate/internal/core/logging"
	"github.com/colonyops/formgate/internal/core/styles"
	"github.com/colonyops/formgate/pkg/iojson"
)

// ErrValidationFailed is returned by check when at least one field fails.
var ErrValidationFailed = errors.New("validation failed")

type CheckCmd struct {
	flags *Flags

	// flags
	form       string
	sets       []string
	jsonOutput bool
	input      iojson.FileReader[map[string]string]
}

// NewCheckCmd creates a new check command
func NewCheckCmd(flags *Flags) *CheckCmd {
	return &CheckCmd{flags: flags}
}

// Register adds the check command to the application
func (cmd *CheckCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "check",
		Usage:     "Validate form values without a UI",
		UsageText: "formgate check [--form NAME] [--set name=value ...] [--file PATH] [--json]",
		Description: `Validates every field of a form and reports the first failing rule of each.

Values come from a JSON object of field names to strings (--file, or piped stdin
when no --set is given) and from --set flags, which take precedence.

Exits non-zero when any field is invalid.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "form",
				Usage:       "name of the form to check",
				Destination: &cmd.form,
			},
			&cli.StringSliceFlag{
				Name:        "set",
				Usage:       "field value as name=value (repeatable)",
				Destination: &cmd.sets,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON",
				Destination: &cmd.jsonOutput,
			},
			cmd.input.Flag(),
		},
		Action: cmd.run,
	})

	return app
}

// fieldResult is the outcome for one field.
type fieldResult struct {
	Name  string `json:"name"`
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// checkResult is the JSON output format for formgate check --json.
type checkResult struct {
	Form         string        `json:"form"`
	Valid        bool          `json:"valid"`
	SubmissionID string        `json:"submission_id,omitempty"`
	Fields       []fieldResult `json:"fields"`
}

func (cmd *CheckCmd) run(ctx context.Context, c *cli.Command) error {
	cf, err := cmd.flags.compile(cmd.form)
	if err != nil {
		return err
	}
	defer cf.Validator.Close()

	form.RegisterDebugLogger(cf.Validator, logging.Form("check", cf.Name))

	if err := cmd.apply(c, cf.Validator); err != nil {
		return err
	}

	result := checkResult{
		Form:  cf.Name,
		Valid: cf.Validator.ValidateAll(),
	}
	for _, f := range cf.Validator.Fields() {
		msg, _ := f.Error()
		result.Fields = append(result.Fields, fieldResult{Name: f.Name(), Valid: f.Valid(), Error: msg})
	}

	if result.Valid {
		s := newSubmission(cf, cf.Validator.Values())
		s.log(ctx, "check")
		result.SubmissionID = s.ID
	}

	out := c.Root().Writer
	if cmd.jsonOutput {
		if err := iojson.WriteWith(out, c.Root().ErrWriter, result); err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
	} else {
		printCheck(out, cf, result)
	}

	if !result.Valid {
		return ErrValidationFailed
	}
	return nil
}

// apply loads values from JSON input and --set flags into the form.
func (cmd *CheckCmd) apply(c *cli.Command, v *form.Validator) error {
	if cmd.input.Path() != "" || len(cmd.sets) == 0 {
		cmd.input.Stdin = c.Root().Reader
		values, err := cmd.input.Read()
		if err != nil {
			return fmt.Errorf("read values: %w", err)
		}
		for _, name := range slices.Sorted(maps.Keys(values)) {
			if err := v.SetValue(name, values[name]); err != nil {
				return err
			}
		}
	}

	for _, kv := range cmd.sets {
		name, value, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("invalid --set %q: expected name=value", kv)
		}
		if err := v.SetValue(name, value); err != nil {
			return err
		}
	}

	return nil
}

func printCheck(w io.Writer, cf *config.CompiledForm, result checkResult) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "FIELD\tSTATUS\tMESSAGE")
	for _, f := range result.Fields {
		status := styles.TextSuccessStyle.Render("ok")
		if !f.Valid {
			status = styles.TextErrorStyle.Render("invalid")
		}
		label := f.Name
		if spec, ok := cf.FieldSpec(f.Name); ok {
			label = spec.DisplayLabel()
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", label, status, f.Error)
	}
	_ = tw.Flush()

	if result.Valid {
		_, _ = fmt.Fprintln(w, styles.TextMutedStyle.Render("submission id: "+result.SubmissionID))
	}
}
