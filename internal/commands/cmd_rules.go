package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/formgate/internal/core/config"
	"github.com/colonyops/formgate/internal/core/rules"
	"github.com/colonyops/formgate/internal/core/styles"
)

const defaultWrapWidth = 80

type RulesCmd struct {
	flags *Flags

	// flags
	raw bool
}

// NewRulesCmd creates a new rules command
func NewRulesCmd(flags *Flags) *RulesCmd {
	return &RulesCmd{flags: flags}
}

// Register adds the rules command to the application
func (cmd *RulesCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "rules",
		Usage:       "List available validation rules",
		UsageText:   "formgate rules [--raw]",
		Description: "Shows the built-in rules and any custom rules from the config file, with the message each reports.",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "raw",
				Usage:       "print markdown without rendering",
				Destination: &cmd.raw,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *RulesCmd) run(ctx context.Context, c *cli.Command) error {
	reg, err := cmd.flags.Config.Registry()
	if err != nil {
		return fmt.Errorf("build rules: %w", err)
	}

	md := rulesMarkdown(cmd.flags.Config, reg)
	out := c.Root().Writer

	if cmd.raw {
		_, err := fmt.Fprint(out, md)
		return err
	}

	width := defaultWrapWidth
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}

	rendered, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("render rules: %w", err)
	}

	_, err = fmt.Fprint(out, rendered)
	return err
}

// rulesMarkdown renders the registry as a markdown table, followed by the
// default rule assignments when any are configured.
func rulesMarkdown(cfg *config.Config, reg *rules.Registry) string {
	var b strings.Builder

	b.WriteString("# Rules\n\n")
	b.WriteString("| Name | Source | Message |\n")
	b.WriteString("|------|--------|---------|\n")
	for _, name := range reg.Names() {
		rule, _ := reg.Lookup(name)
		source := "built-in"
		if _, ok := cfg.Rules[name]; ok {
			source = "config"
		}
		fmt.Fprintf(&b, "| `%s` | %s | %s |\n", name, source, escapeCell(rule.Message))
	}

	if len(cfg.Defaults) > 0 {
		b.WriteString("\n## Defaults\n\n")
		b.WriteString("| Match | Rules |\n")
		b.WriteString("|-------|-------|\n")
		for _, d := range cfg.Defaults {
			fmt.Fprintf(&b, "| `%s` | %s |\n", d.Match, escapeCell(strings.Join(d.Rules, ", ")))
		}
	}

	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
