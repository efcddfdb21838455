package commands

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"

	"github.com/colonyops/formgate/internal/core/config"
	"github.com/colonyops/formgate/internal/core/logging"
	"github.com/colonyops/formgate/internal/core/styles"
)

const secretMask = "********"

// submission is an accepted set of form values.
type submission struct {
	ID     string            `json:"submission_id"`
	Form   string            `json:"form"`
	Values map[string]string `json:"values"`

	order []string
}

// newSubmission records values for cf with a fresh ID. Secret values are
// masked.
func newSubmission(cf *config.CompiledForm, values map[string]string) submission {
	s := submission{
		ID:     uuid.NewString(),
		Form:   cf.Name,
		Values: make(map[string]string, len(values)),
		order:  make([]string, 0, len(cf.Fields)),
	}

	for _, f := range cf.Fields {
		v := values[f.Name]
		if f.Secret && v != "" {
			v = secretMask
		}
		s.Values[f.Name] = v
		s.order = append(s.order, f.Name)
	}

	return s
}

// log records the accepted submission and returns a context carrying its ID.
func (s submission) log(ctx context.Context, component string) context.Context {
	ctx = logging.WithSubmissionID(logging.WithForm(ctx, s.Form), s.ID)
	logger := logging.Component(component)
	logger.Info().Ctx(ctx).Int("fields", len(s.order)).Msg("form submitted")
	return ctx
}

func (s submission) print(w io.Writer) {
	_, _ = fmt.Fprintln(w, styles.TextSuccessStyle.Render("Submitted "+s.Form))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, name := range s.order {
		value := strings.ReplaceAll(s.Values[name], "\n", `\n`)
		_, _ = fmt.Fprintf(tw, "  %s\t%s\n", name, value)
	}
	_ = tw.Flush()

	_, _ = fmt.Fprintln(w, styles.TextMutedStyle.Render("submission id: "+s.ID))
}
