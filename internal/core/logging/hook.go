package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextHook extracts the form name and submission ID from context and adds
// them to log events.
type ContextHook struct{}

// Run adds contextual fields to the zerolog event.
func (h ContextHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	if ctx == context.Background() || ctx == nil {
		return
	}

	if name := GetForm(ctx); name != "" {
		e.Str("form", name)
	}

	if id := GetSubmissionID(ctx); id != "" {
		e.Str("submission_id", id)
	}
}
