// Package logging provides component loggers and context-derived log fields.
package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Component creates a new logger with a component identifier.
// Uses the "cmp" key for consistency with zerolog conventions.
func Component(name string) zerolog.Logger {
	return log.With().Str("cmp", name).Logger()
}

// Form creates a component logger that also carries the form name.
func Form(component, form string) zerolog.Logger {
	return log.With().Str("cmp", component).Str("form", form).Logger()
}
