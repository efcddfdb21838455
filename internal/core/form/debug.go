package form

import "github.com/rs/zerolog"

// RegisterDebugLogger logs every validity propagation of v at debug level.
func RegisterDebugLogger(v *Validator, logger zerolog.Logger) {
	v.OnChange(func(valid bool) {
		logger.Debug().
			Bool("valid", valid).
			Int("failing", v.FailingCount()).
			Int("fields", v.Len()).
			Msg("form validity recomputed")
	})
}
