package form

import (
	"github.com/colonyops/formgate/internal/core/config"
	"github.com/colonyops/formgate/internal/core/field"
)

// NewField creates the input matching a configured field: a select list when
// options are set, a text area for multiline fields, a masked input for
// secrets and a plain text input otherwise.
func NewField(spec config.FormField, v *field.Validator) Field {
	label := spec.DisplayLabel()
	switch {
	case len(spec.Options) > 0:
		return NewSelectField(label, spec.Options, v)
	case spec.Multiline:
		return NewTextAreaField(label, spec.Placeholder, v)
	case spec.Secret:
		return NewSecretField(label, spec.Placeholder, v)
	default:
		return NewTextField(label, spec.Placeholder, v)
	}
}

// FromCompiled builds a dialog for a compiled form.
func FromCompiled(cf *config.CompiledForm) *Dialog {
	validators := cf.Validator.Fields()
	fields := make([]Field, len(validators))
	for i, v := range validators {
		fields[i] = NewField(cf.Fields[i], v)
	}
	return NewDialog(cf.Title, fields, cf.Validator)
}
