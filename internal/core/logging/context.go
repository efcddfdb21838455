package logging

import "context"

type contextKey string

const (
	formKey         contextKey = "form"
	submissionIDKey contextKey = "submission_id"
)

// WithForm adds the name of the form being filled to the context.
func WithForm(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, formKey, name)
}

// WithSubmissionID adds a submission ID to the context.
func WithSubmissionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, submissionIDKey, id)
}

// GetForm retrieves the form name from the context.
// Returns empty string if not present.
func GetForm(ctx context.Context) string {
	if name, ok := ctx.Value(formKey).(string); ok {
		return name
	}
	return ""
}

// GetSubmissionID retrieves the submission ID from the context.
// Returns empty string if not present.
func GetSubmissionID(ctx context.Context) string {
	if id, ok := ctx.Value(submissionIDKey).(string); ok {
		return id
	}
	return ""
}
