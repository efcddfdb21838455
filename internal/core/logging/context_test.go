package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextValues(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetForm(ctx))
	assert.Empty(t, GetSubmissionID(ctx))

	ctx = WithForm(ctx, "signup")
	ctx = WithSubmissionID(ctx, "sub-123")

	assert.Equal(t, "signup", GetForm(ctx))
	assert.Equal(t, "sub-123", GetSubmissionID(ctx))
}
