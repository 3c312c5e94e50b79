package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromContext_Bare(t *testing.T) {
	// no ids stored: the default logger comes back untouched
	assert.Same(t, Logger(), FromContext(context.Background()))
}

func TestFromContext_Enriched(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-123")

	assert.NotSame(t, Logger(), FromContext(ctx))

	ctx = WithUserID(ctx, "user-456")
	assert.NotSame(t, Logger(), FromContext(ctx))
}

func TestFromContext_EmptyValuesIgnored(t *testing.T) {
	ctx := WithRequestID(context.Background(), "")

	assert.Same(t, Logger(), FromContext(ctx))
}
