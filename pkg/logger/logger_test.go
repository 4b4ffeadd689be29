package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	logger1 := Get()
	require.NotNil(t, logger1)

	logger2 := Get()
	assert.Same(t, logger1, logger2)
}

func TestFromCtx(t *testing.T) {
	ctx := WithCtx(context.Background(), Get())
	assert.Same(t, Get(), FromCtx(ctx))
}

func TestWithCtxSameLogger(t *testing.T) {
	ctx := WithCtx(context.Background(), Get())
	assert.Same(t, ctx, WithCtx(ctx, Get()))
}
