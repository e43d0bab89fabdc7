package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestIDField(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	Set(zap.New(core))
	t.Cleanup(func() { Set(zap.NewNop()) })

	ctx := WithRequestID(context.Background(), "req-1")
	Infof(ctx, "[estimate][usecase] create success estimate_id=%s", "est-1")
	Warnf(context.Background(), "[estimate][usecase] no request")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "[estimate][usecase] create success estimate_id=est-1", entries[0].Message)
	assert.Equal(t, "req-1", entries[0].ContextMap()["request_id"])
	assert.NotContains(t, entries[1].ContextMap(), "request_id")
}

func TestInit(t *testing.T) {
	l, err := Init("not-a-level")
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zap.InfoLevel))
	assert.False(t, l.Core().Enabled(zap.DebugLevel))
	Set(zap.NewNop())
}
