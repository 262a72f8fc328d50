package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromContext_RoundTrip(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	ctx := WithLogger(context.Background(), logger)

	require.Same(t, logger, FromContext(ctx))
	require.Same(t, slog.Default(), FromContext(context.Background()), "missing logger falls back to the default")
}

func TestNew_LevelAndFormat(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	logger := New("warn", "json", buf)
	logger.Info("hidden")
	logger.Warn("shown", "k", 1)

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), `"msg":"shown"`)

	buf.Reset()
	New("debug", "text", buf).Debug("dbg")
	require.Contains(t, buf.String(), "msg=dbg")
}
