package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formguard/pkg/logger"
)

type ctxKey struct{}

func requestIDExtractor(ctx context.Context) (slog.Attr, bool) {
	if v, ok := ctx.Value(ctxKey{}).(string); ok {
		return slog.String("request_id", v), true
	}
	return slog.Attr{}, false
}

func TestWithContextExtractors(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithContextExtractors(requestIDExtractor, nil),
	).With(logger.Component("guard"))

	log.InfoContext(context.WithValue(context.Background(), ctxKey{}, "r-1"), "hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "r-1", entry["request_id"])
	assert.Equal(t, "guard", entry["component"])

	buf.Reset()
	log.Info("no context value")
	assert.NotContains(t, buf.String(), "request_id")
}

func TestWithContext(t *testing.T) {
	t.Parallel()

	base := slog.NewJSONHandler(&bytes.Buffer{}, nil)
	assert.Same(t, base, logger.WithContext(base), "no extractors leaves the handler as is")
	assert.Same(t, base, logger.WithContext(base, nil))
	assert.NotSame(t, base, logger.WithContext(base, requestIDExtractor))

	buf := &bytes.Buffer{}
	log := slog.New(logger.WithContext(slog.NewJSONHandler(buf, nil), requestIDExtractor)).WithGroup("g")
	log.InfoContext(context.WithValue(context.Background(), ctxKey{}, "r-2"), "grouped", slog.Int("n", 1))
	assert.Contains(t, buf.String(), `"g":{"n":1,"request_id":"r-2"}`)
}
