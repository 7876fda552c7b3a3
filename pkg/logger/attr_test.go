package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formguard/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("rule", slog.String("type", "string"), slog.Int("depth", 2))
	require.Equal(t, "rule", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "type", g[0].Key)
	assert.Equal(t, "depth", g[1].Key)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	empty := logger.Errors(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestRuleKey(t *testing.T) {
	t.Run("string key", func(t *testing.T) {
		attr := logger.RuleKey("email")
		assert.Equal(t, "key", attr.Key)
		assert.Equal(t, "email", attr.Value.String())
	})

	t.Run("integer key", func(t *testing.T) {
		attr := logger.RuleKey(3)
		assert.Equal(t, slog.KindInt64, attr.Value.Kind())
		assert.Equal(t, int64(3), attr.Value.Int64())
	})

	t.Run("nil key", func(t *testing.T) {
		assert.True(t, logger.RuleKey(nil).Equal(slog.Attr{}))
	})

	t.Run("other key types are formatted", func(t *testing.T) {
		attr := logger.RuleKey(int64(7))
		assert.Equal(t, "7", attr.Value.String())
	})
}

func TestSimpleAttrs(t *testing.T) {
	assert.Equal(t, "component", logger.Component("validator").Key)
	assert.Equal(t, "rule", logger.RuleType("and").Key)
	assert.Equal(t, "REQUIRED", logger.Code("REQUIRED").Value.String())
	assert.Equal(t, "lang", logger.Language("fr").Key)
	assert.Equal(t, "duration", logger.Duration("1s").Key)
}
