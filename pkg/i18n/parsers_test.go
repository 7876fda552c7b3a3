package i18n_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formguard/pkg/i18n"
)

func TestJSONParser(t *testing.T) {
	t.Parallel()
	parser := i18n.NewJSONParser()

	t.Run("parses languages and flattens nested codes", func(t *testing.T) {
		t.Parallel()
		content := `{
			"en": {
				"REQUIRED": "%key% is required",
				"form": {"title": "Sign up"},
				"count": 3
			},
			"fr": {"REQUIRED": "%key% est obligatoire"}
		}`

		result, err := parser.Parse(context.Background(), content)
		require.NoError(t, err)

		assert.Equal(t, "%key% is required", result["en"]["REQUIRED"])
		assert.Equal(t, "Sign up", result["en"]["form.title"])
		assert.Equal(t, "3", result["en"]["count"])
		assert.Equal(t, "%key% est obligatoire", result["fr"]["REQUIRED"])
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		t.Parallel()
		result, err := parser.Parse(context.Background(), `{"en": {"a": "b",}}`)
		require.Error(t, err)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, i18n.ErrFailedToParseJSON)
	})

	t.Run("rejects non-object language", func(t *testing.T) {
		t.Parallel()
		_, err := parser.Parse(context.Background(), `{"en": "hello"}`)
		assert.ErrorIs(t, err, i18n.ErrInvalidStructure)
	})

	t.Run("rejects empty document", func(t *testing.T) {
		t.Parallel()
		_, err := parser.Parse(context.Background(), `{}`)
		assert.ErrorIs(t, err, i18n.ErrNoTranslations)
	})

	t.Run("respects cancelled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := parser.Parse(ctx, `{"en": {"a": "b"}}`)
		assert.ErrorIs(t, err, i18n.ErrJSONParsingCancelled)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("supported extensions", func(t *testing.T) {
		t.Parallel()
		assert.True(t, parser.SupportsFileExtension("json"))
		assert.True(t, parser.SupportsFileExtension(".JSON"))
		assert.False(t, parser.SupportsFileExtension("yaml"))
	})
}

func TestYAMLParser(t *testing.T) {
	t.Parallel()
	parser := i18n.NewYAMLParser()

	t.Run("parses languages and flattens nested codes", func(t *testing.T) {
		t.Parallel()
		content := `
en:
  REQUIRED: "%key% is required"
  form:
    title: Sign up
de:
  REQUIRED: "%key% ist erforderlich"
`
		result, err := parser.Parse(context.Background(), content)
		require.NoError(t, err)

		assert.Equal(t, "%key% is required", result["en"]["REQUIRED"])
		assert.Equal(t, "Sign up", result["en"]["form.title"])
		assert.Equal(t, "%key% ist erforderlich", result["de"]["REQUIRED"])
	})

	t.Run("rejects malformed YAML", func(t *testing.T) {
		t.Parallel()
		_, err := parser.Parse(context.Background(), "en:\n  a: [unclosed")
		assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
	})

	t.Run("rejects scalar language", func(t *testing.T) {
		t.Parallel()
		_, err := parser.Parse(context.Background(), "en: hello")
		assert.ErrorIs(t, err, i18n.ErrInvalidStructure)
	})

	t.Run("respects cancelled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := parser.Parse(ctx, "en:\n  a: b")
		assert.ErrorIs(t, err, i18n.ErrYAMLParsingCancelled)
	})

	t.Run("supported extensions", func(t *testing.T) {
		t.Parallel()
		assert.True(t, parser.SupportsFileExtension("yaml"))
		assert.True(t, parser.SupportsFileExtension(".yml"))
		assert.False(t, parser.SupportsFileExtension("json"))
	})
}

func TestNewParserForFile(t *testing.T) {
	t.Parallel()

	assert.IsType(t, &i18n.JSONParser{}, i18n.NewParserForFile("messages.json"))
	assert.IsType(t, &i18n.YAMLParser{}, i18n.NewParserForFile("messages.YML"))
	assert.IsType(t, &i18n.YAMLParser{}, i18n.NewParserForFile("dir/en.yaml"))
	assert.Nil(t, i18n.NewParserForFile("messages.toml"))
	assert.Nil(t, i18n.NewParserForFile("messages"))
}
