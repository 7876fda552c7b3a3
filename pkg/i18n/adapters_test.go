package i18n_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formguard/pkg/i18n"
)

func TestMapAdapter(t *testing.T) {
	t.Parallel()

	data := i18n.Translations{"en": {"REQUIRED": "%key% is required"}}
	adapter := &i18n.MapAdapter{Data: data}

	result, err := adapter.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, data, result)

	result["en"]["REQUIRED"] = "changed"
	assert.Equal(t, "%key% is required", data["en"]["REQUIRED"], "Load should return a copy")

	empty, err := (&i18n.MapAdapter{}).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestFileAdapter(t *testing.T) {
	t.Parallel()

	t.Run("loads JSON file with parser from extension", func(t *testing.T) {
		t.Parallel()
		adapter, err := i18n.NewFileAdapter(nil, filepath.Join("testdata", "messages.json"))
		require.NoError(t, err)

		result, err := adapter.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "%key% est obligatoire", result["fr"]["REQUIRED"])
		assert.Equal(t, "%key%: %value% is not a valid email", result["en"]["INVALID_EMAIL"])
	})

	t.Run("loads YAML file with explicit parser", func(t *testing.T) {
		t.Parallel()
		adapter, err := i18n.NewFileAdapter(i18n.NewYAMLParser(), filepath.Join("testdata", "messages", "en.yaml"))
		require.NoError(t, err)

		result, err := adapter.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Sign up", result["en"]["form.title"])
	})

	t.Run("rejects bad configuration", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewFileAdapter(nil, "")
		assert.ErrorIs(t, err, i18n.ErrEmptyPath)

		_, err = i18n.NewFileAdapter(nil, "messages.toml")
		assert.ErrorIs(t, err, i18n.ErrNilParser)
	})

	t.Run("returns error for missing file", func(t *testing.T) {
		t.Parallel()
		adapter, err := i18n.NewFileAdapter(nil, filepath.Join("testdata", "missing.yaml"))
		require.NoError(t, err)

		result, err := adapter.Load(context.Background())
		assert.Nil(t, result)
		assert.ErrorIs(t, err, i18n.ErrFailedToReadFile)
	})

	t.Run("returns error for empty file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "empty.yaml")
		require.NoError(t, os.WriteFile(path, nil, 0o644))

		adapter, err := i18n.NewFileAdapter(nil, path)
		require.NoError(t, err)

		_, err = adapter.Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrEmptyFile)
	})

	t.Run("respects cancelled context", func(t *testing.T) {
		t.Parallel()
		adapter, err := i18n.NewFileAdapter(nil, filepath.Join("testdata", "messages.json"))
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err = adapter.Load(ctx)
		assert.ErrorIs(t, err, i18n.ErrLoadingFileCancelled)
	})
}

func TestDirAdapter(t *testing.T) {
	t.Parallel()

	t.Run("merges supported files", func(t *testing.T) {
		t.Parallel()
		adapter, err := i18n.NewDirAdapter(i18n.NewYAMLParser(), filepath.Join("testdata", "messages"))
		require.NoError(t, err)

		result, err := adapter.Load(context.Background())
		require.NoError(t, err)
		assert.Len(t, result, 2)
		assert.Equal(t, "%key% is required", result["en"]["REQUIRED"])
		assert.Equal(t, "%key% ist erforderlich", result["de"]["REQUIRED"])
	})

	t.Run("fails without matching files", func(t *testing.T) {
		t.Parallel()
		adapter, err := i18n.NewDirAdapter(i18n.NewJSONParser(), filepath.Join("testdata", "messages"))
		require.NoError(t, err)

		_, err = adapter.Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrNoTranslationFiles)
	})

	t.Run("fails for missing directory", func(t *testing.T) {
		t.Parallel()
		adapter, err := i18n.NewDirAdapter(i18n.NewYAMLParser(), filepath.Join("testdata", "nope"))
		require.NoError(t, err)

		_, err = adapter.Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToReadDirectory)
	})

	t.Run("fails on broken file", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "en.yaml"), []byte("en: [broken"), 0o644))

		adapter, err := i18n.NewDirAdapter(i18n.NewYAMLParser(), dir)
		require.NoError(t, err)

		_, err = adapter.Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToParseFile)
	})

	t.Run("rejects bad configuration", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewDirAdapter(nil, "testdata")
		assert.ErrorIs(t, err, i18n.ErrNilParser)

		_, err = i18n.NewDirAdapter(i18n.NewYAMLParser(), "")
		assert.ErrorIs(t, err, i18n.ErrEmptyPath)
	})
}

func TestFSAdapter(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"locales/a.json": {Data: []byte(`{"en": {"REQUIRED": "first"}}`)},
		"locales/b.json": {Data: []byte(`{"en": {"REQUIRED": "second", "EXTRA": "x"}}`)},
		"locales/c.yaml": {Data: []byte("ignored: true")},
	}

	adapter, err := i18n.NewFSAdapter(i18n.NewJSONParser(), fsys, "locales")
	require.NoError(t, err)

	result, err := adapter.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "second", result["en"]["REQUIRED"], "later files override earlier ones")
	assert.Equal(t, "x", result["en"]["EXTRA"])

	_, err = i18n.NewFSAdapter(nil, fsys, "locales")
	assert.ErrorIs(t, err, i18n.ErrNilParser)
}
