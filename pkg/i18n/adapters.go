package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path"
)

// Adapter loads translations from a source.
type Adapter interface {
	Load(ctx context.Context) (Translations, error)
}

// MapAdapter serves translations from memory.
type MapAdapter struct {
	Data Translations
}

// Load implements the Adapter interface. The result is a copy of Data.
func (a *MapAdapter) Load(_ context.Context) (Translations, error) {
	result := make(Translations, len(a.Data))
	for lang, messages := range a.Data {
		result[lang] = maps.Clone(messages)
	}
	return result, nil
}

// FileAdapter loads translations from a single file.
type FileAdapter struct {
	parser Parser
	path   string
}

// NewFileAdapter creates a new FileAdapter. When parser is nil it is
// picked from the file extension.
func NewFileAdapter(parser Parser, path string) (*FileAdapter, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	if parser == nil {
		parser = NewParserForFile(path)
	}
	if parser == nil {
		return nil, fmt.Errorf("%w: unsupported file %q", ErrNilParser, path)
	}
	return &FileAdapter{parser: parser, path: path}, nil
}

// Load implements the Adapter interface.
func (a *FileAdapter) Load(ctx context.Context) (Translations, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingFileCancelled, err)
	}

	content, err := os.ReadFile(a.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	return parseFile(ctx, a.parser, a.path, content)
}

// DirAdapter loads every file in a directory that its parser supports.
// Files are read in name order; a later file overrides codes of an earlier
// one for the same language.
type DirAdapter struct {
	parser Parser
	path   string
}

// NewDirAdapter creates a new DirAdapter.
func NewDirAdapter(parser Parser, path string) (*DirAdapter, error) {
	if parser == nil {
		return nil, ErrNilParser
	}
	if path == "" {
		return nil, ErrEmptyPath
	}
	return &DirAdapter{parser: parser, path: path}, nil
}

// Load implements the Adapter interface.
func (a *DirAdapter) Load(ctx context.Context) (Translations, error) {
	return loadDir(ctx, os.DirFS(a.path), ".", a.parser)
}

// FSAdapter loads translations from a directory of an fs.FS, typically an
// embed.FS.
type FSAdapter struct {
	parser Parser
	fsys   fs.FS
	dir    string
}

// NewFSAdapter creates a new FSAdapter. An empty dir means the root of fsys.
func NewFSAdapter(parser Parser, fsys fs.FS, dir string) (*FSAdapter, error) {
	if parser == nil {
		return nil, ErrNilParser
	}
	if fsys == nil {
		return nil, fmt.Errorf("%w: nil filesystem", ErrEmptyPath)
	}
	if dir == "" {
		dir = "."
	}
	return &FSAdapter{parser: parser, fsys: fsys, dir: dir}, nil
}

// Load implements the Adapter interface.
func (a *FSAdapter) Load(ctx context.Context) (Translations, error) {
	return loadDir(ctx, a.fsys, a.dir, a.parser)
}

func loadDir(ctx context.Context, fsys fs.FS, dir string, parser Parser) (Translations, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingDirectoryCancelled, err)
	}

	// fs.ReadDir returns entries sorted by name.
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDirectory, err)
	}

	result := make(Translations)
	found := false
	for _, entry := range entries {
		if entry.IsDir() || !parser.SupportsFileExtension(getFileExtension(entry.Name())) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingDirectoryCancelled, err)
		}

		name := path.Join(dir, entry.Name())
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}
		translations, err := parseFile(ctx, parser, name, content)
		if err != nil {
			return nil, err
		}

		for lang, messages := range translations {
			if result[lang] == nil {
				result[lang] = make(map[string]string, len(messages))
			}
			maps.Copy(result[lang], messages)
		}
		found = true
	}

	if !found {
		return nil, fmt.Errorf("%w in %q", ErrNoTranslationFiles, dir)
	}
	return result, nil
}

func parseFile(ctx context.Context, parser Parser, name string, content []byte) (Translations, error) {
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyFile, name)
	}
	translations, err := parser.Parse(ctx, string(content))
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, fmt.Errorf("%q", name), err)
	}
	return translations, nil
}
