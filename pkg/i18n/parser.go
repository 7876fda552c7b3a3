package i18n

import (
	"context"
	"fmt"
	"strings"
)

// Translations maps a language tag to its message table (code → template).
type Translations map[string]map[string]string

// Parser decodes a translation document. The document's top-level keys are
// language tags; nested objects below a language are flattened into dotted
// codes.
type Parser interface {
	Parse(ctx context.Context, content string) (Translations, error)

	// SupportsFileExtension reports whether ext (with or without the leading
	// dot) is handled by this parser.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns a parser based on the file extension, or nil when
// the extension is unknown.
func NewParserForFile(filename string) Parser {
	ext := getFileExtension(filename)

	switch strings.ToLower(ext) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}

func getFileExtension(filename string) string {
	if idx := strings.LastIndex(filename, "."); idx != -1 {
		return filename[idx+1:]
	}
	return ""
}

// toTranslations converts a decoded document into Translations.
func toTranslations(data map[string]any) (Translations, error) {
	result := make(Translations, len(data))
	for lang, val := range data {
		table, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q: expected map, got %T", ErrInvalidStructure, lang, val)
		}
		messages := make(map[string]string)
		flatten("", table, messages)
		result[lang] = messages
	}

	if len(result) == 0 {
		return nil, ErrNoTranslations
	}
	return result, nil
}

func flatten(prefix string, src map[string]any, dst map[string]string) {
	for k, v := range src {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]any:
			flatten(key, val, dst)
		case string:
			dst[key] = val
		case nil:
			dst[key] = ""
		default:
			dst[key] = fmt.Sprint(val)
		}
	}
}
