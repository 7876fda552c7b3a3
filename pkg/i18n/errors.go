package i18n

import "errors"

var (
	// JSON operations
	ErrJSONParsingCancelled = errors.New("json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON content")

	// YAML operations
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")

	// Shared parser errors
	ErrInvalidStructure = errors.New("invalid translation structure")
	ErrNoTranslations   = errors.New("no translations found")

	// File operations
	ErrLoadingFileCancelled = errors.New("loading translation file cancelled")
	ErrFailedToReadFile     = errors.New("failed to read translation file")
	ErrFailedToParseFile    = errors.New("failed to parse translation file")
	ErrEmptyFile            = errors.New("translation file is empty")

	// Directory operations
	ErrFailedToReadDirectory     = errors.New("failed to read directory")
	ErrLoadingDirectoryCancelled = errors.New("loading from directory cancelled")
	ErrNoTranslationFiles        = errors.New("no translation files found")

	// Adapter configuration
	ErrNilParser  = errors.New("parser is nil")
	ErrEmptyPath  = errors.New("translation path is empty")
	ErrNilAdapter = errors.New("translation adapter is nil")

	// Catalog
	ErrFailedToLoadTranslations = errors.New("failed to load translations")
	ErrLanguageNotSupported     = errors.New("language not supported")
)
