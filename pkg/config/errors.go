package config

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrLoadingEnvFile is returned when a .env file cannot be read or parsed.
	ErrLoadingEnvFile = errors.New("failed to load env file")

	// ErrNoEnvFiles is returned when LoadFiles is called without paths.
	ErrNoEnvFiles = errors.New("no env files given")

	// ErrNilPointer is returned when a nil pointer is provided to a loader.
	ErrNilPointer = errors.New("nil pointer provided to config loader")
)
