package config

import (
	"errors"
	"os"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// cache holds one parsed value per configuration type.
type cache struct {
	mu     sync.Mutex
	values map[reflect.Type]any
}

var (
	globalCache = &cache{values: make(map[reflect.Type]any)}

	defaultEnvLoaded sync.Once
)

// Load parses the process environment into v. The default .env file in the
// working directory is read once, if present, without overriding variables
// that are already set. The first successful result per type is cached and
// later calls for the same type return it.
//
//	var cfg validator.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	defaultEnvLoaded.Do(func() {
		// a missing .env is not an error
		_ = godotenv.Load()
	})

	typ := reflect.TypeFor[T]()

	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()

	if cached, ok := globalCache.values[typ]; ok {
		*v = cached.(T)
		return nil
	}

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	globalCache.values[typ] = parsed
	*v = parsed
	return nil
}

// LoadFiles parses the given .env files into v. Later files override
// earlier ones and the process environment overrides them all. The process
// environment is left untouched and the result is not cached.
func LoadFiles[T any](v *T, paths ...string) error {
	if v == nil {
		return ErrNilPointer
	}
	if len(paths) == 0 {
		return ErrNoEnvFiles
	}

	vars := make(map[string]string)
	for _, path := range paths {
		fileVars, err := godotenv.Read(path)
		if err != nil {
			return errors.Join(ErrLoadingEnvFile, err)
		}
		for k, val := range fileVars {
			vars[k] = val
		}
	}
	for k, val := range env.ToMap(os.Environ()) {
		vars[k] = val
	}

	var parsed T
	if err := env.ParseWithOptions(&parsed, env.Options{Environment: vars}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	*v = parsed
	return nil
}

// ResetCache drops every cached configuration, so the next Load parses the
// environment again.
func ResetCache() {
	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()
	globalCache.values = make(map[reflect.Type]any)
}
