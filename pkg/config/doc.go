// Package config loads typed configuration from environment variables and
// .env files, using github.com/caarlos0/env/v11 for parsing and
// github.com/joho/godotenv for .env files.
//
// Load reads the process environment (plus the default .env, once) and
// caches the result per configuration type. LoadFiles reads explicit .env
// files, lets the process environment override them, and never touches the
// process environment or the cache.
//
//	type Config struct {
//	    MaxDepth int    `env:"VALIDATOR_MAX_DEPTH" envDefault:"32"`
//	    Language string `env:"VALIDATOR_LANGUAGE" envDefault:"en"`
//	}
//
//	var cfg Config
//	err := config.LoadFiles(&cfg, "config/base.env", "config/local.env")
//
// Tests that change the environment call ResetCache first.
//
// Errors wrap ErrParsingConfig, ErrLoadingEnvFile, ErrNoEnvFiles and
// ErrNilPointer and can be matched with errors.Is.
package config
