// Package environment names the application environments (development,
// staging, production) and normalizes the short forms found in deployment
// configuration. The logger package uses it to pick per-environment presets.
package environment
