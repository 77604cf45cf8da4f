// Package config handles configuration loading, parsing, and validation
// from various sources (environment variables, .env files, config.yaml). It
// provides type-safe access to server, generation, model backend, and
// notifier settings while keeping configuration details separate from the
// generation pipeline.
package config
