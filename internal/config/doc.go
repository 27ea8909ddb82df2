// Package config loads, normalizes, and validates the TOML configuration.
// Load resolves the file from an explicit path, ~/.config/moviematch, or a
// project-local moviematch.toml, applies defaults for anything unset, and
// expands ~ in every path field.
package config
