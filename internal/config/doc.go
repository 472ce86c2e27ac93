// Package config loads, normalizes, and validates the TOML configuration for
// the svgs annotation pipeline.
//
// Configuration is resolved from an explicit --config path, then
// ~/.config/svgs/config.toml, then a project-local svgs.toml. Missing files
// fall back to repository defaults so read-only commands keep working.
package config
