// Package config manages user-level settings stored at ~/.hostpal/config.yaml.
// It loads the file and HOSTPAL_* environment overrides through viper, writes
// individual keys back, and validates the file against an embedded JSON
// schema.
package config
