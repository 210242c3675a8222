// Package config loads gridstorm settings.
//
// Settings come from three places, later ones overriding earlier ones:
//
//  1. Built-in defaults (Default)
//  2. A TOML or YAML file, chosen by extension
//  3. Environment variables prefixed with GRIDSTORM_
//
// The merged result is validated before it is returned.
//
// # File Format
//
//	[history]
//	max_entries = 500
//
//	[text]
//	row_separator = '\r?\n'
//	column_separator = '\t'
//	quote = '"'
//	seed = 1
//
//	[fill]
//	max_samples = 64
//
//	[log]
//	level = "debug"
//
// # Environment
//
// Each setting maps to GRIDSTORM_<SECTION>_<KEY> in upper case, for example
// GRIDSTORM_HISTORY_MAX_ENTRIES or GRIDSTORM_LOG_LEVEL.
//
// # Live Reload
//
// Watch reloads the file whenever it changes on disk and passes the result
// to a callback.
package config
