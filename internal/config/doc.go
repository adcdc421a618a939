// SPDX-License-Identifier: MPL-2.0

// Package config loads polyrun configuration from a TOML file in the
// platform config directory and from POLYRUN_* environment variables,
// layered over built-in defaults. Configuration covers the default engine,
// the module runtime binary, and per-engine interpreter command overrides.
package config
