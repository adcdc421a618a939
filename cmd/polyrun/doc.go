// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for polyrun.
//
// This package implements the Cobra command hierarchy: the root command,
// `run` for executing a script through the matching engine, `engines` for
// listing engine availability, and `config` for inspecting configuration.
package cmd
