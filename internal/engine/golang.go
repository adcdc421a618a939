// SPDX-License-Identifier: MPL-2.0

package engine

import (
	"github.com/polyrun/polyrun/internal/config"
)

// GoEngine runs a program through the Go toolchain (`go run` by default,
// which compiles and executes in one step).
type GoEngine struct {
	interpreterEngine
}

// NewGoEngine creates a Go engine for one execution.
func NewGoEngine(cfg *config.Config, workdir string) *GoEngine {
	binary, args := cfg.EngineCommand("go")
	return &GoEngine{interpreterEngine{
		name:    "go",
		binary:  binary,
		args:    args,
		workdir: workdir,
	}}
}

func goFactory(cfg *config.Config) Factory {
	return func(workdir string) Engine { return NewGoEngine(cfg, workdir) }
}
