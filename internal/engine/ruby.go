// SPDX-License-Identifier: MPL-2.0

package engine

import (
	"github.com/polyrun/polyrun/internal/config"
)

// RubyEngine runs a program through the Ruby interpreter.
type RubyEngine struct {
	interpreterEngine
}

// NewRubyEngine creates a Ruby engine for one execution.
func NewRubyEngine(cfg *config.Config, workdir string) *RubyEngine {
	binary, args := cfg.EngineCommand("ruby")
	return &RubyEngine{interpreterEngine{
		name:    "ruby",
		binary:  binary,
		args:    args,
		workdir: workdir,
	}}
}

func rubyFactory(cfg *config.Config) Factory {
	return func(workdir string) Engine { return NewRubyEngine(cfg, workdir) }
}
