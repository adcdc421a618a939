// SPDX-License-Identifier: MPL-2.0

package engine

import (
	"github.com/polyrun/polyrun/internal/config"
)

// PythonEngine runs a program through the CPython interpreter as a
// short-lived subprocess rooted at the context workdir.
type PythonEngine struct {
	interpreterEngine
}

// NewPythonEngine creates a Python engine for one execution.
func NewPythonEngine(cfg *config.Config, workdir string) *PythonEngine {
	binary, args := cfg.EngineCommand("python")
	return &PythonEngine{interpreterEngine{
		name:    "python",
		binary:  binary,
		args:    args,
		workdir: workdir,
	}}
}

func pythonFactory(cfg *config.Config) Factory {
	return func(workdir string) Engine { return NewPythonEngine(cfg, workdir) }
}
