// SPDX-License-Identifier: MPL-2.0

package engine

import (
	"github.com/polyrun/polyrun/internal/config"
)

// JavaEngine runs a program through the JVM launcher. The default relies on
// single-file source launch (`java Program.java`, JEP 330), so no separate
// compile step is needed for plain source programs.
type JavaEngine struct {
	interpreterEngine
}

// NewJavaEngine creates a Java engine for one execution.
func NewJavaEngine(cfg *config.Config, workdir string) *JavaEngine {
	binary, args := cfg.EngineCommand("java")
	return &JavaEngine{interpreterEngine{
		name:    "java",
		binary:  binary,
		args:    args,
		workdir: workdir,
	}}
}

func javaFactory(cfg *config.Config) Factory {
	return func(workdir string) Engine { return NewJavaEngine(cfg, workdir) }
}
