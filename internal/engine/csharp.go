// SPDX-License-Identifier: MPL-2.0

package engine

import (
	"github.com/polyrun/polyrun/internal/config"
)

// CSharpEngine runs a program through the .NET CLI. The default command is
// `dotnet run --project <program>`, so the program path names a project
// directory or project file; point the config at dotnet-script to execute
// bare .csx files instead.
type CSharpEngine struct {
	interpreterEngine
}

// NewCSharpEngine creates a C# engine for one execution.
func NewCSharpEngine(cfg *config.Config, workdir string) *CSharpEngine {
	binary, args := cfg.EngineCommand("csharp")
	return &CSharpEngine{interpreterEngine{
		name:    "csharp",
		binary:  binary,
		args:    args,
		workdir: workdir,
	}}
}

func csharpFactory(cfg *config.Config) Factory {
	return func(workdir string) Engine { return NewCSharpEngine(cfg, workdir) }
}
