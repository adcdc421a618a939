// SPDX-License-Identifier: MPL-2.0

package engine

import (
	"github.com/polyrun/polyrun/internal/config"
)

// LuaEngine runs a program through the Lua interpreter. Config can point the
// binary at luajit or a versioned lua5.x without any other change.
type LuaEngine struct {
	interpreterEngine
}

// NewLuaEngine creates a Lua engine for one execution.
func NewLuaEngine(cfg *config.Config, workdir string) *LuaEngine {
	binary, args := cfg.EngineCommand("lua")
	return &LuaEngine{interpreterEngine{
		name:    "lua",
		binary:  binary,
		args:    args,
		workdir: workdir,
	}}
}

func luaFactory(cfg *config.Config) Factory {
	return func(workdir string) Engine { return NewLuaEngine(cfg, workdir) }
}
