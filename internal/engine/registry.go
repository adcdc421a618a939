// SPDX-License-Identifier: MPL-2.0

package engine

import (
	"sync"

	"github.com/polyrun/polyrun/internal/config"
	"github.com/polyrun/polyrun/pkg/types"
)

var (
	defaultRegistryOnce sync.Once
	defaultRegistryInst *Registry
)

// NewDefaultRegistry creates a registry with the six adapter engines wired
// to their configured interpreter commands. A nil config means the built-in
// defaults. The module runtime engines (JavaScript, TypeScript) are not
// registry entries; the dispatcher routes them directly.
func NewDefaultRegistry(cfg *config.Config) *Registry {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	r := NewRegistry()
	r.Register(types.EnginePython, pythonFactory(cfg))
	r.Register(types.EngineRuby, rubyFactory(cfg))
	r.Register(types.EngineLua, luaFactory(cfg))
	r.Register(types.EngineJava, javaFactory(cfg))
	r.Register(types.EngineGo, goFactory(cfg))
	r.Register(types.EngineCSharp, csharpFactory(cfg))
	return r
}

// DefaultRegistry returns the process-wide registry, built once from the
// loaded configuration.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistryInst = NewDefaultRegistry(config.Get())
	})
	return defaultRegistryInst
}
