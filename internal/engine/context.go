// SPDX-License-Identifier: MPL-2.0

package engine

import (
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/polyrun/polyrun/pkg/types"
)

// Context is one logical execution session: a program path, a working
// directory, and the engine type fixed at creation. A single exclusive lock
// guards SetProgram, SetWorkdir, and Execute, so at most one operation is in
// flight per context; executing the same context from two goroutines
// serializes rather than racing.
//
// A Context owns no engine instance. Each Execute call constructs one
// short-lived adapter (or invokes the module runtime entry point) and
// discards it, so a context can be reconfigured and re-executed any number
// of times.
type Context struct {
	mu       sync.Mutex
	engine   types.EngineType
	program  string
	workdir  string
	registry *Registry
	id       string
}

// NewContext creates a context bound to the given engine type. The program
// and workdir start unset and must both be set before Execute. Construction
// performs no I/O and never fails.
func NewContext(engine types.EngineType) *Context {
	return NewContextWithRegistry(engine, nil)
}

// NewContextWithRegistry creates a context that dispatches adapter engines
// through the given registry instead of the process default. A nil registry
// means the default.
func NewContextWithRegistry(engine types.EngineType, registry *Registry) *Context {
	return &Context{
		engine:   engine,
		registry: registry,
		id:       uuid.NewString(),
	}
}

// EngineType returns the engine type the context was created with.
func (c *Context) EngineType() types.EngineType {
	return c.engine
}

// SetProgram sets the path of the program to execute. Re-setting the current
// value is a guarded no-op. Blocks while another operation holds the context.
func (c *Context) SetProgram(program string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.program == program {
		return
	}
	c.program = program
}

// SetWorkdir sets the working directory used as the execution and module
// search root. Re-setting the current value is a guarded no-op. Blocks while
// another operation holds the context.
func (c *Context) SetWorkdir(workdir string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.workdir == workdir {
		return
	}
	c.workdir = workdir
}

// Program returns the currently configured program path.
func (c *Context) Program() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.program
}

// Workdir returns the currently configured working directory.
func (c *Context) Workdir() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.workdir
}

// Execute runs the configured program and returns its exit status verbatim.
// The context lock is held for the whole call, however long the engine
// takes; there is no cancellation below this point.
//
// Calling Execute before both program and workdir are set is a contract
// violation and panics: it is caller misuse, not a runtime condition, and is
// never converted into an exit code. The same applies to a context whose
// engine type is outside the closed enumeration.
func (c *Context) Execute() types.ExitCode {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.program == "" {
		panic("engine: Execute called with no program set")
	}
	if c.workdir == "" {
		panic("engine: Execute called with no workdir set")
	}

	log.Debug("dispatching execution",
		"execution", c.id, "engine", c.engine, "program", c.program, "workdir", c.workdir)

	if c.engine.IsModuleRuntime() {
		code := c.execModuleRuntime()
		log.Debug("module runtime finished", "execution", c.id, "exit_code", code)
		return code
	}

	registry := c.registry
	if registry == nil {
		registry = DefaultRegistry()
	}

	factory, err := registry.Get(c.engine)
	if err != nil {
		panic("engine: " + err.Error())
	}

	eng := factory(c.workdir)
	code := eng.Execute(c.program)
	log.Debug("engine finished", "execution", c.id, "engine", eng.Name(), "exit_code", code)
	return code
}
