// SPDX-License-Identifier: MPL-2.0

package engine

import (
	"errors"
	"fmt"
	"slices"

	"github.com/polyrun/polyrun/pkg/types"
)

// ErrEngineNotRegistered is the sentinel error wrapped by NotRegisteredError.
var ErrEngineNotRegistered = errors.New("engine not registered")

type (
	// Engine is the contract every per-language adapter satisfies. An Engine
	// is constructed from a workdir for a single Execute call and discarded;
	// it must never be cached across calls and must never panic across the
	// adapter boundary. Internal failures are converted to a nonzero
	// ExitCode.
	Engine interface {
		// Name returns the engine name.
		Name() string
		// Available returns whether the engine's interpreter is usable on
		// the current system.
		Available() bool
		// Execute runs the program and returns its exit status.
		Execute(program string) types.ExitCode
	}

	// Factory constructs a short-lived Engine rooted at the given workdir.
	Factory func(workdir string) Engine

	// NotRegisteredError is returned when no factory is registered for an
	// engine type.
	NotRegisteredError struct {
		Engine types.EngineType
	}

	// Registry holds the adapter factories keyed by engine type. The
	// JavaScript and TypeScript engines are not in the registry; they
	// dispatch through the module runtime entry point instead.
	Registry struct {
		factories map[types.EngineType]Factory
	}
)

// Error implements the error interface.
func (e *NotRegisteredError) Error() string {
	return fmt.Sprintf("no engine registered for type %q", e.Engine)
}

// Unwrap returns ErrEngineNotRegistered so callers can use errors.Is for programmatic detection.
func (e *NotRegisteredError) Unwrap() error { return ErrEngineNotRegistered }

// NewRegistry creates an empty engine registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[types.EngineType]Factory),
	}
}

// Register adds an adapter factory for an engine type, replacing any
// previous registration.
func (r *Registry) Register(engine types.EngineType, factory Factory) {
	r.factories[engine] = factory
}

// Get returns the factory for an engine type.
func (r *Registry) Get(engine types.EngineType) (Factory, error) {
	factory, ok := r.factories[engine]
	if !ok {
		return nil, &NotRegisteredError{Engine: engine}
	}
	return factory, nil
}

// Types returns the registered engine types in sorted order.
func (r *Registry) Types() []types.EngineType {
	out := make([]types.EngineType, 0, len(r.factories))
	for engine := range r.factories {
		out = append(out, engine)
	}
	slices.Sort(out)
	return out
}
