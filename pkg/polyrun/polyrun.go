// SPDX-License-Identifier: MPL-2.0

// Package polyrun is the embeddable public API for polyglot script
// execution. It models the original single-owner, handle-based contract:
// Open creates an execution context bound to one engine type and hands back
// an opaque Handle; SetProgram, SetWorkdir, and Exec operate on that handle;
// Close releases it.
//
// Contexts live in an owner-held table rather than behind raw pointers, so
// using a handle after Close (or a handle that never existed) fails with
// ErrClosedHandle instead of touching freed state.
package polyrun

import (
	"errors"
	"fmt"
	"sync"

	"github.com/polyrun/polyrun/internal/engine"
	"github.com/polyrun/polyrun/pkg/types"
)

// ErrClosedHandle is the sentinel error wrapped by ClosedHandleError.
var ErrClosedHandle = errors.New("closed or unknown handle")

type (
	// Handle is an opaque reference to one execution context. The zero
	// value is never a valid handle.
	Handle uint64

	// ClosedHandleError is returned when an operation names a handle that
	// was closed or never opened.
	ClosedHandleError struct {
		Handle Handle
	}
)

// Error implements the error interface.
func (e *ClosedHandleError) Error() string {
	return fmt.Sprintf("handle %d is closed or was never opened", e.Handle)
}

// Unwrap returns ErrClosedHandle so callers can use errors.Is for programmatic detection.
func (e *ClosedHandleError) Unwrap() error { return ErrClosedHandle }

// newContext is the context constructor, a variable so tests can substitute
// contexts wired to a stub engine registry.
var newContext = engine.NewContext

// table is the owner-held context arena. Its lock guards only the map;
// per-context operations synchronize on the context's own lock, so
// operations on different handles run fully in parallel.
var table = struct {
	mu   sync.Mutex
	next Handle
	m    map[Handle]*engine.Context
}{
	m: make(map[Handle]*engine.Context),
}

// Open creates an execution context for the given engine type and returns
// its handle. The engine type is fixed for the context's lifetime; program
// and workdir start unset and must be set before Exec.
func Open(engineType types.EngineType) (Handle, error) {
	if err := engineType.Validate(); err != nil {
		return 0, err
	}

	ctx := newContext(engineType)

	table.mu.Lock()
	defer table.mu.Unlock()
	table.next++
	h := table.next
	table.m[h] = ctx
	return h, nil
}

// SetProgram sets the program path on the context behind the handle.
func SetProgram(h Handle, program string) error {
	ctx, err := lookup(h)
	if err != nil {
		return err
	}
	ctx.SetProgram(program)
	return nil
}

// SetWorkdir sets the working directory on the context behind the handle.
func SetWorkdir(h Handle, workdir string) error {
	ctx, err := lookup(h)
	if err != nil {
		return err
	}
	ctx.SetWorkdir(workdir)
	return nil
}

// Exec runs the configured program and returns its exit status verbatim.
// The call occupies the caller for the engine's full duration and serializes
// with any other operation on the same handle. Exec panics, as engine.Context
// does, when program or workdir is unset; that is caller misuse, not a
// runtime failure.
func Exec(h Handle) (types.ExitCode, error) {
	ctx, err := lookup(h)
	if err != nil {
		return 0, err
	}
	// The table lock is not held during execution; closing the handle
	// mid-run only unmaps it, it cannot free state under a running engine.
	return ctx.Execute(), nil
}

// Close releases the handle. Further use of it fails with ErrClosedHandle.
// Closing an already-closed handle is itself an ErrClosedHandle failure,
// matching the destroy-exactly-once contract.
func Close(h Handle) error {
	table.mu.Lock()
	defer table.mu.Unlock()

	if _, ok := table.m[h]; !ok {
		return &ClosedHandleError{Handle: h}
	}
	delete(table.m, h)
	return nil
}

func lookup(h Handle) (*engine.Context, error) {
	table.mu.Lock()
	defer table.mu.Unlock()

	ctx, ok := table.m[h]
	if !ok {
		return nil, &ClosedHandleError{Handle: h}
	}
	return ctx, nil
}
