// SPDX-License-Identifier: MPL-2.0

package engine

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/polyrun/polyrun/internal/rootpath"
	"github.com/polyrun/polyrun/pkg/types"
)

const (
	// exitCommandNotFound is returned when an interpreter binary cannot be
	// located (shell convention).
	exitCommandNotFound types.ExitCode = 127
	// exitSpawnFailure is returned when an interpreter was found but could
	// not be run at all.
	exitSpawnFailure types.ExitCode = 1
)

// interpreterEngine is the shared implementation behind the per-language
// adapters: it runs the language's interpreter as a subprocess with the
// context workdir as its working directory and propagates the subprocess
// exit code verbatim. It retains nothing beyond the call; adapters are
// constructed fresh per execution.
type interpreterEngine struct {
	name    string
	binary  string
	args    []string
	workdir string
}

// Name returns the engine name.
func (e *interpreterEngine) Name() string { return e.name }

// Available returns whether the interpreter binary can be located.
func (e *interpreterEngine) Available() bool {
	_, err := exec.LookPath(resolveBinary(e.binary))
	return err == nil
}

// Execute runs the program through the interpreter. Failures never cross the
// adapter boundary as panics or errors: a missing interpreter is 127, any
// other spawn failure is 1, and everything else is the interpreter's own
// exit status.
func (e *interpreterEngine) Execute(program string) types.ExitCode {
	bin := resolveBinary(e.binary)
	path, err := exec.LookPath(bin)
	if err != nil {
		log.Error("interpreter not found", "engine", e.name, "binary", bin, "error", err)
		return exitCommandNotFound
	}

	argv := make([]string, 0, len(e.args)+1)
	argv = append(argv, e.args...)
	argv = append(argv, program)

	cmd := exec.Command(path, argv...)
	cmd.Dir = e.workdir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	log.Debug("spawning interpreter", "engine", e.name, "binary", path, "args", argv, "workdir", e.workdir)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return subprocessExitCode(exitErr)
		}
		log.Error("interpreter failed to run", "engine", e.name, "binary", path, "error", err)
		return exitSpawnFailure
	}
	return 0
}

// subprocessExitCode maps a finished subprocess to a propagatable status. A
// signal-killed process has no exit status (ExitCode reports -1); the shell
// convention of 128 plus the signal number stands in for it so the result
// stays a valid nonzero code.
func subprocessExitCode(exitErr *exec.ExitError) types.ExitCode {
	if code := exitErr.ExitCode(); code >= 0 {
		return types.ExitCode(code)
	}
	if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return types.ExitCode(128 + int(ws.Signal()))
	}
	return exitSpawnFailure
}

// resolveBinary maps a configured interpreter binary to something LookPath
// can use: bare names are left for PATH lookup, absolute paths pass through,
// and relative paths containing a separator are resolved against the runtime
// root (a portable install ships its interpreters under the root).
func resolveBinary(binary string) string {
	if !strings.ContainsRune(binary, os.PathSeparator) && !strings.ContainsRune(binary, '/') {
		return binary
	}
	if filepath.IsAbs(binary) {
		return binary
	}
	return rootpath.Resolve(binary)
}
