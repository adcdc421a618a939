// SPDX-License-Identifier: MPL-2.0

package engine

import (
	"errors"
	"os"
	"os/exec"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/polyrun/polyrun/internal/config"
	"github.com/polyrun/polyrun/pkg/types"
)

// NodePathEnvVar is the module-search-path variable the module runtime reads
// at its own startup. The dispatcher scopes it to the context workdir around
// each invocation.
const NodePathEnvVar = "NODE_PATH"

// moduleRuntimeFlags is the fixed flag set for every module runtime
// invocation: ES modules and WASI on, network fetch, global search paths,
// native add-ons, and deprecation/experimental warnings off.
var moduleRuntimeFlags = []string{
	"--experimental-modules",
	"--experimental-wasi-unstable-preview1",
	"--no-global-search-paths",
	"--no-experimental-fetch",
	"--no-deprecation",
	"--no-warnings",
	"--no-addons",
}

// tsLoaderFlags inject the transpile-only TypeScript loader ahead of the
// program argument.
var tsLoaderFlags = []string{"--require", "ts-node/register/transpile-only"}

// nodeMain is the module runtime entry point. It receives a conventional
// argument vector (argv[0] is a program-name placeholder) and returns the
// runtime's exit status. It is a package variable so tests can substitute a
// stub for the external runtime.
var nodeMain = runNodeBinary

// moduleRuntimeMu serializes module runtime executions process-wide. The
// runtime reads NODE_PATH as process-global state at startup, so the
// save/set/run/restore scope around one invocation must not interleave with
// another context's scope.
var moduleRuntimeMu sync.Mutex

// buildModuleRuntimeArgv constructs the argument vector for one module
// runtime invocation: placeholder name, fixed flags, the TypeScript loader
// pair when applicable, then the program path.
func buildModuleRuntimeArgv(engine types.EngineType, program string) []string {
	argv := make([]string, 0, len(moduleRuntimeFlags)+len(tsLoaderFlags)+2)
	argv = append(argv, "polyrun")
	argv = append(argv, moduleRuntimeFlags...)
	if engine == types.EngineTypeScript {
		argv = append(argv, tsLoaderFlags...)
	}
	return append(argv, program)
}

// execModuleRuntime invokes the module runtime entry point with NODE_PATH
// scoped to the context workdir. The saved value is restored on every exit
// path, success or failure. Caller holds c.mu.
func (c *Context) execModuleRuntime() types.ExitCode {
	argv := buildModuleRuntimeArgv(c.engine, c.program)

	moduleRuntimeMu.Lock()
	defer moduleRuntimeMu.Unlock()

	scope := acquireEnv(NodePathEnvVar, c.workdir)
	defer scope.release()

	log.Debug("invoking module runtime", "execution", c.id, "argv", argv)
	return nodeMain(argv)
}

// ModuleRuntimeAvailable reports whether the configured module runtime
// binary can be located, for availability listings.
func ModuleRuntimeAvailable() bool {
	_, err := exec.LookPath(resolveBinary(config.Get().Node.Binary))
	return err == nil
}

// runNodeBinary is the default module runtime entry point: it spawns the
// configured node binary with argv[1:], passing the host stdio through, and
// maps spawn failures to the conventional nonzero codes.
func runNodeBinary(argv []string) types.ExitCode {
	bin := resolveBinary(config.Get().Node.Binary)
	path, err := exec.LookPath(bin)
	if err != nil {
		log.Error("module runtime binary not found", "binary", bin, "error", err)
		return exitCommandNotFound
	}

	// argv[0] is the conventional program-name placeholder; the real
	// executable path takes its place.
	cmd := exec.Command(path, argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return subprocessExitCode(exitErr)
		}
		log.Error("module runtime failed to run", "binary", path, "error", err)
		return exitSpawnFailure
	}
	return 0
}
