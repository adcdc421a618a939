// SPDX-License-Identifier: MPL-2.0

// Package rootpath resolves the process-wide runtime root directory.
//
// The root is taken from the POLYRUN_ROOT environment variable, falling back
// to the current working directory, falling back to ".". It is resolved once
// and cached for the process lifetime: an installation root does not move
// mid-run, and engines may have already derived paths from it.
package rootpath

import (
	"os"
	"sync"
)

// RootEnvVar is the environment variable that overrides the runtime root.
const RootEnvVar = "POLYRUN_ROOT"

var (
	rootOnce sync.Once
	rootDir  string
)

// Root returns the runtime root directory. The first call resolves and
// caches it; later calls return the cached value even if the environment
// changes afterwards.
func Root() string {
	rootOnce.Do(func() {
		rootDir = resolveRoot(os.LookupEnv, os.Getwd)
	})
	return rootDir
}

// Resolve joins a root-relative path to the runtime root. It is a pure
// string operation: no existence check and no normalization, so callers are
// responsible for passing a well-formed relative path.
func Resolve(rel string) string {
	return Root() + string(os.PathSeparator) + rel
}

// resolveRoot applies the fallback chain: env override, working directory,
// current-directory marker.
func resolveRoot(lookupEnv func(string) (string, bool), getwd func() (string, error)) string {
	if v, ok := lookupEnv(RootEnvVar); ok && v != "" {
		return v
	}
	if wd, err := getwd(); err == nil && wd != "" {
		return wd
	}
	return "."
}
