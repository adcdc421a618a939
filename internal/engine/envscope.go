// SPDX-License-Identifier: MPL-2.0

package engine

import (
	"os"

	"github.com/charmbracelet/log"
)

// envScope is a scoped override of one process environment variable:
// acquiring saves the current state and sets the new value, releasing
// restores what was saved (including "was not set at all"). Callers must
// release on every exit path, normally via defer, so a failing scoped call
// cannot leak the override to sibling executions or to the host process.
type envScope struct {
	name    string
	saved   string
	present bool
}

// acquireEnv saves the current state of the named variable and overwrites it
// with value.
func acquireEnv(name, value string) *envScope {
	s := &envScope{name: name}
	s.saved, s.present = os.LookupEnv(name)
	if err := os.Setenv(name, value); err != nil {
		log.Warn("failed to set environment variable", "name", name, "error", err)
	}
	return s
}

// release restores the variable to its saved state.
func (s *envScope) release() {
	var err error
	if s.present {
		err = os.Setenv(s.name, s.saved)
	} else {
		err = os.Unsetenv(s.name)
	}
	if err != nil {
		log.Warn("failed to restore environment variable", "name", s.name, "error", err)
	}
}
