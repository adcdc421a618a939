// SPDX-License-Identifier: MPL-2.0

package rootpath

import (
	"errors"
	"os"
	"strings"
	"testing"
)

func TestResolveRootFallbackChain(t *testing.T) {
	t.Parallel()

	envWith := func(value string, ok bool) func(string) (string, bool) {
		return func(name string) (string, bool) {
			if name != RootEnvVar {
				t.Errorf("looked up unexpected variable %q", name)
			}
			return value, ok
		}
	}

	tests := []struct {
		name string
		env  func(string) (string, bool)
		wd   func() (string, error)
		want string
	}{
		{
			name: "env override wins",
			env:  envWith("/opt/polyrun", true),
			wd:   func() (string, error) { return "/home/user", nil },
			want: "/opt/polyrun",
		},
		{
			name: "unset env falls back to working directory",
			env:  envWith("", false),
			wd:   func() (string, error) { return "/home/user", nil },
			want: "/home/user",
		},
		{
			name: "empty env value falls back to working directory",
			env:  envWith("", true),
			wd:   func() (string, error) { return "/home/user", nil },
			want: "/home/user",
		},
		{
			name: "working directory failure falls back to dot",
			env:  envWith("", false),
			wd:   func() (string, error) { return "", errors.New("getwd failed") },
			want: ".",
		},
		{
			name: "empty working directory falls back to dot",
			env:  envWith("", false),
			wd:   func() (string, error) { return "", nil },
			want: ".",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := resolveRoot(tt.env, tt.wd); got != tt.want {
				t.Errorf("resolveRoot() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRootIsCached(t *testing.T) {
	first := Root()
	if first == "" {
		t.Fatal("Root() returned empty string")
	}

	// A later env change must not affect the cached root.
	t.Setenv(RootEnvVar, "/somewhere/else")
	if got := Root(); got != first {
		t.Errorf("Root() = %q after env change, want cached %q", got, first)
	}
}

func TestResolve(t *testing.T) {
	rel := "engines/python"
	got := Resolve(rel)

	if !strings.HasPrefix(got, Root()) {
		t.Errorf("Resolve(%q) = %q, want prefix %q", rel, got, Root())
	}
	if !strings.HasSuffix(got, string(os.PathSeparator)+rel) {
		t.Errorf("Resolve(%q) = %q, want suffix %q", rel, got, string(os.PathSeparator)+rel)
	}
}
