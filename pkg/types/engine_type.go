// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strings"
)

// Engine type constants for the supported script languages.
const (
	EngineJavaScript EngineType = "javascript"
	EngineTypeScript EngineType = "typescript"
	EnginePython     EngineType = "python"
	EngineRuby       EngineType = "ruby"
	EngineLua        EngineType = "lua"
	EngineJava       EngineType = "java"
	EngineGo         EngineType = "go"
	EngineCSharp     EngineType = "csharp"
)

// ErrInvalidEngineType is the sentinel error wrapped by InvalidEngineTypeError.
var ErrInvalidEngineType = errors.New("invalid engine type")

type (
	// EngineType identifies the language engine that executes a program.
	// The set of values is closed; an execution context is bound to one
	// EngineType at creation and never changes it.
	EngineType string

	// InvalidEngineTypeError is returned when an EngineType value is not one
	// of the supported engines.
	InvalidEngineTypeError struct {
		Value EngineType
	}
)

// Error implements the error interface.
func (e *InvalidEngineTypeError) Error() string {
	return fmt.Sprintf("invalid engine type %q (valid: %s)", e.Value, engineTypeList())
}

// Unwrap returns ErrInvalidEngineType so callers can use errors.Is for programmatic detection.
func (e *InvalidEngineTypeError) Unwrap() error { return ErrInvalidEngineType }

// AllEngineTypes returns the closed set of supported engine types in display order.
func AllEngineTypes() []EngineType {
	return []EngineType{
		EngineJavaScript,
		EngineTypeScript,
		EnginePython,
		EngineRuby,
		EngineLua,
		EngineJava,
		EngineGo,
		EngineCSharp,
	}
}

// String returns the string representation of the EngineType.
func (t EngineType) String() string { return string(t) }

// Validate returns nil if the EngineType is one of the supported engines,
// or a validation error if it is not.
func (t EngineType) Validate() error {
	switch t {
	case EngineJavaScript, EngineTypeScript, EnginePython, EngineRuby,
		EngineLua, EngineJava, EngineGo, EngineCSharp:
		return nil
	default:
		return &InvalidEngineTypeError{Value: t}
	}
}

// IsModuleRuntime returns true for engines dispatched through the embedded
// module runtime entry point (JavaScript and TypeScript) rather than a
// per-call engine adapter.
func (t EngineType) IsModuleRuntime() bool {
	return t == EngineJavaScript || t == EngineTypeScript
}

// ParseEngineType converts a user-supplied name into an EngineType.
// Common aliases ("js", "ts", "py", "rb", "golang", "c#") are accepted.
func ParseEngineType(s string) (EngineType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "javascript", "js":
		return EngineJavaScript, nil
	case "typescript", "ts":
		return EngineTypeScript, nil
	case "python", "py":
		return EnginePython, nil
	case "ruby", "rb":
		return EngineRuby, nil
	case "lua":
		return EngineLua, nil
	case "java":
		return EngineJava, nil
	case "go", "golang":
		return EngineGo, nil
	case "csharp", "cs", "c#":
		return EngineCSharp, nil
	default:
		return "", &InvalidEngineTypeError{Value: EngineType(s)}
	}
}

// EngineTypeForExtension infers the engine type from a program file
// extension (including the leading dot). The second return value reports
// whether the extension maps to a supported engine.
func EngineTypeForExtension(ext string) (EngineType, bool) {
	switch strings.ToLower(ext) {
	case ".js", ".mjs", ".cjs":
		return EngineJavaScript, true
	case ".ts", ".mts":
		return EngineTypeScript, true
	case ".py":
		return EnginePython, true
	case ".rb":
		return EngineRuby, true
	case ".lua":
		return EngineLua, true
	case ".java":
		return EngineJava, true
	case ".go":
		return EngineGo, true
	case ".cs", ".csx":
		return EngineCSharp, true
	default:
		return "", false
	}
}

func engineTypeList() string {
	all := AllEngineTypes()
	names := make([]string, len(all))
	for i, t := range all {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
