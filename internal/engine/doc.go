// SPDX-License-Identifier: MPL-2.0

// Package engine provides the execution context and engine dispatch for
// polyrun.
//
// A Context carries one logical execution session: a program path, a working
// directory, and the engine type fixed at creation. Execute routes to exactly
// one of two dispatch shapes: JavaScript and TypeScript go through the
// embedded module runtime entry point with a NODE_PATH scope around the call,
// while Python, Ruby, Lua, Java, Go, and C# go through short-lived engine
// adapters constructed fresh for every call.
//
// All Context operations share one exclusive lock, so concurrent calls on the
// same context serialize; contexts are otherwise independent. There is no
// cancellation: once Execute dispatches, it occupies the calling goroutine
// until the engine finishes.
package engine
