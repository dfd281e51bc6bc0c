// Package interp executes a compiled blueprint. The Interpreter owns a
// mutable variable store seeded from the compiled defaults and walks exec
// chains from the three fixed entry points, delegating per-kind behavior to
// NodeRuntime handlers.
//
// Execution is single-threaded and runs to completion; there are no runtime
// fatal errors. Missing links, missing variables, or mistyped literals all
// degrade to defaults and the chain continues.
package interp
