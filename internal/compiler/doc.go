// Package compiler validates a BlueprintGraph and lowers it into the flat
// CompiledGraph form the interpreter executes.
//
// Compilation is two-phase: validate checks every structural and typing
// invariant and fails fast on the first violation; lowering then flattens
// per-node pin tables and splits links into exec and data edge indices. A
// graph that compiles is guaranteed acyclic on its exec flow, which is the
// only thing standing between the interpreter's chain walk and an infinite
// loop.
package compiler
