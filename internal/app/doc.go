// Package app wires the blueprint pipeline end to end: load an authored
// .hcl or persisted .blueprint file, compile it, and drive the interpreter
// through the host lifecycle — construction script once, begin-play once,
// then a fixed number of ticks.
package app
