// Package model defines the blueprint graph data model: typed values, pins,
// nodes, links, variables, and the owning BlueprintGraph aggregate.
//
// The model is pure data. It assigns ids and answers lookups, but it does not
// enforce wiring invariants; those belong to the compiler. The one piece of
// behavior that lives here is EffectiveType, because every consumer of a pin
// type (validation, lowering, interpretation) must apply the same dynamic
// override for variable nodes.
package model
