package compiler

import (
	"github.com/vk/blueprintgo/internal/model"
)

// validate applies every structural rule in a fixed order and returns the
// first violation. No rule attempts partial recovery.
func validate(g *model.BlueprintGraph) error {
	// Variable names must be unique.
	seen := map[string]bool{}
	for _, def := range g.Variables {
		if seen[def.Name] {
			return newError(ErrDuplicateVariable)
		}
		seen[def.Name] = true
	}

	// Per-link checks: existence, partition agreement, direction, typing.
	for _, link := range g.Links {
		from, ok := g.Pin(link.From)
		if !ok {
			return newError(ErrUnknownPin).withPin(link.From)
		}
		to, ok := g.Pin(link.To)
		if !ok {
			return newError(ErrUnknownPin).withPin(link.To)
		}

		fromNode, _ := g.PinOwner(link.From)
		toNode, _ := g.PinOwner(link.To)
		if g.Nodes[fromNode].Graph != g.Nodes[toNode].Graph {
			return newError(ErrCrossGraphLink).withNode(fromNode).withPin(link.From)
		}

		if from.Direction != model.DirOutput || to.Direction != model.DirInput {
			return newError(ErrDirectionMismatch).withPin(link.From)
		}

		// Exact match on effective types; there is no implicit coercion.
		if g.EffectiveType(from) != g.EffectiveType(to) {
			return newError(ErrTypeMismatch).withPin(link.To)
		}
	}

	if err := checkLinkFans(g); err != nil {
		return err
	}

	// Variable nodes must name an existing variable.
	for _, id := range g.SortedNodeIDs() {
		node := g.Nodes[id]
		if node.Kind != model.KindGetVariable && node.Kind != model.KindSetVariable {
			continue
		}
		prop, ok := node.Property("name")
		if !ok {
			return newError(ErrUnknownVariable).withNode(id)
		}
		name, ok := prop.AsString()
		if !ok {
			return newError(ErrUnknownVariable).withNode(id)
		}
		if !seen[name] {
			return newError(ErrUnknownVariable).withNode(id)
		}
	}

	return detectExecCycles(g)
}

// checkLinkFans enforces the single-link disciplines: at most one exec link
// into any input, at most one exec link out of any output, and at most one
// data link into any input. Rejecting the duplicates here removes the edge
// where lowering's map insert would silently keep only the last link.
func checkLinkFans(g *model.BlueprintGraph) error {
	execIn := map[model.PinID]int{}
	execOut := map[model.PinID]int{}
	dataIn := map[model.PinID]int{}

	for _, link := range g.Links {
		to, ok := g.Pin(link.To)
		if !ok {
			return newError(ErrUnknownPin).withPin(link.To)
		}
		if g.EffectiveType(to) == model.TypeExec {
			execIn[link.To]++
			execOut[link.From]++
		} else {
			dataIn[link.To]++
		}
	}

	for _, link := range g.Links {
		if execIn[link.To] > 1 {
			owner, _ := g.PinOwner(link.To)
			return newError(ErrMultipleExecInputs).withNode(owner).withPin(link.To)
		}
		if execOut[link.From] > 1 {
			owner, _ := g.PinOwner(link.From)
			return newError(ErrMultipleExecOuts).withNode(owner).withPin(link.From)
		}
		if dataIn[link.To] > 1 {
			owner, _ := g.PinOwner(link.To)
			return newError(ErrMultipleDataInputs).withNode(owner).withPin(link.To)
		}
	}

	return nil
}
