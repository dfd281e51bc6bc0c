package compiler

import (
	"github.com/vk/blueprintgo/internal/model"
)

// detectExecCycles checks the exec-link subgraph, collapsed to node
// granularity, for cycles. Classic DFS with a gray (recursion stack) set:
// reaching a node already on the current stack means a back edge.
func detectExecCycles(g *model.BlueprintGraph) error {
	adjacency := map[model.NodeID][]model.NodeID{}
	for _, link := range g.Links {
		from, ok := g.Pin(link.From)
		if !ok {
			return newError(ErrUnknownPin).withPin(link.From)
		}
		if g.EffectiveType(from) != model.TypeExec {
			continue
		}
		fromNode, ok := g.PinOwner(link.From)
		if !ok {
			return newError(ErrBrokenExecLink).withPin(link.From)
		}
		toNode, ok := g.PinOwner(link.To)
		if !ok {
			return newError(ErrBrokenExecLink).withPin(link.To)
		}
		adjacency[fromNode] = append(adjacency[fromNode], toNode)
	}

	visited := map[model.NodeID]bool{}
	stack := map[model.NodeID]bool{}

	var visit func(id model.NodeID) bool
	visit = func(id model.NodeID) bool {
		visited[id] = true
		stack[id] = true
		for _, next := range adjacency[id] {
			if !visited[next] && visit(next) {
				return true
			}
			if stack[next] {
				return true
			}
		}
		delete(stack, id)
		return false
	}

	for _, id := range g.SortedNodeIDs() {
		if !visited[id] && visit(id) {
			return newError(ErrExecCycle).withNode(id)
		}
	}
	return nil
}
