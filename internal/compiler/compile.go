package compiler

import (
	"github.com/vk/blueprintgo/internal/model"
)

// CompiledPin is one row of a node's name-indexed pin table. Type is the
// effective type, with the variable-node override already applied.
type CompiledPin struct {
	ID        model.PinID
	Direction model.PinDirection
	Type      model.DataType
}

// CompiledNode is the flattened execution view of one node.
type CompiledNode struct {
	Kind       model.NodeKind
	Properties map[string]model.Value
	Pins       map[string]CompiledPin
}

// Pin looks up a pin row by name.
func (n *CompiledNode) Pin(name string) (CompiledPin, bool) {
	p, ok := n.Pins[name]
	return p, ok
}

// CompiledGraph is the validated, flattened form of a blueprint. Entry
// fields are 0 when the graph has no node of that kind.
type CompiledGraph struct {
	BeginPlayEntry    model.NodeID
	ConstructionEntry model.NodeID
	TickEntry         model.NodeID

	// Variables holds the materialized default value for every variable.
	Variables map[string]model.Value

	Nodes map[model.NodeID]*CompiledNode

	// ExecEdges maps an exec output pin to the exec input pin it drives.
	ExecEdges map[model.PinID]model.PinID
	// DataEdges maps a data input pin to its source output pin. Keyed by
	// the input side: an input has exactly one source, while an output may
	// fan out to many inputs.
	DataEdges map[model.PinID]model.PinID
}

// Compile validates the graph and lowers it. The returned CompiledGraph is
// independent of the input: the interpreter may outlive later graph edits.
func Compile(g *model.BlueprintGraph) (*CompiledGraph, error) {
	if err := validate(g); err != nil {
		return nil, err
	}

	variables := make(map[string]model.Value, len(g.Variables))
	for _, def := range g.Variables {
		if def.Default != nil {
			variables[def.Name] = *def.Default
		} else {
			variables[def.Name] = model.ZeroValue(def.Type)
		}
	}

	nodes := make(map[model.NodeID]*CompiledNode, len(g.Nodes))
	for _, id := range g.SortedNodeIDs() {
		node := g.Nodes[id]
		pins := make(map[string]CompiledPin, len(node.Pins))
		for i := range node.Pins {
			pin := &node.Pins[i]
			pins[pin.Name] = CompiledPin{
				ID:        pin.ID,
				Direction: pin.Direction,
				Type:      g.EffectiveType(pin),
			}
		}
		props := make(map[string]model.Value, len(node.Properties))
		for k, v := range node.Properties {
			props[k] = v
		}
		nodes[id] = &CompiledNode{Kind: node.Kind, Properties: props, Pins: pins}
	}

	execEdges := map[model.PinID]model.PinID{}
	dataEdges := map[model.PinID]model.PinID{}
	for _, link := range g.Links {
		from, ok := g.Pin(link.From)
		if !ok {
			return nil, newError(ErrUnknownPin).withPin(link.From)
		}
		if _, ok := g.Pin(link.To); !ok {
			return nil, newError(ErrUnknownPin).withPin(link.To)
		}
		// Classify by the source pin's effective type.
		if g.EffectiveType(from) == model.TypeExec {
			execEdges[link.From] = link.To
		} else {
			dataEdges[link.To] = link.From
		}
	}

	return &CompiledGraph{
		BeginPlayEntry:    findEntry(g, model.KindBeginPlay),
		ConstructionEntry: findEntry(g, model.KindConstructionScript),
		TickEntry:         findEntry(g, model.KindTick),
		Variables:         variables,
		Nodes:             nodes,
		ExecEdges:         execEdges,
		DataEdges:         dataEdges,
	}, nil
}

// findEntry locates the entry node of the given kind: the first by ascending
// node id. Further nodes of the same kind are ignored.
func findEntry(g *model.BlueprintGraph, kind model.NodeKind) model.NodeID {
	for _, id := range g.SortedNodeIDs() {
		if g.Nodes[id].Kind == kind {
			return id
		}
	}
	return 0
}
