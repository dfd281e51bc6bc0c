package interp

import (
	"context"

	"github.com/vk/blueprintgo/internal/compiler"
	"github.com/vk/blueprintgo/internal/model"
)

// dtVariable is the reserved store slot Tick writes the frame delta into.
// Scripts read it through the dt() bridge function.
const dtVariable = "__dt"

// Interpreter runs a compiled blueprint. It owns its variable store: the
// store is seeded from the compiled defaults once and never written back to
// the source graph.
type Interpreter struct {
	compiled  *compiler.CompiledGraph
	variables map[string]model.Value
	pinOwners map[model.PinID]model.NodeID
}

// New constructs an interpreter over a compiled graph.
func New(compiled *compiler.CompiledGraph) *Interpreter {
	vars := make(map[string]model.Value, len(compiled.Variables))
	for name, v := range compiled.Variables {
		vars[name] = v
	}
	owners := map[model.PinID]model.NodeID{}
	for nodeID, node := range compiled.Nodes {
		for _, pin := range node.Pins {
			owners[pin.ID] = nodeID
		}
	}
	return &Interpreter{compiled: compiled, variables: vars, pinOwners: owners}
}

// RunBeginPlay executes the BeginPlay chain. Empty output if the graph has
// no BeginPlay node.
func (it *Interpreter) RunBeginPlay(ctx context.Context) Output {
	return it.runEntry(ctx, it.compiled.BeginPlayEntry)
}

// RunConstructionScript executes the ConstructionScript chain. Empty output
// if the graph has no ConstructionScript node.
func (it *Interpreter) RunConstructionScript(ctx context.Context) Output {
	return it.runEntry(ctx, it.compiled.ConstructionEntry)
}

// Tick stores the frame delta and executes the Tick chain. Empty output if
// the graph has no Tick node.
func (it *Interpreter) Tick(ctx context.Context, dt float32) Output {
	if it.compiled.TickEntry == 0 {
		return it.snapshotInto(Output{})
	}
	it.variables[dtVariable] = model.FloatValue(dt)
	return it.runFromExecOut(ctx, it.compiled.TickEntry, "then")
}

func (it *Interpreter) runEntry(ctx context.Context, entry model.NodeID) Output {
	if entry == 0 {
		return it.snapshotInto(Output{})
	}
	// Entry nodes start execution from their "then" pin.
	return it.runFromExecOut(ctx, entry, "then")
}

// runFromExecOut walks the exec chain hanging off one exec output pin. The
// loop has no iteration cap: termination is guaranteed by the compiler's
// acyclicity check on this same graph.
func (it *Interpreter) runFromExecOut(ctx context.Context, start model.NodeID, execOut string) Output {
	var out Output

	startNode, ok := it.compiled.Nodes[start]
	if !ok {
		return it.snapshotInto(out)
	}
	pin, ok := startNode.Pin(execOut)
	if !ok || pin.Type != model.TypeExec {
		return it.snapshotInto(out)
	}

	next, hasNext := it.compiled.ExecEdges[pin.ID]
	for hasNext {
		nodeID, ok := it.pinOwners[next]
		if !ok {
			break
		}
		node, ok := it.compiled.Nodes[nodeID]
		if !ok {
			break
		}

		out.Events = append(out.Events, EnterNode(nodeID))
		next, hasNext = runtimeFor(node.Kind).Execute(ctx, it, &out, nodeID, node)
	}

	return it.snapshotInto(out)
}

// snapshotInto copies the current variable store into the output.
func (it *Interpreter) snapshotInto(out Output) Output {
	out.Variables = make(map[string]model.Value, len(it.variables))
	for name, v := range it.variables {
		out.Variables[name] = v
	}
	return out
}

// nextExec resolves the exec input pin linked to the named exec output of a
// node. False when the pin is missing, not exec-typed, or unlinked — the
// unlinked case is the normal end of a chain.
func (it *Interpreter) nextExec(nodeID model.NodeID, execOut string) (model.PinID, bool) {
	node, ok := it.compiled.Nodes[nodeID]
	if !ok {
		return 0, false
	}
	pin, ok := node.Pin(execOut)
	if !ok || pin.Type != model.TypeExec {
		return 0, false
	}
	to, ok := it.compiled.ExecEdges[pin.ID]
	return to, ok
}

// setVariable writes a value into the store.
func (it *Interpreter) setVariable(name string, v model.Value) {
	it.variables[name] = v
}

// inputPinType returns the effective type of a named input pin.
func (it *Interpreter) inputPinType(nodeID model.NodeID, input string) (model.DataType, bool) {
	node, ok := it.compiled.Nodes[nodeID]
	if !ok {
		return "", false
	}
	pin, ok := node.Pin(input)
	if !ok {
		return "", false
	}
	return pin.Type, true
}

// readValueInput resolves a linked data input. Only GetVariable producers
// are supported: the remaining output-bearing kinds are declared stubs with
// no live producer semantics, so reads from them yield nothing and callers
// fall back to literals. The value must match the input's effective type.
func (it *Interpreter) readValueInput(nodeID model.NodeID, input string) (model.Value, bool) {
	node, ok := it.compiled.Nodes[nodeID]
	if !ok {
		return model.Value{}, false
	}
	pin, ok := node.Pin(input)
	if !ok {
		return model.Value{}, false
	}
	fromPin, ok := it.compiled.DataEdges[pin.ID]
	if !ok {
		return model.Value{}, false
	}
	fromNodeID, ok := it.pinOwners[fromPin]
	if !ok {
		return model.Value{}, false
	}
	fromNode, ok := it.compiled.Nodes[fromNodeID]
	if !ok || fromNode.Kind != model.KindGetVariable {
		return model.Value{}, false
	}

	prop, ok := fromNode.Properties["name"]
	if !ok {
		return model.Value{}, false
	}
	name, ok := prop.AsString()
	if !ok {
		return model.Value{}, false
	}
	value, ok := it.variables[name]
	if !ok {
		return model.Value{}, false
	}
	if value.Type != pin.Type {
		return model.Value{}, false
	}
	return value, true
}

// readStringInput resolves a linked string input.
func (it *Interpreter) readStringInput(nodeID model.NodeID, input string) (string, bool) {
	v, ok := it.readValueInput(nodeID, input)
	if !ok {
		return "", false
	}
	return v.AsString()
}

// readBoolInput resolves a linked bool input.
func (it *Interpreter) readBoolInput(nodeID model.NodeID, input string) (bool, bool) {
	v, ok := it.readValueInput(nodeID, input)
	if !ok {
		return false, false
	}
	return v.AsBool()
}
