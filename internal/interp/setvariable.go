package interp

import (
	"context"

	"github.com/vk/blueprintgo/internal/compiler"
	"github.com/vk/blueprintgo/internal/model"
)

// setVariableRuntime writes into the variable store under the node's "name"
// property. Linked value wins; a "value" literal is accepted only when it
// matches the pin's effective type; otherwise Unit is written.
type setVariableRuntime struct{}

func (setVariableRuntime) Execute(_ context.Context, it *Interpreter, _ *Output, nodeID model.NodeID, node *compiler.CompiledNode) (model.PinID, bool) {
	name := "var"
	if prop, ok := node.Properties["name"]; ok {
		if s, ok := prop.AsString(); ok {
			name = s
		}
	}

	expected, _ := it.inputPinType(nodeID, "value")

	value, ok := it.readValueInput(nodeID, "value")
	if !ok {
		value = model.UnitValue()
		if prop, has := node.Properties["value"]; has && prop.Type == expected {
			value = prop
		}
	}

	it.setVariable(name, value)
	return it.nextExec(nodeID, "then")
}
