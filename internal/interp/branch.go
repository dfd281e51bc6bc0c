package interp

import (
	"context"

	"github.com/vk/blueprintgo/internal/compiler"
	"github.com/vk/blueprintgo/internal/model"
)

// branchRuntime picks between the "true" and "false" exec outputs. The only
// node kind with two possible successors. Condition resolution: linked
// input, else "condition" literal, else false.
type branchRuntime struct{}

func (branchRuntime) Execute(_ context.Context, it *Interpreter, _ *Output, nodeID model.NodeID, node *compiler.CompiledNode) (model.PinID, bool) {
	condition, ok := it.readBoolInput(nodeID, "condition")
	if !ok {
		if prop, has := node.Properties["condition"]; has {
			condition, _ = prop.AsBool()
		}
	}
	if condition {
		return it.nextExec(nodeID, "true")
	}
	return it.nextExec(nodeID, "false")
}
