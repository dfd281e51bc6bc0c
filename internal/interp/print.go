package interp

import (
	"context"

	"github.com/vk/blueprintgo/internal/compiler"
	"github.com/vk/blueprintgo/internal/model"
)

// printRuntime emits a Print event. Linked text wins over the "text"
// literal property; with neither, the empty string is printed.
type printRuntime struct{}

func (printRuntime) Execute(_ context.Context, it *Interpreter, out *Output, nodeID model.NodeID, node *compiler.CompiledNode) (model.PinID, bool) {
	text, ok := it.readStringInput(nodeID, "text")
	if !ok {
		if prop, has := node.Properties["text"]; has {
			text, _ = prop.AsString()
		}
	}
	out.Events = append(out.Events, Print(text))
	return it.nextExec(nodeID, "then")
}
