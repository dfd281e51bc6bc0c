package interp

import (
	"context"

	"github.com/vk/blueprintgo/internal/compiler"
	"github.com/vk/blueprintgo/internal/model"
)

// NodeRuntime is the per-kind execution strategy. Execute performs the
// node's behavior and returns the exec input pin the chain continues at;
// false terminates the chain, which is the normal end, not an error.
type NodeRuntime interface {
	Execute(ctx context.Context, it *Interpreter, out *Output, nodeID model.NodeID, node *compiler.CompiledNode) (model.PinID, bool)
}

// runtimes is the flat kind→handler dispatch table. Kinds without an entry
// fall back to passthrough: entry nodes, pure data sources, and the world
// interaction stubs all just continue via "then" if linked.
var runtimes = map[model.NodeKind]NodeRuntime{
	model.KindPrint:       printRuntime{},
	model.KindBranch:      branchRuntime{},
	model.KindSetVariable: setVariableRuntime{},
	model.KindScript:      scriptRuntime{},
}

var passthrough = passthroughRuntime{}

func runtimeFor(kind model.NodeKind) NodeRuntime {
	if r, ok := runtimes[kind]; ok {
		return r
	}
	return passthrough
}

// passthroughRuntime follows the "then" exec output if it exists.
type passthroughRuntime struct{}

func (passthroughRuntime) Execute(_ context.Context, it *Interpreter, _ *Output, nodeID model.NodeID, _ *compiler.CompiledNode) (model.PinID, bool) {
	return it.nextExec(nodeID, "then")
}
