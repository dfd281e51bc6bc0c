package interp

import (
	"context"
	"fmt"
	"math"

	"github.com/risor-io/risor"
	"github.com/risor-io/risor/object"

	"github.com/vk/blueprintgo/internal/compiler"
	"github.com/vk/blueprintgo/internal/model"
)

// scriptRuntime evaluates the node's code through the embedded script
// engine. Evaluation errors degrade to a Print event carrying the error
// text; the chain always continues via "then".
type scriptRuntime struct{}

func (scriptRuntime) Execute(ctx context.Context, it *Interpreter, out *Output, nodeID model.NodeID, node *compiler.CompiledNode) (model.PinID, bool) {
	code, ok := it.readStringInput(nodeID, "code")
	if !ok {
		if prop, has := node.Properties["code"]; has {
			code, _ = prop.AsString()
		}
	}

	if err := it.evalScript(ctx, code, out); err != nil {
		out.Events = append(out.Events, Print(fmt.Sprintf("[script error] %v", err)))
	}

	return it.nextExec(nodeID, "then")
}

// evalScript runs one script snippet with the four host bridge functions:
// get_var, set_var, dt, and print. The variable store is snapshotted into a
// buffer shared with the bridge closures before evaluation and copied back
// afterward, so script writes are visible to the rest of the exec chain.
// Prints are buffered and merged into the event log in emission order.
//
// A fresh engine evaluates every invocation; nothing is cached across calls.
func (it *Interpreter) evalScript(ctx context.Context, code string, out *Output) error {
	vars := make(map[string]model.Value, len(it.variables))
	for name, v := range it.variables {
		vars[name] = v
	}
	var emitted []Event

	printFn := object.NewBuiltin("print", func(_ context.Context, args ...object.Object) object.Object {
		if len(args) != 1 {
			return object.NewArgsError("print", 1, len(args))
		}
		text := args[0].Inspect()
		if s, ok := args[0].(*object.String); ok {
			text = s.Value()
		}
		emitted = append(emitted, Print(text))
		return object.Nil
	})

	getVarFn := object.NewBuiltin("get_var", func(_ context.Context, args ...object.Object) object.Object {
		if len(args) != 1 {
			return object.NewArgsError("get_var", 1, len(args))
		}
		name, ok := args[0].(*object.String)
		if !ok {
			return object.Errorf("get_var: name must be a string, got %s", args[0].Type())
		}
		v, ok := vars[name.Value()]
		if !ok {
			return object.Nil
		}
		return valueToScript(v)
	})

	setVarFn := object.NewBuiltin("set_var", func(_ context.Context, args ...object.Object) object.Object {
		if len(args) != 2 {
			return object.NewArgsError("set_var", 2, len(args))
		}
		name, ok := args[0].(*object.String)
		if !ok {
			return object.Errorf("set_var: name must be a string, got %s", args[0].Type())
		}
		if v, ok := scriptToValue(args[1]); ok {
			vars[name.Value()] = v
		}
		return object.Nil
	})

	dtFn := object.NewBuiltin("dt", func(_ context.Context, args ...object.Object) object.Object {
		if len(args) != 0 {
			return object.NewArgsError("dt", 0, len(args))
		}
		if v, ok := vars[dtVariable]; ok {
			if f, ok := v.AsFloat(); ok {
				return object.NewFloat(float64(f))
			}
		}
		return object.NewFloat(0)
	})

	_, err := risor.Eval(ctx, code,
		risor.WithGlobalOverride("print", printFn),
		risor.WithGlobal("get_var", getVarFn),
		risor.WithGlobal("set_var", setVarFn),
		risor.WithGlobal("dt", dtFn),
	)

	// Copy back even when evaluation failed part-way: writes made before
	// the failure stay visible, matching best-effort-continue semantics.
	it.variables = vars
	out.Events = append(out.Events, emitted...)

	return err
}

// valueToScript converts a store value into a script object.
func valueToScript(v model.Value) object.Object {
	switch v.Type {
	case model.TypeBool:
		return object.NewBool(v.Bool)
	case model.TypeI32:
		return object.NewInt(int64(v.Int))
	case model.TypeF32:
		return object.NewFloat(float64(v.Float))
	case model.TypeString:
		return object.NewString(v.Str)
	default:
		return object.Nil
	}
}

// scriptToValue converts a script object back into a store value. Objects
// outside the store's scalar kinds (lists, maps, functions) are dropped.
func scriptToValue(o object.Object) (model.Value, bool) {
	switch obj := o.(type) {
	case *object.NilType:
		return model.UnitValue(), true
	case *object.Bool:
		return model.BoolValue(obj.Value()), true
	case *object.Int:
		i := obj.Value()
		if i < math.MinInt32 || i > math.MaxInt32 {
			return model.Value{}, false
		}
		return model.IntValue(int32(i)), true
	case *object.Float:
		return model.FloatValue(float32(obj.Value())), true
	case *object.String:
		return model.StringValue(obj.Value()), true
	}
	return model.Value{}, false
}
