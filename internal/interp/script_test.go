package interp

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/blueprintgo/internal/model"
)

// scriptGraph builds BeginPlay → Script with the given code snippet.
func scriptGraph(t *testing.T, code string, vars ...model.VariableDef) (*model.BlueprintGraph, model.NodeID) {
	t.Helper()
	g := model.NewBlueprintGraph("Scripted")
	g.Variables = append(g.Variables, vars...)

	begin := addNode(g, model.KindBeginPlay)
	script := addNode(g, model.KindScript)
	g.Nodes[script].SetProperty("code", model.StringValue(code))
	link(t, g, begin, "then", script, "exec")
	return g, script
}

func TestScriptPrints(t *testing.T) {
	g, script := scriptGraph(t, `print("hi from script")`)

	it := New(compile(t, g))
	out := it.RunBeginPlay(context.Background())

	assert.Equal(t, []Event{EnterNode(script), Print("hi from script")}, out.Events)
}

func TestScriptReadsAndWritesVariables(t *testing.T) {
	def := model.StringValue("before")
	g, _ := scriptGraph(t,
		"set_var(\"message\", \"after\")\nprint(get_var(\"message\"))",
		model.VariableDef{Name: "message", Type: model.TypeString, Default: &def},
	)

	it := New(compile(t, g))
	out := it.RunBeginPlay(context.Background())

	assert.True(t, hasEvent(out, Print("after")))
	assert.Equal(t, model.StringValue("after"), out.Variables["message"])
}

func TestScriptWritesSurviveIntoLaterNodes(t *testing.T) {
	def := model.StringValue("before")
	g, script := scriptGraph(t,
		`set_var("message", "from script")`,
		model.VariableDef{Name: "message", Type: model.TypeString, Default: &def},
	)

	get := addNode(g, model.KindGetVariable)
	g.Nodes[get].SetProperty("name", model.StringValue("message"))
	say := addNode(g, model.KindPrint)
	link(t, g, script, "then", say, "exec")
	link(t, g, get, "value", say, "text")

	it := New(compile(t, g))
	out := it.RunBeginPlay(context.Background())

	assert.True(t, hasEvent(out, Print("from script")))
}

func TestScriptValueConversions(t *testing.T) {
	g, _ := scriptGraph(t, strings.Join([]string{
		`set_var("flag", true)`,
		`set_var("count", 3)`,
		`set_var("ratio", 1.5)`,
		`set_var("label", "three")`,
	}, "\n"))

	it := New(compile(t, g))
	out := it.RunBeginPlay(context.Background())

	assert.Equal(t, model.BoolValue(true), out.Variables["flag"])
	assert.Equal(t, model.IntValue(3), out.Variables["count"])
	assert.Equal(t, model.FloatValue(1.5), out.Variables["ratio"])
	assert.Equal(t, model.StringValue("three"), out.Variables["label"])
}

func TestScriptReadsFrameDelta(t *testing.T) {
	g := model.NewBlueprintGraph("Tick")
	tick := addNode(g, model.KindTick)
	script := addNode(g, model.KindScript)
	g.Nodes[script].SetProperty("code", model.StringValue(`set_var("seen", dt())`))
	link(t, g, tick, "then", script, "exec")

	it := New(compile(t, g))
	out := it.Tick(context.Background(), 0.5)

	assert.Equal(t, model.FloatValue(0.5), out.Variables["seen"])
}

func TestScriptErrorDegradesToPrint(t *testing.T) {
	g, script := scriptGraph(t, `print(`)

	say := addNode(g, model.KindPrint)
	g.Nodes[say].SetProperty("text", model.StringValue("still running"))
	link(t, g, script, "then", say, "exec")

	it := New(compile(t, g))
	out := it.RunBeginPlay(context.Background())

	require.GreaterOrEqual(t, len(out.Events), 3)
	assert.Equal(t, EnterNode(script), out.Events[0])
	assert.Equal(t, EventPrint, out.Events[1].Kind)
	assert.True(t, strings.HasPrefix(out.Events[1].Text, "[script error]"), "got %q", out.Events[1].Text)

	t.Run("the chain continues past the failure", func(t *testing.T) {
		assert.True(t, hasEvent(out, Print("still running")))
	})
}

func TestScriptGetVarOnUnknownNameIsNil(t *testing.T) {
	g, script := scriptGraph(t, "if get_var(\"ghost\") == nil {\n\tprint(\"nothing there\")\n}")

	it := New(compile(t, g))
	out := it.RunBeginPlay(context.Background())

	assert.Equal(t, []Event{EnterNode(script), Print("nothing there")}, out.Events)
}
