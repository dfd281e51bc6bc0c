package model

import "fmt"

// NodeID uniquely identifies a node within one BlueprintGraph. Ids are
// assigned by the graph starting at 1; 0 means "no node".
type NodeID uint32

// PinID uniquely identifies a pin across the entire graph, not just within
// its owning node. Assigned by the graph starting at 1; 0 means "no pin".
type PinID uint32

// PinDirection tells whether a pin consumes or produces.
type PinDirection string

const (
	DirInput  PinDirection = "in"
	DirOutput PinDirection = "out"
)

// Pin is one connection point on a node. The Type recorded here is the
// template type; variable nodes override it dynamically, see EffectiveType.
type Pin struct {
	ID        PinID        `json:"id"`
	Name      string       `json:"name"`
	Direction PinDirection `json:"direction"`
	Type      DataType     `json:"type"`
}

// NodeKind names one entry in the fixed catalog of built-in node behaviors.
type NodeKind string

const (
	KindBeginPlay          NodeKind = "BeginPlay"
	KindTick               NodeKind = "Tick"
	KindConstructionScript NodeKind = "ConstructionScript"
	KindPrint              NodeKind = "Print"
	KindScript             NodeKind = "Script"
	KindBranch             NodeKind = "Branch"
	KindGetVariable        NodeKind = "GetVariable"
	KindSetVariable        NodeKind = "SetVariable"
	KindSelf               NodeKind = "Self"
	KindGetActorTransform  NodeKind = "GetActorTransform"
	KindSetActorTransform  NodeKind = "SetActorTransform"
	KindSpawnActor         NodeKind = "SpawnActor"
	KindGetActorByName     NodeKind = "GetActorByName"
	KindGetActorName       NodeKind = "GetActorName"
)

// ParseNodeKind converts a user-facing kind name into a NodeKind.
func ParseNodeKind(s string) (NodeKind, error) {
	k := NodeKind(s)
	if _, ok := pinTemplates[k]; !ok {
		return "", fmt.Errorf("unknown node kind %q", s)
	}
	return k, nil
}

// DefaultScriptCode seeds the "code" property of a fresh Script node.
const DefaultScriptCode = `// Script snippet examples
//
// 1) Log
// print("Hello from script")
//
// 2) Use variables
// set_var("message", "Hello")
// print(get_var("message"))
//
// 3) Read delta time during Tick
// print(sprintf("dt = %v", dt()))
`

// Node is one vertex of the blueprint graph. Pins keep template order.
// Graph is the partition tag: links may only connect nodes sharing it.
type Node struct {
	ID         NodeID           `json:"id"`
	Kind       NodeKind         `json:"kind"`
	Graph      string           `json:"graph"`
	Position   [2]float32       `json:"position"`
	Pins       []Pin            `json:"pins"`
	Properties map[string]Value `json:"properties"`
}

// NewNode builds a node of the given kind with its pin template applied.
// Pin ids are placeholders until the node is added to a graph, which remaps
// them from its central counters.
func NewNode(kind NodeKind) *Node {
	n := &Node{
		Kind:       kind,
		Graph:      DefaultEventGraph,
		Pins:       templatePins(kind),
		Properties: map[string]Value{},
	}
	if kind == KindScript {
		n.Properties["code"] = StringValue(DefaultScriptCode)
	}
	return n
}

// PinNamed returns the id of the pin with the given name.
func (n *Node) PinNamed(name string) (PinID, bool) {
	for i := range n.Pins {
		if n.Pins[i].Name == name {
			return n.Pins[i].ID, true
		}
	}
	return 0, false
}

// Property returns the literal property stored under key.
func (n *Node) Property(key string) (Value, bool) {
	v, ok := n.Properties[key]
	return v, ok
}

// SetProperty stores a literal property on the node.
func (n *Node) SetProperty(key string, v Value) {
	if n.Properties == nil {
		n.Properties = map[string]Value{}
	}
	n.Properties[key] = v
}

// pinTemplates fixes the pin layout of every node kind. Order matters: it is
// the order pins receive their graph-wide ids on insertion.
var pinTemplates = map[NodeKind][]Pin{
	KindBeginPlay: {
		{Name: "then", Direction: DirOutput, Type: TypeExec},
	},
	KindConstructionScript: {
		{Name: "then", Direction: DirOutput, Type: TypeExec},
	},
	KindTick: {
		{Name: "then", Direction: DirOutput, Type: TypeExec},
		{Name: "dt", Direction: DirOutput, Type: TypeF32},
	},
	KindPrint: {
		{Name: "exec", Direction: DirInput, Type: TypeExec},
		{Name: "then", Direction: DirOutput, Type: TypeExec},
		{Name: "text", Direction: DirInput, Type: TypeString},
	},
	KindScript: {
		{Name: "exec", Direction: DirInput, Type: TypeExec},
		{Name: "then", Direction: DirOutput, Type: TypeExec},
		{Name: "code", Direction: DirInput, Type: TypeString},
	},
	KindBranch: {
		{Name: "exec", Direction: DirInput, Type: TypeExec},
		{Name: "condition", Direction: DirInput, Type: TypeBool},
		{Name: "true", Direction: DirOutput, Type: TypeExec},
		{Name: "false", Direction: DirOutput, Type: TypeExec},
	},
	KindGetVariable: {
		{Name: "value", Direction: DirOutput, Type: TypeString},
	},
	KindSetVariable: {
		{Name: "exec", Direction: DirInput, Type: TypeExec},
		{Name: "then", Direction: DirOutput, Type: TypeExec},
		{Name: "value", Direction: DirInput, Type: TypeString},
	},
	KindSelf: {
		{Name: "self", Direction: DirOutput, Type: TypeString},
	},
	KindGetActorTransform: {
		{Name: "exec", Direction: DirInput, Type: TypeExec},
		{Name: "then", Direction: DirOutput, Type: TypeExec},
		{Name: "actor", Direction: DirInput, Type: TypeString},
		{Name: "position", Direction: DirOutput, Type: TypeString},
	},
	KindSetActorTransform: {
		{Name: "exec", Direction: DirInput, Type: TypeExec},
		{Name: "then", Direction: DirOutput, Type: TypeExec},
		{Name: "actor", Direction: DirInput, Type: TypeString},
		{Name: "position", Direction: DirInput, Type: TypeString},
	},
	KindSpawnActor: {
		{Name: "exec", Direction: DirInput, Type: TypeExec},
		{Name: "then", Direction: DirOutput, Type: TypeExec},
		{Name: "class", Direction: DirInput, Type: TypeString},
		{Name: "actor", Direction: DirOutput, Type: TypeString},
	},
	KindGetActorByName: {
		{Name: "exec", Direction: DirInput, Type: TypeExec},
		{Name: "then", Direction: DirOutput, Type: TypeExec},
		{Name: "name", Direction: DirInput, Type: TypeString},
		{Name: "actor", Direction: DirOutput, Type: TypeString},
	},
	KindGetActorName: {
		{Name: "actor", Direction: DirInput, Type: TypeString},
		{Name: "name", Direction: DirOutput, Type: TypeString},
	},
}

// templatePins returns a fresh copy of a kind's pin template.
func templatePins(kind NodeKind) []Pin {
	tmpl := pinTemplates[kind]
	pins := make([]Pin, len(tmpl))
	copy(pins, tmpl)
	return pins
}
