package model

import "sort"

// GraphKind classifies a named sub-graph partition.
type GraphKind string

const (
	GraphEvent        GraphKind = "event"
	GraphConstruction GraphKind = "construction"
	GraphFunction     GraphKind = "function"
	GraphGeneric      GraphKind = "graph"
)

// Names of the two partitions every blueprint carries by default.
const (
	DefaultEventGraph        = "EventGraph"
	DefaultConstructionGraph = "ConstructionScript"
)

// GraphDef declares one named sub-graph partition. Partitions are not
// structurally nested; nodes reference them by name through Node.Graph.
type GraphDef struct {
	Name string    `json:"name"`
	Kind GraphKind `json:"kind"`
}

// VariableDef declares a blueprint variable. Default may be nil, in which
// case the compiler materializes the type's zero value.
type VariableDef struct {
	Name    string   `json:"name"`
	Type    DataType `json:"type"`
	Default *Value   `json:"default,omitempty"`
}

// Link is a directed edge from an output pin to an input pin. The struct
// itself enforces nothing; the compiler validates direction, typing, and
// partition agreement.
type Link struct {
	From PinID `json:"from"`
	To   PinID `json:"to"`
}

// BlueprintGraph is the authored aggregate: partitions, nodes, links, and
// variables, plus the monotonic counters node and pin ids are drawn from.
// The counters are ordinary fields so that a serialized graph resumes id
// assignment exactly where it left off.
type BlueprintGraph struct {
	ID        string           `json:"id"`
	Graphs    []GraphDef       `json:"graphs"`
	Nodes     map[NodeID]*Node `json:"nodes"`
	Links     []Link           `json:"links"`
	Variables []VariableDef    `json:"variables"`

	NextNodeID uint32 `json:"next_node_id"`
	NextPinID  uint32 `json:"next_pin_id"`
}

// NewBlueprintGraph creates an empty graph with the default partitions.
func NewBlueprintGraph(id string) *BlueprintGraph {
	return &BlueprintGraph{
		ID: id,
		Graphs: []GraphDef{
			{Name: DefaultEventGraph, Kind: GraphEvent},
			{Name: DefaultConstructionGraph, Kind: GraphConstruction},
		},
		Nodes:      map[NodeID]*Node{},
		NextNodeID: 1,
		NextPinID:  1,
	}
}

// EnsureBuiltinGraphs re-adds the default partitions if a deserialized or
// hand-built graph lacks them.
func (g *BlueprintGraph) EnsureBuiltinGraphs() {
	hasEvent, hasConstruction := false, false
	for _, def := range g.Graphs {
		hasEvent = hasEvent || def.Name == DefaultEventGraph
		hasConstruction = hasConstruction || def.Name == DefaultConstructionGraph
	}
	if !hasEvent {
		g.Graphs = append(g.Graphs, GraphDef{Name: DefaultEventGraph, Kind: GraphEvent})
	}
	if !hasConstruction {
		g.Graphs = append(g.Graphs, GraphDef{Name: DefaultConstructionGraph, Kind: GraphConstruction})
	}
}

// AddGraph declares a new partition. Duplicate names are ignored.
func (g *BlueprintGraph) AddGraph(name string, kind GraphKind) {
	for _, def := range g.Graphs {
		if def.Name == name {
			return
		}
	}
	g.Graphs = append(g.Graphs, GraphDef{Name: name, Kind: kind})
}

// AddNode inserts a node, remapping its id and every pin id to fresh
// graph-wide unique ids. Returns the assigned node id.
func (g *BlueprintGraph) AddNode(n *Node) NodeID {
	id := NodeID(g.NextNodeID)
	g.NextNodeID++

	n.ID = id
	for i := range n.Pins {
		n.Pins[i].ID = PinID(g.NextPinID)
		g.NextPinID++
	}

	if g.Nodes == nil {
		g.Nodes = map[NodeID]*Node{}
	}
	g.Nodes[id] = n
	return id
}

// AddLink appends a link. Validity is the compiler's concern.
func (g *BlueprintGraph) AddLink(from, to PinID) {
	g.Links = append(g.Links, Link{From: from, To: to})
}

// Pin finds a pin anywhere in the graph.
func (g *BlueprintGraph) Pin(id PinID) (*Pin, bool) {
	for _, n := range g.Nodes {
		for i := range n.Pins {
			if n.Pins[i].ID == id {
				return &n.Pins[i], true
			}
		}
	}
	return nil, false
}

// PinOwner returns the node owning a pin.
func (g *BlueprintGraph) PinOwner(id PinID) (NodeID, bool) {
	for nodeID, n := range g.Nodes {
		for i := range n.Pins {
			if n.Pins[i].ID == id {
				return nodeID, true
			}
		}
	}
	return 0, false
}

// Variable returns the variable definition with the given name.
func (g *BlueprintGraph) Variable(name string) (*VariableDef, bool) {
	for i := range g.Variables {
		if g.Variables[i].Name == name {
			return &g.Variables[i], true
		}
	}
	return nil, false
}

// SortedNodeIDs returns all node ids in ascending order. Map iteration is
// randomized in Go, and the compiler needs a deterministic node walk.
func (g *BlueprintGraph) SortedNodeIDs() []NodeID {
	ids := make([]NodeID, 0, len(g.Nodes))
	for id := range g.Nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// EffectiveType resolves the type a pin actually carries. For the "value"
// pin of GetVariable/SetVariable nodes, the declared type of the variable
// named by the node's "name" property overrides the pin template; every
// other pin keeps its template type. Validation, lowering, and runtime type
// checks all go through here — caching the result on the pin would go stale
// when the variable's type is edited.
func (g *BlueprintGraph) EffectiveType(pin *Pin) DataType {
	owner, ok := g.PinOwner(pin.ID)
	if !ok {
		return pin.Type
	}
	node := g.Nodes[owner]
	if node.Kind != KindGetVariable && node.Kind != KindSetVariable {
		return pin.Type
	}
	if pin.Name != "value" {
		return pin.Type
	}
	name, ok := node.Property("name")
	if !ok {
		return pin.Type
	}
	varName, ok := name.AsString()
	if !ok {
		return pin.Type
	}
	def, ok := g.Variable(varName)
	if !ok {
		return pin.Type
	}
	return def.Type
}
