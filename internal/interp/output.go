package interp

import "github.com/vk/blueprintgo/internal/model"

// EventKind discriminates Event.
type EventKind string

const (
	EventEnterNode EventKind = "enter_node"
	EventPrint     EventKind = "print"
)

// Event is one entry of the ordered execution log: either a node visit or
// an emitted message. Comparable, so tests can assert containment directly.
type Event struct {
	Kind EventKind    `json:"kind"`
	Node model.NodeID `json:"node,omitempty"`
	Text string       `json:"text,omitempty"`
}

// EnterNode records that the chain walk reached a node.
func EnterNode(id model.NodeID) Event {
	return Event{Kind: EventEnterNode, Node: id}
}

// Print records an emitted message.
func Print(text string) Event {
	return Event{Kind: EventPrint, Text: text}
}

// Output is what every entry-point run returns: the ordered event log and a
// full snapshot of the variable store after the call. The host observes the
// events; nothing in the core depends on them being consumed.
type Output struct {
	Events    []Event                `json:"events"`
	Variables map[string]model.Value `json:"variables"`
}
