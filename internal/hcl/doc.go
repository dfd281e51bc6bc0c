// Package hcl loads blueprint graphs authored as HCL. This is the textual
// authoring surface: a blueprint block declares partitions, variables,
// nodes, and links, and the loader translates it into a model.BlueprintGraph
// through the model's own id-assigning mutators.
//
//	blueprint "hello" {
//	  variable "message" {
//	    type    = "string"
//	    default = "Hello from variable!"
//	  }
//
//	  node "begin" { kind = "BeginPlay" }
//	  node "say"   { kind = "Print" }
//
//	  node "msg" {
//	    kind = "GetVariable"
//	    name = "message"
//	  }
//
//	  link {
//	    from = "begin.then"
//	    to   = "say.exec"
//	  }
//
//	  link {
//	    from = "msg.value"
//	    to   = "say.text"
//	  }
//	}
//
// Attributes on a node block beyond kind/graph/position become literal node
// properties. Pin references take the form "nodeLabel.pinName".
package hcl
