package hcl

import (
	"github.com/hashicorp/hcl/v2"
)

// fileSchema is the top-level structure of one authored .hcl file.
type fileSchema struct {
	Blueprints []*blueprintSchema `hcl:"blueprint,block"`
}

type blueprintSchema struct {
	Name      string            `hcl:"name,label"`
	Graphs    []*graphSchema    `hcl:"graph,block"`
	Variables []*variableSchema `hcl:"variable,block"`
	Nodes     []*nodeSchema     `hcl:"node,block"`
	Links     []*linkSchema     `hcl:"link,block"`
}

type graphSchema struct {
	Name string `hcl:"name,label"`
	Kind string `hcl:"kind,optional"`
}

type variableSchema struct {
	Name string `hcl:"name,label"`
	Type string `hcl:"type"`
	// Default stays an expression so the loader can evaluate and convert
	// it against the declared type.
	Default hcl.Expression `hcl:"default,optional"`
}

type nodeSchema struct {
	Name     string    `hcl:"name,label"`
	Kind     string    `hcl:"kind"`
	Graph    string    `hcl:"graph,optional"`
	Position []float64 `hcl:"position,optional"`
	// Remain collects every other attribute; they become node properties.
	Remain hcl.Body `hcl:",remain"`
}

type linkSchema struct {
	From string `hcl:"from"`
	To   string `hcl:"to"`
}
