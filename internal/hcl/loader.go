package hcl

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/blueprintgo/internal/ctxlog"
	"github.com/vk/blueprintgo/internal/fsutil"
	"github.com/vk/blueprintgo/internal/model"
)

// Loader parses authored .hcl blueprint files into graphs.
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a Loader.
func NewLoader() *Loader {
	return &Loader{parser: hclparse.NewParser()}
}

// Load reads path — a single .hcl file or a directory of them — and builds
// the blueprint graph. Exactly one blueprint block must be present across
// all loaded files.
func (l *Loader) Load(ctx context.Context, path string) (*model.BlueprintGraph, error) {
	logger := ctxlog.FromContext(ctx)

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("hcl: %w", err)
	}

	files := []string{path}
	if info.IsDir() {
		files, err = fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("hcl: finding blueprint files in %s: %w", path, err)
		}
		if len(files) == 0 {
			return nil, fmt.Errorf("hcl: no .hcl files found in %s", path)
		}
	}
	logger.Debug("Loading blueprint files.", "count", len(files))

	var blueprints []*blueprintSchema
	for _, file := range files {
		hclFile, diags := l.parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("hcl: parsing %s: %w", file, diags)
		}
		var parsed fileSchema
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &parsed); diags.HasErrors() {
			return nil, fmt.Errorf("hcl: decoding %s: %w", file, diags)
		}
		blueprints = append(blueprints, parsed.Blueprints...)
	}

	if len(blueprints) == 0 {
		return nil, fmt.Errorf("hcl: no blueprint block found")
	}
	if len(blueprints) > 1 {
		return nil, fmt.Errorf("hcl: expected one blueprint block, found %d", len(blueprints))
	}

	return l.translate(ctx, blueprints[0])
}

// LoadBytes builds the graph from in-memory HCL source. Used by tests and
// embedded callers.
func (l *Loader) LoadBytes(ctx context.Context, filename string, src []byte) (*model.BlueprintGraph, error) {
	hclFile, diags := l.parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("hcl: parsing %s: %w", filename, diags)
	}
	var parsed fileSchema
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("hcl: decoding %s: %w", filename, diags)
	}
	if len(parsed.Blueprints) != 1 {
		return nil, fmt.Errorf("hcl: expected one blueprint block, found %d", len(parsed.Blueprints))
	}
	return l.translate(ctx, parsed.Blueprints[0])
}

// translate builds the graph aggregate from a decoded blueprint block.
func (l *Loader) translate(ctx context.Context, bp *blueprintSchema) (*model.BlueprintGraph, error) {
	logger := ctxlog.FromContext(ctx)
	g := model.NewBlueprintGraph(bp.Name)

	for _, gs := range bp.Graphs {
		kind := model.GraphGeneric
		switch gs.Kind {
		case "", string(model.GraphGeneric):
		case string(model.GraphEvent):
			kind = model.GraphEvent
		case string(model.GraphConstruction):
			kind = model.GraphConstruction
		case string(model.GraphFunction):
			kind = model.GraphFunction
		default:
			return nil, fmt.Errorf("hcl: graph %q: unknown kind %q", gs.Name, gs.Kind)
		}
		g.AddGraph(gs.Name, kind)
	}

	for _, vs := range bp.Variables {
		dt, err := model.ParseDataType(vs.Type)
		if err != nil {
			return nil, fmt.Errorf("hcl: variable %q: %w", vs.Name, err)
		}
		def := model.VariableDef{Name: vs.Name, Type: dt}
		if vs.Default != nil {
			val, diags := vs.Default.Value(nil)
			if !diags.HasErrors() && !val.IsNull() {
				converted, err := ctyToValue(val, dt)
				if err != nil {
					return nil, fmt.Errorf("hcl: variable %q default: %w", vs.Name, err)
				}
				def.Default = &converted
			}
		}
		g.Variables = append(g.Variables, def)
	}

	nodeIDs := map[string]model.NodeID{}
	for _, ns := range bp.Nodes {
		if _, dup := nodeIDs[ns.Name]; dup {
			return nil, fmt.Errorf("hcl: duplicate node label %q", ns.Name)
		}
		kind, err := model.ParseNodeKind(ns.Kind)
		if err != nil {
			return nil, fmt.Errorf("hcl: node %q: %w", ns.Name, err)
		}
		node := model.NewNode(kind)
		if ns.Graph != "" {
			node.Graph = ns.Graph
		}
		if len(ns.Position) >= 2 {
			node.Position = [2]float32{float32(ns.Position[0]), float32(ns.Position[1])}
		}
		if err := l.applyProperties(g, node, ns); err != nil {
			return nil, fmt.Errorf("hcl: node %q: %w", ns.Name, err)
		}
		nodeIDs[ns.Name] = g.AddNode(node)
	}
	logger.Debug("Blueprint nodes translated.", "count", len(nodeIDs))

	for _, ls := range bp.Links {
		from, err := resolvePinRef(g, nodeIDs, ls.From)
		if err != nil {
			return nil, fmt.Errorf("hcl: link from: %w", err)
		}
		to, err := resolvePinRef(g, nodeIDs, ls.To)
		if err != nil {
			return nil, fmt.Errorf("hcl: link to: %w", err)
		}
		g.AddLink(from, to)
	}

	return g, nil
}

// applyProperties turns the node block's remaining attributes into literal
// properties. An attribute matching an input pin converts against that
// pin's type; the "value" pin of variable nodes converts against the
// declared type of the referenced variable instead.
func (l *Loader) applyProperties(g *model.BlueprintGraph, node *model.Node, ns *nodeSchema) error {
	if ns.Remain == nil {
		return nil
	}
	attrs, _ := ns.Remain.JustAttributes()
	if len(attrs) == 0 {
		return nil
	}

	values := map[string]model.Value{}

	// Resolve "name" first: it selects the variable whose declared type
	// governs the "value" attribute's conversion below.
	if attr, ok := attrs["name"]; ok {
		v, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return fmt.Errorf("attribute %q: %w", "name", diags)
		}
		converted, err := ctyToValue(v, model.TypeString)
		if err != nil {
			return fmt.Errorf("attribute %q: %w", "name", err)
		}
		values["name"] = converted
	}

	for name, attr := range attrs {
		if name == "name" {
			continue
		}
		v, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return fmt.Errorf("attribute %q: %w", name, diags)
		}
		converted, err := ctyToValue(v, l.propertyTarget(g, node, values, name))
		if err != nil {
			return fmt.Errorf("attribute %q: %w", name, err)
		}
		values[name] = converted
	}

	for name, v := range values {
		node.SetProperty(name, v)
	}
	return nil
}

// propertyTarget decides what type a node property converts to: the
// matching input pin's template type, the referenced variable's type for a
// variable node's "value", or empty for a free-form property.
func (l *Loader) propertyTarget(g *model.BlueprintGraph, node *model.Node, parsed map[string]model.Value, attr string) model.DataType {
	variableValue := attr == "value" &&
		(node.Kind == model.KindGetVariable || node.Kind == model.KindSetVariable)
	if variableValue {
		if nameVal, ok := parsed["name"]; ok {
			if varName, ok := nameVal.AsString(); ok {
				if def, ok := g.Variable(varName); ok {
					return def.Type
				}
			}
		}
	}
	for i := range node.Pins {
		if node.Pins[i].Name == attr && node.Pins[i].Direction == model.DirInput {
			if variableValue {
				return ""
			}
			return node.Pins[i].Type
		}
	}
	return ""
}

// resolvePinRef parses a "nodeLabel.pinName" reference.
func resolvePinRef(g *model.BlueprintGraph, nodeIDs map[string]model.NodeID, ref string) (model.PinID, error) {
	label, pinName, ok := strings.Cut(ref, ".")
	if !ok {
		return 0, fmt.Errorf("malformed pin reference %q, want \"node.pin\"", ref)
	}
	nodeID, ok := nodeIDs[label]
	if !ok {
		return 0, fmt.Errorf("pin reference %q: unknown node %q", ref, label)
	}
	pinID, ok := g.Nodes[nodeID].PinNamed(pinName)
	if !ok {
		return 0, fmt.Errorf("pin reference %q: node has no pin %q", ref, pinName)
	}
	return pinID, nil
}
