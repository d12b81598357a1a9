// Package blockyaml loads block workspaces from YAML documents. It exists
// for the command-line front ends: fixtures go in, live workspaces come
// out. It is not a persistence format for the variable registry itself.
package blockyaml

import (
	"fmt"
	"os"

	"blockvars/pkg/block"

	"gopkg.in/yaml.v3"
)

// Document is the Go-level representation of a parsed workspace file.
//
// Two YAML forms are supported:
//   - Mapping form (preferred): a mapping with a "workspaces" key.
//   - Shorthand form: a bare sequence of blocks, interpreted as a single
//     workspace named "main".
type Document struct {
	Workspaces []*block.Workspace
}

// ---- Internal YAML parsing structs ----------------------------------------

type yamlDocument struct {
	Workspaces []yamlWorkspace `yaml:"workspaces,omitempty"`
}

type yamlWorkspace struct {
	Name   string      `yaml:"name"`
	Blocks []yamlBlock `yaml:"blocks,omitempty"`
}

// yamlBlock is the YAML representation of one block.
//
//   - kind: required; one of the standard kind names.
//   - var/category: binding of a getter/setter block.
//   - name/params: procedure name and per-category parameter lists.
//   - children: nested blocks (stack containers, procedure bodies).
type yamlBlock struct {
	Kind     string              `yaml:"kind"`
	Var      string              `yaml:"var,omitempty"`
	Category string              `yaml:"category,omitempty"`
	Name     string              `yaml:"name,omitempty"`
	Params   map[string][]string `yaml:"params,omitempty"`
	Children []yamlBlock         `yaml:"children,omitempty"`
}

// ---- Parse -----------------------------------------------------------------

// Parse parses a YAML document in either mapping or shorthand form.
func Parse(in []byte) (Document, error) {
	var docNode yaml.Node
	if err := yaml.Unmarshal(in, &docNode); err != nil {
		return Document{}, err
	}
	if len(docNode.Content) == 0 {
		return Document{}, fmt.Errorf("phase=parse path=<doc>: empty YAML")
	}
	root := docNode.Content[0]

	switch root.Kind {
	case yaml.SequenceNode:
		// Shorthand form: bare list → one workspace.
		var blocks []yamlBlock
		if err := root.Decode(&blocks); err != nil {
			return Document{}, err
		}
		ws, err := convertWorkspace(yamlWorkspace{Name: "main", Blocks: blocks})
		if err != nil {
			return Document{}, err
		}
		return Document{Workspaces: []*block.Workspace{ws}}, nil

	case yaml.MappingNode:
		var yd yamlDocument
		if err := root.Decode(&yd); err != nil {
			return Document{}, err
		}
		out := Document{}
		for _, yw := range yd.Workspaces {
			ws, err := convertWorkspace(yw)
			if err != nil {
				return Document{}, err
			}
			out.Workspaces = append(out.Workspaces, ws)
		}
		return out, nil

	default:
		return Document{}, fmt.Errorf("phase=parse path=<doc>: unexpected YAML root kind: %d", root.Kind)
	}
}

// ParseFile reads and parses one workspace file.
func ParseFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("reading %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Load parses every given file and returns the concatenated workspaces.
func Load(paths []string) ([]*block.Workspace, error) {
	var out []*block.Workspace
	for _, p := range paths {
		doc, err := ParseFile(p)
		if err != nil {
			return nil, err
		}
		out = append(out, doc.Workspaces...)
	}
	return out, nil
}

// ---- Convert: yaml blocks → live blocks ------------------------------------

func convertWorkspace(yw yamlWorkspace) (*block.Workspace, error) {
	if yw.Name == "" {
		return nil, fmt.Errorf("phase=parse path=<workspace>: workspace is missing a name")
	}
	ws := block.NewWorkspace(yw.Name)
	for _, yb := range yw.Blocks {
		b, err := convertBlock(yb, ws, yw.Name)
		if err != nil {
			return nil, err
		}
		ws.Add(b)
	}
	return ws, nil
}

func convertBlock(yb yamlBlock, ws *block.Workspace, path string) (block.Block, error) {
	path = joinPath(path, yb.Kind)

	switch yb.Kind {
	case block.KindVariableGet, block.KindVariableSet:
		v := block.NewVarBlock(yb.Kind, ws)
		if yb.Var != "" {
			v.SetVariableName(yb.Var)
		}
		v.SetCategory(yb.Category)
		if len(yb.Children) > 0 {
			return nil, fmt.Errorf("phase=parse path=%s: %s blocks take no children", path, yb.Kind)
		}
		return v, nil

	case block.KindProcedure:
		p := block.NewProcBlock(yb.Name, ws)
		for cat, names := range yb.Params {
			for _, n := range names {
				p.AddParam(cat, n)
			}
		}
		for _, yc := range yb.Children {
			c, err := convertBlock(yc, ws, path)
			if err != nil {
				return nil, err
			}
			p.AppendChild(c)
		}
		return p, nil

	case block.KindStack:
		s := block.NewStackBlock(ws)
		for _, yc := range yb.Children {
			c, err := convertBlock(yc, ws, path)
			if err != nil {
				return nil, err
			}
			s.AppendChild(c)
		}
		return s, nil

	case "":
		return nil, fmt.Errorf("phase=parse path=%s: block is missing a kind", path)

	default:
		return nil, fmt.Errorf("phase=parse path=%s: %w: %s", path, block.ErrUnknownKind, yb.Kind)
	}
}

func joinPath(base, seg string) string {
	if seg == "" {
		seg = "<missing>"
	}
	if base == "" {
		return seg
	}
	return base + "." + seg
}
