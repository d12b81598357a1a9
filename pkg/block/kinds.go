package block

import "strings"

// CategoryDefault is the fallback category for variables declared without
// an explicit one. It is always a valid category filter.
const CategoryDefault = "Default"

// DefaultVariableName is the name a freshly constructed getter or setter
// block binds itself to. The palette placeholder entry resolves to it.
const DefaultVariableName = "item"

// Standard kind names.
const (
	KindVariableGet = "variable_get"
	KindVariableSet = "variable_set"
	KindProcedure   = "procedure"
	KindStack       = "stack"
)

// EqualNames reports whether two variable names are the same under the
// registry's case-insensitive identity model.
func EqualNames(a, b string) bool {
	return strings.ToLower(a) == strings.ToLower(b)
}

// RegisterStandardKinds adds the built-in kinds to the catalog.
func RegisterStandardKinds(c *Catalog) error {
	for _, kind := range []string{KindVariableGet, KindVariableSet} {
		k := kind
		if err := c.Register(k, func(ws *Workspace) Block {
			return NewVarBlock(k, ws)
		}); err != nil {
			return err
		}
	}
	if err := c.Register(KindProcedure, func(ws *Workspace) Block {
		return NewProcBlock("", ws)
	}); err != nil {
		return err
	}
	return c.Register(KindStack, func(ws *Workspace) Block {
		return NewStackBlock(ws)
	})
}

// ---------------------------------------------------------------------------
// VarBlock — getter/setter bound to a single variable
// ---------------------------------------------------------------------------

// VarBlock reads or writes one variable. Construction binds it to
// DefaultVariableName in the Default category.
type VarBlock struct {
	kind     string
	ws       *Workspace
	name     string
	category string
}

// NewVarBlock returns a VarBlock of the given kind scoped to ws.
func NewVarBlock(kind string, ws *Workspace) *VarBlock {
	return &VarBlock{
		kind:     kind,
		ws:       ws,
		name:     DefaultVariableName,
		category: CategoryDefault,
	}
}

func (v *VarBlock) Kind() string      { return v.kind }
func (v *VarBlock) Children() []Block { return nil }

// Workspace returns the workspace the block is scoped to.
func (v *VarBlock) Workspace() *Workspace { return v.ws }

func (v *VarBlock) VariableName() string        { return v.name }
func (v *VarBlock) SetVariableName(name string) { v.name = name }

// Category returns the category of the bound variable.
func (v *VarBlock) Category() string { return v.category }

// SetCategory changes the category of the bound variable.
func (v *VarBlock) SetCategory(category string) {
	if category == "" {
		category = CategoryDefault
	}
	v.category = category
}

func (v *VarBlock) VariableUsages() map[string][]string {
	if v.name == "" {
		// Half-constructed block: nothing to declare yet.
		return nil
	}
	return map[string][]string{v.category: {v.name}}
}

// RenameVariable rebinds the block when its variable matches oldName.
// The match is case-insensitive; the new name is taken verbatim.
func (v *VarBlock) RenameVariable(oldName, newName string) error {
	if EqualNames(v.name, oldName) {
		v.name = newName
	}
	return nil
}

// RemoveVariable resets the block to the default binding when its variable
// matches name. Disposal of the block itself is the workspace owner's call.
func (v *VarBlock) RemoveVariable(name string) error {
	if EqualNames(v.name, name) {
		v.name = DefaultVariableName
	}
	return nil
}

// ---------------------------------------------------------------------------
// ProcBlock — procedure definition with per-category parameters
// ---------------------------------------------------------------------------

// ProcBlock defines a procedure. Its parameters are the variables it
// declares, kept in declaration order per category. Body blocks are
// children, so they are reachable from workspace traversal.
type ProcBlock struct {
	name   string
	ws     *Workspace
	params map[string][]string
	body   []Block
}

// NewProcBlock returns an empty procedure definition scoped to ws.
func NewProcBlock(name string, ws *Workspace) *ProcBlock {
	return &ProcBlock{
		name:   name,
		ws:     ws,
		params: make(map[string][]string),
	}
}

func (p *ProcBlock) Kind() string      { return KindProcedure }
func (p *ProcBlock) Children() []Block { return p.body }

// Name returns the procedure name.
func (p *ProcBlock) Name() string { return p.name }

// AppendChild adds a block to the procedure body.
func (p *ProcBlock) AppendChild(b Block) {
	p.body = append(p.body, b)
}

// AddParam declares a parameter under the given category.
// An empty category defaults to CategoryDefault.
func (p *ProcBlock) AddParam(category, name string) {
	if category == "" {
		category = CategoryDefault
	}
	p.params[category] = append(p.params[category], name)
}

// Params returns the declared parameter names for one category.
func (p *ProcBlock) Params(category string) []string {
	return p.params[category]
}

func (p *ProcBlock) VariableUsages() map[string][]string {
	out := make(map[string][]string, len(p.params))
	for cat, names := range p.params {
		out[cat] = append([]string(nil), names...)
	}
	return out
}

// RenameVariable replaces every parameter matching oldName, in any
// category, with newName. The match is case-insensitive.
func (p *ProcBlock) RenameVariable(oldName, newName string) error {
	for _, names := range p.params {
		for i, n := range names {
			if EqualNames(n, oldName) {
				names[i] = newName
			}
		}
	}
	return nil
}

// RemoveVariable drops every parameter matching name from the declaration
// lists. Removing an undeclared name is a no-op.
func (p *ProcBlock) RemoveVariable(name string) error {
	for cat, names := range p.params {
		kept := names[:0]
		for _, n := range names {
			if !EqualNames(n, name) {
				kept = append(kept, n)
			}
		}
		if len(kept) == 0 {
			delete(p.params, cat)
		} else {
			p.params[cat] = kept
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// StackBlock — plain container, no variable capabilities
// ---------------------------------------------------------------------------

// StackBlock groups child blocks. It declares no variables and ignores
// propagation, exercising the capability-absent paths.
type StackBlock struct {
	ws       *Workspace
	children []Block
}

// NewStackBlock returns an empty container scoped to ws.
func NewStackBlock(ws *Workspace) *StackBlock {
	return &StackBlock{ws: ws}
}

func (s *StackBlock) Kind() string      { return KindStack }
func (s *StackBlock) Children() []Block { return s.children }

// AppendChild adds a child block to the container.
func (s *StackBlock) AppendChild(b Block) {
	s.children = append(s.children, b)
}
