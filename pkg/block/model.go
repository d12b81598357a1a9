package block

// Block is the interface implemented by every node in a workspace tree.
// Block kinds are heterogeneous: a kind that works with variables opts in
// through the capability interfaces below, everything else is skipped by
// the registry.
type Block interface {
	Kind() string
	Children() []Block
}

// VariableUser is the capability for blocks that declare variable usages.
// The returned map goes from category to the ordered variable names the
// block declares under that category. Blocks without this capability
// declare no variables.
type VariableUser interface {
	VariableUsages() map[string][]string
}

// VariableMutator is the capability for blocks that react to variable
// renames and deletions. Blocks without it are unaffected by propagation.
type VariableMutator interface {
	RenameVariable(oldName, newName string) error
	RemoveVariable(name string) error
}

// NamedVariable is the capability for blocks bound to a single variable
// name, such as getter and setter blocks. Palette construction uses it to
// bind display names onto freshly built instances.
type NamedVariable interface {
	VariableName() string
	SetVariableName(name string)
}

// Workspace holds an independent tree of blocks. It is the scope boundary
// for rename and delete propagation: operations on one workspace never
// touch blocks of another.
type Workspace struct {
	name string
	top  []Block
}

// NewWorkspace returns an empty workspace with the given display name.
func NewWorkspace(name string) *Workspace {
	return &Workspace{name: name}
}

// Name returns the workspace display name.
func (w *Workspace) Name() string { return w.name }

// Add appends a top-level block to the workspace.
func (w *Workspace) Add(b Block) {
	w.top = append(w.top, b)
}

// TopBlocks returns the top-level blocks in insertion order.
func (w *Workspace) TopBlocks() []Block {
	return w.top
}

// AllBlocks returns every block in the workspace: the top-level blocks and
// all their descendants, depth-first.
func (w *Workspace) AllBlocks() []Block {
	return Flatten(w.top)
}

// Flatten returns the given roots plus all their descendants, depth-first.
func Flatten(roots []Block) []Block {
	var out []Block
	for _, r := range roots {
		if r == nil {
			continue
		}
		out = append(out, r)
		out = append(out, Flatten(r.Children())...)
	}
	return out
}
