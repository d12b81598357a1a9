// Package vars maintains the variable namespace of block workspaces: it
// derives the set of names in use, generates fresh unique names, propagates
// renames and deletions, and builds palette contents per category.
//
// The namespace is case-insensitive: two names differing only in letter
// case are the same variable, and the first-encountered casing is the
// canonical display form. Nothing is cached — every query walks the live
// block tree at call time.
package vars

import "blockvars/pkg/block"

// CategoryValidator is the optional collaborator that knows the strictly
// typed categories. NameIndex consults it for every category filter other
// than the Default sentinel.
type CategoryValidator interface {
	IsRecognizedCategory(name string) bool
}

// ParamEditor is the capability of auxiliary editors (e.g. a procedure
// editor) that hold their own derived parameter lists. Open editors are
// notified after every rename/delete propagation so those lists stay
// consistent.
type ParamEditor interface {
	IsOpen() bool
	RenameParameter(oldName, newName string)
	RemoveParameter(name string)
	RefreshParams()
}

// Env is the process-scoped state all registry operations hang off:
// the kind catalog, the default workspace, the category descriptor maps
// and the live auxiliary editor list. Collaborators populate it at startup;
// there is no teardown. Env is not safe for concurrent use — the registry
// runs synchronously inside the host UI loop.
type Env struct {
	catalog   *block.Catalog
	defaultWS *block.Workspace
	validator CategoryValidator

	getters map[string]string // category → getter kind name
	setters map[string]string // category → setter kind name

	editors []ParamEditor
}

// NewEnv returns an Env backed by the given catalog, with the Default
// category pre-registered to the standard getter/setter pair.
func NewEnv(catalog *block.Catalog) *Env {
	e := &Env{
		catalog: catalog,
		getters: make(map[string]string),
		setters: make(map[string]string),
	}
	e.RegisterGetter(block.CategoryDefault, block.KindVariableGet)
	e.RegisterSetter(block.CategoryDefault, block.KindVariableSet)
	return e
}

// SetDefaultWorkspace sets the workspace unscoped name queries walk.
// It may be nil, in which case unscoped queries return nothing.
func (e *Env) SetDefaultWorkspace(ws *block.Workspace) {
	e.defaultWS = ws
}

// DefaultWorkspace returns the current default workspace, or nil.
func (e *Env) DefaultWorkspace() *block.Workspace {
	return e.defaultWS
}

// SetCategoryValidator sets the strict-type collaborator. Without one,
// every category filter other than Default is rejected.
func (e *Env) SetCategoryValidator(v CategoryValidator) {
	e.validator = v
}

// AttachEditor adds an auxiliary editor to the live-instance list.
// Only editors reporting IsOpen are notified during propagation.
func (e *Env) AttachEditor(ed ParamEditor) {
	e.editors = append(e.editors, ed)
}
