package vars

import (
	"errors"
	"fmt"

	"blockvars/pkg/block"
)

// Rename renames a variable across every block in ws, then notifies every
// open auxiliary editor. Editor notification is deliberately
// scope-independent: an open editor may be displaying any variable, no
// matter which workspace it came from.
//
// An empty newName, or a newName exactly equal to oldName, is a silent
// no-op: no mutator runs and no editor is refreshed. A case-only rename
// (Foo → foo) is not exact-equal and proceeds as a real rename, updating
// the canonical casing.
//
// A failing block mutator does not stop propagation; the remaining blocks
// and the editors are still visited, and the per-block errors come back
// joined.
func (e *Env) Rename(oldName, newName string, ws *block.Workspace) error {
	if newName == "" || newName == oldName {
		return nil
	}

	var errs []error
	if ws != nil {
		for _, b := range ws.AllBlocks() {
			m, ok := b.(block.VariableMutator)
			if !ok {
				continue
			}
			if err := m.RenameVariable(oldName, newName); err != nil {
				errs = append(errs, fmt.Errorf("rename %q on %s block: %w", oldName, b.Kind(), err))
			}
		}
	}

	for _, ed := range e.editors {
		if !ed.IsOpen() {
			continue
		}
		ed.RenameParameter(oldName, newName)
		ed.RefreshParams()
	}
	return errors.Join(errs...)
}

// Delete removes a variable from every block in ws, then notifies every
// open auxiliary editor (scope-independent, as for Rename). Deleting a
// name no block in ws declares is a silent no-op: no mutator runs and no
// editor is refreshed.
//
// Per-block failures are isolated the same way as in Rename.
func (e *Env) Delete(name string, ws *block.Workspace) error {
	if !nameInUse(name, ws) {
		return nil
	}

	var errs []error
	if ws != nil {
		for _, b := range ws.AllBlocks() {
			m, ok := b.(block.VariableMutator)
			if !ok {
				continue
			}
			if err := m.RemoveVariable(name); err != nil {
				errs = append(errs, fmt.Errorf("delete %q on %s block: %w", name, b.Kind(), err))
			}
		}
	}

	for _, ed := range e.editors {
		if !ed.IsOpen() {
			continue
		}
		ed.RemoveParameter(name)
		ed.RefreshParams()
	}
	return errors.Join(errs...)
}

// nameInUse reports whether any block in ws declares the name, in any
// category, under the case-insensitive identity model.
func nameInUse(name string, ws *block.Workspace) bool {
	if ws == nil {
		return false
	}
	for _, b := range ws.AllBlocks() {
		user, ok := b.(block.VariableUser)
		if !ok {
			continue
		}
		for _, names := range user.VariableUsages() {
			for _, n := range names {
				if block.EqualNames(n, name) {
					return true
				}
			}
		}
	}
	return false
}
