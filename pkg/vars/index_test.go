package vars

import (
	"errors"
	"sort"
	"strings"
	"testing"

	"blockvars/pkg/block"
)

// recEditor records propagation notifications for assertions.
type recEditor struct {
	open      bool
	renames   [][2]string
	removals  []string
	refreshes int
}

func (r *recEditor) IsOpen() bool { return r.open }
func (r *recEditor) RenameParameter(oldName, newName string) {
	r.renames = append(r.renames, [2]string{oldName, newName})
}
func (r *recEditor) RemoveParameter(name string) {
	r.removals = append(r.removals, name)
}
func (r *recEditor) RefreshParams() { r.refreshes++ }

// catSet is a CategoryValidator recognizing a fixed set of categories.
type catSet map[string]bool

func (c catSet) IsRecognizedCategory(name string) bool { return c[name] }

func newTestEnv(t *testing.T) *Env {
	t.Helper()
	catalog := block.NewCatalog()
	if err := block.RegisterStandardKinds(catalog); err != nil {
		t.Fatalf("registering standard kinds: %v", err)
	}
	return NewEnv(catalog)
}

// addVar adds a getter block bound to the given name to ws.
func addVar(ws *block.Workspace, name string) *block.VarBlock {
	v := block.NewVarBlock(block.KindVariableGet, ws)
	v.SetVariableName(name)
	ws.Add(v)
	return v
}

func sortedLower(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = strings.ToLower(n)
	}
	sort.Strings(out)
	return out
}

func TestUsedNames_CaseInsensitiveDedupe(t *testing.T) {
	env := newTestEnv(t)
	ws := block.NewWorkspace("main")
	addVar(ws, "Foo")
	addVar(ws, "foo")
	addVar(ws, "BAR")
	env.SetDefaultWorkspace(ws)

	names, err := env.UsedNames(NameQuery{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) != 2 {
		t.Fatalf("expected 2 names, got %v", names)
	}

	// No two results may collide case-insensitively.
	seen := map[string]bool{}
	for _, n := range names {
		key := strings.ToLower(n)
		if seen[key] {
			t.Fatalf("case-insensitive duplicate in result: %v", names)
		}
		seen[key] = true
	}

	// First-encountered casing is canonical.
	for _, n := range names {
		if strings.EqualFold(n, "foo") && n != "Foo" {
			t.Fatalf("expected canonical casing Foo, got %q", n)
		}
	}
}

func TestUsedNames_SkipsIncapableAndEmpty(t *testing.T) {
	env := newTestEnv(t)
	ws := block.NewWorkspace("main")
	stack := block.NewStackBlock(ws) // no variable capability
	inner := block.NewVarBlock(block.KindVariableSet, ws)
	inner.SetVariableName("depth")
	stack.AppendChild(inner)
	ws.Add(stack)
	half := addVar(ws, "x")
	half.SetVariableName("") // half-constructed
	env.SetDefaultWorkspace(ws)

	names, err := env.UsedNames(NameQuery{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) != 1 || names[0] != "depth" {
		t.Fatalf("expected [depth], got %v", names)
	}
}

func TestUsedNames_ExplicitRootsIncludeDescendants(t *testing.T) {
	env := newTestEnv(t)
	ws := block.NewWorkspace("main")
	addVar(ws, "outside")
	env.SetDefaultWorkspace(ws)

	stack := block.NewStackBlock(ws)
	child := block.NewVarBlock(block.KindVariableGet, ws)
	child.SetVariableName("inside")
	stack.AppendChild(child)

	names, err := env.UsedNames(NameQuery{Roots: []block.Block{stack}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) != 1 || names[0] != "inside" {
		t.Fatalf("expected scoped query to see only [inside], got %v", names)
	}
}

func TestUsedNames_NoDefaultWorkspace(t *testing.T) {
	env := newTestEnv(t)

	names, err := env.UsedNames(NameQuery{})
	if err != nil {
		t.Fatalf("missing default workspace must not error, got: %v", err)
	}
	if len(names) != 0 {
		t.Fatalf("expected empty result, got %v", names)
	}
}

func TestUsedNames_CategoryFilter(t *testing.T) {
	env := newTestEnv(t)
	env.SetCategoryValidator(catSet{"String": true})

	ws := block.NewWorkspace("main")
	proc := block.NewProcBlock("greet", ws)
	proc.AddParam(block.CategoryDefault, "count")
	proc.AddParam("String", "message")
	proc.AddParam("String", "suffix")
	ws.Add(proc)
	env.SetDefaultWorkspace(ws)

	t.Run("exact category key", func(t *testing.T) {
		names, err := env.UsedNames(NameQuery{Category: "String"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []string{"message", "suffix"}
		got := sortedLower(names)
		if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
			t.Fatalf("expected %v, got %v", want, names)
		}
	})

	t.Run("default sentinel never validated", func(t *testing.T) {
		names, err := env.UsedNames(NameQuery{Category: block.CategoryDefault})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(names) != 1 || names[0] != "count" {
			t.Fatalf("expected [count], got %v", names)
		}
	})

	t.Run("omitted category unions all", func(t *testing.T) {
		names, err := env.UsedNames(NameQuery{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(names) != 3 {
			t.Fatalf("expected union of 3 names, got %v", names)
		}
	})

	t.Run("unrecognized category", func(t *testing.T) {
		_, err := env.UsedNames(NameQuery{Category: "Colour"})
		if !errors.Is(err, ErrInvalidCategory) {
			t.Fatalf("expected ErrInvalidCategory, got %v", err)
		}
	})

	t.Run("no validator rejects non-default", func(t *testing.T) {
		bare := newTestEnv(t)
		bare.SetDefaultWorkspace(ws)
		_, err := bare.UsedNames(NameQuery{Category: "String"})
		if !errors.Is(err, ErrInvalidCategory) {
			t.Fatalf("expected ErrInvalidCategory, got %v", err)
		}
	})
}
