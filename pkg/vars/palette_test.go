package vars

import (
	"testing"

	"blockvars/pkg/block"
)

// paletteEntry flattens a palette block for comparison.
type paletteEntry struct {
	kind string
	name string
}

func flattenPalette(t *testing.T, blocks []block.Block) []paletteEntry {
	t.Helper()
	out := make([]paletteEntry, len(blocks))
	for i, b := range blocks {
		nv, ok := b.(block.NamedVariable)
		if !ok {
			t.Fatalf("palette block %d (%s) has no bound variable", i, b.Kind())
		}
		out[i] = paletteEntry{kind: b.Kind(), name: nv.VariableName()}
	}
	return out
}

func TestCategoryContents(t *testing.T) {
	t.Run("sorted pairs with placeholder first", func(t *testing.T) {
		env := newTestEnv(t)
		ws := block.NewWorkspace("main")
		addVar(ws, "b")
		addVar(ws, "a")
		env.SetDefaultWorkspace(ws)

		blocks, spacing, err := env.CategoryContents(block.CategoryDefault, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := []paletteEntry{
			{block.KindVariableSet, block.DefaultVariableName},
			{block.KindVariableGet, block.DefaultVariableName},
			{block.KindVariableSet, "a"},
			{block.KindVariableGet, "a"},
			{block.KindVariableSet, "b"},
			{block.KindVariableGet, "b"},
		}
		got := flattenPalette(t, blocks)
		if len(got) != len(want) {
			t.Fatalf("expected %d blocks, got %d: %+v", len(want), len(got), got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("block %d: expected %+v, got %+v", i, want[i], got[i])
			}
		}

		wantSpacing := []int{Margin, Margin * 3, Margin, Margin * 3, Margin, Margin * 3}
		if len(spacing) != len(wantSpacing) {
			t.Fatalf("expected %d spacing values, got %d", len(wantSpacing), len(spacing))
		}
		for i := range wantSpacing {
			if spacing[i] != wantSpacing[i] {
				t.Fatalf("spacing %d: expected %d, got %d", i, wantSpacing[i], spacing[i])
			}
		}
	})

	t.Run("sort is case-insensitive", func(t *testing.T) {
		env := newTestEnv(t)
		ws := block.NewWorkspace("main")
		addVar(ws, "Beta")
		addVar(ws, "alpha")
		env.SetDefaultWorkspace(ws)

		blocks, _, err := env.CategoryContents(block.CategoryDefault, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := flattenPalette(t, blocks)
		if len(got) != 4 || got[0].name != "alpha" || got[2].name != "Beta" {
			t.Fatalf("expected alpha before Beta, got %+v", got)
		}
	})

	t.Run("placeholder suppresses same-named variable", func(t *testing.T) {
		env := newTestEnv(t)
		ws := block.NewWorkspace("main")
		addVar(ws, "Item") // collides with the placeholder's default binding
		addVar(ws, "zz")
		env.SetDefaultWorkspace(ws)

		blocks, _, err := env.CategoryContents(block.CategoryDefault, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := flattenPalette(t, blocks)
		// Placeholder pair plus the zz pair; the Item entry is skipped.
		if len(got) != 4 {
			t.Fatalf("expected 4 blocks, got %+v", got)
		}
		for _, e := range got[:2] {
			if e.name != block.DefaultVariableName {
				t.Fatalf("expected placeholder binding %q, got %+v", block.DefaultVariableName, e)
			}
		}
		if got[2].name != "zz" {
			t.Fatalf("expected zz pair after placeholder, got %+v", got)
		}
	})

	t.Run("lone getter gets double margin", func(t *testing.T) {
		env := newTestEnv(t)
		env.SetCategoryValidator(catSet{"String": true})
		env.RegisterGetter("String", block.KindVariableGet)

		ws := block.NewWorkspace("main")
		proc := block.NewProcBlock("greet", ws)
		proc.AddParam("String", "msg")
		ws.Add(proc)
		env.SetDefaultWorkspace(ws)

		blocks, spacing, err := env.CategoryContents("String", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(blocks) != 1 || blocks[0].Kind() != block.KindVariableGet {
			t.Fatalf("expected a single getter, got %+v", flattenPalette(t, blocks))
		}
		if len(spacing) != 1 || spacing[0] != Margin*2 {
			t.Fatalf("expected spacing [%d], got %v", Margin*2, spacing)
		}
	})

	t.Run("unregistered category yields nothing", func(t *testing.T) {
		env := newTestEnv(t)
		env.SetCategoryValidator(catSet{"Colour": true})

		ws := block.NewWorkspace("main")
		proc := block.NewProcBlock("paint", ws)
		proc.AddParam("Colour", "shade")
		ws.Add(proc)
		env.SetDefaultWorkspace(ws)

		blocks, spacing, err := env.CategoryContents("Colour", true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(blocks) != 0 || len(spacing) != 0 {
			t.Fatalf("expected empty palette, got %d blocks", len(blocks))
		}
	})

	t.Run("invalid category fails before construction", func(t *testing.T) {
		env := newTestEnv(t)
		if _, _, err := env.CategoryContents("Colour", true); err == nil {
			t.Fatal("expected error for unrecognized category")
		}
	})
}

func TestGetterSetterConstruction(t *testing.T) {
	t.Run("constructs render-ready instance", func(t *testing.T) {
		env := newTestEnv(t)
		ws := block.NewWorkspace("main")

		g := env.Getter(ws, block.CategoryDefault)
		if g == nil {
			t.Fatal("expected default getter")
		}
		v, ok := g.(*block.VarBlock)
		if !ok {
			t.Fatalf("expected *block.VarBlock, got %T", g)
		}
		if v.Workspace() != ws {
			t.Fatal("expected instance scoped to the given workspace")
		}
		if v.VariableName() != block.DefaultVariableName {
			t.Fatalf("expected default binding, got %q", v.VariableName())
		}
	})

	t.Run("absent registration returns nil", func(t *testing.T) {
		env := newTestEnv(t)
		if g := env.Getter(nil, "Colour"); g != nil {
			t.Fatalf("expected nil, got %T", g)
		}
	})

	t.Run("registered kind missing from catalog returns nil", func(t *testing.T) {
		env := newTestEnv(t)
		env.RegisterGetter("Colour", "colour_get") // never added to the catalog
		if g := env.Getter(nil, "Colour"); g != nil {
			t.Fatalf("expected nil, got %T", g)
		}
	})

	t.Run("re-registration overwrites", func(t *testing.T) {
		env := newTestEnv(t)
		env.RegisterGetter(block.CategoryDefault, block.KindVariableSet)
		g := env.Getter(nil, block.CategoryDefault)
		if g == nil || g.Kind() != block.KindVariableSet {
			t.Fatalf("expected overwritten getter kind, got %+v", g)
		}
	})
}
