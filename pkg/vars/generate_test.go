package vars

import (
	"testing"

	"blockvars/pkg/block"
)

func envWithNames(t *testing.T, names ...string) *Env {
	t.Helper()
	env := newTestEnv(t)
	ws := block.NewWorkspace("main")
	for _, n := range names {
		addVar(ws, n)
	}
	env.SetDefaultWorkspace(ws)
	return env
}

func mustName(t *testing.T, name string, err error) string {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return name
}

func TestUniqueName(t *testing.T) {
	t.Run("free base returned unchanged", func(t *testing.T) {
		env := envWithNames(t, "a", "b")
		name, err := env.UniqueName("x")
		if got := mustName(t, name, err); got != "x" {
			t.Fatalf("expected x, got %q", got)
		}
	})

	t.Run("collision check is case-insensitive", func(t *testing.T) {
		env := envWithNames(t, "X")
		name, err := env.UniqueName("x")
		if got := mustName(t, name, err); got != "x1" {
			t.Fatalf("expected x1, got %q", got)
		}
	})

	t.Run("trailing digits continue numbering", func(t *testing.T) {
		env := envWithNames(t, "counter1", "counter2")
		name, err := env.UniqueName("counter1")
		if got := mustName(t, name, err); got != "counter3" {
			t.Fatalf("expected counter3, got %q", got)
		}
	})

	t.Run("no trailing digits start at 1", func(t *testing.T) {
		env := envWithNames(t, "total", "total1")
		name, err := env.UniqueName("total")
		if got := mustName(t, name, err); got != "total2" {
			t.Fatalf("expected total2, got %q", got)
		}
	})

	t.Run("oversized numeric suffix falls back to whole base", func(t *testing.T) {
		huge := "x99999999999999999999999999"
		env := envWithNames(t, huge)
		name, err := env.UniqueName(huge)
		if got := mustName(t, name, err); got != huge+"1" {
			t.Fatalf("expected %q, got %q", huge+"1", got)
		}
	})
}

func TestGenerateName(t *testing.T) {
	t.Run("empty namespace yields i", func(t *testing.T) {
		env := envWithNames(t)
		name, err := env.GenerateName()
		if got := mustName(t, name, err); got != "i" {
			t.Fatalf("expected i, got %q", got)
		}
	})

	t.Run("skips l", func(t *testing.T) {
		env := envWithNames(t, "i", "j", "k")
		name, err := env.GenerateName()
		if got := mustName(t, name, err); got != "m" {
			t.Fatalf("expected m, got %q", got)
		}
	})

	t.Run("case-insensitive against namespace", func(t *testing.T) {
		env := envWithNames(t, "I", "J")
		name, err := env.GenerateName()
		if got := mustName(t, name, err); got != "k" {
			t.Fatalf("expected k, got %q", got)
		}
	})

	t.Run("exhausted tier moves to numeric suffix", func(t *testing.T) {
		env := envWithNames(t,
			"i", "j", "k", "m", "n", "o", "p", "q", "r",
			"s", "t", "u", "v", "w", "x", "y", "z",
		)
		name, err := env.GenerateName()
		if got := mustName(t, name, err); got != "i1" {
			t.Fatalf("expected i1, got %q", got)
		}
	})

	t.Run("deterministic for a given namespace", func(t *testing.T) {
		env := envWithNames(t, "i", "j")
		n1, e1 := env.GenerateName()
		first := mustName(t, n1, e1)
		n2, e2 := env.GenerateName()
		second := mustName(t, n2, e2)
		if first != second {
			t.Fatalf("expected identical results, got %q then %q", first, second)
		}
	})
}
