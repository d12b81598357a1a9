package vars

import (
	"fmt"
	"strings"

	"blockvars/pkg/block"
)

// NameQuery scopes a UsedNames call.
type NameQuery struct {
	// Roots restricts the walk to these blocks plus all their descendants.
	// Nil means every block in the default workspace.
	Roots []block.Block

	// Category keeps only usages declared under this exact category key.
	// Empty means the union across all categories. Any value other than
	// the Default sentinel must be recognized by the category validator.
	Category string
}

// UsedNames returns the variable names currently in use within the query
// scope, duplicates removed case-insensitively. The first-encountered
// casing of each name is the one returned; result order is otherwise
// unspecified — callers needing display order sort explicitly.
//
// A missing default workspace is a valid terminal case: the result is
// empty, not an error.
func (e *Env) UsedNames(q NameQuery) ([]string, error) {
	if q.Category != "" && q.Category != block.CategoryDefault {
		if e.validator == nil || !e.validator.IsRecognizedCategory(q.Category) {
			return nil, fmt.Errorf("category %q: %w", q.Category, ErrInvalidCategory)
		}
	}

	blocks := q.Roots
	if blocks == nil {
		if e.defaultWS == nil {
			return nil, nil
		}
		blocks = e.defaultWS.TopBlocks()
	}

	seen := make(map[string]struct{})
	var out []string
	for _, b := range block.Flatten(blocks) {
		user, ok := b.(block.VariableUser)
		if !ok {
			continue
		}
		usages := user.VariableUsages()
		var names []string
		if q.Category != "" {
			names = usages[q.Category]
		} else {
			for _, ns := range usages {
				names = append(names, ns...)
			}
		}
		for _, name := range names {
			if name == "" {
				// Half-constructed block; skip.
				continue
			}
			key := strings.ToLower(name)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, name)
		}
	}
	return out, nil
}

// lowerSet returns the names keyed by their lower-cased form, for
// case-insensitive membership tests.
func lowerSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[strings.ToLower(n)] = struct{}{}
	}
	return set
}
