package vars

import (
	"sort"
	"strings"

	"blockvars/pkg/block"
)

// Margin is the base palette gap. Spacing entries are multiples of it:
// a complete setter/getter pair gets (Margin, Margin*3), a lone block
// gets Margin*2.
const Margin = 8

// RegisterGetter maps a category to the kind used to read its variables.
// Re-registering a category overwrites the previous mapping.
func (e *Env) RegisterGetter(category, kind string) {
	e.getters[category] = kind
}

// RegisterSetter maps a category to the kind used to write its variables.
func (e *Env) RegisterSetter(category, kind string) {
	e.setters[category] = kind
}

// Getter constructs a fresh getter block for the category, scoped to ws.
// It returns nil when no getter is registered for the category or the
// registered kind is missing from the catalog — absence is not an error.
func (e *Env) Getter(ws *block.Workspace, category string) block.Block {
	return e.construct(e.getters, ws, category)
}

// Setter is the write-access counterpart of Getter.
func (e *Env) Setter(ws *block.Workspace, category string) block.Block {
	return e.construct(e.setters, ws, category)
}

func (e *Env) construct(kinds map[string]string, ws *block.Workspace, category string) block.Block {
	kind, ok := kinds[category]
	if !ok {
		return nil
	}
	f, ok := e.catalog.Lookup(kind)
	if !ok {
		return nil
	}
	return f(ws)
}

// CategoryContents builds the palette for one category: a list of freshly
// constructed setter/getter blocks, one pair per variable in
// case-insensitive display order, and a parallel spacing list consumed in
// lock-step by the palette renderer.
//
// With includePlaceholder, the list starts with a pair left on its
// construction-default binding — the "not yet named" entry. The name that
// pair resolves to is recorded, and a real variable of the same name later
// in the list is skipped rather than shown twice.
func (e *Env) CategoryContents(category string, includePlaceholder bool) ([]block.Block, []int, error) {
	names, err := e.UsedNames(NameQuery{Category: category})
	if err != nil {
		return nil, nil, err
	}
	sort.Slice(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})

	// The empty string cannot be a variable name (the index skips it), so
	// it is safe as the placeholder sentinel.
	entries := names
	if includePlaceholder {
		entries = append([]string{""}, names...)
	}

	var blocks []block.Block
	var spacing []int
	placeholderName := "" // lower-cased name the placeholder resolved to

	for _, entry := range entries {
		isPlaceholder := entry == ""
		if !isPlaceholder && placeholderName != "" && strings.ToLower(entry) == placeholderName {
			// Already represented by the placeholder pair.
			continue
		}

		setter := e.Setter(e.defaultWS, category)
		getter := e.Getter(e.defaultWS, category)
		if setter == nil && getter == nil {
			continue
		}

		if isPlaceholder {
			// Leave the construction-default binding in place; just read
			// back what it resolved to.
			for _, b := range []block.Block{setter, getter} {
				if nv, ok := b.(block.NamedVariable); ok {
					placeholderName = strings.ToLower(nv.VariableName())
					break
				}
			}
		} else {
			for _, b := range []block.Block{setter, getter} {
				if nv, ok := b.(block.NamedVariable); ok {
					nv.SetVariableName(entry)
				}
			}
		}

		// Setter before getter, always.
		switch {
		case setter != nil && getter != nil:
			blocks = append(blocks, setter, getter)
			spacing = append(spacing, Margin, Margin*3)
		case setter != nil:
			blocks = append(blocks, setter)
			spacing = append(spacing, Margin*2)
		default:
			blocks = append(blocks, getter)
			spacing = append(spacing, Margin*2)
		}
	}
	return blocks, spacing, nil
}
