package vars

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// generatorLetters is the candidate order for generated names: i through z
// with l skipped (it reads like the digit 1). The scan restarts from i with
// an incremented numeric suffix each time a tier is exhausted, so the
// choice is deterministic for a given namespace.
const generatorLetters = "ijkmnopqrstuvwxyz"

// UniqueName returns base if no variable of that name exists anywhere in
// the default workspace, otherwise the first free numbered variant.
// A base already carrying trailing digits continues its own numbering:
// with counter1 and counter2 taken, UniqueName("counter1") is counter3.
func (e *Env) UniqueName(base string) (string, error) {
	used, err := e.UsedNames(NameQuery{})
	if err != nil {
		return "", err
	}
	set := lowerSet(used)
	if _, taken := set[strings.ToLower(base)]; !taken {
		return base, nil
	}

	stem, start := splitTrailingDigits(base)

	// The namespace is finite, so a free candidate exists within
	// len(set)+1 tries. The bound guards against anything breaking
	// that reasoning rather than spinning forever.
	for n, tries := start, 0; tries <= len(set); n, tries = n+1, tries+1 {
		candidate := stem + strconv.Itoa(n)
		if _, taken := set[strings.ToLower(candidate)]; !taken {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("base %q: %w", base, ErrSearchExhausted)
}

// GenerateName returns the first free name from the default alphabet:
// single letters i..z (skipping l), then the same letters with suffix 1,
// then 2, and so on. An empty namespace always yields "i".
func (e *Env) GenerateName() (string, error) {
	used, err := e.UsedNames(NameQuery{})
	if err != nil {
		return "", err
	}
	set := lowerSet(used)
	if len(set) == 0 {
		return "i", nil
	}

	// Each tier offers len(generatorLetters) candidates, so a free one
	// exists within len(set)/len(generatorLetters)+1 tiers.
	maxTier := len(set)/len(generatorLetters) + 1
	for tier := 0; tier <= maxTier; tier++ {
		suffix := ""
		if tier > 0 {
			suffix = strconv.Itoa(tier)
		}
		for _, letter := range generatorLetters {
			candidate := string(letter) + suffix
			if _, taken := set[candidate]; !taken {
				return candidate, nil
			}
		}
	}
	return "", ErrSearchExhausted
}

// splitTrailingDigits parses base as <stem><digits> and returns the stem
// with numbering starting at digits+1. A base without trailing digits (or
// with digits too large for an int) numbers from 1 on the whole base.
func splitTrailingDigits(base string) (stem string, start int) {
	i := len(base)
	for i > 0 && unicode.IsDigit(rune(base[i-1])) {
		i--
	}
	if i == len(base) {
		return base, 1
	}
	n, err := strconv.Atoi(base[i:])
	if err != nil {
		// Pathological suffix (overflows int): treat the whole base as stem.
		return base, 1
	}
	return base[:i], n + 1
}
