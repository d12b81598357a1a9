package main

import (
	"fmt"
	"sort"
	"strings"

	"blockvars/pkg/vars"

	"github.com/ktr0731/go-fuzzyfinder"
)

// pickVariable lets the user fuzzy-select a variable from the current
// namespace. verb labels the prompt ("rename", "delete").
func pickVariable(s *session, verb string) (string, error) {
	names, err := s.env.UsedNames(vars.NameQuery{})
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "", fmt.Errorf("no variables in workspace %s", s.scope.Name())
	}
	sort.Slice(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})

	idx, err := fuzzyfinder.Find(
		names,
		func(i int) string {
			return names[i]
		},
		fuzzyfinder.WithPromptString("Variable to "+verb+": "),
	)
	if err != nil {
		return "", err
	}
	return names[idx], nil
}
