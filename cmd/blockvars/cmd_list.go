package main

import (
	"fmt"
	"sort"
	"strings"

	"blockvars/pkg/vars"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the variable names in use",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := load(flagFiles, flagWorkspace)
		if err != nil {
			return err
		}
		names, err := s.env.UsedNames(vars.NameQuery{Category: flagCategory})
		if err != nil {
			return err
		}
		printNames(s.scope.Name(), flagCategory, names)
		return nil
	},
}

// printNames prints the namespace in display order (case-insensitive sort).
func printNames(workspace, category string, names []string) {
	scope := workspace
	if category != "" {
		scope += " [" + category + "]"
	}
	if len(names) == 0 {
		fmt.Printf("%s: no variables in use\n", scope)
		return
	}
	sort.Slice(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})
	fmt.Printf("%s: %d variable(s)\n", scope, len(names))
	for _, n := range names {
		fmt.Println("  " + n)
	}
}
