package main

import (
	"fmt"

	"blockvars/pkg/vars"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [name]",
	Short: "Delete a variable from the workspace",
	Long: "Delete a variable from every block of the selected workspace.\n\n" +
		"With no argument the variable is picked interactively. Deleting a\n" +
		"name no block uses is a harmless no-op.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := load(flagFiles, flagWorkspace)
		if err != nil {
			return err
		}

		var name string
		if len(args) == 1 {
			name = args[0]
		} else {
			name, err = pickVariable(s, "delete")
			if err != nil {
				return err
			}
		}

		if err := s.env.Delete(name, s.scope); err != nil {
			return err
		}
		fmt.Printf("deleted %q from workspace %s\n", name, s.scope.Name())

		names, err := s.env.UsedNames(vars.NameQuery{})
		if err != nil {
			return err
		}
		printNames(s.scope.Name(), "", names)
		return nil
	},
}
