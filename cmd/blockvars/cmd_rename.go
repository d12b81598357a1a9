package main

import (
	"fmt"

	"blockvars/pkg/vars"

	"github.com/spf13/cobra"
)

var renameCmd = &cobra.Command{
	Use:   "rename [old] [new]",
	Short: "Rename a variable across the workspace",
	Long: "Rename a variable across every block of the selected workspace.\n\n" +
		"With no arguments the variable is picked interactively and the new\n" +
		"name is prompted for.",
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := load(flagFiles, flagWorkspace)
		if err != nil {
			return err
		}

		var oldName string
		if len(args) >= 1 {
			oldName = args[0]
		} else {
			oldName, err = pickVariable(s, "rename")
			if err != nil {
				return err
			}
		}

		var newName string
		if len(args) == 2 {
			newName = args[1]
		} else {
			newName, err = promptNewName(oldName)
			if err != nil {
				return err
			}
		}

		if err := s.env.Rename(oldName, newName, s.scope); err != nil {
			return err
		}
		if newName == "" || newName == oldName {
			fmt.Println("nothing to do")
			return nil
		}
		fmt.Printf("renamed %q to %q in workspace %s\n", oldName, newName, s.scope.Name())

		names, err := s.env.UsedNames(vars.NameQuery{})
		if err != nil {
			return err
		}
		printNames(s.scope.Name(), "", names)
		return nil
	},
}
