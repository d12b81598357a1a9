package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new [base]",
	Short: "Generate a fresh unique variable name",
	Long: "Generate a fresh unique variable name.\n\n" +
		"With a base argument the name is the base itself if free, otherwise\n" +
		"the base with the next free number appended. Without one, the name\n" +
		"comes from the default alphabet (i, j, k, ..., skipping l).",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := load(flagFiles, flagWorkspace)
		if err != nil {
			return err
		}

		var name string
		if len(args) == 1 {
			name, err = s.env.UniqueName(args[0])
		} else {
			name, err = s.env.GenerateName()
		}
		if err != nil {
			return err
		}
		fmt.Println(name)
		return nil
	},
}
