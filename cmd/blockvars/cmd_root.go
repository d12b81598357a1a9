package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Inspect and edit the variable namespace of block workspaces",
	Long: "Inspect and edit the variable namespace of block workspaces.\n\n" +
		"Variable names are case-insensitive: two names differing only in\n" +
		"letter case are the same variable. Rename and delete apply to every\n" +
		"block of the selected workspace.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}
