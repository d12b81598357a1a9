package main

import (
	"fmt"
	"os"
)

var (
	flagFiles     []string
	flagWorkspace string
	flagCategory  string
)

func main() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(renameCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(paletteCmd)

	rootCmd.PersistentFlags().StringArrayVarP(&flagFiles, "file", "f", nil,
		"workspace YAML file (repeatable; default: ~/.config/"+appName+"/workspaces/*.yml)")
	rootCmd.PersistentFlags().StringVarP(&flagWorkspace, "workspace", "w", "",
		"workspace to operate on (default: the first one loaded)")
	listCmd.Flags().StringVarP(&flagCategory, "category", "c", "",
		"restrict to one variable category")

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err.Error())
		os.Exit(1)
	}
}
