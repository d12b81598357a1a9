package main

import (
	"fmt"

	"blockvars/pkg/block"

	"github.com/spf13/cobra"
)

var flagNoPlaceholder bool

func init() {
	paletteCmd.Flags().BoolVar(&flagNoPlaceholder, "no-placeholder", false,
		"omit the default (not-yet-named) entry")
}

var paletteCmd = &cobra.Command{
	Use:   "palette [category]",
	Short: "Show the palette contents for a category",
	Long: "Show the getter/setter blocks and spacing values the palette\n" +
		"would be populated with for one category (Default if omitted).",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := load(flagFiles, flagWorkspace)
		if err != nil {
			return err
		}
		category := block.CategoryDefault
		if len(args) == 1 {
			category = args[0]
		}

		blocks, spacing, err := s.env.CategoryContents(category, !flagNoPlaceholder)
		if err != nil {
			return err
		}
		if len(blocks) == 0 {
			fmt.Printf("palette for %s is empty\n", category)
			return nil
		}

		fmt.Printf("palette for %s (%d blocks)\n", category, len(blocks))
		for i, b := range blocks {
			name := ""
			if nv, ok := b.(block.NamedVariable); ok {
				name = nv.VariableName()
			}
			fmt.Printf("  %-14s %-16s gap=%d\n", b.Kind(), name, spacing[i])
		}
		return nil
	},
}
