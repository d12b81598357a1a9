package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"blockvars/pkg/block"
	"blockvars/pkg/blockyaml"
	"blockvars/pkg/vars"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var (
	flagWorkspace string
	flagNoTUI     bool
)

var rootCmd = &cobra.Command{
	Use:   "varpanel <workspace.yml> [more.yml ...]",
	Short: "Interactive variable panel for block workspaces",
	Long: `varpanel shows the variables of a block workspace and lets you
rename, delete and create them interactively. The panel itself is
registered as an auxiliary editor, so every rename/delete notification
from the registry is visible live.`,
	Args: cobra.MinimumNArgs(1),
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVarP(&flagWorkspace, "workspace", "w", "",
		"workspace to operate on (default: the first one loaded)")
	rootCmd.Flags().BoolVar(&flagNoTUI, "no-tui", false,
		"print the variable list and exit, no interactive panel")
}

func main() {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	workspaces, err := blockyaml.Load(args)
	if err != nil {
		return err
	}
	if len(workspaces) == 0 {
		return fmt.Errorf("no workspaces defined in %s", strings.Join(args, ", "))
	}

	scope := workspaces[0]
	if flagWorkspace != "" {
		scope = nil
		for _, ws := range workspaces {
			if ws.Name() == flagWorkspace {
				scope = ws
				break
			}
		}
		if scope == nil {
			return fmt.Errorf("workspace %q not found", flagWorkspace)
		}
	}

	catalog := block.NewCatalog()
	if err := block.RegisterStandardKinds(catalog); err != nil {
		return err
	}
	env := vars.NewEnv(catalog)
	env.SetDefaultWorkspace(scope)

	if flagNoTUI {
		return printVariables(env, scope)
	}

	p := tea.NewProgram(newModel(env, scope), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func printVariables(env *vars.Env, scope *block.Workspace) error {
	names, err := env.UsedNames(vars.NameQuery{})
	if err != nil {
		return err
	}
	sort.Slice(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})
	fmt.Printf("%-20s %s\n", "VARIABLE", "WORKSPACE")
	fmt.Println(strings.Repeat("-", 40))
	for _, n := range names {
		fmt.Printf("%-20s %s\n", n, scope.Name())
	}
	return nil
}
