package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"blockvars/pkg/block"
	"blockvars/pkg/blockyaml"
	"blockvars/pkg/vars"
)

// appName is the single source of truth for the application name.
// All derived identifiers (env vars, config paths, error messages) are computed from it.
const appName = "blockvars"

// Derived env var names — computed once at init from appName.
var (
	envConfigDir  = strings.ToUpper(appName) + "_CONFIG_DIR"
	envWorkspaces = strings.ToUpper(appName) + "_WORKSPACES"
)

// resolveConfigDir returns the base config directory for the application.
// Priority: $<APPNAME>_CONFIG_DIR > $XDG_CONFIG_HOME/<appName> > ~/.config/<appName>
func resolveConfigDir() (string, error) {
	if v := os.Getenv(envConfigDir); v != "" {
		return v, nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", appName), nil
}

// resolveWorkspaceFiles returns all workspace files to load.
// Order: configDir/workspaces/*.yml → $<APPNAME>_WORKSPACES → flagFiles
// Missing directories are silently skipped; explicitly provided paths are kept
// as-is (errors surface at read time with a clear message).
func resolveWorkspaceFiles(configDir string, flagFiles []string) ([]string, error) {
	autoFiles, err := globYAML(filepath.Join(configDir, "workspaces"))
	if err != nil {
		return nil, err
	}
	files := autoFiles
	files = append(files, splitColon(os.Getenv(envWorkspaces))...)
	files = append(files, flagFiles...)
	return files, nil
}

// globYAML returns sorted *.yml / *.yaml files in dir.
// Returns nil without error if dir does not exist.
func globYAML(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(name, ".yml") || strings.HasSuffix(name, ".yaml") {
			files = append(files, filepath.Join(dir, name))
		}
	}
	sort.Strings(files)
	return files, nil
}

// splitColon splits a colon-separated list, dropping empty segments.
func splitColon(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ":") {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// session is the loaded state every subcommand works against: the registry
// environment plus all workspaces from the resolved files.
type session struct {
	env        *vars.Env
	workspaces []*block.Workspace
	scope      *block.Workspace
}

// load resolves the workspace files, parses them, and builds the registry
// environment. The default workspace (the scope of unscoped queries and of
// rename/delete) is the one named by --workspace, or the first one loaded.
func load(flagFiles []string, flagWorkspace string) (*session, error) {
	configDir, err := resolveConfigDir()
	if err != nil {
		return nil, err
	}
	files, err := resolveWorkspaceFiles(configDir, flagFiles)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no workspace files found (use -f or put files in %s/workspaces)", configDir)
	}

	workspaces, err := blockyaml.Load(files)
	if err != nil {
		return nil, err
	}
	if len(workspaces) == 0 {
		return nil, fmt.Errorf("no workspaces defined in %s", strings.Join(files, ", "))
	}

	catalog := block.NewCatalog()
	if err := block.RegisterStandardKinds(catalog); err != nil {
		return nil, err
	}
	env := vars.NewEnv(catalog)
	env.SetCategoryValidator(declaredCategories(workspaces))

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
			return nil, fmt.Errorf("workspace %q not found in %s", flagWorkspace, strings.Join(files, ", "))
		}
	}
	env.SetDefaultWorkspace(scope)

	return &session{env: env, workspaces: workspaces, scope: scope}, nil
}

// declaredCategories builds the category validator from what the loaded
// documents actually declare: a category is recognized when some block
// declares a usage under it.
type declaredSet map[string]struct{}

func (d declaredSet) IsRecognizedCategory(name string) bool {
	_, ok := d[name]
	return ok
}

func declaredCategories(workspaces []*block.Workspace) declaredSet {
	set := make(declaredSet)
	for _, ws := range workspaces {
		for _, b := range ws.AllBlocks() {
			user, ok := b.(block.VariableUser)
			if !ok {
				continue
			}
			for cat := range user.VariableUsages() {
				set[cat] = struct{}{}
			}
		}
	}
	return set
}
