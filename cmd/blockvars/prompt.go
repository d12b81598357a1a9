package main

import (
	"github.com/charmbracelet/huh"
)

// promptNewName asks for the replacement name interactively. An empty
// answer is returned as-is: the propagator treats it as "do nothing".
func promptNewName(oldName string) (string, error) {
	var newName string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Rename " + oldName).
				Description("New variable name (empty to cancel)").
				Value(&newName),
		),
	)
	if err := form.Run(); err != nil {
		return "", err
	}
	return newName, nil
}
