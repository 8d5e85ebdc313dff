package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"trisolve/cmd/trisolve/ui"
)

// formCmd starts the interactive form
var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Interactive triangle form",
	Long: `Opens a form with one field per side and angle. Fields that the chosen
schema cannot use are locked as you type, and enter solves the triangle.`,
	Args: cobra.NoArgs,
	RunE: runForm,
}

func runForm(cmd *cobra.Command, args []string) error {
	c := currentConfig()
	model := ui.NewFormPageModel(ui.NewStyles(ui.ThemeByName(c.Output.Theme)), c.Output.Precision)
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmdContext(cmd))).Run()
	return err
}
