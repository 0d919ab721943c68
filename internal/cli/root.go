package cli

import (
	"fmt"

	"github.com/amandev/folio/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// plainWidth is the render width for non-interactive output.
const plainWidth = 80

// NewRootCmd creates the top-level "folio" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var configPath, contentPath, fragment string

	root := &cobra.Command{
		Use:   "folio",
		Short: "Terminal portfolio: projects, skills and experience",
		Long: `folio shows a personal portfolio in the terminal.

Run it without arguments in a terminal for the interactive view, or use
the subcommands to print pages and manage the content file.`,
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, skip := cmd.Annotations[skipContentLoad]
			return app.Setup(cmd.Context(), configPath, contentPath, !skip)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			app.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runTUI(app, fragment)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatHome(app.Store.Profile(), plainWidth))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.folio/config.yaml)")
	root.PersistentFlags().StringVar(&contentPath, "content", "", "content file (.yaml, .json or .db bundle)")
	root.Flags().StringVar(&fragment, "at", "", "section to scroll to after start, e.g. contact")

	root.AddCommand(
		newProjectsCmd(app),
		newSkillsCmd(app),
		newExperienceCmd(app),
		newContentCmd(app),
		newConfigCmd(),
	)

	return root
}

// runTUI starts the interactive program.
func runTUI(app *App, fragment string) error {
	m := newAppModel(app, fragment)
	run := app.runProgram
	if run == nil {
		run = runProgram
	}
	return run(m, app.Config.UI.Mouse)
}

func runProgram(m appModel, mouse bool) error {
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if mouse {
		opts = append(opts, tea.WithMouseAllMotion())
	}
	_, err := tea.NewProgram(m, opts...).Run()
	return err
}
