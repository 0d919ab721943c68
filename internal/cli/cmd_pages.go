package cli

import (
	"fmt"

	"github.com/amandev/folio/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newProjectsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "projects",
		Aliases: []string{"project"},
		Short:   "List and read case studies",
	}
	cmd.AddCommand(newProjectsListCmd(app), newProjectsShowCmd(app))
	return cmd
}

func newProjectsListCmd(app *App) *cobra.Command {
	var featured bool
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List case studies",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			studies := app.Store.CaseStudies()
			if featured {
				studies = app.Store.FeaturedCaseStudies()
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCaseStudyList(studies))
			return nil
		},
	}
	cmd.Flags().BoolVar(&featured, "featured", false, "only featured case studies")
	return cmd
}

func newProjectsShowCmd(app *App) *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:   "show <slug>",
		Short: "Print a case study",
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 || app.Store == nil {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			var slugs []string
			for _, cs := range app.Store.CaseStudies() {
				slugs = append(slugs, cs.Slug)
			}
			return slugs, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := app.Store.CaseStudyBySlug(args[0])
			if err != nil {
				return err
			}
			out, err := formatter.FormatCaseStudy(cs, app.markdownStyle(), width)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().IntVar(&width, "width", plainWidth, "wrap width")
	return cmd
}

func newSkillsCmd(app *App) *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:   "skills",
		Short: "Print the skills grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSkills(app.Store.SkillsByCategory(), width))
			return nil
		},
	}
	cmd.Flags().IntVar(&width, "width", plainWidth, "render width")
	return cmd
}

func newExperienceCmd(app *App) *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:   "experience",
		Short: "Print the experience timeline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTimeline(app.Store.Achievements(), width))
			return nil
		},
	}
	cmd.Flags().IntVar(&width, "width", plainWidth, "render width")
	return cmd
}
