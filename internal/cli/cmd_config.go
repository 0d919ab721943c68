package cli

import (
	"fmt"
	"os"

	"github.com/amandev/folio/internal/cli/formatter"
	"github.com/amandev/folio/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Locate or create the config file",
	}
	cmd.AddCommand(newConfigPathCmd(), newConfigInitCmd())
	return cmd
}

// configPath is the file named by --config, FOLIO_CONFIG or the default.
func configPath(cmd *cobra.Command) string {
	flag := ""
	if f := cmd.Flag("config"); f != nil {
		flag = f.Value.String()
	}
	return config.ResolvePath(flag)
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "path",
		Short:       "Print the config file location",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipContentLoad: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configPath(cmd)
			state := "missing"
			if _, err := os.Stat(path); err == nil {
				state = "exists"
			}
			fmt.Fprintln(cmd.OutOrStdout(), path+" "+formatter.Dim("("+state+")"))
			return nil
		},
	}
}

func newConfigInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Write the default config file",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipContentLoad: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configPath(cmd)
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to replace it)", path)
			}
			if err := config.DefaultConfig().Save(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Wrote %s\n", formatter.StyleAccent.Render("✔"), path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "replace an existing file")
	return cmd
}
