package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/amandev/folio/internal/cli/formatter"
	"github.com/amandev/folio/internal/content"
	"github.com/amandev/folio/internal/service"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// skipContentLoad marks commands that must run even when the configured
// content does not load, such as the validator.
const skipContentLoad = "folio/skip-content"

func newContentCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "content",
		Short: "Validate, export and bundle portfolio content",
	}
	cmd.AddCommand(
		newContentValidateCmd(app),
		newContentExportCmd(app),
		newContentBundleCmd(app),
		newContentInspectCmd(app),
	)
	return cmd
}

func newContentValidateCmd(app *App) *cobra.Command {
	var watch bool
	cmd := &cobra.Command{
		Use:         "validate [file...]",
		Short:       "Shape-check content files (built-in content when omitted)",
		Annotations: map[string]string{skipContentLoad: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := args
			if len(paths) == 0 {
				paths = []string{app.Config.Content.Path}
			}
			out := cmd.OutOrStdout()
			if !watch {
				return validateAll(cmd.Context(), app, out, paths)
			}
			if slices.Contains(paths, "") {
				return fmt.Errorf("--watch needs a content file")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			_ = validateAll(ctx, app, out, paths)

			var mu sync.Mutex
			g, gctx := errgroup.WithContext(ctx)
			for _, path := range paths {
				w := content.NewWatcher(path, content.DefaultDebounce, app.Logger, func(changed string) {
					mu.Lock()
					defer mu.Unlock()
					fmt.Fprintln(out)
					_ = runValidate(gctx, app, out, changed)
				})
				g.Go(func() error { return w.Run(gctx) })
			}
			fmt.Fprintln(out, formatter.Dim("Watching "+strings.Join(paths, ", ")+" for changes. Press Ctrl+C to stop."))
			return g.Wait()
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-validate whenever a file changes")
	return cmd
}

// maxParallelValidations bounds how many files are read at once.
const maxParallelValidations = 4

// validateAll checks every path concurrently and prints the reports in
// argument order.
func validateAll(ctx context.Context, app *App, out io.Writer, paths []string) error {
	reports := make([]bytes.Buffer, len(paths))
	errs := make([]error, len(paths))
	var g errgroup.Group
	g.SetLimit(maxParallelValidations)
	for i, path := range paths {
		g.Go(func() error {
			errs[i] = runValidate(ctx, app, &reports[i], path)
			return nil
		})
	}
	_ = g.Wait()
	for i := range reports {
		_, _ = reports[i].WriteTo(out)
	}
	return errors.Join(errs...)
}

// runValidate prints the validation report for path and returns an error
// when the content has problems.
func runValidate(ctx context.Context, app *App, out io.Writer, path string) error {
	label := path
	if label == "" {
		label = content.SourceBuiltin
	}
	problems, err := app.Content.Validate(ctx, path)
	if err != nil {
		fmt.Fprintln(out, formatter.StyleRed.Render("✖ ")+label+": "+err.Error())
		return err
	}
	if len(problems) == 0 {
		fmt.Fprintln(out, formatter.StyleAccent.Render("✔ ")+label+": content is valid")
		return nil
	}
	fmt.Fprintln(out, formatter.StyleRed.Render("✖ ")+label+": "+strconv.Itoa(len(problems))+" problem(s)")
	lines := make([]string, len(problems))
	for i, p := range problems {
		lines[i] = p.Error()
	}
	fmt.Fprintln(out, formatter.Bullets(lines, "  "+formatter.Dim("-"), plainWidth))
	return fmt.Errorf("%s has %d content problem(s)", label, len(problems))
}

func newContentExportCmd(app *App) *cobra.Command {
	var formatStr, outPath string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the active content as YAML or JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := content.ParseFormat(formatStr)
			if err != nil {
				return err
			}
			if format == content.FormatBundle {
				return fmt.Errorf("use 'content bundle' to write a bundle")
			}
			if outPath == "" {
				return app.Content.Export(cmd.Context(), app.Store, cmd.OutOrStdout(), format)
			}
			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("creating %s: %w", outPath, err)
			}
			if err := app.Content.Export(cmd.Context(), app.Store, f, format); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		},
	}
	cmd.Flags().StringVarP(&formatStr, "format", "f", "yaml", "output format: yaml or json")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	return cmd
}

func newContentBundleCmd(app *App) *cobra.Command {
	var outPath string
	var force bool
	cmd := &cobra.Command{
		Use:   "bundle",
		Short: "Write the active content to a read-only SQLite bundle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Content.WriteBundle(cmd.Context(), app.Store, outPath, service.BundleOptions{Force: force})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Wrote %s: %d case studies, %d skills, %d achievements\n",
				formatter.StyleAccent.Render("✔"), res.Path,
				res.Counts.CaseStudies, res.Counts.Skills, res.Counts.Achievements)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "bundle file to write (.db)")
	cmd.Flags().BoolVar(&force, "force", false, "replace an existing file")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func newContentInspectCmd(app *App) *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Summarise the active content",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if raw {
				cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}
				cfg.Fdump(out, content.ToDocument(app.Store))
				return nil
			}
			c := app.Store.Counts()
			rows := [][]string{
				{"source", app.Store.Source()},
				{"case studies", strconv.Itoa(c.CaseStudies)},
				{"featured", strconv.Itoa(c.Featured)},
				{"skills", strconv.Itoa(c.Skills)},
				{"achievements", strconv.Itoa(c.Achievements)},
			}
			fmt.Fprintln(out, formatter.RenderBox("Content", formatter.RenderTable([]formatter.Column{{Title: "FIELD"}, {Title: "VALUE", Right: true}}, rows)))
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "dump the full content structure")
	return cmd
}
