package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/designsystem/internal/config"
	"github.com/alexisbeaulieu97/designsystem/internal/ui/components"
	"github.com/alexisbeaulieu97/designsystem/internal/ui/components/datatable"
	"github.com/alexisbeaulieu97/designsystem/pkg/diff"
	dserrors "github.com/alexisbeaulieu97/designsystem/pkg/errors"
)

type renderOptions struct {
	striped  bool
	bordered bool
	noHover  bool
	loading  bool
	check    string
	update   bool
}

// addOutputFlags registers the flags that settings.Load binds.
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().String("format", "term", "Output format (term, html)")
	cmd.Flags().String("theme", "light", "Theme (light, dark)")
	cmd.Flags().Int("width", 0, "Maximum output width; 0 uses the terminal width")
	cmd.Flags().Bool("no-color", false, "Disable colour output")
}

func newRenderCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <table.yaml>",
		Short: "Render a table document to the terminal or as HTML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, rootFlags, opts, args[0])
		},
	}

	addOutputFlags(cmd)
	cmd.Flags().BoolVar(&opts.striped, "striped", false, "Stripe alternate rows")
	cmd.Flags().BoolVar(&opts.bordered, "bordered", false, "Draw cell borders")
	cmd.Flags().BoolVar(&opts.noHover, "no-hover", false, "Disable hover styling")
	cmd.Flags().BoolVar(&opts.loading, "loading", false, "Render the loading state")
	cmd.Flags().StringVar(&opts.check, "check", "", "Compare the output with a golden file and fail on differences")
	cmd.Flags().BoolVar(&opts.update, "update", false, "With --check, rewrite the golden file instead of comparing")

	return cmd
}

func runRender(cmd *cobra.Command, rootFlags *rootFlags, opts *renderOptions, path string) error {
	app, err := loadApp(cmd, rootFlags)
	if err != nil {
		return err
	}

	doc, err := app.loadDocument(cmd, path)
	if err != nil {
		return err
	}
	opts.apply(cmd, &doc.Options)

	table, err := doc.Table()
	if err != nil {
		return newCommandError("render", "building table", err, "")
	}
	app.warnIssues(path, table.Props().Columns)

	var out bytes.Buffer
	switch app.Settings.Format {
	case "html":
		if err := table.WriteHTML(&out); err != nil {
			return newCommandError("render", path, dserrors.NewRenderError("html", err), "")
		}
	default:
		writeTerminal(&out, doc, table, app.renderContext(cmd))
	}
	app.Log.ForDocument(path).WithField("format", app.Settings.Format).Info("table rendered")

	if opts.check != "" {
		return checkGolden(cmd, opts, out.Bytes())
	}
	_, err = cmd.OutOrStdout().Write(out.Bytes())
	return err
}

// checkGolden compares rendered output with the golden file, or rewrites it
// with --update.
func checkGolden(cmd *cobra.Command, opts *renderOptions, rendered []byte) error {
	if opts.update {
		if err := os.WriteFile(opts.check, rendered, 0o644); err != nil {
			return newCommandError("render", "updating "+opts.check, err, "")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "updated %s\n", opts.check)
		return nil
	}

	golden, err := os.ReadFile(opts.check)
	if err != nil {
		return newCommandError("render", "reading "+opts.check, err, "Create it with --update.")
	}
	if !diff.Changed(golden, rendered) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s is up to date\n", opts.check)
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), diff.Unified(golden, rendered, opts.check, "rendered"))
	return newCommandError("render", "checking "+opts.check, errors.New("output differs from golden file"), "Review the diff, then rerun with --update to accept it.")
}

// apply lets explicit flags override the document's options.
func (o *renderOptions) apply(cmd *cobra.Command, options *config.Options) {
	flags := cmd.Flags()
	if flags.Changed("striped") {
		options.Striped = o.striped
	}
	if flags.Changed("bordered") {
		options.Bordered = o.bordered
	}
	if flags.Changed("no-hover") {
		hover := !o.noHover
		options.Hoverable = &hover
	}
	if flags.Changed("loading") {
		options.Loading = o.loading
	}
}

func writeTerminal(w io.Writer, doc *config.Document, table *datatable.DataTable[config.Record], ctx components.RenderContext) {
	if doc.Title != "" {
		fmt.Fprintln(w, components.TitleText(doc.Title).ViewWithContext(ctx))
	}
	fmt.Fprintln(w, table.ViewWithContext(ctx))
}
