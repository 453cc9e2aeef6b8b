package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/designsystem/internal/ui/components/datatable"
)

func newLintCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lint <table.yaml>...",
		Short: "Report columns that render blank or collide",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, rootFlags, args)
		},
	}
	cmd.Flags().Bool("no-color", false, "Disable colour output")
	return cmd
}

// lintRow is one reported issue.
type lintRow struct {
	File    string `table:"file"`
	Column  int    `table:"column"`
	ID      string `table:"id"`
	Message string `table:"message"`
}

var lintColumns = []datatable.Column[lintRow]{
	{ID: "file", Header: "File", Accessor: datatable.Field[lintRow]("file")},
	{ID: "column", Header: "#", Accessor: datatable.Field[lintRow]("column"), Align: datatable.AlignRight},
	{ID: "id", Header: "ID", Accessor: datatable.Field[lintRow]("id")},
	{ID: "message", Header: "Problem", Accessor: datatable.Field[lintRow]("message")},
}

func runLint(cmd *cobra.Command, rootFlags *rootFlags, paths []string) error {
	app, err := loadApp(cmd, rootFlags)
	if err != nil {
		return err
	}

	var rows []lintRow
	for _, path := range paths {
		doc, err := app.loadDocument(cmd, path)
		if err != nil {
			return err
		}
		columns, err := doc.TableColumns()
		if err != nil {
			return newCommandError("lint", path, err, "")
		}
		for _, issue := range datatable.Lint(columns) {
			rows = append(rows, lintRow{File: path, Column: issue.Column, ID: issue.ID, Message: issue.Message})
		}
	}

	if len(rows) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no issues found")
		return nil
	}

	table := datatable.New(lintColumns, rows).WithHoverable(false)
	fmt.Fprintln(cmd.OutOrStdout(), table.ViewWithContext(app.renderContext(cmd)))
	return newCommandError("lint", fmt.Sprintf("checking %d file(s)", len(paths)), fmt.Errorf("%d column issue(s)", len(rows)), "Give every column a unique id and an accessor or cell format.")
}
