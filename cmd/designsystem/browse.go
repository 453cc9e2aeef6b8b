package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/designsystem/internal/config"
	"github.com/alexisbeaulieu97/designsystem/internal/ui/components/datatable"
)

type browseOptions struct {
	delay     time.Duration
	altScreen bool
}

func newBrowseCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &browseOptions{}

	cmd := &cobra.Command{
		Use:   "browse <table.yaml>",
		Short: "Browse a table interactively; the last opened row is printed on exit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, rootFlags, opts, args[0])
		},
	}

	addOutputFlags(cmd)
	cmd.Flags().DurationVar(&opts.delay, "delay", 0, "Show the loading state for this long before the rows arrive")
	cmd.Flags().BoolVar(&opts.altScreen, "alt-screen", true, "Use the terminal's alternate screen")

	return cmd
}

func runBrowse(cmd *cobra.Command, rootFlags *rootFlags, opts *browseOptions, path string) error {
	app, err := loadApp(cmd, rootFlags)
	if err != nil {
		return err
	}

	doc, err := app.loadDocument(cmd, path)
	if err != nil {
		return err
	}

	table, err := doc.Table()
	if err != nil {
		return newCommandError("browse", "building table", err, "")
	}
	app.warnIssues(path, table.Props().Columns)

	opened := -1
	table.OnRowClick(func(_ config.Record, index int) {
		opened = index
	})

	rows := doc.Rows
	if opts.delay > 0 {
		table.WithLoading(true)
	}

	programOpts := []tea.ProgramOption{
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	}
	if opts.altScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	program := tea.NewProgram(datatable.NewBrowser(table, app.renderContext(cmd)), programOpts...)

	if opts.delay > 0 {
		go func() {
			time.Sleep(opts.delay)
			program.Send(datatable.LoadedMsg[config.Record]{Data: rows})
		}()
	}

	if _, err := program.Run(); err != nil {
		return newCommandError("browse", "running the table browser", err, "Run from an interactive terminal.")
	}

	if opened >= 0 {
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(table.RowText(opened), "\t"))
	}
	return nil
}
