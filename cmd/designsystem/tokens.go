package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/designsystem/internal/ui"
	"github.com/alexisbeaulieu97/designsystem/internal/ui/components"
	"github.com/alexisbeaulieu97/designsystem/internal/ui/components/datatable"
	dserrors "github.com/alexisbeaulieu97/designsystem/pkg/errors"
)

type tokensOptions struct {
	group string
}

func newTokensCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &tokensOptions{}

	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "List the theme's design tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(cmd, rootFlags, opts)
		},
	}

	addOutputFlags(cmd)
	cmd.Flags().StringVar(&opts.group, "group", "", "Only list one group (color, spacing, shadow)")

	return cmd
}

func tokenColumns() []datatable.Column[components.Token] {
	return []datatable.Column[components.Token]{
		{ID: "group", Header: "Group", Accessor: datatable.Field[components.Token]("Group")},
		{ID: "name", Header: "Token", Accessor: datatable.Field[components.Token]("Name")},
		{ID: "value", Header: "Value", Accessor: datatable.Field[components.Token]("Value")},
		{
			ID:     "swatch",
			Header: "Swatch",
			Width:  6,
			Cell: func(ctx datatable.CellContext[components.Token]) ui.Renderable {
				if ctx.Row.Group != "color" {
					return nil
				}
				return ui.StringView(lipgloss.NewStyle().Background(lipgloss.Color(ctx.Row.Value)).Render("      "))
			},
		},
	}
}

func runTokens(cmd *cobra.Command, rootFlags *rootFlags, opts *tokensOptions) error {
	app, err := loadApp(cmd, rootFlags)
	if err != nil {
		return err
	}

	var tokens []components.Token
	for _, token := range app.Theme.Tokens() {
		if opts.group == "" || token.Group == opts.group {
			tokens = append(tokens, token)
		}
	}

	table := datatable.New(tokenColumns(), tokens).
		WithStriped(true).
		WithHoverable(false).
		WithRowKey(func(token components.Token, _ int) string { return token.Group + "." + token.Name }).
		WithEmptyState(ui.StringView(fmt.Sprintf("No tokens in group %q", opts.group)))

	if app.Settings.Format == "html" {
		if err := table.WriteHTML(cmd.OutOrStdout()); err != nil {
			return newCommandError("tokens", "writing html", dserrors.NewRenderError("html", err), "")
		}
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), table.ViewWithContext(app.renderContext(cmd)))
	return nil
}
