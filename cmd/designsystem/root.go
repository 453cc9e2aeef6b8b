package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose    bool
	configPath string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "designsystem",
		Short:         "Render and inspect design-system data tables",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Settings file (default: ./designsystem.yaml if present)")
	cmd.PersistentFlags().String("log-level", "", "Log level (trace, debug, info, warn, error)")

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newBrowseCmd(flags))
	cmd.AddCommand(newLintCmd(flags))
	cmd.AddCommand(newTokensCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
