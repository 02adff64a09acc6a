package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newEchoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "echo",
		Short: "Print the canonical entries to stdout without writing the lockfile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Echo(cmd.Context(), cmd.OutOrStdout())
		},
	}
}
