package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newPackageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "package",
		Short: "Verify the lockfile, then run the configured package goals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Package(cmd.Context())
		},
	}
}
