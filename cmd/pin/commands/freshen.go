package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newFreshenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "freshen",
		Short: "Recompute the canonical entries and rewrite the lockfile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Freshen(cmd.Context())
		},
	}
}
