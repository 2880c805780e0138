// Package registry groups the OUI registry maintenance subcommands.
package registry

import "github.com/spf13/cobra"

// NewCommand creates the registry command with its subcommands.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "registry",
		Short: "manage the local IEEE OUI registry cache",
	}

	cmd.AddCommand(newUpdateCommand())
	cmd.AddCommand(newPathCommand())

	return cmd
}
