package version

import (
	"fmt"

	goversion "github.com/caarlos0/go-version"
	"github.com/spf13/cobra"
)

// NewCommand creates the version command.
func NewCommand(info goversion.Info) *cobra.Command {
	return &cobra.Command{
		Use:          "version",
		Short:        "display the current version of the cli",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(info.String())
		},
	}
}
