package registry

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/santools/wwninfo/internal/cache"
	"github.com/santools/wwninfo/internal/config"
)

func newPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "path",
		Short:        "print the location of the cached registry document",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			fmt.Println(cache.RegistryPath(cfg.Registry.CachePath))
			return nil
		},
	}
}
