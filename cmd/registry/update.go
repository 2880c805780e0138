package registry

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/santools/wwninfo/internal/cache"
	"github.com/santools/wwninfo/internal/cli"
	"github.com/santools/wwninfo/internal/config"
	"github.com/santools/wwninfo/internal/oui"
	"github.com/santools/wwninfo/internal/utils"
)

// UpdateOpts holds the configuration for the update command.
type UpdateOpts struct {
	Force bool
}

func newUpdateCommand() *cobra.Command {
	opts := &UpdateOpts{}

	cmd := &cobra.Command{
		Use:   "update",
		Short: "download the IEEE OUI registry and refresh the local cache",
		Long: `Download the IEEE OUI registry document and rewrite the local cache.

This is the only operation that bypasses the cache-first policy; normal
vendor resolution only hits the network when no cache file exists.`,
		Example: `  # Refresh the cached registry, prompting before overwrite
  wwninfo registry update

  # Refresh without prompting
  wwninfo registry update --force`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         func(cmd *cobra.Command, args []string) error { return RunUpdate(cmd.Context(), opts) },
	}

	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false,
		"Overwrite the existing cache without prompting")

	return cmd
}

// RunUpdate executes the update command.
func RunUpdate(ctx context.Context, o *UpdateOpts) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	registryFile := cache.RegistryPath(cfg.Registry.CachePath)
	if utils.FileExists(registryFile) && !o.Force {
		cli.DisplayWarning("File %s already exists.", registryFile)
		if !cli.PromptConfirmation("Override?") {
			return fmt.Errorf("update cancelled")
		}
	}

	reg, err := oui.New(oui.Config{
		URL:        cfg.Registry.URL,
		CachePath:  cfg.Registry.CachePath,
		HTTPClient: cfg.HTTPClient(),
	})
	if err != nil {
		return err
	}

	cli.Display("Fetching registry...")
	count, err := reg.Update(ctx)
	if err != nil {
		return err
	}

	cli.DisplaySuccess("✅ Registry updated: %d vendors (%s)", count, registryFile)
	return nil
}
