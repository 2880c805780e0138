package resolve

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/santools/wwninfo/internal/config"
	"github.com/santools/wwninfo/pkg/wwninfo"
)

// NewCommand creates the vendor command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vendor <wwn|oui>",
		Short: "resolve the vendor name for a WWN or OUI",
		Long: `Resolve the manufacturer name for a full WWN or a bare 24-bit OUI
against the IEEE OUI registry. The OUI may carry ':' or '-' separators.`,
		Example: `  # Resolve from a full WWN
  wwninfo vendor 50:06:01:60:08:60:2c:04

  # Resolve from a bare OUI
  wwninfo vendor 00-60-16`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         func(cmd *cobra.Command, args []string) error { return Run(cmd.Context(), args[0]) },
	}

	return cmd
}

// Run executes the vendor command.
func Run(ctx context.Context, input string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	reg, err := wwninfo.NewRegistry(wwninfo.ResolveConfig{
		RegistryURL: cfg.Registry.URL,
		CachePath:   cfg.Registry.CachePath,
		HTTPClient:  cfg.HTTPClient(),
	})
	if err != nil {
		return err
	}

	name, ok, err := wwninfo.Vendor(ctx, input, reg)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no vendor found for %q", input)
	}

	fmt.Println(name)
	return nil
}
