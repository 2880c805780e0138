package main

import (
	"context"
	"os"

	goversion "github.com/caarlos0/go-version"
	"github.com/spf13/cobra"

	"github.com/santools/wwninfo/cmd/decode"
	"github.com/santools/wwninfo/cmd/registry"
	"github.com/santools/wwninfo/cmd/resolve"
	versionCmd "github.com/santools/wwninfo/cmd/version"
	"github.com/santools/wwninfo/internal/cli"
	"github.com/santools/wwninfo/internal/observability"
)

const website = "https://github.com/santools/wwninfo"

var (
	version = ""
	builtBy = ""
)

func main() {
	if err := run(); err != nil {
		cli.DisplayError("Error: %v", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	shutdown, err := observability.Initialize(ctx)
	if err != nil {
		cli.DisplayWarning("Warning: failed to initialize tracing: %v", err)
	}
	defer observability.Shutdown(shutdown)

	rootCmd := &cobra.Command{
		Use:   "wwninfo",
		Short: "WWN decoder and vendor resolver",
		Long: `wwninfo decodes World Wide Names (WWNs) into their structural fields and
resolves the embedded manufacturer identifier (OUI) to a vendor name using
the IEEE OUI registry.

Notes:
  * WWNs may be given with or without colon separators, in any case.
  * Supported formats are NAA types 1, 2, 5 and 6.
  * The registry document is cached under $HOME/.wwninfo after the first
    network fetch; 'wwninfo registry update' refreshes it.
`,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(decode.NewCommand())
	rootCmd.AddCommand(resolve.NewCommand())
	rootCmd.AddCommand(registry.NewCommand())
	rootCmd.AddCommand(versionCmd.NewCommand(buildVersion(version, builtBy)))

	return rootCmd.ExecuteContext(ctx)
}

func buildVersion(version, builtBy string) goversion.Info {
	return goversion.GetVersionInfo(
		goversion.WithAppDetails("wwninfo", "World Wide Names, decoded.", website),
		func(i *goversion.Info) {
			if version != "" {
				i.GitVersion = version
			}
			if builtBy != "" {
				i.BuiltBy = builtBy
			}
		},
	)
}
