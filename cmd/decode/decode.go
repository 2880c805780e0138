package decode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/santools/wwninfo/internal/cli"
	"github.com/santools/wwninfo/internal/concurrency"
	"github.com/santools/wwninfo/internal/config"
	"github.com/santools/wwninfo/internal/oui"
	"github.com/santools/wwninfo/internal/wwn"
)

// Opts holds the configuration for the decode command.
type Opts struct {
	Output   string
	NoVendor bool
	Workers  int
}

// Result is the decoded form of a single WWN.
type Result struct {
	WWN             string `json:"wwn"`
	NAA             string `json:"naa"`
	NAADescription  string `json:"naaDescription"`
	OUI             string `json:"oui"`
	VendorSequence  string `json:"vendorSequence"`
	VendorExtension string `json:"vendorExtension,omitempty"`
	Formatted       string `json:"formatted"`
	Vendor          string `json:"vendor,omitempty"`
}

// NewCommand creates the decode command.
func NewCommand() *cobra.Command {
	opts := &Opts{}

	cmd := &cobra.Command{
		Use:   "decode <wwn> [wwn...]",
		Short: "decode one or more WWNs into their structural fields",
		Long: `Decode one or more World Wide Names into NAA type, OUI, vendor sequence,
and (for NAA 6) the vendor-specific extension, and resolve the OUI to a
vendor name using the IEEE OUI registry.`,
		Example: `  # Decode a single WWN
  wwninfo decode 50:06:01:60:08:60:2c:04

  # Decode several WWNs as JSON
  wwninfo decode -o json 5006016008602c04 21000024ff45a1b2

  # Skip vendor resolution (no registry access)
  wwninfo decode --no-vendor 5006016008602c04`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE:         func(cmd *cobra.Command, args []string) error { return Run(cmd.Context(), opts, args) },
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text",
		"Output format: text or json")
	cmd.Flags().BoolVar(&opts.NoVendor, "no-vendor", false,
		"Skip vendor name resolution")
	cmd.Flags().IntVar(&opts.Workers, "workers", 0,
		"Number of concurrent workers for batch decoding (0 = auto)")

	return cmd
}

// Run executes the decode command.
func Run(ctx context.Context, o *Opts, args []string) error {
	if o.Output != "text" && o.Output != "json" {
		return fmt.Errorf("unsupported output format %q: must be 'text' or 'json'", o.Output)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var reg *oui.Registry
	if !o.NoVendor {
		reg, err = oui.New(oui.Config{
			URL:        cfg.Registry.URL,
			CachePath:  cfg.Registry.CachePath,
			HTTPClient: cfg.HTTPClient(),
		})
		if err != nil {
			return err
		}
	}

	type outcome struct {
		result Result
		err    error
	}

	outcomes := concurrency.Execute(o.Workers, args, func(_ int, arg string) outcome {
		w, err := wwn.Parse(arg)
		if err != nil {
			return outcome{err: err}
		}
		r := Result{
			WWN:            w.Normalized(),
			NAA:            string(w.NAA()),
			NAADescription: w.NAA().Description(),
			OUI:            w.OUI(),
			VendorSequence: w.VendorSequence(),
			Formatted:      w.String(),
		}
		if ext, ok := w.VendorExtension(); ok {
			r.VendorExtension = ext
		}
		if reg != nil {
			if name, ok := reg.Resolve(ctx, w.OUI()); ok {
				r.Vendor = name
			}
		}
		return outcome{result: r}
	})

	results := make([]Result, 0, len(outcomes))
	var errs []error
	for _, oc := range outcomes {
		if oc.err != nil {
			errs = append(errs, oc.err)
			continue
		}
		results = append(results, oc.result)
	}

	if len(results) > 0 {
		if o.Output == "json" {
			if err := displayJSON(results); err != nil {
				return err
			}
		} else {
			displayText(results, !o.NoVendor)
		}
	}

	return errors.Join(errs...)
}

func displayJSON(results []Result) error {
	var v any = results
	if len(results) == 1 {
		v = results[0]
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	cli.Display("%s", data)
	return nil
}

func displayText(results []Result, withVendor bool) {
	for i, r := range results {
		if i > 0 {
			cli.Display("")
		}
		cli.Display("WWN:              %s", r.WWN)
		cli.Display("NAA:              %s (%s)", r.NAA, r.NAADescription)
		cli.Display("OUI:              %s", r.OUI)
		cli.Display("Vendor Sequence:  %s", r.VendorSequence)
		if r.VendorExtension != "" {
			cli.Display("Vendor Extension: %s", r.VendorExtension)
		}
		cli.Display("Formatted:        %s", r.Formatted)
		if withVendor {
			vendor := r.Vendor
			if vendor == "" {
				vendor = "(unknown)"
			}
			cli.Display("Vendor:           %s", vendor)
		}
	}
}
