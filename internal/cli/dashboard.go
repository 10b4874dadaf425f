// Trackviz - Request Tracking Analytics Charts
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trackviz

package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomtom215/trackviz/internal/render"
	"github.com/tomtom215/trackviz/internal/validation"
)

// DashboardOptions holds the flags of the dashboard command.
type DashboardOptions struct {
	devicesFile   string
	requestsFile  string
	countriesFile string
	outFile       string
	formatArg     string

	filters render.Filters
	format  render.Format

	svc chartRenderer
	IOStreams
}

func NewDashboardOptions(svc chartRenderer, streams IOStreams) *DashboardOptions {
	return &DashboardOptions{formatArg: string(render.FormatHTML), svc: svc, IOStreams: streams}
}

func NewCmdDashboard(svc chartRenderer, streams IOStreams) *cobra.Command {
	o := NewDashboardOptions(svc, streams)

	cmd := &cobra.Command{
		Use:   "dashboard [--devices file] [--requests file] [--countries file] [--out file]",
		Short: "Render the charts of the tracking admin page as one HTML document",
		Example: `  trackviz dashboard --devices devices.json --requests requests.json --countries countries.json

  # Drill into one country; the world map is dropped
  trackviz dashboard --devices fr-devices.json --requests fr-requests.json --country FR`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			if err := o.Complete(c, args); err != nil {
				return err
			}
			if err := o.Validate(); err != nil {
				return err
			}
			return o.Run(c.Context())
		},
	}

	cmd.Flags().StringVar(&o.devicesFile, "devices", "", "device stats payload")
	cmd.Flags().StringVar(&o.requestsFile, "requests", "", "requests graph payload")
	cmd.Flags().StringVar(&o.countriesFile, "countries", "", "country stats payload")
	cmd.Flags().StringVarP(&o.outFile, "out", "o", "", "output file, - for stdout (default dashboard.<format>)")
	cmd.Flags().StringVarP(&o.formatArg, "format", "f", o.formatArg, "html or json")
	cmd.Flags().StringVar(&o.filters.Country, "country", "", "ISO 3166-1 alpha-2 country filter")
	cmd.Flags().StringVar(&o.filters.DeviceType, "device-type", "", "device type filter")

	return cmd
}

func (o *DashboardOptions) Complete(_ *cobra.Command, _ []string) error {
	format, err := render.ParseFormat(o.formatArg)
	if err != nil {
		return err
	}
	o.format = format
	if o.outFile == "" {
		o.outFile = "dashboard." + format.Extension()
	}
	return nil
}

func (o *DashboardOptions) Validate() error {
	if o.format != render.FormatHTML && o.format != render.FormatJSON {
		return fmt.Errorf("%w: dashboard cannot be rendered as %s", render.ErrUnsupportedFormat, o.format)
	}
	if o.devicesFile == "" && o.requestsFile == "" && o.countriesFile == "" {
		return errors.New("at least one of --devices, --requests or --countries is required")
	}
	if o.filters.Country != "" {
		if err := validation.GetValidator().Var(o.filters.Country, "iso_country"); err != nil {
			return fmt.Errorf("invalid --country %q: not an ISO 3166 country code", o.filters.Country)
		}
	}
	return nil
}

func (o *DashboardOptions) Run(ctx context.Context) error {
	req := render.DashboardRequest{Filters: o.filters, Format: o.format}

	for _, in := range []struct {
		file string
		dst  *[]byte
	}{
		{o.devicesFile, (*[]byte)(&req.Devices)},
		{o.requestsFile, (*[]byte)(&req.Requests)},
		{o.countriesFile, (*[]byte)(&req.Countries)},
	} {
		if in.file == "" {
			continue
		}
		data, err := readInput(o.In, in.file)
		if err != nil {
			return err
		}
		*in.dst = data
	}

	res, err := o.svc.Dashboard(ctx, req)
	if err != nil {
		return err
	}
	return writeOutput(o.Out, o.ErrOut, o.outFile, res.Body)
}
