// Trackviz - Request Tracking Analytics Charts
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trackviz

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomtom215/trackviz/internal/logging"
	"github.com/tomtom215/trackviz/internal/models"
	"github.com/tomtom215/trackviz/internal/render"
)

// stdio is the --in/--out value meaning stdin or stdout.
const stdio = "-"

type chartRenderer interface {
	Render(ctx context.Context, req render.Request) (render.Result, error)
	Dashboard(ctx context.Context, req render.DashboardRequest) (render.Result, error)
}

// RenderOptions holds the flags of the render command.
type RenderOptions struct {
	inFile    string
	outFile   string
	formatArg string

	chart  render.Chart
	format render.Format

	svc chartRenderer
	IOStreams
}

func NewRenderOptions(svc chartRenderer, streams IOStreams) *RenderOptions {
	return &RenderOptions{inFile: stdio, svc: svc, IOStreams: streams}
}

func NewCmdRender(svc chartRenderer, streams IOStreams) *cobra.Command {
	o := NewRenderOptions(svc, streams)

	cmd := &cobra.Command{
		Use:   "render (devices|requests|countries) [--in file] [--out file] [--format svg|png|html|json]",
		Short: "Render one chart from a saved admin endpoint payload",
		Example: `  # Device bar chart from the device stats endpoint
  curl -s https://example.com/admin/tracking/devices | trackviz render devices --out devices.svg

  # Interactive world map
  trackviz render countries --in countries.json --format html`,
		Args: cobra.ExactArgs(1),
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

	cmd.Flags().StringVarP(&o.inFile, "in", "i", o.inFile, "payload file, - for stdin")
	cmd.Flags().StringVarP(&o.outFile, "out", "o", o.outFile, "output file, - for stdout (default <chart>.<format>)")
	cmd.Flags().StringVarP(&o.formatArg, "format", "f", o.formatArg, "output format; inferred from --out when empty, else svg")

	return cmd
}

func (o *RenderOptions) Complete(_ *cobra.Command, args []string) error {
	chart, err := render.ParseChart(args[0])
	if err != nil {
		return fmt.Errorf("%w (want %s)", err, strings.Join(chartNames(), ", "))
	}
	o.chart = chart

	formatArg := o.formatArg
	if formatArg == "" {
		formatArg = formatFromFilename(o.outFile)
	}
	if formatArg == "" {
		formatArg = string(render.FormatSVG)
		if chart == render.ChartCountries {
			formatArg = string(render.FormatHTML)
		}
	}
	if o.format, err = render.ParseFormat(formatArg); err != nil {
		return err
	}

	if o.outFile == "" {
		o.outFile = render.FilenameFor(o.chart, o.format)
	}
	return nil
}

func (o *RenderOptions) Validate() error {
	if !o.chart.Supports(o.format) {
		return fmt.Errorf("%w: %s cannot be rendered as %s", render.ErrUnsupportedFormat, o.chart, o.format)
	}
	return nil
}

func (o *RenderOptions) Run(ctx context.Context) error {
	payload, err := readInput(o.In, o.inFile)
	if err != nil {
		return err
	}

	res, err := o.svc.Render(ctx, render.Request{Chart: o.chart, Format: o.format, Payload: payload})
	if err != nil {
		return err
	}
	if res.Skipped > 0 {
		logging.Warn().Int("skipped", res.Skipped).Str("chart", string(o.chart)).Msg("Skipped malformed records")
	}
	return writeOutput(o.Out, o.ErrOut, o.outFile, res.Body)
}

func chartNames() []string {
	return []string{string(render.ChartDevices), string(render.ChartRequests), string(render.ChartCountries)}
}

func formatFromFilename(name string) string {
	if name == "" || name == stdio {
		return ""
	}
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
}

func readInput(stdin io.Reader, name string) ([]byte, error) {
	if name == stdio || name == "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}
	return data, nil
}

func writeOutput(stdout, stderr io.Writer, name string, body []byte) error {
	if name == stdio {
		_, err := stdout.Write(body)
		return err
	}
	if err := os.WriteFile(name, body, 0o644); err != nil { //nolint:gosec // rendered charts are not secret
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Fprintf(stderr, "wrote %q\n", name)
	return nil
}

// NewCmdDeviceTypes lists the device type labels in chart order.
func NewCmdDeviceTypes(streams IOStreams) *cobra.Command {
	return &cobra.Command{
		Use:   "device-types",
		Short: "List the device type labels in chart order",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			for _, dt := range models.KnownDeviceTypes() {
				if _, err := fmt.Fprintln(streams.Out, dt.Label()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
