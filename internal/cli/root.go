// Trackviz - Request Tracking Analytics Charts
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trackviz

// Package cli implements the trackviz command line tool, which renders
// charts from saved admin endpoint payloads without running the server.
package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tomtom215/trackviz/internal/logging"
	"github.com/tomtom215/trackviz/internal/render"
)

// IOStreams are the standard streams of a command.
type IOStreams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
}

// StdStreams returns the process streams.
func StdStreams() IOStreams {
	return IOStreams{In: os.Stdin, Out: os.Stdout, ErrOut: os.Stderr}
}

// NewRootCommand builds the trackviz command tree.
func NewRootCommand(streams IOStreams, version string) *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:           "trackviz",
		Short:         "Render request tracking charts from admin endpoint payloads",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			cfg := logging.DefaultConfig()
			cfg.Level = logLevel
			cfg.Format = "console"
			cfg.Output = streams.ErrOut
			logging.Init(cfg)
		},
	}
	cmd.SetIn(streams.In)
	cmd.SetOut(streams.Out)
	cmd.SetErr(streams.ErrOut)

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	// Renders from the CLI are one-shot: no cache and no PNG throttle.
	svc := render.NewService(render.Options{})

	cmd.AddCommand(NewCmdRender(svc, streams))
	cmd.AddCommand(NewCmdDashboard(svc, streams))
	cmd.AddCommand(NewCmdDeviceTypes(streams))
	return cmd
}
