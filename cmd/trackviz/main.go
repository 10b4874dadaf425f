// Trackviz - Request Tracking Analytics Charts
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trackviz

// Command trackviz renders request tracking charts from saved admin
// endpoint payloads.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/tomtom215/trackviz/internal/cli"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	streams := cli.StdStreams()
	if err := cli.NewRootCommand(streams, version).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(streams.ErrOut, "error:", err)
		stop()
		os.Exit(1)
	}
}
