// Trackviz - Request Tracking Analytics Charts
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trackviz

// Package logging provides the zerolog-based global logger used by the server
// and the CLI.
//
//	logging.Init(logging.Config{Level: "debug", Format: "console"})
//	logging.Info().Str("addr", addr).Msg("Server listening")
//	logging.Ctx(ctx).Warn().Int("skipped", n).Msg("Dropped unparseable dates")
//
// Always end an event chain with Msg or Send, or nothing is written.
//
// HTTP middleware stores request and correlation IDs in the request context;
// Ctx adds them to every entry. SlogHandler bridges log/slog consumers such
// as sutureslog onto the same output.
package logging
