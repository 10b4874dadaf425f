// Trackviz - Request Tracking Analytics Charts
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trackviz

/*
Package services holds the suture.Service implementations run by the
supervisor tree.

  - HTTPServerService binds the listener, serves until the context is
    canceled and then calls Shutdown with a bounded timeout. Ready reports
    whether the listener is bound and feeds /api/v1/health/ready.
  - CacheJanitorService periodically calls CleanupExpired on the render
    cache.
  - UptimeService updates the uptime gauge.

Every Serve method returns ctx.Err() on a clean stop so suture does not
count it as a failure.
*/
package services
