// Package lifecycle holds shared constants for application start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown hooks such as DB pings and
// HTTP server drains.
const DefaultTimeout = 10 * time.Second
