// Package lifecycle holds shared timeouts for startup and shutdown hooks.
package lifecycle

import "time"

// DefaultTimeout bounds lifecycle operations such as graceful shutdown,
// database pings, and the ringer's internal timer callbacks.
const DefaultTimeout = 10 * time.Second
