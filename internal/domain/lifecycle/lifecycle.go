// Package lifecycle holds shared lifecycle constants.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown operations (DB ping, server
// shutdown, scheduler stop).
const DefaultTimeout = 30 * time.Second
