// Package lifecycle holds shared start/stop settings for long-lived components.
package lifecycle

import "time"

// DefaultTimeout bounds graceful start and shutdown hooks.
const DefaultTimeout = 10 * time.Second
