// Package lifecycle holds shared settings for starting and stopping components.
package lifecycle

import "time"

// DefaultTimeout bounds start-up pings and graceful shutdowns.
const DefaultTimeout = 10 * time.Second
