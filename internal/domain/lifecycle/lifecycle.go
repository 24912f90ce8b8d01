// Package lifecycle holds constants shared by fx lifecycle hooks.
package lifecycle

import "time"

// DefaultTimeout bounds start and stop hooks of long-lived components.
const DefaultTimeout = 10 * time.Second
