// Package lifecycle holds shared timing constants for fx start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every OnStart/OnStop hook and graceful shutdown.
const DefaultTimeout = 10 * time.Second

// NotificationTimeout bounds a single detached notification dispatch.
const NotificationTimeout = 30 * time.Second
