// internal/app/system/timeouts/timeouts.go
package timeouts

import "time"

// Centralized durations for MongoDB operations so every store uses the
// same ceilings.

// Ping bounds health-check pings.
func Ping() time.Duration { return 2 * time.Second }

// Short bounds single-document reads and writes.
func Short() time.Duration { return 5 * time.Second }

// Long bounds multi-document reads (listings, member resolution).
func Long() time.Duration { return 15 * time.Second }
