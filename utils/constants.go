package utils

import "time"

// AvailabilityCachePrefix is the prefix used for Redis availability cache keys.
const AvailabilityCachePrefix = "availability:"

// AvailabilityCacheTTL is the time-to-live for cached availability summaries.
const AvailabilityCacheTTL = 2 * time.Minute

// DraftSessionPrefix is the prefix used for booking draft session keys.
const DraftSessionPrefix = "draft:"

// DraftSessionTTL is how long an unconfirmed booking draft survives.
const DraftSessionTTL = 30 * time.Minute
