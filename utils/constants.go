package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = 10 * time.Minute

// Date and time layouts used on the wire.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)
