package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Persistence policies: what a failed database connection means at
// startup. The legacy system exited on some init failures and shrugged at
// others; here it is one explicit switch.
const (
	PolicyRequire = "require" // abort startup
	PolicyWarn    = "warn"    // log and continue in-memory only
)

// PersistencePolicy reads PERSISTENCE_POLICY, defaulting to warn.
func PersistencePolicy() string {
	if strings.EqualFold(strings.TrimSpace(os.Getenv("PERSISTENCE_POLICY")), PolicyRequire) {
		return PolicyRequire
	}
	return PolicyWarn
}

// RoomCount is the seed size when the inventory starts empty.
func RoomCount() int {
	if raw := strings.TrimSpace(os.Getenv("ROOM_COUNT")); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return n
		}
	}
	return 15
}

// CacheTTL is the lifetime of the cached availability listing.
func CacheTTL() time.Duration {
	if raw := strings.TrimSpace(os.Getenv("CACHE_TTL")); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			return d
		}
	}
	return 30 * time.Second
}

// EnvOrDefault returns the trimmed value of key, or def when unset.
func EnvOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}
