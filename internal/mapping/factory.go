package mapping

import (
	"log/slog"
	"os"
	"strconv"
)

// FromEnv picks a store backend from the environment. Absence of any
// configured backend is not an error: the reconciler degrades to the
// name-tag search fallback.
func FromEnv() Store {
	if addr, ok := os.LookupEnv("REDIS_ADDR"); ok && addr != "" {
		db := 0
		if raw := os.Getenv("REDIS_DB"); raw != "" {
			if parsed, err := strconv.Atoi(raw); err == nil {
				db = parsed
			}
		}
		slog.Info("using redis mapping store", "addr", addr, "db", db)
		return NewRedisStore(addr, os.Getenv("REDIS_PASSWORD"), db)
	}

	if dir, ok := os.LookupEnv("MAPPING_DIR"); ok && dir != "" {
		slog.Info("using file mapping store", "dir", dir)
		return NewFileStore(dir)
	}

	slog.Info("no mapping store configured, dedupe falls back to name-tag search")
	return NoopStore{}
}
