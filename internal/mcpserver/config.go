package mcpserver

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/erraggy/schemacodec/loader"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Cache settings.
	CacheEnabled       bool
	CacheMaxSize       int
	CacheFileTTL       time.Duration
	CacheContentTTL    time.Duration
	CacheSweepInterval time.Duration

	// Walk tool defaults.
	WalkLimit       int
	WalkDetailLimit int
	MaxLimit        int

	// Input limits.
	MaxInlineSize   int64
	MaxDocumentSize int64
}

var errNotPositive = errors.New("must be positive")

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from SCHEMACODEC_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		CacheEnabled:       envBool("SCHEMACODEC_CACHE_ENABLED", true),
		CacheMaxSize:       envInt("SCHEMACODEC_CACHE_MAX_SIZE", 10),
		CacheFileTTL:       envDuration("SCHEMACODEC_CACHE_FILE_TTL", 15*time.Minute),
		CacheContentTTL:    envDuration("SCHEMACODEC_CACHE_CONTENT_TTL", 15*time.Minute),
		CacheSweepInterval: envDuration("SCHEMACODEC_CACHE_SWEEP_INTERVAL", 60*time.Second),
		WalkLimit:          envInt("SCHEMACODEC_WALK_LIMIT", 100),
		WalkDetailLimit:    envInt("SCHEMACODEC_WALK_DETAIL_LIMIT", 25),
		MaxLimit:           envInt("SCHEMACODEC_MAX_LIMIT", 1000),
		MaxInlineSize:      envInt64("SCHEMACODEC_MAX_INLINE_SIZE", loader.DefaultMaxSize),
		MaxDocumentSize:    envInt64("SCHEMACODEC_MAX_DOCUMENT_SIZE", loader.DefaultMaxSize),
	}
}

// envValue parses the variable named key with parse. Unset variables yield
// fallback silently; unparseable ones yield fallback with a warning.
func envValue[T any](key string, fallback T, parse func(string) (T, error)) T {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	v, err := parse(raw)
	if err != nil {
		slog.Warn("ignoring environment override", "key", key, "value", raw, "error", err) //nolint:gosec // G706: structured fields only
		return fallback
	}
	return v
}

func envBool(key string, fallback bool) bool {
	return envValue(key, fallback, strconv.ParseBool)
}

func envInt(key string, fallback int) int {
	return envValue(key, fallback, func(s string) (int, error) {
		n, err := strconv.Atoi(s)
		return n, positive(n, err)
	})
}

func envInt64(key string, fallback int64) int64 {
	return envValue(key, fallback, func(s string) (int64, error) {
		n, err := strconv.ParseInt(s, 10, 64)
		return n, positive(n, err)
	})
}

func envDuration(key string, fallback time.Duration) time.Duration {
	return envValue(key, fallback, func(s string) (time.Duration, error) {
		d, err := time.ParseDuration(s)
		return d, positive(d, err)
	})
}

func positive[N int | int64 | time.Duration](n N, err error) error {
	if err != nil {
		return err
	}
	if n <= 0 {
		return errNotPositive
	}
	return nil
}
