package mcpserver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// clearSchemacodecEnv clears all SCHEMACODEC_* env vars to isolate tests from the ambient environment.
func clearSchemacodecEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SCHEMACODEC_CACHE_ENABLED", "SCHEMACODEC_CACHE_MAX_SIZE",
		"SCHEMACODEC_CACHE_FILE_TTL", "SCHEMACODEC_CACHE_CONTENT_TTL",
		"SCHEMACODEC_CACHE_SWEEP_INTERVAL",
		"SCHEMACODEC_WALK_LIMIT", "SCHEMACODEC_WALK_DETAIL_LIMIT", "SCHEMACODEC_MAX_LIMIT",
		"SCHEMACODEC_MAX_INLINE_SIZE", "SCHEMACODEC_MAX_DOCUMENT_SIZE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearSchemacodecEnv(t)

	c := loadConfig()

	assert.True(t, c.CacheEnabled)
	assert.Equal(t, 10, c.CacheMaxSize)
	assert.Equal(t, 15*time.Minute, c.CacheFileTTL)
	assert.Equal(t, 15*time.Minute, c.CacheContentTTL)
	assert.Equal(t, 60*time.Second, c.CacheSweepInterval)
	assert.Equal(t, 100, c.WalkLimit)
	assert.Equal(t, 25, c.WalkDetailLimit)
	assert.Equal(t, 1000, c.MaxLimit)
	assert.Equal(t, int64(10*1024*1024), c.MaxInlineSize)
	assert.Equal(t, int64(10*1024*1024), c.MaxDocumentSize)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearSchemacodecEnv(t)
	t.Setenv("SCHEMACODEC_CACHE_ENABLED", "false")
	t.Setenv("SCHEMACODEC_CACHE_MAX_SIZE", "50")
	t.Setenv("SCHEMACODEC_CACHE_FILE_TTL", "30m")
	t.Setenv("SCHEMACODEC_CACHE_CONTENT_TTL", "10m")
	t.Setenv("SCHEMACODEC_CACHE_SWEEP_INTERVAL", "30s")
	t.Setenv("SCHEMACODEC_WALK_LIMIT", "200")
	t.Setenv("SCHEMACODEC_WALK_DETAIL_LIMIT", "50")
	t.Setenv("SCHEMACODEC_MAX_LIMIT", "500")
	t.Setenv("SCHEMACODEC_MAX_INLINE_SIZE", "5242880")
	t.Setenv("SCHEMACODEC_MAX_DOCUMENT_SIZE", "1048576")

	c := loadConfig()

	assert.False(t, c.CacheEnabled)
	assert.Equal(t, 50, c.CacheMaxSize)
	assert.Equal(t, 30*time.Minute, c.CacheFileTTL)
	assert.Equal(t, 10*time.Minute, c.CacheContentTTL)
	assert.Equal(t, 30*time.Second, c.CacheSweepInterval)
	assert.Equal(t, 200, c.WalkLimit)
	assert.Equal(t, 50, c.WalkDetailLimit)
	assert.Equal(t, 500, c.MaxLimit)
	assert.Equal(t, int64(5242880), c.MaxInlineSize)
	assert.Equal(t, int64(1048576), c.MaxDocumentSize)
}

func TestLoadConfig_InvalidValues_UseDefaults(t *testing.T) {
	clearSchemacodecEnv(t)
	t.Setenv("SCHEMACODEC_CACHE_MAX_SIZE", "banana")
	t.Setenv("SCHEMACODEC_CACHE_FILE_TTL", "not-a-duration")
	t.Setenv("SCHEMACODEC_CACHE_ENABLED", "maybe")
	t.Setenv("SCHEMACODEC_WALK_LIMIT", "-5")
	t.Setenv("SCHEMACODEC_MAX_INLINE_SIZE", "abc")
	t.Setenv("SCHEMACODEC_MAX_LIMIT", "0")
	t.Setenv("SCHEMACODEC_MAX_DOCUMENT_SIZE", "-1")

	c := loadConfig()

	assert.True(t, c.CacheEnabled)
	assert.Equal(t, 10, c.CacheMaxSize)
	assert.Equal(t, 15*time.Minute, c.CacheFileTTL)
	assert.Equal(t, 100, c.WalkLimit)
	assert.Equal(t, int64(10*1024*1024), c.MaxInlineSize)
	assert.Equal(t, 1000, c.MaxLimit)
	assert.Equal(t, int64(10*1024*1024), c.MaxDocumentSize)
}

func TestLoadConfig_PartialOverrides(t *testing.T) {
	clearSchemacodecEnv(t)
	t.Setenv("SCHEMACODEC_WALK_LIMIT", "42")
	t.Setenv("SCHEMACODEC_CACHE_CONTENT_TTL", "10m")

	c := loadConfig()

	assert.Equal(t, 42, c.WalkLimit)
	assert.Equal(t, 10*time.Minute, c.CacheContentTTL)
	assert.Equal(t, 25, c.WalkDetailLimit)
	assert.Equal(t, 15*time.Minute, c.CacheFileTTL)
}
