// Package config provides configuration loading from environment variables.
package config

import (
	"os"
	"strconv"

	"github.com/timf34/TinderDataAdventures/pkg/schema"
)

// Report defaults.
const (
	DefaultMinMessageLen = 10
	DefaultTopMessages   = 50
	DefaultTopWords      = 100
	DefaultQueryLimit    = 100
	DefaultWorkers       = 8
)

// Config holds all configuration for the CLI and the MCP server.
type Config struct {
	DataPath string // TDA_DATA_PATH, path to the exported dataset file

	// Report limits
	MinMessageLen int // TDA_MIN_MESSAGE_LEN, shortest message the repeated-messages report counts
	TopMessages   int // TDA_TOP_MESSAGES, rows kept in the repeated-messages report
	TopWords      int // TDA_TOP_WORDS, rows kept in the word-frequency report
	QueryLimit    int // TDA_QUERY_LIMIT, default cap on query results

	// Processing
	Workers          int // TDA_WORKERS, popularity report worker pool size
	SegmentCacheSize int // TDA_SEGMENT_CACHE_SIZE, path normalizer memo capacity

	// Logging
	LogLevel      string // TDA_LOG_LEVEL, default "info"
	LogFile       string // TDA_LOG_FILE, default "" (stderr only)
	LogMaxSizeMB  int    // TDA_LOG_MAX_SIZE_MB, default 20
	LogMaxBackups int    // TDA_LOG_MAX_BACKUPS, default 3
	LogMaxAgeDays int    // TDA_LOG_MAX_AGE_DAYS, default 28
	LogCompress   bool   // TDA_LOG_COMPRESS, default true
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		DataPath: getEnvString("TDA_DATA_PATH", "data.json"),

		MinMessageLen: getEnvInt("TDA_MIN_MESSAGE_LEN", DefaultMinMessageLen),
		TopMessages:   getEnvInt("TDA_TOP_MESSAGES", DefaultTopMessages),
		TopWords:      getEnvInt("TDA_TOP_WORDS", DefaultTopWords),
		QueryLimit:    getEnvInt("TDA_QUERY_LIMIT", DefaultQueryLimit),

		Workers:          getEnvInt("TDA_WORKERS", DefaultWorkers),
		SegmentCacheSize: getEnvInt("TDA_SEGMENT_CACHE_SIZE", schema.DefaultSegmentCacheSize),

		LogLevel:      getEnvString("TDA_LOG_LEVEL", "info"),
		LogFile:       getEnvString("TDA_LOG_FILE", ""),
		LogMaxSizeMB:  getEnvInt("TDA_LOG_MAX_SIZE_MB", 20),
		LogMaxBackups: getEnvInt("TDA_LOG_MAX_BACKUPS", 3),
		LogMaxAgeDays: getEnvInt("TDA_LOG_MAX_AGE_DAYS", 28),
		LogCompress:   getEnvBool("TDA_LOG_COMPRESS", true),
	}
}

func getEnvBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		switch v {
		case "1", "true", "yes", "on":
			return true
		case "0", "false", "no", "off":
			return false
		}
	}
	return defaultVal
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}
