// Package config provides configuration loading from environment variables.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the MCP server.
type Config struct {
	MaxInputBytes      int           // MAX_INPUT_BYTES, default 4_000_000
	ParseCacheMaxItems int           // PARSE_CACHE_MAX_ITEMS, default 128
	QueryCacheMaxItems int           // QUERY_CACHE_MAX_ITEMS, default 256
	DefaultMaxResults  int           // DEFAULT_QUERY_MAX_RESULTS, default 1000
	MockMaxRecords     int           // MOCK_MAX_RECORDS, default 100
	SearchMaxMatches   int           // SEARCH_MAX_MATCHES, default 200
	FetchTimeout       time.Duration // FETCH_TIMEOUT_MS, default 10000ms (10s)
	FetchMaxBodyBytes  int           // FETCH_MAX_BODY_BYTES, default 2_000_000

	// Logging configuration
	LogLevel      string // LOG_LEVEL, default "info"
	LogFile       string // LOG_FILE, default "" (stderr only)
	LogMaxSizeMB  int    // LOG_MAX_SIZE_MB, default 10
	LogMaxBackups int    // LOG_MAX_BACKUPS, default 3
	LogMaxAgeDays int    // LOG_MAX_AGE_DAYS, default 28
	LogCompress   bool   // LOG_COMPRESS, default true
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		MaxInputBytes:      getEnvInt("MAX_INPUT_BYTES", 4_000_000),
		ParseCacheMaxItems: getEnvInt("PARSE_CACHE_MAX_ITEMS", 128),
		QueryCacheMaxItems: getEnvInt("QUERY_CACHE_MAX_ITEMS", 256),
		DefaultMaxResults:  getEnvInt("DEFAULT_QUERY_MAX_RESULTS", 1000),
		MockMaxRecords:     getEnvInt("MOCK_MAX_RECORDS", 100),
		SearchMaxMatches:   getEnvInt("SEARCH_MAX_MATCHES", 200),
		FetchTimeout:       getEnvDurationMs("FETCH_TIMEOUT_MS", 10000),
		FetchMaxBodyBytes:  getEnvInt("FETCH_MAX_BODY_BYTES", 2_000_000),

		LogLevel:      getEnvString("LOG_LEVEL", "info"),
		LogFile:       getEnvString("LOG_FILE", ""),
		LogMaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 10),
		LogMaxBackups: getEnvInt("LOG_MAX_BACKUPS", 3),
		LogMaxAgeDays: getEnvInt("LOG_MAX_AGE_DAYS", 28),
		LogCompress:   getEnvBool("LOG_COMPRESS", true),
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

func getEnvDurationMs(key string, defaultMs int) time.Duration {
	ms := getEnvInt(key, defaultMs)
	return time.Duration(ms) * time.Millisecond
}
