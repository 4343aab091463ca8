// Package config handles thumbnail matcher configuration
package config

import (
	"os"
	"runtime"
	"strconv"

	"thumbnail-matcher/extractor"
)

type Config struct {
	HashOutput     string // JSON file written by the hash command
	ExtractOutput  string // directory written by the extract command
	Workers        int    // thumbnails hashed concurrently
	Verbose        bool
	WhiteThreshold float64 // panel binarisation level for extraction
}

func Load() *Config {
	return &Config{
		HashOutput:     getEnv("THUMB_HASH_OUTPUT", "character_hashes.json"),
		ExtractOutput:  getEnv("THUMB_EXTRACT_OUTPUT", "output"),
		Workers:        getEnvInt("THUMB_WORKERS", runtime.NumCPU()),
		Verbose:        getEnvBool("THUMB_VERBOSE", false),
		WhiteThreshold: getEnvFloat("THUMB_WHITE_THRESHOLD", extractor.DefaultWhiteThreshold),
	}
}

// ExtractorConfig returns the extraction thresholds with the configured overrides applied.
func (c *Config) ExtractorConfig() extractor.Config {
	cfg := extractor.DefaultConfig()
	cfg.WhiteThreshold = float32(c.WhiteThreshold)
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		return v == "true" || v == "1"
	}
	return def
}
