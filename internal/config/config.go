package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// Stats endpoint auth (optional; open when empty).
	StatsAPIKey string

	// Source document download
	DownloadTimeout time.Duration
	MaxPDFBytes     int64

	// Extraction
	TextDensityThreshold float64
	MinWordCount         int
	PageWorkers          int
	FallbackPdftotext    bool
	ResultCacheTTL       time.Duration
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8000"),

		StatsAPIKey: os.Getenv("STATS_API_KEY"),

		DownloadTimeout: envDuration("DOWNLOAD_TIMEOUT", 10*time.Second),
		MaxPDFBytes:     envInt64("MAX_PDF_BYTES", 104857600), // 100MB

		TextDensityThreshold: envFloat("TEXT_DENSITY_THRESHOLD", 0.3),
		MinWordCount:         envInt("MIN_WORD_COUNT", 50),
		PageWorkers:          envInt("PAGE_WORKERS", 0), // 0 = derive from CPU count
		FallbackPdftotext:    envBool("FALLBACK_PDFTOTEXT", true),
		ResultCacheTTL:       envDuration("RESULT_CACHE_TTL", 1*time.Hour),
	}

	if cfg.DownloadTimeout <= 0 {
		cfg.DownloadTimeout = 10 * time.Second
	}
	if cfg.MaxPDFBytes <= 0 {
		cfg.MaxPDFBytes = 104857600
	}
	if cfg.MinWordCount <= 0 {
		cfg.MinWordCount = 50
	}
	if cfg.ResultCacheTTL <= 0 {
		cfg.ResultCacheTTL = 1 * time.Hour
	}

	return cfg
}

func (c Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.TextDensityThreshold <= 0 || c.TextDensityThreshold > 1 {
		return fmt.Errorf("TEXT_DENSITY_THRESHOLD must be in (0, 1], got %g", c.TextDensityThreshold)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
