package main

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"pnl/types"

	"github.com/joho/godotenv"
)

// Config holds runtime settings read from the environment.
type Config struct {
	AdsRate      float64
	ReferralRate float64
	LoadSamples  bool
	ReduceMotion bool
	SkipIntro    bool

	ExportDir    string
	ExportFormat ExportFormat

	LogFile  string
	LogLevel string

	HTTPAddr      string
	HTTPTimeout   time.Duration
	HTTPRateLimit float64
	HTTPMaxBody   int64

	// Warnings collects values that could not be parsed and fell back to defaults.
	Warnings []string
}

// DefaultConfig returns the settings used when no environment is set.
func DefaultConfig() Config {
	return Config{
		AdsRate:      types.DefaultAdsRate,
		ReferralRate: types.DefaultReferralRate,
		LoadSamples:  true,
		ExportDir:    ".",
		ExportFormat: FormatXLSX,
		LogLevel:     "info",
		HTTPAddr:     ":8080",
		HTTPTimeout:  10 * time.Second,
		HTTPMaxBody:  1 << 20,
	}
}

// loadDotEnv loads KEY=VALUE pairs from path. Existing process env values
// take precedence and a missing file is not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load dotenv file: %w", err)
	}
	return nil
}

// LoadConfig reads PNL_* variables on top of DefaultConfig.
func LoadConfig() Config {
	cfg := DefaultConfig()
	if home, err := os.UserHomeDir(); err == nil {
		cfg.ExportDir = home
	}

	cfg.AdsRate = cfg.envFloat("PNL_ADS_RATE", cfg.AdsRate)
	cfg.ReferralRate = cfg.envFloat("PNL_REFERRAL_RATE", cfg.ReferralRate)
	cfg.LoadSamples = envBool("PNL_SAMPLES", cfg.LoadSamples)
	cfg.ReduceMotion = envBool("PNL_REDUCE_MOTION", cfg.ReduceMotion)
	cfg.SkipIntro = envBool("PNL_NO_INTRO", cfg.SkipIntro)

	if dir := strings.TrimSpace(os.Getenv("PNL_EXPORT_DIR")); dir != "" {
		cfg.ExportDir = dir
	}
	if raw := strings.TrimSpace(os.Getenv("PNL_EXPORT_FORMAT")); raw != "" {
		if format, ok := ParseExportFormat(raw); ok {
			cfg.ExportFormat = format
		} else {
			cfg.warn("PNL_EXPORT_FORMAT", raw)
		}
	}

	cfg.LogFile = strings.TrimSpace(os.Getenv("PNL_LOG_FILE"))
	if level := strings.TrimSpace(os.Getenv("PNL_LOG_LEVEL")); level != "" {
		cfg.LogLevel = level
	}

	if addr := strings.TrimSpace(os.Getenv("PNL_HTTP_ADDR")); addr != "" {
		cfg.HTTPAddr = addr
	}
	if raw := strings.TrimSpace(os.Getenv("PNL_HTTP_TIMEOUT")); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			cfg.HTTPTimeout = d
		} else {
			cfg.warn("PNL_HTTP_TIMEOUT", raw)
		}
	}
	cfg.HTTPRateLimit = cfg.envFloat("PNL_HTTP_RATE_LIMIT", cfg.HTTPRateLimit)
	if raw := strings.TrimSpace(os.Getenv("PNL_HTTP_MAX_BODY")); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil && n > 0 {
			cfg.HTTPMaxBody = n
		} else {
			cfg.warn("PNL_HTTP_MAX_BODY", raw)
		}
	}

	return cfg
}

func (c *Config) envFloat(key string, fallback float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(raw, "%"), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		c.warn(key, raw)
		return fallback
	}
	return v
}

func (c *Config) warn(key, raw string) {
	c.Warnings = append(c.Warnings, fmt.Sprintf("ignoring %s=%q", key, raw))
}

func envBool(key string, fallback bool) bool {
	raw, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return fallback
	}
	return parseBoolishEnv(raw)
}

func parseBoolishEnv(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
