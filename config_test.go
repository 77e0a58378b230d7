package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseBoolishEnv(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{input: "1", want: true},
		{input: "true", want: true},
		{input: "TRUE", want: true},
		{input: "yes", want: true},
		{input: "on", want: true},
		{input: " on ", want: true},
		{input: "0", want: false},
		{input: "false", want: false},
		{input: "", want: false},
		{input: "off", want: false},
	}

	for _, tc := range tests {
		got := parseBoolishEnv(tc.input)
		if got != tc.want {
			t.Fatalf("parseBoolishEnv(%q): expected %v, got %v", tc.input, tc.want, got)
		}
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"PNL_ADS_RATE", "PNL_REFERRAL_RATE", "PNL_SAMPLES", "PNL_REDUCE_MOTION",
		"PNL_NO_INTRO", "PNL_EXPORT_DIR", "PNL_EXPORT_FORMAT", "PNL_LOG_FILE",
		"PNL_LOG_LEVEL", "PNL_HTTP_ADDR", "PNL_HTTP_TIMEOUT", "PNL_HTTP_RATE_LIMIT",
		"PNL_HTTP_MAX_BODY",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	if cfg.AdsRate != 25 || cfg.ReferralRate != 15 {
		t.Fatalf("unexpected default rates: ads=%v referral=%v", cfg.AdsRate, cfg.ReferralRate)
	}
	if !cfg.LoadSamples || cfg.ReduceMotion || cfg.SkipIntro {
		t.Fatalf("unexpected default flags: %+v", cfg)
	}
	if cfg.ExportFormat != FormatXLSX {
		t.Fatalf("expected xlsx default, got %q", cfg.ExportFormat)
	}
	if cfg.HTTPAddr != ":8080" || cfg.HTTPTimeout != 10*time.Second || cfg.HTTPMaxBody != 1<<20 {
		t.Fatalf("unexpected http defaults: %+v", cfg)
	}
	if len(cfg.Warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", cfg.Warnings)
	}
}

func TestLoadConfigReadsEnv(t *testing.T) {
	t.Setenv("PNL_ADS_RATE", "12.5")
	t.Setenv("PNL_REFERRAL_RATE", "8%")
	t.Setenv("PNL_SAMPLES", "no")
	t.Setenv("PNL_REDUCE_MOTION", "yes")
	t.Setenv("PNL_NO_INTRO", "1")
	t.Setenv("PNL_EXPORT_DIR", "/tmp/exports")
	t.Setenv("PNL_EXPORT_FORMAT", "CSV")
	t.Setenv("PNL_HTTP_ADDR", "127.0.0.1:9090")
	t.Setenv("PNL_HTTP_TIMEOUT", "3s")
	t.Setenv("PNL_HTTP_RATE_LIMIT", "5")
	t.Setenv("PNL_HTTP_MAX_BODY", "2048")

	cfg := LoadConfig()
	if cfg.AdsRate != 12.5 || cfg.ReferralRate != 8 {
		t.Fatalf("unexpected rates: ads=%v referral=%v", cfg.AdsRate, cfg.ReferralRate)
	}
	if cfg.LoadSamples || !cfg.ReduceMotion || !cfg.SkipIntro {
		t.Fatalf("unexpected flags: %+v", cfg)
	}
	if cfg.ExportDir != "/tmp/exports" || cfg.ExportFormat != FormatCSV {
		t.Fatalf("unexpected export settings: %q %q", cfg.ExportDir, cfg.ExportFormat)
	}
	if cfg.HTTPAddr != "127.0.0.1:9090" || cfg.HTTPTimeout != 3*time.Second ||
		cfg.HTTPRateLimit != 5 || cfg.HTTPMaxBody != 2048 {
		t.Fatalf("unexpected http settings: %+v", cfg)
	}
}

func TestLoadConfigFallsBackOnBadValues(t *testing.T) {
	t.Setenv("PNL_ADS_RATE", "lots")
	t.Setenv("PNL_EXPORT_FORMAT", "pdf")
	t.Setenv("PNL_HTTP_TIMEOUT", "soon")
	t.Setenv("PNL_HTTP_MAX_BODY", "-1")

	cfg := LoadConfig()
	if cfg.AdsRate != 25 {
		t.Fatalf("expected default ads rate, got %v", cfg.AdsRate)
	}
	if cfg.ExportFormat != FormatXLSX {
		t.Fatalf("expected default export format, got %q", cfg.ExportFormat)
	}
	if cfg.HTTPTimeout != 10*time.Second || cfg.HTTPMaxBody != 1<<20 {
		t.Fatalf("expected http defaults, got %+v", cfg)
	}
	if len(cfg.Warnings) != 4 {
		t.Fatalf("expected 4 warnings, got %v", cfg.Warnings)
	}
}

func TestLoadDotEnvPreservesExistingEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "PNL_TEST_NEW=from-file\nPNL_TEST_KEEP=from-file\n# comment\nexport PNL_TEST_EXPORTED=\"quoted value\"\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write dotenv: %v", err)
	}

	t.Setenv("PNL_TEST_KEEP", "from-env")
	t.Setenv("PNL_TEST_NEW", "")
	os.Unsetenv("PNL_TEST_NEW")
	t.Setenv("PNL_TEST_EXPORTED", "")
	os.Unsetenv("PNL_TEST_EXPORTED")

	if err := loadDotEnv(path); err != nil {
		t.Fatalf("load dotenv: %v", err)
	}
	if got := os.Getenv("PNL_TEST_NEW"); got != "from-file" {
		t.Fatalf("expected value from file, got %q", got)
	}
	if got := os.Getenv("PNL_TEST_KEEP"); got != "from-env" {
		t.Fatalf("expected existing env to win, got %q", got)
	}
	if got := os.Getenv("PNL_TEST_EXPORTED"); got != "quoted value" {
		t.Fatalf("expected exported quoted value, got %q", got)
	}
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	if err := loadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("expected missing file to be ignored, got %v", err)
	}
}

func TestLoadConfigRejectsNonFiniteNumbers(t *testing.T) {
	t.Setenv("PNL_ADS_RATE", "NaN")
	t.Setenv("PNL_REFERRAL_RATE", "-Inf")
	t.Setenv("PNL_HTTP_RATE_LIMIT", "Inf")
	t.Setenv("PNL_EXPORT_FORMAT", "")
	t.Setenv("PNL_HTTP_TIMEOUT", "")
	t.Setenv("PNL_HTTP_MAX_BODY", "")

	cfg := LoadConfig()
	if cfg.AdsRate != 25 || cfg.ReferralRate != 15 || cfg.HTTPRateLimit != 0 {
		t.Fatalf("expected defaults for non-finite values, got ads=%v referral=%v rate=%v",
			cfg.AdsRate, cfg.ReferralRate, cfg.HTTPRateLimit)
	}
	if len(cfg.Warnings) != 3 {
		t.Fatalf("expected 3 warnings, got %v", cfg.Warnings)
	}
}
