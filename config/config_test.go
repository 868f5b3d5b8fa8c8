package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("SALESLENS_INPUT_DATA_FILE")
		os.Unsetenv("SALESLENS_INPUT_DELIMITER")
		os.Unsetenv("SALESLENS_OUTPUT_DIR")
		os.Unsetenv("SALESLENS_OUTPUT_REPORT_FILE")
		os.Unsetenv("SALESLENS_OUTPUT_ENRICHED_FILE")
		os.Unsetenv("SALESLENS_CATALOG_BASE_URL")
		os.Unsetenv("SALESLENS_CATALOG_TIMEOUT")
		os.Unsetenv("SALESLENS_CATALOG_PAGE_SIZE")
		os.Unsetenv("SALESLENS_CATALOG_RATE_LIMIT")
		os.Unsetenv("SALESLENS_CATALOG_PREFETCH")
		os.Unsetenv("SALESLENS_CACHE_TTL")
		os.Unsetenv("SALESLENS_REPORT_TOP_PRODUCTS")
		os.Unsetenv("SALESLENS_REPORT_TOP_CUSTOMERS")
		os.Unsetenv("SALESLENS_REPORT_LOW_QUANTITY_THRESHOLD")
		os.Unsetenv("SALESLENS_REPORT_CURRENCY")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		cfg, err := Load("")
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		// Check defaults
		if cfg.Input.DataFile != "data/sales_data.txt" {
			t.Errorf("Input.DataFile = %s, want data/sales_data.txt", cfg.Input.DataFile)
		}
		if cfg.Input.Delimiter != "|" {
			t.Errorf("Input.Delimiter = %s, want |", cfg.Input.Delimiter)
		}
		if cfg.Output.Dir != "output" {
			t.Errorf("Output.Dir = %s, want output", cfg.Output.Dir)
		}
		if cfg.Output.ReportFile != "sales_report.txt" {
			t.Errorf("Output.ReportFile = %s, want sales_report.txt", cfg.Output.ReportFile)
		}
		if cfg.Catalog.BaseURL != "https://dummyjson.com" {
			t.Errorf("Catalog.BaseURL = %s, want https://dummyjson.com", cfg.Catalog.BaseURL)
		}
		if cfg.Catalog.Timeout != 10*time.Second {
			t.Errorf("Catalog.Timeout = %v, want 10s", cfg.Catalog.Timeout)
		}
		if cfg.Catalog.PageSize != 100 {
			t.Errorf("Catalog.PageSize = %d, want 100", cfg.Catalog.PageSize)
		}
		if !cfg.Catalog.Prefetch {
			t.Error("Catalog.Prefetch = false, want true")
		}
		if cfg.Cache.TTL != time.Hour {
			t.Errorf("Cache.TTL = %v, want 1h", cfg.Cache.TTL)
		}
		if cfg.Report.TopProducts != 5 {
			t.Errorf("Report.TopProducts = %d, want 5", cfg.Report.TopProducts)
		}
		if cfg.Report.LowQuantityThreshold != 10 {
			t.Errorf("Report.LowQuantityThreshold = %d, want 10", cfg.Report.LowQuantityThreshold)
		}
		if cfg.Report.Currency != "₹" {
			t.Errorf("Report.Currency = %s, want ₹", cfg.Report.Currency)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("SALESLENS_INPUT_DATA_FILE", "testdata/sales.txt")
		os.Setenv("SALESLENS_INPUT_DELIMITER", ",")
		os.Setenv("SALESLENS_OUTPUT_DIR", "/tmp/out")
		os.Setenv("SALESLENS_CATALOG_BASE_URL", "http://localhost:9090")
		os.Setenv("SALESLENS_CATALOG_TIMEOUT", "3s")
		os.Setenv("SALESLENS_CATALOG_PAGE_SIZE", "25")
		os.Setenv("SALESLENS_CATALOG_PREFETCH", "false")
		os.Setenv("SALESLENS_CACHE_TTL", "24h")
		os.Setenv("SALESLENS_REPORT_CURRENCY", "$")
		defer cleanupEnv()

		cfg, err := Load("")
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Input.DataFile != "testdata/sales.txt" {
			t.Errorf("Input.DataFile = %s, want testdata/sales.txt", cfg.Input.DataFile)
		}
		if cfg.Input.Delimiter != "," {
			t.Errorf("Input.Delimiter = %s, want ,", cfg.Input.Delimiter)
		}
		if cfg.Output.Dir != "/tmp/out" {
			t.Errorf("Output.Dir = %s, want /tmp/out", cfg.Output.Dir)
		}
		if cfg.Catalog.BaseURL != "http://localhost:9090" {
			t.Errorf("Catalog.BaseURL = %s, want http://localhost:9090", cfg.Catalog.BaseURL)
		}
		if cfg.Catalog.Timeout != 3*time.Second {
			t.Errorf("Catalog.Timeout = %v, want 3s", cfg.Catalog.Timeout)
		}
		if cfg.Catalog.PageSize != 25 {
			t.Errorf("Catalog.PageSize = %d, want 25", cfg.Catalog.PageSize)
		}
		if cfg.Catalog.Prefetch {
			t.Error("Catalog.Prefetch = true, want false")
		}
		if cfg.Cache.TTL != 24*time.Hour {
			t.Errorf("Cache.TTL = %v, want 24h", cfg.Cache.TTL)
		}
		if cfg.Report.Currency != "$" {
			t.Errorf("Report.Currency = %s, want $", cfg.Report.Currency)
		}
	})

	t.Run("fails validation for multi-character delimiter", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("SALESLENS_INPUT_DELIMITER", "||")
		defer cleanupEnv()

		_, err := Load("")
		if err == nil {
			t.Error("Load() error = nil, want error for multi-character delimiter")
		}
	})

	t.Run("fails validation for out-of-range page size", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("SALESLENS_CATALOG_PAGE_SIZE", "500")
		defer cleanupEnv()

		_, err := Load("")
		if err == nil {
			t.Error("Load() error = nil, want error for page size > 100")
		}
	})

	t.Run("fails validation for non-positive rate limit", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("SALESLENS_CATALOG_RATE_LIMIT", "0")
		defer cleanupEnv()

		_, err := Load("")
		if err == nil {
			t.Error("Load() error = nil, want error for zero rate limit")
		}
	})

	t.Run("fails for explicit config file that does not exist", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		_, err := Load("does-not-exist.yaml")
		if err == nil {
			t.Error("Load() error = nil, want error for missing explicit config file")
		}
	})
}
