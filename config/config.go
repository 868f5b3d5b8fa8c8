package config

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Input   InputConfig
	Output  OutputConfig
	Catalog CatalogConfig
	Cache   CacheConfig
	Report  ReportConfig
}

// InputConfig holds input data file configuration
type InputConfig struct {
	DataFile  string `mapstructure:"data_file"`
	Delimiter string `mapstructure:"delimiter"`
}

// OutputConfig holds output directory and file names
type OutputConfig struct {
	Dir          string `mapstructure:"dir"`
	ReportFile   string `mapstructure:"report_file"`
	EnrichedFile string `mapstructure:"enriched_file"`
}

// CatalogConfig holds product catalog API configuration
type CatalogConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	PageSize  int           `mapstructure:"page_size"`
	RateLimit float64       `mapstructure:"rate_limit"` // requests per second
	Prefetch  bool          `mapstructure:"prefetch"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// ReportConfig holds report generation configuration
type ReportConfig struct {
	TopProducts          int    `mapstructure:"top_products"`
	TopCustomers         int    `mapstructure:"top_customers"`
	LowQuantityThreshold int    `mapstructure:"low_quantity_threshold"`
	Currency             string `mapstructure:"currency"`
}

// Load loads configuration from environment variables and config files.
// cfgFile, when non-empty, names an explicit config file; otherwise the
// standard search paths are used.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		// Set config name and paths
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/saleslens/")
	}

	// Environment variable settings
	v.SetEnvPrefix("SALESLENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Input defaults
	v.SetDefault("input.data_file", "data/sales_data.txt")
	v.SetDefault("input.delimiter", "|")

	// Output defaults
	v.SetDefault("output.dir", "output")
	v.SetDefault("output.report_file", "sales_report.txt")
	v.SetDefault("output.enriched_file", "enriched_sales_data.txt")

	// Catalog defaults
	v.SetDefault("catalog.base_url", "https://dummyjson.com")
	v.SetDefault("catalog.timeout", "10s")
	v.SetDefault("catalog.page_size", 100)
	v.SetDefault("catalog.rate_limit", 5.0)
	v.SetDefault("catalog.prefetch", true)

	// Cache defaults
	v.SetDefault("cache.ttl", "1h")

	// Report defaults
	v.SetDefault("report.top_products", 5)
	v.SetDefault("report.top_customers", 5)
	v.SetDefault("report.low_quantity_threshold", 10)
	v.SetDefault("report.currency", "₹")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Input.DataFile == "" {
		return fmt.Errorf("input data file is required (set SALESLENS_INPUT_DATA_FILE)")
	}

	if utf8.RuneCountInString(config.Input.Delimiter) != 1 {
		return fmt.Errorf("input delimiter must be a single character, got: %q", config.Input.Delimiter)
	}

	if config.Catalog.BaseURL == "" {
		return fmt.Errorf("catalog base URL is required (set SALESLENS_CATALOG_BASE_URL)")
	}

	if config.Catalog.PageSize < 1 || config.Catalog.PageSize > 100 {
		return fmt.Errorf("catalog page size must be between 1 and 100, got: %d", config.Catalog.PageSize)
	}

	if config.Catalog.RateLimit <= 0 {
		return fmt.Errorf("catalog rate limit must be positive, got: %v", config.Catalog.RateLimit)
	}

	if config.Report.TopProducts < 1 || config.Report.TopCustomers < 1 {
		return fmt.Errorf("report top counts must be positive")
	}

	return nil
}
