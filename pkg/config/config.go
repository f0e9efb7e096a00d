package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Data      DataConfig
	Sentiment SentimentConfig
	Redis     RedisConfig
	Server    ServerConfig
	Logging   LoggingConfig
	Telemetry TelemetryConfig
}

// DataConfig holds dataset source configuration
type DataConfig struct {
	// Dir is a local directory of exported dataset files.
	Dir string
	// BaseURL fetches exports over HTTP instead, when set.
	BaseURL string
	// Brands is the fixed brand enumeration, comma-separated.
	Brands string
	// Months is the dataset window the "All" month filter expands to.
	Months string
	// RefreshInterval reloads the snapshot periodically; 0 disables.
	RefreshInterval time.Duration
	FetchTimeout    time.Duration
}

// SentimentConfig holds sentiment classification configuration
type SentimentConfig struct {
	// PositiveThreshold and NegativeThreshold bound the neutral band.
	PositiveThreshold float64
	NegativeThreshold float64
	// Scale multiplies the raw lexicon score before clamping to [-5, 5].
	Scale float64
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	URL     string
	Enabled bool
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int
	Host string
	// CacheTTL bounds how long aggregate responses stay cached.
	CacheTTL time.Duration
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Format string // "json" or "text"
}

// TelemetryConfig holds observability configuration
type TelemetryConfig struct {
	Enabled           bool
	JaegerURL         string
	PrometheusEnabled bool
	PrometheusPort    int
	ServiceName       string
}

// defaultBrands is the fixed comparison set: the primary brand first,
// then its competitors. Not user-extensible at runtime.
const defaultBrands = "nordstrom,macys,bloomingdales,saks,neimanmarcus,dillards,jcpenney,kohls,sephora,ulta,revolve,anthropologie"

// defaultMonths must change in lockstep with the span of the exported
// datasets; it is what the "All" month selection means.
const defaultMonths = "February,March,April,May"

// Load loads configuration from environment variables and config file
func Load() (*Config, error) {
	// Set defaults
	setDefaults()

	// Load from environment
	viper.SetEnvPrefix("PULSE")
	viper.AutomaticEnv()

	// Load from config file if exists
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.brandpulse")
	viper.AddConfigPath("/etc/brandpulse")

	if err := viper.ReadInConfig(); err != nil {
		// Config file not found; this is OK if we have env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		Data: DataConfig{
			Dir:             getString("data_dir", "./data"),
			BaseURL:         getString("data_base_url", ""),
			Brands:          getString("brands", defaultBrands),
			Months:          getString("months", defaultMonths),
			RefreshInterval: getDuration("refresh_interval", 0),
			FetchTimeout:    getDuration("fetch_timeout", 30*time.Second),
		},
		Sentiment: SentimentConfig{
			PositiveThreshold: getFloat("sentiment_positive_threshold", 1.5),
			NegativeThreshold: getFloat("sentiment_negative_threshold", -1.5),
			Scale:             getFloat("sentiment_scale", 1.0),
		},
		Redis: RedisConfig{
			URL:     getString("redis_url", ""),
			Enabled: getString("redis_url", "") != "",
		},
		Server: ServerConfig{
			Port:     getInt("http_server_port", 8080),
			Host:     getString("http_server_host", "0.0.0.0"),
			CacheTTL: getDuration("response_cache_ttl", 60*time.Second),
		},
		Logging: LoggingConfig{
			Level:  getString("log_level", "INFO"),
			Format: getString("log_format", "json"),
		},
		Telemetry: TelemetryConfig{
			Enabled:           getBool("telemetry_enabled", true),
			JaegerURL:         getString("jaeger_url", "http://localhost:14268/api/traces"),
			PrometheusEnabled: getBool("prometheus_enabled", true),
			PrometheusPort:    getInt("prometheus_port", 9090),
			ServiceName:       getString("service_name", "brandpulse"),
		},
	}

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("data_dir", "./data")
	viper.SetDefault("brands", defaultBrands)
	viper.SetDefault("months", defaultMonths)
	viper.SetDefault("fetch_timeout", "30s")
	viper.SetDefault("sentiment_positive_threshold", 1.5)
	viper.SetDefault("sentiment_negative_threshold", -1.5)
	viper.SetDefault("sentiment_scale", 1.0)
	viper.SetDefault("http_server_port", 8080)
	viper.SetDefault("http_server_host", "0.0.0.0")
	viper.SetDefault("response_cache_ttl", "60s")
	viper.SetDefault("log_level", "INFO")
	viper.SetDefault("log_format", "json")
	viper.SetDefault("telemetry_enabled", true)
	viper.SetDefault("prometheus_enabled", true)
	viper.SetDefault("prometheus_port", 9090)
	viper.SetDefault("service_name", "brandpulse")
}

func getString(key, defaultValue string) string {
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	// Also check environment variable directly
	if val := os.Getenv("PULSE_" + toEnvKey(key)); val != "" {
		return val
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if viper.IsSet(key) {
		return viper.GetInt(key)
	}
	if val := os.Getenv("PULSE_" + toEnvKey(key)); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultValue
}

func getFloat(key string, defaultValue float64) float64 {
	if viper.IsSet(key) {
		return viper.GetFloat64(key)
	}
	if val := os.Getenv("PULSE_" + toEnvKey(key)); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	if viper.IsSet(key) {
		return viper.GetBool(key)
	}
	if val := os.Getenv("PULSE_" + toEnvKey(key)); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if viper.IsSet(key) {
		return viper.GetDuration(key)
	}
	if val := os.Getenv("PULSE_" + toEnvKey(key)); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultValue
}

func toEnvKey(key string) string {
	// Convert snake_case to UPPER_SNAKE_CASE
	result := ""
	for _, r := range key {
		if r == '-' || r == '_' {
			result += "_"
		} else {
			result += strings.ToUpper(string(r))
		}
	}
	return result
}

// BrandList returns the configured brands as a slice
func (c *DataConfig) BrandList() []string {
	return splitTrimmed(c.Brands)
}

// MonthList returns the configured month window as a slice
func (c *DataConfig) MonthList() []string {
	return splitTrimmed(c.Months)
}

func splitTrimmed(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Data.Dir == "" && c.Data.BaseURL == "" {
		return fmt.Errorf("one of data_dir or data_base_url is required")
	}
	if len(c.Data.BrandList()) == 0 {
		return fmt.Errorf("brands must not be empty")
	}
	if len(c.Data.MonthList()) == 0 {
		return fmt.Errorf("months must not be empty")
	}
	if c.Sentiment.PositiveThreshold <= 0 {
		return fmt.Errorf("sentiment_positive_threshold must be positive")
	}
	if c.Sentiment.NegativeThreshold >= 0 {
		return fmt.Errorf("sentiment_negative_threshold must be negative")
	}
	if c.Sentiment.Scale <= 0 {
		return fmt.Errorf("sentiment_scale must be positive")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("http_server_port must be between 1 and 65535")
	}
	return nil
}
