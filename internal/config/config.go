package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// minUpdateInterval is the floor on scoreboard refresh cadence; the upstream
// feed is shared infrastructure and must not be polled faster.
const minUpdateInterval = 30 * time.Second

// Config holds runtime configuration for the daemon.
type Config struct {
	Port           string        `envconfig:"TICKER_PORT" default:"4000"`
	Timezone       string        `envconfig:"TICKER_TIMEZONE" default:"America/New_York"`
	UpdateInterval time.Duration `envconfig:"TICKER_UPDATE_INTERVAL" default:"2m"`
	Provider       string        `envconfig:"TICKER_PROVIDER" default:"espn"`
	OptionsFile    string        `envconfig:"TICKER_OPTIONS_FILE"`
	DisplayWidth   int           `envconfig:"TICKER_DISPLAY_WIDTH" default:"128"`
	DisplayHeight  int           `envconfig:"TICKER_DISPLAY_HEIGHT" default:"32"`
	LogoCacheDir   string        `envconfig:"TICKER_LOGO_CACHE_DIR" default:"cache/logos"`

	Metrics MetricsConfig
}

// MetricsConfig controls the telemetry exporters.
type MetricsConfig struct {
	Enabled      bool   `envconfig:"METRICS_ENABLED" default:"true"`
	ServiceName  string `envconfig:"OTEL_SERVICE_NAME" default:"sports-ticker"`
	OtlpEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OtlpInsecure bool   `envconfig:"OTEL_EXPORTER_OTLP_INSECURE"`
}

// Load reads configuration from the environment, consulting a .env file when
// present, and applies bounds.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if cfg.UpdateInterval < minUpdateInterval {
		cfg.UpdateInterval = minUpdateInterval
	}
	if cfg.DisplayWidth < 1 {
		cfg.DisplayWidth = 128
	}
	if cfg.DisplayHeight < 1 {
		cfg.DisplayHeight = 32
	}
	return cfg, nil
}
