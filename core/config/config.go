package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	OTel     OTelConfig
	Insights InsightsConfig
}

type OTelConfig struct {
	Endpoint       string
	Headers        string
	ServiceName    string
	ServiceVersion string
}

// InsightsConfig holds the tuning knobs for the insight pipeline. The
// pipeline itself takes explicit parameters; these are the defaults
// the embedding add-on feeds it.
type InsightsConfig struct {
	LookbackHours  int // heatmap window
	HistoryLimit   int // records fetched per refresh
	RefreshSeconds int // dashboard poll interval
}

// Load loads configuration from environment variables. In development
// it first loads a local .env file when present.
func Load() (Config, error) {
	if getEnv("HOMEGPT_ENV", "development") == "development" {
		_ = godotenv.Load(".env")
	}

	cfg := Config{
		Env: getEnv("HOMEGPT_ENV", "development"),
		OTel: OTelConfig{
			Endpoint:       getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			Headers:        getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""),
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "homegpt-insights"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "dev"),
		},
		Insights: InsightsConfig{
			LookbackHours:  getEnvInt("INSIGHTS_LOOKBACK_HOURS", 24),
			HistoryLimit:   getEnvInt("INSIGHTS_HISTORY_LIMIT", 50),
			RefreshSeconds: getEnvInt("INSIGHTS_REFRESH_SECONDS", 60),
		},
	}

	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c OTelConfig) Enabled() bool {
	return c.Endpoint != ""
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}
