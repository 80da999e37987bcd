package config

import (
	"fmt"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"time"
)

type Config struct {
	ServiceName   string
	ServerAddress string

	DBName     string
	DBPassword string
	DBUser     string
	DBPort     string
	DBHost     string

	Env         string
	LogLevel    string
	HTTPTimeout int32

	ForecastBaseURL  string
	GeocodeBaseURL   string
	GeocodeUserAgent string
	// UpstreamTimeout of zero leaves upstream calls without a deadline.
	UpstreamTimeout time.Duration

	SessionTTL             time.Duration
	SessionCleanupInterval time.Duration
	HistoryLimit           int

	ScanDelay time.Duration
}

func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", "home-weather-service")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:3000")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("HTTP_TIMEOUT", 30)
	v.SetDefault("FORECAST_BASE_URL", "https://api.open-meteo.com/v1/forecast")
	v.SetDefault("GEOCODE_BASE_URL", "https://nominatim.openstreetmap.org/reverse")
	v.SetDefault("GEOCODE_USER_AGENT", "home-weather-service/1.0")
	v.SetDefault("UPSTREAM_TIMEOUT", time.Duration(0))
	v.SetDefault("SESSION_TTL", 10*time.Minute)
	v.SetDefault("SESSION_CLEANUP_INTERVAL", time.Minute)
	v.SetDefault("HISTORY_LIMIT", 20)
	v.SetDefault("SCAN_DELAY", 1500*time.Millisecond)

	v.AutomaticEnv()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Warn().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	config := &Config{
		ServiceName:            v.GetString("SERVICE_NAME"),
		ServerAddress:          v.GetString("SERVER_ADDRESS"),
		DBName:                 v.GetString("DATABASE_NAME"),
		DBPassword:             v.GetString("DATABASE_PASSWORD"),
		DBUser:                 v.GetString("DATABASE_USER"),
		DBPort:                 v.GetString("DATABASE_PORT"),
		DBHost:                 v.GetString("DATABASE_HOST"),
		Env:                    v.GetString("ENV"),
		LogLevel:               v.GetString("LOG_LEVEL"),
		HTTPTimeout:            v.GetInt32("HTTP_TIMEOUT"),
		ForecastBaseURL:        v.GetString("FORECAST_BASE_URL"),
		GeocodeBaseURL:         v.GetString("GEOCODE_BASE_URL"),
		GeocodeUserAgent:       v.GetString("GEOCODE_USER_AGENT"),
		UpstreamTimeout:        v.GetDuration("UPSTREAM_TIMEOUT"),
		SessionTTL:             v.GetDuration("SESSION_TTL"),
		SessionCleanupInterval: v.GetDuration("SESSION_CLEANUP_INTERVAL"),
		HistoryLimit:           v.GetInt("HISTORY_LIMIT"),
		ScanDelay:              v.GetDuration("SCAN_DELAY"),
	}

	if config.SessionCleanupInterval <= 0 {
		return nil, fmt.Errorf("SESSION_CLEANUP_INTERVAL must be positive, got %s", config.SessionCleanupInterval)
	}

	return config, nil
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}

// PersistenceEnabled reports whether a database was configured.
func (c *Config) PersistenceEnabled() bool {
	return c.DBHost != ""
}
