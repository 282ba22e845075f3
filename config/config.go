package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// External rate-search API used for competitor rate shopping.
	RateSearchAPIURL      string `mapstructure:"RATE_SEARCH_API_URL"`
	RateSearchAPIKey      string `mapstructure:"RATE_SEARCH_API_KEY"`
	CompetitorCacheTTLMin int    `mapstructure:"COMPETITOR_CACHE_TTL_MIN"`
	RateRefreshCron       string `mapstructure:"RATE_REFRESH_CRON"`

	// Default occupancy target (percent) for revenue metrics.
	TargetOccupancy float64 `mapstructure:"TARGET_OCCUPANCY"`

	// Allowed origin for the dashboard UI.
	DashboardOrigin string `mapstructure:"DASHBOARD_ORIGIN"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "rateshopper")
	viper.SetDefault("RATE_SEARCH_API_URL", "")
	viper.SetDefault("RATE_SEARCH_API_KEY", "")
	viper.SetDefault("COMPETITOR_CACHE_TTL_MIN", 60)
	viper.SetDefault("RATE_REFRESH_CRON", "0 3 * * *")
	viper.SetDefault("TARGET_OCCUPANCY", 80)
	viper.SetDefault("DASHBOARD_ORIGIN", "*")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
