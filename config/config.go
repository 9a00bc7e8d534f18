package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// MongoDB configuration.
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB   int    `mapstructure:"REDIS_CACHE_DB"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisTaskDB    int    `mapstructure:"REDIS_TASK_DB"`

	// Booking session behaviour.
	SessionTTLMinutes    int `mapstructure:"SESSION_TTL_MINUTES"`
	ProfileCacheTTLSecs  int `mapstructure:"PROFILE_CACHE_TTL_SECS"`
	ReminderLeadMinutes  int `mapstructure:"REMINDER_LEAD_MINUTES"`
	MaxRequestsPerMinute int `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// SendGrid email delivery.
	SendGridAPIKey string `mapstructure:"SENDGRID_API_KEY"`
	SenderEmail    string `mapstructure:"SENDER_EMAIL"`
	SenderName     string `mapstructure:"SENDER_NAME"`
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
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "gamecoach")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_SESSION_DB", 1)
	viper.SetDefault("REDIS_TASK_DB", 2)
	viper.SetDefault("SESSION_TTL_MINUTES", 30)
	viper.SetDefault("PROFILE_CACHE_TTL_SECS", 120)
	viper.SetDefault("REMINDER_LEAD_MINUTES", 60)
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("SENDGRID_API_KEY", "")
	viper.SetDefault("SENDER_EMAIL", "bookings@gamecoach.gg")
	viper.SetDefault("SENDER_NAME", "GameCoach")

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
