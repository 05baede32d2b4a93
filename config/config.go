package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Storage backend: "mongo" or "memory" (seeded fixtures, no external services).
	StorageMode string `mapstructure:"STORAGE_MODE"`

	// Redis configuration.
	RedisAddr            string `mapstructure:"REDIS_ADDR"`
	RedisPassword        string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB         int    `mapstructure:"REDIS_CACHE_DB"`
	RedisReminderQueueDB int    `mapstructure:"REDIS_REMINDER_QUEUE_DB"`

	// Booking lifecycle engine.
	LifecycleTickSeconds    int     `mapstructure:"LIFECYCLE_TICK_SECONDS"`
	PaymentConfirmThreshold float64 `mapstructure:"PAYMENT_CONFIRM_THRESHOLD"`
	ViewingConfirmThreshold float64 `mapstructure:"VIEWING_CONFIRM_THRESHOLD"`
	DriverArrivingThreshold float64 `mapstructure:"DRIVER_ARRIVING_THRESHOLD"`

	// Notifications.
	NotificationRetention      int `mapstructure:"NOTIFICATION_RETENTION"`
	ViewingReminderLeadMinutes int `mapstructure:"VIEWING_REMINDER_LEAD_MINUTES"`

	// Stripe key for payment intents; simulated client secrets are issued when unset.
	StripeKey string `mapstructure:"STRIPE_KEY"`

	// Firebase service account for FCM pushes (optional).
	FirebaseCredentialsFile string `mapstructure:"FIREBASE_CREDENTIALS_FILE"`
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
	viper.SetDefault("STORAGE_MODE", "memory")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_REMINDER_QUEUE_DB", 3)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("LIFECYCLE_TICK_SECONDS", 5)
	viper.SetDefault("PAYMENT_CONFIRM_THRESHOLD", 0.3)
	viper.SetDefault("VIEWING_CONFIRM_THRESHOLD", 0.5)
	viper.SetDefault("DRIVER_ARRIVING_THRESHOLD", 0.7)
	viper.SetDefault("NOTIFICATION_RETENTION", 500)
	viper.SetDefault("VIEWING_REMINDER_LEAD_MINUTES", 60)
	viper.SetDefault("STRIPE_KEY", "")
	viper.SetDefault("FIREBASE_CREDENTIALS_FILE", "")

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
