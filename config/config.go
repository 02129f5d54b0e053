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
	StoreDriver       string `mapstructure:"STORE_DRIVER"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisAuthDB   int    `mapstructure:"REDIS_AUTH_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Booking engine.
	LockDriver              string `mapstructure:"LOCK_DRIVER"`
	LockTTLSeconds          int    `mapstructure:"LOCK_TTL_SECONDS"`
	SlotIntervalMinutes     int    `mapstructure:"SLOT_INTERVAL_MINUTES"`
	CancellationWindowHours int    `mapstructure:"CANCELLATION_WINDOW_HOURS"`
	ReminderLeadHours       int    `mapstructure:"REMINDER_LEAD_HOURS"`
	NotificationsEnabled    bool   `mapstructure:"NOTIFICATIONS_ENABLED"`
}

var AppConfig Config

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("DATABASE_NAME", "salonbook")
	v.SetDefault("STORE_DRIVER", "mongo")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_CACHE_DB", 0)
	v.SetDefault("REDIS_AUTH_DB", 1)
	v.SetDefault("REDIS_QUEUE_DB", 2)
	v.SetDefault("LOCK_DRIVER", "local")
	v.SetDefault("LOCK_TTL_SECONDS", 10)
	v.SetDefault("SLOT_INTERVAL_MINUTES", 30)
	v.SetDefault("CANCELLATION_WINDOW_HOURS", 2)
	v.SetDefault("REMINDER_LEAD_HOURS", 24)
	v.SetDefault("NOTIFICATIONS_ENABLED", true)
}

// Load reads configuration from an optional config.yaml and the environment.
func Load(v *viper.Viper) (Config, error) {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	// Automatically use environment variables where available.
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func LoadConfig() {
	cfg, err := Load(viper.GetViper())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	AppConfig = cfg
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
