package config

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Database configuration. DatabaseURL wins over the composed Atlas URI.
	DBDriver    string `mapstructure:"DB_DRIVER"`
	DBUser      string `mapstructure:"DB_USER"`
	DBPass      string `mapstructure:"DB_PASS"`
	DBHost      string `mapstructure:"DB_HOST"`
	DBName      string `mapstructure:"DB_NAME"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	// ServicesSeedFile is a JSON catalog loaded by the memory driver.
	ServicesSeedFile string `mapstructure:"SERVICES_SEED_FILE"`

	// Secrets.
	JWTSecret string `mapstructure:"ACCESS_TOKEN_SECRET"`
	StripeKey string `mapstructure:"STRIPE_SECRET_KEY"`

	// Redis configuration. An empty address disables the catalog cache.
	RedisAddr       string        `mapstructure:"REDIS_ADDR"`
	RedisPassword   string        `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB    int           `mapstructure:"REDIS_CACHE_DB"`
	ServiceCacheTTL time.Duration `mapstructure:"SERVICE_CACHE_TTL"`

	MetricsEnabled bool `mapstructure:"METRICS_ENABLED"`
}

var AppConfig Config

// ErrEmptyTokenSecret means tokens would be signed with a zero-length key.
var ErrEmptyTokenSecret = errors.New("ACCESS_TOKEN_SECRET is empty")

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "5000")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	v.SetDefault("DB_DRIVER", "mongo")
	v.SetDefault("DB_USER", "")
	v.SetDefault("DB_PASS", "")
	v.SetDefault("DB_HOST", "cluster0.wutyb.mongodb.net")
	v.SetDefault("DB_NAME", "doctors-portal")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("SERVICES_SEED_FILE", "")
	v.SetDefault("ACCESS_TOKEN_SECRET", "")
	v.SetDefault("STRIPE_SECRET_KEY", "")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_CACHE_DB", 0)
	v.SetDefault("SERVICE_CACHE_TTL", "5m")
	v.SetDefault("METRICS_ENABLED", true)
}

// Load reads .env, an optional config.yaml and the environment into a Config.
func Load(v *viper.Viper) (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// LoadConfig populates AppConfig from the process environment.
func LoadConfig() {
	cfg, err := Load(viper.New())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	AppConfig = cfg
}

// MongoURI returns the connection string for the document store.
func (c Config) MongoURI() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority", c.DBUser, c.DBPass, c.DBHost)
}

// CheckSecrets reports configuration that leaves tokens forgeable.
func (c Config) CheckSecrets() error {
	if c.JWTSecret == "" {
		return ErrEmptyTokenSecret
	}
	return nil
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
