package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix is the prefix of every environment override
const EnvPrefix = "LEDGER"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
}

// envOverrides binds config keys to the environment variables that override them.
// Secrets and endpoints are expected to come from here rather than from yaml.
var envOverrides = map[string]string{
	"server.port":            "LEDGER_SERVER_PORT",
	"database.host":          "LEDGER_DB_HOST",
	"database.port":          "LEDGER_DB_PORT",
	"database.username":      "LEDGER_DB_USERNAME",
	"database.password":      "LEDGER_DB_PASSWORD",
	"database.database":      "LEDGER_DB_NAME",
	"database.sslMode":       "LEDGER_DB_SSL_MODE",
	"redis.addr":             "LEDGER_REDIS_ADDR",
	"redis.password":         "LEDGER_REDIS_PASSWORD",
	"mongo.uri":              "LEDGER_MONGO_URI",
	"notification.driver":    "LEDGER_NOTIFICATION_DRIVER",
	"notification.amqpUrl":   "LEDGER_AMQP_URL",
	"auth.jwtSecret":         "LEDGER_JWT_SECRET",
	"logging.level":          "LEDGER_LOG_LEVEL",
	"transaction.maxRetries": "LEDGER_TRANSACTION_MAX_RETRIES",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	// A missing .env is normal outside local development
	_ = loadDotEnvFile()

	return LoadConfigFrom(getEnvironment(), ConfigPaths...)
}

// LoadConfigFrom reads configs/<env>.yaml from the first matching path and applies environment overrides
func LoadConfigFrom(env string, paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	for _, path := range paths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, envVar := range envOverrides {
		if value, ok := os.LookupEnv(envVar); ok && value != "" {
			v.Set(key, value)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// loadDotEnvFile loads the first .env file found in the search paths
func loadDotEnvFile() error {
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("could not load %s: %w", path, err)
		}
		return nil
	}
	return errors.New("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)
	v.SetDefault("server.writeTimeout", 15)
	v.SetDefault("server.idleTimeout", 60)
	v.SetDefault("server.readHeaderTimeout", 10)
	v.SetDefault("server.shutdownTimeout", 10)

	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 50)
	v.SetDefault("database.maxIdleConns", 25)
	v.SetDefault("database.connMaxLifetime", 30)
	v.SetDefault("database.connMaxIdleTime", 15)
	v.SetDefault("database.slowQuery", 200)
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1)
	v.SetDefault("database.migrations.enabled", true)
	v.SetDefault("database.seed.enabled", false)

	v.SetDefault("redis.enabled", true)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)

	v.SetDefault("mongo.enabled", true)
	v.SetDefault("mongo.database", "credora")
	v.SetDefault("mongo.collection", "logs")
	v.SetDefault("mongo.timeout", 2000)

	v.SetDefault("notification.driver", NotificationDriverRedis)
	v.SetDefault("notification.channelPrefix", "notifications")
	v.SetDefault("notification.exchange", "ledger.notifications")
	v.SetDefault("notification.timeout", 1000)

	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.ttl", 300)

	v.SetDefault("transaction.lockTimeout", 5000)
	v.SetDefault("transaction.maxRetries", 3)
	v.SetDefault("transaction.retryBaseDelay", 20)
	v.SetDefault("transaction.referenceNode", 1)
	v.SetDefault("transaction.sideEffectTimeout", 3000)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

// getEnvironment determines the environment from APP_ENV, defaulting to development
func getEnvironment() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processDurations converts the raw numbers read from yaml into durations
func processDurations(config *Config) {
	config.Server.ReadTimeout *= time.Second
	config.Server.WriteTimeout *= time.Second
	config.Server.IdleTimeout *= time.Second
	config.Server.ReadHeaderTimeout *= time.Second
	config.Server.ShutdownTimeout *= time.Second

	config.Database.ConnMaxLifetime *= time.Minute
	config.Database.ConnMaxIdleTime *= time.Minute
	config.Database.SlowQuery *= time.Millisecond
	config.Database.RetryDelay *= time.Second

	config.Mongo.Timeout *= time.Millisecond
	config.Notification.Timeout *= time.Millisecond
	config.Cache.TTL *= time.Second

	config.Transaction.LockTimeout *= time.Millisecond
	config.Transaction.RetryBaseDelay *= time.Millisecond
	config.Transaction.SideEffectTimeout *= time.Millisecond
}

// validateConfig rejects configurations the service cannot safely start with
func validateConfig(config *Config) error {
	if config.Database.Host == "" || config.Database.Database == "" {
		return errors.New("database host and name are required")
	}
	if config.Auth.JWTSecret == "" {
		return errors.New("auth.jwtSecret is required")
	}
	if config.Environment == Production && len(config.Auth.JWTSecret) < 32 {
		return errors.New("auth.jwtSecret must be at least 32 characters in production")
	}
	if config.Transaction.LockTimeout <= 0 {
		return errors.New("transaction.lockTimeout must be positive")
	}
	if config.Transaction.MaxRetries < 0 {
		return errors.New("transaction.maxRetries must not be negative")
	}
	if config.Transaction.ReferenceNode < 0 || config.Transaction.ReferenceNode > 1023 {
		return errors.New("transaction.referenceNode must be between 0 and 1023")
	}

	switch config.Notification.Driver {
	case NotificationDriverRedis:
		if !config.Redis.Enabled {
			return errors.New("notification driver redis requires redis.enabled")
		}
	case NotificationDriverAMQP:
		if config.Notification.AMQPURL == "" {
			return errors.New("notification driver amqp requires notification.amqpUrl")
		}
	case NotificationDriverNone:
	default:
		return fmt.Errorf("unknown notification driver %q", config.Notification.Driver)
	}

	return nil
}
