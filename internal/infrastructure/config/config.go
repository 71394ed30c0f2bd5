package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment  string             `mapstructure:"environment"`
	Server       ServerConfig       `mapstructure:"server"`
	Database     DatabaseConfig     `mapstructure:"database"`
	Redis        RedisConfig        `mapstructure:"redis"`
	Mongo        MongoConfig        `mapstructure:"mongo"`
	Notification NotificationConfig `mapstructure:"notification"`
	Cache        CacheConfig        `mapstructure:"cache"`
	Transaction  TransactionConfig  `mapstructure:"transaction"`
	Auth         AuthConfig         `mapstructure:"auth"`
	Logging      LoggingConfig      `mapstructure:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// DatabaseConfig contains ledger store connection settings
type DatabaseConfig struct {
	Host            string          `mapstructure:"host"`
	Port            string          `mapstructure:"port"`
	Username        string          `mapstructure:"username"`
	Password        string          `mapstructure:"password"`
	Database        string          `mapstructure:"database"`
	SSLMode         string          `mapstructure:"sslMode"`
	MaxOpenConns    int             `mapstructure:"maxOpenConns"`
	MaxIdleConns    int             `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration   `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration   `mapstructure:"connMaxIdleTime"` // minutes
	SlowQuery       time.Duration   `mapstructure:"slowQuery"`       // milliseconds
	RetryAttempts   int             `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration   `mapstructure:"retryDelay"` // seconds
	Migrations      MigrationConfig `mapstructure:"migrations"`
	Seed            SeedConfig      `mapstructure:"seed"`
}

// MigrationConfig toggles schema migrations at startup
type MigrationConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// SeedConfig toggles demo data at startup
type SeedConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// RedisConfig contains the shared cache connection settings
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// MongoConfig contains the audit store settings
type MongoConfig struct {
	Enabled    bool          `mapstructure:"enabled"`
	URI        string        `mapstructure:"uri"`
	Database   string        `mapstructure:"database"`
	Collection string        `mapstructure:"collection"`
	Timeout    time.Duration `mapstructure:"timeout"` // milliseconds
}

// Notification drivers
const (
	NotificationDriverRedis = "redis"
	NotificationDriverAMQP  = "amqp"
	NotificationDriverNone  = "none"
)

// NotificationConfig selects and configures the notification transport
type NotificationConfig struct {
	Driver        string        `mapstructure:"driver"`
	ChannelPrefix string        `mapstructure:"channelPrefix"`
	AMQPURL       string        `mapstructure:"amqpUrl"`
	Exchange      string        `mapstructure:"exchange"`
	Timeout       time.Duration `mapstructure:"timeout"` // milliseconds
}

// CacheConfig contains derived read cache settings
type CacheConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	TTL     time.Duration `mapstructure:"ttl"` // seconds
}

// TransactionConfig contains transfer processing settings
type TransactionConfig struct {
	LockTimeout       time.Duration `mapstructure:"lockTimeout"` // milliseconds
	MaxRetries        int           `mapstructure:"maxRetries"`
	RetryBaseDelay    time.Duration `mapstructure:"retryBaseDelay"` // milliseconds
	ReferenceNode     int64         `mapstructure:"referenceNode"`
	SideEffectTimeout time.Duration `mapstructure:"sideEffectTimeout"` // milliseconds
}

// AuthConfig contains bearer token verification settings
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwtSecret"`
}

// LoggingConfig contains logger settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
