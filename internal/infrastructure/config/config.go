package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string            `mapstructure:"environment"`
	Server      ServerConfig      `mapstructure:"server"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Logger      LoggerConfig      `mapstructure:"logger"`
	Payment     PaymentConfig     `mapstructure:"payment"`
	Fulfillment FulfillmentConfig `mapstructure:"fulfillment"`
	Transaction TransactionConfig `mapstructure:"transaction"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`  // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"` // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`  // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	TimeFormat string `mapstructure:"timeFormat"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// PaymentConfig contains payment gateway settings
type PaymentConfig struct {
	APIKey  string        `mapstructure:"apiKey"`
	BaseURL string        `mapstructure:"baseUrl"`
	Timeout time.Duration `mapstructure:"timeout"` // seconds
}

// FulfillmentConfig contains fulfillment provider settings
type FulfillmentConfig struct {
	Username string        `mapstructure:"username"`
	APIKey   string        `mapstructure:"apiKey"`
	BaseURL  string        `mapstructure:"baseUrl"`
	Timeout  time.Duration `mapstructure:"timeout"` // seconds
}

// TransactionConfig contains transaction lifecycle settings
type TransactionConfig struct {
	PaymentValidity time.Duration `mapstructure:"paymentValidityMinutes"` // minutes
	SweepInterval   time.Duration `mapstructure:"sweepIntervalMinutes"`   // minutes
}
