package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	IDStrategySequence  = "sequence"
	IDStrategySnowflake = "snowflake"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Logger  LoggerConfig  `mapstructure:"logger"`
	Billing BillingConfig `mapstructure:"billing"`
	Swagger SwaggerConfig `mapstructure:"swagger"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	OutputPath string `mapstructure:"output_path"`
	Format     string `mapstructure:"format"`
}

// BillingConfig holds invoice numbering and due date settings
type BillingConfig struct {
	InvoiceDueDays int    `mapstructure:"invoice_due_days"`
	IDStrategy     string `mapstructure:"id_strategy"`
	IDStart        int64  `mapstructure:"id_start"`
	SnowflakeNode  int64  `mapstructure:"snowflake_node"`
}

type SwaggerConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Load reads configuration from an optional YAML file and the environment.
// Environment keys are the upper-cased config keys with dots replaced by
// underscores (server.port -> SERVER_PORT). An empty configPath skips the file.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Billing.IDStrategy = strings.ToLower(strings.TrimSpace(cfg.Billing.IDStrategy))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.output_path", "stdout")
	v.SetDefault("logger.format", "json")

	// Billing defaults
	v.SetDefault("billing.invoice_due_days", 30)
	v.SetDefault("billing.id_strategy", IDStrategySequence)
	v.SetDefault("billing.id_start", 1)
	v.SetDefault("billing.snowflake_node", 1)

	v.SetDefault("swagger.enabled", true)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return errors.New("server.shutdown_timeout must be positive")
	}

	switch strings.ToLower(c.Logger.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("logger.format must be json or console, got %q", c.Logger.Format)
	}

	if c.Billing.InvoiceDueDays <= 0 {
		return errors.New("billing.invoice_due_days must be positive")
	}
	switch c.Billing.IDStrategy {
	case IDStrategySequence:
		if c.Billing.IDStart <= 0 {
			return errors.New("billing.id_start must be positive")
		}
	case IDStrategySnowflake:
		// snowflake reserves 10 bits for the node number
		if c.Billing.SnowflakeNode < 0 || c.Billing.SnowflakeNode > 1023 {
			return fmt.Errorf("billing.snowflake_node out of range: %d", c.Billing.SnowflakeNode)
		}
	default:
		return fmt.Errorf("billing.id_strategy must be %s or %s, got %q", IDStrategySequence, IDStrategySnowflake, c.Billing.IDStrategy)
	}

	return nil
}
