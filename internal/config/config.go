// Package config loads the service configuration.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the service configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"db"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Pending  PendingConfig  `mapstructure:"pending"`
	Log      LogConfig      `mapstructure:"log"`
	Parser   ParserConfig   `mapstructure:"parser"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ParseTimeout time.Duration `mapstructure:"parse_timeout"`
	MaxUploadMB  int64         `mapstructure:"max_upload_mb"`
}

// MaxUploadBytes returns the upload limit in bytes.
func (c ServerConfig) MaxUploadBytes() int64 {
	return c.MaxUploadMB << 20
}

// DatabaseConfig configures the PostgreSQL connection.
type DatabaseConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	Name         string `mapstructure:"name"`
	User         string `mapstructure:"user"`
	Password     string `mapstructure:"password"`
	SSLMode      string `mapstructure:"sslmode"`
	Timezone     string `mapstructure:"timezone"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
}

// DSN returns the PostgreSQL connection string.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode, c.Timezone,
	)
}

// RedisConfig configures the pending-upload cache.
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// PendingConfig configures parsed uploads that are not committed yet.
type PendingConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ParserConfig configures extraction.
type ParserConfig struct {
	// KeywordsFile overrides the built-in keyword sets. Empty falls back
	// to VLIER_PARSER_KEYWORDS.
	KeywordsFile string `mapstructure:"keywords_file"`
	OCR          bool   `mapstructure:"ocr"`
}

// Load reads the configuration. Environment variables win over the config
// file, which wins over the defaults. An empty path looks for config.yaml
// in ./config and the working directory; a missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.parse_timeout", "60s")
	v.SetDefault("server.max_upload_mb", 20)

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.name", "vlier")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.timezone", "Europe/Amsterdam")
	v.SetDefault("db.max_open_conns", 25)
	v.SetDefault("db.max_idle_conns", 10)

	v.SetDefault("redis.enabled", true)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("pending.ttl", "24h")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("parser.keywords_file", "")
	v.SetDefault("parser.ocr", false)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("VLIER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values the service cannot run without.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid config: server.port %d out of range", c.Server.Port)
	}
	if c.Server.ParseTimeout <= 0 {
		return fmt.Errorf("invalid config: server.parse_timeout must be positive")
	}
	if c.Server.MaxUploadMB <= 0 {
		return fmt.Errorf("invalid config: server.max_upload_mb must be positive")
	}
	if c.Pending.TTL <= 0 {
		return fmt.Errorf("invalid config: pending.ttl must be positive")
	}
	return nil
}
