package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Auth        AuthConfig     `mapstructure:"auth"`
	Search      SearchConfig   `mapstructure:"search"`
	Storage     StorageConfig  `mapstructure:"storage"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path       string `mapstructure:"path"`
	LogQueries bool   `mapstructure:"log_queries"`
}

// AuthConfig contains token signing settings
type AuthConfig struct {
	JWTSecret   string        `mapstructure:"jwt_secret"`
	TokenExpiry time.Duration `mapstructure:"token_expiry"`
}

// SearchConfig contains full-text index settings
type SearchConfig struct {
	IndexPath string `mapstructure:"index_path"`
}

// StorageConfig contains blob storage settings
type StorageConfig struct {
	AudioDir string `mapstructure:"audio_dir"`
}
