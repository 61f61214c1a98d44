package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. ASCIILIENS_WIDTH.
const EnvPrefix = "ASCIILIENS"

// Config holds the application configuration.
type Config struct {
	// Board size in columns and rows
	Width  int `mapstructure:"width" validate:"min=10,max=200"`
	Height int `mapstructure:"height" validate:"min=6,max=100"`

	// Built-in formation name or path to a formation YAML file
	Formation string `mapstructure:"formation"`

	// Log destination; empty disables logging unless DEBUG is set
	LogFile string `mapstructure:"log_file"`

	AltScreen bool `mapstructure:"alt_screen"`
	Color     bool `mapstructure:"color"`
}

// LoadConfig loads configuration with priority:
// 1. Environment variables (ASCIILIENS_*)
// 2. Config file (asciiliens.yaml, or configPath when given)
// 3. Defaults
func LoadConfig(configPath string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	SetDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("asciiliens")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "asciiliens"))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.LogFile == "" && os.Getenv("DEBUG") != "" {
		cfg.LogFile = DefaultDebugLog
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// TerminalSize is the smallest terminal that fits the board and its chrome.
func (c *Config) TerminalSize() (width, height int) {
	return c.Width + ChromeWidth, c.Height + ChromeHeight
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	v := viper.New()
	SetDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)
	return &cfg
}
