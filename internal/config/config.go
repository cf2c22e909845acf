// Package config loads the gecko command's settings from a YAML file,
// GECKO_* environment variables and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/adamwoolhether/gecko/client"
)

// Config is the resolved command configuration.
type Config struct {
	BaseURL      string        `mapstructure:"base_url" validate:"required,url"`
	APIKey       string        `mapstructure:"api_key"`
	APIKeyHeader string        `mapstructure:"api_key_header" validate:"required"`
	Timeout      time.Duration `mapstructure:"timeout" validate:"gte=0"`
	UserAgent    string        `mapstructure:"user_agent"`
	Throttle     Throttle      `mapstructure:"throttle"`
	Log          Log           `mapstructure:"log"`
}

// Throttle limits outbound requests. Zero RPS disables it.
type Throttle struct {
	RPS   int `mapstructure:"rps" validate:"gte=0"`
	Burst int `mapstructure:"burst" validate:"gte=0"`
}

// Log selects the level and handler of the command's logger.
type Log struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=text json"`
}

// Load reads configuration. An empty configPath searches ./gecko.yaml and
// $HOME/.config/gecko/gecko.yaml and tolerates neither existing; an
// explicit path must exist. envPath, when present on disk, is loaded into
// the process environment first without overriding variables already set.
func Load(configPath, envPath string) (*Config, error) {
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading env file: %w", err)
		}
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("GECKO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("gecko")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "gecko"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("base_url", client.DefaultBaseURL)
	v.SetDefault("api_key", "")
	v.SetDefault("api_key_header", "x-cg-demo-api-key")
	v.SetDefault("timeout", 30*time.Second)
	v.SetDefault("user_agent", "gecko-cli")

	v.SetDefault("throttle.rps", 0)
	v.SetDefault("throttle.burst", 0)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

var validate = validator.New()

// Validate checks field constraints. A throttle needs both limits set.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}

	if (c.Throttle.RPS == 0) != (c.Throttle.Burst == 0) {
		return fmt.Errorf("throttle.rps[%d] and throttle.burst[%d] must be set together", c.Throttle.RPS, c.Throttle.Burst)
	}

	return nil
}

// ClientOptions translates the configuration into client options.
func (c Config) ClientOptions(log *slog.Logger) []client.Option {
	opts := []client.Option{
		client.WithBaseURL(c.BaseURL),
		client.WithLogger(log),
	}

	if c.APIKey != "" {
		opts = append(opts, client.WithHeader(c.APIKeyHeader, c.APIKey))
	}
	if c.Timeout > 0 {
		opts = append(opts, client.WithTimeout(c.Timeout))
	}
	if c.UserAgent != "" {
		opts = append(opts, client.WithUserAgent(c.UserAgent))
	}
	if c.Throttle.RPS > 0 {
		opts = append(opts, client.WithThrottle(c.Throttle.RPS, c.Throttle.Burst))
	}

	return opts
}
