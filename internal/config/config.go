package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig classifies every validation failure returned by this package.
var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Env         string `yaml:"env"`
	LogLevel    string `yaml:"log_level"`
	DataDir     string `yaml:"data_dir"`
	RedisAddr   string `yaml:"redis_addr"`
	PostgresDSN string `yaml:"postgres_dsn"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Env:       "local",
		LogLevel:  "info",
		DataDir:   filepath.Join(os.TempDir(), "solid-examples"),
		RedisAddr: "localhost:6379",
	}
}

// LoadFromEnv is intentionally simple for examples.
// Every key falls back to Default when the variable is unset.
func LoadFromEnv() (Config, error) {
	def := Default()
	cfg := Config{
		Env:         getenv("SOLID_ENV", def.Env),
		LogLevel:    getenv("SOLID_LOG_LEVEL", def.LogLevel),
		DataDir:     getenv("SOLID_DATA_DIR", def.DataDir),
		RedisAddr:   getenv("SOLID_REDIS_ADDR", def.RedisAddr),
		PostgresDSN: getenv("SOLID_POSTGRES_DSN", def.PostgresDSN),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile overlays the YAML file at path on top of base.
// Keys missing from the file keep their value from base.
func LoadFile(path string, base Config) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := base
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level %q (want debug|info|warn|error)", ErrInvalidConfig, c.LogLevel)
	}
	if strings.TrimSpace(c.DataDir) == "" {
		return fmt.Errorf("%w: data_dir must not be empty", ErrInvalidConfig)
	}
	return nil
}

func getenv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}
