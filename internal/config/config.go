package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds all runtime configuration. Values are layered:
// built-in defaults, then an optional YAML file, then DASH_ env vars.
type Config struct {
	HTTP     HTTPConfig     `koanf:"http"`
	Postgres PostgresConfig `koanf:"postgres"`
	Operator OperatorConfig `koanf:"operator"`
	Log      LogConfig      `koanf:"log"`
}

type HTTPConfig struct {
	Host string `koanf:"host"`
	Port string `koanf:"port"`
}

type PostgresConfig struct {
	Host     string `koanf:"host"`
	Port     string `koanf:"port"`
	DB       string `koanf:"db"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`
	SSLMode  string `koanf:"sslmode"`
}

type OperatorConfig struct {
	Workers int `koanf:"workers"`
}

type LogConfig struct {
	Level string `koanf:"level"`
}

func defaults() map[string]interface{} {
	// In all cases the default behavior should be for the docker compose setup
	return map[string]interface{}{
		"http.host":         "",
		"http.port":         "9446",
		"postgres.host":     "localhost",
		"postgres.port":     "5433",
		"postgres.db":       "postgres",
		"postgres.user":     "postgres",
		"postgres.password": "testpassword",
		"postgres.sslmode":  "disable",
		"operator.workers":  4,
		"log.level":         "info",
	}
}

// Load builds the configuration. path may be empty or point to a YAML file;
// a missing file is not an error so the defaults still apply.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("config defaults: %w", err)
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("config file %s: %w", path, err)
			}
		}
	}

	err := k.Load(env.Provider("DASH_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "DASH_")), "_", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("config env: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config unmarshal: %w", err)
	}

	if cfg.Operator.Workers < 1 {
		cfg.Operator.Workers = 1
	}

	return &cfg, nil
}

// PostgresDSN formats the connection string for lib/pq.
func (c *Config) PostgresDSN() string {
	return "postgres://" + c.Postgres.User + ":" + c.Postgres.Password +
		"@" + c.Postgres.Host + ":" + c.Postgres.Port +
		"/" + c.Postgres.DB + "?sslmode=" + c.Postgres.SSLMode
}
