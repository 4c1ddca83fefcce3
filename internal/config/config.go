package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/mines-lite/internal/mines"
)

type LogConfig struct {
	Level      string `json:"level"`
	File       string `json:"file"`
	MaxSizeMB  int    `json:"max_size_mb"`
	MaxBackups int    `json:"max_backups"`
	MaxAgeDays int    `json:"max_age_days"`
}

type Config struct {
	Mode  string    `json:"mode"`
	Rules string    `json:"rules"`
	Store string    `json:"store"`
	Seed  *uint64   `json:"seed,omitempty"`
	Log   LogConfig `json:"log"`
}

func Default() *Config {
	return &Config{
		Mode:  "production",
		Rules: mines.DefaultRules.Seed(),
		Store: "memory:",
		Log: LogConfig{
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// Read loads path over the defaults. An empty path yields the defaults.
// Environment overrides are applied last.
func Read(path string) (*Config, error) {
	config := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("unable to read config %s: %w", path, err)
		}
		if err := json.Unmarshal(b, config); err != nil {
			return nil, fmt.Errorf("unable to parse config %s: %w", path, err)
		}
	}
	config.applyEnv()
	return config, nil
}

func (c *Config) applyEnv() {
	if store, ok := os.LookupEnv("MINES_STORE"); ok {
		c.Store = store
	} else if dbURL, ok := os.LookupEnv("DATABASE_URL"); ok && c.Store == "memory:" {
		c.Store = dbURL
	}
	if Development() {
		c.Mode = "development"
	}
}

func (c Config) Fields() logrus.Fields {
	fields := logrus.Fields{
		"mode":         c.Mode,
		"rules":        c.Rules,
		"log_level":    c.Log.Level,
		"log_file":     c.Log.File,
		"log_max_size": c.Log.MaxSizeMB,
	}
	if s, err := ParseStore(c.Store); err == nil {
		fields["store_kind"] = s.Kind
		fields["store_options"] = s.Options
	}
	if c.Seed != nil {
		fields["seed"] = *c.Seed
	}
	return fields
}

func (c Config) Production() bool {
	return c.Mode == "production"
}

func (c Config) Development() bool {
	return c.Mode != "production"
}

func (c Config) GameRules() (*mines.Rules, error) {
	if c.Rules == "" {
		r := mines.DefaultRules
		return &r, nil
	}
	return mines.ParseRules(c.Rules)
}

func (c Config) LogLevel() logrus.Level {
	if c.Log.Level != "" {
		if level, err := logrus.ParseLevel(c.Log.Level); err == nil {
			return level
		}
	}
	if c.Development() {
		return logrus.DebugLevel
	}
	return logrus.InfoLevel
}
