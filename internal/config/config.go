// Package config loads the engine configuration: YAML file first, then
// environment overlay. The zero value is runnable against a local SQLite
// file with the mock AI provider.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jeevibe/engine/internal/ai"
)

// Config is the full engine configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	DB     DBConfig     `yaml:"db"`
	Auth   AuthConfig   `yaml:"auth"`
	Log    LogConfig    `yaml:"log"`
	AI     ai.Config    `yaml:"ai"`
}

type ServerConfig struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `yaml:"addr"`
}

type DBConfig struct {
	// Path is the SQLite database file. ":memory:" runs ephemeral.
	Path string `yaml:"path"`
}

type AuthConfig struct {
	// CronSecret authorizes the /jobs endpoints.
	CronSecret string `yaml:"cron_secret"`
	// AdminUIDs may call the admin endpoints.
	AdminUIDs []string `yaml:"admin_uids"`
}

type LogConfig struct {
	// Level: debug, info, warn, error.
	Level string `yaml:"level"`
	// Development switches to the console encoder.
	Development bool `yaml:"development"`
}

// Default returns the runnable zero configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{Addr: ":8080"},
		DB:     DBConfig{Path: "jeevibe.db"},
		Log:    LogConfig{Level: "info"},
		AI:     ai.DefaultConfig(),
	}
}

// Load reads the config file named by JEEVIBE_CONFIG (or the explicit
// path), then overlays the environment. A missing file is not an error;
// the defaults plus environment stand alone.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv("JEEVIBE_CONFIG")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return cfg, fmt.Errorf("read config %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	cfg.fromEnv()
	return cfg, nil
}

func (c *Config) fromEnv() {
	if v := os.Getenv("JEEVIBE_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("JEEVIBE_DB"); v != "" {
		c.DB.Path = v
	}
	if v := os.Getenv("CRON_SECRET"); v != "" {
		c.Auth.CronSecret = v
	}
	if v := os.Getenv("ADMIN_UIDS"); v != "" {
		c.Auth.AdminUIDs = splitList(v)
	}
	if v := os.Getenv("JEEVIBE_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	c.AI.FromEnv()
}

// Validate rejects configurations that cannot serve.
func (c Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if c.DB.Path == "" {
		return fmt.Errorf("db.path is required")
	}
	// AI is validated only when a real provider is selected; the engine
	// runs without generation otherwise.
	if c.AI.Provider != "" && c.AI.Provider != "mock" {
		if err := c.AI.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
