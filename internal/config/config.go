package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type DBConfig struct {
	MaxConns        int32         `yaml:"max_conns"`
	MinConns        int32         `yaml:"min_conns"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"`
}

type Config struct {
	ListenAddr string   `yaml:"listen_addr"`
	DBDSN      string   `yaml:"db_dsn"`
	DB         DBConfig `yaml:"db"`
	// InstanceIDField is always kept in hook payloads.
	InstanceIDField string `yaml:"instance_id_field"`
	LogLevel        string `yaml:"log_level"`

	// Version is set by the binary at startup, never read from the file.
	Version string `yaml:"-"`
}

func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.ListenAddr == "" {
		c.ListenAddr = ":8080"
	}
	if c.InstanceIDField == "" {
		c.InstanceIDField = "_id"
	}
	if c.DB.MaxConns == 0 {
		c.DB.MaxConns = 20
	}
	if c.DB.MinConns == 0 {
		c.DB.MinConns = 5
	}
	if c.DB.MaxConnLifetime == 0 {
		c.DB.MaxConnLifetime = 30 * time.Minute
	}
}

// SlogLevel maps log_level to a slog level; unknown values mean info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
