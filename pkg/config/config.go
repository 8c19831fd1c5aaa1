// Package config loads the start-up configuration of tempera: the default field
// values of a fresh calculator screen and the settings of the server surfaces.
//
// Sources are layered: built-in defaults, then an optional YAML file, then
// TEMPERA_* environment variables.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/tempera/pkg/domain"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// DefaultPort is used by the HTTP and MCP SSE servers when nothing else is configured.
const DefaultPort = "8080"

// Config is the resolved configuration.
type Config struct {
	Defaults domain.Fields `yaml:"defaults" json:"defaults"`
	Port     string        `yaml:"port" json:"port"`
	Debug    bool          `yaml:"debug" json:"debug"`
}

// envConfig mirrors Config for environment overrides. Empty values do not override.
type envConfig struct {
	Total     string `env:"TEMPERA_TOTAL"`
	Target    string `env:"TEMPERA_TARGET"`
	Hot       string `env:"TEMPERA_HOT"`
	Mode      string `env:"TEMPERA_MODE"`
	ColdWater string `env:"TEMPERA_COLD_WATER"`
	IceStart  string `env:"TEMPERA_ICE_START"`
	Port      string `env:"TEMPERA_PORT"`
	Debug     bool   `env:"TEMPERA_DEBUG"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Defaults: domain.DefaultFields(),
		Port:     DefaultPort,
	}
}

// Load resolves the configuration. An empty path skips the file layer;
// a path that does not exist is treated as an empty file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		file, err := loadFile(path)
		if err != nil {
			return cfg, err
		}
		cfg = merge(cfg, file)
	}

	var e envConfig
	if err := env.Parse(&e); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	cfg = merge(cfg, Config{
		Defaults: domain.Fields{
			Total:     e.Total,
			Target:    e.Target,
			Hot:       e.Hot,
			Mode:      e.Mode,
			ColdWater: e.ColdWater,
			IceStart:  e.IceStart,
		},
		Port:  e.Port,
		Debug: e.Debug,
	})

	if _, err := domain.ParseModeStrict(cfg.Defaults.Mode); err != nil {
		return cfg, fmt.Errorf("invalid default mode: %w", err)
	}
	return cfg, nil
}

func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
		return cfg, nil
	}

	// Default to YAML
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return cfg, nil
}

func merge(base, over Config) Config {
	base.Defaults = base.Defaults.Overlay(over.Defaults)
	if over.Port != "" {
		base.Port = over.Port
	}
	base.Debug = base.Debug || over.Debug
	return base
}
