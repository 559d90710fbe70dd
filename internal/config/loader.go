package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds runtime parameters for the service.
// Zero values mean "unspecified" and will be replaced by defaults in main.
type Config struct {
	Addr                string `json:"addr" yaml:"addr" toml:"addr"`
	LogLevel            string `json:"log_level" yaml:"log_level" toml:"log_level"`
	RunSeconds          int    `json:"run_seconds" yaml:"run_seconds" toml:"run_seconds"`
	GasIntervalSec      int    `json:"gas_interval_sec" yaml:"gas_interval_sec" toml:"gas_interval_sec"`
	TempIntervalSec     int    `json:"temp_interval_sec" yaml:"temp_interval_sec" toml:"temp_interval_sec"`
	PressureIntervalSec int    `json:"pressure_interval_sec" yaml:"pressure_interval_sec" toml:"pressure_interval_sec"`
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}
