// file:sfx/pkg/x_log/config.go
package x_log

import (
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/mapstructure"
)

//
// ---------- Config ----------

// Config describes where log entries go and how file output rotates.
type Config struct {
	Level       string `json:"level" mapstructure:"level"`
	LogFile     string `json:"log_file" mapstructure:"log_file"`
	ToConsole   bool   `json:"to_console" mapstructure:"to_console"`
	ToFile      bool   `json:"to_file" mapstructure:"to_file"`
	ColoredFile bool   `json:"colored_file" mapstructure:"colored_file"`
	Style       string `json:"style" mapstructure:"style"`
	MaxSize     int    `json:"max_size" mapstructure:"max_size"`       // MB
	MaxBackups  int    `json:"max_backups" mapstructure:"max_backups"` // rotated files
	MaxAge      int    `json:"max_age" mapstructure:"max_age"`         // days
	Compress    bool   `json:"compress" mapstructure:"compress"`
}

//
// ---------- Defaults ----------

const (
	EnvConfigPath     = "XLOG_CONFIG"
	defaultConfigPath = "./xlog.json"
)

var defaultConfig = Config{
	Level:      "info",
	LogFile:    "logs/sfx.log",
	ToConsole:  true,
	Style:      "dark",
	MaxSize:    10,
	MaxBackups: 5,
	MaxAge:     7,
	Compress:   true,
}

// DefaultConfig returns a copy of the default config.
func DefaultConfig() Config { return defaultConfig }

//
// ---------- LoadConfig ----------

// LoadConfig reads a JSON log config. An empty path means $XLOG_CONFIG, then
// ./xlog.json. A missing file yields the defaults. Keys absent from the file
// keep their default values.
func LoadConfig(path string) (*Config, error) {
	path = cmp.Or(path, os.Getenv(EnvConfigPath), defaultConfigPath)

	cfg := defaultConfig
	data, err := os.ReadFile(filepath.Clean(path))
	if errors.Is(err, os.ErrNotExist) {
		return &cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read log config %s: %w", path, err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse log config %s: %w", path, err)
	}
	if err := mapstructure.Decode(raw, &cfg); err != nil {
		return nil, fmt.Errorf("decode log config %s: %w", path, err)
	}
	cfg.sanitize()
	return &cfg, nil
}

//
// ---------- Sanitize ----------

// sanitize replaces empty names and non-positive rotation limits with defaults.
func (c *Config) sanitize() {
	c.Level = cmp.Or(c.Level, defaultConfig.Level)
	c.LogFile = cmp.Or(c.LogFile, defaultConfig.LogFile)
	c.Style = cmp.Or(c.Style, defaultConfig.Style)
	c.MaxSize = positiveOr(c.MaxSize, defaultConfig.MaxSize)
	c.MaxBackups = positiveOr(c.MaxBackups, defaultConfig.MaxBackups)
	c.MaxAge = positiveOr(c.MaxAge, defaultConfig.MaxAge)
}

func positiveOr(v, fallback int) int {
	if v > 0 {
		return v
	}
	return fallback
}
