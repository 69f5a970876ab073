// file:sfx/pkg/x_cfg/config.go
package x_cfg

import (
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/rskv-p/sfx/pkg/x_alpha"
	"github.com/rskv-p/sfx/pkg/x_log"
	"github.com/rskv-p/sfx/pkg/x_src"
)

var ErrInvalidConfig = errors.New("invalid_config")

const (
	EnvPrefix     = "SFX_"
	EnvConfigPath = "SFX_CONFIG"
	DefaultRadix  = 5
)

// Config holds everything needed to build and print one tree.
type Config struct {
	Radix    int          `json:"radix" mapstructure:"radix"`
	Alphabet string       `json:"alphabet" mapstructure:"alphabet"`
	Input    x_src.Config `json:"input" mapstructure:"input"`
	Log      x_log.Config `json:"log" mapstructure:"log"`
}

// Default returns the DNA setup: radix 5, alphabet ACGT$, pattern on stdin.
func Default() *Config {
	return &Config{
		Radix:    DefaultRadix,
		Alphabet: x_alpha.DNASymbols,
		Input:    x_src.Config{DebugFile: x_src.DefaultDebugFile},
		Log:      x_log.DefaultConfig(),
	}
}

// Load reads a JSON file on top of Default. Keys absent from the file keep
// their default values. Without a log section the log settings come from the
// x_log config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	data = replaceEnvVars(data)

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse config json: %w", err)
	}

	cfg := Default()
	if _, ok := raw["log"]; !ok {
		if cfg.Log, err = logConfig(); err != nil {
			return nil, err
		}
	}
	if err := decode(raw, cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}

func decode(raw map[string]any, cfg *Config) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

// FromEnv overrides cfg from <prefix>RADIX, ALPHABET, INPUT, DEBUG and LOG_LEVEL.
func FromEnv(cfg *Config, prefix string) *Config {
	if cfg == nil {
		cfg = Default()
	}
	cfg.Radix = getEnvInt(prefix+"RADIX", cfg.Radix)
	cfg.Alphabet = getEnvStr(prefix+"ALPHABET", cfg.Alphabet)
	cfg.Input.Path = getEnvStr(prefix+"INPUT", cfg.Input.Path)
	cfg.Input.Debug = getEnvBool(prefix+"DEBUG", cfg.Input.Debug)
	cfg.Log.Level = getEnvStr(prefix+"LOG_LEVEL", cfg.Log.Level)
	return cfg
}

// LoadWithFallback loads path, or SFX_CONFIG when path is empty, then
// applies env overrides. With neither set it starts from Default. The log
// section falls back to the x_log config file when the sfx config has none.
func LoadWithFallback(path string) (*Config, error) {
	path = cmp.Or(path, os.Getenv(EnvConfigPath))
	if path != "" {
		cfg, err := Load(path)
		if err != nil {
			return nil, err
		}
		return FromEnv(cfg, EnvPrefix), nil
	}

	cfg := Default()
	var err error
	if cfg.Log, err = logConfig(); err != nil {
		return nil, err
	}
	return FromEnv(cfg, EnvPrefix), nil
}

// logConfig reads the standalone log config ($XLOG_CONFIG or ./xlog.json).
func logConfig() (x_log.Config, error) {
	lc, err := x_log.LoadConfig("")
	if err != nil {
		return x_log.Config{}, fmt.Errorf("log config: %w", err)
	}
	return *lc, nil
}

// Validate checks the radix bounds, the alphabet and the log level.
func (cfg *Config) Validate() error {
	var bad []string
	if err := x_alpha.CheckRadix(cfg.Radix); err != nil {
		bad = append(bad, fmt.Sprintf("radix(%d)", cfg.Radix))
	}
	if _, err := x_alpha.New(cfg.Alphabet); err != nil {
		bad = append(bad, fmt.Sprintf("alphabet(%q)", cfg.Alphabet))
	}
	if _, err := x_log.ParseLevel(cfg.Log.Level); err != nil {
		bad = append(bad, fmt.Sprintf("log.level(%q)", cfg.Log.Level))
	}
	if len(bad) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(bad, ", "))
	}
	return nil
}

// Symbols returns the configured alphabet.
func (cfg *Config) Symbols() (*x_alpha.Alphabet, error) {
	a, err := x_alpha.New(cfg.Alphabet)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return a, nil
}

// Dump writes cfg as indented JSON.
func (cfg *Config) Dump(w io.Writer) {
	data, _ := json.MarshalIndent(cfg, "", "  ")
	_, _ = w.Write(append(data, '\n'))
}

// replaceEnvVars replaces ${ENV_VAR} in JSON with values from os.Getenv
func replaceEnvVars(data []byte) []byte {
	return []byte(os.ExpandEnv(string(data)))
}
