// file:sfx/pkg/x_src/source.go

// Package x_src reads the pattern a suffix tree is built from.
package x_src

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var ErrEmptyInput = errors.New("empty_input")

const (
	DefaultDebugFile = "input.txt"
	StdinPath        = "-"

	maxTokenSize = 64 << 20
)

// Config selects the input. Literal wins over Debug, Debug over Path, and
// an empty Path (or "-") means stdin.
type Config struct {
	Path      string `json:"path" mapstructure:"path"`
	Literal   string `json:"literal" mapstructure:"literal"`
	Debug     bool   `json:"debug" mapstructure:"debug"`
	DebugFile string `json:"debug_file" mapstructure:"debug_file"`
}

// Source names the selected input for logs.
func (c Config) Source() string {
	switch {
	case c.Literal != "":
		return "literal"
	case c.Debug:
		return c.debugFile()
	case c.Path != "" && c.Path != StdinPath:
		return c.Path
	default:
		return "stdin"
	}
}

func (c Config) debugFile() string {
	if c.DebugFile == "" {
		return DefaultDebugFile
	}
	return c.DebugFile
}

// Read returns the first whitespace-delimited token of the selected input.
func Read(cfg Config, stdin io.Reader) (string, error) {
	if cfg.Literal != "" {
		return firstToken(strings.NewReader(cfg.Literal), "literal")
	}

	path := cfg.Path
	if cfg.Debug {
		path = cfg.debugFile()
	}
	if path == "" || path == StdinPath {
		if stdin == nil {
			return "", fmt.Errorf("stdin: %w", ErrEmptyInput)
		}
		return firstToken(stdin, "stdin")
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("can't open input %q: %w", path, err)
	}
	defer f.Close()
	return firstToken(f, path)
}

func firstToken(r io.Reader, name string) (string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxTokenSize)
	scanner.Split(bufio.ScanWords)
	if scanner.Scan() {
		return scanner.Text(), nil
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	return "", fmt.Errorf("%s: %w", name, ErrEmptyInput)
}
