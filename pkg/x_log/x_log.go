// file:sfx/pkg/x_log/x_log.go

// Package x_log configures the process-wide zerolog logger with styled
// console output and rotated file output.
package x_log

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	ErrInvalidLevelValue = errors.New("invalid_level_value")

	mu      sync.Mutex
	fileOut *lumberjack.Logger
	console io.Writer = os.Stderr
)

type Level = zerolog.Level

const (
	DebugLevel = zerolog.DebugLevel
	InfoLevel  = zerolog.InfoLevel
	WarnLevel  = zerolog.WarnLevel
	ErrorLevel = zerolog.ErrorLevel
	FatalLevel = zerolog.FatalLevel
)

// ParseLevel maps a level name to a Level. An empty name is info.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return InfoLevel, nil
	case "debug", "trace":
		return DebugLevel, nil
	case "info":
		return InfoLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	case "fatal":
		return FatalLevel, nil
	default:
		return InfoLevel, ErrInvalidLevelValue
	}
}

//---------------------
// INITIALIZATION
//---------------------

// InitWithConfig sets the global level and replaces log.Logger. A non-empty
// module is attached to every entry.
func InitWithConfig(cfg *Config, module string) {
	mu.Lock()
	defer mu.Unlock()

	cfg.sanitize()
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		log.Warn().Str("level", cfg.Level).Msg("unknown log level, using info")
	}
	zerolog.SetGlobalLevel(level)

	if fileOut != nil {
		_ = fileOut.Close()
		fileOut = nil
	}

	var writers []io.Writer
	if cfg.ToConsole || !cfg.ToFile {
		styles := DefaultStylesByName(cfg.Style)
		styles.Out = console
		styles.NoColor = !IsTerminal(console)
		writers = append(writers, ConsoleWriterWithStyles(styles))
	}
	if cfg.ToFile {
		fileOut = &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
		if cfg.ColoredFile {
			styles := DefaultStylesByName(cfg.Style)
			styles.Out = fileOut
			writers = append(writers, ConsoleWriterWithStyles(styles))
		} else {
			writers = append(writers, fileOut)
		}
	}

	ctx := zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp()
	if module != "" {
		ctx = ctx.Str("module", module)
	}
	log.Logger = ctx.Logger()
}

// Close flushes and closes the rotated log file, if any.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if fileOut == nil {
		return nil
	}
	err := fileOut.Close()
	fileOut = nil
	return err
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

//---------------------
// SCOPED LOGGERS
//---------------------

// New returns a child of the global logger tagged with component. The
// module key stays reserved for the process-wide name set by InitWithConfig.
func New(component string) zerolog.Logger {
	return log.Logger.With().Str("component", component).Logger()
}

// WithLogger stores l in ctx.
func WithLogger(ctx context.Context, l *zerolog.Logger) context.Context {
	return l.WithContext(ctx)
}

// From returns the logger stored in ctx, or the global logger.
func From(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l != nil && l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &log.Logger
}

//---------------------
// DEFAULT LOGGER SHORTCUT
//---------------------

// Error starts an error entry on the global logger.
func Error() *zerolog.Event { return log.Error() }
