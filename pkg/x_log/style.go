// file:sfx/pkg/x_log/style.go
package x_log

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

//
// ---------- IBM Carbon Colors ----------

const (
	ColorTeal40    = "#3ddbd9"
	ColorBlue60    = "#4589ff"
	ColorBlue40    = "#78a9ff"
	ColorBlue70    = "#0043ce"
	ColorBlueBase  = "#0f62fe"
	ColorGreen40   = "#42be65"
	ColorRed60     = "#da1e28"
	ColorRedStrong = "#ff0000"
	ColorOrange40  = "#ff832b"
	ColorGray60    = "#8d8d8d"
	ColorGray10    = "#f4f4f4"
)

//
// ---------- Styles Definition ----------

// Styles holds the lipgloss styles of console output.
type Styles struct {
	Out               io.Writer
	NoColor           bool
	Timestamp         lipgloss.Style
	Levels            map[Level]lipgloss.Style
	Keys              map[string]lipgloss.Style
	Values            map[string]lipgloss.Style
	DefaultKeyStyle   lipgloss.Style
	DefaultValueStyle lipgloss.Style
	Label             lipgloss.Style // edge labels in tree dumps
	Branch            lipgloss.Style // indentation in tree dumps
}

// DefaultStylesByName returns a theme by name ("dark", "light").
func DefaultStylesByName(name string) *Styles {
	switch strings.ToLower(name) {
	case "light":
		return DefaultStylesLight()
	default:
		return DefaultStylesDark()
	}
}

func (s *Styles) render(style lipgloss.Style, text string) string {
	if s.NoColor {
		return text
	}
	return style.Render(text)
}

// RenderKey renders a field name.
func (s *Styles) RenderKey(key string) string {
	style, ok := s.Keys[key]
	if !ok {
		style = s.DefaultKeyStyle
	}
	return s.render(style, key)
}

// RenderValue renders the value of field key.
func (s *Styles) RenderValue(key, value string) string {
	style, ok := s.Values[key]
	if !ok {
		style = s.DefaultValueStyle
	}
	return s.render(style, value)
}

// RenderLabel renders an edge label.
func (s *Styles) RenderLabel(label string) string { return s.render(s.Label, label) }

// RenderBranch renders tree indentation.
func (s *Styles) RenderBranch(branch string) string { return s.render(s.Branch, branch) }

//
// ---------- Console Formatter ----------

// ConsoleWriterWithStyles builds a zerolog.ConsoleWriter with styles.
func ConsoleWriterWithStyles(styles *Styles) zerolog.ConsoleWriter {
	out := styles.Out
	if out == nil {
		out = os.Stderr
	}
	return zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    styles.NoColor,
		TimeFormat: "01-02 15:04:05",

		FormatLevel: func(i any) string {
			lvl := strings.ToLower(fmt.Sprint(i))
			short := strings.ToUpper(lvl)
			if len(short) > 3 {
				short = short[:3]
			}
			if styles.NoColor {
				return short
			}

			var color string
			switch lvl {
			case "debug":
				color = ColorTeal40
			case "info":
				color = ColorBlue60
			case "warn":
				color = ColorOrange40
			case "error":
				color = ColorRed60
			case "fatal":
				color = ColorRedStrong
			default:
				color = ColorGray60
			}
			return lipgloss.NewStyle().
				Foreground(lipgloss.Color("#ffffff")).
				Background(lipgloss.Color(color)).
				Padding(0, 1).
				Render(short)
		},

		FormatTimestamp: func(i any) string {
			return styles.render(styles.Timestamp, fmt.Sprintf("[%s]", i))
		},

		FormatFieldName: func(i any) string {
			return styles.RenderKey(fmt.Sprint(i)) + styles.render(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray60)), "=")
		},

		FormatMessage: func(i any) string {
			if i == nil {
				return ""
			}
			return styles.render(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray10)), fmt.Sprint(i))
		},
	}
}

//
// ---------- Dark Theme ----------

func DefaultStylesDark() *Styles {
	return &Styles{
		Timestamp: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorGray60)).
			Width(16),

		DefaultKeyStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorBlue40)),

		DefaultValueStyle: lipgloss.NewStyle(),

		Levels: map[Level]lipgloss.Style{
			InfoLevel:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlue60)),
			WarnLevel:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorOrange40)),
			ErrorLevel: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRed60)),
			FatalLevel: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRedStrong)),
		},

		Keys: map[string]lipgloss.Style{
			"module":  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlue40)),
			"pattern": lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlue40)),
			"radix":   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlue40)),
			"nodes":   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlue40)),
			"input":   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlue40)),
			"error":   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRed60)),
		},

		Values: map[string]lipgloss.Style{
			"pattern": lipgloss.NewStyle().Italic(true),
			"input":   lipgloss.NewStyle().Italic(true),
			"radix":   lipgloss.NewStyle().Bold(true),
			"error":   lipgloss.NewStyle().Bold(true),
			"module":  lipgloss.NewStyle(),
		},

		Label:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGreen40)).Bold(true),
		Branch: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray60)),
	}
}

//
// ---------- Light Theme ----------

func DefaultStylesLight() *Styles {
	return &Styles{
		Timestamp: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorGray60)).
			Width(16),

		DefaultKeyStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorBlueBase)),

		DefaultValueStyle: lipgloss.NewStyle(),

		Levels: map[Level]lipgloss.Style{
			InfoLevel:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlue70)),
			WarnLevel:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorOrange40)),
			ErrorLevel: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRed60)),
			FatalLevel: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRedStrong)),
		},

		Keys: map[string]lipgloss.Style{
			"module":  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlueBase)),
			"pattern": lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlueBase)),
			"radix":   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlueBase)),
			"nodes":   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlueBase)),
			"input":   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlueBase)),
			"error":   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRed60)),
		},

		Values: map[string]lipgloss.Style{
			"pattern": lipgloss.NewStyle().Italic(true),
			"input":   lipgloss.NewStyle().Italic(true),
			"radix":   lipgloss.NewStyle().Bold(true),
			"error":   lipgloss.NewStyle().Bold(true),
			"module":  lipgloss.NewStyle(),
		},

		Label:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlue70)).Bold(true),
		Branch: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray60)),
	}
}
