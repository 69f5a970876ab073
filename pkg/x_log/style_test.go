// file:sfx/pkg/x_log/style_test.go
package x_log

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// TestStylesCheck verifies that every theme defines the level styles.
func TestStylesCheck(t *testing.T) {
	for _, name := range []string{"dark", "light", "unknown"} {
		styles := DefaultStylesByName(name)
		for _, lvl := range []Level{InfoLevel, WarnLevel, ErrorLevel, FatalLevel} {
			_, ok := styles.Levels[lvl]
			assert.True(t, ok, "%s: level %s", name, lvl)
		}
	}
}

func TestStyles_NoColor(t *testing.T) {
	s := DefaultStylesDark()
	s.NoColor = true

	assert.Equal(t, "pattern", s.RenderKey("pattern"))
	assert.Equal(t, "GATTACA$", s.RenderValue("pattern", "GATTACA$"))
	assert.Equal(t, "unknown", s.RenderKey("unknown"))
	assert.Equal(t, "TAGACA$", s.RenderLabel("TAGACA$"))
	assert.Equal(t, "  |__", s.RenderBranch("  |__"))
}

// TestWithFields tests structured logging with custom fields.
func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(ConsoleWriterWithStyles(&Styles{Out: &buf, NoColor: true})).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	logger.Info().Str("pattern", "GATAGACA$").Int("radix", 5).Msg("tree built")

	out := buf.String()
	assert.Contains(t, out, "pattern=GATAGACA$")
	assert.Contains(t, out, "radix=5")
	assert.Contains(t, out, "tree built")
	assert.Contains(t, out, "INF")
}
