// file:sfx/cmd/cmd_test.go
package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rskv-p/sfx/pkg/x_alpha"
	"github.com/rskv-p/sfx/pkg/x_cfg"
	"github.com/rskv-p/sfx/pkg/x_log"
	"github.com/rskv-p/sfx/pkg/x_src"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI with no config files and returns stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv(x_cfg.EnvConfigPath, "")
	t.Setenv(x_log.EnvConfigPath, filepath.Join(t.TempDir(), "missing.json"))
	out, _, err := runAll(t, stdin, args...)
	return out, err
}

// runAll executes the CLI in the current environment and returns stdout and stderr.
func runAll(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestEdges(t *testing.T) {
	out, err := run(t, "", "edges", "GATAGACA$")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"A", "CA$", "GACA$", "TAGACA$", "$",
		"CA$",
		"GA", "CA$", "TAGACA$",
		"TAGACA$",
		"$",
	}, strings.Fields(out))
}

func TestEdges_Stdin(t *testing.T) {
	out, err := run(t, "GATAGACA$\nignored\n", "edges")
	require.NoError(t, err)
	assert.Len(t, strings.Fields(out), 11)

	_, err = run(t, "  \n", "edges")
	assert.ErrorIs(t, err, x_src.ErrEmptyInput)
}

func TestEdges_InputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "genome.txt")
	require.NoError(t, os.WriteFile(path, []byte("A$\n"), 0644))

	out, err := run(t, "", "--input", path, "edges")
	require.NoError(t, err)
	assert.Equal(t, "A$\n$\n", out)
}

func TestEdges_CustomAlphabet(t *testing.T) {
	out, err := run(t, "", "--alphabet", "ab#", "--radix", "3", "edges", "abab#")
	require.NoError(t, err)
	assert.Contains(t, strings.Fields(out), "#")

	// same alphabet through a config file
	path := filepath.Join(t.TempDir(), "sfx.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"radix": 3, "alphabet": "ab#"}`), 0644))
	fromFile, err := run(t, "", "--config", path, "edges", "abab#")
	require.NoError(t, err)
	assert.Equal(t, out, fromFile)
}

func TestErrors(t *testing.T) {
	_, err := run(t, "", "--radix", "3", "edges", "GATAGACA$")
	assert.ErrorIs(t, err, x_alpha.ErrRadixMismatch)

	_, err = run(t, "", "edges", "GATXACA$")
	assert.ErrorIs(t, err, x_alpha.ErrUnsupportedSymbol)

	_, err = run(t, "", "--radix", "0", "edges", "A$")
	assert.ErrorIs(t, err, x_cfg.ErrInvalidConfig)

	_, err = run(t, "", "--log-level", "loud", "edges", "A$")
	assert.ErrorIs(t, err, x_cfg.ErrInvalidConfig)

	_, err = run(t, "", "--config", filepath.Join(t.TempDir(), "nope.json"), "edges", "A$")
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = run(t, "", "find")
	assert.Error(t, err)

	_, err = run(t, "", "edges", "A$", "C$")
	assert.Error(t, err)
}

func TestFind(t *testing.T) {
	out, err := run(t, "", "find", "GAC", "GATAGACA$")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	out, err = run(t, "", "find", "TT", "GATAGACA$")
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)

	out, err = run(t, "GATAGACA$", "find", "ATA")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)
}

func TestStats(t *testing.T) {
	out, err := run(t, "", "stats", "GATAGACA$")
	require.NoError(t, err)
	assert.Contains(t, out, "length:    9\n")
	assert.Contains(t, out, "nodes:     12\n")
	assert.Contains(t, out, "edges:     11\n")
	assert.Contains(t, out, "leaves:    9\n")
	assert.Contains(t, out, "internal:  2\n")
	assert.Contains(t, out, "terminals: 9\n")
	assert.Contains(t, out, "depth:     2\n")
}

func TestDump(t *testing.T) {
	out, err := run(t, "", "dump", "GATAGACA$")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, `-- ROOT Pattern: "GATAGACA$" Radix: 5`))
	assert.Contains(t, out, `  |__ NODE Label: "GA" [4:6]`)
	assert.NotContains(t, out, "\x1b[")
}

func TestStyled(t *testing.T) {
	assert.False(t, styled(&bytes.Buffer{}))
}

func TestShowConfig(t *testing.T) {
	t.Setenv(x_cfg.EnvConfigPath, "")
	t.Setenv(x_log.EnvConfigPath, filepath.Join(t.TempDir(), "missing.json"))

	out, errOut, err := runAll(t, "", "--show-config", "--radix", "6", "find", "GA", "GATAGACA$")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)
	assert.Contains(t, errOut, `"radix": 6`)
	assert.Contains(t, errOut, `"alphabet": "ACGT$"`)

	_, errOut, err = runAll(t, "", "find", "GA", "GATAGACA$")
	require.NoError(t, err)
	assert.NotContains(t, errOut, `"radix"`)
}

// TestLogging builds a tree with the log settings taken from the x_log
// config file and checks the entries written to it.
func TestLogging(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "sfx.log")
	xlog := filepath.Join(dir, "xlog.json")
	body := `{"level": "debug", "to_file": true, "to_console": false, "log_file": "` + logFile + `"}`
	require.NoError(t, os.WriteFile(xlog, []byte(body), 0644))
	t.Setenv(x_cfg.EnvConfigPath, "")
	t.Setenv(x_log.EnvConfigPath, xlog)

	_, _, err := runAll(t, "", "edges", "GATAGACA$")
	require.NoError(t, err)

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)

	components := map[string]string{}
	for _, line := range strings.Split(strings.TrimSpace(string(content)), "\n") {
		assert.Equal(t, 1, strings.Count(line, `"module":`), line)

		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		assert.Equal(t, "sfx", entry["module"])
		msg, _ := entry["message"].(string)
		comp, _ := entry["component"].(string)
		components[msg] = comp
	}
	assert.Equal(t, "cmd", components["building tree"])
	assert.Equal(t, "x_tree", components["suffix tree built"])
}
