// Package main provides tests for the shoptrends CLI.
package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/shoptrends/internal/cli"
	"github.com/leapstack-labs/shoptrends/internal/cli/config"
	"github.com/leapstack-labs/shoptrends/internal/dataset"
	"github.com/leapstack-labs/shoptrends/internal/testutil"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	config.ResetConfig()

	cmd := cli.NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "shoptrends v")
}

func TestVersionFlag(t *testing.T) {
	out, _, err := run(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "shoptrends "+cli.Version)
}

func TestHelpCommand(t *testing.T) {
	out, _, err := run(t, "--help")
	require.NoError(t, err)

	for _, expected := range []string{"describe", "plot", "version", "completion", "--out-dir", "--image-format", "--source"} {
		assert.Contains(t, out, expected)
	}
}

func TestCompletionCommand(t *testing.T) {
	out, _, err := run(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "shoptrends")

	_, _, err = run(t, "completion", "tcsh")
	assert.Error(t, err)
}

func TestRootRunsPipeline(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteShoppingCSV(t, dir)
	t.Chdir(dir)

	out, _, err := run(t, "-o", "json", "--image-format", "svg", "--out-dir", "out")
	require.NoError(t, err)

	var got struct {
		Report struct {
			Missing []struct {
				Column  string `json:"column"`
				Missing int    `json:"missing"`
			} `json:"missing"`
		} `json:"report"`
		Figures []struct {
			Path string `json:"path"`
		} `json:"figures"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got.Report.Missing, 9)
	require.Len(t, got.Figures, 2)

	for _, name := range []string{"figure-1.svg", "figure-2.svg"} {
		_, err := os.Stat(filepath.Join(dir, "out", name))
		assert.NoError(t, err, name)
	}
}

func TestRootLogsRunID(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteShoppingCSV(t, dir)
	t.Chdir(dir)

	_, errOut, err := run(t, "describe", "--log-level", "info", "--log-format", "json")
	require.NoError(t, err)

	line := strings.SplitN(strings.TrimSpace(errOut), "\n", 2)[0]
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Equal(t, "dataset loaded", entry["msg"])
	assert.NotEmpty(t, entry["run_id"])
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteShoppingCSV(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shoptrends.yaml"), []byte("out_dir: from-config\nimage_format: svg\n"), 0o600))
	t.Chdir(dir)

	_, errOut, err := run(t, "plot", "-v")
	require.NoError(t, err)
	assert.Contains(t, errOut, "Using config file: shoptrends.yaml")

	_, err = os.Stat(filepath.Join(dir, "from-config", "figure-1.svg"))
	assert.NoError(t, err)
}

func TestMissingDataset(t *testing.T) {
	t.Chdir(t.TempDir())

	_, _, err := run(t)
	require.Error(t, err)
	assert.ErrorIs(t, err, dataset.ErrDataUnavailable)
}

func TestInvalidConfig(t *testing.T) {
	t.Chdir(t.TempDir())

	_, _, err := run(t, "--image-format", "gif")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown image_format")
}
