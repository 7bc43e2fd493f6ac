package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/nox-docs/nox/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommandPositionalPaths(t *testing.T) {
	lib := writeSources(t)

	stdout, _, err := executeRoot(t, "--config", "", filepath.Join(lib, "greet.js"))
	require.NoError(t, err)

	var files []parser.SourceFile
	require.NoError(t, json.Unmarshal([]byte(stdout), &files))
	require.Len(t, files, 1)
	assert.Equal(t, filepath.Join(lib, "greet.js"), files[0].FilePath)
	assert.Len(t, files[0].Documentation, 1)
}

func TestRootCommandUsesConfigFile(t *testing.T) {
	lib := writeSources(t)
	outDir := t.TempDir()
	configFile := filepath.Join(t.TempDir(), "nox.yml")
	content := "paths: [" + lib + "]\nformat: yaml\noutput: " + filepath.Join(outDir, "docs.yml") + "\n"
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0o644))

	stdout, _, err := executeRoot(t, "-c", configFile)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(filepath.Join(outDir, "docs.yml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "filePath: "+filepath.Join(lib, "greet.js"))
	assert.Contains(t, string(data), "tag: example")
}

func TestRootCommandFlagOverridesConfigFile(t *testing.T) {
	lib := writeSources(t)
	configFile := filepath.Join(t.TempDir(), "nox.yml")
	require.NoError(t, os.WriteFile(configFile, []byte("format: yaml\n"), 0o644))

	stdout, _, err := executeRoot(t, "-c", configFile, "-f", "json", lib)
	require.NoError(t, err)

	var files []parser.SourceFile
	require.NoError(t, json.Unmarshal([]byte(stdout), &files))
	assert.Len(t, files, 2)
}

func TestRootCommandFailsOnMissingPath(t *testing.T) {
	_, stderr, err := executeRoot(t, "--config", "", filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.Contains(t, stderr, "failed to collect source files")
}

func TestRootCommandVersion(t *testing.T) {
	stdout, _, err := executeRoot(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, stdout, Version)
}
