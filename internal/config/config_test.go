package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	cfg := `
outputDir: /tmp/heatmaps
markers:
  - label: 1m30s
    seconds: 25
    display: "1:30"
    color: blue
  - label: 1m00s
    seconds: 55
`
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0644))

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/heatmaps", got.OutputDir)
	require.Len(t, got.Markers, 2)
	assert.Equal(t, "1m30s", got.Markers[0].Label)
	assert.Equal(t, 25.0, got.Markers[0].Seconds)
	assert.Equal(t, "1:30", got.Markers[0].Display)
	assert.Equal(t, "blue", got.Markers[0].Color)
	// Display falls back to the label, color to red.
	assert.Equal(t, "1m00s", got.Markers[1].Display)
	assert.Equal(t, "red", got.Markers[1].Color)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	require.Error(t, err)
}

func TestLoad_NoFileYieldsDefaults(t *testing.T) {
	// Search from an empty directory so no stray .nadestacked.yaml is found.
	wd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { os.Chdir(wd) })
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Setenv("HOME", t.TempDir())

	got, err := Load("")
	require.NoError(t, err)

	assert.Empty(t, got.OutputDir)
	require.Len(t, got.Markers, 3)
	assert.Equal(t, "1m48s", got.Markers[0].Label)
	assert.Equal(t, 7.0, got.Markers[0].Seconds)
}

func TestLoad_EmptyMarkersFallBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("outputDir: out\n"), 0644))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "out", got.OutputDir)
	require.Len(t, got.Markers, 3)
}

func TestLoad_InvalidMarker(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	cfg := `
markers:
  - label: broken
    seconds: 0
`
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "positive seconds")
}
